package controller

import (
	"time"

	"team_goal_tracker/internal/service"
	"team_goal_tracker/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// parseDateQuery 解析 date 查询参数，缺省为今天
func parseDateQuery(ctx *gin.Context) (time.Time, bool) {
	dateStr := ctx.Query("date")
	if dateStr == "" {
		return time.Now(), true
	}

	date, err := time.Parse(util.DateFormat, dateStr)
	if err != nil {
		util.BadRequest(ctx, util.ErrInvalidDateFormat.Error())
		return time.Time{}, false
	}
	return date, true
}

// @Summary 获取团队仪表盘
// @Description 获取指定日期的团队仪表盘，包含每个成员的目标、心情和团队统计
// @Tags 仪表盘
// @Produce json
// @Param date query string false "日期（YYYY-MM-DD，缺省为今天）"
// @Success 200 {object} util.Response
// @Router /api/dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	date, ok := parseDateQuery(ctx)
	if !ok {
		return
	}

	dashboard, err := c.DashboardService.GetDashboard(date)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, dashboard)
}
