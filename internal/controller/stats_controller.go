package controller

import (
	"team_goal_tracker/internal/service"
	"team_goal_tracker/internal/util"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	StatsService *service.StatsService
}

func NewStatsController(statsService *service.StatsService) *StatsController {
	return &StatsController{StatsService: statsService}
}

// @Summary 获取团队统计
// @Description 获取指定日期的完成率与心情分布
// @Tags 统计
// @Produce json
// @Param date query string false "日期（YYYY-MM-DD，缺省为今天）"
// @Success 200 {object} util.Response
// @Router /api/stats [get]
func (c *StatsController) GetStats(ctx *gin.Context) {
	date, ok := parseDateQuery(ctx)
	if !ok {
		return
	}

	stats, err := c.StatsService.GetTeamStats(date)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}
