package controller

import (
	"errors"
	"strconv"
	"time"

	"team_goal_tracker/internal/model"
	"team_goal_tracker/internal/service"
	"team_goal_tracker/internal/util"
	"team_goal_tracker/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GoalController 处理目标的API请求

type GoalController struct {
	GoalService *service.GoalService
}

func NewGoalController(goalService *service.GoalService) *GoalController {
	return &GoalController{GoalService: goalService}
}

// @Summary 创建目标
// @Description 为团队成员创建目标，日期缺省为今天
// @Tags 目标
// @Accept json
// @Produce json
// @Param goal body service.CreateGoalRequest true "目标信息"
// @Success 201 {object} util.Response
// @Router /api/goals [post]
func (c *GoalController) CreateGoal(ctx *gin.Context) {
	var req service.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if req.Date != "" {
		date, err := time.Parse(util.DateFormat, req.Date)
		if err != nil {
			util.BadRequest(ctx, util.ErrInvalidDateFormat.Error())
			return
		}
		today := model.DateOnly(time.Now())
		if date.Before(today.AddDate(-1, 0, 0)) || date.After(today.AddDate(1, 0, 0)) {
			util.BadRequest(ctx, util.ErrGoalDateOutOfRange.Error())
			return
		}
	}

	goal, err := c.GoalService.CreateGoal(req)
	if err != nil {
		if errors.Is(err, util.ErrInvalidDateFormat) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, goal)
}

// @Summary 完成目标
// @Description 将目标标记为已完成，重复调用幂等
// @Tags 目标
// @Produce json
// @Param id path int true "目标ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/goals/{id}/complete [patch]
func (c *GoalController) CompleteGoal(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid goal id")
		return
	}

	goal, err := c.GoalService.CompleteGoal(uint(id))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrGoalNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrGoalConflict):
			logger.Log.Error("Goal completion conflict",
				zap.Uint64("goalId", id),
				zap.String("traceId", util.TraceID(ctx)),
			)
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, goal)
}

// @Summary 获取目标列表
// @Description 获取指定日期的全部目标
// @Tags 目标
// @Produce json
// @Param date query string false "日期（YYYY-MM-DD，缺省为今天）"
// @Success 200 {object} util.Response
// @Router /api/goals [get]
func (c *GoalController) GetGoals(ctx *gin.Context) {
	date, ok := parseDateQuery(ctx)
	if !ok {
		return
	}

	goals, err := c.GoalService.GetGoalsByDate(date)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, goals)
}
