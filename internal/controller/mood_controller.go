package controller

import (
	"errors"

	"team_goal_tracker/internal/service"
	"team_goal_tracker/internal/util"

	"github.com/gin-gonic/gin"
)

type MoodController struct {
	MoodService *service.MoodService
}

func NewMoodController(moodService *service.MoodService) *MoodController {
	return &MoodController{MoodService: moodService}
}

// @Summary 更新今日心情
// @Description 写入或更新成员今天的心情，每人每天只保留一条记录
// @Tags 心情
// @Accept json
// @Produce json
// @Param mood body service.UpdateMoodRequest true "心情信息"
// @Success 200 {object} util.Response
// @Router /api/moods [put]
func (c *MoodController) UpdateMood(ctx *gin.Context) {
	var req service.UpdateMoodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	mood, err := c.MoodService.UpdateMood(req)
	if err != nil {
		if errors.Is(err, util.ErrInvalidMoodType) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, mood)
}
