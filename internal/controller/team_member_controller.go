package controller

import (
	"team_goal_tracker/internal/service"
	"team_goal_tracker/internal/util"

	"github.com/gin-gonic/gin"
)

type TeamMemberController struct {
	TeamMemberStore service.TeamMemberStore
}

func NewTeamMemberController(teamMemberStore service.TeamMemberStore) *TeamMemberController {
	return &TeamMemberController{TeamMemberStore: teamMemberStore}
}

// @Summary 获取团队成员
// @Description 获取全部团队成员，按姓名排序
// @Tags 团队成员
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/team-members [get]
func (c *TeamMemberController) GetAll(ctx *gin.Context) {
	members, err := c.TeamMemberStore.FindAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, members)
}
