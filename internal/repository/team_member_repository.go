package repository

import (
	"team_goal_tracker/internal/model"

	"gorm.io/gorm"
)

type TeamMemberRepository struct {
	DB *gorm.DB
}

func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{DB: db}
}

// FindAll 获取全部团队成员，按姓名排序
func (r *TeamMemberRepository) FindAll() ([]model.TeamMember, error) {
	var members []model.TeamMember
	err := r.DB.Order("name").Find(&members).Error
	return members, err
}
