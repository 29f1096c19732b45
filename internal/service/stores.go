package service

import (
	"time"

	"team_goal_tracker/internal/model"
)

// 服务层通过这些最小接口访问实体存储，internal/repository 提供实现。

type TeamMemberStore interface {
	FindAll() ([]model.TeamMember, error)
}

type GoalStore interface {
	FindByDate(date time.Time) ([]model.Goal, error)
	FindByID(id uint) (*model.Goal, error)
	Create(goal *model.Goal) error
	UpdateCompletion(id uint, completed bool) (int64, error)
}

type MoodStore interface {
	FindByDate(date time.Time) ([]model.Mood, error)
	Upsert(mood *model.Mood) error
}
