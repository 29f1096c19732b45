package service

import (
	"time"

	"team_goal_tracker/internal/model"
	"team_goal_tracker/internal/util"
)

type MoodService struct {
	MoodStore MoodStore
}

func NewMoodService(moodStore MoodStore) *MoodService {
	return &MoodService{MoodStore: moodStore}
}

type UpdateMoodRequest struct {
	TeamMemberID uint           `json:"teamMemberId" binding:"required"`
	MoodType     model.MoodType `json:"moodType" binding:"required"`
}

// UpdateMood 写入或更新成员今日心情。日期固定为今天，时间戳固定为当前时间；
// 命中更新路径时返回记录的ID不具备业务含义，调用方不应依赖它。
func (s *MoodService) UpdateMood(req UpdateMoodRequest) (*model.Mood, error) {
	if !req.MoodType.Valid() {
		return nil, util.ErrInvalidMoodType
	}

	now := time.Now()
	mood := &model.Mood{
		TeamMemberID: req.TeamMemberID,
		MoodType:     req.MoodType,
		Date:         model.DateOnly(now),
		UpdatedAt:    now.UTC(),
	}

	if err := s.MoodStore.Upsert(mood); err != nil {
		return nil, err
	}
	return mood, nil
}
