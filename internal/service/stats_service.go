package service

import (
	"math"
	"time"

	"team_goal_tracker/internal/model"
)

type StatsService struct {
	GoalStore GoalStore
	MoodStore MoodStore
}

func NewStatsService(goalStore GoalStore, moodStore MoodStore) *StatsService {
	return &StatsService{GoalStore: goalStore, MoodStore: moodStore}
}

// TeamStats 某一天的团队统计快照，按请求计算，不落库
type TeamStats struct {
	CompletionPercentage float64                `json:"completionPercentage"`
	MoodDistribution     map[model.MoodType]int `json:"moodDistribution"`
	TotalGoals           int                    `json:"totalGoals"`
	CompletedGoals       int                    `json:"completedGoals"`
}

// GetTeamStats 获取指定日期的团队统计
func (s *StatsService) GetTeamStats(date time.Time) (*TeamStats, error) {
	goals, err := s.GoalStore.FindByDate(date)
	if err != nil {
		return nil, err
	}

	moods, err := s.MoodStore.FindByDate(date)
	if err != nil {
		return nil, err
	}

	return s.CalculateStats(goals, moods), nil
}

// CalculateStats 根据目标与心情集合计算统计快照。
// 无目标时完成率为0；直方图覆盖全部5个类别，
// 类别取值不在枚举内的心情直接跳过，不计数也不报错。
func (s *StatsService) CalculateStats(goals []model.Goal, moods []model.Mood) *TeamStats {
	totalGoals := len(goals)
	completedGoals := 0
	for _, goal := range goals {
		if goal.IsCompleted {
			completedGoals++
		}
	}

	completionPercentage := 0.0
	if totalGoals > 0 {
		completionPercentage = float64(completedGoals) / float64(totalGoals) * 100
		completionPercentage = math.Round(completionPercentage*100) / 100
	}

	distribution := make(map[model.MoodType]int, len(model.AllMoodTypes))
	for _, moodType := range model.AllMoodTypes {
		distribution[moodType] = 0
	}
	for _, mood := range moods {
		if _, ok := distribution[mood.MoodType]; ok {
			distribution[mood.MoodType]++
		}
	}

	return &TeamStats{
		CompletionPercentage: completionPercentage,
		MoodDistribution:     distribution,
		TotalGoals:           totalGoals,
		CompletedGoals:       completedGoals,
	}
}
