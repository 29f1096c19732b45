package service

import (
	"sync"
	"time"

	"team_goal_tracker/internal/model"
	"team_goal_tracker/internal/util"
)

type DashboardService struct {
	TeamMemberStore TeamMemberStore
	GoalStore       GoalStore
	MoodStore       MoodStore
	StatsService    *StatsService
}

func NewDashboardService(
	teamMemberStore TeamMemberStore,
	goalStore GoalStore,
	moodStore MoodStore,
	statsService *StatsService,
) *DashboardService {
	return &DashboardService{
		TeamMemberStore: teamMemberStore,
		GoalStore:       goalStore,
		MoodStore:       moodStore,
		StatsService:    statsService,
	}
}

type Dashboard struct {
	TeamMembers []TeamMemberDetail `json:"teamMembers"`
	Stats       *TeamStats         `json:"stats"`
	Date        string             `json:"date"`
}

// TeamMemberDetail 成员及其当日目标与心情；无心情时为 null，无目标时为空列表
type TeamMemberDetail struct {
	ID        uint         `json:"id"`
	Name      string       `json:"name"`
	CreatedAt time.Time    `json:"createdAt"`
	Goals     []model.Goal `json:"goals"`
	Mood      *model.Mood  `json:"currentMood"`
}

// GetDashboard 组装指定日期的团队仪表盘。
// 三个集合并行读取，任意一个失败则整个请求失败，不返回部分结果。
// 统计在未过滤的全量目标/心情集合上计算。
func (s *DashboardService) GetDashboard(date time.Time) (*Dashboard, error) {
	var (
		members []model.TeamMember
		goals   []model.Goal
		moods   []model.Mood

		memberErr error
		goalErr   error
		moodErr   error
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		members, memberErr = s.TeamMemberStore.FindAll()
	}()
	go func() {
		defer wg.Done()
		goals, goalErr = s.GoalStore.FindByDate(date)
	}()
	go func() {
		defer wg.Done()
		moods, moodErr = s.MoodStore.FindByDate(date)
	}()
	wg.Wait()

	for _, err := range []error{memberErr, goalErr, moodErr} {
		if err != nil {
			return nil, err
		}
	}

	details := make([]TeamMemberDetail, 0, len(members))
	for _, member := range members {
		memberGoals := make([]model.Goal, 0)
		for _, goal := range goals {
			if goal.TeamMemberID == member.ID {
				memberGoals = append(memberGoals, goal)
			}
		}

		// upsert 约束下每人每天至多一条心情，取首条即可
		var memberMood *model.Mood
		for i := range moods {
			if moods[i].TeamMemberID == member.ID {
				memberMood = &moods[i]
				break
			}
		}

		details = append(details, TeamMemberDetail{
			ID:        member.ID,
			Name:      member.Name,
			CreatedAt: member.CreatedAt,
			Goals:     memberGoals,
			Mood:      memberMood,
		})
	}

	stats := s.StatsService.CalculateStats(goals, moods)

	return &Dashboard{
		TeamMembers: details,
		Stats:       stats,
		Date:        model.DateOnly(date).Format(util.DateFormat),
	}, nil
}
