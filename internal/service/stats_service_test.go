package service

import (
	"testing"

	"team_goal_tracker/internal/model"
)

func TestCalculateStatsHalfCompleted(t *testing.T) {
	s := NewStatsService(nil, nil)

	goals := []model.Goal{
		{ID: 10, TeamMemberID: 1, IsCompleted: true},
		{ID: 11, TeamMemberID: 1, IsCompleted: false},
	}
	moods := []model.Mood{
		{TeamMemberID: 1, MoodType: model.MoodHappy},
	}

	stats := s.CalculateStats(goals, moods)

	if stats.CompletionPercentage != 50.0 {
		t.Fatalf("expected completion 50.0, got %v", stats.CompletionPercentage)
	}
	if stats.TotalGoals != 2 {
		t.Fatalf("expected 2 total goals, got %d", stats.TotalGoals)
	}
	if stats.CompletedGoals != 1 {
		t.Fatalf("expected 1 completed goal, got %d", stats.CompletedGoals)
	}
	if stats.MoodDistribution[model.MoodHappy] != 1 {
		t.Fatalf("expected happy count 1, got %d", stats.MoodDistribution[model.MoodHappy])
	}
	for _, moodType := range []model.MoodType{model.MoodVeryHappy, model.MoodNeutral, model.MoodSad, model.MoodStressed} {
		if stats.MoodDistribution[moodType] != 0 {
			t.Fatalf("expected %s count 0, got %d", moodType, stats.MoodDistribution[moodType])
		}
	}
}

func TestCalculateStatsNoGoals(t *testing.T) {
	s := NewStatsService(nil, nil)

	stats := s.CalculateStats(nil, nil)

	if stats.CompletionPercentage != 0 {
		t.Fatalf("expected completion 0 with no goals, got %v", stats.CompletionPercentage)
	}
	if len(stats.MoodDistribution) != len(model.AllMoodTypes) {
		t.Fatalf("expected %d mood buckets, got %d", len(model.AllMoodTypes), len(stats.MoodDistribution))
	}
	for _, moodType := range model.AllMoodTypes {
		count, ok := stats.MoodDistribution[moodType]
		if !ok {
			t.Fatalf("mood bucket %s missing", moodType)
		}
		if count != 0 {
			t.Fatalf("expected empty bucket for %s, got %d", moodType, count)
		}
	}
}

func TestCalculateStatsRoundsToTwoDecimals(t *testing.T) {
	s := NewStatsService(nil, nil)

	goals := []model.Goal{
		{IsCompleted: true},
		{IsCompleted: false},
		{IsCompleted: false},
	}

	stats := s.CalculateStats(goals, nil)

	if stats.CompletionPercentage != 33.33 {
		t.Fatalf("expected completion 33.33, got %v", stats.CompletionPercentage)
	}

	goals = append(goals, model.Goal{IsCompleted: true}, model.Goal{IsCompleted: true})
	stats = s.CalculateStats(goals, nil)
	if stats.CompletionPercentage != 60.0 {
		t.Fatalf("expected completion 60.0, got %v", stats.CompletionPercentage)
	}
}

func TestCalculateStatsRoundsMidpointUp(t *testing.T) {
	s := NewStatsService(nil, nil)

	// 1/800 = 0.125%，中点向远离零方向取整为 0.13
	goals := make([]model.Goal, 800)
	goals[0].IsCompleted = true

	stats := s.CalculateStats(goals, nil)

	if stats.CompletionPercentage != 0.13 {
		t.Fatalf("expected completion 0.13, got %v", stats.CompletionPercentage)
	}
}

func TestCalculateStatsIgnoresUnknownMoodType(t *testing.T) {
	s := NewStatsService(nil, nil)

	moods := []model.Mood{
		{TeamMemberID: 1, MoodType: model.MoodSad},
		{TeamMemberID: 2, MoodType: model.MoodType(0)},
		{TeamMemberID: 3, MoodType: model.MoodType(99)},
	}

	stats := s.CalculateStats(nil, moods)

	total := 0
	for _, count := range stats.MoodDistribution {
		total += count
	}
	if total != 1 {
		t.Fatalf("expected only recognized moods counted, got sum %d", total)
	}
	if stats.MoodDistribution[model.MoodSad] != 1 {
		t.Fatalf("expected sad count 1, got %d", stats.MoodDistribution[model.MoodSad])
	}
}

func TestGetTeamStatsPropagatesStoreError(t *testing.T) {
	goalStore := &fakeGoalStore{findErr: errFailed}
	s := NewStatsService(goalStore, &fakeMoodStore{})

	if _, err := s.GetTeamStats(testDate); err == nil {
		t.Fatal("expected store error to propagate")
	}
}
