package repository

import (
	"testing"
	"time"

	"team_goal_tracker/internal/model"
	"team_goal_tracker/pkg/database"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.TeamMember{}, &model.Goal{}, &model.Mood{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

var day = time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)

func TestTeamMembersOrderedByName(t *testing.T) {
	db := openTestDB(t)
	repo := NewTeamMemberRepository(db)

	for _, name := range []string{"Zoe", "Ann", "Mia"} {
		if err := db.Create(&model.TeamMember{Name: name}).Error; err != nil {
			t.Fatalf("failed to insert member: %v", err)
		}
	}

	members, err := repo.FindAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(members) != 3 {
		t.Fatalf("expected 3 members, got %d", len(members))
	}
	for i, want := range []string{"Ann", "Mia", "Zoe"} {
		if members[i].Name != want {
			t.Fatalf("expected %s at position %d, got %s", want, i, members[i].Name)
		}
	}
}

func TestGoalFindByDateFiltersAndOrders(t *testing.T) {
	db := openTestDB(t)
	repo := NewGoalRepository(db)

	otherDay := day.AddDate(0, 0, 1)
	base := time.Date(2025, time.March, 14, 9, 0, 0, 0, time.UTC)

	second := &model.Goal{TeamMemberID: 1, Description: "second", Date: day, CreatedAt: base.Add(time.Hour)}
	first := &model.Goal{TeamMemberID: 1, Description: "first", Date: day, CreatedAt: base}
	elsewhere := &model.Goal{TeamMemberID: 1, Description: "elsewhere", Date: otherDay, CreatedAt: base}
	for _, goal := range []*model.Goal{second, first, elsewhere} {
		if err := repo.Create(goal); err != nil {
			t.Fatalf("failed to insert goal: %v", err)
		}
	}

	goals, err := repo.FindByDate(day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(goals) != 2 {
		t.Fatalf("expected 2 goals for the day, got %d", len(goals))
	}
	if goals[0].Description != "first" || goals[1].Description != "second" {
		t.Fatalf("expected creation order, got %s then %s", goals[0].Description, goals[1].Description)
	}
}

func TestGoalFindByDateNormalizesZones(t *testing.T) {
	db := openTestDB(t)
	repo := NewGoalRepository(db)

	// 日期列按 UTC 午夜存取，任意时区的挂钟时间经 DateOnly 归一后必须命中同一天
	shanghai := time.FixedZone("CST", 8*3600)
	newYork := time.FixedZone("EST", -5*3600)

	evening := time.Date(2025, time.March, 14, 23, 30, 0, 0, shanghai)
	goal := &model.Goal{TeamMemberID: 1, Description: "late entry", Date: model.DateOnly(evening), CreatedAt: evening.UTC()}
	if err := repo.Create(goal); err != nil {
		t.Fatalf("failed to insert goal: %v", err)
	}

	morning := time.Date(2025, time.March, 14, 8, 0, 0, 0, newYork)
	goals, err := repo.FindByDate(morning)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(goals) != 1 {
		t.Fatalf("expected goal found across zones, got %d rows", len(goals))
	}
	if !goals[0].Date.Equal(day) {
		t.Fatalf("expected date stored as UTC midnight %v, got %v", day, goals[0].Date)
	}
}

func TestGoalCreateAssignsID(t *testing.T) {
	db := openTestDB(t)
	repo := NewGoalRepository(db)

	goal := &model.Goal{TeamMemberID: 1, Description: "ship it", Date: day, CreatedAt: time.Now().UTC()}
	if err := repo.Create(goal); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if goal.ID == 0 {
		t.Fatal("expected assigned id")
	}

	found, err := repo.FindByID(goal.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Description != "ship it" || found.IsCompleted {
		t.Fatalf("unexpected goal state: %+v", found)
	}
}

func TestGoalUpdateCompletionReportsRows(t *testing.T) {
	db := openTestDB(t)
	repo := NewGoalRepository(db)

	goal := &model.Goal{TeamMemberID: 1, Description: "done soon", Date: day, CreatedAt: time.Now().UTC()}
	if err := repo.Create(goal); err != nil {
		t.Fatalf("failed to insert goal: %v", err)
	}

	rows, err := repo.UpdateCompletion(goal.ID, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected 1 row updated, got %d", rows)
	}

	found, err := repo.FindByID(goal.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found.IsCompleted {
		t.Fatal("expected goal completed")
	}

	rows, err = repo.UpdateCompletion(9999, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows != 0 {
		t.Fatalf("expected 0 rows for unknown id, got %d", rows)
	}
}

func TestMoodUpsertKeepsOneRowPerMemberAndDay(t *testing.T) {
	db := openTestDB(t)
	repo := NewMoodRepository(db)

	first := &model.Mood{TeamMemberID: 1, MoodType: model.MoodHappy, Date: day, UpdatedAt: time.Now().UTC()}
	if err := repo.Upsert(first); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	second := &model.Mood{TeamMemberID: 1, MoodType: model.MoodStressed, Date: day, UpdatedAt: time.Now().UTC()}
	if err := repo.Upsert(second); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	moods, err := repo.FindByDate(day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(moods) != 1 {
		t.Fatalf("expected exactly one row per (member, date), got %d", len(moods))
	}
	if moods[0].MoodType != model.MoodStressed {
		t.Fatalf("expected second category to win, got %s", moods[0].MoodType)
	}
}

func TestMoodUpsertSeparateRowsPerMember(t *testing.T) {
	db := openTestDB(t)
	repo := NewMoodRepository(db)

	for memberID := uint(1); memberID <= 3; memberID++ {
		mood := &model.Mood{TeamMemberID: memberID, MoodType: model.MoodNeutral, Date: day, UpdatedAt: time.Now().UTC()}
		if err := repo.Upsert(mood); err != nil {
			t.Fatalf("upsert for member %d failed: %v", memberID, err)
		}
	}

	moods, err := repo.FindByDate(day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(moods) != 3 {
		t.Fatalf("expected one row per member, got %d", len(moods))
	}
}

func TestMigrateSeedsDefaultMembersOnce(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}

	var count int64
	db.Model(&model.TeamMember{}).Count(&count)
	if count != 4 {
		t.Fatalf("expected 4 seeded members, got %d", count)
	}
}
