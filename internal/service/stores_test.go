package service

import (
	"errors"
	"time"

	"team_goal_tracker/internal/model"

	"gorm.io/gorm"
)

var (
	errFailed = errors.New("storage failure")
	testDate  = time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
)

type fakeTeamMemberStore struct {
	members []model.TeamMember
	err     error
}

func (f *fakeTeamMemberStore) FindAll() ([]model.TeamMember, error) {
	return f.members, f.err
}

type fakeGoalStore struct {
	goals      []model.Goal
	byID       map[uint]model.Goal
	created    []*model.Goal
	updateRows int64

	findErr   error
	createErr error
	updateErr error

	updateCalls int
}

func (f *fakeGoalStore) FindByDate(date time.Time) ([]model.Goal, error) {
	return f.goals, f.findErr
}

func (f *fakeGoalStore) FindByID(id uint) (*model.Goal, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	goal, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &goal, nil
}

func (f *fakeGoalStore) Create(goal *model.Goal) error {
	if f.createErr != nil {
		return f.createErr
	}
	goal.ID = uint(len(f.created) + 1)
	f.created = append(f.created, goal)
	return nil
}

func (f *fakeGoalStore) UpdateCompletion(id uint, completed bool) (int64, error) {
	f.updateCalls++
	return f.updateRows, f.updateErr
}

type fakeMoodStore struct {
	moods    []model.Mood
	upserted []*model.Mood
	err      error
}

func (f *fakeMoodStore) FindByDate(date time.Time) ([]model.Mood, error) {
	return f.moods, f.err
}

func (f *fakeMoodStore) Upsert(mood *model.Mood) error {
	if f.err != nil {
		return f.err
	}
	f.upserted = append(f.upserted, mood)
	return nil
}
