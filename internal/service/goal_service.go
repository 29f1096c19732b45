package service

import (
	"errors"
	"time"

	"team_goal_tracker/internal/model"
	"team_goal_tracker/internal/util"

	"gorm.io/gorm"
)

// minStorageTime MySQL DATETIME 的下界，计算出的时间早于它时钳制到该值
var minStorageTime = time.Date(1000, 1, 1, 0, 0, 0, 0, time.UTC)

type GoalService struct {
	GoalStore GoalStore
}

func NewGoalService(goalStore GoalStore) *GoalService {
	return &GoalService{GoalStore: goalStore}
}

type CreateGoalRequest struct {
	TeamMemberID uint   `json:"teamMemberId" binding:"required"`
	Description  string `json:"description" binding:"required,max=500"`
	Date         string `json:"date"`
}

// CreateGoal 创建目标。日期缺省为今天（本地日历日期），完成状态从未完成开始。
// 日期与创建时间戳低于存储层下界时钳制到下界，这是防御性处理而非校验错误。
func (s *GoalService) CreateGoal(req CreateGoalRequest) (*model.Goal, error) {
	now := time.Now()

	goalDate := model.DateOnly(now)
	if req.Date != "" {
		parsed, err := time.Parse(util.DateFormat, req.Date)
		if err != nil {
			return nil, util.ErrInvalidDateFormat
		}
		goalDate = model.DateOnly(parsed)
	}
	if goalDate.Before(minStorageTime) {
		goalDate = minStorageTime
	}

	createdAt := now.UTC()
	if createdAt.Before(minStorageTime) {
		createdAt = minStorageTime
	}

	goal := &model.Goal{
		TeamMemberID: req.TeamMemberID,
		Description:  req.Description,
		IsCompleted:  false,
		Date:         goalDate,
		CreatedAt:    createdAt,
	}

	if err := s.GoalStore.Create(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// CompleteGoal 将目标标记为已完成。目标不存在返回 ErrGoalNotFound；
// 查到之后更新却命中0行时返回 ErrGoalConflict——存在性检查与更新
// 之间有一个极窄的竞争窗口，这里如实上报而不是消除它。
// 对已完成的目标重复调用是幂等的。
func (s *GoalService) CompleteGoal(id uint) (*model.Goal, error) {
	goal, err := s.GoalStore.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrGoalNotFound
		}
		return nil, err
	}

	if goal.IsCompleted {
		return goal, nil
	}

	rows, err := s.GoalStore.UpdateCompletion(id, true)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, util.ErrGoalConflict
	}

	goal.IsCompleted = true
	return goal, nil
}

// GetGoalsByDate 获取指定日期的目标列表
func (s *GoalService) GetGoalsByDate(date time.Time) ([]model.Goal, error) {
	return s.GoalStore.FindByDate(date)
}
