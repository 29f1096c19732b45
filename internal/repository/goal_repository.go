package repository

import (
	"time"

	"team_goal_tracker/internal/model"

	"gorm.io/gorm"
)

// GoalRepository 处理目标的数据访问

type GoalRepository struct {
	DB *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{DB: db}
}

// Create 创建新目标，主键由存储层分配
func (r *GoalRepository) Create(goal *model.Goal) error {
	return r.DB.Create(goal).Error
}

// FindByDate 获取指定日期的全部目标，按创建时间排序
func (r *GoalRepository) FindByDate(date time.Time) ([]model.Goal, error) {
	var goals []model.Goal
	err := r.DB.Where("date = ?", model.DateOnly(date)).Order("created_at").Find(&goals).Error
	return goals, err
}

// FindByID 根据ID查找目标
func (r *GoalRepository) FindByID(id uint) (*model.Goal, error) {
	var goal model.Goal
	err := r.DB.First(&goal, id).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// UpdateCompletion 更新目标完成状态，返回受影响行数供调用方判断未命中
func (r *GoalRepository) UpdateCompletion(id uint, completed bool) (int64, error) {
	result := r.DB.Model(&model.Goal{}).
		Where("id = ?", id).
		Update("is_completed", completed)
	return result.RowsAffected, result.Error
}
