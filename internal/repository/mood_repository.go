package repository

import (
	"time"

	"team_goal_tracker/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MoodRepository struct {
	DB *gorm.DB
}

func NewMoodRepository(db *gorm.DB) *MoodRepository {
	return &MoodRepository{DB: db}
}

// FindByDate 获取指定日期的全部心情记录
func (r *MoodRepository) FindByDate(date time.Time) ([]model.Mood, error) {
	var moods []model.Mood
	err := r.DB.Where("date = ?", model.DateOnly(date)).Find(&moods).Error
	return moods, err
}

// Upsert 按 (team_member_id, date) 写入或更新心情。
// 自然键的原子性由存储层的冲突子句保证，应用层不加锁。
// 命中更新路径时返回的主键不具备业务含义。
func (r *MoodRepository) Upsert(mood *model.Mood) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "team_member_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"mood_type", "updated_at"}),
	}).Create(mood).Error
}
