package model

import "time"

// Goal 团队成员的每日目标，完成状态只会从未完成变为已完成
// swagger:model Goal
type Goal struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TeamMemberID uint      `gorm:"index;not null" json:"teamMemberId"`
	Description  string    `gorm:"type:varchar(500);not null" json:"description"`
	IsCompleted  bool      `gorm:"not null;default:false" json:"isCompleted"`
	Date         time.Time `gorm:"type:date;index;not null" json:"date"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (Goal) TableName() string {
	return "goals"
}

// DateOnly 将时间截断为当天的日历日期（UTC 午夜）
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
