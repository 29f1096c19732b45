package model

import "time"

// TeamMember 团队成员，创建后不可变（本系统不提供修改/删除接口）
// swagger:model TeamMember
type TeamMember struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
