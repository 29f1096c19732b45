package model

import "time"

// MoodType 心情类别，取值固定为 1-5
type MoodType int

const (
	MoodVeryHappy MoodType = iota + 1
	MoodHappy
	MoodNeutral
	MoodSad
	MoodStressed
)

// AllMoodTypes 全部心情类别，直方图初始化时逐一填零
var AllMoodTypes = []MoodType{MoodVeryHappy, MoodHappy, MoodNeutral, MoodSad, MoodStressed}

func (m MoodType) Valid() bool {
	return m >= MoodVeryHappy && m <= MoodStressed
}

func (m MoodType) String() string {
	switch m {
	case MoodVeryHappy:
		return "very_happy"
	case MoodHappy:
		return "happy"
	case MoodNeutral:
		return "neutral"
	case MoodSad:
		return "sad"
	case MoodStressed:
		return "stressed"
	default:
		return "unknown"
	}
}

// Mood 成员在某一天的心情，(team_member_id, date) 上保持唯一
// swagger:model Mood
type Mood struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TeamMemberID uint      `gorm:"not null;uniqueIndex:idx_moods_member_date" json:"teamMemberId"`
	MoodType     MoodType  `gorm:"not null" json:"moodType"`
	Date         time.Time `gorm:"type:date;not null;uniqueIndex:idx_moods_member_date" json:"date"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (Mood) TableName() string {
	return "moods"
}
