package models

import "time"

var (
	goalTypes      = newEnum("muscle-building", "glowing-skin", "healthy-aging", "health-conditions")
	goalPriorities = newEnum("low", "medium", "high")
)

const DefaultGoalPriority = "medium"

// Goal is a health objective. Deleting a goal clears IsActive.
type Goal struct {
	Record
	UserID      uint       `json:"user_id" gorm:"not null;index"`
	Type        string     `json:"type" gorm:"not null"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description" gorm:"type:text"`
	Priority    string     `json:"priority" gorm:"not null;default:'medium'"`
	TargetDate  *time.Time `json:"target_date"`
	IsActive    bool       `json:"is_active" gorm:"not null;default:true;index"`
}

func ValidGoalType(t string) bool {
	return goalTypes.has(t)
}

func ValidGoalPriority(p string) bool {
	return goalPriorities.has(p)
}
