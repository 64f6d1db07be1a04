package models

import "gorm.io/datatypes"

// DietPlan stores a generated or hand-edited plan. Macros, meals, supplements
// and goals are kept as the JSON the client or model produced.
type DietPlan struct {
	Record
	UserID            uint                        `json:"user_id" gorm:"not null;index"`
	Name              string                      `json:"name" gorm:"not null"`
	Description       string                      `json:"description"`
	TotalCalories     int                         `json:"total_calories"`
	Macros            datatypes.JSON              `json:"macros"`
	Meals             datatypes.JSON              `json:"meals"`
	Supplements       datatypes.JSON              `json:"supplements"`
	AIRecommendations datatypes.JSONSlice[string] `json:"ai_recommendations"`
	Goals             datatypes.JSON              `json:"goals"`
	IsActive          bool                        `json:"is_active" gorm:"not null;default:true;index"`
}
