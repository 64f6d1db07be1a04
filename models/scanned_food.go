package models

import (
	"time"

	"gorm.io/datatypes"
)

// ScannedFood is one persisted food-image analysis.
type ScannedFood struct {
	Record
	UserID           uint                        `json:"user_id" gorm:"not null;index"`
	Name             string                      `json:"name" gorm:"not null"`
	Brand            string                      `json:"brand"`
	Barcode          string                      `json:"barcode"`
	Calories         float64                     `json:"calories"`
	ServingSize      string                      `json:"serving_size"`
	Macros           datatypes.JSON              `json:"macros"`
	NutritionDetails datatypes.JSON              `json:"nutrition_details"`
	AIInsights       datatypes.JSONSlice[string] `json:"ai_insights"`
	Confidence       float64                     `json:"confidence"`
	ImageURL         string                      `json:"image_url,omitempty"`
	AnalyzedAt       time.Time                   `json:"analyzed_at" gorm:"not null;index"`
}
