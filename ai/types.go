package ai

import (
	"encoding/json"
	"time"
)

// FoodAnalysis is the parsed result of a food-image analysis.
type FoodAnalysis struct {
	FoodName         string             `json:"food_name"`
	Brand            string             `json:"brand,omitempty"`
	Barcode          string             `json:"barcode,omitempty"`
	Confidence       float64            `json:"confidence"`
	ServingSize      string             `json:"serving_size"`
	Calories         float64            `json:"calories"`
	Macros           map[string]float64 `json:"macros"`
	NutritionDetails map[string]any     `json:"nutrition_details"`
	AIInsights       []string           `json:"ai_insights"`
	AnalyzedAt       time.Time          `json:"analyzed_at"`
	ImageProcessed   bool               `json:"image_processed"`
}

// Profile is the slice of the user record that goes into a diet-plan prompt.
type Profile struct {
	ID                  uint
	Age                 int
	Gender              string
	Height              float64
	Weight              float64
	ActivityLevel       string
	DietaryRestrictions []string
	Allergies           []string
}

type GoalInput struct {
	Type        string     `json:"type,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
}

// GeneratedPlan keeps the model's nested structures as raw JSON so they can
// be stored as-is.
type GeneratedPlan struct {
	TotalCalories     float64         `json:"total_calories"`
	Macros            json.RawMessage `json:"macros"`
	Meals             json.RawMessage `json:"meals"`
	Supplements       json.RawMessage `json:"supplements"`
	AIRecommendations []string        `json:"ai_recommendations"`
	GeneratedAt       time.Time       `json:"generated_at"`
	UserID            uint            `json:"user_id"`
	Goals             []GoalInput     `json:"goals"`
}

// NutritionSummary feeds the insights prompt.
type NutritionSummary struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
}
