package models

import "gorm.io/datatypes"

var (
	genders        = newEnum("male", "female", "other")
	activityLevels = newEnum("sedentary", "light", "moderate", "active", "very-active")
)

type User struct {
	Record
	Email               string                      `json:"email" gorm:"uniqueIndex;not null"`
	Password            string                      `json:"-" gorm:"not null"`
	Name                string                      `json:"name" gorm:"not null"`
	Age                 int                         `json:"age,omitempty"`
	Height              float64                     `json:"height,omitempty"`
	Weight              float64                     `json:"weight,omitempty"`
	Gender              string                      `json:"gender,omitempty"`
	ActivityLevel       string                      `json:"activity_level,omitempty"`
	DietaryRestrictions datatypes.JSONSlice[string] `json:"dietary_restrictions"`
	Allergies           datatypes.JSONSlice[string] `json:"allergies"`
	Avatar              string                      `json:"avatar,omitempty"`
	Bio                 string                      `json:"bio,omitempty"`
	Location            string                      `json:"location,omitempty"`
	IsActive            bool                        `json:"is_active" gorm:"not null;default:true"`

	Goals        []Goal        `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	DietPlans    []DietPlan    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Orders       []Order       `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	ScannedFoods []ScannedFood `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

func ValidGender(g string) bool {
	return genders.has(g)
}

func ValidActivityLevel(l string) bool {
	return activityLevels.has(l)
}
