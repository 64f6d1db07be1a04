package repository

import (
	"context"

	"github.com/krishkalaria12/vitalplan-api/models"
	"gorm.io/gorm"
)

type DietPlans struct {
	db *gorm.DB
}

func NewDietPlans(db *gorm.DB) *DietPlans {
	return &DietPlans{db: db}
}

// ListActive returns the user's active plans, newest first.
func (r *DietPlans) ListActive(ctx context.Context, userID uint) ([]models.DietPlan, error) {
	plans := []models.DietPlan{}
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&plans).Error
	return plans, translate(err)
}

func (r *DietPlans) Create(ctx context.Context, plan *models.DietPlan) error {
	plan.IsActive = true
	return translate(r.db.WithContext(ctx).Create(plan).Error)
}

func (r *DietPlans) Get(ctx context.Context, userID, id uint) (*models.DietPlan, error) {
	var plan models.DietPlan
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&plan).Error
	if err != nil {
		return nil, translate(err)
	}
	return &plan, nil
}

func (r *DietPlans) Save(ctx context.Context, plan *models.DietPlan) error {
	return translate(r.db.WithContext(ctx).Save(plan).Error)
}

func (r *DietPlans) Deactivate(ctx context.Context, userID, id uint) error {
	return affected(r.db.WithContext(ctx).
		Model(&models.DietPlan{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_active", false))
}
