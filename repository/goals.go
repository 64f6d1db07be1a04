package repository

import (
	"context"

	"github.com/krishkalaria12/vitalplan-api/models"
	"gorm.io/gorm"
)

type Goals struct {
	db *gorm.DB
}

func NewGoals(db *gorm.DB) *Goals {
	return &Goals{db: db}
}

func (r *Goals) ListActive(ctx context.Context, userID uint) ([]models.Goal, error) {
	goals := []models.Goal{}
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at ASC").
		Find(&goals).Error
	return goals, translate(err)
}

func (r *Goals) Create(ctx context.Context, goal *models.Goal) error {
	goal.IsActive = true
	return translate(r.db.WithContext(ctx).Create(goal).Error)
}

// Get returns the goal regardless of IsActive so callers can restore it.
func (r *Goals) Get(ctx context.Context, userID, id uint) (*models.Goal, error) {
	var goal models.Goal
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&goal).Error
	if err != nil {
		return nil, translate(err)
	}
	return &goal, nil
}

func (r *Goals) Save(ctx context.Context, goal *models.Goal) error {
	return translate(r.db.WithContext(ctx).Save(goal).Error)
}

func (r *Goals) Deactivate(ctx context.Context, userID, id uint) error {
	return affected(r.db.WithContext(ctx).
		Model(&models.Goal{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_active", false))
}
