package repository

import (
	"context"

	"github.com/krishkalaria12/vitalplan-api/models"
	"gorm.io/gorm"
)

type Scans struct {
	db *gorm.DB
}

func NewScans(db *gorm.DB) *Scans {
	return &Scans{db: db}
}

func (r *Scans) Create(ctx context.Context, scan *models.ScannedFood) error {
	return translate(r.db.WithContext(ctx).Create(scan).Error)
}

// History returns up to limit scans, most recent first.
func (r *Scans) History(ctx context.Context, userID uint, limit int) ([]models.ScannedFood, error) {
	scans := []models.ScannedFood{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("analyzed_at DESC").
		Limit(limit).
		Find(&scans).Error
	return scans, translate(err)
}

func (r *Scans) Get(ctx context.Context, userID, id uint) (*models.ScannedFood, error) {
	var scan models.ScannedFood
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&scan).Error
	if err != nil {
		return nil, translate(err)
	}
	return &scan, nil
}

func (r *Scans) Save(ctx context.Context, scan *models.ScannedFood) error {
	return translate(r.db.WithContext(ctx).Save(scan).Error)
}

// Delete removes the row outright.
func (r *Scans) Delete(ctx context.Context, userID, id uint) error {
	return affected(r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.ScannedFood{}))
}
