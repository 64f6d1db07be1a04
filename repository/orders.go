package repository

import (
	"context"

	"github.com/krishkalaria12/vitalplan-api/models"
	"gorm.io/gorm"
)

type Orders struct {
	db *gorm.DB
}

func NewOrders(db *gorm.DB) *Orders {
	return &Orders{db: db}
}

func (r *Orders) Create(ctx context.Context, order *models.Order) error {
	return translate(r.db.WithContext(ctx).Create(order).Error)
}

func (r *Orders) List(ctx context.Context, userID uint) ([]models.Order, error) {
	orders := []models.Order{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, translate(err)
}

func (r *Orders) Get(ctx context.Context, userID, id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&order).Error
	if err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (r *Orders) UpdateStatus(ctx context.Context, userID, id uint, status string) error {
	return affected(r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("status", status))
}
