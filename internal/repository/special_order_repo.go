package repository

import (
	"context"

	"github.com/Nirpat3/MSABC/internal/model"

	"gorm.io/gorm"
)

type SpecialOrderRepository interface {
	Create(ctx context.Context, o *model.SpecialOrder) error
	List(ctx context.Context, status string) ([]model.SpecialOrder, error)
}

type specialOrderRepo struct{ db *gorm.DB }

func NewSpecialOrderRepository(db *gorm.DB) SpecialOrderRepository {
	return &specialOrderRepo{db: db}
}

func (r *specialOrderRepo) Create(ctx context.Context, o *model.SpecialOrder) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *specialOrderRepo) List(ctx context.Context, status string) ([]model.SpecialOrder, error) {
	var orders []model.SpecialOrder
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&orders).Error
	return orders, err
}
