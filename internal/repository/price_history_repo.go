package repository

import (
	"github.com/Nirpat3/MSABC/internal/model"

	"gorm.io/gorm"
)

// PriceHistoryRepository appends immutable price records. Reads go through the
// product detail preload; rows are never updated or deleted.
type PriceHistoryRepository interface {
	CreateTx(tx *gorm.DB, h *model.PriceHistory) error
}

type priceHistoryRepo struct{ db *gorm.DB }

func NewPriceHistoryRepository(db *gorm.DB) PriceHistoryRepository {
	return &priceHistoryRepo{db: db}
}

func (r *priceHistoryRepo) CreateTx(tx *gorm.DB, h *model.PriceHistory) error {
	return tx.Create(h).Error
}
