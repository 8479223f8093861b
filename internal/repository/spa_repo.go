package repository

import (
	"context"
	"time"

	"github.com/Nirpat3/MSABC/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SPARepository defines data access for deals and their product links.
type SPARepository interface {
	Create(ctx context.Context, spa *model.SPA) error
	CreateTx(tx *gorm.DB, spa *model.SPA) error
	ListActive(ctx context.Context) ([]model.SPA, error)
	CountActive(ctx context.Context) (int64, error)
	CountExpiringBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// ActiveLinks returns every product link of an active deal with the
	// product preloaded, for savings aggregation.
	ActiveLinks(ctx context.Context) ([]model.ProductSPA, error)

	// UpsertLink inserts or updates the (product, spa) join row. The
	// composite unique index guarantees one row per pair; on conflict only
	// the discount price changes.
	UpsertLink(ctx context.Context, link *model.ProductSPA) error
	UpsertLinkTx(tx *gorm.DB, link *model.ProductSPA) error
}

type spaRepo struct{ db *gorm.DB }

func NewSPARepository(db *gorm.DB) SPARepository { return &spaRepo{db: db} }

func (r *spaRepo) Create(ctx context.Context, spa *model.SPA) error {
	return r.db.WithContext(ctx).Create(spa).Error
}

func (r *spaRepo) CreateTx(tx *gorm.DB, spa *model.SPA) error {
	return tx.Create(spa).Error
}

func (r *spaRepo) ListActive(ctx context.Context) ([]model.SPA, error) {
	var spas []model.SPA
	err := r.db.WithContext(ctx).
		Where("is_active = true").
		Preload("Products.Product").
		Order("end_date ASC").
		Find(&spas).Error
	return spas, err
}

func (r *spaRepo) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.SPA{}).
		Where("is_active = true").
		Count(&n).Error
	return n, err
}

func (r *spaRepo) CountExpiringBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.SPA{}).
		Where("is_active = true AND end_date <= ?", cutoff).
		Count(&n).Error
	return n, err
}

func (r *spaRepo) ActiveLinks(ctx context.Context) ([]model.ProductSPA, error) {
	var links []model.ProductSPA
	err := r.db.WithContext(ctx).
		Joins("JOIN spas ON spas.id = product_spas.spa_id AND spas.is_active = true").
		Preload("Product").
		Find(&links).Error
	return links, err
}

func (r *spaRepo) UpsertLink(ctx context.Context, link *model.ProductSPA) error {
	return r.UpsertLinkTx(r.db.WithContext(ctx), link)
}

func (r *spaRepo) UpsertLinkTx(tx *gorm.DB, link *model.ProductSPA) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}, {Name: "spa_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"discount_price", "updated_at"}),
	}).Create(link).Error
}
