package repository

import (
	"context"

	"github.com/Nirpat3/MSABC/internal/dto"
	"github.com/Nirpat3/MSABC/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	FindByCode(ctx context.Context, code string) (*model.Product, error)

	// FindByCodeTx looks up through the transaction, so an import batch that
	// already wrote a code sees that write on a later occurrence.
	FindByCodeTx(tx *gorm.DB, code string) (*model.Product, error)
	List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, int64, error)
	DistinctCategories(ctx context.Context) ([]string, error)

	// Upsert inserts or, when a row with the same code exists, updates the
	// mutable attributes in place. The unique-code constraint guarantees no
	// duplicate row is ever created.
	Upsert(ctx context.Context, p *model.Product) error

	// UpsertTx is the transactional variant used inside import batches.
	UpsertTx(tx *gorm.DB, p *model.Product) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Preload("PriceHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("effective_date DESC").Limit(10)
		}).
		Preload("SPAs.SPA").
		First(&p, id).Error
	return &p, err
}

func (r *productRepo) FindByCode(ctx context.Context, code string) (*model.Product, error) {
	return r.FindByCodeTx(r.db.WithContext(ctx), code)
}

func (r *productRepo) FindByCodeTx(tx *gorm.DB, code string) (*model.Product, error) {
	var p model.Product
	err := tx.Where("code = ?", code).First(&p).Error
	return &p, err
}

func (r *productRepo) List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Product{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("name ILIKE ? OR code ILIKE ?", pattern, pattern)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	// IsStocked: "true" / "false" filter, anything else = no filter
	switch filter.IsStocked {
	case "true":
		q = q.Where("is_stocked = true")
	case "false":
		q = q.Where("is_stocked = false")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("name ASC").Limit(filter.Limit).Offset(offset).Find(&products).Error
	return products, total, err
}

func (r *productRepo) DistinctCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Distinct("category").
		Where("category IS NOT NULL").
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

func (r *productRepo) Upsert(ctx context.Context, p *model.Product) error {
	return r.UpsertTx(r.db.WithContext(ctx), p)
}

func (r *productRepo) UpsertTx(tx *gorm.DB, p *model.Product) error {
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "category", "size", "proof", "unit_price", "case_price", "updated_at",
		}),
	}).Create(p).Error
}

func (r *productRepo) DB() *gorm.DB { return r.db }
