package repository

import (
	"context"

	"github.com/Nirpat3/MSABC/internal/model"

	"gorm.io/gorm"
)

// SyncLogRepository appends and reads the import audit trail. Rows are never
// updated or deleted after creation.
type SyncLogRepository interface {
	CreateTx(tx *gorm.DB, l *model.SyncLog) error
	ListRecent(ctx context.Context, limit int) ([]model.SyncLog, error)
}

type syncLogRepo struct{ db *gorm.DB }

func NewSyncLogRepository(db *gorm.DB) SyncLogRepository { return &syncLogRepo{db: db} }

func (r *syncLogRepo) CreateTx(tx *gorm.DB, l *model.SyncLog) error {
	return tx.Create(l).Error
}

func (r *syncLogRepo) ListRecent(ctx context.Context, limit int) ([]model.SyncLog, error) {
	var logs []model.SyncLog
	err := r.db.WithContext(ctx).Order("started_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
