package repository

import (
	"context"

	"github.com/Nirpat3/MSABC/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ForecastRepository interface {
	List(ctx context.Context) ([]model.Forecast, error)

	// Upsert keyed by week_start — one forecast row per week.
	Upsert(ctx context.Context, f *model.Forecast) error
}

type forecastRepo struct{ db *gorm.DB }

func NewForecastRepository(db *gorm.DB) ForecastRepository { return &forecastRepo{db: db} }

func (r *forecastRepo) List(ctx context.Context) ([]model.Forecast, error) {
	var forecasts []model.Forecast
	err := r.db.WithContext(ctx).Order("week_start DESC").Find(&forecasts).Error
	return forecasts, err
}

func (r *forecastRepo) Upsert(ctx context.Context, f *model.Forecast) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "week_start"}},
		DoUpdates: clause.AssignmentColumns([]string{"projected_units", "notes", "updated_at"}),
	}).Create(f).Error
}
