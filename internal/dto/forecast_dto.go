package dto

import "time"

type ForecastResponse struct {
	ID             string    `json:"id"`
	WeekStart      time.Time `json:"weekStart"`
	ProjectedUnits int       `json:"projectedUnits"`
	Notes          *string   `json:"notes"`
}
