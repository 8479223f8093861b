package dto

import "time"

type CreateSpecialOrderRequest struct {
	CustomerName string  `json:"customerName" validate:"required,min=2,max=120"`
	ProductName  string  `json:"productName"  validate:"required,min=2,max=200"`
	ProductCode  *string `json:"productCode"`
	Quantity     int     `json:"quantity"     validate:"omitempty,min=1"`
	Status       string  `json:"status"`
	Notes        *string `json:"notes"`
}

type SpecialOrderFilter struct {
	Status string `form:"status"`
}

type SpecialOrderResponse struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	ProductName  string    `json:"productName"`
	ProductCode  *string   `json:"productCode"`
	Quantity     int       `json:"quantity"`
	Status       string    `json:"status"`
	Notes        *string   `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
}
