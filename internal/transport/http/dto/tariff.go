package dto

type TariffResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	DurationDays int     `json:"duration_days"`
	Price        float64 `json:"price"`
	Currency     string  `json:"currency"`
	IsActive     bool    `json:"is_active"`
}
