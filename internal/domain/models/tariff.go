package models

// Tariff справочник тарифов, управляется извне. Здесь только чтение.
type Tariff struct {
	ID           int64   `db:"id" json:"id"`
	Name         string  `db:"name" json:"name"`
	DurationDays int     `db:"duration_days" json:"duration_days"`
	Price        float64 `db:"price" json:"price"`
	Currency     string  `db:"currency" json:"currency"`
	IsActive     bool    `db:"is_active" json:"is_active"`
}
