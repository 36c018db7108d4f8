package entities

import "time"

// PaddyPrice is a market price quote for a paddy variety in a region.
type PaddyPrice struct {
	ID            string    `json:"id" db:"id"`
	Variety       string    `json:"variety" db:"variety"`
	Region        string    `json:"region" db:"region"`
	PricePerKg    float64   `json:"price_per_kg" db:"price_per_kg"`
	Currency      string    `json:"currency" db:"currency"`
	EffectiveDate time.Time `json:"effective_date" db:"effective_date"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
