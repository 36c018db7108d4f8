package entities

import "time"

// Treatment is a curated medicine recommendation for a disease.
type Treatment struct {
	ID              string    `json:"id" db:"id"`
	Disease         string    `json:"disease" db:"disease"`
	Name            string    `json:"name" db:"name"`
	ApplicationRate string    `json:"application_rate" db:"application_rate"`
	Frequency       string    `json:"frequency" db:"frequency"`
	Notes           string    `json:"notes" db:"notes"`
	Approved        bool      `json:"approved" db:"approved"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}
