package entities

import "time"

// WeatherAlert is an advisory broadcast to farmers in a region.
type WeatherAlert struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Message   string    `json:"message" db:"message"`
	Severity  string    `json:"severity" db:"severity"`
	Region    string    `json:"region" db:"region"`
	Active    bool      `json:"active" db:"active"`
	StartsAt  time.Time `json:"starts_at" db:"starts_at"`
	EndsAt    time.Time `json:"ends_at" db:"ends_at"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
