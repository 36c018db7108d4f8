package entities

import "time"

// DetectionResult is a persisted scan analysis owned by a user.
type DetectionResult struct {
	ID          string     `json:"id" db:"id"`
	UserID      string     `json:"user_id" db:"user_id"`
	Disease     string     `json:"disease" db:"disease"`
	Confidence  float64    `json:"confidence" db:"confidence"`
	Healthy     bool       `json:"healthy" db:"healthy"`
	Description string     `json:"description" db:"description"`
	Symptoms    []string   `json:"symptoms" db:"symptoms"`
	Causes      []string   `json:"causes" db:"causes"`
	Prevention  []string   `json:"prevention" db:"prevention"`
	Medicines   []Medicine `json:"medicines" db:"medicines"`
	ImageURL    string     `json:"image_url" db:"image_url"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}
