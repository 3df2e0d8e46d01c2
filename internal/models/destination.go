package models

import "time"

// Destination is a catalog entry. Rating is derived state: it always equals
// the arithmetic mean of the destination's review ratings, or 0 when no
// reviews exist, and is only ever written by the rating aggregator.
type Destination struct {
	ID          string    `gorm:"primaryKey" json:"id"` // slug, e.g. "borobudur"
	Name        string    `gorm:"not null" json:"name"`
	Region      string    `gorm:"not null;index" json:"region"`
	Category    string    `gorm:"index" json:"category"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `json:"image_url"`
	Likes       int       `gorm:"not null;default:0" json:"likes"`
	Rating      float64   `gorm:"not null;default:0" json:"rating"`
	CreatedAt   time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
