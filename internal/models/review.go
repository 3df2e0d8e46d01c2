package models

// Review attaches a rating and free-form text to a destination. AuthorID is
// immutable after creation; only the author may mutate or delete the record.
// Synthetic marks generator-authored reviews (on-demand backfill or bulk
// seeding); they behave like organic reviews everywhere else.
type Review struct {
	BaseModel
	DestinationID string  `gorm:"not null;index" json:"destination_id"`
	AuthorID      string  `gorm:"not null;index" json:"author_id"`
	Text          string  `gorm:"type:text;not null" json:"text"`
	Rating        float64 `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Synthetic     bool    `gorm:"not null;default:false" json:"synthetic"`

	// Relations
	Destination Destination `gorm:"foreignKey:DestinationID;constraint:OnDelete:CASCADE" json:"-"`
	Author      User        `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
}
