package models

import "time"

// Service is a bookable field, not a software service.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255;not null" json:"description"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration"`

	ImageURL      string `gorm:"size:255" json:"imageUrl"`
	ImagePublicID string `gorm:"size:255" json:"imagePublicId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
