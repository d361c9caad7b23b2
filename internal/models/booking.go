package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint  `json:"userId"`
	User   *User `json:"user,omitempty"`

	// Bookings may outlive the service they reference; the id is kept
	// even after the service row is gone.
	ServiceID uint     `json:"serviceId"`
	Service   *Service `json:"service,omitempty"`

	DateTime time.Time `json:"dateTime"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
