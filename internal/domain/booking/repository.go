package booking

import (
	"context"

	"github.com/goalfield/field-scheduler/internal/models"
)

type Repository interface {
	// -------- Service lookup --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Booking (create / mutate) --------
	Create(
		ctx context.Context,
		b *models.Booking,
	) error

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	// GetResolved returns the booking with its service and user attached.
	GetResolved(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	Save(
		ctx context.Context,
		b *models.Booking,
	) error

	Delete(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (list) --------
	ListAll(
		ctx context.Context,
	) ([]models.Booking, error)

	ListByUser(
		ctx context.Context,
		userID uint,
	) ([]models.Booking, error)
}
