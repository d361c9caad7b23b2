package booking

import (
	"context"
	"time"

	domain "github.com/goalfield/field-scheduler/internal/domain/booking"
	"github.com/goalfield/field-scheduler/internal/httperr"
	"github.com/goalfield/field-scheduler/internal/metrics"
	"github.com/goalfield/field-scheduler/internal/models"
	"github.com/goalfield/field-scheduler/internal/realtime"
)

type CreateInput struct {
	Caller    *models.User
	ServiceID uint
	DateTime  time.Time
}

type Create struct {
	repo   domain.Repository
	events realtime.Broadcaster
}

func NewCreate(
	repo domain.Repository,
	events realtime.Broadcaster,
) *Create {
	return &Create{
		repo:   repo,
		events: events,
	}
}

// Execute persists a pending booking for the caller. The owner is
// always the caller; a client cannot book on another user's behalf.
// Two bookings for the same service and time are allowed.
func (uc *Create) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Booking, error) {

	if _, err := uc.repo.GetService(ctx, in.ServiceID); err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	b := &models.Booking{
		UserID:    in.Caller.ID,
		ServiceID: in.ServiceID,
		DateTime:  in.DateTime,
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	metrics.IncBookingCreated()

	resolved, err := uc.repo.GetResolved(ctx, b.ID)
	if err != nil {
		resolved = b
	}

	uc.events.Publish(realtime.EventNewBooking, resolved)

	return resolved, nil
}
