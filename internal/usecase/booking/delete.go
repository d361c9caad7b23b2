package booking

import (
	"context"

	domain "github.com/goalfield/field-scheduler/internal/domain/booking"
	"github.com/goalfield/field-scheduler/internal/httperr"
	"github.com/goalfield/field-scheduler/internal/models"
	"github.com/goalfield/field-scheduler/internal/policy"
	"github.com/goalfield/field-scheduler/internal/realtime"
)

type Delete struct {
	repo   domain.Repository
	events realtime.Broadcaster
}

func NewDelete(
	repo domain.Repository,
	events realtime.Broadcaster,
) *Delete {
	return &Delete{
		repo:   repo,
		events: events,
	}
}

// Execute removes a booking owned by the caller. Same non-disclosure
// behavior as update: wrong owner and missing id are indistinguishable.
func (uc *Delete) Execute(
	ctx context.Context,
	caller *models.User,
	bookingID uint,
) error {

	b, err := uc.repo.GetByID(ctx, bookingID)
	if err != nil {
		return httperr.ErrBusiness("booking_not_found")
	}

	if !policy.AllowsBooking(caller, policy.DeleteBooking, b) {
		return httperr.ErrBusiness("booking_not_found")
	}

	if err := uc.repo.Delete(ctx, b); err != nil {
		return err
	}

	uc.events.Publish(realtime.EventDeleteBooking, map[string]uint{"id": bookingID})

	return nil
}
