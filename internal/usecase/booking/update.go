package booking

import (
	"context"
	"time"

	domain "github.com/goalfield/field-scheduler/internal/domain/booking"
	"github.com/goalfield/field-scheduler/internal/httperr"
	"github.com/goalfield/field-scheduler/internal/models"
	"github.com/goalfield/field-scheduler/internal/policy"
	"github.com/goalfield/field-scheduler/internal/realtime"
)

type UpdateInput struct {
	Caller    *models.User
	BookingID uint

	DateTime *time.Time
	Status   *string
}

type Update struct {
	repo   domain.Repository
	events realtime.Broadcaster
}

func NewUpdate(
	repo domain.Repository,
	events realtime.Broadcaster,
) *Update {
	return &Update{
		repo:   repo,
		events: events,
	}
}

// Execute applies an owner or admin edit. A booking that does not
// exist and a booking owned by someone else produce the same error, so
// callers cannot probe which ids exist.
func (uc *Update) Execute(
	ctx context.Context,
	in UpdateInput,
) (*models.Booking, error) {

	if in.Status != nil && !domain.Status(*in.Status).Valid() {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	b, err := uc.repo.GetByID(ctx, in.BookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if !policy.AllowsBooking(in.Caller, policy.UpdateBooking, b) {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if in.DateTime != nil {
		b.DateTime = *in.DateTime
	}
	if in.Status != nil {
		b.Status = *in.Status
	}

	if err := uc.repo.Save(ctx, b); err != nil {
		return nil, err
	}

	resolved, err := uc.repo.GetResolved(ctx, b.ID)
	if err != nil {
		resolved = b
	}

	uc.events.Publish(realtime.EventUpdateBooking, resolved)

	return resolved, nil
}
