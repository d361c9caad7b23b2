package booking

import (
	"context"

	domain "github.com/goalfield/field-scheduler/internal/domain/booking"
	"github.com/goalfield/field-scheduler/internal/models"
)

type List struct {
	repo domain.Repository
}

func NewList(repo domain.Repository) *List {
	return &List{repo: repo}
}

// Execute returns every booking for admins and only the caller's own
// bookings otherwise.
func (uc *List) Execute(
	ctx context.Context,
	caller *models.User,
) ([]models.Booking, error) {

	if caller.IsAdmin() {
		return uc.repo.ListAll(ctx)
	}

	return uc.repo.ListByUser(ctx, caller.ID)
}
