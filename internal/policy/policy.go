package policy

import "github.com/goalfield/field-scheduler/internal/models"

// Every ownership/role decision goes through this package so the rules
// cannot drift between handlers.

type Action string

const (
	ReadBooking   Action = "booking:read"
	UpdateBooking Action = "booking:update"
	DeleteBooking Action = "booking:delete"

	ManageCatalog Action = "catalog:manage"
	ListUsers     Action = "users:list"
	RegisterAdmin Action = "users:register-admin"
	ViewStats     Action = "stats:view"
	ExportData    Action = "data:export"
)

// Allows decides resource-less actions. Role comes from the persisted
// user row, never from a client-supplied claim.
func Allows(caller *models.User, action Action) bool {
	if caller == nil {
		return false
	}

	switch action {
	case ManageCatalog, ListUsers, RegisterAdmin, ViewStats, ExportData:
		return caller.IsAdmin()
	}

	return false
}

// AllowsBooking decides booking-scoped actions.
func AllowsBooking(caller *models.User, action Action, b *models.Booking) bool {
	if caller == nil || b == nil {
		return false
	}

	switch action {
	case ReadBooking, UpdateBooking:
		return caller.IsAdmin() || b.UserID == caller.ID

	case DeleteBooking:
		// Owner only. Admins do not get a delete bypass; kept as-is
		// until the product decides otherwise.
		return b.UserID == caller.ID
	}

	return false
}
