package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/goalfield/field-scheduler/internal/domain/booking"
	"github.com/goalfield/field-scheduler/internal/httperr"
	"github.com/goalfield/field-scheduler/internal/httpresp"
	"github.com/goalfield/field-scheduler/internal/models"
)

type StatsHandler struct {
	db *gorm.DB
}

func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{db: db}
}

type StatsResponse struct {
	Users    int64 `json:"users"`
	Services int64 `json:"services"`
	Bookings int64 `json:"bookings"`

	ByStatus map[string]int64 `json:"byStatus"`
}

// Get serves the admin dashboard counters in one round trip.
func (h *StatsHandler) Get(c *gin.Context) {
	var resp StatsResponse

	if err := h.db.Model(&models.User{}).Count(&resp.Users).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Failed to load stats.")
		return
	}
	if err := h.db.Model(&models.Service{}).Count(&resp.Services).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Failed to load stats.")
		return
	}
	if err := h.db.Model(&models.Booking{}).Count(&resp.Bookings).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Failed to load stats.")
		return
	}

	resp.ByStatus = make(map[string]int64, 3)
	for _, status := range []domain.Status{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCancelled,
	} {
		var n int64
		if err := h.db.Model(&models.Booking{}).
			Where("status = ?", string(status)).
			Count(&n).Error; err != nil {
			httperr.Internal(c, "failed_to_load_stats", "Failed to load stats.")
			return
		}
		resp.ByStatus[string(status)] = n
	}

	httpresp.OK(c, resp)
}
