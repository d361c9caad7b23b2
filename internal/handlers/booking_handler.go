package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/goalfield/field-scheduler/internal/httperr"
	"github.com/goalfield/field-scheduler/internal/httpresp"
	"github.com/goalfield/field-scheduler/internal/middleware"
	ucBooking "github.com/goalfield/field-scheduler/internal/usecase/booking"
)

type BookingHandler struct {
	listUC   *ucBooking.List
	createUC *ucBooking.Create
	updateUC *ucBooking.Update
	deleteUC *ucBooking.Delete
}

func NewBookingHandler(
	listUC *ucBooking.List,
	createUC *ucBooking.Create,
	updateUC *ucBooking.Update,
	deleteUC *ucBooking.Delete,
) *BookingHandler {
	return &BookingHandler{
		listUC:   listUC,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	Service  uint   `json:"service" binding:"required"`
	DateTime string `json:"dateTime" binding:"required"`
}

type UpdateBookingRequest struct {
	DateTime *string `json:"dateTime"`
	Status   *string `json:"status"`
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	caller := middleware.CurrentUser(c)

	bookings, err := h.listUC.Execute(c.Request.Context(), caller)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Failed to list bookings.")
		return
	}

	httpresp.OK(c, bookings)
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	caller := middleware.CurrentUser(c)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	dateTime, err := time.Parse(time.RFC3339, req.DateTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_time", "dateTime must be a valid ISO date.")
		return
	}

	booking, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateInput{
		Caller:    caller,
		ServiceID: req.Service,
		DateTime:  dateTime,
	})
	if err != nil {
		if httperr.IsBusiness(err, "service_not_found") {
			httperr.NotFound(c, "service_not_found", "Service not found")
			return
		}
		httperr.Internal(c, "failed_to_create_booking", "Failed to create booking.")
		return
	}

	httpresp.Created(c, booking)
}

// ======================================================
// UPDATE
// ======================================================

func (h *BookingHandler) Update(c *gin.Context) {
	caller := middleware.CurrentUser(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var dateTime *time.Time
	if req.DateTime != nil {
		parsed, err := time.Parse(time.RFC3339, *req.DateTime)
		if err != nil {
			httperr.BadRequest(c, "invalid_date_time", "dateTime must be a valid ISO date.")
			return
		}
		dateTime = &parsed
	}

	booking, err := h.updateUC.Execute(c.Request.Context(), ucBooking.UpdateInput{
		Caller:    caller,
		BookingID: uint(id),
		DateTime:  dateTime,
		Status:    req.Status,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "status must be pending, confirmed or cancelled.")
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "booking_not_found", "Booking not found or not authorized")
		default:
			httperr.Internal(c, "failed_to_update_booking", "Failed to update booking.")
		}
		return
	}

	httpresp.OK(c, booking)
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	caller := middleware.CurrentUser(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), caller, uint(id)); err != nil {
		if httperr.IsBusiness(err, "booking_not_found") {
			httperr.NotFound(c, "booking_not_found", "Booking not found or not authorized")
			return
		}
		httperr.Internal(c, "failed_to_delete_booking", "Failed to delete booking.")
		return
	}

	httpresp.Message(c, "Booking deleted")
}
