package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/goalfield/field-scheduler/internal/httperr"
	"github.com/goalfield/field-scheduler/internal/models"
)

const exportSheet = "Bookings"

type ExportHandler struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewExportHandler(db *gorm.DB, log zerolog.Logger) *ExportHandler {
	return &ExportHandler{
		db:  db,
		log: log.With().Str("component", "export").Logger(),
	}
}

// Bookings streams every booking as an xlsx download (admin only).
func (h *ExportHandler) Bookings(c *gin.Context) {
	var bookings []models.Booking
	if err := h.db.
		Preload("Service").
		Preload("User").
		Order("date_time ASC").
		Find(&bookings).Error; err != nil {
		httperr.Internal(c, "failed_to_export_bookings", "Failed to export bookings.")
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", exportSheet)

	headers := []string{"ID", "User", "Email", "Service", "Date", "Status", "Created"}
	for i, title := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(exportSheet, cell, title)
	}

	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	_ = f.SetCellStyle(exportSheet, "A1", "G1", style)
	_ = f.SetColWidth(exportSheet, "B", "D", 25)

	for i, b := range bookings {
		row := i + 2

		userName, userEmail := "", ""
		if b.User != nil {
			userName = b.User.Name
			userEmail = b.User.Email
		}

		serviceName := fmt.Sprintf("#%d (deleted)", b.ServiceID)
		if b.Service != nil {
			serviceName = b.Service.Name
		}

		values := []any{
			b.ID,
			userName,
			userEmail,
			serviceName,
			b.DateTime.Format(time.RFC3339),
			b.Status,
			b.CreatedAt.Format(time.RFC3339),
		}

		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(exportSheet, cell, v)
		}
	}

	fileName := fmt.Sprintf("bookings_%s.xlsx", time.Now().Format("2006-01-02"))

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)

	if err := f.Write(c.Writer); err != nil {
		h.log.Error().Err(err).Msg("failed to write export")
		return
	}

	h.log.Info().Int("rows", len(bookings)).Msg("bookings exported")
}
