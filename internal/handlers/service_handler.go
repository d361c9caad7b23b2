package handlers

import (
	"mime/multipart"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/goalfield/field-scheduler/internal/httperr"
	"github.com/goalfield/field-scheduler/internal/httpresp"
	"github.com/goalfield/field-scheduler/internal/models"
	"github.com/goalfield/field-scheduler/internal/storage"
)

const minDurationMinutes = 15

type ServiceHandler struct {
	db    *gorm.DB
	media storage.MediaStore
	log   zerolog.Logger
}

func NewServiceHandler(db *gorm.DB, media storage.MediaStore, log zerolog.Logger) *ServiceHandler {
	return &ServiceHandler{
		db:    db,
		media: media,
		log:   log.With().Str("component", "services").Logger(),
	}
}

// ======================================================
// READ (public)
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("name ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Failed to list services.")
		return
	}

	httpresp.OK(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	var svc models.Service
	if err := h.db.First(&svc, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found")
		return
	}

	httpresp.OK(c, svc)
}

// ======================================================
// CREATE (admin, multipart)
// ======================================================

func (h *ServiceHandler) Create(c *gin.Context) {
	name := c.PostForm("name")
	description := c.PostForm("description")
	priceStr := c.PostForm("price")
	durationStr := c.PostForm("duration")

	if name == "" || description == "" || priceStr == "" || durationStr == "" {
		httperr.BadRequest(c, "missing_fields", "Please provide all required fields")
		return
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || price < 0 {
		httperr.BadRequest(c, "invalid_price", "Price cannot be negative")
		return
	}

	duration, err := strconv.Atoi(durationStr)
	if err != nil || duration < minDurationMinutes {
		httperr.BadRequest(c, "invalid_duration", "Duration must be at least 15 minutes")
		return
	}

	svc := models.Service{
		Name:        name,
		Description: description,
		Price:       price,
		DurationMin: duration,
	}

	if file, err := c.FormFile("image"); err == nil && file != nil {
		url, publicID, err := h.uploadImage(c, file)
		if err != nil {
			httperr.BadRequest(c, "invalid_image", "Could not process the uploaded image.")
			return
		}
		svc.ImageURL = url
		svc.ImagePublicID = publicID
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Failed to create service.")
		return
	}

	httpresp.Created(c, svc)
}

// ======================================================
// UPDATE (admin, multipart)
// ======================================================

func (h *ServiceHandler) Update(c *gin.Context) {
	var svc models.Service
	if err := h.db.First(&svc, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found")
		return
	}

	if v := c.PostForm("name"); v != "" {
		svc.Name = v
	}
	if v := c.PostForm("description"); v != "" {
		svc.Description = v
	}
	if v := c.PostForm("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			httperr.BadRequest(c, "invalid_price", "Price cannot be negative")
			return
		}
		svc.Price = price
	}
	if v := c.PostForm("duration"); v != "" {
		duration, err := strconv.Atoi(v)
		if err != nil || duration < minDurationMinutes {
			httperr.BadRequest(c, "invalid_duration", "Duration must be at least 15 minutes")
			return
		}
		svc.DurationMin = duration
	}

	if file, err := c.FormFile("image"); err == nil && file != nil {
		// Old asset cleanup must not block the update.
		if svc.ImagePublicID != "" {
			if err := h.media.Delete(c.Request.Context(), svc.ImagePublicID); err != nil {
				h.log.Warn().Err(err).Str("public_id", svc.ImagePublicID).Msg("failed to delete old image")
			}
		}

		url, publicID, err := h.uploadImage(c, file)
		if err != nil {
			httperr.BadRequest(c, "invalid_image", "Could not process the uploaded image.")
			return
		}
		svc.ImageURL = url
		svc.ImagePublicID = publicID
	}

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Failed to update service.")
		return
	}

	httpresp.OK(c, svc)
}

// ======================================================
// DELETE (admin)
// ======================================================

// Delete removes the service only. Bookings referencing it stay put.
func (h *ServiceHandler) Delete(c *gin.Context) {
	var svc models.Service
	if err := h.db.First(&svc, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found")
		return
	}

	if svc.ImagePublicID != "" {
		if err := h.media.Delete(c.Request.Context(), svc.ImagePublicID); err != nil {
			h.log.Warn().Err(err).Str("public_id", svc.ImagePublicID).Msg("failed to delete image")
		}
	}

	if err := h.db.Delete(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Failed to delete service.")
		return
	}

	httpresp.Message(c, "Service deleted successfully")
}

// ======================================================
// HELPERS
// ======================================================

func (h *ServiceHandler) uploadImage(c *gin.Context, file *multipart.FileHeader) (string, string, error) {
	f, err := file.Open()
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	return h.media.Upload(c.Request.Context(), f)
}
