package handlers

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/goalfield/field-scheduler/internal/httperr"
	"github.com/goalfield/field-scheduler/internal/httpresp"
	"github.com/goalfield/field-scheduler/internal/middleware"
	"github.com/goalfield/field-scheduler/internal/models"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

type UpdateMeRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}

// List is admin-only (gated in routes).
func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("created_at DESC").Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Failed to list users.")
		return
	}

	httpresp.OK(c, users)
}

func (h *UserHandler) GetMe(c *gin.Context) {
	httpresp.OK(c, middleware.CurrentUser(c))
}

// UpdateMe lets the caller change their own name and password only.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	caller := middleware.CurrentUser(c)

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil && *req.Name != "" {
		caller.Name = *req.Name
	}

	if req.Password != nil && *req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "Failed to process password.")
			return
		}
		caller.PasswordHash = string(hashed)
	}

	if err := h.db.Save(caller).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Failed to update profile.")
		return
	}

	httpresp.OK(c, caller)
}
