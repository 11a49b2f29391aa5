package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/sakaryaihh/akifweb/internal/forms"
	"github.com/sakaryaihh/akifweb/internal/http/api"
	"github.com/sakaryaihh/akifweb/internal/models"
	"github.com/sakaryaihh/akifweb/internal/settings"
)

// VolunteerHandler serves the volunteer form config and submissions.
type VolunteerHandler struct {
	db *gorm.DB
}

// NewVolunteerHandler constructs a volunteer handler.
func NewVolunteerHandler(db *gorm.DB) *VolunteerHandler {
	return &VolunteerHandler{db: db}
}

// GetForm returns the active form configuration.
func (h *VolunteerHandler) GetForm(c *gin.Context) {
	cfg := settings.VolunteerForm(c.Request.Context(), h.db)
	c.JSON(http.StatusOK, cfg)
}

// Submit validates a submission against the active config and persists
// the application with derived display columns plus the raw data.
func (h *VolunteerHandler) Submit(c *gin.Context) {
	cfg := settings.VolunteerForm(c.Request.Context(), h.db)

	var payload map[string]any
	if errBind := c.ShouldBindJSON(&payload); errBind != nil {
		api.Error(c, http.StatusBadRequest, api.CodeValidationError, "Geçersiz form verisi.")
		return
	}

	result := forms.Validate(payload, cfg)
	if !result.OK {
		api.Error(c, http.StatusBadRequest, api.CodeValidationError, result.Message)
		return
	}

	display := forms.ExtractDisplayFields(result.Data, cfg)
	rawData, errMarshal := json.Marshal(result.Data)
	if errMarshal != nil {
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "encode application failed")
		return
	}

	application := models.VolunteerApplication{
		FullName: display.FullName,
		Email:    display.Email,
		Phone:    display.Phone,
		Reason:   display.Reason,
		Data:     datatypes.JSON(rawData),
		Status:   models.VolunteerPending,
	}
	if errCreate := h.db.WithContext(c.Request.Context()).Create(&application).Error; errCreate != nil {
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "create application failed")
		return
	}

	message := cfg.SuccessMessage
	if message == "" {
		message = forms.DefaultConfig().SuccessMessage
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"id":      application.ID,
		"message": message,
	})
}
