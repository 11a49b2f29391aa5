package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sakaryaihh/akifweb/internal/http/api"
	"github.com/sakaryaihh/akifweb/internal/models"
)

// VolunteerHandler manages admin endpoints for volunteer applications.
type VolunteerHandler struct {
	db *gorm.DB
}

// NewVolunteerHandler constructs an admin volunteer handler.
func NewVolunteerHandler(db *gorm.DB) *VolunteerHandler {
	return &VolunteerHandler{db: db}
}

// List returns applications newest first with an optional status filter.
func (h *VolunteerHandler) List(c *gin.Context) {
	page := api.ParsePagination(c, 20, 50)

	q := h.db.WithContext(c.Request.Context()).Model(&models.VolunteerApplication{})
	if statusQ := strings.TrimSpace(c.Query("status")); statusQ != "" && validVolunteerStatus(statusQ) {
		q = q.Where("status = ?", statusQ)
	}

	var total int64
	if errCount := q.Count(&total).Error; errCount != nil {
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "list applications failed")
		return
	}
	var rows []models.VolunteerApplication
	if errFind := q.Order("created_at DESC").Offset(page.Offset()).Limit(page.Limit).Find(&rows).Error; errFind != nil {
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "list applications failed")
		return
	}

	out := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		out = append(out, gin.H{
			"id":        row.ID,
			"fullName":  row.FullName,
			"email":     row.Email,
			"phone":     row.Phone,
			"reason":    row.Reason,
			"status":    row.Status,
			"createdAt": row.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"applications": out, "pagination": page.Envelope(total)})
}

// Get returns a single application with the full submitted payload.
func (h *VolunteerHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var row models.VolunteerApplication
	if errFind := h.db.WithContext(c.Request.Context()).First(&row, id).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			api.Error(c, http.StatusNotFound, api.CodeNotFound, "")
			return
		}
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "query failed")
		return
	}

	var data map[string]any
	if len(row.Data) > 0 {
		if errUnmarshal := json.Unmarshal(row.Data, &data); errUnmarshal != nil {
			data = nil
		}
	}
	c.JSON(http.StatusOK, gin.H{"application": gin.H{
		"id":        row.ID,
		"fullName":  row.FullName,
		"email":     row.Email,
		"phone":     row.Phone,
		"reason":    row.Reason,
		"data":      data,
		"status":    row.Status,
		"createdAt": row.CreatedAt,
		"updatedAt": row.UpdatedAt,
	}})
}

// patchStatusRequest carries the new review status.
type patchStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PatchStatus updates the review status of an application.
func (h *VolunteerHandler) PatchStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var body patchStatusRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		api.ValidationError(c, errBind)
		return
	}
	if !validVolunteerStatus(body.Status) {
		api.Error(c, http.StatusBadRequest, api.CodeValidationError, "Geçersiz durum")
		return
	}

	var existing models.VolunteerApplication
	if errFind := h.db.WithContext(c.Request.Context()).First(&existing, id).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			api.Error(c, http.StatusNotFound, api.CodeNotFound, "")
			return
		}
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "query failed")
		return
	}

	if errUpdate := h.db.WithContext(c.Request.Context()).
		Model(&existing).Update("status", body.Status).Error; errUpdate != nil {
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "update application failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "application": gin.H{"id": existing.ID, "status": existing.Status}})
}

func validVolunteerStatus(status string) bool {
	for _, s := range models.VolunteerStatuses {
		if s == status {
			return true
		}
	}
	return false
}
