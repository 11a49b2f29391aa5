package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sakaryaihh/akifweb/internal/http/api"
	"github.com/sakaryaihh/akifweb/internal/models"
)

// DonationCategoryHandler manages admin CRUD endpoints for categories.
type DonationCategoryHandler struct {
	db *gorm.DB
}

// NewDonationCategoryHandler constructs a category handler.
func NewDonationCategoryHandler(db *gorm.DB) *DonationCategoryHandler {
	return &DonationCategoryHandler{db: db}
}

// categoryRequest captures the payload for creating or replacing a
// category. Collected is never writable through this endpoint.
type categoryRequest struct {
	Name         string   `json:"name" binding:"required,max=100"`
	Description  string   `json:"description" binding:"required"`
	Image        *string  `json:"image"`
	FixedPrice   *float64 `json:"fixedPrice" binding:"omitempty,gt=0"`
	TargetAmount *float64 `json:"targetAmount" binding:"omitempty,gt=0"`
	IsActive     *bool    `json:"isActive"`
	Order        int      `json:"order" binding:"min=0"`
}

// List returns all categories with their donation counts.
func (h *DonationCategoryHandler) List(c *gin.Context) {
	var rows []models.DonationCategory
	errFind := h.db.WithContext(c.Request.Context()).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
		Find(&rows).Error
	if errFind != nil {
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "list categories failed")
		return
	}

	out := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		var count int64
		if errCount := h.db.WithContext(c.Request.Context()).
			Model(&models.Donation{}).Where("category_id = ?", row.ID).
			Count(&count).Error; errCount != nil {
			api.Error(c, http.StatusInternalServerError, api.CodeInternal, "count donations failed")
			return
		}
		out = append(out, gin.H{
			"id":            row.ID,
			"name":          row.Name,
			"description":   row.Description,
			"image":         row.Image,
			"fixedPrice":    row.FixedPrice,
			"targetAmount":  row.TargetAmount,
			"collected":     row.Collected,
			"isActive":      row.IsActive,
			"order":         row.Order,
			"createdAt":     row.CreatedAt,
			"updatedAt":     row.UpdatedAt,
			"donationCount": count,
		})
	}
	c.JSON(http.StatusOK, gin.H{"categories": out})
}

// Create validates input and inserts a category.
func (h *DonationCategoryHandler) Create(c *gin.Context) {
	var body categoryRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		api.ValidationError(c, errBind)
		return
	}

	isActive := true
	if body.IsActive != nil {
		isActive = *body.IsActive
	}
	category := models.DonationCategory{
		Name:         body.Name,
		Description:  body.Description,
		Image:        body.Image,
		FixedPrice:   body.FixedPrice,
		TargetAmount: body.TargetAmount,
		IsActive:     isActive,
		Order:        body.Order,
	}
	if errCreate := h.db.WithContext(c.Request.Context()).Create(&category).Error; errCreate != nil {
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "create category failed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// Update replaces the editable fields of a category.
func (h *DonationCategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var body categoryRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		api.ValidationError(c, errBind)
		return
	}

	var existing models.DonationCategory
	if errFind := h.db.WithContext(c.Request.Context()).First(&existing, id).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			api.Error(c, http.StatusNotFound, api.CodeNotFound, "")
			return
		}
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "query failed")
		return
	}

	isActive := existing.IsActive
	if body.IsActive != nil {
		isActive = *body.IsActive
	}
	updates := map[string]any{
		"name":          body.Name,
		"description":   body.Description,
		"image":         body.Image,
		"fixed_price":   body.FixedPrice,
		"target_amount": body.TargetAmount,
		"is_active":     isActive,
		"order":         body.Order,
	}
	if errUpdate := h.db.WithContext(c.Request.Context()).Model(&existing).Updates(updates).Error; errUpdate != nil {
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "update category failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": existing})
}

// Delete removes a category unless donations reference it.
func (h *DonationCategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var existing models.DonationCategory
	if errFind := h.db.WithContext(c.Request.Context()).First(&existing, id).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			api.Error(c, http.StatusNotFound, api.CodeNotFound, "")
			return
		}
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "query failed")
		return
	}

	var donationCount int64
	if errCount := h.db.WithContext(c.Request.Context()).
		Model(&models.Donation{}).Where("category_id = ?", id).
		Count(&donationCount).Error; errCount != nil {
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "count donations failed")
		return
	}
	if donationCount > 0 {
		api.Error(c, http.StatusBadRequest, api.CodeHasDonations, "Bu kategoride bağış kayıtları var, silinemez.")
		return
	}

	if errDelete := h.db.WithContext(c.Request.Context()).Delete(&existing).Error; errDelete != nil {
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "delete category failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
