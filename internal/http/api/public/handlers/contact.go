package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sakaryaihh/akifweb/internal/settings"
)

// ContactHandler serves the organization contact details.
type ContactHandler struct {
	db *gorm.DB
}

// NewContactHandler constructs a contact handler.
func NewContactHandler(db *gorm.DB) *ContactHandler {
	return &ContactHandler{db: db}
}

// Get returns the contact_info setting value, falling back to the
// hardcoded default when unset.
func (h *ContactHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, settings.Contact(c.Request.Context(), h.db))
}
