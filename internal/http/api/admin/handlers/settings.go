package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sakaryaihh/akifweb/internal/http/api"
	"github.com/sakaryaihh/akifweb/internal/settings"
)

// SettingHandler reads and writes JSON settings by key.
type SettingHandler struct {
	db *gorm.DB
}

// NewSettingHandler constructs an admin settings handler.
func NewSettingHandler(db *gorm.DB) *SettingHandler {
	return &SettingHandler{db: db}
}

// Get returns the stored value for ?key=, or its default when no row
// exists. Reads never persist the default.
func (h *SettingHandler) Get(c *gin.Context) {
	key := strings.TrimSpace(c.Query("key"))
	raw, errRaw := settings.Raw(c.Request.Context(), h.db, key)
	if errRaw != nil {
		if errors.Is(errRaw, settings.ErrInvalidKey) {
			api.Error(c, http.StatusBadRequest, api.CodeInvalidKey, "Geçersiz ayar anahtarı")
			return
		}
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "read setting failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "value": raw})
}

// putSettingRequest carries a setting key and its replacement value.
type putSettingRequest struct {
	Key   string          `json:"key" binding:"required"`
	Value json.RawMessage `json:"value" binding:"required"`
}

// Put upserts the value for a setting key.
func (h *SettingHandler) Put(c *gin.Context) {
	var body putSettingRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		api.ValidationError(c, errBind)
		return
	}
	if !json.Valid(body.Value) {
		api.Error(c, http.StatusBadRequest, api.CodeValidationError, "Geçersiz JSON değeri")
		return
	}

	if errPut := settings.Put(c.Request.Context(), h.db, body.Key, body.Value); errPut != nil {
		if errors.Is(errPut, settings.ErrInvalidKey) {
			api.Error(c, http.StatusBadRequest, api.CodeInvalidKey, "Geçersiz ayar anahtarı")
			return
		}
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "write setting failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "key": body.Key})
}
