package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sakaryaihh/akifweb/internal/http/api"
	"github.com/sakaryaihh/akifweb/internal/models"
)

// PostHandler serves published news articles.
type PostHandler struct {
	db *gorm.DB
}

// NewPostHandler constructs a public post handler.
func NewPostHandler(db *gorm.DB) *PostHandler {
	return &PostHandler{db: db}
}

// List returns published posts, newest first, paginated.
func (h *PostHandler) List(c *gin.Context) {
	page := api.ParsePagination(c, 10, 20)

	q := h.db.WithContext(c.Request.Context()).Model(&models.Post{}).Where("published = ?", true)

	var total int64
	if errCount := q.Count(&total).Error; errCount != nil {
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "list posts failed")
		return
	}

	var rows []models.Post
	if errFind := q.Order("created_at DESC").Offset(page.Offset()).Limit(page.Limit).Find(&rows).Error; errFind != nil {
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "list posts failed")
		return
	}

	out := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		out = append(out, gin.H{
			"id":        row.ID,
			"title":     row.Title,
			"content":   row.Content,
			"image":     row.Image,
			"slug":      row.Slug,
			"createdAt": row.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"posts": out, "pagination": page.Envelope(total)})
}

// GetBySlug returns a single published post.
func (h *PostHandler) GetBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	var post models.Post
	errFind := h.db.WithContext(c.Request.Context()).
		Where("slug = ? AND published = ?", slug, true).
		First(&post).Error
	if errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			api.Error(c, http.StatusNotFound, api.CodeNotFound, "")
			return
		}
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "query failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}
