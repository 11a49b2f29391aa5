package handlers

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sakaryaihh/akifweb/internal/http/api"
	"github.com/sakaryaihh/akifweb/internal/models"
)

// slugPattern restricts slugs to lowercase alphanumerics and hyphens.
var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// PostHandler manages admin CRUD endpoints for news posts.
type PostHandler struct {
	db *gorm.DB
}

// NewPostHandler constructs an admin post handler.
func NewPostHandler(db *gorm.DB) *PostHandler {
	return &PostHandler{db: db}
}

// createPostRequest captures the payload for creating a post.
type createPostRequest struct {
	Title     string  `json:"title" binding:"required,max=200"`
	Content   string  `json:"content" binding:"required"`
	Image     *string `json:"image"`
	Slug      string  `json:"slug" binding:"required,max=100"`
	Published bool    `json:"published"`
}

// List returns posts including unpublished ones, filtered and paginated.
func (h *PostHandler) List(c *gin.Context) {
	page := api.ParsePagination(c, 20, 50)

	q := h.db.WithContext(c.Request.Context()).Model(&models.Post{})
	switch strings.TrimSpace(c.Query("published")) {
	case "true":
		q = q.Where("published = ?", true)
	case "false":
		q = q.Where("published = ?", false)
	}

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
	c.JSON(http.StatusOK, gin.H{"posts": rows, "pagination": page.Envelope(total)})
}

// Create validates input and inserts a post.
func (h *PostHandler) Create(c *gin.Context) {
	var body createPostRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		api.ValidationError(c, errBind)
		return
	}
	if !slugPattern.MatchString(body.Slug) {
		api.Error(c, http.StatusBadRequest, api.CodeValidationError, "Slug sadece küçük harf, rakam ve tire içerebilir")
		return
	}

	if taken, errCheck := h.slugTaken(c, body.Slug, 0); errCheck != nil {
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "query failed")
		return
	} else if taken {
		api.Error(c, http.StatusConflict, api.CodeSlugExists, "Bu slug zaten kullanımda")
		return
	}

	post := models.Post{
		Title:     body.Title,
		Content:   body.Content,
		Image:     body.Image,
		Slug:      body.Slug,
		Published: body.Published,
	}
	if errCreate := h.db.WithContext(c.Request.Context()).Create(&post).Error; errCreate != nil {
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "create post failed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// updatePostRequest captures optional fields for post updates.
type updatePostRequest struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Image     *string `json:"image"`
	Slug      *string `json:"slug"`
	Published *bool   `json:"published"`
}

// Update applies partial changes to a post, re-checking slug uniqueness.
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var body updatePostRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		api.Error(c, http.StatusBadRequest, api.CodeInvalidJSON, "invalid json")
		return
	}

	var existing models.Post
	if errFind := h.db.WithContext(c.Request.Context()).First(&existing, id).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			api.Error(c, http.StatusNotFound, api.CodeNotFound, "")
			return
		}
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "query failed")
		return
	}

	updates := map[string]any{}
	if body.Title != nil {
		if strings.TrimSpace(*body.Title) == "" {
			api.Error(c, http.StatusBadRequest, api.CodeValidationError, "Başlık zorunludur")
			return
		}
		updates["title"] = *body.Title
	}
	if body.Content != nil {
		if strings.TrimSpace(*body.Content) == "" {
			api.Error(c, http.StatusBadRequest, api.CodeValidationError, "İçerik zorunludur")
			return
		}
		updates["content"] = *body.Content
	}
	if body.Image != nil {
		updates["image"] = *body.Image
	}
	if body.Slug != nil && *body.Slug != existing.Slug {
		if !slugPattern.MatchString(*body.Slug) {
			api.Error(c, http.StatusBadRequest, api.CodeValidationError, "Slug sadece küçük harf, rakam ve tire içerebilir")
			return
		}
		if taken, errCheck := h.slugTaken(c, *body.Slug, id); errCheck != nil {
			api.Error(c, http.StatusInternalServerError, api.CodeInternal, "query failed")
			return
		} else if taken {
			api.Error(c, http.StatusConflict, api.CodeSlugExists, "Bu slug zaten kullanımda")
			return
		}
		updates["slug"] = *body.Slug
	}
	if body.Published != nil {
		updates["published"] = *body.Published
	}

	if len(updates) > 0 {
		if errUpdate := h.db.WithContext(c.Request.Context()).Model(&existing).Updates(updates).Error; errUpdate != nil {
			api.Error(c, http.StatusInternalServerError, api.CodeInternal, "update post failed")
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"post": existing})
}

// Delete removes a post by ID.
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	res := h.db.WithContext(c.Request.Context()).Delete(&models.Post{}, id)
	if res.Error != nil {
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "delete post failed")
		return
	}
	if res.RowsAffected == 0 {
		api.Error(c, http.StatusNotFound, api.CodeNotFound, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// slugTaken reports whether another post already uses the slug.
func (h *PostHandler) slugTaken(c *gin.Context, slug string, excludeID uint64) (bool, error) {
	q := h.db.WithContext(c.Request.Context()).Model(&models.Post{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if errCount := q.Count(&count).Error; errCount != nil {
		return false, errCount
	}
	return count > 0, nil
}

// parseID parses the :id route parameter, writing a 400 on failure.
func parseID(c *gin.Context) (uint64, bool) {
	id, errParse := strconv.ParseUint(strings.TrimSpace(c.Param("id")), 10, 64)
	if errParse != nil {
		api.Error(c, http.StatusBadRequest, api.CodeValidationError, "invalid id")
		return 0, false
	}
	return id, true
}
