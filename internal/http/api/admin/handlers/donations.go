package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sakaryaihh/akifweb/internal/db"
	"github.com/sakaryaihh/akifweb/internal/http/api"
	"github.com/sakaryaihh/akifweb/internal/models"
)

// DonationHandler lists donation transactions for reconciliation.
type DonationHandler struct {
	db *gorm.DB
}

// NewDonationHandler constructs an admin donation handler.
func NewDonationHandler(db *gorm.DB) *DonationHandler {
	return &DonationHandler{db: db}
}

// List returns donations newest first with category/status filters and
// an optional case-insensitive donor search. Filtering by
// status=PENDING surfaces rows stuck before a terminal gateway update
// so an operator can reconcile them manually.
func (h *DonationHandler) List(c *gin.Context) {
	page := api.ParsePagination(c, 20, 100)

	q := h.db.WithContext(c.Request.Context()).Model(&models.Donation{})

	if categoryIDQ := strings.TrimSpace(c.Query("categoryId")); categoryIDQ != "" {
		if id, errParse := strconv.ParseUint(categoryIDQ, 10, 64); errParse == nil {
			q = q.Where("category_id = ?", id)
		}
	}
	if statusQ := strings.TrimSpace(c.Query("status")); statusQ != "" && validDonationStatus(statusQ) {
		q = q.Where("status = ?", statusQ)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		pattern := db.NormalizeLikePattern(h.db, "%"+search+"%")
		q = q.Where(
			h.db.Where(db.CaseInsensitiveLikeExpr(h.db, "donor_name"), pattern).
				Or(db.CaseInsensitiveLikeExpr(h.db, "donor_email"), pattern),
		)
	}

	var total int64
	if errCount := q.Count(&total).Error; errCount != nil {
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "list donations failed")
		return
	}
	var rows []models.Donation
	if errFind := q.Preload("Category").
		Order("created_at DESC").
		Offset(page.Offset()).Limit(page.Limit).
		Find(&rows).Error; errFind != nil {
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "list donations failed")
		return
	}

	out := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		categoryName := ""
		if row.Category != nil {
			categoryName = row.Category.Name
		}
		out = append(out, gin.H{
			"id":                  row.ID,
			"categoryId":          row.CategoryID,
			"category":            gin.H{"name": categoryName},
			"amount":              row.Amount,
			"currency":            row.Currency,
			"status":              row.Status,
			"donorName":           row.DonorName,
			"donorEmail":          row.DonorEmail,
			"donorPhone":          row.DonorPhone,
			"donorIdentityNumber": row.DonorIdentityNumber,
			"ip":                  row.IP,
			"conversationId":      row.ConversationID,
			"paymentId":           row.PaymentID,
			"createdAt":           row.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"donations": out, "pagination": page.Envelope(total)})
}

func validDonationStatus(status string) bool {
	for _, s := range models.DonationStatuses {
		if s == status {
			return true
		}
	}
	return false
}
