package handlers

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sakaryaihh/akifweb/internal/http/api"
	"github.com/sakaryaihh/akifweb/internal/models"
)

// ibanPattern matches a normalized Turkish IBAN: TR plus 24 digits.
var ibanPattern = regexp.MustCompile(`^TR[0-9]{24}$`)

// BankAccountHandler manages admin CRUD endpoints for bank accounts.
type BankAccountHandler struct {
	db *gorm.DB
}

// NewBankAccountHandler constructs an admin bank account handler.
func NewBankAccountHandler(db *gorm.DB) *BankAccountHandler {
	return &BankAccountHandler{db: db}
}

// bankAccountRequest captures the payload for creating or replacing an
// account.
type bankAccountRequest struct {
	BankName string `json:"bankName" binding:"required,max=100"`
	Branch   string `json:"branch" binding:"required,max=100"`
	IBAN     string `json:"iban" binding:"required"`
	Currency string `json:"currency" binding:"omitempty,len=3"`
	Order    int    `json:"order" binding:"min=0"`
	IsActive *bool  `json:"isActive"`
}

// NormalizeIBAN uppercases and strips whitespace from an IBAN.
func NormalizeIBAN(iban string) string {
	return strings.ToUpper(strings.Join(strings.Fields(iban), ""))
}

// List returns all bank accounts ordered for display.
func (h *BankAccountHandler) List(c *gin.Context) {
	var rows []models.BankAccount
	errFind := h.db.WithContext(c.Request.Context()).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
		Order("bank_name ASC").
		Find(&rows).Error
	if errFind != nil {
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "list bank accounts failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"accounts": rows})
}

// Create validates input and inserts a bank account.
func (h *BankAccountHandler) Create(c *gin.Context) {
	var body bankAccountRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		api.ValidationError(c, errBind)
		return
	}

	iban := NormalizeIBAN(body.IBAN)
	if !ibanPattern.MatchString(iban) {
		api.Error(c, http.StatusBadRequest, api.CodeValidationError, "Geçerli TR IBAN girin")
		return
	}

	if taken, errCheck := h.ibanTaken(c, iban, 0); errCheck != nil {
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "query failed")
		return
	} else if taken {
		api.Error(c, http.StatusConflict, api.CodeIBANExists, "Bu IBAN zaten kayıtlı")
		return
	}

	currency := body.Currency
	if currency == "" {
		currency = "TRY"
	}
	isActive := true
	if body.IsActive != nil {
		isActive = *body.IsActive
	}
	account := models.BankAccount{
		BankName: body.BankName,
		Branch:   body.Branch,
		IBAN:     iban,
		Currency: strings.ToUpper(currency),
		Order:    body.Order,
		IsActive: isActive,
	}
	if errCreate := h.db.WithContext(c.Request.Context()).Create(&account).Error; errCreate != nil {
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "create bank account failed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"account": account})
}

// Update replaces the fields of a bank account, re-checking IBAN
// uniqueness when it changes.
func (h *BankAccountHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var body bankAccountRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		api.ValidationError(c, errBind)
		return
	}

	var existing models.BankAccount
	if errFind := h.db.WithContext(c.Request.Context()).First(&existing, id).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			api.Error(c, http.StatusNotFound, api.CodeNotFound, "")
			return
		}
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "query failed")
		return
	}

	iban := NormalizeIBAN(body.IBAN)
	if !ibanPattern.MatchString(iban) {
		api.Error(c, http.StatusBadRequest, api.CodeValidationError, "Geçerli TR IBAN girin")
		return
	}
	if iban != existing.IBAN {
		if taken, errCheck := h.ibanTaken(c, iban, id); errCheck != nil {
			api.Error(c, http.StatusInternalServerError, api.CodeInternal, "query failed")
			return
		} else if taken {
			api.Error(c, http.StatusConflict, api.CodeIBANExists, "Bu IBAN zaten kayıtlı")
			return
		}
	}

	currency := body.Currency
	if currency == "" {
		currency = "TRY"
	}
	isActive := existing.IsActive
	if body.IsActive != nil {
		isActive = *body.IsActive
	}
	updates := map[string]any{
		"bank_name": body.BankName,
		"branch":    body.Branch,
		"iban":      iban,
		"currency":  strings.ToUpper(currency),
		"order":     body.Order,
		"is_active": isActive,
	}
	if errUpdate := h.db.WithContext(c.Request.Context()).Model(&existing).Updates(updates).Error; errUpdate != nil {
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "update bank account failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": existing})
}

// Delete removes a bank account by ID.
func (h *BankAccountHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	res := h.db.WithContext(c.Request.Context()).Delete(&models.BankAccount{}, id)
	if res.Error != nil {
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "delete bank account failed")
		return
	}
	if res.RowsAffected == 0 {
		api.Error(c, http.StatusNotFound, api.CodeNotFound, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ibanTaken reports whether another account already uses the IBAN.
func (h *BankAccountHandler) ibanTaken(c *gin.Context, iban string, excludeID uint64) (bool, error) {
	q := h.db.WithContext(c.Request.Context()).Model(&models.BankAccount{}).Where("iban = ?", iban)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if errCount := q.Count(&count).Error; errCount != nil {
		return false, errCount
	}
	return count > 0, nil
}
