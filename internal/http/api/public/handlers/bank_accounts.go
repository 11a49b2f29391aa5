package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sakaryaihh/akifweb/internal/http/api"
	"github.com/sakaryaihh/akifweb/internal/models"
)

// BankAccountHandler serves the public account numbers page.
type BankAccountHandler struct {
	db *gorm.DB
}

// NewBankAccountHandler constructs a public bank account handler.
func NewBankAccountHandler(db *gorm.DB) *BankAccountHandler {
	return &BankAccountHandler{db: db}
}

// List returns active accounts grouped by bank, each account rendered
// as "CUR IBAN: TR...". Group order follows the account sort order.
func (h *BankAccountHandler) List(c *gin.Context) {
	var rows []models.BankAccount
	errFind := h.db.WithContext(c.Request.Context()).
		Where("is_active = ?", true).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
		Find(&rows).Error
	if errFind != nil {
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "list bank accounts failed")
		return
	}

	byBank := map[string][]string{}
	names := make([]string, 0)
	for _, row := range rows {
		if _, seen := byBank[row.BankName]; !seen {
			names = append(names, row.BankName)
		}
		byBank[row.BankName] = append(byBank[row.BankName], fmt.Sprintf("%s IBAN: %s", row.Currency, row.IBAN))
	}

	banks := make([]gin.H, 0, len(names))
	for _, name := range names {
		banks = append(banks, gin.H{"name": name, "accounts": byBank[name]})
	}
	c.JSON(http.StatusOK, gin.H{"banks": banks})
}
