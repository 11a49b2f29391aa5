package handlers

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sakaryaihh/akifweb/internal/http/api"
	"github.com/sakaryaihh/akifweb/internal/models"
	"github.com/sakaryaihh/akifweb/internal/payment"
	"github.com/sakaryaihh/akifweb/internal/settings"
)

// fixedPriceTolerance is the absolute tolerance when matching a fixed
// category price.
const fixedPriceTolerance = 0.01

// GatewayFactory builds a payment gateway from resolved credentials.
// Injected so tests can substitute a fake gateway.
type GatewayFactory func(cfg settings.IyzicoConfig) payment.Gateway

// DefaultGatewayFactory returns the production iyzico client.
func DefaultGatewayFactory(cfg settings.IyzicoConfig) payment.Gateway {
	return payment.NewIyzicoClient(cfg)
}

// DonationHandler serves donation categories and the payment flow.
type DonationHandler struct {
	db      *gorm.DB
	gateway GatewayFactory
}

// NewDonationHandler constructs a donation handler.
func NewDonationHandler(db *gorm.DB, gateway GatewayFactory) *DonationHandler {
	if gateway == nil {
		gateway = DefaultGatewayFactory
	}
	return &DonationHandler{db: db, gateway: gateway}
}

// Categories returns active donation categories in sort order.
func (h *DonationHandler) Categories(c *gin.Context) {
	var rows []models.DonationCategory
	errFind := h.db.WithContext(c.Request.Context()).
		Where("is_active = ?", true).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
		Find(&rows).Error
	if errFind != nil {
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "list categories failed")
		return
	}

	out := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		out = append(out, gin.H{
			"id":           row.ID,
			"name":         row.Name,
			"description":  row.Description,
			"fixedPrice":   row.FixedPrice,
			"targetAmount": row.TargetAmount,
			"collected":    row.Collected,
			"order":        row.Order,
		})
	}
	c.JSON(http.StatusOK, gin.H{"categories": out})
}

// payRequest is the donation payment payload.
type payRequest struct {
	CategoryID          uint64  `json:"categoryId" binding:"required"`
	Amount              float64 `json:"amount" binding:"required,gt=0"`
	DonorName           string  `json:"donorName" binding:"required,min=2,max=100"`
	DonorEmail          string  `json:"donorEmail" binding:"required,email"`
	DonorPhone          string  `json:"donorPhone" binding:"required,min=10,max=20"`
	DonorIdentityNumber string  `json:"donorIdentityNumber" binding:"omitempty,len=11,numeric"`

	PaymentCard struct {
		CardHolderName string `json:"cardHolderName" binding:"required,min=2"`
		CardNumber     string `json:"cardNumber" binding:"required,min=15,max=19"`
		ExpireMonth    string `json:"expireMonth" binding:"required,len=2"`
		ExpireYear     string `json:"expireYear" binding:"required,len=4"`
		CVC            string `json:"cvc" binding:"required,min=3,max=4"`
	} `json:"paymentCard" binding:"required"`

	BillingAddress struct {
		ContactName string `json:"contactName" binding:"required,min=2"`
		City        string `json:"city" binding:"required"`
		Country     string `json:"country" binding:"required"`
		Address     string `json:"address" binding:"required,min=5"`
		ZipCode     string `json:"zipCode" binding:"required,min=4,max=10"`
	} `json:"billingAddress" binding:"required"`
}

// Pay orchestrates a card payment: configuration check, validation,
// PENDING record, gateway call, then the terminal status transition.
// The COMPLETED update and the category collected increment run in one
// transaction so neither can land without the other.
func (h *DonationHandler) Pay(c *gin.Context) {
	ctx := c.Request.Context()

	// Configuration is checked before any row is created so an
	// unconfigured gateway leaves no PENDING residue.
	gatewayCfg, configured := payment.ResolveConfig(ctx, h.db)
	if !configured {
		api.Error(c, http.StatusServiceUnavailable, api.CodePaymentNotConfigured, "Ödeme sistemi yapılandırılmamış")
		return
	}

	var body payRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		api.ValidationError(c, errBind)
		return
	}

	var category models.DonationCategory
	errFind := h.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", body.CategoryID, true).
		First(&category).Error
	if errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			api.Error(c, http.StatusNotFound, api.CodeCategoryNotFound, "Bağış kategorisi bulunamadı")
			return
		}
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "query failed")
		return
	}

	if category.FixedPrice != nil && math.Abs(body.Amount-*category.FixedPrice) > fixedPriceTolerance {
		api.Error(c, http.StatusBadRequest, api.CodeInvalidAmount,
			fmt.Sprintf("Bu kategori için sabit miktar: %.2f TRY", *category.FixedPrice))
		return
	}

	ip := api.ClientIP(c)
	donation := models.Donation{
		CategoryID: category.ID,
		Amount:     body.Amount,
		Currency:   "TRY",
		Status:     models.DonationPending,
		DonorName:  body.DonorName,
		DonorEmail: body.DonorEmail,
		DonorPhone: body.DonorPhone,
	}
	if body.DonorIdentityNumber != "" {
		donation.DonorIdentityNumber = &body.DonorIdentityNumber
	}
	if ip != "" {
		donation.IP = &ip
	}
	// PENDING row lands before the gateway call: a crash mid-call leaves
	// an auditable record instead of a silent loss.
	if errCreate := h.db.WithContext(ctx).Create(&donation).Error; errCreate != nil {
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "create donation failed")
		return
	}

	conversationID := payment.NewConversationID()
	result, errPay := h.gateway(gatewayCfg).CreatePayment(ctx, &payment.Request{
		ConversationID:      conversationID,
		CategoryID:          category.ID,
		CategoryName:        category.Name,
		Amount:              body.Amount,
		DonorName:           body.DonorName,
		DonorEmail:          body.DonorEmail,
		DonorPhone:          body.DonorPhone,
		DonorIdentityNumber: body.DonorIdentityNumber,
		CardHolderName:      body.PaymentCard.CardHolderName,
		CardNumber:          body.PaymentCard.CardNumber,
		ExpireMonth:         body.PaymentCard.ExpireMonth,
		ExpireYear:          body.PaymentCard.ExpireYear,
		CVC:                 body.PaymentCard.CVC,
		ContactName:         body.BillingAddress.ContactName,
		City:                body.BillingAddress.City,
		Country:             body.BillingAddress.Country,
		Address:             body.BillingAddress.Address,
		ZipCode:             body.BillingAddress.ZipCode,
		IP:                  ip,
	})
	if errPay != nil || !result.Success {
		h.markFailed(c, donation.ID)
		code := ""
		message := "Ödeme işlemi başarısız"
		if errPay != nil {
			log.WithError(errPay).Warnf("donation %d: gateway call failed", donation.ID)
		} else {
			code = result.ErrorCode
			if result.ErrorMessage != "" {
				message = result.ErrorMessage
			}
		}
		body := gin.H{"error": api.CodePaymentFailed, "message": message}
		if code != "" {
			body["errorCode"] = code
		}
		c.JSON(http.StatusPaymentRequired, body)
		return
	}

	errTx := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if errUpdate := tx.Model(&models.Donation{}).Where("id = ?", donation.ID).Updates(map[string]any{
			"status":          models.DonationCompleted,
			"conversation_id": result.ConversationID,
			"payment_id":      result.PaymentID,
		}).Error; errUpdate != nil {
			return errUpdate
		}
		// Server-side increment: concurrent completions against the same
		// category must not lose updates.
		return tx.Model(&models.DonationCategory{}).Where("id = ?", category.ID).
			Update("collected", gorm.Expr("collected + ?", body.Amount)).Error
	})
	if errTx != nil {
		log.WithError(errTx).Errorf("donation %d: completion transaction failed", donation.ID)
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "finalize donation failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"donationId": donation.ID,
		"message":    "Bağışınız başarıyla alındı. Teşekkür ederiz.",
	})
}

// markFailed transitions a donation to FAILED after a gateway rejection.
func (h *DonationHandler) markFailed(c *gin.Context, donationID uint64) {
	errUpdate := h.db.WithContext(c.Request.Context()).
		Model(&models.Donation{}).Where("id = ?", donationID).
		Update("status", models.DonationFailed).Error
	if errUpdate != nil {
		log.WithError(errUpdate).Errorf("donation %d: mark failed", donationID)
	}
}
