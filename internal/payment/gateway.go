// Package payment implements the donation payment flow against the
// iyzico card payment gateway.
package payment

import (
	"context"
	"math"
	"os"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sakaryaihh/akifweb/internal/settings"
)

// markupRate is the fixed processing markup applied to the paid price.
const markupRate = 0.02

// Request carries everything needed for one payment attempt.
type Request struct {
	ConversationID string // Idempotent correlation token for this attempt.

	CategoryID   uint64
	CategoryName string
	Amount       float64 // Requested donation amount; paid price adds the markup.

	DonorName           string
	DonorEmail          string
	DonorPhone          string
	DonorIdentityNumber string // Optional national id.

	CardHolderName string
	CardNumber     string
	ExpireMonth    string
	ExpireYear     string
	CVC            string

	ContactName string
	City        string
	Country     string
	Address     string
	ZipCode     string

	IP string // Client IP forwarded to the gateway.
}

// Result is the gateway's answer to a payment attempt.
type Result struct {
	Success        bool
	PaymentID      string
	ConversationID string
	ErrorCode      string
	ErrorMessage   string
}

// Gateway creates card payments. Implemented by the iyzico client and
// by test fakes.
type Gateway interface {
	CreatePayment(ctx context.Context, req *Request) (*Result, error)
}

// NewConversationID generates a fresh correlation token for one attempt.
func NewConversationID() string {
	return "don-" + uuid.NewString()
}

// PaidPrice returns the amount inflated by the processing markup,
// rounded to two decimals.
func PaidPrice(amount float64) float64 {
	return math.Round(amount*(1+markupRate)*100) / 100
}

// ResolveConfig determines the active gateway credentials. Environment
// variables take precedence over the database setting; when neither
// yields both credential fields the gateway is unconfigured.
func ResolveConfig(ctx context.Context, conn *gorm.DB) (settings.IyzicoConfig, bool) {
	fromEnv := settings.IyzicoConfig{
		APIKey:    strings.TrimSpace(os.Getenv("IYZIPAY_API_KEY")),
		SecretKey: strings.TrimSpace(os.Getenv("IYZIPAY_SECRET_KEY")),
		BaseURI:   strings.TrimSpace(os.Getenv("IYZIPAY_URI")),
	}
	if fromEnv.APIKey != "" && fromEnv.SecretKey != "" {
		if fromEnv.BaseURI == "" {
			fromEnv.BaseURI = settings.DefaultIyzicoConfig().BaseURI
		}
		return fromEnv, true
	}
	return settings.Iyzico(ctx, conn)
}
