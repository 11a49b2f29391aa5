package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sakaryaihh/akifweb/internal/settings"
)

// paymentAuthPath is the non-3DS card payment endpoint.
const paymentAuthPath = "/payment/auth"

// defaultBuyerIP is forwarded when the client IP could not be resolved.
const defaultBuyerIP = "85.34.78.112"

// defaultIdentityNumber stands in when the donor omits a national id.
const defaultIdentityNumber = "11111111111"

var nonAlnumPattern = regexp.MustCompile(`[^a-zA-Z0-9]`)

// IyzicoClient talks to the iyzico REST API.
type IyzicoClient struct {
	apiKey     string
	secretKey  string
	baseURI    string
	httpClient *http.Client
}

// NewIyzicoClient constructs a gateway client with a bounded timeout.
func NewIyzicoClient(cfg settings.IyzicoConfig) *IyzicoClient {
	return &IyzicoClient{
		apiKey:    cfg.APIKey,
		secretKey: cfg.SecretKey,
		baseURI:   strings.TrimRight(cfg.BaseURI, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// iyzicoPaymentRequest is the wire format of a payment creation call.
type iyzicoPaymentRequest struct {
	Locale          string              `json:"locale"`
	ConversationID  string              `json:"conversationId"`
	Price           string              `json:"price"`
	PaidPrice       string              `json:"paidPrice"`
	Currency        string              `json:"currency"`
	Installment     string              `json:"installment"`
	BasketID        string              `json:"basketId"`
	PaymentChannel  string              `json:"paymentChannel"`
	PaymentGroup    string              `json:"paymentGroup"`
	PaymentCard     iyzicoPaymentCard   `json:"paymentCard"`
	Buyer           iyzicoBuyer         `json:"buyer"`
	ShippingAddress iyzicoAddress       `json:"shippingAddress"`
	BillingAddress  iyzicoAddress       `json:"billingAddress"`
	BasketItems     []iyzicoBasketItem  `json:"basketItems"`
}

type iyzicoPaymentCard struct {
	CardHolderName string `json:"cardHolderName"`
	CardNumber     string `json:"cardNumber"`
	ExpireMonth    string `json:"expireMonth"`
	ExpireYear     string `json:"expireYear"`
	CVC            string `json:"cvc"`
	RegisterCard   string `json:"registerCard"`
}

type iyzicoBuyer struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Surname             string `json:"surname"`
	GSMNumber           string `json:"gsmNumber"`
	Email               string `json:"email"`
	IdentityNumber      string `json:"identityNumber"`
	LastLoginDate       string `json:"lastLoginDate"`
	RegistrationDate    string `json:"registrationDate"`
	RegistrationAddress string `json:"registrationAddress"`
	IP                  string `json:"ip"`
	City                string `json:"city"`
	Country             string `json:"country"`
	ZipCode             string `json:"zipCode"`
}

type iyzicoAddress struct {
	ContactName string `json:"contactName"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Address     string `json:"address"`
	ZipCode     string `json:"zipCode"`
}

type iyzicoBasketItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category1 string `json:"category1"`
	Category2 string `json:"category2"`
	ItemType  string `json:"itemType"`
	Price     string `json:"price"`
}

// iyzicoPaymentResponse is the subset of the response we act on.
type iyzicoPaymentResponse struct {
	Status         string          `json:"status"`
	PaymentID      json.RawMessage `json:"paymentId"` // String or number depending on API version.
	ConversationID string          `json:"conversationId"`
	ErrorCode      string          `json:"errorCode"`
	ErrorMessage   string          `json:"errorMessage"`
}

// CreatePayment submits a single non-3DS card payment. Transport errors
// are returned as errors; gateway rejections come back as a Result with
// Success false and the gateway's error code/message.
func (c *IyzicoClient) CreatePayment(ctx context.Context, req *Request) (*Result, error) {
	body := c.buildRequest(req)
	data, errMarshal := json.Marshal(body)
	if errMarshal != nil {
		return nil, fmt.Errorf("iyzico: marshal request: %w", errMarshal)
	}

	httpReq, errNew := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURI+paymentAuthPath, bytes.NewReader(data))
	if errNew != nil {
		return nil, fmt.Errorf("iyzico: build request: %w", errNew)
	}
	randomKey := strconv.FormatInt(time.Now().UnixNano(), 10)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", c.authorizationHeader(randomKey, paymentAuthPath, data))
	httpReq.Header.Set("x-iyzi-rnd", randomKey)

	resp, errDo := c.httpClient.Do(httpReq)
	if errDo != nil {
		return nil, fmt.Errorf("iyzico: request: %w", errDo)
	}
	defer func() { _ = resp.Body.Close() }()

	respData, errRead := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if errRead != nil {
		return nil, fmt.Errorf("iyzico: read response: %w", errRead)
	}

	var parsed iyzicoPaymentResponse
	if errUnmarshal := json.Unmarshal(respData, &parsed); errUnmarshal != nil {
		return nil, fmt.Errorf("iyzico: parse response: %w", errUnmarshal)
	}

	paymentID := rawToString(parsed.PaymentID)
	if parsed.Status == "success" && paymentID != "" {
		return &Result{
			Success:        true,
			PaymentID:      paymentID,
			ConversationID: req.ConversationID,
		}, nil
	}

	message := parsed.ErrorMessage
	if message == "" {
		message = "Ödeme işlemi başarısız"
	}
	return &Result{
		Success:        false,
		ConversationID: req.ConversationID,
		ErrorCode:      parsed.ErrorCode,
		ErrorMessage:   message,
	}, nil
}

// buildRequest maps the domain request onto the iyzico wire format.
func (c *IyzicoClient) buildRequest(req *Request) iyzicoPaymentRequest {
	now := time.Now().UTC().Format("2006-01-02 15:04:05")

	name, surname := splitDonorName(req.DonorName)
	identity := req.DonorIdentityNumber
	if identity == "" {
		identity = defaultIdentityNumber
	}
	ip := req.IP
	if ip == "" {
		ip = defaultBuyerIP
	}

	address := iyzicoAddress{
		ContactName: req.ContactName,
		City:        req.City,
		Country:     req.Country,
		Address:     req.Address,
		ZipCode:     req.ZipCode,
	}

	return iyzicoPaymentRequest{
		Locale:         "tr",
		ConversationID: req.ConversationID,
		Price:          formatPrice(req.Amount),
		PaidPrice:      formatPrice(PaidPrice(req.Amount)),
		Currency:       "TRY",
		Installment:    "1",
		BasketID:       fmt.Sprintf("BASKET-%08d", req.CategoryID),
		PaymentChannel: "WEB",
		PaymentGroup:   "PRODUCT",
		PaymentCard: iyzicoPaymentCard{
			CardHolderName: req.CardHolderName,
			CardNumber:     strings.ReplaceAll(req.CardNumber, " ", ""),
			ExpireMonth:    req.ExpireMonth,
			ExpireYear:     req.ExpireYear,
			CVC:            req.CVC,
			RegisterCard:   "0",
		},
		Buyer: iyzicoBuyer{
			ID:                  buyerID(req.DonorEmail),
			Name:                name,
			Surname:             surname,
			GSMNumber:           normalizeGSM(req.DonorPhone),
			Email:               req.DonorEmail,
			IdentityNumber:      identity,
			LastLoginDate:       now,
			RegistrationDate:    now,
			RegistrationAddress: req.Address,
			IP:                  ip,
			City:                req.City,
			Country:             req.Country,
			ZipCode:             req.ZipCode,
		},
		ShippingAddress: address,
		BillingAddress:  address,
		BasketItems: []iyzicoBasketItem{
			{
				ID:        fmt.Sprintf("BI-%d", req.CategoryID),
				Name:      req.CategoryName,
				Category1: "Donation",
				Category2: "Bağış",
				ItemType:  "VIRTUAL",
				Price:     formatPrice(req.Amount),
			},
		},
	}
}

// authorizationHeader builds the IYZWSv2 HMAC-SHA256 header.
func (c *IyzicoClient) authorizationHeader(randomKey, path string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(c.secretKey))
	mac.Write([]byte(randomKey))
	mac.Write([]byte(path))
	mac.Write(body)
	signature := hex.EncodeToString(mac.Sum(nil))

	auth := fmt.Sprintf("apiKey:%s&randomKey:%s&signature:%s", c.apiKey, randomKey, signature)
	return "IYZWSv2 " + base64.StdEncoding.EncodeToString([]byte(auth))
}

// splitDonorName splits a full name into first and remaining parts;
// single-word names are reused for both.
func splitDonorName(full string) (string, string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return full, full
	}
	if len(parts) == 1 {
		return parts[0], parts[0]
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// normalizeGSM converts local Turkish numbers to +90 international form.
func normalizeGSM(phone string) string {
	if strings.HasPrefix(phone, "+") {
		return phone
	}
	return "+90" + strings.TrimPrefix(phone, "0")
}

// buyerID derives a stable pseudo-id from the donor email.
func buyerID(email string) string {
	trimmed := email
	if len(trimmed) > 20 {
		trimmed = trimmed[:20]
	}
	return "BY-" + nonAlnumPattern.ReplaceAllString(trimmed, "")
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func rawToString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}
