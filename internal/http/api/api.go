// Package api holds helpers shared by the public and admin HTTP
// surfaces: the error envelope, pagination contract, and session
// cookie conventions.
package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// SessionCookieName is the HTTP-only cookie carrying the session JWT.
const SessionCookieName = "auth_token"

// Machine-readable error codes used in the response envelope.
const (
	CodeValidationError       = "VALIDATION_ERROR"
	CodeInvalidJSON           = "INVALID_JSON"
	CodeInvalidCredentials    = "INVALID_CREDENTIALS"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodeForbidden             = "FORBIDDEN"
	CodeNotFound              = "NOT_FOUND"
	CodeInvalidKey            = "INVALID_KEY"
	CodeSlugExists            = "SLUG_EXISTS"
	CodeIBANExists            = "IBAN_EXISTS"
	CodeHasDonations          = "HAS_DONATIONS"
	CodeCategoryNotFound      = "CATEGORY_NOT_FOUND"
	CodeInvalidAmount         = "INVALID_AMOUNT"
	CodePaymentFailed         = "PAYMENT_FAILED"
	CodePaymentNotConfigured  = "PAYMENT_NOT_CONFIGURED"
	CodeRegistrationDisabled  = "REGISTRATION_DISABLED"
	CodeInternal              = "INTERNAL_ERROR"
)

// Error writes the standard error envelope.
func Error(c *gin.Context, status int, code, message string) {
	body := gin.H{"error": code}
	if message != "" {
		body["message"] = message
	}
	c.JSON(status, body)
}

// ValidationError writes a 400 envelope with field-level details
// extracted from gin's validator when available.
func ValidationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			details[fieldName(fe)] = fe.Tag()
		}
		c.JSON(400, gin.H{"error": CodeValidationError, "details": details})
		return
	}
	Error(c, 400, CodeValidationError, err.Error())
}

// fieldName lowercases the first rune of the struct field so details
// keys match the JSON payload members.
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

// Pagination is the page/limit contract shared by list endpoints.
type Pagination struct {
	Page  int
	Limit int
}

// Offset returns the row offset for the current page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Envelope renders the pagination response member for a total count.
func (p Pagination) Envelope(total int64) gin.H {
	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return gin.H{
		"page":       p.Page,
		"limit":      p.Limit,
		"total":      total,
		"totalPages": totalPages,
	}
}

// ParsePagination reads page and limit query parameters, clamping page
// to >= 1 and limit to [1, maxLimit] with the given default.
func ParsePagination(c *gin.Context, defaultLimit, maxLimit int) Pagination {
	page := atoiDefault(c.Query("page"), 1)
	if page < 1 {
		page = 1
	}
	limit := atoiDefault(c.Query("limit"), defaultLimit)
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return Pagination{Page: page, Limit: limit}
}

// ClientIP resolves the originating client address, preferring proxy
// headers over the socket peer.
func ClientIP(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		first := strings.TrimSpace(strings.SplitN(forwarded, ",", 2)[0])
		if first != "" {
			return first
		}
	}
	if realIP := strings.TrimSpace(c.GetHeader("X-Real-Ip")); realIP != "" {
		return realIP
	}
	return c.ClientIP()
}

func atoiDefault(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
