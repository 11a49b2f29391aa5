package forms

import (
	"fmt"
	"regexp"
	"strings"
)

// emailPattern is deliberately conservative: one @, no whitespace, a dot
// in the domain part.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Tel length bounds applied to tel-typed fields.
const (
	telMinLength = 10
	telMaxLength = 20
)

// Result is the outcome of validating a submission payload.
type Result struct {
	OK      bool
	Message string         // First validation error, in field order.
	Data    map[string]any // Accepted values keyed by field key.
}

// Validate checks a submission payload against the config. Fields are
// checked in definition order and the first failure wins, so error
// messages are deterministic. Keys not present in the config are
// dropped from the output.
func Validate(payload map[string]any, cfg Config) Result {
	if payload == nil {
		return Result{Message: "Geçersiz form verisi."}
	}

	data := make(map[string]any, len(cfg.Fields))
	for _, field := range cfg.Fields {
		val, present := payload[field.Key]
		if present && val == nil {
			present = false
		}

		if field.Required {
			if !present {
				return Result{Message: fmt.Sprintf("%s zorunludur.", field.Label)}
			}
			if s, ok := val.(string); ok && strings.TrimSpace(s) == "" {
				return Result{Message: fmt.Sprintf("%s zorunludur.", field.Label)}
			}
			if arr, ok := val.([]any); ok && len(arr) == 0 {
				return Result{Message: fmt.Sprintf("%s en az bir seçenek gerektirir.", field.Label)}
			}
		}

		if present {
			if msg := checkFieldValue(field, val); msg != "" {
				return Result{Message: msg}
			}
			data[field.Key] = val
		}
	}

	return Result{OK: true, Data: data}
}

// checkFieldValue applies type and length constraints to a present value.
// Only string values are subject to format and length checks.
func checkFieldValue(field Field, val any) string {
	s, isString := val.(string)

	if field.Type == FieldEmail && isString {
		if !emailPattern.MatchString(s) {
			return "Geçerli bir e-posta adresi girin."
		}
	}
	if field.Type == FieldTel && isString {
		if n := len([]rune(s)); n < telMinLength || n > telMaxLength {
			return "Geçerli bir telefon numarası girin."
		}
	}
	if field.MinLength > 0 && isString && len([]rune(s)) < field.MinLength {
		return fmt.Sprintf("%s en az %d karakter olmalı.", field.Label, field.MinLength)
	}
	if field.MaxLength > 0 && isString && len([]rune(s)) > field.MaxLength {
		return fmt.Sprintf("%s en fazla %d karakter olmalı.", field.Label, field.MaxLength)
	}
	return ""
}
