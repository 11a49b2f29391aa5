package forms

import "strings"

// DisplayFields are the legacy summary columns derived from a
// submission so admin list views stay readable under any custom schema.
type DisplayFields struct {
	FullName string
	Email    string
	Phone    string
	Reason   string
}

// ExtractDisplayFields derives the summary columns from accepted data.
// Resolution order per column: exact key, common alias keys, first
// field of the matching type, then a "-" placeholder.
func ExtractDisplayFields(data map[string]any, cfg Config) DisplayFields {
	byKey := func(key string) string { return stringValue(data[key]) }
	byType := func(t FieldType) string {
		for _, f := range cfg.Fields {
			if f.Type == t {
				return stringValue(data[f.Key])
			}
		}
		return ""
	}

	return DisplayFields{
		FullName: firstNonEmpty(byKey("fullName"), byKey("adSoyad"), byKey("name"), byType(FieldText), "-"),
		Email:    firstNonEmpty(byKey("email"), byKey("eposta"), byType(FieldEmail), "-"),
		Phone:    firstNonEmpty(byKey("phone"), byKey("telefon"), byType(FieldTel), "-"),
		Reason:   firstNonEmpty(byKey("reason"), byKey("message"), byKey("mesaj"), byType(FieldTextarea), "-"),
	}
}

// stringValue renders a submitted value for display: strings pass
// through, checkbox arrays join with ", ", everything else is empty.
func stringValue(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case []any:
		parts := make([]string, 0, len(value))
		for _, item := range value {
			if s, ok := item.(string); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	default:
		return ""
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
