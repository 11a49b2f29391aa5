// Package forms implements the runtime-configurable volunteer form:
// a declarative field list stored as a setting, interpreted both to
// render the public form and to validate submissions against it.
package forms

// FieldType enumerates the supported volunteer form field kinds.
type FieldType string

// Supported field kinds.
const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldTel      FieldType = "tel"
	FieldTextarea FieldType = "textarea"
	FieldRadio    FieldType = "radio"
	FieldCheckbox FieldType = "checkbox"
)

// FieldOption is a selectable choice for radio and checkbox fields.
type FieldOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field describes a single form field and its constraints.
type Field struct {
	ID          string        `json:"id"`
	Key         string        `json:"key"` // Submission key, unique within a config.
	Label       string        `json:"label"`
	Type        FieldType     `json:"type"`
	Required    bool          `json:"required,omitempty"`
	Placeholder string        `json:"placeholder,omitempty"`
	Options     []FieldOption `json:"options,omitempty"` // For radio and checkbox.
	MinLength   int           `json:"minLength,omitempty"`
	MaxLength   int           `json:"maxLength,omitempty"`
	Rows        int           `json:"rows,omitempty"` // For textarea.
}

// Config is the full volunteer form definition.
type Config struct {
	Title          string `json:"title"`
	SubmitText     string `json:"submitText"`
	SuccessMessage string `json:"successMessage"`

	// ListDisplayField names the field key summarized in list views.
	ListDisplayField string  `json:"listDisplayField,omitempty"`
	Fields           []Field `json:"fields"`
}

// DefaultConfig returns the built-in four-field form used whenever the
// stored configuration is missing or structurally invalid.
func DefaultConfig() Config {
	return Config{
		Title:            "Gönüllü Başvuru Formu",
		SubmitText:       "Gönder",
		SuccessMessage:   "Başvurunuz alındı. En kısa sürede değerlendirilecektir.",
		ListDisplayField: "fullName",
		Fields: []Field{
			{
				ID:          "f1",
				Key:         "fullName",
				Label:       "Ad Soyad",
				Type:        FieldText,
				Required:    true,
				Placeholder: "Ad Soyad",
				MinLength:   2,
				MaxLength:   100,
			},
			{
				ID:          "f2",
				Key:         "email",
				Label:       "E-posta",
				Type:        FieldEmail,
				Required:    true,
				Placeholder: "ornek@email.com",
			},
			{
				ID:          "f3",
				Key:         "phone",
				Label:       "Telefon",
				Type:        FieldTel,
				Required:    true,
				Placeholder: "05XXXXXXXXX",
				MinLength:   10,
				MaxLength:   20,
			},
			{
				ID:          "f4",
				Key:         "reason",
				Label:       "Başvuru Gerekçesi / Mesajınız",
				Type:        FieldTextarea,
				Required:    true,
				Placeholder: "Neden gönüllü olmak istiyorsunuz? Hangi alanlarda destek olabilirsiniz?",
				MinLength:   10,
				MaxLength:   2000,
				Rows:        4,
			},
		},
	}
}

// Valid reports whether the config is structurally usable: a non-nil
// field list. Anything else falls back to DefaultConfig.
func (c Config) Valid() bool {
	return c.Fields != nil
}
