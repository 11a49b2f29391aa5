package settings

// Enumerated setting keys. Only these keys are accepted by the admin
// settings endpoints.
const (
	// KeyContactInfo stores the organization contact details.
	KeyContactInfo = "contact_info"
	// KeyVolunteerForm stores the volunteer form configuration.
	KeyVolunteerForm = "volunteer_form"
	// KeyIyzico stores the payment gateway credential override.
	KeyIyzico = "iyzico"
)

// Keys lists every valid setting key.
var Keys = []string{KeyContactInfo, KeyVolunteerForm, KeyIyzico}

// ValidKey reports whether key is one of the enumerated setting keys.
func ValidKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// ContactInfo is the value stored under contact_info.
type ContactInfo struct {
	OrgName   string `json:"orgName"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
}

// IyzicoConfig is the value stored under iyzico. It is only used when
// the IYZIPAY_* environment variables are absent.
type IyzicoConfig struct {
	APIKey    string `json:"apiKey"`
	SecretKey string `json:"secretKey"`
	BaseURI   string `json:"baseUri"`
}

// DefaultContactInfo returns the hardcoded contact details fallback.
func DefaultContactInfo() ContactInfo {
	return ContactInfo{
		OrgName: "Sakarya İHH Akıf Derneği",
		Address: "Cumhuriyet Mahallesi Uzunçarşı 1. Geçit No:2, Adapazarı / Sakarya",
		Phone:   "(0264) 777 24 44",
		Email:   "sakaryaihh@gmail.com",
	}
}

// DefaultIyzicoConfig returns the unconfigured gateway fallback.
func DefaultIyzicoConfig() IyzicoConfig {
	return IyzicoConfig{BaseURI: "https://sandbox-api.iyzipay.com"}
}
