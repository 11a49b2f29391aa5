package forms

import "testing"

func TestExtractDisplayFieldsExactKeys(t *testing.T) {
	t.Parallel()

	data := map[string]any{
		"fullName": "Ayşe Yılmaz",
		"email":    "ayse@example.com",
		"phone":    "05321234567",
		"reason":   "Destek olmak istiyorum.",
	}
	got := ExtractDisplayFields(data, DefaultConfig())
	if got.FullName != "Ayşe Yılmaz" || got.Email != "ayse@example.com" {
		t.Fatalf("unexpected display fields: %+v", got)
	}
	if got.Phone != "05321234567" || got.Reason != "Destek olmak istiyorum." {
		t.Fatalf("unexpected display fields: %+v", got)
	}
}

func TestExtractDisplayFieldsAliasKeys(t *testing.T) {
	t.Parallel()

	cfg := Config{Fields: []Field{
		{Key: "adSoyad", Type: FieldText},
		{Key: "eposta", Type: FieldEmail},
		{Key: "telefon", Type: FieldTel},
		{Key: "mesaj", Type: FieldTextarea},
	}}
	data := map[string]any{
		"adSoyad": "Mehmet Demir",
		"eposta":  "mehmet@example.com",
		"telefon": "05009998877",
		"mesaj":   "Merhaba",
	}
	got := ExtractDisplayFields(data, cfg)
	if got.FullName != "Mehmet Demir" || got.Email != "mehmet@example.com" {
		t.Fatalf("alias resolution failed: %+v", got)
	}
	if got.Phone != "05009998877" || got.Reason != "Merhaba" {
		t.Fatalf("alias resolution failed: %+v", got)
	}
}

func TestExtractDisplayFieldsFallsBackToFieldType(t *testing.T) {
	t.Parallel()

	cfg := Config{Fields: []Field{
		{Key: "isim", Type: FieldText},
		{Key: "iletisim", Type: FieldEmail},
	}}
	data := map[string]any{"isim": "Zeynep", "iletisim": "zeynep@example.com"}
	got := ExtractDisplayFields(data, cfg)
	if got.FullName != "Zeynep" {
		t.Fatalf("expected type fallback for full name, got %q", got.FullName)
	}
	if got.Email != "zeynep@example.com" {
		t.Fatalf("expected type fallback for email, got %q", got.Email)
	}
	if got.Phone != "-" || got.Reason != "-" {
		t.Fatalf("expected placeholder for absent columns: %+v", got)
	}
}

func TestExtractDisplayFieldsJoinsCheckboxValues(t *testing.T) {
	t.Parallel()

	cfg := Config{Fields: []Field{
		{Key: "reason", Type: FieldCheckbox},
	}}
	data := map[string]any{"reason": []any{"egitim", "saha"}}
	got := ExtractDisplayFields(data, cfg)
	if got.Reason != "egitim, saha" {
		t.Fatalf("unexpected joined value: %q", got.Reason)
	}
}
