package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/sakaryaihh/akifweb/internal/models"
	"github.com/sakaryaihh/akifweb/internal/settings"
)

func setupVolunteerDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:volunteer_%d?mode=memory&cache=shared", time.Now().UnixNano())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if errMigrate := conn.AutoMigrate(&models.VolunteerApplication{}, &models.Setting{}); errMigrate != nil {
		t.Fatalf("migrate: %v", errMigrate)
	}
	return conn
}

func performSubmit(t *testing.T, handler *VolunteerHandler, payload map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	data, errMarshal := json.Marshal(payload)
	if errMarshal != nil {
		t.Fatalf("marshal payload: %v", errMarshal)
	}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/volunteer", bytes.NewReader(data))
	c.Request.Header.Set("Content-Type", "application/json")
	handler.Submit(c)
	return w
}

func TestSubmitPersistsApplicationWithDisplayFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	conn := setupVolunteerDB(t)

	handler := NewVolunteerHandler(conn)
	w := performSubmit(t, handler, map[string]any{
		"fullName": "Ayşe Yılmaz",
		"email":    "ayse@example.com",
		"phone":    "05321234567",
		"reason":   "Saha çalışmalarında destek olmak istiyorum.",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	var res map[string]any
	if errDecode := json.NewDecoder(w.Body).Decode(&res); errDecode != nil {
		t.Fatalf("decode: %v", errDecode)
	}
	if res["success"] != true || res["message"] == "" {
		t.Fatalf("unexpected response %v", res)
	}

	var row models.VolunteerApplication
	if errFind := conn.First(&row).Error; errFind != nil {
		t.Fatalf("find application: %v", errFind)
	}
	if row.FullName != "Ayşe Yılmaz" || row.Email != "ayse@example.com" {
		t.Fatalf("display columns not derived: %+v", row)
	}
	if row.Status != models.VolunteerPending {
		t.Fatalf("expected PENDING status, got %s", row.Status)
	}

	var data map[string]any
	if errUnmarshal := json.Unmarshal(row.Data, &data); errUnmarshal != nil {
		t.Fatalf("unmarshal stored data: %v", errUnmarshal)
	}
	if data["reason"] != "Saha çalışmalarında destek olmak istiyorum." {
		t.Fatalf("raw data not stored: %v", data)
	}
}

func TestSubmitReportsFirstMissingFieldInOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	conn := setupVolunteerDB(t)

	handler := NewVolunteerHandler(conn)
	w := performSubmit(t, handler, map[string]any{
		"email": "ayse@example.com",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	var res map[string]any
	if errDecode := json.NewDecoder(w.Body).Decode(&res); errDecode != nil {
		t.Fatalf("decode: %v", errDecode)
	}
	if res["message"] != "Ad Soyad zorunludur." {
		t.Fatalf("unexpected message %v", res["message"])
	}

	var count int64
	if errCount := conn.Model(&models.VolunteerApplication{}).Count(&count).Error; errCount != nil {
		t.Fatalf("count: %v", errCount)
	}
	if count != 0 {
		t.Fatalf("invalid submission persisted %d rows", count)
	}
}

func TestSubmitUsesStoredCustomConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)
	conn := setupVolunteerDB(t)

	stored := `{"title":"Özel","successMessage":"Kaydedildi.","fields":[{"id":"a","key":"isim","label":"İsim","type":"text","required":true}]}`
	if errPut := settings.Put(context.Background(), conn, settings.KeyVolunteerForm, json.RawMessage(stored)); errPut != nil {
		t.Fatalf("put setting: %v", errPut)
	}

	handler := NewVolunteerHandler(conn)
	w := performSubmit(t, handler, map[string]any{"isim": "Zeynep", "injected": "x"})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	var res map[string]any
	if errDecode := json.NewDecoder(w.Body).Decode(&res); errDecode != nil {
		t.Fatalf("decode: %v", errDecode)
	}
	if res["message"] != "Kaydedildi." {
		t.Fatalf("unexpected message %v", res["message"])
	}

	var row models.VolunteerApplication
	if errFind := conn.First(&row).Error; errFind != nil {
		t.Fatalf("find application: %v", errFind)
	}
	if row.FullName != "Zeynep" {
		t.Fatalf("type fallback not applied: %+v", row)
	}
	var data map[string]any
	if errUnmarshal := json.Unmarshal(row.Data, &data); errUnmarshal != nil {
		t.Fatalf("unmarshal stored data: %v", errUnmarshal)
	}
	if _, ok := data["injected"]; ok {
		t.Fatal("unconfigured key persisted")
	}
}

func TestGetFormReturnsDefaultWithoutStoredConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)
	conn := setupVolunteerDB(t)

	handler := NewVolunteerHandler(conn)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/volunteer/form", nil)
	handler.GetForm(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var res struct {
		Title  string `json:"title"`
		Fields []struct {
			Key string `json:"key"`
		} `json:"fields"`
	}
	if errDecode := json.NewDecoder(w.Body).Decode(&res); errDecode != nil {
		t.Fatalf("decode: %v", errDecode)
	}
	if len(res.Fields) != 4 || res.Fields[0].Key != "fullName" {
		t.Fatalf("unexpected default form %+v", res)
	}
}
