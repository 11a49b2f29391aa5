package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/sakaryaihh/akifweb/internal/models"
)

func TestDeleteCategoryBlockedByDonations(t *testing.T) {
	gin.SetMode(gin.TestMode)
	conn := setupAdminDB(t, &models.DonationCategory{}, &models.Donation{})
	handler := NewDonationCategoryHandler(conn)

	category := models.DonationCategory{Name: "Su Kuyusu", Description: "d", IsActive: true}
	if errCreate := conn.Create(&category).Error; errCreate != nil {
		t.Fatalf("create category: %v", errCreate)
	}
	donation := models.Donation{
		CategoryID: category.ID,
		Amount:     100,
		Currency:   "TRY",
		Status:     models.DonationCompleted,
		DonorName:  "Ayşe",
		DonorEmail: "ayse@example.com",
		DonorPhone: "05321234567",
	}
	if errCreate := conn.Create(&donation).Error; errCreate != nil {
		t.Fatalf("create donation: %v", errCreate)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprint(category.ID)}}
	c.Request = httptest.NewRequest(http.MethodDelete, "/", nil)
	handler.Delete(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "HAS_DONATIONS") {
		t.Fatalf("unexpected body %s", w.Body.String())
	}

	var count int64
	if errCount := conn.Model(&models.DonationCategory{}).Count(&count).Error; errCount != nil {
		t.Fatalf("count: %v", errCount)
	}
	if count != 1 {
		t.Fatal("category deleted despite donations")
	}
}

func TestDeleteCategoryWithoutDonations(t *testing.T) {
	gin.SetMode(gin.TestMode)
	conn := setupAdminDB(t, &models.DonationCategory{}, &models.Donation{})
	handler := NewDonationCategoryHandler(conn)

	category := models.DonationCategory{Name: "Boş", Description: "d"}
	if errCreate := conn.Create(&category).Error; errCreate != nil {
		t.Fatalf("create: %v", errCreate)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprint(category.ID)}}
	c.Request = httptest.NewRequest(http.MethodDelete, "/", nil)
	handler.Delete(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestUpdateCategoryNeverTouchesCollected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	conn := setupAdminDB(t, &models.DonationCategory{})
	handler := NewDonationCategoryHandler(conn)

	category := models.DonationCategory{Name: "Su Kuyusu", Description: "d", Collected: 500, IsActive: true}
	if errCreate := conn.Create(&category).Error; errCreate != nil {
		t.Fatalf("create: %v", errCreate)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprint(category.ID)}}
	c.Request = jsonRequest(t, http.MethodPut, "/", map[string]any{
		"name":        "Su Kuyusu Projesi",
		"description": "d",
		"collected":   0,
	})
	handler.Update(c)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var fresh models.DonationCategory
	if errFind := conn.First(&fresh, category.ID).Error; errFind != nil {
		t.Fatalf("find: %v", errFind)
	}
	if fresh.Collected != 500 {
		t.Fatalf("collected was overwritten to %v", fresh.Collected)
	}
	if fresh.Name != "Su Kuyusu Projesi" {
		t.Fatalf("name not updated: %q", fresh.Name)
	}
}

func TestListCategoriesIncludesDonationCount(t *testing.T) {
	gin.SetMode(gin.TestMode)
	conn := setupAdminDB(t, &models.DonationCategory{}, &models.Donation{})
	handler := NewDonationCategoryHandler(conn)

	category := models.DonationCategory{Name: "Su Kuyusu", Description: "d", IsActive: true}
	if errCreate := conn.Create(&category).Error; errCreate != nil {
		t.Fatalf("create: %v", errCreate)
	}
	for i := 0; i < 3; i++ {
		donation := models.Donation{
			CategoryID: category.ID,
			Amount:     10,
			Currency:   "TRY",
			Status:     models.DonationCompleted,
			DonorName:  "x",
			DonorEmail: "x@example.com",
			DonorPhone: "05321234567",
		}
		if errCreate := conn.Create(&donation).Error; errCreate != nil {
			t.Fatalf("create donation: %v", errCreate)
		}
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/admin/donations/categories", nil)
	handler.List(c)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var res struct {
		Categories []struct {
			DonationCount int64 `json:"donationCount"`
		} `json:"categories"`
	}
	if errDecode := json.NewDecoder(w.Body).Decode(&res); errDecode != nil {
		t.Fatalf("decode: %v", errDecode)
	}
	if len(res.Categories) != 1 || res.Categories[0].DonationCount != 3 {
		t.Fatalf("unexpected donation count %+v", res.Categories)
	}
}
