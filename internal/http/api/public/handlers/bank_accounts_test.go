package handlers

import (
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
)

func TestListBankAccountsGroupsByBank(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dsn := fmt.Sprintf("file:pubbanks_%d?mode=memory&cache=shared", time.Now().UnixNano())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if errMigrate := conn.AutoMigrate(&models.BankAccount{}); errMigrate != nil {
		t.Fatalf("migrate: %v", errMigrate)
	}

	rows := []models.BankAccount{
		{BankName: "Kuveyt Türk", Branch: "Adapazarı", IBAN: "TR110006100519786457841111", Currency: "TRY", Order: 1, IsActive: true},
		{BankName: "Kuveyt Türk", Branch: "Adapazarı", IBAN: "TR220006100519786457842222", Currency: "USD", Order: 2, IsActive: true},
		{BankName: "Ziraat", Branch: "Merkez", IBAN: "TR330006100519786457843333", Currency: "TRY", Order: 3, IsActive: true},
		{BankName: "Kapalı Banka", Branch: "x", IBAN: "TR440006100519786457844444", Currency: "TRY", Order: 0, IsActive: false},
	}
	for i := range rows {
		if errCreate := conn.Create(&rows[i]).Error; errCreate != nil {
			t.Fatalf("create: %v", errCreate)
		}
	}

	handler := NewBankAccountHandler(conn)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/bank-accounts", nil)
	handler.List(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var res struct {
		Banks []struct {
			Name     string   `json:"name"`
			Accounts []string `json:"accounts"`
		} `json:"banks"`
	}
	if errDecode := json.NewDecoder(w.Body).Decode(&res); errDecode != nil {
		t.Fatalf("decode: %v", errDecode)
	}
	if len(res.Banks) != 2 {
		t.Fatalf("inactive bank leaked or grouping broken: %+v", res.Banks)
	}
	if res.Banks[0].Name != "Kuveyt Türk" || len(res.Banks[0].Accounts) != 2 {
		t.Fatalf("unexpected first group %+v", res.Banks[0])
	}
	if res.Banks[0].Accounts[0] != "TRY IBAN: TR110006100519786457841111" {
		t.Fatalf("unexpected account rendering %q", res.Banks[0].Accounts[0])
	}
	if res.Banks[1].Name != "Ziraat" {
		t.Fatalf("unexpected second group %+v", res.Banks[1])
	}
}
