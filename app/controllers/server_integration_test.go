package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/andriyanf/kasresto/app/storage"
)

func setupTestServer() *Server {
	server := &Server{Store: storage.NewMemoryStorage()}
	server.initializeAppConfig(AppConfig{AppName: "KasResto", AppEnv: "test", StorageDriver: "memory"})
	initSessionStore()
	server.initializeRoutes()
	return server
}

// helper to perform requests with the session cookie
func performRequest(server *Server, method, path string, body io.Reader, cookie string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	rec := httptest.NewRecorder()
	server.Router.ServeHTTP(rec, req)
	return rec
}

func registerAndLogin(t *testing.T, server *Server) string {
	t.Helper()

	regBody, _ := json.Marshal(map[string]string{
		"firstName": "Pemilik",
		"lastName":  "Warung",
		"email":     "pemilik@kasresto.test",
		"password":  "password123",
	})
	resp := performRequest(server, http.MethodPost, "/register", bytes.NewBuffer(regBody), "")
	if resp.Code != http.StatusCreated {
		t.Fatalf("register failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	cookie := resp.Header().Get("Set-Cookie")
	if cookie == "" {
		t.Fatalf("no session cookie after register")
	}

	return cookie
}

func TestFullFlow(t *testing.T) {
	server := setupTestServer()

	// 1. Protected endpoint without session is 401
	unauth := performRequest(server, http.MethodGet, "/api/sales", nil, "")
	if unauth.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", unauth.Code)
	}

	cookie := registerAndLogin(t, server)

	// 2. Create a sale for today
	saleBody, _ := json.Marshal(map[string]interface{}{
		"menuItem": "Rendang",
		"category": "dine-in",
		"quantity": 4,
		"price":    "25000",
		"total":    "100000",
		"datetime": time.Now().Format(time.RFC3339),
	})
	resp := performRequest(server, http.MethodPost, "/api/sales", bytes.NewBuffer(saleBody), cookie)
	if resp.Code != http.StatusCreated {
		t.Fatalf("create sale failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	var sale map[string]interface{}
	_ = json.Unmarshal(resp.Body.Bytes(), &sale)
	saleID, _ := sale["id"].(string)
	if saleID == "" {
		t.Fatalf("empty sale id in response: %s", resp.Body.String())
	}

	// 3. Create an expense for today
	expenseBody, _ := json.Marshal(map[string]interface{}{
		"category":      "Bahan Baku",
		"description":   "Belanja daging",
		"amount":        "30000",
		"datetime":      time.Now().Format(time.RFC3339),
		"paymentMethod": "Tunai",
	})
	resp = performRequest(server, http.MethodPost, "/api/expenses", bytes.NewBuffer(expenseBody), cookie)
	if resp.Code != http.StatusCreated {
		t.Fatalf("create expense failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	// 4. Financial summary reflects today's records
	resp = performRequest(server, http.MethodGet, "/api/financial-summary", nil, cookie)
	if resp.Code != http.StatusOK {
		t.Fatalf("financial summary failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	var summary map[string]interface{}
	_ = json.Unmarshal(resp.Body.Bytes(), &summary)
	if summary["dailySales"] != "100000" {
		t.Fatalf("dailySales = %v, want 100000", summary["dailySales"])
	}
	if summary["dailyExpenses"] != "30000" {
		t.Fatalf("dailyExpenses = %v, want 30000", summary["dailyExpenses"])
	}
	if summary["netProfit"] != "70000" {
		t.Fatalf("netProfit = %v, want 70000", summary["netProfit"])
	}

	// 5. Balance sheet endpoint
	resp = performRequest(server, http.MethodGet, "/api/balance-sheet", nil, cookie)
	if resp.Code != http.StatusOK {
		t.Fatalf("balance sheet failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	var sheet map[string]interface{}
	_ = json.Unmarshal(resp.Body.Bytes(), &sheet)
	if sheet["retainedEarnings"] != "70000" {
		t.Fatalf("retainedEarnings = %v, want 70000", sheet["retainedEarnings"])
	}

	// 6. Menu performance endpoint
	resp = performRequest(server, http.MethodGet, "/api/menu-performance", nil, cookie)
	if resp.Code != http.StatusOK {
		t.Fatalf("menu performance failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	var stats []map[string]interface{}
	_ = json.Unmarshal(resp.Body.Bytes(), &stats)
	if len(stats) != 1 {
		t.Fatalf("expected 1 menu stat, got %d", len(stats))
	}
	if stats[0]["menuItem"] != "Rendang" {
		t.Fatalf("menuItem = %v, want Rendang", stats[0]["menuItem"])
	}

	// 7. CSV export
	resp = performRequest(server, http.MethodGet, "/api/reports/sales.csv", nil, cookie)
	if resp.Code != http.StatusOK {
		t.Fatalf("sales CSV failed status=%d", resp.Code)
	}
	if resp.Header().Get("Content-Type") != "text/csv" {
		t.Fatalf("CSV content type = %q", resp.Header().Get("Content-Type"))
	}

	// 8. Delete twice: 204 lalu 404
	resp = performRequest(server, http.MethodDelete, fmt.Sprintf("/api/sales/%s", saleID), nil, cookie)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("first delete status=%d, want 204", resp.Code)
	}

	resp = performRequest(server, http.MethodDelete, fmt.Sprintf("/api/sales/%s", saleID), nil, cookie)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("second delete status=%d, want 404", resp.Code)
	}
}

func TestSalesIndexDateRangeFilter(t *testing.T) {
	server := setupTestServer()
	cookie := registerAndLogin(t, server)

	// satu di Agustus, satu di Juli
	for _, datetime := range []string{"2025-08-15T12:00:00+07:00", "2025-07-15T12:00:00+07:00"} {
		body, _ := json.Marshal(map[string]interface{}{
			"menuItem": "Rendang",
			"quantity": 1,
			"price":    "25000",
			"total":    "25000",
			"datetime": datetime,
		})
		resp := performRequest(server, http.MethodPost, "/api/sales", bytes.NewBuffer(body), cookie)
		if resp.Code != http.StatusCreated {
			t.Fatalf("create sale failed status=%d", resp.Code)
		}
	}

	resp := performRequest(server, http.MethodGet, "/api/sales?startDate=2025-08-01&endDate=2025-08-31", nil, cookie)
	if resp.Code != http.StatusOK {
		t.Fatalf("list sales failed status=%d", resp.Code)
	}

	var sales []map[string]interface{}
	_ = json.Unmarshal(resp.Body.Bytes(), &sales)
	if len(sales) != 1 {
		t.Fatalf("expected 1 sale in range, got %d", len(sales))
	}

	// rentang tidak lengkap: kembali ke koleksi penuh
	resp = performRequest(server, http.MethodGet, "/api/sales?startDate=2025-08-01", nil, cookie)
	_ = json.Unmarshal(resp.Body.Bytes(), &sales)
	if len(sales) != 2 {
		t.Fatalf("expected full collection without complete range, got %d", len(sales))
	}
}

func TestCreateSaleValidation(t *testing.T) {
	server := setupTestServer()
	cookie := registerAndLogin(t, server)

	body, _ := json.Marshal(map[string]interface{}{
		"menuItem": "",
		"quantity": 0,
	})
	resp := performRequest(server, http.MethodPost, "/api/sales", bytes.NewBuffer(body), cookie)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid sale, got %d", resp.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	server := setupTestServer()
	registerAndLogin(t, server)

	body, _ := json.Marshal(map[string]string{
		"email":    "pemilik@kasresto.test",
		"password": "salah",
	})
	resp := performRequest(server, http.MethodPost, "/login", bytes.NewBuffer(body), "")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", resp.Code)
	}
}
