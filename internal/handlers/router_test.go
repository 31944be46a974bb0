package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"taxpal/internal/auth"
	"taxpal/internal/middleware"
	"taxpal/internal/service"
	"taxpal/internal/storage"
)

type testEnv struct {
	server       *httptest.Server
	categories   *storage.MemoryCategoryStorage
	transactions *storage.MemoryTransactionStorage
	budgets      *storage.MemoryBudgetStorage
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := storage.NewMemoryUserStorage()
	categories := storage.NewMemoryCategoryStorage()
	transactions := storage.NewMemoryTransactionStorage()
	budgets := storage.NewMemoryBudgetStorage()

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	router := NewRouter(
		middleware.NewAuthMiddleware(jwtManager),
		nil,
		NewAuthHandler(service.NewUserService(users, categories, jwtManager, nil)),
		NewCategoryHandler(service.NewCategoryService(categories)),
		NewTransactionHandler(service.NewTransactionService(transactions)),
		NewBudgetHandler(service.NewBudgetService(budgets)),
	)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testEnv{
		server:       server,
		categories:   categories,
		transactions: transactions,
		budgets:      budgets,
	}
}

func (e *testEnv) do(t *testing.T, method, path, token, body string) (*http.Response, map[string]interface{}) {
	t.Helper()

	req, err := http.NewRequest(method, e.server.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	var payload map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return resp, payload
}

func (e *testEnv) registerAndLogin(t *testing.T, name, email, password string) string {
	t.Helper()

	resp, body := e.do(t, http.MethodPost, "/api/auth/register", "",
		`{"name":"`+name+`","email":"`+email+`","password":"`+password+`"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Register returned %d: %v", resp.StatusCode, body)
	}

	resp, body = e.do(t, http.MethodPost, "/api/auth/login", "",
		`{"email":"`+email+`","password":"`+password+`"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Login returned %d: %v", resp.StatusCode, body)
	}

	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("Login response missing token")
	}
	return token
}

func TestRegisterLoginMe(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/api/auth/register", "",
		`{"name":"Maya","email":"maya@example.com","password":"secret1"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Register returned %d: %v", resp.StatusCode, body)
	}
	if body["message"] != "User registered successfully" {
		t.Errorf("Unexpected register message: %v", body["message"])
	}

	resp, body = env.do(t, http.MethodPost, "/api/auth/login", "",
		`{"email":"maya@example.com","password":"secret1"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Login returned %d: %v", resp.StatusCode, body)
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("Login response missing token")
	}

	resp, body = env.do(t, http.MethodGet, "/api/auth/me", token, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Me returned %d: %v", resp.StatusCode, body)
	}
	user, ok := body["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("Me response missing user: %v", body)
	}
	if user["email"] != "maya@example.com" {
		t.Errorf("Unexpected email in profile: %v", user["email"])
	}
	for _, key := range []string{"password", "password_hash"} {
		if _, leaked := user[key]; leaked {
			t.Errorf("Profile response leaks %q", key)
		}
	}
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/api/auth/register", "",
		`{"name":"Maya","email":"maya@example.com"}`)
	if resp.StatusCode != http.StatusBadRequest || body["message"] != "Missing required fields" {
		t.Errorf("Missing password: got %d %v", resp.StatusCode, body)
	}

	resp, body = env.do(t, http.MethodPost, "/api/auth/register", "",
		`{"name":"Maya","email":"not-an-email","password":"secret1"}`)
	if resp.StatusCode != http.StatusBadRequest || body["message"] != "Invalid email address" {
		t.Errorf("Bad email: got %d %v", resp.StatusCode, body)
	}

	env.registerAndLogin(t, "Maya", "maya@example.com", "secret1")
	resp, body = env.do(t, http.MethodPost, "/api/auth/register", "",
		`{"name":"Maya","email":"maya@example.com","password":"secret1"}`)
	if resp.StatusCode != http.StatusBadRequest || body["message"] != "User already exists" {
		t.Errorf("Duplicate email: got %d %v", resp.StatusCode, body)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.registerAndLogin(t, "Maya", "maya@example.com", "secret1")

	for _, payload := range []string{
		`{"email":"maya@example.com","password":"wrong"}`,
		`{"email":"nobody@example.com","password":"secret1"}`,
	} {
		resp, body := env.do(t, http.MethodPost, "/api/auth/login", "", payload)
		if resp.StatusCode != http.StatusBadRequest || body["message"] != "Invalid Credentials" {
			t.Errorf("Expected 400 Invalid Credentials, got %d %v", resp.StatusCode, body)
		}
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodGet, "/api/transactions", "", "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("No token: expected 401, got %d", resp.StatusCode)
	}
	if body["message"] != "No token, authorization denied" {
		t.Errorf("Unexpected message: %v", body["message"])
	}

	resp, body = env.do(t, http.MethodPost, "/api/transactions", "garbage",
		`{"type":"expense","amount":50,"category":"Travel","date":"2026-01-05"}`)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Bad token: expected 401, got %d", resp.StatusCode)
	}
	if body["message"] != "Token is not valid or expired" {
		t.Errorf("Unexpected message: %v", body["message"])
	}

	// Rejected writes must not create anything.
	if txs, _ := env.transactions.ListByUser(context.Background(), "any"); len(txs) != 0 {
		t.Error("Rejected request created a transaction")
	}
}

func TestCategoryListAndCreate(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "Maya", "maya@example.com", "secret1")

	resp, body := env.do(t, http.MethodGet, "/api/categories", token, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("List returned %d: %v", resp.StatusCode, body)
	}
	seeded, _ := body["categories"].([]interface{})
	if len(seeded) != 8 {
		t.Fatalf("Expected 8 default categories, got %d", len(seeded))
	}

	resp, body = env.do(t, http.MethodPost, "/api/categories", token,
		`{"name":"Equipment","type":"expense","color":"#111111"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Create returned %d: %v", resp.StatusCode, body)
	}

	resp, body = env.do(t, http.MethodPost, "/api/categories", token,
		`{"name":"Equipment","type":"expense","color":"#222222"}`)
	if resp.StatusCode != http.StatusBadRequest || body["message"] != "Category already exists" {
		t.Errorf("Duplicate: got %d %v", resp.StatusCode, body)
	}

	resp, body = env.do(t, http.MethodPost, "/api/categories", token,
		`{"name":"Weird","type":"transfer","color":"#333333"}`)
	if resp.StatusCode != http.StatusBadRequest || body["message"] != "Invalid category type" {
		t.Errorf("Bad type: got %d %v", resp.StatusCode, body)
	}

	resp, body = env.do(t, http.MethodGet, "/api/categories", token, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Second list returned %d: %v", resp.StatusCode, body)
	}
	cats, _ := body["categories"].([]interface{})
	if len(cats) != 9 {
		t.Errorf("Expected 9 categories after create, got %d", len(cats))
	}
}

func TestTransactionValidation(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "Maya", "maya@example.com", "secret1")

	resp, body := env.do(t, http.MethodPost, "/api/transactions", token,
		`{"type":"expense","category":"Travel","date":"2026-01-05"}`)
	if resp.StatusCode != http.StatusBadRequest || body["message"] != "Missing required fields" {
		t.Errorf("Missing amount: got %d %v", resp.StatusCode, body)
	}

	resp, body = env.do(t, http.MethodPost, "/api/transactions", token,
		`{"type":"expense","amount":-5,"category":"Travel","date":"2026-01-05"}`)
	if resp.StatusCode != http.StatusBadRequest || body["message"] != "Amount must be a positive number" {
		t.Errorf("Negative amount: got %d %v", resp.StatusCode, body)
	}

	resp, body = env.do(t, http.MethodPost, "/api/transactions", token,
		`{"type":"expense","amount":50,"category":"Travel","date":"garbage"}`)
	if resp.StatusCode != http.StatusBadRequest || body["message"] != "Invalid date" {
		t.Errorf("Bad date: got %d %v", resp.StatusCode, body)
	}

	resp, body = env.do(t, http.MethodPost, "/api/transactions", token,
		`{"type":"expense","amount":50,"category":"Travel","date":"2026-01-05","description":"flight"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Create returned %d: %v", resp.StatusCode, body)
	}
	tx, _ := body["transaction"].(map[string]interface{})
	if tx["id"] == "" || tx["id"] == nil {
		t.Error("Created transaction has no id")
	}
}

func TestCrossUserDeleteRejected(t *testing.T) {
	env := newTestEnv(t)
	ownerToken := env.registerAndLogin(t, "Maya", "maya@example.com", "secret1")
	intruderToken := env.registerAndLogin(t, "Rex", "rex@example.com", "secret2")

	resp, body := env.do(t, http.MethodPost, "/api/transactions", ownerToken,
		`{"type":"expense","amount":50,"category":"Travel","date":"2026-01-05"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Create returned %d: %v", resp.StatusCode, body)
	}
	tx, _ := body["transaction"].(map[string]interface{})
	txID, _ := tx["id"].(string)

	resp, body = env.do(t, http.MethodDelete, "/api/transactions/"+txID, intruderToken, "")
	if resp.StatusCode != http.StatusUnauthorized || body["message"] != "Not authorized" {
		t.Errorf("Cross-user delete: got %d %v", resp.StatusCode, body)
	}
	if stored, _ := env.transactions.GetByID(context.Background(), txID); stored == nil {
		t.Fatal("Transaction should survive a cross-user delete")
	}

	resp, body = env.do(t, http.MethodDelete, "/api/transactions/"+txID, ownerToken, "")
	if resp.StatusCode != http.StatusOK || body["message"] != "Transaction deleted" {
		t.Errorf("Owner delete: got %d %v", resp.StatusCode, body)
	}
}

func TestBudgetLifecycle(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "Maya", "maya@example.com", "secret1")

	resp, body := env.do(t, http.MethodPost, "/api/budgets", token,
		`{"category":"Travel","amount":500,"month":"2026-13"}`)
	if resp.StatusCode != http.StatusBadRequest || body["message"] != "Month must be in YYYY-MM format" {
		t.Errorf("Bad month: got %d %v", resp.StatusCode, body)
	}

	resp, body = env.do(t, http.MethodPost, "/api/budgets", token,
		`{"category":"Travel","amount":500,"month":"2026-01"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Create returned %d: %v", resp.StatusCode, body)
	}
	budget, _ := body["budget"].(map[string]interface{})
	if budget["status"] != "On Track" {
		t.Errorf("Expected status On Track, got %v", budget["status"])
	}
	budgetID, _ := budget["id"].(string)

	resp, body = env.do(t, http.MethodDelete, "/api/budgets/"+budgetID, token, "")
	if resp.StatusCode != http.StatusOK || body["message"] != "Budget deleted" {
		t.Errorf("Delete: got %d %v", resp.StatusCode, body)
	}

	resp, body = env.do(t, http.MethodDelete, "/api/budgets/"+budgetID, token, "")
	if resp.StatusCode != http.StatusNotFound || body["message"] != "Budget not found" {
		t.Errorf("Second delete: got %d %v", resp.StatusCode, body)
	}
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodGet, "/health", "", "")
	if resp.StatusCode != http.StatusOK || body["status"] != "ok" {
		t.Errorf("Health: got %d %v", resp.StatusCode, body)
	}
}
