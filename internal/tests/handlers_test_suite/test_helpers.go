package handlers_test_suite

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	api "github.com/ricardomoraes/minimart-inventory/internal/http"
	handler "github.com/ricardomoraes/minimart-inventory/internal/http/handlers"
	"github.com/ricardomoraes/minimart-inventory/internal/models"
	"github.com/ricardomoraes/minimart-inventory/internal/repo"
	"github.com/ricardomoraes/minimart-inventory/internal/sku"
	"golang.org/x/crypto/bcrypt"
)

var (
	token       string
	productRepo *repo.InMemoryProductRepository
	ledgerRepo  *repo.InMemoryLedgerRepository
	tokenStore  *memoryRefreshStore
)

// memoryRefreshStore satisfies handler.RefreshTokenStore without Redis.
type memoryRefreshStore struct {
	mu     sync.Mutex
	tokens map[string]string
}

func newMemoryRefreshStore() *memoryRefreshStore {
	return &memoryRefreshStore{tokens: map[string]string{}}
}

func (s *memoryRefreshStore) Issue(username string) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	t := hex.EncodeToString(buf)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[t] = username
	return t, nil
}

func (s *memoryRefreshStore) Lookup(t string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	username, ok := s.tokens[t]
	if !ok {
		return "", errors.New("refresh token not found")
	}
	return username, nil
}

func (s *memoryRefreshStore) Revoke(t string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, t)
	return nil
}

func init() {
	setupTestRepos("secret")
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	ledgerRepo = repo.NewInMemoryLedgerRepository(productRepo)
	productRepo.SetLedger(ledgerRepo)
	handler.SetLedgerRepo(ledgerRepo)

	handler.SetReportRepo(repo.NewInMemoryReportRepository(productRepo, ledgerRepo))

	userRepo := repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		IsAdmin:      true,
	})

	handler.SetSKUIssuer(&sku.StaticIssuer{})

	tokenStore = newMemoryRefreshStore()
	handler.SetRefreshStore(tokenStore)
}

func clearAll() {
	productRepo.Clear()
	ledgerRepo.Clear()
}

// loginAddrSeq hands each login request its own client address so the
// per-IP limiter on /login never throttles unrelated tests.
var loginAddrSeq int

func loginRequest(r http.Handler, username, password string) *httptest.ResponseRecorder {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	loginAddrSeq++
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	req.RemoteAddr = fmt.Sprintf("10.1.0.%d:5000", loginAddrSeq)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func generateToken(r http.Handler, username, password string) (string, error) {
	w := loginRequest(r, username, password)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func recordPurchase(r http.Handler, p handler.PurchaseRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/purchases", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func recordSale(r http.Handler, s handler.SaleRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(s)
	req := httptest.NewRequest(http.MethodPost, "/sales", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func authorizedGet(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
