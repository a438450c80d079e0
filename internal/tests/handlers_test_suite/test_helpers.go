package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	api "github.com/rogerio-castellano/inventree/internal/http"
	handler "github.com/rogerio-castellano/inventree/internal/http/handlers"
	"github.com/rogerio-castellano/inventree/internal/models"
	"github.com/rogerio-castellano/inventree/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

var (
	token       string
	itemRepo    *repo.InMemoryItemRepository
	historyRepo *repo.InMemoryHistoryRepository
	gateway     *fakeGateway
)

// fakeGateway records alert requests instead of sending mail.
type fakeGateway struct {
	calls    int
	critical []models.LowStockItem
	warning  []models.LowStockItem
}

func (g *fakeGateway) NotifyLowStock(critical, warning []models.LowStockItem) (bool, string) {
	g.calls++
	g.critical = critical
	g.warning = warning
	return true, "alert recorded"
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
	itemRepo = repo.NewInMemoryItemRepository()
	handler.SetItemRepo(itemRepo)

	historyRepo = repo.NewInMemoryHistoryRepository()
	handler.SetHistoryRepo(historyRepo)

	handler.SetDashboardRepo(repo.NewInMemoryDashboardRepository(itemRepo))

	userRepo := repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Username:     "admin",
		PasswordHash: string(hash),
	})

	gateway = &fakeGateway{}
	handler.SetNotificationGateway(gateway)
}

func clearInventory() {
	itemRepo.Clear()
	historyRepo.Clear()
	gateway.calls = 0
	gateway.critical = nil
	gateway.warning = nil
}

func newRequestWithoutAuth(method, path string, body []byte) *http.Request {
	return httptest.NewRequest(method, path, bytes.NewReader(body))
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func doJSON(r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func receiveStock(r http.Handler, lot handler.StockReceiptRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/items/stock", lot)
}

func recordSale(r http.Handler, name string, qty int) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, fmt.Sprintf("/items/%s/sale", name), handler.SaleRequest{Quantity: qty})
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}

func importCSV(r http.Handler, csvContent string) *httptest.ResponseRecorder {
	buf, contentType := multipartCSV(csvContent, "items.csv")
	req := httptest.NewRequest(http.MethodPost, "/items/import", buf)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
