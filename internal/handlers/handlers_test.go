// internal/handlers/handlers_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/doniphane/clickandship/internal/config"
	"github.com/doniphane/clickandship/internal/middleware"
	"github.com/doniphane/clickandship/internal/models"
	"github.com/doniphane/clickandship/internal/repository"
	"github.com/doniphane/clickandship/internal/services"
	"github.com/doniphane/clickandship/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubUserRepository struct {
	mock.Mock
}

func (m *stubUserRepository) FindByID(id uuid.UUID) (*models.User, error) {
	args := m.Called(id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *stubUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *stubUserRepository) Create(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *stubUserRepository) Delete(user *models.User) error {
	return m.Called(user).Error(0)
}

type stubProductRepository struct {
	mock.Mock
}

func (m *stubProductRepository) WithTx(tx *gorm.DB) repository.ProductRepository {
	return m
}

func (m *stubProductRepository) Find(id uuid.UUID) (*models.Product, error) {
	args := m.Called(id)
	product, _ := args.Get(0).(*models.Product)
	return product, args.Error(1)
}

func (m *stubProductRepository) FindAll() ([]models.Product, error) {
	args := m.Called()
	products, _ := args.Get(0).([]models.Product)
	return products, args.Error(1)
}

func (m *stubProductRepository) FindInStock() ([]models.Product, error) {
	args := m.Called()
	products, _ := args.Get(0).([]models.Product)
	return products, args.Error(1)
}

func (m *stubProductRepository) FindRecentlyCreated(limit int) ([]models.Product, error) {
	args := m.Called(limit)
	products, _ := args.Get(0).([]models.Product)
	return products, args.Error(1)
}

func (m *stubProductRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *stubProductRepository) CountInStock() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *stubProductRepository) AveragePrice() (float64, error) {
	args := m.Called()
	return args.Get(0).(float64), args.Error(1)
}

func (m *stubProductRepository) Create(product *models.Product) error {
	return m.Called(product).Error(0)
}

func (m *stubProductRepository) Save(product *models.Product) error {
	return m.Called(product).Error(0)
}

func (m *stubProductRepository) Delete(product *models.Product) error {
	return m.Called(product).Error(0)
}

func handlerTestConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:      "handler-test-secret",
			AccessTokenTTL: 1,
		},
	}
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(data))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getWithToken(t *testing.T, router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	t.Helper()

	req, _ := http.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint(t *testing.T) {
	users := new(stubUserRepository)
	authHandler := NewAuthHandler(services.NewAuthService(users, handlerTestConfig()))

	router := gin.New()
	router.POST("/api/register", authHandler.Register)

	users.On("FindByEmail", "new@example.com").Return(nil, nil)
	users.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

	w := postJSON(t, router, "/api/register", gin.H{
		"email":    "new@example.com",
		"password": "secret",
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "User registered successfully", body["message"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "new@example.com", user["email"])
}

func TestRegisterEndpointDuplicateEmail(t *testing.T) {
	users := new(stubUserRepository)
	authHandler := NewAuthHandler(services.NewAuthService(users, handlerTestConfig()))

	router := gin.New()
	router.POST("/api/register", authHandler.Register)

	users.On("FindByEmail", "taken@example.com").Return(&models.User{Email: "taken@example.com"}, nil)

	w := postJSON(t, router, "/api/register", gin.H{
		"email":    "taken@example.com",
		"password": "secret",
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}

func TestRegisterEndpointMissingFields(t *testing.T) {
	users := new(stubUserRepository)
	authHandler := NewAuthHandler(services.NewAuthService(users, handlerTestConfig()))

	router := gin.New()
	router.POST("/api/register", authHandler.Register)

	w := postJSON(t, router, "/api/register", gin.H{"email": "a@b.com"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginEndpointWrongCredentials(t *testing.T) {
	users := new(stubUserRepository)
	authHandler := NewAuthHandler(services.NewAuthService(users, handlerTestConfig()))

	router := gin.New()
	router.POST("/api/login", authHandler.Login)

	user := &models.User{Email: "test@example.com"}
	require.NoError(t, user.SetPassword("password123"))
	users.On("FindByEmail", "test@example.com").Return(user, nil)

	w := postJSON(t, router, "/api/login", gin.H{
		"email":    "test@example.com",
		"password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileEndpoint(t *testing.T) {
	cfg := handlerTestConfig()
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	users := new(stubUserRepository)
	authHandler := NewAuthHandler(services.NewAuthService(users, cfg))

	router := gin.New()
	router.GET("/api/profile", middleware.AuthRequired(), authHandler.Profile)

	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "test@example.com",
		Roles:     pq.StringArray{models.RoleUser},
	}
	users.On("FindByID", user.ID).Return(user, nil)

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Roles, 1)
	require.NoError(t, err)

	w := getWithToken(t, router, "/api/profile", token)
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	profile := body["user"].(map[string]interface{})
	assert.Equal(t, "test@example.com", profile["email"])
	// The hash never leaves the service boundary.
	assert.NotContains(t, w.Body.String(), "password")
}

func TestProfileEndpointRequiresToken(t *testing.T) {
	cfg := handlerTestConfig()
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	authHandler := NewAuthHandler(services.NewAuthService(new(stubUserRepository), cfg))

	router := gin.New()
	router.GET("/api/profile", middleware.AuthRequired(), authHandler.Profile)

	w := getWithToken(t, router, "/api/profile", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = getWithToken(t, router, "/api/profile", "garbage-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProductMutationRequiresSellerRole(t *testing.T) {
	cfg := handlerTestConfig()
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	productHandler := NewProductHandler(nil, services.NewAuthorizationService(), nil)

	router := gin.New()
	router.POST("/api/products", middleware.AuthRequired(), productHandler.CreateProduct)

	token, err := utils.GenerateJWT(uuid.New(), "test@example.com", []string{models.RoleUser}, 1)
	require.NoError(t, err)

	w := postJSON(t, router, "/api/products", gin.H{
		"name":  "Widget",
		"price": 10,
	}, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestStatsEndpointIsPublic(t *testing.T) {
	products := new(stubProductRepository)
	productHandler := NewProductHandler(services.NewProductService(products, nil), services.NewAuthorizationService(), nil)

	router := gin.New()
	router.GET("/api/products/stats", productHandler.GetStats)

	products.On("Count").Return(int64(8), nil)
	products.On("CountInStock").Return(int64(6), nil)
	products.On("FindRecentlyCreated", 5).Return([]models.Product{{}, {}}, nil)
	products.On("AveragePrice").Return(1234.5678, nil)

	// No Authorization header: catalog statistics require no account.
	w := getWithToken(t, router, "/api/products/stats", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(8), body["total_products"])
	assert.Equal(t, float64(6), body["in_stock_products"])
	assert.Equal(t, float64(2), body["recent_products"])
	assert.Equal(t, 1234.57, body["average_price"])
}

func TestOrderEndpointRejectsMalformedID(t *testing.T) {
	cfg := handlerTestConfig()
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	orderHandler := NewOrderHandler(nil)

	router := gin.New()
	router.GET("/api/orders/:id", middleware.AuthRequired(), orderHandler.GetOrder)

	token, err := utils.GenerateJWT(uuid.New(), "test@example.com", []string{models.RoleUser}, 1)
	require.NoError(t, err)

	w := getWithToken(t, router, "/api/orders/not-a-uuid", token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartEndpointRejectsMalformedProductID(t *testing.T) {
	cfg := handlerTestConfig()
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	cartHandler := NewCartHandler(nil)

	router := gin.New()
	router.POST("/api/cart/add", middleware.AuthRequired(), cartHandler.AddToCart)

	token, err := utils.GenerateJWT(uuid.New(), "test@example.com", []string{models.RoleUser}, 1)
	require.NoError(t, err)

	w := postJSON(t, router, "/api/cart/add", gin.H{
		"productId": "nope",
		"quantity":  1,
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartAddRejectsMissingOrZeroQuantity(t *testing.T) {
	cfg := handlerTestConfig()
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// A nil service guarantees validation failures never reach the cart.
	cartHandler := NewCartHandler(nil)

	router := gin.New()
	router.POST("/api/cart/add", middleware.AuthRequired(), cartHandler.AddToCart)

	token, err := utils.GenerateJWT(uuid.New(), "test@example.com", []string{models.RoleUser}, 1)
	require.NoError(t, err)

	productID := uuid.New().String()

	w := postJSON(t, router, "/api/cart/add", gin.H{
		"productId": productID,
		"quantity":  0,
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "quantity")

	w = postJSON(t, router, "/api/cart/add", gin.H{
		"productId": productID,
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "quantity")
}
