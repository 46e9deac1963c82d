package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	catalogapp "github.com/shopadmin/backend/internal/application/catalog"
	identityapp "github.com/shopadmin/backend/internal/application/identity"
	inventoryapp "github.com/shopadmin/backend/internal/application/inventory"
	orderapp "github.com/shopadmin/backend/internal/application/order"
	"github.com/shopadmin/backend/internal/domain/catalog"
	"github.com/shopadmin/backend/internal/domain/identity"
	"github.com/shopadmin/backend/internal/domain/inventory"
	"github.com/shopadmin/backend/internal/domain/order"
	"github.com/shopadmin/backend/internal/infrastructure/auth"
	"github.com/shopadmin/backend/internal/infrastructure/config"
	"github.com/shopadmin/backend/internal/infrastructure/persistence"
	"github.com/shopadmin/backend/internal/infrastructure/storage"
	"github.com/shopadmin/backend/internal/interfaces/http/middleware"
	"github.com/shopadmin/backend/internal/interfaces/http/router"
)

type testServer struct {
	engine *gin.Engine
	db     *gorm.DB
	token  string
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&identity.User{},
		&catalog.Category{}, &catalog.Product{}, &catalog.ProductImage{},
		&order.Order{}, &order.OrderItem{},
		&inventory.InventoryItem{},
	))

	logger := zap.NewNop()
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:     "handler-test-secret-with-enough-length",
		Expiration: time.Hour,
		Issuer:     "shopadmin-test",
	})
	blacklist := auth.NewInMemoryTokenBlacklist()

	products := persistence.NewGormProductRepository(db)
	categories := persistence.NewGormCategoryRepository(db)
	orders := persistence.NewGormOrderRepository(db)
	users := persistence.NewGormUserRepository(db)
	items := persistence.NewGormInventoryRepository(db)
	scope := persistence.NewGormTransactionScope(db)

	productService := catalogapp.NewProductService(products, categories)
	categoryService := catalogapp.NewCategoryService(categories, products)
	uploadService := catalogapp.NewImageUploadService(
		products, storage.NewStubObjectStorage(), "https://cdn.example.com", 15*time.Minute)
	orderService := orderapp.NewService(orders)
	userService := identityapp.NewUserService(users, logger)
	authService := identityapp.NewAuthService(users, jwtService, blacklist, logger)
	inventoryService := inventoryapp.NewInventoryService(items, products, scope, logger)

	requireAuth := middleware.RequireAuth(jwtService, blacklist, logger)
	engine := gin.New()
	engine = router.New(engine, requireAuth).
		RegisterPublic(
			NewSystemHandler(nil),
			NewAuthHandler(authService, requireAuth, nil),
		).
		RegisterProtected(
			NewProductHandler(productService, uploadService),
			NewCategoryHandler(categoryService),
			NewOrderHandler(orderService),
			NewUserHandler(userService, middleware.RequireRole(string(identity.RoleAdmin))),
			NewInventoryHandler(inventoryService),
		).
		Setup()

	admin, err := identity.NewUser("Admin", "admin@example.com", "correct-horse", identity.RoleAdmin)
	require.NoError(t, err)
	require.NoError(t, db.Create(admin).Error)

	issued, err := jwtService.GenerateToken(auth.GenerateTokenInput{
		UserID: admin.ID,
		Email:  admin.Email,
		Role:   string(admin.Role),
	})
	require.NoError(t, err)

	return &testServer{engine: engine, db: db, token: issued.Token}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func seedProducts(t *testing.T, db *gorm.DB, n int) []*catalog.Product {
	t.Helper()
	products := make([]*catalog.Product, 0, n)
	for i := 0; i < n; i++ {
		p, err := catalog.NewProduct(
			fmt.Sprintf("SKU-%03d", i),
			fmt.Sprintf("Widget %03d", i),
			decimal.NewFromInt(int64(10+i)),
		)
		require.NoError(t, err)
		require.NoError(t, db.Create(p).Error)
		products = append(products, p)
	}
	return products
}

func TestProductList_PaginatedEnvelope(t *testing.T) {
	srv := setupTestServer(t)
	seedProducts(t, srv.db, 25)

	w := srv.do(t, http.MethodGet, "/api/v1/admin/products?page=1&limit=10", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])

	pagination, ok := body["pagination"].(map[string]any)
	require.True(t, ok, "pagination must be a top-level envelope field")
	assert.Equal(t, float64(25), pagination["total"])
	assert.Equal(t, float64(1), pagination["page"])
	assert.Equal(t, float64(10), pagination["limit"])
	assert.Equal(t, float64(3), pagination["totalPages"])
	assert.Equal(t, true, pagination["hasNextPage"])
	assert.Equal(t, false, pagination["hasPreviousPage"])

	data, ok := body["data"].([]any)
	require.True(t, ok)
	assert.Len(t, data, 10)
}

func TestProductList_Unauthenticated(t *testing.T) {
	srv := setupTestServer(t)

	w := httptest.NewRecorder()
	srv.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/products", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "UNAUTHORIZED", body["code"])
}

func TestProductGet_InvalidUUID(t *testing.T) {
	srv := setupTestServer(t)

	w := srv.do(t, http.MethodGet, "/api/v1/admin/products/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestProductGet_NotFound(t *testing.T) {
	srv := setupTestServer(t)

	w := srv.do(t, http.MethodGet, "/api/v1/admin/products/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestProductCreate_ValidationDetails(t *testing.T) {
	srv := setupTestServer(t)

	w := srv.do(t, http.MethodPost, "/api/v1/admin/products", map[string]any{
		"title": "No SKU or price",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
	details, ok := body["details"].([]any)
	require.True(t, ok)
	fields := make([]string, 0, len(details))
	for _, d := range details {
		fields = append(fields, d.(map[string]any)["field"].(string))
	}
	assert.Contains(t, fields, "sku")
	assert.Contains(t, fields, "price")
}

func TestProductCreateAndUploadURL(t *testing.T) {
	srv := setupTestServer(t)

	w := srv.do(t, http.MethodPost, "/api/v1/admin/products", map[string]any{
		"sku":   "CAM-001",
		"title": "Film Camera",
		"price": "199.99",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody(t, w)["data"].(map[string]any)
	productID := created["id"].(string)

	w = srv.do(t, http.MethodPost, "/api/v1/admin/products/"+productID+"/images/upload-url", map[string]any{
		"fileName":    "front.jpg",
		"contentType": "image/jpeg",
	})
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	assert.NotEmpty(t, data["uploadUrl"])
	assert.Contains(t, data["storageKey"], "products/"+productID+"/")
	assert.Contains(t, data["publicUrl"], "https://cdn.example.com/")
}

func TestOrderList_StatusFilterAndSort(t *testing.T) {
	srv := setupTestServer(t)

	buyer, err := identity.NewUser("Buyer", "buyer@example.com", "password-123", identity.RoleCustomer)
	require.NoError(t, err)
	require.NoError(t, srv.db.Create(buyer).Error)

	statuses := []order.Status{order.StatusShipped, order.StatusPending, order.StatusShipped}
	for i, status := range statuses {
		o, err := order.NewOrder(buyer.ID, []order.OrderItem{{
			ProductID: uuid.New(),
			Title:     fmt.Sprintf("Item %d", i),
			Quantity:  1,
			UnitPrice: decimal.NewFromInt(int64(20 + i)),
		}})
		require.NoError(t, err)
		o.Status = status
		o.CreatedAt = time.Now().Add(time.Duration(i) * time.Minute)
		require.NoError(t, srv.db.Create(o).Error)
	}

	w := srv.do(t, http.MethodGet, "/api/v1/admin/orders?status=SHIPPED&sortBy=createdAt&sortOrder=desc", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].([]any)
	require.Len(t, data, 2)
	first := data[0].(map[string]any)
	second := data[1].(map[string]any)
	assert.Equal(t, "SHIPPED", first["status"])
	assert.True(t, first["createdAt"].(string) > second["createdAt"].(string))
}

func TestOrderUpdateStatus_InvalidTransition(t *testing.T) {
	srv := setupTestServer(t)

	buyer, err := identity.NewUser("Buyer", "buyer@example.com", "password-123", identity.RoleCustomer)
	require.NoError(t, err)
	require.NoError(t, srv.db.Create(buyer).Error)

	o, err := order.NewOrder(buyer.ID, []order.OrderItem{{
		ProductID: uuid.New(),
		Title:     "Item",
		Quantity:  1,
		UnitPrice: decimal.NewFromInt(15),
	}})
	require.NoError(t, err)
	require.NoError(t, srv.db.Create(o).Error)

	w := srv.do(t, http.MethodPatch, "/api/v1/admin/orders/"+o.ID.String()+"/status",
		map[string]any{"status": "DELIVERED"})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_STATE")
}

func TestInventoryBulkUpdate_AtomicFailure(t *testing.T) {
	srv := setupTestServer(t)
	products := seedProducts(t, srv.db, 2)

	item, err := inventory.NewInventoryItem(products[0].ID, 5, 0)
	require.NoError(t, err)
	require.NoError(t, srv.db.Create(item).Error)

	w := srv.do(t, http.MethodPost, "/api/v1/admin/inventory/bulk-update", map[string]any{
		"updates": []map[string]any{
			{"productId": products[0].ID.String(), "quantity": 50},
			{"productId": uuid.NewString(), "quantity": 10},
		},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_PRODUCT")

	var unchanged inventory.InventoryItem
	require.NoError(t, srv.db.First(&unchanged, "product_id = ?", products[0].ID).Error)
	assert.Equal(t, 5, unchanged.Quantity)
}

func TestInventoryBulkUpdate_Success(t *testing.T) {
	srv := setupTestServer(t)
	products := seedProducts(t, srv.db, 2)

	w := srv.do(t, http.MethodPost, "/api/v1/admin/inventory/bulk-update", map[string]any{
		"updates": []map[string]any{
			{"productId": products[0].ID.String(), "quantity": 7},
			{"productId": products[1].ID.String(), "quantity": 3},
		},
	})

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].([]any)
	assert.Len(t, data, 2)

	var count int64
	require.NoError(t, srv.db.Model(&inventory.InventoryItem{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestUserList_LimitAllSentinel(t *testing.T) {
	srv := setupTestServer(t)
	for i := 0; i < 46; i++ {
		u, err := identity.NewUser(
			fmt.Sprintf("User %02d", i),
			fmt.Sprintf("user%02d@example.com", i),
			"password-123",
			identity.RoleStaff,
		)
		require.NoError(t, err)
		require.NoError(t, srv.db.Create(u).Error)
	}

	// 46 seeded plus the admin account.
	w := srv.do(t, http.MethodGet, "/api/v1/admin/users?limit=-1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].([]any)
	assert.Len(t, data, 47)
	pagination := body["pagination"].(map[string]any)
	assert.Equal(t, float64(47), pagination["total"])
	assert.Equal(t, float64(1), pagination["totalPages"])
	assert.Equal(t, false, pagination["hasNextPage"])
}

func TestUserChangeRole_RequiresAdmin(t *testing.T) {
	srv := setupTestServer(t)

	staff, err := identity.NewUser("Staff", "staff@example.com", "password-123", identity.RoleStaff)
	require.NoError(t, err)
	require.NoError(t, srv.db.Create(staff).Error)

	// Log in as the staff user to get a non-admin token.
	w := srv.do(t, http.MethodPost, "/api/v1/admin/auth/login", map[string]any{
		"email":    "staff@example.com",
		"password": "password-123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	staffToken := decodeBody(t, w)["data"].(map[string]any)["token"].(string)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/users/"+staff.ID.String()+"/role",
		bytes.NewReader([]byte(`{"role":"admin"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+staffToken)
	rec := httptest.NewRecorder()
	srv.engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthFlow_LoginMeLogout(t *testing.T) {
	srv := setupTestServer(t)

	w := srv.do(t, http.MethodPost, "/api/v1/admin/auth/login", map[string]any{
		"email":    "admin@example.com",
		"password": "correct-horse",
	})
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	token := data["token"].(string)
	require.NotEmpty(t, token)

	authedGet := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		srv.engine.ServeHTTP(rec, req)
		return rec
	}

	rec := authedGet("/api/v1/admin/auth/me")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin@example.com")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	srv.engine.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = authedGet("/api/v1/admin/auth/me")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_REVOKED")
}

func TestLogin_BadCredentials(t *testing.T) {
	srv := setupTestServer(t)

	w := srv.do(t, http.MethodPost, "/api/v1/admin/auth/login", map[string]any{
		"email":    "admin@example.com",
		"password": "wrong-password",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_CREDENTIALS")
}

func TestCategoryDelete_InUse(t *testing.T) {
	srv := setupTestServer(t)

	category, err := catalog.NewCategory("shoes", "Shoes")
	require.NoError(t, err)
	require.NoError(t, srv.db.Create(category).Error)

	p, err := catalog.NewProduct("SHOE-001", "Running Shoe", decimal.NewFromInt(80))
	require.NoError(t, err)
	p.CategoryID = &category.ID
	require.NoError(t, srv.db.Create(p).Error)

	w := srv.do(t, http.MethodDelete, "/api/v1/admin/categories/"+category.ID.String(), nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "CATEGORY_IN_USE")
}

func TestHealth_Public(t *testing.T) {
	srv := setupTestServer(t)

	w := httptest.NewRecorder()
	srv.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}
