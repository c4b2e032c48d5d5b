package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"storeapi/internal/models"
	"storeapi/internal/repo"
	"storeapi/internal/service"
)

type testEnv struct {
	T     *testing.T
	E     *echo.Echo
	Store *repo.Store

	Products  *ProductHTTP
	Customers *CustomerHTTP
	Orders    *OrderHTTP
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Customer{}, &models.Product{}, &models.Order{}, &models.OrderProduct{}))

	store := repo.NewStore(db)

	return &testEnv{
		T:         t,
		E:         echo.New(),
		Store:     store,
		Products:  &ProductHTTP{Svc: &service.ProductService{Store: store}},
		Customers: &CustomerHTTP{Svc: &service.CustomerService{Store: store}},
		Orders:    &OrderHTTP{Svc: &service.OrderService{Store: store}},
	}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func TestCreateProductHandler(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]any{"name": "Widget", "price": "9.99", "quantity": 10}

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/products", payload)
	require.NoError(t, env.Products.CreateProduct(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Widget", resp.Name)
	assert.True(t, resp.Price.Equal(decimal.RequireFromString("9.99")))
	assert.Equal(t, 10, resp.Quantity)
	assert.NotEmpty(t, resp.ID)
}

func TestCreateProductHandler_Conflict(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]any{"name": "Widget", "price": "9.99", "quantity": 10}

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/products", payload)
	require.NoError(t, env.Products.CreateProduct(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	_, c2 := env.doJSONRequest(http.MethodPost, "/api/v1/products", payload)
	err := env.Products.CreateProduct(c2)
	require.Error(t, err)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestCreateProductHandler_Validation(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]any{"name": "Widget", "price": "-1", "quantity": 10}

	_, c := env.doJSONRequest(http.MethodPost, "/api/v1/products", payload)
	err := env.Products.CreateProduct(c)
	require.Error(t, err)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCreateOrderHandler(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/customers", map[string]any{
		"name": "Alice", "email": "alice@example.com",
	})
	require.NoError(t, env.Customers.CreateCustomer(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var customer models.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &customer))

	rec, c = env.doJSONRequest(http.MethodPost, "/api/v1/products", map[string]any{
		"name": "Widget", "price": "9.99", "quantity": 10,
	})
	require.NoError(t, env.Products.CreateProduct(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var product models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))

	rec, c = env.doJSONRequest(http.MethodPost, "/api/v1/orders", map[string]any{
		"customer_id": customer.ID,
		"products":    []map[string]any{{"id": product.ID, "quantity": 3}},
	})
	require.NoError(t, env.Orders.CreateOrder(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	require.Len(t, order.Products, 1)
	assert.Equal(t, 3, order.Products[0].Quantity)
	assert.True(t, order.Products[0].Price.Equal(decimal.RequireFromString("9.99")))

	stored, err := env.Store.Products.GetProduct(c.Request().Context(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, stored.Quantity)
}

func TestCreateOrderHandler_InsufficientStock(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/customers", map[string]any{
		"name": "Alice", "email": "alice@example.com",
	})
	require.NoError(t, env.Customers.CreateCustomer(c))

	var customer models.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &customer))

	rec, c = env.doJSONRequest(http.MethodPost, "/api/v1/products", map[string]any{
		"name": "Widget", "price": "9.99", "quantity": 2,
	})
	require.NoError(t, env.Products.CreateProduct(c))

	var product models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))

	_, c = env.doJSONRequest(http.MethodPost, "/api/v1/orders", map[string]any{
		"customer_id": customer.ID,
		"products":    []map[string]any{{"id": product.ID, "quantity": 5}},
	})
	err := env.Orders.CreateOrder(c)
	require.Error(t, err)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestGetOrderHandler_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodGet, "/api/v1/orders/3f6f4f8e-0000-0000-0000-000000000000", nil)
	c.SetParamNames("id")
	c.SetParamValues("3f6f4f8e-0000-0000-0000-000000000000")

	err := env.Orders.GetOrder(c)
	require.Error(t, err)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}
