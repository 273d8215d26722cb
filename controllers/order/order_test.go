package orderControllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Dillon-Lewis/BEC-Module-6-API-Ecom/models"
	"github.com/Dillon-Lewis/BEC-Module-6-API-Ecom/routes"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Customer{}, &models.Product{}, &models.Order{}))

	r := gin.New()
	routes.SetupRoutes(r, db)
	return r, db
}

func doJSON(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedCustomerAndProduct(t *testing.T, r http.Handler) {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/customers", gin.H{
		"customer_name": "Ann",
		"username":      "ann1",
		"email":         "a@x.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(r, http.MethodPost, "/products", gin.H{"product_name": "Widget", "price": 9.99})
	require.Equal(t, http.StatusCreated, w.Code)
}

func countRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}

func TestPlaceOrderThenRetrieve(t *testing.T) {
	r, _ := setupRouter(t)
	seedCustomerAndProduct(t, r)

	w := doJSON(r, http.MethodPost, "/orders", gin.H{"customer_id": 1, "items": []uint{1}})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Order models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, uint(1), created.Order.ID)
	assert.Equal(t, uint(1), created.Order.CustomerID)
	assert.NotEmpty(t, created.Order.OrderRef)
	assert.False(t, created.Order.DateOrdered.IsZero())

	w = doJSON(r, http.MethodGet, "/retrieve_order/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Widget", products[0].ProductName)
	assert.Equal(t, 9.99, products[0].Price)
}

func TestPlaceOrderValidation(t *testing.T) {
	r, _ := setupRouter(t)
	seedCustomerAndProduct(t, r)

	// items key missing entirely
	w := doJSON(r, http.MethodPost, "/orders", gin.H{"customer_id": 1})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "items")

	// customer_id missing
	w = doJSON(r, http.MethodPost, "/orders", gin.H{"items": []uint{1}})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "customer_id")
}

func TestPlaceOrderEmptyItems(t *testing.T) {
	r, _ := setupRouter(t)
	seedCustomerAndProduct(t, r)

	// present-but-empty items is a valid order with no products
	w := doJSON(r, http.MethodPost, "/orders", gin.H{"customer_id": 1, "items": []uint{}})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/retrieve_order/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Empty(t, products)
}

func TestPlaceOrderUnknownCustomer(t *testing.T) {
	r, db := setupRouter(t)
	seedCustomerAndProduct(t, r)

	w := doJSON(r, http.MethodPost, "/orders", gin.H{"customer_id": 42, "items": []uint{1}})
	require.Equal(t, http.StatusNotFound, w.Code)

	assert.Zero(t, countRows(t, db, "orders"))
	assert.Zero(t, countRows(t, db, "order_products"))
}

func TestPlaceOrderUnknownProductIsAtomic(t *testing.T) {
	r, db := setupRouter(t)
	seedCustomerAndProduct(t, r)

	// one valid product id, one unknown: nothing may persist
	w := doJSON(r, http.MethodPost, "/orders", gin.H{"customer_id": 1, "items": []uint{1, 99}})
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "99")

	assert.Zero(t, countRows(t, db, "orders"))
	assert.Zero(t, countRows(t, db, "order_products"))
}

func TestPlaceOrderDeduplicatesItems(t *testing.T) {
	r, db := setupRouter(t)
	seedCustomerAndProduct(t, r)

	w := doJSON(r, http.MethodPost, "/orders", gin.H{"customer_id": 1, "items": []uint{1, 1, 1}})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/retrieve_order/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 1)

	assert.EqualValues(t, 1, countRows(t, db, "order_products"))
}

func TestRetrieveOrderNotFound(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/retrieve_order/7", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp, "error")
}

func TestGetAllOrdersEmptyList(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestGetAllOrders(t *testing.T) {
	r, _ := setupRouter(t)
	seedCustomerAndProduct(t, r)

	for i := 0; i < 2; i++ {
		w := doJSON(r, http.MethodPost, "/orders", gin.H{"customer_id": 1, "items": []uint{1}})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(r, http.MethodGet, "/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 2)
	for _, o := range orders {
		assert.Len(t, o.Products, 1)
	}
}
