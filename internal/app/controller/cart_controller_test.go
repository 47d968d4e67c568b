package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewrain/brewrain-backend/internal/app/repository"
	"github.com/brewrain/brewrain-backend/internal/app/service"
	"github.com/brewrain/brewrain-backend/internal/catalog"
	"github.com/brewrain/brewrain-backend/internal/middleware"
)

func setupCartControllerTest(t *testing.T) (*CartController, *gin.Engine, service.CartService) {
	t.Helper()

	cartRepo := repository.NewCartRepository()
	cartService := service.NewCartService(cartRepo, catalog.Default())
	cartController := NewCartController(cartService)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	return cartController, router, cartService
}

func withSession(sessionID string, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetSessionID(c, sessionID)
		handler(c)
	}
}

func TestCartController_GetCart_Empty(t *testing.T) {
	controller, router, _ := setupCartControllerTest(t)

	router.GET("/cart", withSession("s1", controller.GetCart))

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, float64(0), response["count"])
	assert.Equal(t, float64(0), response["total"])
	assert.Equal(t, "Rp0", response["total_formatted"])
}

func TestCartController_GetCart_WithLines(t *testing.T) {
	controller, router, cartService := setupCartControllerTest(t)

	_, err := cartService.AddLine("s1", service.AddLineInput{ProductID: "matcha", Quantity: 2})
	require.NoError(t, err)

	router.GET("/cart", withSession("s1", controller.GetCart))

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, float64(1), response["count"])
	assert.Equal(t, float64(30000), response["total"]) // 15000 * 2
	assert.Equal(t, "Rp30.000", response["total_formatted"])
}

func TestCartController_GetCart_NoSession(t *testing.T) {
	controller, router, _ := setupCartControllerTest(t)

	router.GET("/cart", controller.GetCart)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "SESSION_MISSING")
}

func TestCartController_AddToCart_Success(t *testing.T) {
	controller, router, cartService := setupCartControllerTest(t)

	router.POST("/cart", withSession("s1", controller.AddToCart))

	body, _ := json.Marshal(AddToCartRequest{
		ProductID:  "matcha",
		Quantity:   2,
		SugarLevel: "100%",
		Notes:      "tanpa topping",
	})
	req := httptest.NewRequest(http.MethodPost, "/cart", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Line struct {
			ID         string `json:"id"`
			Name       string `json:"name"`
			SugarLevel string `json:"sugar_level"`
			Quantity   int    `json:"quantity"`
		} `json:"line"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response.Line.ID)
	assert.Equal(t, "Matcha Latte", response.Line.Name)
	assert.Equal(t, "100%", response.Line.SugarLevel)
	assert.Equal(t, 2, response.Line.Quantity)

	assert.Equal(t, 1, cartService.GetCart("s1").Len())
}

func TestCartController_AddToCart_UnknownProduct(t *testing.T) {
	controller, router, _ := setupCartControllerTest(t)

	router.POST("/cart", withSession("s1", controller.AddToCart))

	body := []byte(`{"product_id": "espresso"}`)
	req := httptest.NewRequest(http.MethodPost, "/cart", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "CATALOG_PRODUCT_NOT_FOUND")
}

func TestCartController_AddToCart_InvalidSugarLevel(t *testing.T) {
	controller, router, _ := setupCartControllerTest(t)

	router.POST("/cart", withSession("s1", controller.AddToCart))

	body := []byte(`{"product_id": "matcha", "sugar_level": "110%"}`)
	req := httptest.NewRequest(http.MethodPost, "/cart", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "CATALOG_INVALID_SUGAR_LEVEL")
}

func TestCartController_AddToCart_MissingProductID(t *testing.T) {
	controller, router, _ := setupCartControllerTest(t)

	router.POST("/cart", withSession("s1", controller.AddToCart))

	req := httptest.NewRequest(http.MethodPost, "/cart", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_INVALID_INPUT")
}

func TestCartController_UpdateCartLine(t *testing.T) {
	controller, router, cartService := setupCartControllerTest(t)

	line, err := cartService.AddLine("s1", service.AddLineInput{ProductID: "matcha"})
	require.NoError(t, err)

	router.PUT("/cart/:id", withSession("s1", controller.UpdateCartLine))

	body := []byte(`{"quantity": 3}`)
	req := httptest.NewRequest(http.MethodPut, "/cart/"+line.ID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	got, ok := cartService.GetCart("s1").Find(line.ID)
	require.True(t, ok)
	assert.Equal(t, 3, got.Quantity)
}

func TestCartController_UpdateCartLine_ClampsNegative(t *testing.T) {
	controller, router, cartService := setupCartControllerTest(t)

	line, err := cartService.AddLine("s1", service.AddLineInput{ProductID: "matcha", Quantity: 2})
	require.NoError(t, err)

	router.PUT("/cart/:id", withSession("s1", controller.UpdateCartLine))

	body := []byte(`{"quantity": -4}`)
	req := httptest.NewRequest(http.MethodPut, "/cart/"+line.ID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	got, ok := cartService.GetCart("s1").Find(line.ID)
	require.True(t, ok)
	assert.Equal(t, 1, got.Quantity)
}

func TestCartController_UpdateCartLine_NotFound(t *testing.T) {
	controller, router, _ := setupCartControllerTest(t)

	router.PUT("/cart/:id", withSession("s1", controller.UpdateCartLine))

	body := []byte(`{"quantity": 2}`)
	req := httptest.NewRequest(http.MethodPut, "/cart/matcha-0", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "CART_LINE_NOT_FOUND")
}

func TestCartController_RemoveFromCart(t *testing.T) {
	controller, router, cartService := setupCartControllerTest(t)

	line, err := cartService.AddLine("s1", service.AddLineInput{ProductID: "matcha"})
	require.NoError(t, err)

	router.DELETE("/cart/:id", withSession("s1", controller.RemoveFromCart))

	req := httptest.NewRequest(http.MethodDelete, "/cart/"+line.ID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, cartService.GetCart("s1").Len())
}

func TestCartController_ClearCart(t *testing.T) {
	controller, router, cartService := setupCartControllerTest(t)

	_, err := cartService.AddLine("s1", service.AddLineInput{ProductID: "matcha"})
	require.NoError(t, err)
	_, err = cartService.AddLine("s1", service.AddLineInput{ProductID: "thai"})
	require.NoError(t, err)

	router.DELETE("/cart", withSession("s1", controller.ClearCart))

	req := httptest.NewRequest(http.MethodDelete, "/cart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, cartService.GetCart("s1").Len())
}
