package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/cache"
	"storefront/internal/dto"
	"storefront/internal/handlers"
	"storefront/internal/middleware"
	"storefront/internal/repositories"
	"storefront/internal/services"
)

// newTestApp wires the full HTTP surface over in-memory repositories, the
// same way main.go wires it over GORM.
func newTestApp() *fiber.App {
	repos := repositories.NewMockRepositories()
	uow := repositories.NewMemoryUnitOfWork(repos)
	store := cache.NewMemoryStore()

	validate := validator.New()
	authService := services.NewAuthService(repos.Users, "test-secret")
	categoryService := services.NewCategoryService(repos, uow, store)
	productService := services.NewProductService(repos, uow, store)
	cartService := services.NewCartService(repos, uow)
	orderService := services.NewOrderService(repos, uow, nil)

	app := fiber.New()
	apiV1 := app.Group("/api/v1")
	handlers.NewAuthHandler(authService, validate).RegisterRoutes(apiV1)

	protected := apiV1.Group("", middleware.AuthRequired(authService))
	handlers.NewCategoryHandler(categoryService, validate).RegisterRoutes(protected)
	handlers.NewProductHandler(productService, validate).RegisterRoutes(protected)
	handlers.NewCartHandler(cartService, validate).RegisterRoutes(protected)
	handlers.NewOrderHandler(orderService).RegisterRoutes(protected)

	return app
}

type client struct {
	t     *testing.T
	app   *fiber.App
	token string
}

func (c *client) do(method, path string, body any) *http.Response {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, "/api/v1"+path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.app.Test(req, -1)
	require.NoError(c.t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// signUp registers and logs a user in, returning an authenticated client.
func signUp(t *testing.T, app *fiber.App, username string) *client {
	t.Helper()
	c := &client{t: t, app: app}

	resp := c.do(fiber.MethodPost, "/auth/register", dto.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "secret123",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = c.do(fiber.MethodPost, "/auth/login", dto.LoginRequest{
		Username: username,
		Password: "secret123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	c.token = decode[dto.TokenResponse](t, resp).Token
	require.NotEmpty(t, c.token)
	return c
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp()
	c := &client{t: t, app: app}

	for _, path := range []string{"/categories/", "/products/", "/cart/", "/orders/"} {
		resp := c.do(fiber.MethodGet, path, nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, path)
	}

	c.token = "not-a-token"
	resp := c.do(fiber.MethodGet, "/categories/", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestCheckoutFlow(t *testing.T) {
	app := newTestApp()
	c := signUp(t, app, "alice")

	// Catalog setup.
	resp := c.do(fiber.MethodPost, "/categories/", dto.CreateCategoryRequest{Name: "Shoes"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	category := decode[dto.CategoryResponse](t, resp)

	resp = c.do(fiber.MethodPost, "/products/", dto.CreateProductRequest{
		Name:       "Runner",
		Price:      50,
		CategoryID: category.ID,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	product := decode[dto.ProductResponse](t, resp)

	// Two units in the cart.
	resp = c.do(fiber.MethodPost, "/cart/items", dto.AddToCartRequest{ProductID: product.ID, Quantity: 2})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	cart := decode[dto.CartResponse](t, resp)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 100.0, cart.TotalAmount)

	// Checkout produces a pending order worth the cart total.
	resp = c.do(fiber.MethodPost, "/orders/checkout", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	order := decode[dto.OrderResponse](t, resp)
	assert.Equal(t, "pending", order.Status)
	assert.Equal(t, 100.0, order.TotalAmount)
	assert.Contains(t, order.OrderNumber, "ORD-")
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Runner", order.Items[0].ProductName)

	// The cart is empty afterwards.
	resp = c.do(fiber.MethodGet, "/cart/", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	cart = decode[dto.CartResponse](t, resp)
	assert.Empty(t, cart.Items)

	// Checking out the now empty cart is a 404.
	resp = c.do(fiber.MethodPost, "/orders/checkout", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCatalogConflictsAndValidation(t *testing.T) {
	app := newTestApp()
	c := signUp(t, app, "alice")

	resp := c.do(fiber.MethodPost, "/categories/", dto.CreateCategoryRequest{Name: "Shoes"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Same live name again is a conflict.
	resp = c.do(fiber.MethodPost, "/categories/", dto.CreateCategoryRequest{Name: "Shoes"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// A too-short name never reaches the service.
	resp = c.do(fiber.MethodPost, "/categories/", dto.CreateCategoryRequest{Name: "ab"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// A product for an unknown category is a 404.
	resp = c.do(fiber.MethodPost, "/products/", dto.CreateProductRequest{
		Name:       "Runner",
		Price:      50,
		CategoryID: 9999,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestPartialUpdateOverHTTP(t *testing.T) {
	app := newTestApp()
	c := signUp(t, app, "alice")

	resp := c.do(fiber.MethodPost, "/categories/", dto.CreateCategoryRequest{Name: "Shoes"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	category := decode[dto.CategoryResponse](t, resp)

	resp = c.do(fiber.MethodPost, "/products/", dto.CreateProductRequest{
		Name:       "Runner",
		Price:      50,
		CategoryID: category.ID,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	product := decode[dto.ProductResponse](t, resp)

	// A body that only carries the price leaves the name alone.
	resp = c.do(fiber.MethodPut, fmt.Sprintf("/products/%d", product.ID), fiber.Map{"price": 60})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	updated := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, "Runner", updated.Name)
	assert.Equal(t, 60.0, updated.Price)

	// Deleting answers 204 and a later read 404.
	resp = c.do(fiber.MethodDelete, fmt.Sprintf("/products/%d", product.ID), nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	resp = c.do(fiber.MethodGet, fmt.Sprintf("/products/%d", product.ID), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestOrderOwnershipOverHTTP(t *testing.T) {
	app := newTestApp()
	alice := signUp(t, app, "alice")
	bob := signUp(t, app, "bob")

	resp := alice.do(fiber.MethodPost, "/categories/", dto.CreateCategoryRequest{Name: "Shoes"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	category := decode[dto.CategoryResponse](t, resp)

	resp = alice.do(fiber.MethodPost, "/products/", dto.CreateProductRequest{
		Name:       "Runner",
		Price:      50,
		CategoryID: category.ID,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	product := decode[dto.ProductResponse](t, resp)

	resp = alice.do(fiber.MethodPost, "/cart/items", dto.AddToCartRequest{ProductID: product.ID, Quantity: 1})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp = alice.do(fiber.MethodPost, "/orders/checkout", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	order := decode[dto.OrderResponse](t, resp)

	// Bob is authenticated but not the owner.
	resp = bob.do(fiber.MethodGet, fmt.Sprintf("/orders/%d", order.ID), nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	resp = bob.do(fiber.MethodPost, fmt.Sprintf("/orders/%d/cancel", order.ID), nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// The owner can cancel exactly once.
	resp = alice.do(fiber.MethodPost, fmt.Sprintf("/orders/%d/cancel", order.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	cancelled := decode[dto.OrderResponse](t, resp)
	assert.Equal(t, "cancelled", cancelled.Status)

	resp = alice.do(fiber.MethodPost, fmt.Sprintf("/orders/%d/cancel", order.ID), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
