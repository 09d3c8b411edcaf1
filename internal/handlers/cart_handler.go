package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"storefront/internal/dto"
	"storefront/internal/middleware"
	"storefront/internal/services"
)

// CartHandler handles HTTP requests for the caller's cart. Every route is
// scoped to the authenticated user id from the middleware.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService, validate *validator.Validate) *CartHandler {
	return &CartHandler{service: service, validate: validate}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/cart")
	routes.Get("/", h.HandleGetMyCart)
	routes.Post("/items", h.HandleAddItem)
	routes.Put("/items/:id", h.HandleUpdateItemQuantity)
	routes.Delete("/items/:id", h.HandleRemoveItem)
	routes.Delete("/", h.HandleClearCart)
}

// HandleGetMyCart returns the caller's cart, empty if none exists yet.
func (h *CartHandler) HandleGetMyCart(c *fiber.Ctx) error {
	result, err := h.service.GetMyCart(c.UserContext(), middleware.UserID(c))
	return respond(c, result, err)
}

// HandleAddItem adds a product to the cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req dto.AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if ok, err := validationOK(c, h.validate, req); !ok {
		return err
	}
	result, err := h.service.AddItem(c.UserContext(), middleware.UserID(c), req)
	return respond(c, result, err)
}

// HandleUpdateItemQuantity sets a line's quantity.
func (h *CartHandler) HandleUpdateItemQuantity(c *fiber.Ctx) error {
	itemID := paramID(c, "id")
	if itemID == 0 {
		return badRequest(c, "Invalid cart item ID")
	}
	var req dto.UpdateCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if ok, err := validationOK(c, h.validate, req); !ok {
		return err
	}
	result, err := h.service.UpdateItemQuantity(c.UserContext(), middleware.UserID(c), itemID, req.Quantity)
	return respond(c, result, err)
}

// HandleRemoveItem removes a line from the cart.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	itemID := paramID(c, "id")
	if itemID == 0 {
		return badRequest(c, "Invalid cart item ID")
	}
	result, err := h.service.RemoveItem(c.UserContext(), middleware.UserID(c), itemID)
	return respond(c, result, err)
}

// HandleClearCart empties the caller's cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	result, err := h.service.ClearCart(c.UserContext(), middleware.UserID(c))
	return respond(c, result, err)
}
