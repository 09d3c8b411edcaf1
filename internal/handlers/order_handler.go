package handlers

import (
	"github.com/gofiber/fiber/v2"

	"storefront/internal/middleware"
	"storefront/internal/services"
)

// OrderHandler handles HTTP requests for orders. Every route is scoped to the
// authenticated user id from the middleware.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/orders")
	routes.Post("/checkout", h.HandleCheckout)
	routes.Get("/", h.HandleGetMyOrders)
	routes.Get("/:id", h.HandleGetByID)
	routes.Post("/:id/cancel", h.HandleCancel)
}

// HandleCheckout turns the caller's cart into a pending order.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	result, err := h.service.CreateFromCart(c.UserContext(), middleware.UserID(c))
	return respond(c, result, err)
}

// HandleGetMyOrders returns one page of the caller's orders.
func (h *OrderHandler) HandleGetMyOrders(c *fiber.Ctx) error {
	result, err := h.service.GetMyOrders(c.UserContext(), middleware.UserID(c), pagination(c))
	return respond(c, result, err)
}

// HandleGetByID returns one of the caller's orders.
func (h *OrderHandler) HandleGetByID(c *fiber.Ctx) error {
	orderID := paramID(c, "id")
	if orderID == 0 {
		return badRequest(c, "Invalid order ID")
	}
	result, err := h.service.GetByID(c.UserContext(), orderID, middleware.UserID(c))
	return respond(c, result, err)
}

// HandleCancel cancels a pending order.
func (h *OrderHandler) HandleCancel(c *fiber.Ctx) error {
	orderID := paramID(c, "id")
	if orderID == 0 {
		return badRequest(c, "Invalid order ID")
	}
	result, err := h.service.CancelOrder(c.UserContext(), orderID, middleware.UserID(c))
	return respond(c, result, err)
}
