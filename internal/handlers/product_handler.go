package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"storefront/internal/dto"
	"storefront/internal/services"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, validate *validator.Validate) *ProductHandler {
	return &ProductHandler{service: service, validate: validate}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/products")
	routes.Get("/", h.HandleList)
	routes.Get("/:id", h.HandleGetByID)
	routes.Post("/", h.HandleCreate)
	routes.Put("/:id", h.HandleUpdate)
	routes.Delete("/:id", h.HandleDelete)
}

// HandleList returns one page of products with rating aggregates.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	result, err := h.service.List(c.UserContext(), pagination(c))
	return respond(c, result, err)
}

// HandleGetByID returns a single product.
func (h *ProductHandler) HandleGetByID(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "Invalid product ID")
	}
	result, err := h.service.GetByID(c.UserContext(), id)
	return respond(c, result, err)
}

// HandleCreate creates a new product.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if ok, err := validationOK(c, h.validate, req); !ok {
		return err
	}
	result, err := h.service.Create(c.UserContext(), req)
	return respond(c, result, err)
}

// HandleUpdate partially updates a product; absent fields stay untouched.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "Invalid product ID")
	}
	var req dto.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if ok, err := validationOK(c, h.validate, req); !ok {
		return err
	}
	result, err := h.service.Update(c.UserContext(), id, req)
	return respond(c, result, err)
}

// HandleDelete removes a product.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "Invalid product ID")
	}
	result, err := h.service.Delete(c.UserContext(), id)
	return respond(c, result, err)
}
