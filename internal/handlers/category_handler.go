package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"storefront/internal/dto"
	"storefront/internal/services"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService, validate *validator.Validate) *CategoryHandler {
	return &CategoryHandler{service: service, validate: validate}
}

// RegisterRoutes registers the category routes with the Fiber app.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/categories")
	routes.Get("/", h.HandleList)
	routes.Get("/:id", h.HandleGetByID)
	routes.Post("/", h.HandleCreate)
	routes.Put("/:id", h.HandleUpdate)
	routes.Delete("/:id", h.HandleDelete)
}

// HandleList returns one page of categories.
func (h *CategoryHandler) HandleList(c *fiber.Ctx) error {
	result, err := h.service.List(c.UserContext(), pagination(c))
	return respond(c, result, err)
}

// HandleGetByID returns a single category.
func (h *CategoryHandler) HandleGetByID(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "Invalid category ID")
	}
	result, err := h.service.GetByID(c.UserContext(), id)
	return respond(c, result, err)
}

// HandleCreate creates a new category.
func (h *CategoryHandler) HandleCreate(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if ok, err := validationOK(c, h.validate, req); !ok {
		return err
	}
	result, err := h.service.Create(c.UserContext(), req)
	return respond(c, result, err)
}

// HandleUpdate partially updates a category; absent fields stay untouched.
func (h *CategoryHandler) HandleUpdate(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "Invalid category ID")
	}
	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if ok, err := validationOK(c, h.validate, req); !ok {
		return err
	}
	result, err := h.service.Update(c.UserContext(), id, req)
	return respond(c, result, err)
}

// HandleDelete removes a category.
func (h *CategoryHandler) HandleDelete(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "Invalid category ID")
	}
	result, err := h.service.Delete(c.UserContext(), id)
	return respond(c, result, err)
}
