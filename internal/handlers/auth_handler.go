package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"storefront/internal/dto"
	"storefront/internal/services"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	service  *services.AuthService
	validate *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service *services.AuthService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{service: service, validate: validate}
}

// RegisterRoutes registers the public auth routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/auth")
	routes.Post("/register", h.HandleRegister)
	routes.Post("/login", h.HandleLogin)
}

// HandleRegister creates a new account.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if ok, err := validationOK(c, h.validate, req); !ok {
		return err
	}
	result, err := h.service.Register(c.UserContext(), req)
	return respond(c, result, err)
}

// HandleLogin issues a token for valid credentials.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if ok, err := validationOK(c, h.validate, req); !ok {
		return err
	}
	result, err := h.service.Login(c.UserContext(), req)
	return respond(c, result, err)
}
