package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"storefront/internal/results"
)

// respond is the single translator from the Result protocol to transport
// responses. Service errors are infrastructure faults: they are logged with
// detail and answered with a redacted 500.
func respond[T any](c *fiber.Ctx, result results.Result[T], err error) error {
	if err != nil {
		log.Printf("Internal error on %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "An internal server error occurred. Please try again later.",
		})
	}

	switch result.Kind {
	case results.Success:
		return c.JSON(result.Data)
	case results.Created:
		return c.Status(fiber.StatusCreated).JSON(result.Data)
	case results.NoContent:
		return c.SendStatus(fiber.StatusNoContent)
	case results.NotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": result.Message})
	case results.Duplicated:
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": result.Message})
	case results.Unauthorized:
		// The caller is authenticated but does not own the resource.
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": result.Message})
	case results.Failure:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": result.Message})
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": result.Message})
	}
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// validationOK runs struct-tag validation and writes the 400 response on
// failure. It returns true when the request may proceed.
func validationOK(c *fiber.Ctx, validate *validator.Validate, req any) (bool, error) {
	err := validate.Struct(req)
	if err == nil {
		return true, nil
	}

	invalid, ok := err.(validator.ValidationErrors)
	if !ok {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	errors := make([]fieldError, 0, len(invalid))
	for _, fe := range invalid {
		errors = append(errors, fieldError{
			Field:   fe.Field(),
			Message: fe.Error(),
		})
	}
	return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation errors were found.",
		"errors":  errors,
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": message})
}

// paramID parses a positive integer path parameter; 0 means invalid.
func paramID(c *fiber.Ctx, name string) uint {
	id, err := c.ParamsInt(name)
	if err != nil || id < 1 {
		return 0
	}
	return uint(id)
}

// pagination reads and normalizes the page window from the query string, so
// a zero or out-of-range size never reaches the services.
func pagination(c *fiber.Ctx) results.PaginationParams {
	p := results.PaginationParams{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", results.DefaultPageSize),
	}
	return p.Normalize()
}
