package handlers

import (
	"context"
	"errors"
	"time"

	"kundali-api/internal/models"
	"kundali-api/internal/services"

	"github.com/gofiber/fiber/v2"
)

// KundaliGenerator is what the handler needs from the service layer.
type KundaliGenerator interface {
	Generate(ctx context.Context, req models.KundaliRequest) (*models.KundaliResponse, error)
}

type KundaliHandler struct {
	service KundaliGenerator
	timeout time.Duration
}

func NewKundaliHandler(service KundaliGenerator, timeout time.Duration) *KundaliHandler {
	return &KundaliHandler{
		service: service,
		timeout: timeout,
	}
}

// Generate handles POST /kundali
func (h *KundaliHandler) Generate(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	var req models.KundaliRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(models.ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
			Code:    400,
		})
	}

	if req.BirthDate == "" || req.BirthTime == "" || req.BirthPlace == "" {
		return c.Status(400).JSON(models.ErrorResponse{
			Error:   "Missing required fields",
			Message: "birth_date, birth_time and birth_place are required",
			Code:    400,
		})
	}

	report, err := h.service.Generate(ctx, req)
	if err != nil {
		if errors.Is(err, services.ErrPlaceNotFound) {
			return c.Status(400).JSON(models.ErrorResponse{
				Error:   "Invalid birth place",
				Message: err.Error(),
				Code:    400,
			})
		}
		return c.Status(500).JSON(models.ErrorResponse{
			Error:   "Failed to generate kundali",
			Message: err.Error(),
			Code:    500,
		})
	}

	return c.JSON(report)
}

// CustomErrorHandler handles Fiber errors
func CustomErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(models.ErrorResponse{
		Error:   "Request failed",
		Message: err.Error(),
		Code:    code,
	})
}
