package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/viaconsulting/dashboard-huiles/internal/application/dto"
	"github.com/viaconsulting/dashboard-huiles/internal/domain"
)

// writeError traduit une erreur de cas d'usage en réponse HTTP.
// Les erreurs par champ (client ou backend) sont renvoyées telles quelles dans Errors.
func writeError(c *fiber.Ctx, err error) error {
	status, code := classify(err)
	return c.Status(status).JSON(dto.ErrorResponse{
		Code:    code,
		Message: domain.DisplayMessage(err),
		Errors:  domain.FieldErrors(err),
	})
}

func classify(err error) (int, string) {
	var ae *domain.APIError
	switch {
	case errors.Is(err, domain.ErrNotLoaded):
		return fiber.StatusServiceUnavailable, "NOT_LOADED"
	case errors.Is(err, domain.ErrTransitionNotAllowed):
		return fiber.StatusConflict, "TRANSITION_NOT_ALLOWED"
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrInvalidInput):
		var ve *domain.ValidationError
		if errors.As(err, &ve) || errors.As(err, &ae) && ae.Status == fiber.StatusUnprocessableEntity {
			return fiber.StatusUnprocessableEntity, "VALIDATION"
		}
		return fiber.StatusBadRequest, "BAD_REQUEST"
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, "CONFLICT"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusBadGateway, "UPSTREAM_UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusBadGateway, "UPSTREAM_FORBIDDEN"
	case errors.Is(err, domain.ErrUpstream):
		return fiber.StatusBadGateway, "UPSTREAM"
	case errors.As(err, &ae):
		return fiber.StatusBadGateway, "UPSTREAM"
	}
	return fiber.StatusInternalServerError, "INTERNAL"
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: msg})
}

// idParam lit un identifiant numérique strictement positif dans la route.
func idParam(c *fiber.Ctx, name string) (int64, bool) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int64(id), true
}
