package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/viaconsulting/dashboard-huiles/internal/application/delivery"
	"github.com/viaconsulting/dashboard-huiles/internal/application/dto"
)

// DeliveryHandler endpoints des fiches de livraison.
type DeliveryHandler struct {
	uc *delivery.UseCase
}

// NewDeliveryHandler construit le handler.
func NewDeliveryHandler(uc *delivery.UseCase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc}
}

// Create godoc
// @Summary      Créer une fiche de livraison
// @Description  409 TRANSITION_NOT_ALLOWED si la réception ne peut pas encore être livrée.
// @Tags         livraisons
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FicheLivraisonRequest  true  "Fiche de livraison"
// @Success      201   {object}  dto.FicheLivraisonResult
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/fiche-livraisons [post]
func (h *DeliveryHandler) Create(c *fiber.Ctx) error {
	var in dto.FicheLivraisonRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corps de requête invalide")
	}
	out, err := h.uc.CreateFicheLivraison(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
