package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/viaconsulting/dashboard-huiles/internal/application/analytics"
)

// DashboardHandler endpoints de la page d'accueil.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construit le handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Résumé du mois et encours
// @Description  Calculé sur le cache, sans appel au backend.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetSummary())
}
