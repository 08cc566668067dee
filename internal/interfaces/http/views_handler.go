package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/viaconsulting/dashboard-huiles/internal/application/views"
)

// ViewsHandler pages liste du tableau de bord (lecture seule).
type ViewsHandler struct {
	uc *views.UseCase
}

// NewViewsHandler construit le handler.
func NewViewsHandler(uc *views.UseCase) *ViewsHandler {
	return &ViewsHandler{uc: uc}
}

// AgreageProvisoire godoc
// @Summary      Agréage provisoire
// @Tags         vues
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Recherche (insensible aux accents)"
// @Param        type    query  string  false  "FG, CG ou HE"
// @Param        statut  query  string  false  "Statut de la réception"
// @Param        from    query  string  false  "Date début AAAA-MM-JJ"
// @Param        to      query  string  false  "Date fin AAAA-MM-JJ (incluse)"
// @Param        limit   query  int     false  "Taille de page (max 100)"
// @Param        offset  query  int     false  "Décalage"
// @Success      200  {object}  dto.ListResponse[dto.ReceptionResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/agreage/provisoire [get]
func (h *ViewsHandler) AgreageProvisoire(c *fiber.Ctx) error {
	out, err := h.uc.AgreageProvisoire(listQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AgreageDefinitif godoc
// @Summary      Agréage définitif
// @Tags         vues
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Recherche (insensible aux accents)"
// @Param        type    query  string  false  "FG, CG ou HE"
// @Param        statut  query  string  false  "Statut de la réception"
// @Param        from    query  string  false  "Date début AAAA-MM-JJ"
// @Param        to      query  string  false  "Date fin AAAA-MM-JJ (incluse)"
// @Param        limit   query  int     false  "Taille de page (max 100)"
// @Param        offset  query  int     false  "Décalage"
// @Success      200  {object}  dto.ListResponse[dto.ReceptionResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/agreage/definitif [get]
func (h *ViewsHandler) AgreageDefinitif(c *fiber.Ctx) error {
	out, err := h.uc.AgreageDefinitif(listQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Exports godoc
// @Summary      Exports (facturations)
// @Tags         vues
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Recherche (insensible aux accents)"
// @Param        type    query  string  false  "FG, CG ou HE"
// @Param        statut  query  string  false  "Statut de la réception"
// @Param        from    query  string  false  "Date début AAAA-MM-JJ"
// @Param        to      query  string  false  "Date fin AAAA-MM-JJ (incluse)"
// @Param        limit   query  int     false  "Taille de page (max 100)"
// @Param        offset  query  int     false  "Décalage"
// @Success      200  {object}  dto.ListResponse[dto.ExportRow]
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/exports [get]
func (h *ViewsHandler) Exports(c *fiber.Ctx) error {
	out, err := h.uc.Exports(listQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Impayes godoc
// @Summary      Lister les impayés
// @Tags         impayes
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Recherche (insensible aux accents)"
// @Param        type    query  string  false  "FG, CG ou HE"
// @Param        statut  query  string  false  "Statut de la réception"
// @Param        from    query  string  false  "Date début AAAA-MM-JJ"
// @Param        to      query  string  false  "Date fin AAAA-MM-JJ (incluse)"
// @Param        limit   query  int     false  "Taille de page (max 100)"
// @Param        offset  query  int     false  "Décalage"
// @Success      200  {object}  dto.ListResponse[dto.ImpayeRow]
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/impayes [get]
func (h *ViewsHandler) Impayes(c *fiber.Ctx) error {
	out, err := h.uc.Impayes(listQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Transport godoc
// @Summary      Transport (fiches de livraison)
// @Tags         vues
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Recherche (insensible aux accents)"
// @Param        type    query  string  false  "FG, CG ou HE"
// @Param        statut  query  string  false  "Statut de la réception"
// @Param        from    query  string  false  "Date début AAAA-MM-JJ"
// @Param        to      query  string  false  "Date fin AAAA-MM-JJ (incluse)"
// @Param        limit   query  int     false  "Taille de page (max 100)"
// @Param        offset  query  int     false  "Décalage"
// @Success      200  {object}  dto.ListResponse[dto.TransportRow]
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/transport [get]
func (h *ViewsHandler) Transport(c *fiber.Ctx) error {
	out, err := h.uc.Transport(listQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Stock godoc
// @Summary      Stock par type de matière
// @Tags         vues
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Recherche (insensible aux accents)"
// @Param        type    query  string  false  "FG, CG ou HE"
// @Param        statut  query  string  false  "Statut de la réception"
// @Param        from    query  string  false  "Date début AAAA-MM-JJ"
// @Param        to      query  string  false  "Date fin AAAA-MM-JJ (incluse)"
// @Param        limit   query  int     false  "Taille de page (max 100)"
// @Param        offset  query  int     false  "Décalage"
// @Success      200  {array}   dto.StockRow
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *ViewsHandler) Stock(c *fiber.Ctx) error {
	out, err := h.uc.Stock(listQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
