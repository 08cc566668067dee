package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/viaconsulting/dashboard-huiles/internal/application/delivery"
	"github.com/viaconsulting/dashboard-huiles/internal/application/dto"
	"github.com/viaconsulting/dashboard-huiles/internal/application/reception"
	"github.com/viaconsulting/dashboard-huiles/internal/application/store"
	"github.com/viaconsulting/dashboard-huiles/internal/application/views"
)

// ReceptionHandler endpoints des réceptions.
type ReceptionHandler struct {
	uc       *reception.UseCase
	views    *views.UseCase
	delivery *delivery.UseCase
	store    *store.ReceptionStore
}

// NewReceptionHandler construit le handler.
func NewReceptionHandler(uc *reception.UseCase, v *views.UseCase, d *delivery.UseCase, st *store.ReceptionStore) *ReceptionHandler {
	return &ReceptionHandler{uc: uc, views: v, delivery: d, store: st}
}

// List godoc
// @Summary      Lister les réceptions
// @Tags         receptions
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
// @Router       /api/receptions [get]
func (h *ReceptionHandler) List(c *fiber.Ctx) error {
	out, err := h.views.Receptions(listQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtenir une réception
// @Tags         receptions
// @Security     Bearer
// @Produce      json
// @Param        id    path  int  true  "ID"
// @Success      200  {object}  dto.ReceptionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/receptions/{id} [get]
func (h *ReceptionHandler) GetByID(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badRequest(c, "id invalide")
	}
	out, err := h.uc.Get(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Créer une réception
// @Tags         receptions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReceptionRequest  true  "Réception"
// @Success      201   {object}  dto.ReceptionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/receptions [post]
func (h *ReceptionHandler) Create(c *fiber.Ctx) error {
	var in dto.ReceptionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corps de requête invalide")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Modifier une réception
// @Tags         receptions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID"
// @Param        body  body  dto.ReceptionRequest  true  "Champs modifiés uniquement"
// @Success      200   {object}  dto.ReceptionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/receptions/{id} [put]
func (h *ReceptionHandler) Update(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badRequest(c, "id invalide")
	}
	var in dto.ReceptionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corps de requête invalide")
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Supprimer une réception
// @Tags         receptions
// @Security     Bearer
// @Produce      json
// @Param        id    path  int  true  "ID"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/receptions/{id} [delete]
func (h *ReceptionHandler) Delete(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badRequest(c, "id invalide")
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Transitions godoc
// @Summary      Transitions permises
// @Description  Toujours lu au backend: sert à afficher ou masquer les actions de livraison.
// @Tags         receptions
// @Security     Bearer
// @Produce      json
// @Param        id    path  int  true  "ID"
// @Success      200  {object}  dto.TransitionsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/receptions/{id}/transitions [get]
func (h *ReceptionHandler) Transitions(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badRequest(c, "id invalide")
	}
	out, err := h.delivery.Transitions(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Livrer godoc
// @Summary      Marquer comme livrée
// @Tags         receptions
// @Security     Bearer
// @Produce      json
// @Param        id    path  int  true  "ID"
// @Success      200  {object}  dto.ReceptionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/receptions/{id}/livrer [post]
func (h *ReceptionHandler) Livrer(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badRequest(c, "id invalide")
	}
	r, err := h.delivery.MarquerCommeLivre(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	if fresh, ok := h.store.Snapshot().Reception(id); ok {
		r = &fresh
	}
	return c.JSON(dto.NewReceptionResponse(*r))
}

// Refresh godoc
// @Summary      Recharger le cache
// @Description  Invalide le cache et recharge les quatre listes.
// @Tags         receptions
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RefreshResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/receptions/refresh [post]
func (h *ReceptionHandler) Refresh(c *fiber.Ctx) error {
	if err := h.store.Invalidate(c.UserContext()); err != nil {
		return writeError(c, err)
	}
	st := h.store.Snapshot()
	return c.JSON(dto.RefreshResponse{
		Receptions:      len(st.Receptions),
		Facturations:    len(st.Facturations),
		Impayes:         len(st.Impayes),
		FicheLivraisons: len(st.FicheLivraisons),
		FetchedAt:       st.FetchedAt,
	})
}

// listQuery lit les filtres communs des vues liste.
func listQuery(c *fiber.Ctx) dto.ListQuery {
	return dto.ListQuery{
		PageRequest: dto.PageRequest{
			Limit:  c.QueryInt("limit", dto.DefaultLimit),
			Offset: c.QueryInt("offset", 0),
		},
		Q:      c.Query("q"),
		Type:   c.Query("type"),
		Statut: c.Query("statut"),
		From:   c.Query("from"),
		To:     c.Query("to"),
	}
}
