package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/viaconsulting/dashboard-huiles/internal/application/billing"
	"github.com/viaconsulting/dashboard-huiles/internal/application/dto"
)

// FacturationHandler endpoints du formulaire de facturation.
type FacturationHandler struct {
	uc *billing.FacturationUseCase
}

// NewFacturationHandler construit le handler.
func NewFacturationHandler(uc *billing.FacturationUseCase) *FacturationHandler {
	return &FacturationHandler{uc: uc}
}

// Preview godoc
// @Summary      Calculs du formulaire de facturation
// @Description  Calculs et contrôles pendant la saisie, sans appel au backend.
// @Tags         facturations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FacturationRequest  true  "Saisie en cours"
// @Success      200   {object}  dto.PreviewResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/facturations/preview [post]
func (h *FacturationHandler) Preview(c *fiber.Ctx) error {
	var in dto.FacturationRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corps de requête invalide")
	}
	return c.JSON(h.uc.Preview(in))
}

// Prefill godoc
// @Summary      Facturation existante d'une réception
// @Tags         facturations
// @Security     Bearer
// @Produce      json
// @Param        receptionId  path  int  true  "ID de la réception"
// @Success      200  {object}  dto.FacturationPrefill
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/facturations/reception/{receptionId} [get]
func (h *FacturationHandler) Prefill(c *fiber.Ctx) error {
	id, ok := idParam(c, "receptionId")
	if !ok {
		return badRequest(c, "reception_id invalide")
	}
	out, err := h.uc.Prefill(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ByStatus godoc
// @Summary      Facturations par statut
// @Tags         facturations
// @Security     Bearer
// @Produce      json
// @Param        statut  path  string  true  "Statut (ex. Payé)"
// @Success      200  {array}   entity.Facturation
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/facturations/statut/{statut} [get]
func (h *FacturationHandler) ByStatus(c *fiber.Ctx) error {
	statut, err := url.PathUnescape(c.Params("statut"))
	if err != nil {
		return badRequest(c, "statut invalide")
	}
	out, err := h.uc.ByStatus(c.UserContext(), statut)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Submit godoc
// @Summary      Créer ou mettre à jour la facturation d'une réception
// @Description  201 en création, 200 si la facturation de la réception existait déjà.
// @Tags         facturations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FacturationRequest  true  "Facturation"
// @Success      201   {object}  dto.FacturationResult
// @Success      200   {object}  dto.FacturationResult
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/facturations [post]
func (h *FacturationHandler) Submit(c *fiber.Ctx) error {
	var in dto.FacturationRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corps de requête invalide")
	}
	out, err := h.uc.Submit(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	if out.Action == billing.ActionCreated {
		return c.Status(fiber.StatusCreated).JSON(out)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modifier une facturation
// @Tags         facturations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID"
// @Param        body  body  dto.FacturationRequest  true  "Facturation"
// @Success      200   {object}  dto.FacturationResult
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/facturations/{id} [put]
func (h *FacturationHandler) Update(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badRequest(c, "id invalide")
	}
	var in dto.FacturationRequest
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
// @Summary      Supprimer une facturation
// @Tags         facturations
// @Security     Bearer
// @Produce      json
// @Param        id    path  int  true  "ID"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/facturations/{id} [delete]
func (h *FacturationHandler) Delete(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badRequest(c, "id invalide")
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ImpayeHandler endpoints du règlement des soldes.
type ImpayeHandler struct {
	uc *billing.ImpayeUseCase
}

// NewImpayeHandler construit le handler.
func NewImpayeHandler(uc *billing.ImpayeUseCase) *ImpayeHandler {
	return &ImpayeHandler{uc: uc}
}

// Prefill godoc
// @Summary      Solde d'une réception
// @Description  exists=false si rien n'est dû.
// @Tags         impayes
// @Security     Bearer
// @Produce      json
// @Param        receptionId  path  int  true  "ID de la réception"
// @Success      200  {object}  dto.ImpayePrefill
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/impayes/reception/{receptionId} [get]
func (h *ImpayeHandler) Prefill(c *fiber.Ctx) error {
	id, ok := idParam(c, "receptionId")
	if !ok {
		return badRequest(c, "reception_id invalide")
	}
	out, err := h.uc.Prefill(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Preview godoc
// @Summary      Calculs du formulaire d'impayé
// @Tags         impayes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImpayeRequest  true  "Saisie en cours"
// @Success      200   {object}  dto.PreviewResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/impayes/preview [post]
func (h *ImpayeHandler) Preview(c *fiber.Ctx) error {
	var in dto.ImpayeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corps de requête invalide")
	}
	return c.JSON(h.uc.Preview(in))
}

// Submit godoc
// @Summary      Enregistrer un paiement de solde
// @Tags         impayes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImpayeRequest  true  "Paiement"
// @Success      201   {object}  dto.ImpayeResult
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/impayes [post]
func (h *ImpayeHandler) Submit(c *fiber.Ctx) error {
	var in dto.ImpayeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corps de requête invalide")
	}
	out, err := h.uc.Submit(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Modifier un impayé
// @Tags         impayes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID"
// @Param        body  body  dto.ImpayeRequest  true  "Paiement"
// @Success      200   {object}  dto.ImpayeResult
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/impayes/{id} [put]
func (h *ImpayeHandler) Update(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badRequest(c, "id invalide")
	}
	var in dto.ImpayeRequest
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
// @Summary      Supprimer un impayé
// @Tags         impayes
// @Security     Bearer
// @Produce      json
// @Param        id    path  int  true  "ID"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/impayes/{id} [delete]
func (h *ImpayeHandler) Delete(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badRequest(c, "id invalide")
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
