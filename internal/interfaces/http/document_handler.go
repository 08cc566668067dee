package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/viaconsulting/dashboard-huiles/internal/application/billing"
)

// DocumentHandler téléchargement des documents PDF.
type DocumentHandler struct {
	uc *billing.PDFUseCase
}

// NewDocumentHandler construit le handler.
func NewDocumentHandler(uc *billing.PDFUseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// FacturationPDF godoc
// @Summary      Reçu de facturation (PDF)
// @Tags         documents
// @Security     Bearer
// @Produce      application/pdf
// @Param        id    path  int  true  "ID"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/facturations/{id}/pdf [get]
func (h *DocumentHandler) FacturationPDF(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badRequest(c, "id invalide")
	}
	pdfBytes, filename, err := h.uc.DownloadFacturationPDF(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, pdfBytes, filename)
}

// FicheLivraisonPDF godoc
// @Summary      Bon de livraison (PDF)
// @Tags         documents
// @Security     Bearer
// @Produce      application/pdf
// @Param        id    path  int  true  "ID"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/fiche-livraisons/{id}/pdf [get]
func (h *DocumentHandler) FicheLivraisonPDF(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badRequest(c, "id invalide")
	}
	pdfBytes, filename, err := h.uc.DownloadFicheLivraisonPDF(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, pdfBytes, filename)
}

func sendPDF(c *fiber.Ctx, pdfBytes []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}
