package billing

import (
	"context"
	"fmt"

	"github.com/viaconsulting/dashboard-huiles/internal/application/store"
	"github.com/viaconsulting/dashboard-huiles/internal/domain"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/finance"
)

// FacturationDocument données du reçu de facturation.
type FacturationDocument struct {
	Facturation entity.Facturation
	Reception   entity.Reception
	Impayes     []entity.Impaye
	Balance     finance.Balance // solde cumulé, impayés compris
}

// FicheLivraisonDocument données du bon de livraison.
type FicheLivraisonDocument struct {
	Fiche     entity.FicheLivraison
	Reception entity.Reception
}

// Snapshotter fournit l'état courant du cache.
type Snapshotter interface {
	Snapshot() store.State
}

// PDFUseCase génère les documents PDF à partir du cache.
type PDFUseCase struct {
	store     Snapshotter
	generator DocumentPDFGenerator
}

// NewPDFUseCase construit le cas d'usage.
func NewPDFUseCase(store Snapshotter, generator DocumentPDFGenerator) *PDFUseCase {
	return &PDFUseCase{store: store, generator: generator}
}

// DownloadFacturationPDF reçu de la facturation id.
//
// Renvoie domain.ErrNotFound si la facturation ou sa réception est absente du cache.
func (uc *PDFUseCase) DownloadFacturationPDF(ctx context.Context, id int64) (pdfBytes []byte, filename string, err error) {
	st := uc.store.Snapshot()
	f, ok := st.Facturation(id)
	if !ok {
		return nil, "", fmt.Errorf("pdf: facturation %d: %w", id, domain.ErrNotFound)
	}
	r, ok := st.Reception(f.ReceptionID)
	if !ok {
		return nil, "", fmt.Errorf("pdf: réception %d: %w", f.ReceptionID, domain.ErrNotFound)
	}

	impayes := st.ImpayesByReception(f.ReceptionID)
	paid := f.MontantPaye
	for _, i := range impayes {
		paid = paid.Add(i.MontantPaye)
	}
	doc := FacturationDocument{
		Facturation: f,
		Reception:   r,
		Impayes:     impayes,
		Balance:     finance.ComputeBalance(f.PrixUnitaire, f.Quantite, paid, f.PaiementAvance),
	}

	pdfBytes, err = uc.generator.GenerateFacturationPDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: génération échouée: %w", err)
	}
	return pdfBytes, fmt.Sprintf("facture_%s.pdf", fileSafe(f.NumeroFacture, id)), nil
}

// DownloadFicheLivraisonPDF bon de livraison de la fiche id.
func (uc *PDFUseCase) DownloadFicheLivraisonPDF(ctx context.Context, id int64) (pdfBytes []byte, filename string, err error) {
	st := uc.store.Snapshot()
	f, ok := st.FicheLivraison(id)
	if !ok {
		return nil, "", fmt.Errorf("pdf: fiche de livraison %d: %w", id, domain.ErrNotFound)
	}
	r, _ := st.Reception(f.ReceptionID)

	pdfBytes, err = uc.generator.GenerateFicheLivraisonPDF(ctx, FicheLivraisonDocument{Fiche: f, Reception: r})
	if err != nil {
		return nil, "", fmt.Errorf("pdf: génération échouée: %w", err)
	}
	return pdfBytes, fmt.Sprintf("bon_livraison_%d.pdf", id), nil
}

// fileSafe réduit s aux caractères sûrs pour un nom de fichier; vide => id.
func fileSafe(s string, id int64) string {
	out := make([]rune, 0, len(s))
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
			out = append(out, c)
		case c == ' ' || c == '/':
			out = append(out, '_')
		}
	}
	if len(out) == 0 {
		return fmt.Sprint(id)
	}
	return string(out)
}
