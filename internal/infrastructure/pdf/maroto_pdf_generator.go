// Package pdf rendu des documents du tableau de bord avec Maroto v2.
//
// Mise en page A4 commune:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  EN-TÊTE: société + titre du document │ N° + date           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BLOCS: fournisseur / livreur / destinataire                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLEAU: désignation │ quantité │ P.U. │ montant           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAUX ou ristournes, puis signatures                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appbilling "github.com/viaconsulting/dashboard-huiles/internal/application/billing"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
)

// ── Palette ───────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 34, Green: 94, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Générateur ────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implémente billing.DocumentPDFGenerator.
type MarotoPDFGenerator struct {
	company string
}

// NewMarotoPDFGenerator construit le générateur; company figure en en-tête.
func NewMarotoPDFGenerator(company string) *MarotoPDFGenerator {
	if company == "" {
		company = "Via Consulting"
	}
	return &MarotoPDFGenerator{company: company}
}

var _ appbilling.DocumentPDFGenerator = (*MarotoPDFGenerator)(nil)

func (g *MarotoPDFGenerator) newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(g.company, true).
		Build()
	return maroto.New(cfg)
}

// GenerateFacturationPDF reçu de facturation d'une réception.
func (g *MarotoPDFGenerator) GenerateFacturationPDF(_ context.Context, doc appbilling.FacturationDocument) ([]byte, error) {
	f, r := doc.Facturation, doc.Reception
	m := g.newDocument("Facture " + f.NumeroFacture)

	m.AddRows(g.headerRow("FACTURE D'ACHAT", "N° "+nonEmpty(f.NumeroFacture, "—"), "Date: "+formatDay(f.DatePaiement)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partyRow("FOURNISSEUR", r.NomFournisseur, fmt.Sprintf("NIF: %s   |   Tél: %s   |   %s",
		nonEmpty(r.NifFournisseur, "—"),
		nonEmpty(r.ContactFournisseur, "—"),
		nonEmpty(r.LocalisationFournisseur, r.Provenance),
	)))
	m.AddRows(partyRow("RÉCEPTION", fmt.Sprintf("#%d  %s", r.ID, entity.MaterialLabel(r.Type)), fmt.Sprintf(
		"Reçue le %s   |   Poids net: %s %s   |   Statut: %s",
		formatTimestamp(r.DateHeure), r.PoidsNet.String(), r.Unite, nonEmpty(f.Statut, "—"),
	)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow("Désignation", "Quantité", "Prix unit.", "Montant"))
	m.AddRows(tableRow(
		nonEmpty(f.Designation, entity.MaterialLabel(r.Type)),
		f.Quantite.String(),
		formatMoney(f.PrixUnitaire),
		formatMoney(doc.Balance.Total),
	))
	for _, i := range doc.Impayes {
		m.AddRows(tableRow(
			"Règlement du "+formatDay(i.DatePaiement)+" ("+nonEmpty(i.Encaissement, "—")+")",
			"", "", formatMoney(i.MontantPaye),
		))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow([][2]string{
		{"Prix total:", formatMoney(doc.Balance.Total)},
		{"Avance:", formatMoney(f.PaiementAvance)},
		{"Total payé:", formatMoney(doc.Balance.Paid)},
		{"Reste à payer:", formatMoney(doc.Balance.Remaining)},
	}))
	m.AddRows(noteRow("Encaissement: " + nonEmpty(f.Encaissement, "—")))
	m.AddRows(signatureRow("Le fournisseur", "Le comptable"))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: générer facture: %w", err)
	}
	return out.GetBytes(), nil
}

// GenerateFicheLivraisonPDF bon de livraison.
func (g *MarotoPDFGenerator) GenerateFicheLivraisonPDF(_ context.Context, doc appbilling.FicheLivraisonDocument) ([]byte, error) {
	f, r := doc.Fiche, doc.Reception
	m := g.newDocument(fmt.Sprintf("Bon de livraison %d", f.ID))

	m.AddRows(g.headerRow("BON DE LIVRAISON", fmt.Sprintf("N° BL-%05d", f.ID), "Date: "+formatDay(f.DateLivraison)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partyRow("LIVREUR", strings.TrimSpace(f.LivreurNom+" "+f.LivreurPrenom), fmt.Sprintf(
		"CIN: %s   |   Tél: %s   |   Véhicule: %s",
		nonEmpty(f.LivreurCIN, "—"), nonEmpty(f.LivreurContact, "—"), nonEmpty(f.LivreurVehicule, "—"),
	)))
	m.AddRows(partyRow("DESTINATAIRE", strings.TrimSpace(f.DestinataireNom+" "+f.DestinatairePrenom), fmt.Sprintf(
		"Tél: %s   |   Départ: %s   |   Destination: %s",
		nonEmpty(f.DestinataireContact, "—"), nonEmpty(f.LieuDepart, "—"), nonEmpty(f.Destination, "—"),
	)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	unite := nonEmpty(r.Unite, "kg")
	m.AddRows(tableHeaderRow("Produit", "Poids net", "Réception", "Fournisseur"))
	m.AddRows(tableRow(
		nonEmpty(f.TypeProduit, entity.MaterialLabel(r.Type)),
		f.PoidsNet.String()+" "+unite,
		receptionRef(r),
		nonEmpty(r.NomFournisseur, "—"),
	))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow([][2]string{
		{"Ristourne régionale:", formatMoney(f.RistourneRegionale)},
		{"Ristourne communale:", formatMoney(f.RistourneCommunale)},
		{"Total ristournes:", formatMoney(f.RistourneRegionale.Add(f.RistourneCommunale))},
	}))
	m.AddRows(signatureRow("Le livreur", "Le destinataire"))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: générer bon de livraison: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

// headerRow: société (gauche), titre + numéro + date (droite).
func (g *MarotoPDFGenerator) headerRow(title, number, date string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.company, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Collecte et distillation d'huiles essentielles", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New(date, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func partyRow(label, name, details string) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(name, "—"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(details, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow(labels ...string) core.Row {
	sizes := []int{5, 2, 2, 3}
	cols := make([]core.Col, 0, len(labels))
	for i, l := range labels {
		a := align.Right
		if i == 0 {
			a = align.Left
		}
		cols = append(cols, col.New(sizes[i]).Add(text.New(l, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

func tableRow(values ...string) core.Row {
	sizes := []int{5, 2, 2, 3}
	cols := make([]core.Col, 0, len(values))
	for i, v := range values {
		a := align.Right
		if i == 0 {
			a = align.Left
		}
		cols = append(cols, col.New(sizes[i]).Add(text.New(v, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(7).Add(cols...)
}

// totalsRow: libellés et valeurs alignés à droite; la dernière ligne est mise en avant.
func totalsRow(lines [][2]string) core.Row {
	labels := make([]core.Component, 0, len(lines))
	values := make([]core.Component, 0, len(lines))
	for i, l := range lines {
		top := float64(i) * 6
		style := props.Text{Size: 9, Align: align.Right, Top: top, Right: 2}
		if i == len(lines)-1 {
			style.Style = fontstyle.Bold
			style.Color = colorPrimary
		}
		labels = append(labels, text.New(l[0], style))
		style.Right = 1
		values = append(values, text.New(l[1], style))
	}
	return row.New(float64(len(lines))*6+2).Add(
		col.New(4),
		col.New(4).Add(labels...),
		col.New(4).Add(values...),
	)
}

func noteRow(s string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(s, props.Text{Size: 8, Top: 2, Color: colorGray}),
	))
}

func signatureRow(left, right string) core.Row {
	return row.New(30).Add(
		col.New(6).Add(text.New(left, props.Text{Size: 9, Top: 8, Align: align.Center, Style: fontstyle.Bold})),
		col.New(6).Add(text.New(right, props.Text{Size: 9, Top: 8, Align: align.Center, Style: fontstyle.Bold})),
	)
}

// ── Utilitaires ──────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}

func receptionRef(r entity.Reception) string {
	if r.ID == 0 {
		return "—"
	}
	return fmt.Sprintf("#%d", r.ID)
}

func formatTimestamp(ts entity.Timestamp) string {
	if ts.IsZero() {
		return "—"
	}
	return ts.Format("02/01/2006 15:04")
}

// formatDay "2026-03-10" -> "10/03/2026"; autre format renvoyé tel quel.
func formatDay(s string) string {
	if len(s) >= 10 && s[4] == '-' && s[7] == '-' {
		return s[8:10] + "/" + s[5:7] + "/" + s[0:4]
	}
	return nonEmpty(s, "—")
}

// formatMoney montant arrondi à l'Ariary avec séparateur de milliers.
// Ex: 25000 -> "25 000 Ar", -1500 -> "-1 500 Ar".
func formatMoney(d decimal.Decimal) string {
	s := d.Round(0).String()
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	n := len(s)
	buf := make([]byte, 0, n+n/3+4)
	if neg {
		buf = append(buf, '-')
	}
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, c)
	}
	return string(buf) + " Ar"
}
