package memapi

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
)

// Demo backend prérempli pour le mode démonstration: une réception par étape du flux.
func Demo() *Backend {
	b := New()
	day := time.Date(2026, 3, 2, 8, 30, 0, 0, time.Local)
	add := func(typ, designation, fournisseur, provenance string, brut, net int64, status string) int64 {
		r := entity.Reception{
			ID:                      b.id(),
			Type:                    typ,
			DateHeure:               entity.Timestamp{Time: day},
			Designation:             designation,
			Provenance:              provenance,
			NomFournisseur:          fournisseur,
			NifFournisseur:          "30012345678",
			ContactFournisseur:      "034 00 000 00",
			LocalisationFournisseur: provenance,
			PoidsBrut:               decimal.NewFromInt(brut),
			PoidsNet:                decimal.NewFromInt(net),
			Unite:                   "kg",
			PoidsEmballage:          decimal.NewNullDecimal(decimal.NewFromInt(brut - net)),
			Statut:                  status,
			CreatedAt:               &entity.Timestamp{Time: day},
		}
		switch typ {
		case entity.MaterialFeuilles:
			r.TauxHumidite = decimal.NewNullDecimal(decimal.RequireFromString("12.5"))
		case entity.MaterialClous:
			r.TauxHumidite = decimal.NewNullDecimal(decimal.RequireFromString("14"))
			r.TauxDessiccation = decimal.NewNullDecimal(decimal.RequireFromString("3.2"))
			r.PoidsAgreage = decimal.NewNullDecimal(decimal.NewFromInt(net - 2))
		case entity.MaterialHuile:
			r.Unite = "L"
			r.Densite = decimal.NewNullDecimal(decimal.RequireFromString("1.04"))
		}
		b.receptions = append(b.receptions, r)
		day = day.Add(26 * time.Hour)
		return r.ID
	}

	add(entity.MaterialFeuilles, "Feuilles de girofle lot A", "Coopérative Soanierana", "Soanierana-Ivongo", 520, 500, entity.StatusEnAttenteTest)
	add(entity.MaterialClous, "Clous de girofle", "Rakoto Jean", "Fénérive-Est", 210, 200, entity.StatusEnCoursTest)
	add(entity.MaterialHuile, "Huile essentielle de girofle", "Distillerie Mananara", "Mananara", 105, 100, entity.StatusValide)
	paid := add(entity.MaterialHuile, "Huile essentielle de girofle", "Distillerie Maroantsetra", "Maroantsetra", 105, 100, entity.StatusPaye)
	partial := add(entity.MaterialClous, "Clous de girofle", "Coopérative Vavatenina", "Vavatenina", 320, 300, entity.StatusPaiementIncomplet)
	delivered := add(entity.MaterialHuile, "Huile essentielle de girofle", "Distillerie Mananara", "Mananara", 52, 50, entity.StatusLivre)

	facture := func(receptionID int64, numero string, prix, qte, paye int64) {
		f := entity.Facturation{
			ID:             b.id(),
			ReceptionID:    receptionID,
			DatePaiement:   day.Format("2006-01-02"),
			NumeroFacture:  numero,
			Designation:    "Achat matière première",
			Encaissement:   "Mobile Money: 0340000000",
			PrixUnitaire:   decimal.NewFromInt(prix),
			Quantite:       decimal.NewFromInt(qte),
			PaiementAvance: decimal.Zero,
			MontantPaye:    decimal.NewFromInt(paye),
			CreatedAt:      &entity.Timestamp{Time: day},
		}
		if paye >= prix*qte {
			f.Statut = entity.StatusPaye
		} else {
			f.Statut = entity.StatusPaiementIncomplet
		}
		b.facturations = append(b.facturations, f)
	}
	facture(paid, "FAC-2026-001", 1500, 100, 150000)
	facture(partial, "FAC-2026-002", 30000, 300, 6000000)
	facture(delivered, "FAC-2026-003", 1500, 50, 75000)

	b.fiches = append(b.fiches, entity.FicheLivraison{
		ID:                  b.id(),
		ReceptionID:         delivered,
		DateLivraison:       day.Format("2006-01-02"),
		LivreurNom:          "Randria",
		LivreurPrenom:       "Paul",
		LivreurCIN:          "101 234 567 890",
		LivreurContact:      "032 00 000 00",
		LivreurVehicule:     "1234 TAB",
		DestinataireNom:     "Via Consulting",
		DestinatairePrenom:  "Dépôt",
		DestinataireContact: "020 00 000 00",
		LieuDepart:          "Mananara",
		Destination:         "Toamasina",
		TypeProduit:         entity.MaterialLabel(entity.MaterialHuile),
		PoidsNet:            decimal.NewFromInt(50),
		RistourneRegionale:  decimal.NewFromInt(2500),
		RistourneCommunale:  decimal.NewFromInt(1500),
		CreatedAt:           &entity.Timestamp{Time: day},
	})
	return b
}
