package views

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/viaconsulting/dashboard-huiles/internal/application/dto"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/finance"
)

// UseCase vues liste.
type UseCase struct {
	store Snapshotter
}

// NewUseCase construit le cas d'usage.
func NewUseCase(store Snapshotter) *UseCase {
	return &UseCase{store: store}
}

// Receptions liste des réceptions.
func (uc *UseCase) Receptions(in dto.ListQuery) (dto.ListResponse[dto.ReceptionResponse], error) {
	return uc.receptions(in, nil)
}

// AgreageProvisoire réceptions en cours de test qualité.
func (uc *UseCase) AgreageProvisoire(in dto.ListQuery) (dto.ListResponse[dto.ReceptionResponse], error) {
	return uc.receptions(in, entity.AgreageProvisoire)
}

// AgreageDefinitif réceptions dont l'agréage est tranché.
func (uc *UseCase) AgreageDefinitif(in dto.ListQuery) (dto.ListResponse[dto.ReceptionResponse], error) {
	return uc.receptions(in, entity.AgreageDefinitif)
}

func (uc *UseCase) receptions(in dto.ListQuery, statuses []string) (dto.ListResponse[dto.ReceptionResponse], error) {
	f, err := parseQuery(in)
	if err != nil {
		return dto.ListResponse[dto.ReceptionResponse]{}, err
	}
	var rows []dated[dto.ReceptionResponse]
	for _, r := range uc.store.Snapshot().Receptions {
		if statuses != nil && !slices.Contains(statuses, r.Statut) {
			continue
		}
		if !f.matchType(r.Type) || !f.matchStatut(r.Statut) || !f.matchDate(r.DateHeure.Time) {
			continue
		}
		if !f.matchText(r.Designation, r.NomFournisseur, r.Provenance, r.NifFournisseur, entity.MaterialLabel(r.Type)) {
			continue
		}
		rows = append(rows, dated[dto.ReceptionResponse]{item: dto.NewReceptionResponse(r), at: r.DateHeure.Time, id: r.ID})
	}
	return page(rows, in.PageRequest), nil
}

// Exports facturations avec leur réception.
func (uc *UseCase) Exports(in dto.ListQuery) (dto.ListResponse[dto.ExportRow], error) {
	f, err := parseQuery(in)
	if err != nil {
		return dto.ListResponse[dto.ExportRow]{}, err
	}
	st := uc.store.Snapshot()
	var rows []dated[dto.ExportRow]
	for _, fac := range st.Facturations {
		row := dto.ExportRow{Facturation: fac, Calculs: finance.FacturationBalance(&fac)}
		var typ, fournisseur, provenance string
		if r, ok := st.Reception(fac.ReceptionID); ok {
			resp := dto.NewReceptionResponse(r)
			row.Reception = &resp
			typ, fournisseur, provenance = r.Type, r.NomFournisseur, r.Provenance
		}
		at := parseDay(fac.DatePaiement)
		if !f.matchType(typ) || !f.matchStatut(fac.Statut) || !f.matchDate(at) {
			continue
		}
		if !f.matchText(fac.NumeroFacture, fac.Designation, fournisseur, provenance, fac.Encaissement) {
			continue
		}
		rows = append(rows, dated[dto.ExportRow]{item: row, at: at, id: fac.ID})
	}
	return page(rows, in.PageRequest), nil
}

// Impayes paiements sur solde et reste à payer cumulé de chaque réception.
func (uc *UseCase) Impayes(in dto.ListQuery) (dto.ListResponse[dto.ImpayeRow], error) {
	f, err := parseQuery(in)
	if err != nil {
		return dto.ListResponse[dto.ImpayeRow]{}, err
	}
	st := uc.store.Snapshot()
	var rows []dated[dto.ImpayeRow]
	for _, i := range st.Impayes {
		r, _ := st.Reception(i.ReceptionID)
		at := parseDay(i.DatePaiement)
		if !f.matchType(r.Type) || !f.matchStatut(i.Statut) || !f.matchDate(at) {
			continue
		}
		if !f.matchText(i.NumeroFacture, i.Designation, r.NomFournisseur, r.Provenance) {
			continue
		}
		rows = append(rows, dated[dto.ImpayeRow]{
			item: dto.ImpayeRow{Impaye: i, Fournisseur: r.NomFournisseur, Balance: ReceptionBalance(st.FacturationsByReception(i.ReceptionID), st.ImpayesByReception(i.ReceptionID))},
			at:   at,
			id:   i.ID,
		})
	}
	return page(rows, in.PageRequest), nil
}

// Transport fiches de livraison.
func (uc *UseCase) Transport(in dto.ListQuery) (dto.ListResponse[dto.TransportRow], error) {
	f, err := parseQuery(in)
	if err != nil {
		return dto.ListResponse[dto.TransportRow]{}, err
	}
	st := uc.store.Snapshot()
	var rows []dated[dto.TransportRow]
	for _, fl := range st.FicheLivraisons {
		r, _ := st.Reception(fl.ReceptionID)
		at := parseDay(fl.DateLivraison)
		if !f.matchType(r.Type) || !f.matchStatut(r.Statut) || !f.matchDate(at) {
			continue
		}
		if !f.matchText(fl.LivreurNom, fl.LivreurPrenom, fl.LivreurVehicule, fl.DestinataireNom, fl.Destination, fl.LieuDepart, r.NomFournisseur) {
			continue
		}
		rows = append(rows, dated[dto.TransportRow]{
			item: dto.TransportRow{FicheLivraison: fl, ReceptionStatut: r.Statut, Fournisseur: r.NomFournisseur},
			at:   at,
			id:   fl.ID,
		})
	}
	return page(rows, in.PageRequest), nil
}

// Stock poids net reçu, livré et disponible par type de matière. Le type filtre; les autres
// critères ne s'appliquent pas.
func (uc *UseCase) Stock(in dto.ListQuery) ([]dto.StockRow, error) {
	f, err := parseQuery(in)
	if err != nil {
		return nil, err
	}
	st := uc.store.Snapshot()
	byType := map[string]*dto.StockRow{}
	out := make([]dto.StockRow, 0, 3)
	for _, t := range []string{entity.MaterialFeuilles, entity.MaterialClous, entity.MaterialHuile} {
		if !f.matchType(t) {
			continue
		}
		out = append(out, dto.StockRow{
			Type: t, Label: entity.MaterialLabel(t), Unite: defaultUnit(t),
			Recu: decimal.Zero, Livre: decimal.Zero, Disponible: decimal.Zero,
		})
	}
	for i := range out {
		byType[out[i].Type] = &out[i]
	}
	for _, r := range st.Receptions {
		row, ok := byType[r.Type]
		if !ok || r.Statut == entity.StatusRefuse {
			continue
		}
		row.Receptions++
		row.Recu = row.Recu.Add(r.PoidsNet)
	}
	for _, fl := range st.FicheLivraisons {
		r, ok := st.Reception(fl.ReceptionID)
		if !ok {
			continue
		}
		if row, ok := byType[r.Type]; ok {
			row.Livre = row.Livre.Add(fl.PoidsNet)
		}
	}
	for i := range out {
		out[i].Disponible = out[i].Recu.Sub(out[i].Livre)
	}
	return out, nil
}

// ReceptionBalance solde cumulé d'une réception: facturation la plus récente plus ses impayés.
// Sans facturation, le solde est nul.
func ReceptionBalance(facturations []entity.Facturation, impayes []entity.Impaye) finance.Balance {
	if len(facturations) == 0 {
		return finance.ComputeBalance(decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero)
	}
	f := facturations[len(facturations)-1]
	paid := f.MontantPaye
	for _, i := range impayes {
		paid = paid.Add(i.MontantPaye)
	}
	return finance.ComputeBalance(f.PrixUnitaire, f.Quantite, paid, f.PaiementAvance)
}

func defaultUnit(t string) string {
	if t == entity.MaterialHuile {
		return "L"
	}
	return "kg"
}
