// Package analytics résumé chiffré du tableau de bord.
package analytics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/viaconsulting/dashboard-huiles/internal/application/dto"
	"github.com/viaconsulting/dashboard-huiles/internal/application/store"
	"github.com/viaconsulting/dashboard-huiles/internal/application/views"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/finance"
)

// Snapshotter fournit l'état courant du cache.
type Snapshotter interface {
	Snapshot() store.State
}

// DashboardUseCase calcule les indicateurs du mois en cours et les encours.
//
// Source: le cache du store uniquement; aucun appel au backend.
type DashboardUseCase struct {
	store Snapshotter
	now   func() time.Time
}

// NewDashboardUseCase construit le cas d'usage.
func NewDashboardUseCase(store Snapshotter) *DashboardUseCase {
	return &DashboardUseCase{store: store, now: time.Now}
}

// GetSummary construit le DashboardSummaryDTO.
func (uc *DashboardUseCase) GetSummary() *dto.DashboardSummaryDTO {
	return summarize(uc.store.Snapshot(), uc.now())
}

func summarize(st store.State, now time.Time) *dto.DashboardSummaryDTO {
	// ── Mois en cours: jour 1 à 00:00 jusqu'au 1er du mois suivant ──
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)
	inMonth := func(t time.Time) bool { return !t.IsZero() && !t.Before(monthStart) && t.Before(monthEnd) }

	out := &dto.DashboardSummaryDTO{
		ReceptionsByStatus: map[string]int{},
		MonthlyNetWeight: map[string]decimal.Decimal{
			entity.MaterialFeuilles: decimal.Zero,
			entity.MaterialClous:    decimal.Zero,
			entity.MaterialHuile:    decimal.Zero,
		},
		MonthlyBilled: decimal.Zero,
		MonthlyPaid:   decimal.Zero,
		Outstanding:   decimal.Zero,
		DateLabel:     monthLabel(now),
		Stale:         st.Error != "",
	}

	// ── Réceptions ──
	for _, r := range st.Receptions {
		out.ReceptionsByStatus[r.Statut]++
		if r.Statut == entity.StatusEnAttenteTest || r.Statut == entity.StatusEnCoursTest {
			out.PendingQualityTest++
		}
		if inMonth(r.DateHeure.Time) {
			out.MonthlyNetWeight[r.Type] = out.MonthlyNetWeight[r.Type].Add(r.PoidsNet)
		}

		// encours: solde de la facturation la plus récente, impayés compris
		facts := st.FacturationsByReception(r.ID)
		if len(facts) == 0 {
			continue
		}
		b := views.ReceptionBalance(facts, st.ImpayesByReception(r.ID))
		if !b.IsComplete {
			out.UnpaidReceptions++
			out.Outstanding = out.Outstanding.Add(b.Remaining)
		}
	}

	// ── Facturations et impayés du mois ──
	for _, f := range st.Facturations {
		if !inMonth(day(f.DatePaiement, now.Location())) {
			continue
		}
		b := finance.FacturationBalance(&f)
		out.MonthlyBilled = out.MonthlyBilled.Add(b.Total)
		out.MonthlyPaid = out.MonthlyPaid.Add(b.Paid)
	}
	for _, i := range st.Impayes {
		if inMonth(day(i.DatePaiement, now.Location())) {
			out.MonthlyPaid = out.MonthlyPaid.Add(i.MontantPaye)
		}
	}

	// ── Livraisons du mois ──
	for _, fl := range st.FicheLivraisons {
		if inMonth(day(fl.DateLivraison, now.Location())) {
			out.MonthlyDeliveries++
		}
	}
	return out
}

func day(s string, loc *time.Location) time.Time {
	if len(s) < 10 {
		return time.Time{}
	}
	t, err := time.ParseInLocation("2006-01-02", s[:10], loc)
	if err != nil {
		return time.Time{}
	}
	return t
}

// monthLabel libellé du mois, ex. "Mars 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
		"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
