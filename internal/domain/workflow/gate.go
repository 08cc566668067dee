// Package workflow lit les transitions déclarées par le backend.
// Aucune table de transitions n'est codée ici: le client se contente d'afficher
// {statut courant, actions permises} et de bloquer ce qui n'y figure pas.
package workflow

import (
	"fmt"
	"strings"

	"github.com/viaconsulting/dashboard-huiles/internal/domain"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
)

// Gate statut courant et transitions permises d'une réception.
type Gate struct {
	ReceptionID int64
	Current     string
	Available   []string
}

// NewGate construit la garde depuis la réponse /receptions/{id}/transitions.
func NewGate(t *entity.ReceptionTransitions) Gate {
	if t == nil {
		return Gate{}
	}
	avail := make([]string, 0, len(t.AvailableTransitions))
	for _, a := range t.AvailableTransitions {
		if a = strings.TrimSpace(a); a != "" {
			avail = append(avail, a)
		}
	}
	return Gate{ReceptionID: t.ReceptionID, Current: t.CurrentStatus, Available: avail}
}

// Allows indique si la transition name est déclarée (insensible à la casse).
func (g Gate) Allows(name string) bool {
	for _, a := range g.Available {
		if strings.EqualFold(a, name) {
			return true
		}
	}
	return false
}

// Require renvoie ErrTransitionNotAllowed si name n'est pas permise.
func (g Gate) Require(name string) error {
	if g.Allows(name) {
		return nil
	}
	return fmt.Errorf("%w: %q depuis %q (permises: %s)",
		domain.ErrTransitionNotAllowed, name, g.Current, strings.Join(g.Available, ", "))
}

// TransitionLivraison nom de la transition qui autorise bon de livraison et passage à Livré.
const TransitionLivraison = entity.StatusLivre
