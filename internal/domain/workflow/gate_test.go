package workflow_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viaconsulting/dashboard-huiles/internal/domain"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/workflow"
)

func TestGate_Allows(t *testing.T) {
	g := workflow.NewGate(&entity.ReceptionTransitions{
		ReceptionID:          3,
		CurrentStatus:        entity.StatusPaye,
		AvailableTransitions: []string{" Livré ", ""},
	})

	assert.Equal(t, []string{"Livré"}, g.Available)
	assert.True(t, g.Allows(workflow.TransitionLivraison))
	assert.True(t, g.Allows("livré"))
	assert.NoError(t, g.Require(workflow.TransitionLivraison))
}

func TestGate_Require_Refus(t *testing.T) {
	g := workflow.NewGate(&entity.ReceptionTransitions{
		CurrentStatus:        entity.StatusPaiementIncomplet,
		AvailableTransitions: []string{entity.StatusPaye},
	})

	err := g.Require(workflow.TransitionLivraison)
	assert.True(t, errors.Is(err, domain.ErrTransitionNotAllowed))
	assert.Contains(t, err.Error(), entity.StatusPaiementIncomplet)
}

func TestGate_Nil(t *testing.T) {
	assert.False(t, workflow.NewGate(nil).Allows(workflow.TransitionLivraison))
}
