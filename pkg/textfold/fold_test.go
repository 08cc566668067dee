package textfold_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viaconsulting/dashboard-huiles/pkg/textfold"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "agreage definitif", textfold.Fold("  Agréage   Définitif "))
	assert.Equal(t, "paye", textfold.Fold("Payé"))
	assert.Equal(t, "", textfold.Fold("   "))
}

func TestContains(t *testing.T) {
	assert.True(t, textfold.Contains("fenerive", "Coopérative", "Fénérive-Est"))
	assert.True(t, textfold.Contains("", "n'importe quoi"))
	assert.False(t, textfold.Contains("vohemar", "Fénérive-Est", "Mananara"))
}
