package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viaconsulting/dashboard-huiles/internal/application/store"
	"github.com/viaconsulting/dashboard-huiles/internal/domain/entity"
	"github.com/viaconsulting/dashboard-huiles/internal/infrastructure/memapi"
)

func TestGetSummary(t *testing.T) {
	s := store.New(memapi.Demo(), zerolog.Nop())
	require.NoError(t, s.Fetch(context.Background()))

	uc := NewDashboardUseCase(s)
	uc.now = func() time.Time { return time.Date(2026, 3, 20, 12, 0, 0, 0, time.Local) }
	got := uc.GetSummary()

	assert.Equal(t, "Mars 2026", got.DateLabel)
	assert.Equal(t, 1, got.ReceptionsByStatus[entity.StatusPaye])
	assert.Equal(t, 2, got.PendingQualityTest)
	assert.True(t, decimal.NewFromInt(250).Equal(got.MonthlyNetWeight[entity.MaterialHuile]))
	assert.True(t, decimal.NewFromInt(500).Equal(got.MonthlyNetWeight[entity.MaterialFeuilles]))
	assert.Equal(t, 1, got.UnpaidReceptions)
	assert.True(t, decimal.NewFromInt(3000000).Equal(got.Outstanding))
	assert.Equal(t, 1, got.MonthlyDeliveries)
	assert.False(t, got.Stale)

	// 150 000 + 9 000 000 + 75 000
	assert.True(t, decimal.NewFromInt(9225000).Equal(got.MonthlyBilled))
}

func TestGetSummary_AutreMois(t *testing.T) {
	s := store.New(memapi.Demo(), zerolog.Nop())
	require.NoError(t, s.Fetch(context.Background()))

	uc := NewDashboardUseCase(s)
	uc.now = func() time.Time { return time.Date(2026, 5, 1, 0, 0, 0, 0, time.Local) }
	got := uc.GetSummary()
	assert.True(t, got.MonthlyBilled.IsZero())
	assert.Equal(t, 0, got.MonthlyDeliveries)
	assert.True(t, decimal.NewFromInt(3000000).Equal(got.Outstanding))
}
