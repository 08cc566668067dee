package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viaconsulting/dashboard-huiles/internal/application/dto"
)

func TestAmount_Coercition(t *testing.T) {
	cases := map[string]string{
		`1500`:                        "1500",
		`"1500"`:                      "1500",
		`"12,5 kg"`:                   "12.5",
		`"150 000"`:                   "150000",
		`""`:                          "0",
		`"abc"`:                       "0",
		`null`:                        "0",
		`true`:                        "0",
		`"-3.2e2"`:                    "-320",
		`" .5"`:                       "0.5",
		`"1e15"`:                      "1000000000000000",
		`"2e-3"`:                      "0.002",
		`"1e16"`:                      "0",
		`"1e80000000"`:                "0",
		`1e2000000`:                   "0",
		`"1e99999999999999999999"`:    "0",
		`"1234567890123456789012345"`: "0",
	}
	for in, want := range cases {
		var a dto.Amount
		require.NoError(t, json.Unmarshal([]byte(in), &a), in)
		assert.Equal(t, want, a.String(), in)
	}
}

func TestAmount_Pointeur(t *testing.T) {
	var body struct {
		Densite *dto.Amount `json:"densite"`
		Humid   *dto.Amount `json:"taux_humidite"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"densite":"1.04"}`), &body))
	require.NotNil(t, body.Densite.Ptr())
	assert.Equal(t, "1.04", body.Densite.Ptr().String())
	assert.Nil(t, body.Humid.Ptr())

	out, err := json.Marshal(dto.ParseAmount("42"))
	require.NoError(t, err)
	assert.Equal(t, "42", string(out))
}
