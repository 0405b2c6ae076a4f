package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var entry = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

func TestCharge(t *testing.T) {
	p := Policy{GraceMinutes: 5, MinMinutes: 60}
	hourly := decimal.NewFromInt(3000)

	cases := []struct {
		name string
		stay time.Duration
		want int64
	}{
		{"dentro de la gracia", 5 * time.Minute, 0},
		{"justo después de la gracia cobra el mínimo", 6 * time.Minute, 3000},
		{"una hora exacta más gracia", 65 * time.Minute, 3000},
		{"fracción de hora", 66 * time.Minute, 6000},
		{"segundos cuentan como minuto", 65*time.Minute + time.Second, 6000},
		{"tres horas", 3*time.Hour + 2*time.Minute, 9000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := p.Charge(hourly, entry, entry.Add(tc.stay))
			require.NoError(t, err)
			assert.True(t, decimal.NewFromInt(tc.want).Equal(got), "got %s", got)
		})
	}
}

func TestCharge_SalidaAnterior(t *testing.T) {
	_, err := Policy{}.Charge(decimal.NewFromInt(1), entry, entry.Add(-time.Minute))
	assert.Error(t, err)
}

func TestBillableMinutes_SinPolitica(t *testing.T) {
	m, err := Policy{}.BillableMinutes(entry, entry.Add(90*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 90, m)
}
