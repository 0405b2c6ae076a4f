package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Parqueadero-api/internal/application/dto"
)

func TestGenerateShiftReportPDF(t *testing.T) {
	from := time.Date(2026, 5, 4, 6, 0, 0, 0, time.UTC)
	g := NewShiftReportGenerator(nil)

	cases := map[string][]dto.CategoryTotalsResponse{
		"con categorías": {
			{CategoryID: "c1", Name: "Carros", Exits: 3, Revenue: "$ 9.000"},
			{CategoryID: "c2", Name: "Motos", Exits: 1, Revenue: "$ 1.000"},
		},
		"sin salidas": nil,
	}
	for name, items := range cases {
		t.Run(name, func(t *testing.T) {
			out, err := g.GenerateShiftReportPDF(context.Background(), &dto.ShiftReportResponse{
				LotID: "lot-1", From: from, To: from.Add(8 * time.Hour),
				Entries: 4, Exits: len(items), Revenue: "$ 10.000", AverageStay: "1h 10m",
				ByCategory: items,
			})
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
		})
	}
}
