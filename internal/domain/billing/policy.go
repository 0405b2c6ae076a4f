// Package billing calcula el cobro de una sesión de parqueo a partir de la tarifa por hora.
package billing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Policy reglas de cobro: minutos de gracia sin costo y mínimo facturable.
type Policy struct {
	GraceMinutes int
	MinMinutes   int
}

// BillableMinutes minutos cobrables de una estadía. Fracciones de minuto cuentan como minuto.
// Si la estadía no supera la gracia el resultado es 0.
func (p Policy) BillableMinutes(entry, exit time.Time) (int, error) {
	if exit.Before(entry) {
		return 0, fmt.Errorf("billing: salida %s anterior a entrada %s", exit.Format(time.RFC3339), entry.Format(time.RFC3339))
	}
	stay := exit.Sub(entry)
	minutes := int(stay / time.Minute)
	if stay%time.Minute != 0 {
		minutes++
	}
	if minutes <= p.GraceMinutes {
		return 0, nil
	}
	billable := minutes - p.GraceMinutes
	if billable < p.MinMinutes {
		billable = p.MinMinutes
	}
	return billable, nil
}

// Charge monto = tarifa por hora × horas cobrables (redondeadas hacia arriba).
func (p Policy) Charge(hourly decimal.Decimal, entry, exit time.Time) (decimal.Decimal, error) {
	minutes, err := p.BillableMinutes(entry, exit)
	if err != nil {
		return decimal.Zero, err
	}
	hours := (minutes + 59) / 60
	return hourly.Mul(decimal.NewFromInt(int64(hours))), nil
}
