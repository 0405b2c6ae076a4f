package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una sesión de parqueo.
const (
	SessionOpen   = "open"
	SessionClosed = "closed"
)

// Session representa la estadía de un vehículo: entrada, salida y monto cobrado.
// CategoryName y HourlyPrice se copian al abrir para que el cobro no cambie si la categoría se edita.
type Session struct {
	ID           string
	LotID        string
	Plate        string
	CategoryID   string
	CategoryName string
	HourlyPrice  decimal.Decimal
	OperatorID   string
	EntryAt      time.Time
	ExitAt       *time.Time       // nil mientras está abierta
	Amount       *decimal.Decimal // nil mientras está abierta
	Status       string           // open, closed
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsOpen indica si el vehículo sigue dentro.
func (s *Session) IsOpen() bool {
	return s.Status == SessionOpen
}
