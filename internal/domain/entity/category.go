package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category representa una categoría de tarifa del parqueadero (ej. "Premium", "Estándar").
// Price es la tarifa por hora; nunca negativa.
type Category struct {
	ID        string
	LotID     string
	Name      string // único por parqueadero
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
