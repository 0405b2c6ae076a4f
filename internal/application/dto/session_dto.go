package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpenSessionRequest registra la entrada de un vehículo.
type OpenSessionRequest struct {
	Plate      string     `json:"plate" validate:"required,max=12"`
	CategoryID string     `json:"category_id" validate:"required,uuid"`
	EntryAt    *time.Time `json:"entry_at"` // opcional; por defecto ahora
}

// CloseSessionRequest registra la salida.
type CloseSessionRequest struct {
	ExitAt *time.Time `json:"exit_at"` // opcional; por defecto ahora
}

// SessionResponse salida cruda de una sesión.
type SessionResponse struct {
	ID           string           `json:"id"`
	LotID        string           `json:"lot_id"`
	Plate        string           `json:"plate"`
	CategoryID   string           `json:"category_id"`
	CategoryName string           `json:"category_name"`
	HourlyPrice  decimal.Decimal  `json:"hourly_price"`
	OperatorID   string           `json:"operator_id"`
	EntryAt      time.Time        `json:"entry_at"`
	ExitAt       *time.Time       `json:"exit_at,omitempty"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	Status       string           `json:"status"`
}

// SessionListResponse lista paginada de sesiones.
type SessionListResponse struct {
	Items []SessionResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
