package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreateCategoryRequest entrada para crear una categoría de tarifa.
// Price acepta número, texto con formato de moneda ("$10.00", "1,234") o null.
type CreateCategoryRequest struct {
	Name  string          `json:"name" validate:"required,max=100"`
	Price json.RawMessage `json:"price" swaggertype:"string"`
}

// UpdateCategoryRequest entrada para editar; los campos ausentes conservan el valor actual.
type UpdateCategoryRequest struct {
	Name  *string         `json:"name" validate:"omitempty,max=100"`
	Price json.RawMessage `json:"price" swaggertype:"string"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID        string          `json:"id"`
	LotID     string          `json:"lot_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CategoryListResponse lista de categorías del parqueadero.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
}
