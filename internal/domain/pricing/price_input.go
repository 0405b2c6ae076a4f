// Package pricing normaliza y valida los datos de una categoría de tarifa
// (nombre + precio) antes de persistirla. El mismo flujo sirve para crear y editar:
// normalizar al cargar, validar al enviar.
package pricing

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// RawPrice es el precio tal como llega del formulario o del registro existente.
// Solo lo implementan Absent, Numeric y Text.
type RawPrice interface {
	rawPrice()
}

// Absent: el campo no vino (null / ausente). Se conserva como campo vacío, no como "0".
type Absent struct{}

// Numeric: el campo vino como número.
type Numeric float64

// Text: el campo vino como texto, posiblemente con símbolo de moneda o separadores.
type Text string

func (Absent) rawPrice()  {}
func (Numeric) rawPrice() {}
func (Text) rawPrice()    {}

// FromDecimal siembra un RawPrice desde un precio ya persistido (flujo de edición).
func FromDecimal(d decimal.Decimal) RawPrice {
	return Numeric(d.InexactFloat64())
}

// ParseJSON interpreta el valor JSON de un campo "price".
// Vacío o null → Absent; número → Numeric; cadena → Text. Cualquier otro tipo es error.
func ParseJSON(data json.RawMessage) (RawPrice, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return Absent{}, nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("price: %w", err)
		}
		return Text(s), nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, fmt.Errorf("price: %w", err)
		}
		f, err := strconv.ParseFloat(n.String(), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, fmt.Errorf("price: %w", err)
		}
		// Fuera de rango queda en ±Inf y Normalize lo trata como no definido.
		return Numeric(f), nil
	default:
		return nil, fmt.Errorf("price: tipo JSON no soportado")
	}
}
