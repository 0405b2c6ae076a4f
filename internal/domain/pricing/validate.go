package pricing

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Parqueadero-api/internal/domain"
)

// Campos reportados en ValidationError.
const (
	FieldName  = "name"
	FieldPrice = "price"
)

// ValidationError es el único tipo de falla del validador. Compara como domain.ErrInvalidInput.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return domain.ErrInvalidInput
}

// Submission es el registro listo para persistir: {id?, name, price}.
type Submission struct {
	ID    string // vacío en creación
	Name  string
	Price float64

	digits string // prefijo numérico tal como se parseó
}

// Amount devuelve el precio como decimal para persistencia, construido desde el texto
// canónico para no perder dígitos en el paso por float64.
func (s Submission) Amount() decimal.Decimal {
	if s.digits != "" {
		if d, err := decimal.NewFromString(strings.TrimSuffix(s.digits, ".")); err == nil {
			return d
		}
	}
	return decimal.NewFromFloat(s.Price)
}

// leadingNumber toma el prefijo numérico más largo, como hace un parseo decimal tolerante:
// "10.00.5" → "10.00".
var leadingNumber = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)`)

// ValidateForSubmit recorta el nombre y parsea el precio canónico.
// Falla si el nombre queda vacío, si el precio está vacío, si no es un número,
// o si no es finito y no negativo.
func ValidateForSubmit(name string, price Canonical) (Submission, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Submission{}, &ValidationError{Field: FieldName, Reason: "el nombre es obligatorio"}
	}
	if !price.IsSet() {
		return Submission{}, &ValidationError{Field: FieldPrice, Reason: "el precio es obligatorio"}
	}
	f, digits, ok := parseLeadingFloat(string(price))
	if !ok {
		return Submission{}, &ValidationError{Field: FieldPrice, Reason: "el precio no es un número"}
	}
	if math.IsInf(f, 0) {
		return Submission{}, &ValidationError{Field: FieldPrice, Reason: "el precio debe ser finito"}
	}
	if f < 0 {
		return Submission{}, &ValidationError{Field: FieldPrice, Reason: "el precio no puede ser negativo"}
	}
	return Submission{Name: trimmed, Price: f, digits: digits}, nil
}

func parseLeadingFloat(s string) (float64, string, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	m := leadingNumber.FindString(s)
	if m == "" {
		return math.NaN(), "", false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		// ErrRange: ParseFloat ya devuelve ±Inf o 0.
		if errors.Is(err, strconv.ErrRange) {
			return f, m, true
		}
		return math.NaN(), "", false
	}
	return f, m, true
}
