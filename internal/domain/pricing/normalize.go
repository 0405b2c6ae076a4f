package pricing

import (
	"math"
	"strconv"
	"strings"
)

// Canonical es la forma normalizada del precio: solo dígitos y punto decimal
// (o la representación decimal de un número finito). "" significa no definido.
type Canonical string

// Unset es el estado vacío; distinto de "0".
const Unset Canonical = ""

// IsSet indica si hay algún valor.
func (c Canonical) IsSet() bool {
	return c != Unset
}

func (c Canonical) String() string {
	return string(c)
}

// Normalize lleva un RawPrice a su forma canónica. No parsea el texto a número;
// eso ocurre en ValidateForSubmit.
func Normalize(raw RawPrice) Canonical {
	switch v := raw.(type) {
	case nil, Absent:
		return Unset
	case Numeric:
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Unset
		}
		return Canonical(strconv.FormatFloat(f, 'f', -1, 64))
	case Text:
		return Canonical(stripDecoration(string(v)))
	}
	return Unset
}

// stripDecoration elimina todo lo que no sea dígito ASCII o '.'
// (símbolos de moneda, separadores de miles, espacios).
func stripDecoration(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || c == '.' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
