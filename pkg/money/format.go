// Package money formatea montos según idioma y moneda (CLDR vía golang.org/x/text).
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder se muestra cuando no hay monto (ej. sesión abierta).
const Placeholder = "—"

// Formatter presenta montos con el símbolo y los separadores del idioma configurado.
type Formatter struct {
	printer *message.Printer
	unit    currency.Unit
	symbol  string
	scale   int
	sep     separators
}

// separators símbolos del idioma, tomados de una muestra impresa por x/text.
// ok es false si el idioma no usa dígitos latinos; entonces se imprime vía float.
type separators struct {
	group     string
	decimal   string
	groupFour bool // "es" no agrupa montos de cuatro cifras
	ok        bool
}

func detectSeparators(p *message.Printer) separators {
	sample := p.Sprintf("%.1f", 1234567.5)
	rest, found := strings.CutPrefix(sample, "1")
	i := strings.Index(rest, "234")
	j := strings.Index(rest, "567")
	if !found || i < 0 || j < i {
		return separators{}
	}
	sep := separators{
		group:   rest[:i],
		decimal: strings.TrimSuffix(rest[j+3:], "5"),
		ok:      true,
	}
	sep.groupFour = p.Sprintf("%.0f", 1234.0) != "1234"
	return sep
}

// NewFormatter construye un Formatter para la etiqueta BCP 47 y el código ISO 4217 dados.
func NewFormatter(locale, code string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("money: idioma %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("money: moneda %q: %w", code, err)
	}
	p := message.NewPrinter(tag)
	scale, _ := currency.Cash.Rounding(unit)
	return &Formatter{
		printer: p,
		unit:    unit,
		symbol:  p.Sprint(currency.NarrowSymbol(unit)),
		scale:   scale,
		sep:     detectSeparators(p),
	}, nil
}

// Currency devuelve el código ISO de la moneda.
func (f *Formatter) Currency() string {
	return f.unit.String()
}

// Format devuelve el monto redondeado a la escala de efectivo de la moneda, ej. "$ 12.500".
func (f *Formatter) Format(amount decimal.Decimal) string {
	if !f.sep.ok {
		v, _ := amount.Round(int32(f.scale)).Float64()
		return f.symbol + " " + f.printer.Sprintf("%.*f", f.scale, v)
	}
	return f.symbol + " " + f.localize(amount.StringFixed(int32(f.scale)))
}

// localize aplica los separadores del idioma a un decimal ya redondeado ("-1234567.50").
func (f *Formatter) localize(fixed string) string {
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString(sign)
	if len(intPart) > 4 || (len(intPart) == 4 && f.sep.groupFour) {
		head := len(intPart) % 3
		if head == 0 {
			head = 3
		}
		b.WriteString(intPart[:head])
		for i := head; i < len(intPart); i += 3 {
			b.WriteString(f.sep.group)
			b.WriteString(intPart[i : i+3])
		}
	} else {
		b.WriteString(intPart)
	}
	if frac != "" {
		b.WriteString(f.sep.decimal)
		b.WriteString(frac)
	}
	return b.String()
}

// FormatPtr igual que Format pero devuelve Placeholder si amount es nil.
func (f *Formatter) FormatPtr(amount *decimal.Decimal) string {
	if amount == nil {
		return Placeholder
	}
	return f.Format(*amount)
}
