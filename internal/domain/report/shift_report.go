package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Parqueadero-api/internal/domain/entity"
)

// CategoryTotals acumulado por categoría dentro del turno.
type CategoryTotals struct {
	CategoryID string
	Name       string
	Exits      int
	Revenue    decimal.Decimal
}

// ShiftReport resumen de un turno [From, To).
type ShiftReport struct {
	LotID       string
	OperatorID  string // vacío = todos los operadores
	From        time.Time
	To          time.Time
	Entries     int // sesiones que entraron en el turno
	Exits       int // sesiones que salieron en el turno
	StillOpen   int // sesiones abiertas al cierre del turno
	Revenue     decimal.Decimal
	AverageStay time.Duration // promedio de las sesiones cerradas en el turno
	ByCategory  []CategoryTotals
}

// categoryKey agrupa por ID. Las sesiones de categorías borradas (ID vacío)
// se agrupan por el nombre copiado al abrir la sesión.
type categoryKey struct {
	id   string
	name string
}

func keyFor(s *entity.Session) categoryKey {
	if s.CategoryID == "" {
		return categoryKey{name: s.CategoryName}
	}
	return categoryKey{id: s.CategoryID}
}

// BuildShiftReport agrega las sesiones del turno. Las sesiones que no se cruzan con la
// ventana se ignoran, así el llamador puede pasar un superconjunto.
func BuildShiftReport(lotID, operatorID string, from, to time.Time, sessions []*entity.Session) ShiftReport {
	r := ShiftReport{LotID: lotID, OperatorID: operatorID, From: from, To: to, Revenue: decimal.Zero}
	byCat := map[categoryKey]*CategoryTotals{}
	var staySum time.Duration

	for _, s := range sessions {
		if !s.EntryAt.Before(to) {
			continue
		}
		if s.ExitAt != nil && s.ExitAt.Before(from) {
			continue
		}
		if !s.EntryAt.Before(from) {
			r.Entries++
		}
		exitedInShift := s.ExitAt != nil && !s.ExitAt.Before(from) && s.ExitAt.Before(to)
		if !exitedInShift {
			r.StillOpen++
			continue
		}

		r.Exits++
		staySum += s.ExitAt.Sub(s.EntryAt)
		amount := decimal.Zero
		if s.Amount != nil {
			amount = *s.Amount
		}
		r.Revenue = r.Revenue.Add(amount)

		key := keyFor(s)
		ct, ok := byCat[key]
		if !ok {
			ct = &CategoryTotals{CategoryID: s.CategoryID, Name: s.CategoryName, Revenue: decimal.Zero}
			byCat[key] = ct
		}
		ct.Exits++
		ct.Revenue = ct.Revenue.Add(amount)
	}

	if r.Exits > 0 {
		r.AverageStay = staySum / time.Duration(r.Exits)
	}
	r.ByCategory = make([]CategoryTotals, 0, len(byCat))
	for _, ct := range byCat {
		r.ByCategory = append(r.ByCategory, *ct)
	}
	sort.Slice(r.ByCategory, func(i, j int) bool {
		a, b := r.ByCategory[i], r.ByCategory[j]
		if c := a.Revenue.Cmp(b.Revenue); c != 0 {
			return c > 0
		}
		return a.Name < b.Name
	})
	return r
}
