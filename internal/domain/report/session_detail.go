package report

import (
	"time"

	"github.com/jhoicas/Parqueadero-api/internal/domain/entity"
	"github.com/jhoicas/Parqueadero-api/pkg/money"
)

// Etiquetas de estado visibles para el operador.
const (
	StatusLabelOpen   = "En curso"
	StatusLabelClosed = "Finalizada"
)

const timeLayout = "02/01/2006 15:04"

// SessionDetail vista lista para mostrar de una sesión.
type SessionDetail struct {
	ID          string `json:"id"`
	Plate       string `json:"plate"`
	Category    string `json:"category"`
	HourlyPrice string `json:"hourly_price"`
	EntryAt     string `json:"entry_at"`
	ExitAt      string `json:"exit_at"`
	Duration    string `json:"duration"`
	Amount      string `json:"amount"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
}

// BuildSessionDetail formatea la sesión. Si sigue abierta la duración corre hasta now
// y salida y monto se muestran como money.Placeholder.
func BuildSessionDetail(s *entity.Session, now time.Time, f *money.Formatter, loc *time.Location) SessionDetail {
	if loc == nil {
		loc = time.UTC
	}
	d := SessionDetail{
		ID:          s.ID,
		Plate:       s.Plate,
		Category:    s.CategoryName,
		HourlyPrice: f.Format(s.HourlyPrice),
		EntryAt:     s.EntryAt.In(loc).Format(timeLayout),
		ExitAt:      money.Placeholder,
		Amount:      f.FormatPtr(s.Amount),
		Status:      s.Status,
		StatusLabel: StatusLabelOpen,
	}
	end := now
	if !s.IsOpen() && s.ExitAt != nil {
		end = *s.ExitAt
		d.ExitAt = s.ExitAt.In(loc).Format(timeLayout)
		d.StatusLabel = StatusLabelClosed
	}
	d.Duration = FormatDuration(end.Sub(s.EntryAt))
	return d
}
