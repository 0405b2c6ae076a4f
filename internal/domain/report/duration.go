// Package report arma las vistas de lectura del panel: detalle de sesión y reporte de turno.
// Solo formatea y agrega datos ya resueltos; no hace I/O.
package report

import (
	"fmt"
	"time"
)

// FormatDuration presenta una estadía: "45m", "2h 05m", "1d 03h 10m".
// Se trunca al minuto; valores negativos se muestran como "0m".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Minute)
	days, rem := total/(24*60), total%(24*60)
	hours, minutes := rem/60, rem%60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %02dh %02dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %02dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
