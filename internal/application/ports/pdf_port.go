package ports

import (
	"context"

	"github.com/jhoicas/Parqueadero-api/internal/application/dto"
)

// ShiftReportPDFGenerator genera la representación imprimible del reporte de turno.
type ShiftReportPDFGenerator interface {
	GenerateShiftReportPDF(ctx context.Context, report *dto.ShiftReportResponse) ([]byte, error)
}
