package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Parqueadero-api/internal/application/dto"
	"github.com/jhoicas/Parqueadero-api/internal/application/ports"
	"github.com/jhoicas/Parqueadero-api/internal/domain"
	"github.com/jhoicas/Parqueadero-api/internal/domain/report"
	"github.com/jhoicas/Parqueadero-api/internal/domain/repository"
	"github.com/jhoicas/Parqueadero-api/pkg/money"
)

// ShiftReportUseCase arma el reporte de turno en JSON o PDF.
type ShiftReportUseCase struct {
	sessions repository.SessionRepository
	money    *money.Formatter
	pdf      ports.ShiftReportPDFGenerator
}

// NewShiftReportUseCase construye el caso de uso.
func NewShiftReportUseCase(sessions repository.SessionRepository, formatter *money.Formatter, pdf ports.ShiftReportPDFGenerator) *ShiftReportUseCase {
	return &ShiftReportUseCase{sessions: sessions, money: formatter, pdf: pdf}
}

// Report agrega las sesiones del turno.
func (uc *ShiftReportUseCase) Report(ctx context.Context, lotID string, in dto.ShiftReportRequest) (*dto.ShiftReportResponse, error) {
	if !in.To.After(in.From) {
		return nil, fmt.Errorf("%w: to debe ser posterior a from", domain.ErrInvalidInput)
	}
	sessions, err := uc.sessions.ListForShift(ctx, lotID, in.OperatorID, in.From, in.To)
	if err != nil {
		return nil, err
	}
	r := report.BuildShiftReport(lotID, in.OperatorID, in.From, in.To, sessions)

	out := &dto.ShiftReportResponse{
		LotID:       r.LotID,
		OperatorID:  r.OperatorID,
		From:        r.From,
		To:          r.To,
		Entries:     r.Entries,
		Exits:       r.Exits,
		StillOpen:   r.StillOpen,
		Revenue:     uc.money.Format(r.Revenue),
		AverageStay: report.FormatDuration(r.AverageStay),
		ByCategory:  make([]dto.CategoryTotalsResponse, 0, len(r.ByCategory)),
	}
	for _, ct := range r.ByCategory {
		out.ByCategory = append(out.ByCategory, dto.CategoryTotalsResponse{
			CategoryID: ct.CategoryID,
			Name:       ct.Name,
			Exits:      ct.Exits,
			Revenue:    uc.money.Format(ct.Revenue),
		})
	}
	return out, nil
}

// PDF genera el reporte y lo renderiza.
func (uc *ShiftReportUseCase) PDF(ctx context.Context, lotID string, in dto.ShiftReportRequest) ([]byte, error) {
	out, err := uc.Report(ctx, lotID, in)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateShiftReportPDF(ctx, out)
}
