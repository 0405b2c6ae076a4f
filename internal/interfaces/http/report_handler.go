package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Parqueadero-api/internal/application/dto"
	"github.com/jhoicas/Parqueadero-api/internal/application/usecase"
	"github.com/jhoicas/Parqueadero-api/internal/domain/entity"
)

// ReportHandler reportes de turno.
type ReportHandler struct {
	uc *usecase.ShiftReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ShiftReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Shift godoc
// @Summary      Reporte de turno
// @Description  Un operador solo ve su propio turno; admin puede filtrar por operator_id o ver todos.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Produce      application/pdf
// @Param        from         query  string  true   "Inicio (RFC3339)"
// @Param        to           query  string  true   "Fin (RFC3339)"
// @Param        operator_id  query  string  false  "Operador"
// @Param        format       query  string  false  "json | pdf"
// @Success      200  {object}  dto.ShiftReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/shift [get]
func (h *ReportHandler) Shift(c *fiber.Ctx) error {
	from, errFrom := time.Parse(time.RFC3339, c.Query("from"))
	to, errTo := time.Parse(time.RFC3339, c.Query("to"))
	if errFrom != nil || errTo != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from y to deben ser RFC3339"})
	}
	in := dto.ShiftReportRequest{From: from, To: to, OperatorID: c.Query("operator_id")}
	if GetRole(c) != entity.RoleAdmin {
		in.OperatorID = GetOperatorID(c)
	}

	if c.Query("format") == "pdf" {
		out, err := h.uc.PDF(c.UserContext(), GetLotID(c), in)
		if err != nil {
			return respondError(c, err)
		}
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="cierre-turno.pdf"`)
		c.Type("pdf")
		return c.Send(out)
	}

	out, err := h.uc.Report(c.UserContext(), GetLotID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
