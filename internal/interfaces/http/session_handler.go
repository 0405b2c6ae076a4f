package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Parqueadero-api/internal/application/dto"
	"github.com/jhoicas/Parqueadero-api/internal/application/usecase"
)

// SessionHandler entradas y salidas de vehículos (protegido).
type SessionHandler struct {
	uc       *usecase.SessionUseCase
	deletion *usecase.DeletionUseCase
}

// NewSessionHandler construye el handler.
func NewSessionHandler(uc *usecase.SessionUseCase, deletion *usecase.DeletionUseCase) *SessionHandler {
	return &SessionHandler{uc: uc, deletion: deletion}
}

// Open godoc
// @Summary      Registrar entrada
// @Tags         sessions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenSessionRequest  true  "Placa y categoría"
// @Success      201   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sessions [post]
func (h *SessionHandler) Open(c *fiber.Ctx) error {
	var in dto.OpenSessionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Plate == "" || in.CategoryID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "plate y category_id son requeridos"})
	}
	out, err := h.uc.Open(c.UserContext(), GetLotID(c), GetOperatorID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Close godoc
// @Summary      Registrar salida
// @Tags         sessions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la sesión"
// @Param        body  body  dto.CloseSessionRequest  false  "Hora de salida (opcional)"
// @Success      200   {object}  dto.SessionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sessions/{id}/close [post]
func (h *SessionHandler) Close(c *fiber.Ctx) error {
	var in dto.CloseSessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
	}
	out, err := h.uc.Close(c.UserContext(), GetLotID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Detail godoc
// @Summary      Detalle de sesión
// @Description  Vista lista para mostrar: duración, horas y monto formateados.
// @Tags         sessions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  report.SessionDetail
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sessions/{id} [get]
func (h *SessionHandler) Detail(c *fiber.Ctx) error {
	out, err := h.uc.Detail(c.UserContext(), GetLotID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "sesión no encontrada")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar sesiones
// @Tags         sessions
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "open | closed"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.SessionListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/sessions [get]
func (h *SessionHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(c.UserContext(), GetLotID(c), c.Query("status"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RequestDeletion godoc
// @Summary      Solicitar borrado de sesión
// @Tags         sessions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      202  {object}  dto.DeletionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sessions/{id}/deletion [post]
func (h *SessionHandler) RequestDeletion(c *fiber.Ctx) error {
	out, err := h.deletion.RequestSession(c.UserContext(), GetLotID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(out)
}
