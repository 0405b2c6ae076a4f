package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Parqueadero-api/internal/application/dto"
	"github.com/jhoicas/Parqueadero-api/internal/application/usecase"
	"github.com/jhoicas/Parqueadero-api/internal/domain/confirm"
)

// DeletionHandler confirma o descarta borrados pendientes.
type DeletionHandler struct {
	uc *usecase.DeletionUseCase
}

// NewDeletionHandler construye el handler.
func NewDeletionHandler(uc *usecase.DeletionUseCase) *DeletionHandler {
	return &DeletionHandler{uc: uc}
}

// Confirm godoc
// @Summary      Confirmar borrado
// @Description  Si el borrado falla (ej. categoría en uso) la confirmación sigue abierta.
// @Tags         deletions
// @Security     Bearer
// @Param        cid  path  string  true  "ID de la confirmación"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/deletions/{cid}/confirm [post]
func (h *DeletionHandler) Confirm(c *fiber.Ctx) error {
	if err := h.uc.Confirm(c.UserContext(), GetLotID(c), c.Params("cid")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Dismiss godoc
// @Summary      Descartar borrado
// @Tags         deletions
// @Security     Bearer
// @Accept       json
// @Param        cid   path  string  true  "ID de la confirmación"
// @Param        body  body  dto.DismissDeletionRequest  true  "trigger: close | overlay | cancel"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/deletions/{cid}/dismiss [post]
func (h *DeletionHandler) Dismiss(c *fiber.Ctx) error {
	var in dto.DismissDeletionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	trigger, err := confirm.ParseDismissal(in.Trigger)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "trigger debe ser close, overlay o cancel", Field: "trigger"})
	}
	if err := h.uc.Dismiss(c.UserContext(), GetLotID(c), c.Params("cid"), trigger); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Click godoc
// @Summary      Clic sobre la confirmación
// @Description  overlay descarta el borrado; surface no cambia nada.
// @Tags         deletions
// @Security     Bearer
// @Accept       json
// @Param        cid   path  string  true  "ID de la confirmación"
// @Param        body  body  dto.ClickDeletionRequest  true  "region: surface | overlay"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/deletions/{cid}/click [post]
func (h *DeletionHandler) Click(c *fiber.Ctx) error {
	var in dto.ClickDeletionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	region, err := confirm.ParseRegion(in.Region)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "region debe ser surface u overlay", Field: "region"})
	}
	if err := h.uc.Click(c.UserContext(), GetLotID(c), c.Params("cid"), region); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
