package dto

import "time"

// Tipos de entidad que admiten confirmación de borrado.
const (
	DeletionKindCategory = "category"
	DeletionKindSession  = "session"
)

// DeletionResponse confirmación abierta: id para confirmar/descartar y resumen del objetivo.
type DeletionResponse struct {
	ConfirmationID string    `json:"confirmation_id"`
	Kind           string    `json:"kind"`
	TargetID       string    `json:"target_id"`
	Summary        string    `json:"summary"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// DismissDeletionRequest descarta la confirmación: trigger = close | overlay | cancel.
type DismissDeletionRequest struct {
	Trigger string `json:"trigger"`
}

// ClickDeletionRequest clic sobre la confirmación: region = surface | overlay.
type ClickDeletionRequest struct {
	Region string `json:"region"`
}
