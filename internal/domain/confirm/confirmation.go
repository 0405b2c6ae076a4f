// Package confirm modela la confirmación previa a una acción destructiva.
//
// Una Confirmation retiene una referencia de solo lectura al objetivo y dos callbacks.
// Cerrar, clic en el overlay o cancelar llaman onClose y nada más. Confirmar llama
// onConfirm(target) una vez por acción y NO llama onClose: cerrar después de confirmar
// es responsabilidad de quien abrió la confirmación.
package confirm

import (
	"context"
	"errors"
	"fmt"
)

// Trigger es la acción del usuario sobre la confirmación.
type Trigger int

const (
	TriggerClose Trigger = iota + 1
	TriggerOverlay
	TriggerCancel
	TriggerConfirm
)

func (t Trigger) String() string {
	switch t {
	case TriggerClose:
		return "close"
	case TriggerOverlay:
		return "overlay"
	case TriggerCancel:
		return "cancel"
	case TriggerConfirm:
		return "confirm"
	}
	return fmt.Sprintf("trigger(%d)", int(t))
}

// IsDismissal indica si el trigger descarta sin efecto.
func (t Trigger) IsDismissal() bool {
	return t == TriggerClose || t == TriggerOverlay || t == TriggerCancel
}

// ParseDismissal convierte "close" | "overlay" | "cancel" en su Trigger.
func ParseDismissal(s string) (Trigger, error) {
	switch s {
	case "close":
		return TriggerClose, nil
	case "overlay":
		return TriggerOverlay, nil
	case "cancel":
		return TriggerCancel, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTrigger, s)
}

// Region es la zona donde se registró un clic. Reemplaza la comparación del target
// del evento con el contenedor: la capa de presentación decide la región y la pasa.
type Region int

const (
	RegionSurface Region = iota + 1
	RegionOverlay
)

// ErrUnknownRegion región fuera del protocolo.
var ErrUnknownRegion = errors.New("confirm: región desconocida")

// ParseRegion convierte "surface" | "overlay" en su Region.
func ParseRegion(s string) (Region, error) {
	switch s {
	case "surface":
		return RegionSurface, nil
	case "overlay":
		return RegionOverlay, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRegion, s)
}

// ErrUnknownTrigger trigger fuera del protocolo.
var ErrUnknownTrigger = errors.New("confirm: trigger desconocido")

// Confirmation superficie de confirmación sobre un objetivo T.
type Confirmation[T any] struct {
	target    T
	onClose   func()
	onConfirm func(context.Context, T) error
}

// Open crea la confirmación. Callbacks nil se tratan como no-op.
func Open[T any](target T, onClose func(), onConfirm func(ctx context.Context, target T) error) *Confirmation[T] {
	if onClose == nil {
		onClose = func() {}
	}
	if onConfirm == nil {
		onConfirm = func(context.Context, T) error { return nil }
	}
	return &Confirmation[T]{target: target, onClose: onClose, onConfirm: onConfirm}
}

// Target devuelve el objetivo tal como se recibió.
func (c *Confirmation[T]) Target() T {
	return c.target
}

// Handle aplica un trigger. Solo TriggerConfirm puede devolver error (el de onConfirm).
func (c *Confirmation[T]) Handle(ctx context.Context, t Trigger) error {
	switch t {
	case TriggerClose, TriggerOverlay, TriggerCancel:
		c.onClose()
		return nil
	case TriggerConfirm:
		return c.onConfirm(ctx, c.target)
	}
	return fmt.Errorf("%w: %v", ErrUnknownTrigger, t)
}

// Click traduce un clic en una región: overlay descarta, la superficie no hace nada.
func (c *Confirmation[T]) Click(r Region) {
	if r == RegionOverlay {
		c.onClose()
	}
}
