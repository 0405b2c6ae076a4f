package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Parqueadero-api/internal/application/dto"
	"github.com/jhoicas/Parqueadero-api/internal/domain"
	"github.com/jhoicas/Parqueadero-api/internal/domain/confirm"
	"github.com/jhoicas/Parqueadero-api/internal/domain/entity"
	"github.com/jhoicas/Parqueadero-api/pkg/logger"
)

// deletionTarget referencia de solo lectura a la entidad que se quiere borrar.
type deletionTarget struct {
	kind     string
	lotID    string
	id       string
	summary  string
	category *entity.Category
	session  *entity.Session
}

type pendingDeletion struct {
	conf      *confirm.Confirmation[deletionTarget]
	target    deletionTarget
	expiresAt time.Time
	busy      bool // hay un Confirm en curso
}

// DeletionUseCase confirmaciones de borrado para categorías y sesiones.
// Cada confirmación vive bajo su propio id hasta que se descarta, se confirma con éxito o expira.
type DeletionUseCase struct {
	mu      sync.Mutex
	pending map[string]*pendingDeletion

	categories *CategoryUseCase
	sessions   *SessionUseCase
	ttl        time.Duration
	log        *logger.Logger
	now        func() time.Time
}

// NewDeletionUseCase construye el caso de uso. ttl <= 0 usa 10 minutos.
func NewDeletionUseCase(categories *CategoryUseCase, sessions *SessionUseCase, ttl time.Duration, log *logger.Logger) *DeletionUseCase {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &DeletionUseCase{
		pending:    make(map[string]*pendingDeletion),
		categories: categories,
		sessions:   sessions,
		ttl:        ttl,
		log:        log.Component("deletions"),
		now:        time.Now,
	}
}

// RequestCategory abre una confirmación para borrar la categoría. domain.ErrNotFound si no existe.
func (uc *DeletionUseCase) RequestCategory(ctx context.Context, lotID, id string) (*dto.DeletionResponse, error) {
	category, err := uc.categories.find(ctx, lotID, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return uc.open(deletionTarget{
		kind:     dto.DeletionKindCategory,
		lotID:    lotID,
		id:       category.ID,
		summary:  fmt.Sprintf("Categoría %q (%s/h)", category.Name, uc.sessions.money.Format(category.Price)),
		category: category,
	}), nil
}

// RequestSession abre una confirmación para borrar la sesión. domain.ErrNotFound si no existe.
func (uc *DeletionUseCase) RequestSession(ctx context.Context, lotID, id string) (*dto.DeletionResponse, error) {
	session, err := uc.sessions.find(ctx, lotID, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrNotFound
	}
	return uc.open(deletionTarget{
		kind:    dto.DeletionKindSession,
		lotID:   lotID,
		id:      session.ID,
		summary: fmt.Sprintf("Sesión %s (%s, entrada %s)", session.Plate, session.CategoryName, session.EntryAt.In(uc.sessions.loc).Format("02/01/2006 15:04")),
		session: session,
	}), nil
}

// Confirm ejecuta el borrado. Si falla (ej. domain.ErrConflict) la confirmación sigue abierta
// para que el usuario la descarte; si tiene éxito se cierra.
func (uc *DeletionUseCase) Confirm(ctx context.Context, lotID, confirmationID string) error {
	uc.mu.Lock()
	p, err := uc.lookupLocked(lotID, confirmationID)
	if err == nil && p.busy {
		err = fmt.Errorf("%w: confirmación en curso", domain.ErrConflict)
	}
	if err != nil {
		uc.mu.Unlock()
		return err
	}
	p.busy = true
	uc.mu.Unlock()

	if err := p.conf.Handle(ctx, confirm.TriggerConfirm); err != nil {
		uc.mu.Lock()
		p.busy = false
		uc.mu.Unlock()
		return err
	}
	return nil
}

// Dismiss descarta la confirmación sin efecto sobre la entidad.
func (uc *DeletionUseCase) Dismiss(ctx context.Context, lotID, confirmationID string, trigger confirm.Trigger) error {
	if !trigger.IsDismissal() {
		return fmt.Errorf("%w: trigger %v no descarta", domain.ErrInvalidInput, trigger)
	}
	uc.mu.Lock()
	p, err := uc.lookupLocked(lotID, confirmationID)
	if err == nil && p.busy {
		err = fmt.Errorf("%w: confirmación en curso", domain.ErrConflict)
	}
	if err != nil {
		uc.mu.Unlock()
		return err
	}
	// Se reclama la entrada antes de soltar el lock: un Confirm concurrente ya no la verá.
	delete(uc.pending, confirmationID)
	uc.mu.Unlock()

	uc.log.Info().Str("confirmation_id", confirmationID).Str("trigger", trigger.String()).Msg("borrado descartado")
	if trigger == confirm.TriggerOverlay {
		p.conf.Click(confirm.RegionOverlay)
		return nil
	}
	return p.conf.Handle(ctx, trigger)
}

// Click registra un clic sobre la confirmación. Un clic en el overlay la descarta;
// uno en la superficie no cambia nada, pero la confirmación debe seguir abierta.
func (uc *DeletionUseCase) Click(ctx context.Context, lotID, confirmationID string, region confirm.Region) error {
	if region == confirm.RegionOverlay {
		return uc.Dismiss(ctx, lotID, confirmationID, confirm.TriggerOverlay)
	}
	uc.mu.Lock()
	p, err := uc.lookupLocked(lotID, confirmationID)
	uc.mu.Unlock()
	if err != nil {
		return err
	}
	p.conf.Click(region)
	return nil
}

// Pending número de confirmaciones abiertas (no expiradas).
func (uc *DeletionUseCase) Pending() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.sweepLocked()
	return len(uc.pending)
}

func (uc *DeletionUseCase) open(target deletionTarget) *dto.DeletionResponse {
	id := uuid.New().String()
	conf := confirm.Open(target,
		func() { uc.close(id) },
		func(ctx context.Context, t deletionTarget) error {
			if err := uc.delete(ctx, t); err != nil {
				return err
			}
			// La confirmación no se cierra sola: la cierra quien la abrió.
			uc.close(id)
			uc.log.Info().Str("confirmation_id", id).Str("kind", t.kind).Str("target_id", t.id).Msg("borrado confirmado")
			return nil
		},
	)

	expiresAt := uc.now().Add(uc.ttl)
	uc.mu.Lock()
	uc.sweepLocked()
	uc.pending[id] = &pendingDeletion{conf: conf, target: target, expiresAt: expiresAt}
	uc.mu.Unlock()

	return &dto.DeletionResponse{
		ConfirmationID: id,
		Kind:           target.kind,
		TargetID:       target.id,
		Summary:        target.summary,
		ExpiresAt:      expiresAt,
	}
}

func (uc *DeletionUseCase) delete(ctx context.Context, t deletionTarget) error {
	switch t.kind {
	case dto.DeletionKindCategory:
		return uc.categories.Delete(ctx, t.category)
	case dto.DeletionKindSession:
		return uc.sessions.Delete(ctx, t.session)
	}
	return fmt.Errorf("deletion: tipo desconocido %q", t.kind)
}

func (uc *DeletionUseCase) close(id string) {
	uc.mu.Lock()
	delete(uc.pending, id)
	uc.mu.Unlock()
}

// lookupLocked devuelve la confirmación si existe, no expiró y pertenece al parqueadero.
func (uc *DeletionUseCase) lookupLocked(lotID, id string) (*pendingDeletion, error) {
	p, ok := uc.pending[id]
	if !ok || p.target.lotID != lotID {
		return nil, domain.ErrNotFound
	}
	if !uc.now().Before(p.expiresAt) && !p.busy {
		delete(uc.pending, id)
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (uc *DeletionUseCase) sweepLocked() {
	now := uc.now()
	for id, p := range uc.pending {
		if !p.busy && !now.Before(p.expiresAt) {
			delete(uc.pending, id)
		}
	}
}
