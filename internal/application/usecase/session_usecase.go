package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/jhoicas/Parqueadero-api/internal/application/dto"
	"github.com/jhoicas/Parqueadero-api/internal/domain"
	"github.com/jhoicas/Parqueadero-api/internal/domain/billing"
	"github.com/jhoicas/Parqueadero-api/internal/domain/entity"
	"github.com/jhoicas/Parqueadero-api/internal/domain/report"
	"github.com/jhoicas/Parqueadero-api/internal/domain/repository"
	"github.com/jhoicas/Parqueadero-api/pkg/logger"
	"github.com/jhoicas/Parqueadero-api/pkg/money"
)

// SessionUseCase entradas, salidas y consulta de sesiones de parqueo.
type SessionUseCase struct {
	sessions   repository.SessionRepository
	categories repository.CategoryRepository
	policy     billing.Policy
	money      *money.Formatter
	loc        *time.Location
	log        *logger.Logger
	now        func() time.Time
}

// NewSessionUseCase construye el caso de uso. loc nil = UTC para mostrar horas.
func NewSessionUseCase(
	sessions repository.SessionRepository,
	categories repository.CategoryRepository,
	policy billing.Policy,
	formatter *money.Formatter,
	loc *time.Location,
	log *logger.Logger,
) *SessionUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &SessionUseCase{
		sessions:   sessions,
		categories: categories,
		policy:     policy,
		money:      formatter,
		loc:        loc,
		log:        log.Component("sessions"),
		now:        time.Now,
	}
}

// NormalizePlate deja la placa en mayúsculas, solo letras y dígitos: "abc-12 3" → "ABC123".
func NormalizePlate(plate string) string {
	var b strings.Builder
	for _, r := range plate {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

// Open registra la entrada. domain.ErrNotFound si la categoría no existe en el parqueadero,
// domain.ErrConflict si la placa ya tiene una sesión abierta.
func (uc *SessionUseCase) Open(ctx context.Context, lotID, operatorID string, in dto.OpenSessionRequest) (*dto.SessionResponse, error) {
	plate := NormalizePlate(in.Plate)
	if plate == "" {
		return nil, fmt.Errorf("%w: placa requerida", domain.ErrInvalidInput)
	}
	now := uc.now()
	entryAt := now
	if in.EntryAt != nil {
		entryAt = *in.EntryAt
		if entryAt.After(now) {
			return nil, fmt.Errorf("%w: la entrada no puede estar en el futuro", domain.ErrInvalidInput)
		}
	}

	category, err := uc.categories.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil || category.LotID != lotID {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.sessions.GetOpenByPlate(ctx, lotID, plate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: la placa %s ya está dentro", domain.ErrConflict, plate)
	}

	session := &entity.Session{
		ID:           uuid.New().String(),
		LotID:        lotID,
		Plate:        plate,
		CategoryID:   category.ID,
		CategoryName: category.Name,
		HourlyPrice:  category.Price,
		OperatorID:   operatorID,
		EntryAt:      entryAt,
		Status:       entity.SessionOpen,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	uc.log.Info().Str("session_id", session.ID).Str("plate", plate).Str("category", category.Name).Msg("entrada registrada")
	return toSessionResponse(session), nil
}

// Close registra la salida y calcula el monto. domain.ErrNotFound si no existe,
// domain.ErrConflict si ya estaba cerrada.
func (uc *SessionUseCase) Close(ctx context.Context, lotID, id string, in dto.CloseSessionRequest) (*dto.SessionResponse, error) {
	session, err := uc.find(ctx, lotID, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrNotFound
	}
	if !session.IsOpen() {
		return nil, fmt.Errorf("%w: la sesión ya está cerrada", domain.ErrConflict)
	}

	now := uc.now()
	exitAt := now
	if in.ExitAt != nil {
		exitAt = *in.ExitAt
	}
	amount, err := uc.policy.Charge(session.HourlyPrice, session.EntryAt, exitAt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	session.ExitAt = &exitAt
	session.Amount = &amount
	session.Status = entity.SessionClosed
	session.UpdatedAt = now
	if err := uc.sessions.Close(ctx, session); err != nil {
		return nil, err
	}
	uc.log.Info().Str("session_id", session.ID).Str("amount", amount.String()).Msg("salida registrada")
	return toSessionResponse(session), nil
}

// GetByID obtiene una sesión del parqueadero. (nil, nil) si no existe.
func (uc *SessionUseCase) GetByID(ctx context.Context, lotID, id string) (*dto.SessionResponse, error) {
	session, err := uc.find(ctx, lotID, id)
	if err != nil || session == nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

// Detail devuelve la vista formateada de la sesión. (nil, nil) si no existe.
func (uc *SessionUseCase) Detail(ctx context.Context, lotID, id string) (*report.SessionDetail, error) {
	session, err := uc.find(ctx, lotID, id)
	if err != nil || session == nil {
		return nil, err
	}
	d := report.BuildSessionDetail(session, uc.now(), uc.money, uc.loc)
	return &d, nil
}

// List lista sesiones del parqueadero; status vacío = todas.
func (uc *SessionUseCase) List(ctx context.Context, lotID, status string, page dto.PageRequest) (*dto.SessionListResponse, error) {
	if status != "" && status != entity.SessionOpen && status != entity.SessionClosed {
		return nil, fmt.Errorf("%w: status debe ser open o closed", domain.ErrInvalidInput)
	}
	page.DefaultPage()
	list, err := uc.sessions.List(ctx, repository.SessionFilter{LotID: lotID, Status: status, Limit: page.Limit, Offset: page.Offset})
	if err != nil {
		return nil, err
	}
	items := make([]dto.SessionResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSessionResponse(s))
	}
	return &dto.SessionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina la sesión (registro erróneo). Solo se invoca tras confirmación.
func (uc *SessionUseCase) Delete(ctx context.Context, session *entity.Session) error {
	return uc.sessions.Delete(ctx, session.ID)
}

func (uc *SessionUseCase) find(ctx context.Context, lotID, id string) (*entity.Session, error) {
	session, err := uc.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil || session.LotID != lotID {
		return nil, nil
	}
	return session, nil
}

func toSessionResponse(s *entity.Session) *dto.SessionResponse {
	if s == nil {
		return nil
	}
	return &dto.SessionResponse{
		ID:           s.ID,
		LotID:        s.LotID,
		Plate:        s.Plate,
		CategoryID:   s.CategoryID,
		CategoryName: s.CategoryName,
		HourlyPrice:  s.HourlyPrice,
		OperatorID:   s.OperatorID,
		EntryAt:      s.EntryAt,
		ExitAt:       s.ExitAt,
		Amount:       s.Amount,
		Status:       s.Status,
	}
}
