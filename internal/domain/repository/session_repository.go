package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Parqueadero-api/internal/domain/entity"
)

// SessionFilter filtros para listar sesiones.
type SessionFilter struct {
	LotID  string
	Status string // vacío = todas
	Limit  int
	Offset int
}

// SessionRepository define el puerto de persistencia para Session.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	GetOpenByPlate(ctx context.Context, lotID, plate string) (*entity.Session, error)
	Close(ctx context.Context, session *entity.Session) error
	List(ctx context.Context, f SessionFilter) ([]*entity.Session, error)
	// ListForShift devuelve las sesiones que se cruzan con [from, to): entraron antes de to
	// y no habían salido antes de from. operatorID vacío = todos.
	ListForShift(ctx context.Context, lotID, operatorID string, from, to time.Time) ([]*entity.Session, error)
	CountOpenByCategory(ctx context.Context, categoryID string) (int, error)
	Delete(ctx context.Context, id string) error
}
