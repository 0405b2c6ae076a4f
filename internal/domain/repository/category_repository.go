package repository

import (
	"context"

	"github.com/jhoicas/Parqueadero-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	GetByLotAndName(ctx context.Context, lotID, name string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	ListByLot(ctx context.Context, lotID string) ([]*entity.Category, error)
	Delete(ctx context.Context, id string) error
}
