package repository

import (
	"context"

	"github.com/jhoicas/Parqueadero-api/internal/domain/entity"
)

// OperatorRepository define el puerto de persistencia para Operator.
type OperatorRepository interface {
	Create(ctx context.Context, op *entity.Operator) error
	GetByID(ctx context.Context, id string) (*entity.Operator, error)
	FindByEmail(ctx context.Context, email string) (*entity.Operator, error)
}
