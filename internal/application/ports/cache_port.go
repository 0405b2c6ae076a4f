package ports

import (
	"context"

	"github.com/jhoicas/Parqueadero-api/internal/domain/entity"
)

// CategoryCache define el puerto de salida para cachear el listado de categorías por parqueadero.
// Un fallo del cache nunca debe bloquear la operación: el caso de uso lo registra y sigue con la DB.
type CategoryCache interface {
	// GetCategories devuelve (lista, true, nil) en hit y (nil, false, nil) en miss.
	GetCategories(ctx context.Context, lotID string) ([]*entity.Category, bool, error)
	SetCategories(ctx context.Context, lotID string, categories []*entity.Category) error
	InvalidateCategories(ctx context.Context, lotID string) error
}

// NopCategoryCache cache desactivado: siempre miss.
type NopCategoryCache struct{}

func (NopCategoryCache) GetCategories(context.Context, string) ([]*entity.Category, bool, error) {
	return nil, false, nil
}

func (NopCategoryCache) SetCategories(context.Context, string, []*entity.Category) error {
	return nil
}

func (NopCategoryCache) InvalidateCategories(context.Context, string) error {
	return nil
}
