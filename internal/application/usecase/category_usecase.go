package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Parqueadero-api/internal/application/dto"
	"github.com/jhoicas/Parqueadero-api/internal/application/ports"
	"github.com/jhoicas/Parqueadero-api/internal/domain"
	"github.com/jhoicas/Parqueadero-api/internal/domain/entity"
	"github.com/jhoicas/Parqueadero-api/internal/domain/pricing"
	"github.com/jhoicas/Parqueadero-api/internal/domain/repository"
	"github.com/jhoicas/Parqueadero-api/pkg/logger"
)

// CategoryUseCase casos de uso para categorías de tarifa. Crear y editar pasan por el mismo
// borrador pricing.CategoryDraft; el borrado solo ocurre vía DeletionUseCase.
type CategoryUseCase struct {
	repo     repository.CategoryRepository
	sessions repository.SessionRepository
	cache    ports.CategoryCache
	log      *logger.Logger
	now      func() time.Time
}

// NewCategoryUseCase construye el caso de uso. cache nil = sin cache.
func NewCategoryUseCase(repo repository.CategoryRepository, sessions repository.SessionRepository, cache ports.CategoryCache, log *logger.Logger) *CategoryUseCase {
	if cache == nil {
		cache = ports.NopCategoryCache{}
	}
	return &CategoryUseCase{repo: repo, sessions: sessions, cache: cache, log: log.Component("categories"), now: time.Now}
}

// Create valida el borrador y persiste la categoría. Devuelve *pricing.ValidationError si el
// nombre o el precio no pasan, y domain.ErrDuplicate si el nombre ya existe en el parqueadero.
func (uc *CategoryUseCase) Create(ctx context.Context, lotID string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	raw, err := pricing.ParseJSON(in.Price)
	if err != nil {
		return nil, &pricing.ValidationError{Field: pricing.FieldPrice, Reason: "formato de precio no soportado"}
	}
	draft := pricing.NewDraft()
	draft.SetName(in.Name)
	draft.SetPrice(raw)
	sub, err := draft.Submit()
	if err != nil {
		return nil, err
	}

	existing, err := uc.repo.GetByLotAndName(ctx, lotID, sub.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := uc.now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		LotID:     lotID,
		Name:      sub.Name,
		Price:     sub.Amount(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, lotID)
	uc.log.Info().Str("lot_id", lotID).Str("category_id", category.ID).Str("name", category.Name).Msg("categoría creada")
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría del parqueadero. (nil, nil) si no existe.
func (uc *CategoryUseCase) GetByID(ctx context.Context, lotID, id string) (*dto.CategoryResponse, error) {
	category, err := uc.find(ctx, lotID, id)
	if err != nil || category == nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Update siembra el borrador con la categoría existente, aplica los campos presentes y revalida.
// Un "price": null explícito deja el precio vacío y la validación falla. (nil, nil) si no existe.
func (uc *CategoryUseCase) Update(ctx context.Context, lotID, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.find(ctx, lotID, id)
	if err != nil || category == nil {
		return nil, err
	}

	draft := pricing.DraftFrom(category.ID, category.Name, pricing.FromDecimal(category.Price))
	if in.Name != nil {
		draft.SetName(*in.Name)
	}
	if in.Price != nil {
		raw, err := pricing.ParseJSON(in.Price)
		if err != nil {
			return nil, &pricing.ValidationError{Field: pricing.FieldPrice, Reason: "formato de precio no soportado"}
		}
		draft.SetPrice(raw)
	}
	sub, err := draft.Submit()
	if err != nil {
		return nil, err
	}

	if sub.Name != category.Name {
		existing, err := uc.repo.GetByLotAndName(ctx, lotID, sub.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != category.ID {
			return nil, domain.ErrDuplicate
		}
	}

	category.Name = sub.Name
	// Sin cambio numérico se conserva el decimal original (evita perder escala por el float).
	if newPrice := sub.Amount(); !newPrice.Equal(category.Price) {
		category.Price = newPrice
	}
	category.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, lotID)
	return toCategoryResponse(category), nil
}

// List lista las categorías del parqueadero ordenadas por nombre, leyendo primero del cache.
func (uc *CategoryUseCase) List(ctx context.Context, lotID string) (*dto.CategoryListResponse, error) {
	list, hit, err := uc.cache.GetCategories(ctx, lotID)
	if err != nil {
		uc.log.Warn().Err(err).Str("lot_id", lotID).Msg("cache de categorías no disponible")
	}
	if !hit {
		list, err = uc.repo.ListByLot(ctx, lotID)
		if err != nil {
			return nil, err
		}
		if err := uc.cache.SetCategories(ctx, lotID, list); err != nil {
			uc.log.Warn().Err(err).Str("lot_id", lotID).Msg("no se pudo cachear categorías")
		}
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{Items: items}, nil
}

// Delete elimina la categoría. Falla con domain.ErrConflict si hay sesiones abiertas que la usan.
func (uc *CategoryUseCase) Delete(ctx context.Context, category *entity.Category) error {
	open, err := uc.sessions.CountOpenByCategory(ctx, category.ID)
	if err != nil {
		return err
	}
	if open > 0 {
		return fmt.Errorf("%w: %d sesiones abiertas usan la categoría", domain.ErrConflict, open)
	}
	if err := uc.repo.Delete(ctx, category.ID); err != nil {
		return err
	}
	uc.invalidate(ctx, category.LotID)
	return nil
}

// find obtiene la entidad solo si pertenece al parqueadero.
func (uc *CategoryUseCase) find(ctx context.Context, lotID, id string) (*entity.Category, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil || category.LotID != lotID {
		return nil, nil
	}
	return category, nil
}

func (uc *CategoryUseCase) invalidate(ctx context.Context, lotID string) {
	if err := uc.cache.InvalidateCategories(ctx, lotID); err != nil {
		uc.log.Warn().Err(err).Str("lot_id", lotID).Msg("no se pudo invalidar cache de categorías")
	}
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:        c.ID,
		LotID:     c.LotID,
		Name:      c.Name,
		Price:     c.Price,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
