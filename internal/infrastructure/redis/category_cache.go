// Package redis implementa el cache del listado de categorías sobre Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Parqueadero-api/internal/application/ports"
	"github.com/jhoicas/Parqueadero-api/internal/domain/entity"
)

var _ ports.CategoryCache = (*CategoryCache)(nil)

// CategoryCache guarda el listado de categorías de cada parqueadero como un JSON con TTL.
type CategoryCache struct {
	client goredis.Cmdable
	ttl    time.Duration
}

// NewCategoryCache construye el cache. ttl <= 0 usa 5 minutos.
func NewCategoryCache(client goredis.Cmdable, ttl time.Duration) *CategoryCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CategoryCache{client: client, ttl: ttl}
}

// categoryModel forma serializada; el precio viaja como string para no perder escala.
type categoryModel struct {
	ID        string          `json:"id"`
	LotID     string          `json:"lot_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// GetCategories devuelve el listado cacheado. Un valor corrupto se borra y cuenta como miss.
func (c *CategoryCache) GetCategories(ctx context.Context, lotID string) ([]*entity.Category, bool, error) {
	key := categoriesKey(lotID)
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis GET %s: %w", key, err)
	}
	list, err := decodeCategories(data)
	if err != nil {
		err = fmt.Errorf("redis: valor inválido en %s: %w", key, err)
		if delErr := c.client.Del(ctx, key).Err(); delErr != nil {
			err = errors.Join(err, fmt.Errorf("redis DEL %s: %w", key, delErr))
		}
		return nil, false, err
	}
	return list, true, nil
}

// SetCategories guarda el listado con el TTL configurado.
func (c *CategoryCache) SetCategories(ctx context.Context, lotID string, categories []*entity.Category) error {
	data, err := encodeCategories(categories)
	if err != nil {
		return err
	}
	key := categoriesKey(lotID)
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis SET %s: %w", key, err)
	}
	return nil
}

// InvalidateCategories borra el listado del parqueadero.
func (c *CategoryCache) InvalidateCategories(ctx context.Context, lotID string) error {
	key := categoriesKey(lotID)
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis DEL %s: %w", key, err)
	}
	return nil
}

func categoriesKey(lotID string) string {
	return fmt.Sprintf("parqueadero:%s:categories", lotID)
}

func encodeCategories(categories []*entity.Category) ([]byte, error) {
	models := make([]categoryModel, 0, len(categories))
	for _, cat := range categories {
		models = append(models, categoryModel{
			ID: cat.ID, LotID: cat.LotID, Name: cat.Name, Price: cat.Price,
			CreatedAt: cat.CreatedAt, UpdatedAt: cat.UpdatedAt,
		})
	}
	data, err := json.Marshal(models)
	if err != nil {
		return nil, fmt.Errorf("redis: serializar categorías: %w", err)
	}
	return data, nil
}

func decodeCategories(data []byte) ([]*entity.Category, error) {
	var models []categoryModel
	if err := json.Unmarshal(data, &models); err != nil {
		return nil, err
	}
	out := make([]*entity.Category, 0, len(models))
	for _, m := range models {
		out = append(out, &entity.Category{
			ID: m.ID, LotID: m.LotID, Name: m.Name, Price: m.Price,
			CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
		})
	}
	return out, nil
}
