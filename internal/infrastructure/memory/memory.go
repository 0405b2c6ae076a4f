// Package memory implementa los repositorios en memoria. Sirve para correr la API sin
// PostgreSQL (DB_DRIVER=memory) y para los tests de handlers.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/Parqueadero-api/internal/domain"
	"github.com/jhoicas/Parqueadero-api/internal/domain/entity"
	"github.com/jhoicas/Parqueadero-api/internal/domain/repository"
)

var (
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.SessionRepository  = (*SessionRepo)(nil)
	_ repository.OperatorRepository = (*OperatorRepo)(nil)
)

// ── Categorías ────────────────────────────────────────────────────────────────

// CategoryRepo categorías en un mapa protegido por mutex. Guarda y devuelve copias.
type CategoryRepo struct {
	mu       sync.RWMutex
	byID     map[string]entity.Category
	sessions *SessionRepo
}

// NewCategoryRepo construye el repositorio vacío. Si sessions no es nil, borrar una
// categoría deja sin category_id a sus sesiones, igual que ON DELETE SET NULL.
func NewCategoryRepo(sessions *SessionRepo) *CategoryRepo {
	return &CategoryRepo{byID: map[string]entity.Category{}, sessions: sessions}
}

func (r *CategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.LotID == c.LotID && existing.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	r.byID[c.ID] = *c
	return nil
}

func (r *CategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CategoryRepo) GetByLotAndName(_ context.Context, lotID, name string) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.byID {
		if c.LotID == lotID && c.Name == name {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *CategoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[c.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, existing := range r.byID {
		if id != c.ID && existing.LotID == c.LotID && existing.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	r.byID[c.ID] = *c
	return nil
}

func (r *CategoryRepo) ListByLot(_ context.Context, lotID string) ([]*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Category
	for _, c := range r.byID {
		if c.LotID == lotID {
			c := c
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CategoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	if r.sessions != nil {
		r.sessions.detachCategory(id)
	}
	return nil
}

// ── Sesiones ──────────────────────────────────────────────────────────────────

// SessionRepo sesiones en memoria.
type SessionRepo struct {
	mu   sync.RWMutex
	byID map[string]entity.Session
}

// NewSessionRepo construye el repositorio vacío.
func NewSessionRepo() *SessionRepo {
	return &SessionRepo{byID: map[string]entity.Session{}}
}

func (r *SessionRepo) Create(_ context.Context, s *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.LotID == s.LotID && existing.Plate == s.Plate && existing.IsOpen() {
			return domain.ErrConflict
		}
	}
	r.byID[s.ID] = *s
	return nil
}

// detachCategory conserva nombre y tarifa copiados y solo suelta la referencia.
func (r *SessionRepo) detachCategory(categoryID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.byID {
		if s.CategoryID == categoryID {
			s.CategoryID = ""
			r.byID[id] = s
		}
	}
}

func (r *SessionRepo) GetByID(_ context.Context, id string) (*entity.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *SessionRepo) GetOpenByPlate(_ context.Context, lotID, plate string) (*entity.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.byID {
		if s.LotID == lotID && s.Plate == plate && s.IsOpen() {
			return &s, nil
		}
	}
	return nil, nil
}

func (r *SessionRepo) Close(_ context.Context, s *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.byID[s.ID]
	if !ok || !current.IsOpen() {
		return domain.ErrConflict
	}
	r.byID[s.ID] = *s
	return nil
}

func (r *SessionRepo) List(_ context.Context, f repository.SessionFilter) ([]*entity.Session, error) {
	out := r.filter(func(s entity.Session) bool {
		return s.LotID == f.LotID && (f.Status == "" || s.Status == f.Status)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].EntryAt.After(out[j].EntryAt) })
	if f.Offset >= len(out) {
		return nil, nil
	}
	out = out[f.Offset:]
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *SessionRepo) ListForShift(_ context.Context, lotID, operatorID string, from, to time.Time) ([]*entity.Session, error) {
	out := r.filter(func(s entity.Session) bool {
		if s.LotID != lotID || (operatorID != "" && s.OperatorID != operatorID) {
			return false
		}
		return s.EntryAt.Before(to) && (s.ExitAt == nil || !s.ExitAt.Before(from))
	})
	sort.Slice(out, func(i, j int) bool { return out[i].EntryAt.Before(out[j].EntryAt) })
	return out, nil
}

func (r *SessionRepo) CountOpenByCategory(_ context.Context, categoryID string) (int, error) {
	return len(r.filter(func(s entity.Session) bool { return s.CategoryID == categoryID && s.IsOpen() })), nil
}

func (r *SessionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	return nil
}

func (r *SessionRepo) filter(keep func(entity.Session) bool) []*entity.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Session
	for _, s := range r.byID {
		if keep(s) {
			s := s
			out = append(out, &s)
		}
	}
	return out
}

// ── Operadores ────────────────────────────────────────────────────────────────

// OperatorRepo operadores en memoria; el email es único.
type OperatorRepo struct {
	mu   sync.RWMutex
	byID map[string]entity.Operator
}

// NewOperatorRepo construye el repositorio vacío.
func NewOperatorRepo() *OperatorRepo {
	return &OperatorRepo{byID: map[string]entity.Operator{}}
}

func (r *OperatorRepo) Create(_ context.Context, op *entity.Operator) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Email == op.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.byID[op.ID] = *op
	return nil
}

func (r *OperatorRepo) GetByID(_ context.Context, id string) (*entity.Operator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &op, nil
}

func (r *OperatorRepo) FindByEmail(_ context.Context, email string) (*entity.Operator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, op := range r.byID {
		if op.Email == email {
			return &op, nil
		}
	}
	return nil, nil
}
