package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/Parqueadero-api/internal/application/dto"
	"github.com/jhoicas/Parqueadero-api/internal/domain/entity"
	"github.com/jhoicas/Parqueadero-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memCategories struct {
	mu      sync.Mutex
	byID    map[string]*entity.Category
	deletes int
}

func newMemCategories() *memCategories {
	return &memCategories{byID: map[string]*entity.Category{}}
}

func (m *memCategories) Create(_ context.Context, c *entity.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *c
	m.byID[c.ID] = &cp
	return nil
}

func (m *memCategories) GetByID(_ context.Context, id string) (*entity.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memCategories) GetByLotAndName(_ context.Context, lotID, name string) (*entity.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.byID {
		if c.LotID == lotID && c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memCategories) Update(_ context.Context, c *entity.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *c
	m.byID[c.ID] = &cp
	return nil
}

func (m *memCategories) ListByLot(_ context.Context, lotID string) ([]*entity.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Category
	for _, c := range m.byID {
		if c.LotID == lotID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memCategories) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, id)
	m.deletes++
	return nil
}

type memSessions struct {
	mu   sync.Mutex
	byID map[string]*entity.Session
}

func newMemSessions() *memSessions {
	return &memSessions{byID: map[string]*entity.Session{}}
}

func (m *memSessions) Create(_ context.Context, s *entity.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *s
	m.byID[s.ID] = &cp
	return nil
}

func (m *memSessions) GetByID(_ context.Context, id string) (*entity.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *memSessions) GetOpenByPlate(_ context.Context, lotID, plate string) (*entity.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.byID {
		if s.LotID == lotID && s.Plate == plate && s.IsOpen() {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memSessions) Close(_ context.Context, s *entity.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *s
	m.byID[s.ID] = &cp
	return nil
}

func (m *memSessions) List(_ context.Context, f repository.SessionFilter) ([]*entity.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Session
	for _, s := range m.byID {
		if s.LotID == f.LotID && (f.Status == "" || s.Status == f.Status) {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EntryAt.After(out[j].EntryAt) })
	if f.Offset >= len(out) {
		return nil, nil
	}
	out = out[f.Offset:]
	if len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (m *memSessions) ListForShift(_ context.Context, lotID, operatorID string, from, to time.Time) ([]*entity.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Session
	for _, s := range m.byID {
		if s.LotID != lotID || (operatorID != "" && s.OperatorID != operatorID) {
			continue
		}
		if s.EntryAt.Before(to) && (s.ExitAt == nil || !s.ExitAt.Before(from)) {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memSessions) CountOpenByCategory(_ context.Context, categoryID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, s := range m.byID {
		if s.CategoryID == categoryID && s.IsOpen() {
			n++
		}
	}
	return n, nil
}

func (m *memSessions) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Cache y PDF falsos
// ──────────────────────────────────────────────────────────────────────────────

type fakeCache struct {
	data        map[string][]*entity.Category
	gets, hits  int
	invalidated []string
	failGet     bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]*entity.Category{}}
}

func (f *fakeCache) GetCategories(_ context.Context, lotID string) ([]*entity.Category, bool, error) {
	f.gets++
	if f.failGet {
		return nil, false, errors.New("redis caído")
	}
	list, ok := f.data[lotID]
	if ok {
		f.hits++
	}
	return list, ok, nil
}

func (f *fakeCache) SetCategories(_ context.Context, lotID string, list []*entity.Category) error {
	f.data[lotID] = list
	return nil
}

func (f *fakeCache) InvalidateCategories(_ context.Context, lotID string) error {
	delete(f.data, lotID)
	f.invalidated = append(f.invalidated, lotID)
	return nil
}

type fakePDF struct {
	got *dto.ShiftReportResponse
}

func (f *fakePDF) GenerateShiftReportPDF(_ context.Context, r *dto.ShiftReportResponse) ([]byte, error) {
	f.got = r
	return []byte("%PDF-fake"), nil
}
