package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Parqueadero-api/internal/application/dto"
	"github.com/jhoicas/Parqueadero-api/internal/domain/billing"
	"github.com/jhoicas/Parqueadero-api/pkg/logger"
	"github.com/jhoicas/Parqueadero-api/pkg/money"
)

const (
	lot      = "lot-1"
	otherLot = "lot-2"
	operator = "op-1"
)

type fixture struct {
	clock      time.Time
	categories *memCategories
	sessions   *memSessions
	cache      *fakeCache
	pdf        *fakePDF

	categoryUC *CategoryUseCase
	sessionUC  *SessionUseCase
	reportUC   *ShiftReportUseCase
	deletionUC *DeletionUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		clock:      time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC),
		categories: newMemCategories(),
		sessions:   newMemSessions(),
		cache:      newFakeCache(),
		pdf:        &fakePDF{},
	}
	formatter, err := money.NewFormatter("en-US", "USD")
	require.NoError(t, err)

	log := logger.Nop()
	now := func() time.Time { return f.clock }

	f.categoryUC = NewCategoryUseCase(f.categories, f.sessions, f.cache, log)
	f.categoryUC.now = now
	f.sessionUC = NewSessionUseCase(f.sessions, f.categories, billing.Policy{GraceMinutes: 5, MinMinutes: 60}, formatter, time.UTC, log)
	f.sessionUC.now = now
	f.reportUC = NewShiftReportUseCase(f.sessions, formatter, f.pdf)
	f.deletionUC = NewDeletionUseCase(f.categoryUC, f.sessionUC, 5*time.Minute, log)
	f.deletionUC.now = now
	return f
}

func (f *fixture) advance(d time.Duration) {
	f.clock = f.clock.Add(d)
}

func (f *fixture) mustCategory(t *testing.T, lotID, name, price string) *dto.CategoryResponse {
	t.Helper()
	out, err := f.categoryUC.Create(context.Background(), lotID, dto.CreateCategoryRequest{Name: name, Price: json.RawMessage(price)})
	require.NoError(t, err)
	return out
}

func (f *fixture) mustOpen(t *testing.T, plate, categoryID string, entry time.Time) *dto.SessionResponse {
	t.Helper()
	out, err := f.sessionUC.Open(context.Background(), lot, operator, dto.OpenSessionRequest{Plate: plate, CategoryID: categoryID, EntryAt: &entry})
	require.NoError(t, err)
	return out
}
