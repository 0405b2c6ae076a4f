package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Parqueadero-api/internal/domain"
	"github.com/jhoicas/Parqueadero-api/internal/domain/entity"
	"github.com/jhoicas/Parqueadero-api/internal/domain/repository"
)

func TestCategoryRepo_NombreUnicoPorParqueadero(t *testing.T) {
	ctx := context.Background()
	r := NewCategoryRepo(nil)
	require.NoError(t, r.Create(ctx, &entity.Category{ID: "a", LotID: "l1", Name: "Motos"}))
	assert.ErrorIs(t, r.Create(ctx, &entity.Category{ID: "b", LotID: "l1", Name: "Motos"}), domain.ErrDuplicate)
	require.NoError(t, r.Create(ctx, &entity.Category{ID: "c", LotID: "l2", Name: "Motos"}))

	got, err := r.GetByID(ctx, "a")
	require.NoError(t, err)
	got.Name = "mutado"
	again, _ := r.GetByID(ctx, "a")
	assert.Equal(t, "Motos", again.Name, "GetByID devuelve copias")
}

func TestCategoryRepo_BorrarSueltaSesiones(t *testing.T) {
	ctx := context.Background()
	sessions := NewSessionRepo()
	r := NewCategoryRepo(sessions)
	require.NoError(t, r.Create(ctx, &entity.Category{ID: "c1", LotID: "l1", Name: "Carros"}))
	require.NoError(t, r.Create(ctx, &entity.Category{ID: "c2", LotID: "l1", Name: "Motos"}))
	require.NoError(t, sessions.Create(ctx, &entity.Session{ID: "s1", LotID: "l1", Plate: "A", CategoryID: "c1", CategoryName: "Carros", Status: entity.SessionClosed}))
	require.NoError(t, sessions.Create(ctx, &entity.Session{ID: "s2", LotID: "l1", Plate: "B", CategoryID: "c2", CategoryName: "Motos", Status: entity.SessionClosed}))

	require.NoError(t, r.Delete(ctx, "c1"))

	s1, err := sessions.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, s1.CategoryID)
	assert.Equal(t, "Carros", s1.CategoryName, "el nombre copiado se conserva")
	s2, _ := sessions.GetByID(ctx, "s2")
	assert.Equal(t, "c2", s2.CategoryID)
}

func TestSessionRepo_CloseSoloUnaVez(t *testing.T) {
	ctx := context.Background()
	r := NewSessionRepo()
	s := &entity.Session{ID: "s1", LotID: "l1", Plate: "ABC123", Status: entity.SessionOpen, EntryAt: time.Now()}
	require.NoError(t, r.Create(ctx, s))
	assert.ErrorIs(t, r.Create(ctx, &entity.Session{ID: "s2", LotID: "l1", Plate: "ABC123", Status: entity.SessionOpen}), domain.ErrConflict)

	closed := *s
	closed.Status = entity.SessionClosed
	require.NoError(t, r.Close(ctx, &closed))
	assert.ErrorIs(t, r.Close(ctx, &closed), domain.ErrConflict)
}

func TestSessionRepo_ListYTurno(t *testing.T) {
	ctx := context.Background()
	r := NewSessionRepo()
	base := time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC)
	exit := base.Add(-time.Hour)
	require.NoError(t, r.Create(ctx, &entity.Session{ID: "viejo", LotID: "l1", Plate: "A", Status: entity.SessionClosed, EntryAt: base.Add(-3 * time.Hour), ExitAt: &exit}))
	require.NoError(t, r.Create(ctx, &entity.Session{ID: "s1", LotID: "l1", Plate: "B", Status: entity.SessionOpen, EntryAt: base.Add(time.Hour), OperatorID: "op1"}))
	require.NoError(t, r.Create(ctx, &entity.Session{ID: "s2", LotID: "l1", Plate: "C", Status: entity.SessionOpen, EntryAt: base.Add(2 * time.Hour), OperatorID: "op2"}))

	list, err := r.List(ctx, repository.SessionFilter{LotID: "l1", Limit: 2})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "s2", list[0].ID)

	shift, err := r.ListForShift(ctx, "l1", "", base, base.Add(8*time.Hour))
	require.NoError(t, err)
	assert.Len(t, shift, 2, "la sesión que salió antes del turno no entra")

	mine, err := r.ListForShift(ctx, "l1", "op1", base, base.Add(8*time.Hour))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "s1", mine[0].ID)

	n, err := r.CountOpenByCategory(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestOperatorRepo_EmailUnico(t *testing.T) {
	ctx := context.Background()
	r := NewOperatorRepo()
	require.NoError(t, r.Create(ctx, &entity.Operator{ID: "1", Email: "a@b.co"}))
	assert.ErrorIs(t, r.Create(ctx, &entity.Operator{ID: "2", Email: "a@b.co"}), domain.ErrEmailAlreadyExists)
	op, err := r.FindByEmail(ctx, "a@b.co")
	require.NoError(t, err)
	assert.Equal(t, "1", op.ID)
}
