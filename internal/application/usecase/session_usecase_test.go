package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Parqueadero-api/internal/application/dto"
	"github.com/jhoicas/Parqueadero-api/internal/domain"
	"github.com/jhoicas/Parqueadero-api/internal/domain/entity"
	"github.com/jhoicas/Parqueadero-api/internal/domain/report"
	"github.com/jhoicas/Parqueadero-api/pkg/money"
)

func TestNormalizePlate(t *testing.T) {
	assert.Equal(t, "ABC123", NormalizePlate("abc-12 3"))
	assert.Equal(t, "", NormalizePlate(" - "))
}

func TestSessionOpenClose_Cobro(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat := f.mustCategory(t, lot, "Carros", `3000`)

	opened := f.mustOpen(t, "abc 123", cat.ID, f.clock.Add(-2*time.Hour))
	assert.Equal(t, "ABC123", opened.Plate)
	assert.Equal(t, entity.SessionOpen, opened.Status)
	assert.Equal(t, "Carros", opened.CategoryName)
	assert.Nil(t, opened.Amount)

	// 120 min - 5 de gracia = 115 → 2 horas.
	closed, err := f.sessionUC.Close(ctx, lot, opened.ID, dto.CloseSessionRequest{})
	require.NoError(t, err)
	require.NotNil(t, closed.Amount)
	assert.True(t, decimal.NewFromInt(6000).Equal(*closed.Amount), "amount=%s", closed.Amount)
	assert.Equal(t, entity.SessionClosed, closed.Status)

	_, err = f.sessionUC.Close(ctx, lot, opened.ID, dto.CloseSessionRequest{})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSessionClose_DentroDeGraciaNoCobra(t *testing.T) {
	f := newFixture(t)
	cat := f.mustCategory(t, lot, "Motos", `1500`)
	opened := f.mustOpen(t, "XYZ99", cat.ID, f.clock.Add(-4*time.Minute))

	closed, err := f.sessionUC.Close(context.Background(), lot, opened.ID, dto.CloseSessionRequest{})
	require.NoError(t, err)
	assert.True(t, closed.Amount.IsZero())
}

func TestSessionClose_SalidaAnteriorAEntrada(t *testing.T) {
	f := newFixture(t)
	cat := f.mustCategory(t, lot, "Motos", `1500`)
	opened := f.mustOpen(t, "XYZ99", cat.ID, f.clock.Add(-time.Hour))

	exit := f.clock.Add(-2 * time.Hour)
	_, err := f.sessionUC.Close(context.Background(), lot, opened.ID, dto.CloseSessionRequest{ExitAt: &exit})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSessionOpen_Errores(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat := f.mustCategory(t, lot, "Carros", `3000`)
	foreign := f.mustCategory(t, otherLot, "Carros", `3000`)
	future := f.clock.Add(time.Minute)

	_, err := f.sessionUC.Open(ctx, lot, operator, dto.OpenSessionRequest{Plate: "--", CategoryID: cat.ID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.sessionUC.Open(ctx, lot, operator, dto.OpenSessionRequest{Plate: "AAA111", CategoryID: cat.ID, EntryAt: &future})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.sessionUC.Open(ctx, lot, operator, dto.OpenSessionRequest{Plate: "AAA111", CategoryID: foreign.ID})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.sessionUC.Open(ctx, lot, operator, dto.OpenSessionRequest{Plate: "AAA111", CategoryID: cat.ID})
	require.NoError(t, err)
	_, err = f.sessionUC.Open(ctx, lot, operator, dto.OpenSessionRequest{Plate: "aaa-111", CategoryID: cat.ID})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSessionDetail_AbiertaYCerrada(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat := f.mustCategory(t, lot, "Carros", `3000`)
	opened := f.mustOpen(t, "ABC123", cat.ID, f.clock.Add(-90*time.Minute))

	d, err := f.sessionUC.Detail(ctx, lot, opened.ID)
	require.NoError(t, err)
	assert.Equal(t, report.StatusLabelOpen, d.StatusLabel)
	assert.Equal(t, money.Placeholder, d.ExitAt)
	assert.Equal(t, money.Placeholder, d.Amount)
	assert.Equal(t, "1h 30m", d.Duration)

	_, err = f.sessionUC.Close(ctx, lot, opened.ID, dto.CloseSessionRequest{})
	require.NoError(t, err)
	f.advance(time.Hour)

	d, err = f.sessionUC.Detail(ctx, lot, opened.ID)
	require.NoError(t, err)
	assert.Equal(t, report.StatusLabelClosed, d.StatusLabel)
	assert.Equal(t, "1h 30m", d.Duration, "la duración de una sesión cerrada no corre")
	assert.NotEqual(t, money.Placeholder, d.Amount)

	d, err = f.sessionUC.Detail(ctx, otherLot, opened.ID)
	assert.NoError(t, err)
	assert.Nil(t, d)
}

func TestSessionList_FiltroYPaginacion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat := f.mustCategory(t, lot, "Carros", `3000`)
	first := f.mustOpen(t, "AAA111", cat.ID, f.clock.Add(-3*time.Hour))
	f.mustOpen(t, "BBB222", cat.ID, f.clock.Add(-2*time.Hour))
	f.mustOpen(t, "CCC333", cat.ID, f.clock.Add(-1*time.Hour))
	_, err := f.sessionUC.Close(ctx, lot, first.ID, dto.CloseSessionRequest{})
	require.NoError(t, err)

	open, err := f.sessionUC.List(ctx, lot, entity.SessionOpen, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, open.Items, 2)
	assert.Equal(t, 20, open.Page.Limit)

	page, err := f.sessionUC.List(ctx, lot, "", dto.PageRequest{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "BBB222", page.Items[0].Plate)

	_, err = f.sessionUC.List(ctx, lot, "parked", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
