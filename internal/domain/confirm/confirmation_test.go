package confirm_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Parqueadero-api/internal/domain/confirm"
)

type categoria struct {
	ID   string
	Name string
}

type spy struct {
	closes    int
	confirmed []*categoria
}

func (s *spy) open(target *categoria) *confirm.Confirmation[*categoria] {
	return confirm.Open(target,
		func() { s.closes++ },
		func(_ context.Context, c *categoria) error {
			s.confirmed = append(s.confirmed, c)
			return nil
		},
	)
}

var ctx = context.Background()

func TestDescartesNuncaConfirman(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	dismissals := []confirm.Trigger{confirm.TriggerClose, confirm.TriggerOverlay, confirm.TriggerCancel}

	for i := 0; i < 50; i++ {
		s := &spy{}
		c := s.open(&categoria{ID: "c1"})
		n := 1 + rng.Intn(6)
		for j := 0; j < n; j++ {
			require.NoError(t, c.Handle(ctx, dismissals[rng.Intn(len(dismissals))]))
		}
		assert.Empty(t, s.confirmed)
		assert.Equal(t, n, s.closes)
	}
}

func TestConfirmar_UnaVezConMismaReferencia(t *testing.T) {
	s := &spy{}
	target := &categoria{ID: "c1", Name: "Premium"}
	c := s.open(target)

	require.NoError(t, c.Handle(ctx, confirm.TriggerConfirm))

	require.Len(t, s.confirmed, 1)
	assert.Same(t, target, s.confirmed[0])
	assert.Equal(t, "Premium", s.confirmed[0].Name)
	assert.Zero(t, s.closes, "confirmar no cierra por sí mismo")
	assert.Same(t, target, c.Target())
}

func TestConfirmar_PropagaError(t *testing.T) {
	boom := errors.New("boom")
	closes := 0
	c := confirm.Open("x", func() { closes++ }, func(context.Context, string) error { return boom })

	assert.ErrorIs(t, c.Handle(ctx, confirm.TriggerConfirm), boom)
	assert.Zero(t, closes)
}

func TestClick_Regiones(t *testing.T) {
	s := &spy{}
	c := s.open(&categoria{ID: "c1"})

	c.Click(confirm.RegionSurface)
	assert.Zero(t, s.closes)

	c.Click(confirm.RegionOverlay)
	assert.Equal(t, 1, s.closes)
	assert.Empty(t, s.confirmed)
}

func TestHandle_TriggerDesconocido(t *testing.T) {
	s := &spy{}
	c := s.open(&categoria{ID: "c1"})
	err := c.Handle(ctx, confirm.Trigger(99))
	assert.ErrorIs(t, err, confirm.ErrUnknownTrigger)
	assert.Zero(t, s.closes)
	assert.Empty(t, s.confirmed)
}

func TestOpen_CallbacksNil(t *testing.T) {
	c := confirm.Open[int](1, nil, nil)
	assert.NoError(t, c.Handle(ctx, confirm.TriggerCancel))
	assert.NoError(t, c.Handle(ctx, confirm.TriggerConfirm))
}

func TestParseDismissal(t *testing.T) {
	for s, want := range map[string]confirm.Trigger{
		"close":   confirm.TriggerClose,
		"overlay": confirm.TriggerOverlay,
		"cancel":  confirm.TriggerCancel,
	} {
		got, err := confirm.ParseDismissal(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.True(t, got.IsDismissal())
		assert.Equal(t, s, got.String())
	}

	_, err := confirm.ParseDismissal("confirm")
	assert.ErrorIs(t, err, confirm.ErrUnknownTrigger)
	assert.False(t, confirm.TriggerConfirm.IsDismissal())
}

func TestParseRegion(t *testing.T) {
	r, err := confirm.ParseRegion("overlay")
	require.NoError(t, err)
	assert.Equal(t, confirm.RegionOverlay, r)

	r, err = confirm.ParseRegion("surface")
	require.NoError(t, err)
	assert.Equal(t, confirm.RegionSurface, r)

	_, err = confirm.ParseRegion("")
	assert.ErrorIs(t, err, confirm.ErrUnknownRegion)
}
