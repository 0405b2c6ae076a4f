package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Parqueadero-api/internal/domain/pricing"
)

func TestNewDraft_CreacionVacia(t *testing.T) {
	d := pricing.NewDraft()
	assert.True(t, d.IsNew())
	assert.Equal(t, pricing.Unset, d.Price())

	_, err := d.Submit()
	assert.Error(t, err)

	d.SetName("Motos")
	d.SetPrice(pricing.Text("$ 2.000"))
	sub, err := d.Submit()
	require.NoError(t, err)
	assert.Equal(t, "Motos", sub.Name)
	assert.Equal(t, 2.0, sub.Price, "el punto se conserva como separador decimal")
}

func TestDraftFrom_EdicionNormalizaAlSembrar(t *testing.T) {
	d := pricing.DraftFrom("cat-1", "Premium", pricing.Numeric(15000))
	assert.False(t, d.IsNew())
	assert.Equal(t, pricing.Canonical("15000"), d.Price())

	sub, err := d.Submit()
	require.NoError(t, err)
	assert.Equal(t, "cat-1", sub.ID)
	assert.Equal(t, 15000.0, sub.Price)
}

func TestDraftFrom_PrecioAusente(t *testing.T) {
	d := pricing.DraftFrom("cat-2", "Legado", pricing.Absent{})
	assert.Equal(t, pricing.Unset, d.Price())
}

func TestSubmit_FallaNoModificaBorrador(t *testing.T) {
	d := pricing.DraftFrom("cat-1", "Premium", pricing.Numeric(15000))
	d.SetName("   ")
	d.SetPrice(pricing.Text("abc"))

	_, err := d.Submit()
	require.Error(t, err)
	assert.Equal(t, "   ", d.Name())
	assert.Equal(t, pricing.Unset, d.Price())
	assert.Equal(t, "cat-1", d.ID())

	d.SetName("Premium")
	d.SetPrice(pricing.Text("18000"))
	sub, err := d.Submit()
	require.NoError(t, err)
	assert.Equal(t, 18000.0, sub.Price)
}
