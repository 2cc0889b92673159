package bolt_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvaldez/inventario-sucursales/internal/infrastructure/bolt"
)

func openGateway(t *testing.T) *bolt.Gateway {
	t.Helper()
	gw, err := bolt.Open(filepath.Join(t.TempDir(), "inventario.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = gw.Close() })
	return gw
}

func TestGateway_SetGet(t *testing.T) {
	gw := openGateway(t)

	require.NoError(t, gw.Set("inventario:estado", []byte(`{"stores":[]}`)))

	raw, err := gw.Get("inventario:estado")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"stores":[]}`), raw)

	// Sobrescritura de la misma clave.
	require.NoError(t, gw.Set("inventario:estado", []byte(`{}`)))
	raw, err = gw.Get("inventario:estado")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{}`), raw)
}

func TestGateway_ClaveAusente(t *testing.T) {
	gw := openGateway(t)

	raw, err := gw.Get("no-existe")
	require.NoError(t, err)
	assert.Nil(t, raw, "clave ausente es (nil, nil), no error")
}

func TestGateway_Clear(t *testing.T) {
	gw := openGateway(t)

	require.NoError(t, gw.Set("a", []byte("1")))
	require.NoError(t, gw.Set("b", []byte("2")))
	require.NoError(t, gw.Clear())

	raw, err := gw.Get("a")
	require.NoError(t, err)
	assert.Nil(t, raw)

	// El bucket sigue utilizable después de limpiar.
	require.NoError(t, gw.Set("a", []byte("3")))
	raw, err = gw.Get("a")
	require.NoError(t, err)
	assert.Equal(t, []byte("3"), raw)
}

func TestGateway_Reapertura(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventario.db")

	gw, err := bolt.Open(path)
	require.NoError(t, err)
	require.NoError(t, gw.Set("k", []byte("persistido")))
	require.NoError(t, gw.Close())

	gw, err = bolt.Open(path)
	require.NoError(t, err)
	defer gw.Close()

	raw, err := gw.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("persistido"), raw, "el valor sobrevive al reinicio")
}
