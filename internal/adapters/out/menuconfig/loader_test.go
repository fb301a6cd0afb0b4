package menuconfig_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expeditor/internal/adapters/out/menuconfig"
	"expeditor/internal/core/domain/model/kernel"
)

func TestLoad(t *testing.T) {
	t.Run("empty path yields built-in defaults", func(t *testing.T) {
		catalog, err := menuconfig.Load("")
		require.NoError(t, err)

		presets := catalog.Resolve(kernel.Kitchen, "Anything")
		assert.Equal(t, menuconfig.DefaultPresets(), presets)
	})

	t.Run("missing file yields built-in defaults", func(t *testing.T) {
		catalog, err := menuconfig.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)

		presets := catalog.Resolve(kernel.Bar, "Anything")
		assert.Equal(t, menuconfig.DefaultPresets(), presets)
	})

	t.Run("loads presets from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "menu.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
default:
  veryFast: 20
  fast: 40
  standard: 50
  slow: 70
  extremelySlow: 100
items:
  Margherita:
    veryFast: 60
    fast: 90
    standard: 120
    slow: 150
    extremelySlow: 240
`), 0o600))

		catalog, err := menuconfig.Load(path)
		require.NoError(t, err)

		margherita := catalog.Resolve(kernel.Kitchen, "Margherita")
		assert.Equal(t, 120*time.Second, margherita.Standard())

		other := catalog.Resolve(kernel.Kitchen, "Tiramisu")
		assert.Equal(t, 50*time.Second, other.Standard())
	})
}

func TestParse(t *testing.T) {
	t.Run("department entries take precedence", func(t *testing.T) {
		catalog, err := menuconfig.Parse([]byte(`
departments:
  bar:
    default:
      veryFast: 10
      fast: 20
      standard: 30
      slow: 40
      extremelySlow: 60
    items:
      Negroni:
        veryFast: 15
        fast: 25
        standard: 35
        slow: 50
        extremelySlow: 80
items:
  Negroni:
    veryFast: 60
    fast: 90
    standard: 120
    slow: 150
    extremelySlow: 240
`))
		require.NoError(t, err)

		assert.Equal(t, 35*time.Second, catalog.Resolve(kernel.Bar, "Negroni").Standard())
		assert.Equal(t, 120*time.Second, catalog.Resolve(kernel.Kitchen, "Negroni").Standard())
		assert.Equal(t, 30*time.Second, catalog.Resolve(kernel.Bar, "Spritz").Standard())
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		_, err := menuconfig.Parse([]byte("items: ["))
		assert.Error(t, err)
	})

	t.Run("non-increasing presets are an error", func(t *testing.T) {
		_, err := menuconfig.Parse([]byte(`
items:
  Broken:
    veryFast: 60
    fast: 50
    standard: 120
    slow: 150
    extremelySlow: 240
`))
		assert.Error(t, err)
	})

	t.Run("unknown department is an error", func(t *testing.T) {
		_, err := menuconfig.Parse([]byte(`
departments:
  garage:
    default:
      veryFast: 10
      fast: 20
      standard: 30
      slow: 40
      extremelySlow: 60
`))
		assert.Error(t, err)
	})
}
