package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// isolate points HOME at an empty directory and clears the config override.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("HOOKSDEMO_CONFIG", "")
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	c, err := Load(nil)
	require.NoError(t, err)

	require.Equal(t, "info", c.Log.Level)
	require.Empty(t, c.Log.Path)
	require.Equal(t, int64(1000), c.Cart.MinPriceCents)
	require.Equal(t, int64(5900), c.Cart.MaxPriceCents)
	require.Equal(t, 2*time.Second, c.Effect.LoadDelay)
	require.Equal(t, MaxFactorialInput, c.Memo.MaxInput)
	require.Equal(t, 32, c.Memo.CacheSize)
	require.False(t, c.UI.Dark)
	require.False(t, c.UI.Once)
}

func TestLoadFromFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
[cart]
min_price_cents = 200
max_price_cents = 300

[effect]
load_delay = "150ms"

[memo]
cache_size = 4
`)

	c, err := Load([]string{"--config", path})
	require.NoError(t, err)

	require.Equal(t, int64(200), c.Cart.MinPriceCents)
	require.Equal(t, int64(300), c.Cart.MaxPriceCents)
	require.Equal(t, 150*time.Millisecond, c.Effect.LoadDelay)
	require.Equal(t, 4, c.Memo.CacheSize)
}

func TestLoadConfigEnvPath(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "[ui]\ndark = true\n")
	t.Setenv("HOOKSDEMO_CONFIG", path)

	c, err := Load(nil)
	require.NoError(t, err)
	require.True(t, c.UI.Dark)
}

func TestLoadHomeConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("HOOKSDEMO_CONFIG", "")
	dir := filepath.Join(home, ".config", "hooksdemo")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[memo]\nmax_input = 10\n"), 0o600))

	c, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, 10, c.Memo.MaxInput)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "[log]\nlevel = \"warn\"\n")
	t.Setenv("HOOKSDEMO_LOG_LEVEL", "debug")
	t.Setenv("HOOKSDEMO_MEMO_CACHE_SIZE", "8")

	c, err := Load([]string{"--config", path})
	require.NoError(t, err)
	require.Equal(t, "debug", c.Log.Level)
	require.Equal(t, 8, c.Memo.CacheSize)
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	isolate(t)
	t.Setenv("HOOKSDEMO_LOG_LEVEL", "warn")

	c, err := Load([]string{"--log-level", "error", "--log-path", "/tmp/hooksdemo.log", "--once", "--dark"})
	require.NoError(t, err)
	require.Equal(t, "error", c.Log.Level)
	require.Equal(t, "/tmp/hooksdemo.log", c.Log.Path)
	require.True(t, c.UI.Once)
	require.True(t, c.UI.Dark)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load([]string{"--config", filepath.Join(t.TempDir(), "missing.toml")})
	require.Error(t, err)
}

func TestLoadUnknownFlag(t *testing.T) {
	isolate(t)
	_, err := Load([]string{"--nope"})
	require.Error(t, err)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "[cart]\nmin_price_cents = 500\nmax_price_cents = 100\n")

	_, err := Load([]string{"--config", path})
	require.ErrorIs(t, err, errPriceRange)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Cart: CartConfig{MinPriceCents: 100, MaxPriceCents: 200},
		Memo: MemoConfig{MaxInput: 5, CacheSize: 1},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"negative min price", func(c *Config) { c.Cart.MinPriceCents = -1 }, errNegPrice},
		{"inverted price range", func(c *Config) { c.Cart.MinPriceCents = 300 }, errPriceRange},
		{"zero cache size", func(c *Config) { c.Memo.CacheSize = 0 }, errCacheSize},
		{"max input overflows", func(c *Config) { c.Memo.MaxInput = 21 }, errMaxInput},
		{"negative load delay", func(c *Config) { c.Effect.LoadDelay = -time.Second }, errLoadDelay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			require.ErrorIs(t, c.Validate(), tt.want)
		})
	}
}
