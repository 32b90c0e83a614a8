package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/HarshaSuranjith/react-hooks-demo/internal/config"
	"github.com/HarshaSuranjith/react-hooks-demo/internal/tui"
)

func TestRunOncePrintsSnapshot(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("HOOKSDEMO_CONFIG", "")
	out, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer out.Close()

	require.NoError(t, run([]string{"--once"}, out))

	data, err := os.ReadFile(out.Name())
	require.NoError(t, err)
	for _, title := range []string{"State", "Effect", "Ref", "Memo", "Reducer"} {
		require.Contains(t, string(data), title)
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[memo]\ncache_size = 0\n"), 0o600))

	err := run([]string{"--config", path, "--once"}, os.Stdout)
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "cache_size"))
}

func TestSnapshotClosesApp(t *testing.T) {
	cfg := config.Config{
		Cart: config.CartConfig{MinPriceCents: 1000, MaxPriceCents: 2000},
		Memo: config.MemoConfig{MaxInput: 10, CacheSize: 2},
	}
	app, err := tui.New(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, snapshot(app, &b))
	require.Contains(t, b.String(), "Common gotchas")
	require.Empty(t, app.View())
}
