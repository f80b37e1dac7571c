package configwatcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Riaraujo/testecrud/internal/config"
	"github.com/Riaraujo/testecrud/pkg/configwatcher"
	"github.com/stretchr/testify/require"
)

func TestWatchConfig_Reloads(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QUESTOES_STORAGE_LOCAL_PATH", filepath.Join(dir, "uploads"))
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database:\n  driver: memory\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *config.Config, 8)
	go configwatcher.WatchConfig(ctx, path, func(cfg *config.Config) {
		reloaded <- cfg
	})

	updated := []byte("database:\n  driver: memory\nprovisioning:\n  second_day_threshold: 45\n")
	var got *config.Config
	// the watcher may not be registered yet, so keep rewriting past the
	// one second debounce until a reload comes through
	require.Eventually(t, func() bool {
		select {
		case got = <-reloaded:
			return true
		default:
		}
		_ = os.WriteFile(path, updated, 0o644)
		return false
	}, 10*time.Second, 1500*time.Millisecond)

	require.Equal(t, 45, got.Provisioning.SecondDayThreshold)
}
