package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Riaraujo/testecrud/internal/config"
	"github.com/stretchr/testify/require"
)

// isolate points uploads at a temp dir so loading never touches the
// package directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("QUESTOES_STORAGE_LOCAL_PATH", filepath.Join(dir, "uploads"))
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	require.Equal(t, "3000", cfg.Server.Port)
	require.Equal(t, "mongo", cfg.Database.Driver)
	require.Equal(t, "mongodb://localhost:27017", cfg.Database.MongoURI)
	require.Equal(t, "questoes", cfg.Database.MongoDatabase)
	require.Equal(t, 10*time.Second, cfg.Database.Timeout)
	require.Equal(t, 90, cfg.Provisioning.SecondDayThreshold)
	require.Equal(t, "ENEM {ano}", cfg.Provisioning.FolderTemplate)
	require.Equal(t, config.DefaultAllowedOrigins, cfg.CORS.AllowedOrigins)
	require.Equal(t, 20, cfg.Redis.PoolSize)
	require.Equal(t, "questoes-api", cfg.Tracing.ServiceName)
	require.Equal(t, 1.0, cfg.Tracing.SampleRatio)
	require.Equal(t, "logs/app.log", cfg.Log.File)
	require.Empty(t, cfg.Path)

	_, err = os.Stat(filepath.Join(dir, "uploads"))
	require.NoError(t, err)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	dir := isolate(t)
	t.Setenv("PORT", "8081")
	t.Setenv("MONGODB_URI", "mongodb://db:27017/?replicaSet=rs0")
	t.Setenv("DATABASE_DRIVER", "memory")
	t.Setenv("QUESTOES_PROVISIONING_SECOND_DAY_THRESHOLD", "95")

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)
	require.Equal(t, "8081", cfg.Server.Port)
	require.Equal(t, "mongodb://db:27017/?replicaSet=rs0", cfg.Database.MongoURI)
	require.Equal(t, "memory", cfg.Database.Driver)
	require.Equal(t, 95, cfg.Provisioning.SecondDayThreshold)
}

func TestLoadConfig_File(t *testing.T) {
	dir := isolate(t)
	yaml := `
server:
  port: "4000"
database:
  driver: memory
  seed: true
provisioning:
  folder_template: "Vestibular {ano}"
  exam_template: "Vestibular {ano} - dia {dia}"
  second_day_threshold: 45
cors:
  allowed_origins:
    - https://example.org
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)
	require.Equal(t, "4000", cfg.Server.Port)
	require.True(t, cfg.Database.Seed)
	require.Equal(t, "Vestibular {ano}", cfg.Provisioning.FolderTemplate)
	require.Equal(t, 45, cfg.Provisioning.SecondDayThreshold)
	require.Equal(t, []string{"https://example.org"}, cfg.CORS.AllowedOrigins)
	require.Equal(t, filepath.Join(dir, "config.yaml"), cfg.Path)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown driver", map[string]string{"DATABASE_DRIVER": "postgres"}},
		{"threshold", map[string]string{"QUESTOES_PROVISIONING_SECOND_DAY_THRESHOLD": "0"}},
		{"folder template", map[string]string{"QUESTOES_PROVISIONING_FOLDER_TEMPLATE": "ENEM"}},
		{"sample ratio", map[string]string{"QUESTOES_TRACING_SAMPLE_RATIO": "1.5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := config.LoadConfig(dir)
			require.Error(t, err)
		})
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [oops"), 0o644))

	_, err := config.LoadConfig(dir)
	require.Error(t, err)
}
