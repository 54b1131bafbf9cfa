package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "etiketka.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	geo := cfg.Geometry()
	assert.Equal(t, 120.0, geo.PageWidth)
	assert.Equal(t, 40.0, geo.LabelWidth)
	assert.Equal(t, 3, geo.LabelsPerPage)
	assert.True(t, cfg.Label.UseStockQuantity)
}

func TestSampleConfigMatchesDefaults(t *testing.T) {
	cfg := Default()
	require.NoError(t, toml.Unmarshal([]byte(Sample()), &cfg))
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := writeConfig(t, `
[label]
labels_per_page = 2
label_width_mm = 60.0

[logging]
level = "debug"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Label.LabelsPerPage)
	assert.Equal(t, 60.0, cfg.Label.LabelWidthMM)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// untouched keys keep their defaults
	assert.Equal(t, "labels.pdf", cfg.Label.OutputFile)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadRejectsOverfullPage(t *testing.T) {
	path := writeConfig(t, `
[label]
labels_per_page = 4
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "do not fit")
}

func TestLoadRejectsUnknownPlaceholder(t *testing.T) {
	path := writeConfig(t, `
[templates]
price = "ЦЕНА: ${cost} руб"
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "${cost}")
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	path := writeConfig(t, `
[logging]
level = "verbose"
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := Default()
	cfg.Database.User = "shop"
	cfg.Database.Password = "secret"
	cfg.Database.Name = "wp"
	assert.Equal(t, "shop:secret@tcp(127.0.0.1:3306)/wp?charset=utf8mb4&parseTime=true", cfg.DSN())

	cfg.Database.DSN = "override"
	assert.Equal(t, "override", cfg.DSN())
}

func TestDSNEnvOverride(t *testing.T) {
	t.Setenv("DATABASE_DSN", "env-dsn")
	path := writeConfig(t, `
[database]
dsn = "file-dsn"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-dsn", cfg.DSN())
}

func TestKeywordTableOverride(t *testing.T) {
	cfg := Default()
	builtin := cfg.KeywordTable()
	require.NotEmpty(t, builtin)
	assert.Equal(t, "длина от плеча", builtin[0].Phrase)

	cfg.Measurements.Keywords = []Keyword{{Phrase: "ширина", Label: "ширина"}}
	table := cfg.KeywordTable()
	require.Len(t, table, 1)
	assert.Equal(t, "ширина", table[0].Phrase)
}
