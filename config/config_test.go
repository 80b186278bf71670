package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, [2]float64{0, 900}, cfg.Physics.Gravity)
	assert.Equal(t, 0.8, cfg.Physics.Damping)
	assert.Equal(t, 50.0, cfg.Physics.FPS)
	assert.Equal(t, "MAP_BODY.png", cfg.Level.MapBodyRawFile)

	// Each call hands out an independent value.
	cfg.Physics.FPS = 1
	assert.Equal(t, 50.0, Default().Physics.FPS)
}

func TestLoad_Overlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preprocess.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "physics": {"fps": 60, "gravity": [0, 500]},
  "parser": {"workers": 4}
}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 60.0, cfg.Physics.FPS)
	assert.Equal(t, [2]float64{0, 500}, cfg.Physics.Gravity)
	assert.Equal(t, 4, cfg.Parser.Workers)
	// Untouched fields keep defaults.
	assert.Equal(t, 0.8, cfg.Physics.Damping)
	assert.Equal(t, "CONFIG.json", cfg.Level.ConfigFile)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "cfg.yaml"))
	assert.ErrorContains(t, err, ".json extension")

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.ErrorContains(t, err, "stat")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"physics":`), 0o644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "parse")

	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"physics":{"fps":0},"parser":{"workers":-1}}`), 0o644))
	_, err = Load(invalid)
	assert.ErrorContains(t, err, "physics.fps")
	assert.ErrorContains(t, err, "parser.workers")
}
