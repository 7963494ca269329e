package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	location, first, last := cfg.Source.Get()
	assert.Equal(t, "http://www.gutenberg.org/cache/epub/38700/pg38700.txt", location)
	assert.Equal(t, "SAB", first)
	assert.Equal(t, "SYZYGY", last)

	maxWord, maxDef := cfg.Limits.Get()
	assert.Equal(t, 64, maxWord)
	assert.Equal(t, 20000, maxDef)

	assert.Equal(t, "> ", cfg.Interface.GetPrompt())
	assert.False(t, cfg.Interface.IsStyled())
	assert.Equal(t, "info", cfg.Interface.GetLogLevel())
}

func TestLoadOverridesAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `sections:
  source:
    location: /tmp/chambers.txt
    last_word: SAKE
  limits:
    max_definition: 500
  interface:
    styled: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	location, first, last := cfg.Source.Get()
	assert.Equal(t, "/tmp/chambers.txt", location)
	assert.Equal(t, "SAB", first, "unset keys keep defaults")
	assert.Equal(t, "SAKE", last)

	_, maxDef := cfg.Limits.Get()
	assert.Equal(t, 500, maxDef)
	assert.True(t, cfg.Interface.IsStyled())

	cfg.Interface.Prompt = "? "
	require.NoError(t, cfg.Save())

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "? ", reloaded.Interface.GetPrompt())
	_, maxDef = reloaded.Limits.Get()
	assert.Equal(t, 500, maxDef)
}

func TestLoadInvalidValueType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sections:\n  limits:\n    max_word: lots\n"), 0600))

	_, err := Load(path)
	assert.ErrorContains(t, err, "max_word")
}

func TestSectionValidation(t *testing.T) {
	source := NewSourceSection()
	require.NoError(t, source.Validate())
	require.NoError(t, source.SetData(map[string]interface{}{"location": "  "}))
	assert.Error(t, source.Validate())
	assert.Error(t, source.SetData(map[string]interface{}{"first_word": 3}))

	limits := NewLimitsSection()
	require.NoError(t, limits.SetData(map[string]interface{}{"max_word": 0}))
	assert.ErrorContains(t, limits.Validate(), "max_word")
	require.NoError(t, limits.SetData(map[string]interface{}{"max_word": 12.0}))
	assert.NoError(t, limits.Validate())
	assert.Error(t, limits.SetData(map[string]interface{}{"max_definition": 1.5}))

	iface := NewInterfaceSection()
	require.NoError(t, iface.SetData(map[string]interface{}{"log_level": "verbose"}))
	assert.Error(t, iface.Validate())
	assert.Error(t, iface.SetData(map[string]interface{}{"styled": "yes"}))

	iface.Reset()
	assert.NoError(t, iface.Validate())
	assert.Equal(t, "info", iface.GetLogLevel())
}
