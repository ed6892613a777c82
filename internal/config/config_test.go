package config

import (
	"os"
	"path/filepath"
	"testing"

	"SketchBoard/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[style]
stroke_color = "#ff0000"
stroke_width = 3
tool = "ellipse"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", cfg.Style.StrokeColor)
	assert.Equal(t, 3.0, cfg.Style.StrokeWidth)
	assert.Equal(t, string(state.KindEllipse), cfg.Style.Tool)
	assert.Equal(t, 1.0, cfg.Style.Roughness, "unset keys keep their default")
	assert.Equal(t, 1024.0, cfg.Window.Width)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"syntax":       "[style\n",
		"stroke width": "[style]\nstroke_width = 0\n",
		"tool":         "[style]\ntool = \"triangle\"\n",
		"window":       "[window]\nwidth = -1\n",
		"background":   "[window]\nbackground = \"plaid\"\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Style.FillColor = "yellow"

	require.NoError(t, cfg.Save(path))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestTransformUsesWindowSize(t *testing.T) {
	w, h := Default().Transform().Size()
	assert.Equal(t, 1024.0, w)
	assert.Equal(t, 768.0, h)
}
