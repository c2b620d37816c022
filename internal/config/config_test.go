package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"handlecalc/internal/layout"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "mm", cfg.Unit)
	assert.Equal(t, 1, cfg.Precision)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, 3, cfg.DiagramOptions().Scale)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, layout.Millimeter, cfg.DisplayUnit())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HANDLECALC_UNIT", "in")
	t.Setenv("HANDLECALC_PRECISION", "3")
	t.Setenv("HANDLECALC_OUTPUT_DIR", "/tmp/strips")
	t.Setenv("HANDLECALC_DIAGRAM_SCALE", "2")
	t.Setenv("HANDLECALC_LOG_FILE", "debug.log")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, layout.Inch, cfg.DisplayUnit())
	assert.Equal(t, 3, cfg.Precision)
	assert.Equal(t, "/tmp/strips", cfg.OutputDir)
	assert.Equal(t, 2, cfg.DiagramScale)
	assert.Equal(t, "debug.log", cfg.LogFile)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string][2]string{
		"unit":         {"HANDLECALC_UNIT", "cm"},
		"precision":    {"HANDLECALC_PRECISION", "-1"},
		"not a number": {"HANDLECALC_PRECISION", "two"},
		"scale":        {"HANDLECALC_DIAGRAM_SCALE", "0"},
		"scale large":  {"HANDLECALC_DIAGRAM_SCALE", "9"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
