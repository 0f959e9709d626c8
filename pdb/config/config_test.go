package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/pdbinput/pdb/config"
	"github.com/andrew-torda/pdbinput/pdb/oldfmt"
)

func writeYaml(t *testing.T, s string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "pdbinput.yaml")
	require.NoError(t, os.WriteFile(fname, []byte(s), 0o644))
	return fname
}

func TestDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, oldfmt.DefaultOptions(), cfg.Options())
	assert.True(t, cfg.Hierarchy.PostProcess)
}

func TestLoadFile(t *testing.T) {
	fname := writeYaml(t, `
layout:
  threshold_atom: 10
hierarchy:
  post_process: false
  ter_breaks: true
scan:
  readers: 2
`)
	cfg, err := config.Load(fname)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Layout.ThresholdAtom)
	assert.Equal(t, oldfmt.DfltThresholdOther, cfg.Layout.ThresholdOther, "unset keys keep defaults")
	assert.False(t, cfg.Hierarchy.PostProcess)
	assert.Equal(t, 2, cfg.Scan.Readers)
	opts := cfg.Options()
	assert.True(t, opts.TerBreaks)
	assert.Equal(t, 10, opts.ThresholdAtom)
}

func TestEnvironmentWins(t *testing.T) {
	fname := writeYaml(t, "layout:\n  threshold_atom: 10\nlog:\n  level: info\n")
	t.Setenv("PDBINPUT_LAYOUT_THRESHOLD_ATOM", "20")
	t.Setenv("PDBINPUT_LOG_FORMAT", "json")
	cfg, err := config.Load(fname)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Layout.ThresholdAtom)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = config.Load(writeYaml(t, "layout: [unclosed\n"))
	assert.Error(t, err)

	_, err = config.Load(writeYaml(t, "scan:\n  readers: 0\n"))
	assert.ErrorIs(t, err, config.ErrReaders)
}

func TestValidate(t *testing.T) {
	c := config.Default()
	require.NoError(t, config.Validate(c))
	c.Layout.ThresholdAtom = -1
	c.Layout.ThresholdOther = -1
	err := config.Validate(c)
	assert.ErrorIs(t, err, config.ErrThreshold)
	assert.Contains(t, err.Error(), "threshold_atom")
	assert.Contains(t, err.Error(), "threshold_other")
}
