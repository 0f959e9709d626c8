// Package config gathers the settings for reading PDB files.
// Priority: defaults, then a YAML file, then PDBINPUT_* environment
// variables. The environment wins.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/andrew-torda/pdbinput/pdb/oldfmt"
)

const EnvPrefix = "PDBINPUT"

// Config is everything a user can set.
type Config struct {
	Layout    LayoutConfig    `yaml:"layout" mapstructure:"layout"`
	Hierarchy HierarchyConfig `yaml:"hierarchy" mapstructure:"hierarchy"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
	Scan      ScanConfig      `yaml:"scan" mapstructure:"scan"`
}

// LayoutConfig has the thresholds for deciding if columns 73-76 are
// junk from an old style file.
type LayoutConfig struct {
	ThresholdAtom  int `yaml:"threshold_atom" mapstructure:"threshold_atom"`
	ThresholdOther int `yaml:"threshold_other" mapstructure:"threshold_other"`
}

// HierarchyConfig says how the tree is built.
type HierarchyConfig struct {
	PostProcess bool `yaml:"post_process" mapstructure:"post_process"`
	TerBreaks   bool `yaml:"ter_breaks" mapstructure:"ter_breaks"` // TER also acts as BREAK
}

// LogConfig is passed to pdb.LogWhere
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // text or json
	Dest   string `yaml:"dest" mapstructure:"dest"`     // "", stdout, stderr or a file name
}

// ScanConfig is for walking directories of files.
type ScanConfig struct {
	Readers int    `yaml:"readers" mapstructure:"readers"`
	Pattern string `yaml:"pattern" mapstructure:"pattern"` // glob on file names
}

// Default is what you get with no file and no environment.
func Default() *Config {
	return &Config{
		Layout: LayoutConfig{
			ThresholdAtom:  oldfmt.DfltThresholdAtom,
			ThresholdOther: oldfmt.DfltThresholdOther,
		},
		Hierarchy: HierarchyConfig{PostProcess: true},
		Log:       LogConfig{Level: "warn", Format: "text", Dest: "stderr"},
		Scan:      ScanConfig{Readers: 4, Pattern: "*.{pdb,ent,pdb.gz,ent.gz,pdb.xz,ent.xz}"},
	}
}

var (
	ErrThreshold = errors.New("negative threshold")
	ErrReaders   = errors.New("need at least one reader")
)

// Validate checks the numbers. Log level and format are checked when
// the logger is made.
func Validate(c *Config) error {
	var errs []error
	if c.Layout.ThresholdAtom < 0 {
		errs = append(errs, fmt.Errorf("layout.threshold_atom %d: %w", c.Layout.ThresholdAtom, ErrThreshold))
	}
	if c.Layout.ThresholdOther < 0 {
		errs = append(errs, fmt.Errorf("layout.threshold_other %d: %w", c.Layout.ThresholdOther, ErrThreshold))
	}
	if c.Scan.Readers < 1 {
		errs = append(errs, fmt.Errorf("scan.readers %d: %w", c.Scan.Readers, ErrReaders))
	}
	return errors.Join(errs...)
}

// Options turns the config into reading options.
func (c *Config) Options() *oldfmt.Options {
	return &oldfmt.Options{
		ThresholdAtom:  c.Layout.ThresholdAtom,
		ThresholdOther: c.Layout.ThresholdOther,
		TerBreaks:      c.Hierarchy.TerBreaks,
	}
}

var keys = []string{
	"layout.threshold_atom", "layout.threshold_other",
	"hierarchy.post_process", "hierarchy.ter_breaks",
	"log.level", "log.format", "log.dest",
	"scan.readers", "scan.pattern",
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("layout.threshold_atom", d.Layout.ThresholdAtom)
	v.SetDefault("layout.threshold_other", d.Layout.ThresholdOther)
	v.SetDefault("hierarchy.post_process", d.Hierarchy.PostProcess)
	v.SetDefault("hierarchy.ter_breaks", d.Hierarchy.TerBreaks)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.dest", d.Log.Dest)
	v.SetDefault("scan.readers", d.Scan.Readers)
	v.SetDefault("scan.pattern", d.Scan.Pattern)
}

// Load reads fname if it is not empty. A missing named file is an
// error, since somebody asked for it.
func Load(fname string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, err
		}
	}
	setDefaults(v)

	if fname != "" {
		v.SetConfigFile(fname)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", fname, err)
		}
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
