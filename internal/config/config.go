// Package config loads matverify.yaml. A missing file yields DefaultConfig;
// CLI flags override whatever the file sets.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/matverify/cases"
	"github.com/katalvlaran/matverify/plot"
	"github.com/katalvlaran/matverify/timing"
)

// DefaultPath is read when --config is not given.
const DefaultPath = "matverify.yaml"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the whole file.
type Config struct {
	Root     string        `yaml:"root"`
	Topology string        `yaml:"topology"` // flat, nested
	Order    string        `yaml:"order"`    // lexical, natural
	Files    FilesConfig   `yaml:"files"`
	Report   string        `yaml:"report"`
	Timing   TimingConfig  `yaml:"timing"`
	Plot     PlotConfig    `yaml:"plot"`
	Logging  LoggingConfig `yaml:"logging"`
	Watch    WatchConfig   `yaml:"watch"`
}

// FilesConfig names the three files of a set folder.
type FilesConfig struct {
	A string `yaml:"a"`
	B string `yaml:"b"`
	C string `yaml:"c"`
}

// TimingConfig lists the timing sources, read relative to Dir.
type TimingConfig struct {
	Dir     string         `yaml:"dir"`
	Sources []SourceConfig `yaml:"sources"`
}

// Source kinds.
const (
	KindColumns    = "columns"
	KindTable      = "table"
	KindAuto       = "auto"
	KindThreadLogs = "thread_logs"
	KindTriples    = "triples"
)

// SourceConfig describes one timing source. Which fields apply depends on Kind.
type SourceConfig struct {
	Kind        string `yaml:"kind"`
	Path        string `yaml:"path,omitempty"`        // columns, table, auto
	Parallelism int    `yaml:"parallelism,omitempty"` // columns, auto
	Glob        string `yaml:"glob,omitempty"`        // triples
	Counts      []int  `yaml:"counts,omitempty"`      // thread_logs
	NameFormat  string `yaml:"name_format,omitempty"` // thread_logs
	Pattern     string `yaml:"pattern,omitempty"`     // thread_logs
}

// PlotConfig controls the scaling image.
type PlotConfig struct {
	Path   string  `yaml:"path"`
	Title  string  `yaml:"title"`
	XLabel string  `yaml:"x_label"`
	YLabel string  `yaml:"y_label"`
	Width  float64 `yaml:"width"`  // inches
	Height float64 `yaml:"height"` // inches
}

// LoggingConfig holds the zap level.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// WatchConfig holds the re-verification debounce, a time.ParseDuration string.
type WatchConfig struct {
	Debounce string `yaml:"debounce"`
}

// DefaultConfig mirrors the lab layout: flat cases under the working
// directory and the three timing producers' default file names.
func DefaultConfig() *Config {
	po := plot.DefaultOptions()

	return &Config{
		Root:     ".",
		Topology: cases.Flat.String(),
		Order:    cases.Lexical.String(),
		Files: FilesConfig{
			A: cases.DefaultFileNames.A,
			B: cases.DefaultFileNames.B,
			C: cases.DefaultFileNames.C,
		},
		Report: "results.txt",
		Timing: TimingConfig{
			Dir: ".",
			Sources: []SourceConfig{
				{Kind: KindAuto, Path: "timings.txt"},
				{Kind: KindThreadLogs},
				{Kind: KindTriples},
			},
		},
		Plot: PlotConfig{
			Path:   "timing_plot.png",
			Title:  po.Title,
			XLabel: po.XLabel,
			YLabel: po.YLabel,
			Width:  po.Width,
			Height: po.Height,
		},
		Logging: LoggingConfig{Level: "info"},
		Watch:   WatchConfig{Debounce: "500ms"},
	}
}

// Load reads path over DefaultConfig. A missing file is not an error; the
// environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the config as YAML, creating the parent directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides lets MATVERIFY_ROOT and MATVERIFY_LOG_LEVEL win over the file.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("MATVERIFY_ROOT"); v != "" {
		c.Root = v
	}
	if v := os.Getenv("MATVERIFY_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks every enum, duration and source definition.
func (c *Config) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("%w: root is empty", ErrInvalid)
	}
	if _, err := c.CaseOptions(); err != nil {
		return err
	}
	if _, err := c.TimingSources(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if _, err := c.Debounce(); err != nil {
		return err
	}
	if c.Plot.Width < 0 || c.Plot.Height < 0 {
		return fmt.Errorf("%w: plot size %gx%g", ErrInvalid, c.Plot.Width, c.Plot.Height)
	}

	return nil
}

// CaseOptions converts topology, order and file names for cases.Enumerate.
func (c *Config) CaseOptions() ([]cases.Option, error) {
	topo, err := cases.ParseTopology(c.Topology)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	ord, err := cases.ParseOrder(c.Order)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return []cases.Option{
		cases.WithTopology(topo),
		cases.WithOrder(ord),
		cases.WithFileNames(cases.FileNames{A: c.Files.A, B: c.Files.B, C: c.Files.C}),
	}, nil
}

// TimingSources builds one timing.Source per entry, in file order.
func (c *Config) TimingSources() ([]timing.Source, error) {
	out := make([]timing.Source, 0, len(c.Timing.Sources))
	for i, s := range c.Timing.Sources {
		src, err := s.Source()
		if err != nil {
			return nil, fmt.Errorf("%w: timing.sources[%d]: %w", ErrInvalid, i, err)
		}
		out = append(out, src)
	}

	return out, nil
}

// Source converts one entry.
func (s SourceConfig) Source() (timing.Source, error) {
	needPath := func() error {
		if s.Path == "" {
			return fmt.Errorf("kind %q needs a path", s.Kind)
		}
		return nil
	}
	switch s.Kind {
	case KindColumns:
		if err := needPath(); err != nil {
			return nil, err
		}
		return timing.ColumnsFile{Path: s.Path, Parallelism: s.Parallelism}, nil
	case KindTable:
		if err := needPath(); err != nil {
			return nil, err
		}
		return timing.TableFile{Path: s.Path}, nil
	case KindAuto:
		if err := needPath(); err != nil {
			return nil, err
		}
		return timing.Auto{Path: s.Path, Parallelism: s.Parallelism}, nil
	case KindThreadLogs:
		for _, n := range s.Counts {
			if n < 1 {
				return nil, fmt.Errorf("thread count %d < 1", n)
			}
		}
		return timing.ThreadLogs{Counts: s.Counts, NameFormat: s.NameFormat, Pattern: s.Pattern}, nil
	case KindTriples:
		return timing.Triples{Glob: s.Glob}, nil
	default:
		return nil, fmt.Errorf("unknown kind %q", s.Kind)
	}
}

// PlotOptions converts the plot section.
func (c *Config) PlotOptions() []plot.Option {
	return []plot.Option{
		plot.WithTitle(c.Plot.Title),
		plot.WithLabels(c.Plot.XLabel, c.Plot.YLabel),
		plot.WithSize(c.Plot.Width, c.Plot.Height),
	}
}

// LogLevel parses logging.level; empty means info.
func (c *Config) LogLevel() (zapcore.Level, error) {
	if c.Logging.Level == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("%w: logging.level: %w", ErrInvalid, err)
	}

	return lvl, nil
}

// Debounce parses watch.debounce; empty means 500ms.
func (c *Config) Debounce() (time.Duration, error) {
	if c.Watch.Debounce == "" {
		return 500 * time.Millisecond, nil
	}
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: watch.debounce %q", ErrInvalid, c.Watch.Debounce)
	}

	return d, nil
}
