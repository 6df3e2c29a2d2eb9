// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tollmatrix/fleet"
	"github.com/katalvlaran/tollmatrix/matrix"
	"github.com/katalvlaran/tollmatrix/rates"
	"github.com/katalvlaran/tollmatrix/threshold"
	"github.com/katalvlaran/tollmatrix/week"
)

// Config is the whole tollmatrix.yaml document.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Matrix    MatrixConfig    `yaml:"matrix"`
	Threshold ThresholdConfig `yaml:"threshold"`
	Rates     RatesConfig     `yaml:"rates"`
	Fleet     FleetConfig     `yaml:"fleet"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	// Level is one of: debug | info | warn | error.
	Level string `yaml:"level"`

	// Format is one of: text | json.
	Format string `yaml:"format"`
}

// MatrixConfig drives the pairwise builder.
type MatrixConfig struct {
	Reconcile string  `yaml:"reconcile"`
	Directed  bool    `yaml:"directed"`
	Epsilon   float64 `yaml:"epsilon"`

	// Cumulative replaces each cell with the shortest chain of observed legs.
	Cumulative bool `yaml:"cumulative"`
}

// ThresholdConfig drives the proximity filter.
type ThresholdConfig struct {
	Band             float64 `yaml:"band"`
	ExcludeReference bool    `yaml:"exclude_reference"`
}

// CategoryConfig is one vehicle class.
type CategoryConfig struct {
	Name        string  `yaml:"name"`
	Coefficient float64 `yaml:"coefficient"`
}

// WindowConfig is one daily time window; it runs until the next start.
type WindowConfig struct {
	// Start is a "15:04:05" clock. The first window must start at 00:00:00.
	Start  string  `yaml:"start"`
	Factor float64 `yaml:"factor"`
}

// RatesConfig drives the rate engine.
type RatesConfig struct {
	Categories    []CategoryConfig `yaml:"categories"`
	Windows       []WindowConfig   `yaml:"windows"`
	WeekendFactor float64          `yaml:"weekend_factor"`
	WindowPolicy  string           `yaml:"window_policy"`
	WeekendPolicy string           `yaml:"weekend_policy"`
}

// FleetConfig holds the vehicle-count helper parameters.
type FleetConfig struct {
	BusFactor  float64 `yaml:"bus_factor"`
	TruckMin   float64 `yaml:"truck_min"`
	ScalePivot float64 `yaml:"scale_pivot"`
	ScaleAbove float64 `yaml:"scale_above"`
	ScaleBelow float64 `yaml:"scale_below"`
}

// Default values not owned by a domain package.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Load reads and parses the config file at path.
// Missing fields are filled with defaults before validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	return Parse(data)
}

// Parse is Load for an in-memory document.
func Parse(data []byte) (*Config, error) {
	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config { return defaults() }

// defaults returns a Config pre-populated with default values.
func defaults() *Config {
	cats := rates.DefaultCategories()
	cc := make([]CategoryConfig, len(cats))
	for i, c := range cats {
		cc[i] = CategoryConfig{Name: c.Name, Coefficient: c.Coefficient}
	}
	wins := rates.DefaultWindows()
	wc := make([]WindowConfig, len(wins))
	for i, w := range wins {
		wc[i] = WindowConfig{Start: week.FormatClock(w.Start), Factor: w.Factor}
	}

	return &Config{
		Log: LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Matrix: MatrixConfig{
			Reconcile: matrix.DefaultReconcile.String(),
			Directed:  matrix.DefaultDirected,
			Epsilon:   matrix.DefaultEpsilon,
		},
		Threshold: ThresholdConfig{Band: threshold.DefaultBand},
		Rates: RatesConfig{
			Categories:    cc,
			Windows:       wc,
			WeekendFactor: rates.DefaultWeekendFactor,
			WindowPolicy:  rates.WindowByStart.String(),
			WeekendPolicy: rates.WeekendOverride.String(),
		},
		Fleet: FleetConfig{
			BusFactor:  fleet.DefaultBusFactor,
			TruckMin:   fleet.DefaultTruckMin,
			ScalePivot: fleet.DefaultScalePivot,
			ScaleAbove: fleet.DefaultScaleAbove,
			ScaleBelow: fleet.DefaultScaleBelow,
		},
	}
}

func finiteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// validate checks structural constraints on the parsed configuration.
func validate(cfg *Config) error {
	if _, err := ParseLevel(cfg.Log.Level); err != nil {
		return err
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q unknown: want text|json", cfg.Log.Format)
	}
	if _, err := matrix.ParseReconcile(cfg.Matrix.Reconcile); err != nil {
		return fmt.Errorf("matrix.reconcile: %w", err)
	}
	if !finiteNonNegative(cfg.Matrix.Epsilon) {
		return fmt.Errorf("matrix.epsilon %v must be finite and >= 0", cfg.Matrix.Epsilon)
	}
	if !finiteNonNegative(cfg.Threshold.Band) {
		return fmt.Errorf("threshold.band %v must be finite and >= 0", cfg.Threshold.Band)
	}
	if _, err := cfg.RateEngine(); err != nil {
		return fmt.Errorf("rates: %w", err)
	}
	for name, v := range map[string]float64{
		"fleet.bus_factor":  cfg.Fleet.BusFactor,
		"fleet.scale_pivot": cfg.Fleet.ScalePivot,
		"fleet.scale_above": cfg.Fleet.ScaleAbove,
		"fleet.scale_below": cfg.Fleet.ScaleBelow,
	} {
		if !finiteNonNegative(v) {
			return fmt.Errorf("%s %v must be finite and >= 0", name, v)
		}
	}

	return nil
}

// ParseLevel maps a level name onto slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log.level %q unknown: want debug|info|warn|error", s)
	}
}

// MatrixOptions translates the matrix section into builder options.
func (c *Config) MatrixOptions() ([]matrix.Option, error) {
	r, err := matrix.ParseReconcile(c.Matrix.Reconcile)
	if err != nil {
		return nil, err
	}
	opts := []matrix.Option{matrix.WithReconcile(r), matrix.WithEpsilon(c.Matrix.Epsilon)}
	if c.Matrix.Directed {
		opts = append(opts, matrix.WithDirected())
	} else {
		opts = append(opts, matrix.WithUndirected())
	}

	return opts, nil
}

// ThresholdOptions translates the threshold section into filter options.
func (c *Config) ThresholdOptions() []threshold.Option {
	opts := []threshold.Option{threshold.WithBand(c.Threshold.Band)}
	if c.Threshold.ExcludeReference {
		opts = append(opts, threshold.ExcludeReference())
	}

	return opts
}

// RateEngine builds the engine described by the rates section.
func (c *Config) RateEngine() (*rates.Engine, error) {
	cats := make([]rates.Category, len(c.Rates.Categories))
	for i, cc := range c.Rates.Categories {
		cats[i] = rates.Category{Name: cc.Name, Coefficient: cc.Coefficient}
	}
	wins := make([]rates.Window, len(c.Rates.Windows))
	for i, wc := range c.Rates.Windows {
		start, err := week.ParseClock(wc.Start)
		if err != nil {
			return nil, fmt.Errorf("window %d: %w", i, err)
		}
		wins[i] = rates.Window{Start: start, Factor: wc.Factor}
	}
	wp, err := rates.ParseWindowPolicy(c.Rates.WindowPolicy)
	if err != nil {
		return nil, err
	}
	kp, err := rates.ParseWeekendPolicy(c.Rates.WeekendPolicy)
	if err != nil {
		return nil, err
	}

	return rates.New(
		rates.WithCategories(cats),
		rates.WithWindows(wins),
		rates.WithWeekendFactor(c.Rates.WeekendFactor),
		rates.WithWindowPolicy(wp),
		rates.WithWeekendPolicy(kp),
	)
}
