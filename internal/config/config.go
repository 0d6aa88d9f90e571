package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rusenback/sysmon/internal/model"
)

// MinInterval is the lowest allowed sampling cadence. Anything smaller
// would busy-spin the terminal.
const MinInterval = 100 * time.Millisecond

const (
	DefaultInterval     = 1.0
	DefaultCPUThreshold = 90.0
	DefaultNetThreshold = 50_000_000 // 50 MB/s
)

// Config sisältää sovelluksen konfiguraation
type Config struct {
	Interval   time.Duration
	Simple     bool
	Mode       model.DisplayMode
	Thresholds model.ThresholdConfig
	Debug      bool
	Verbose    bool
}

// Load parses command line flags and merges them over the optional config
// file (SYSMON_CONFIG, /etc/sysmon.toml or ~/.sysmon/sysmon.toml). Flags
// always win over file values.
func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("sysmon", pflag.ContinueOnError)

	interval := fs.Float64P("interval", "i", DefaultInterval, "update interval in seconds")
	simple := fs.BoolP("simple", "s", false, "use simplified view (less detail)")
	noAlerts := fs.BoolP("no-alerts", "n", false, "disable threshold alerts")
	cpuOnly := fs.Bool("cpu-only", false, "display only CPU metrics (default behavior)")
	networkOnly := fs.Bool("network-only", false, "display only network metrics")
	all := fs.Bool("all", false, "display all system metrics (CPU and network)")
	cpuThreshold := fs.Float64("cpu-threshold", DefaultCPUThreshold, "CPU alert threshold in percent")
	netThreshold := fs.Float64("net-threshold", DefaultNetThreshold, "network alert threshold in bytes per second")
	debug := fs.Bool("debug", false, "enable debug logging")
	verbose := fs.Bool("verbose", false, "enable verbose logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	if path := os.Getenv("SYSMON_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("sysmon")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".sysmon"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetDefault("interval", *interval)
	v.SetDefault("simple", *simple)
	v.SetDefault("no-alerts", *noAlerts)
	v.SetDefault("cpu-threshold", *cpuThreshold)
	v.SetDefault("net-threshold", *netThreshold)
	v.SetDefault("debug", *debug)
	v.SetDefault("verbose", *verbose)

	// Override config file values with command line flags
	fs.Visit(func(f *pflag.Flag) {
		v.Set(f.Name, f.Value.String())
	})

	modeFlags := 0
	for _, set := range []bool{*cpuOnly, *networkOnly, *all} {
		if set {
			modeFlags++
		}
	}
	if modeFlags > 1 {
		return nil, errors.New("only one of --cpu-only, --network-only and --all may be given")
	}

	mode := model.ModeCPUOnly
	switch {
	case *networkOnly:
		mode = model.ModeNetworkOnly
	case *all:
		mode = model.ModeAll
	}

	cfg := &Config{
		Simple:  v.GetBool("simple"),
		Mode:    mode,
		Debug:   v.GetBool("debug"),
		Verbose: v.GetBool("verbose"),
		Thresholds: model.ThresholdConfig{
			CPUPercent:     v.GetFloat64("cpu-threshold"),
			NetBytesPerSec: v.GetFloat64("net-threshold"),
			Enabled:        !v.GetBool("no-alerts"),
		},
	}

	if cfg.Thresholds.CPUPercent <= 0 || cfg.Thresholds.CPUPercent > 100 {
		return nil, fmt.Errorf("cpu-threshold must be within (0, 100], got %v", cfg.Thresholds.CPUPercent)
	}
	if cfg.Thresholds.NetBytesPerSec <= 0 {
		return nil, fmt.Errorf("net-threshold must be positive, got %v", cfg.Thresholds.NetBytesPerSec)
	}

	// A non-positive or implausibly small interval is clamped rather than
	// rejected so the loop can never busy-spin.
	cfg.Interval = time.Duration(v.GetFloat64("interval") * float64(time.Second))
	if cfg.Interval < MinInterval {
		cfg.Interval = MinInterval
	}

	return cfg, nil
}
