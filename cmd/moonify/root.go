package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/chrissnell/moonify/internal/ephemeris"
	"github.com/chrissnell/moonify/internal/log"
	"github.com/chrissnell/moonify/internal/sampler"
	"github.com/chrissnell/moonify/internal/scene"
	"github.com/chrissnell/moonify/internal/timeline"
	"github.com/chrissnell/moonify/pkg/config"
)

var rootCmd = &cobra.Command{
	Use:   "moonify",
	Short: "Moon position and illumination over a 24-hour timeline",
	Long: "moonify samples the Moon's altitude across a day, finds rise and set, and lets you " +
		"scrub through time in the terminal or dump render frames as JSON or MessagePack.",
	SilenceUsage: true,
	RunE:         runTUI,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "moonify.yaml", "config file")
	pf.Float64(config.KeyLatitude, 0, "observer latitude in degrees, north positive")
	pf.Float64(config.KeyLongitude, 0, "observer longitude in degrees, east positive")
	pf.String(config.KeyTimezone, "", "IANA timezone for calendar days (default: local)")
	pf.Bool(config.KeyDebug, false, "debug logging")
	pf.String(config.KeyLogFile, "", "write logs to a rotating file")
	pf.Int(config.KeyStep, 0, "sampling step in minutes")
	pf.String("date", "", "day to show, YYYY-MM-DD (default: today)")
	pf.String("time", "", "time of day to select, HH:MM (default: now)")

	for _, k := range []string{config.KeyLatitude, config.KeyLongitude, config.KeyTimezone, config.KeyDebug, config.KeyLogFile, config.KeyStep} {
		_ = viper.BindPFlag(k, pf.Lookup(k))
	}

	rootCmd.AddCommand(tuiCmd, frameCmd, samplesCmd, risesetCmd, phaseCmd)
}

func initConfig() {
	viper.SetEnvPrefix("MOONIFY")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// app is the wiring shared by every subcommand.
type app struct {
	cfg      *config.ConfigData
	loc      *time.Location
	src      ephemeris.Source
	cache    *sampler.Cache
	composer *scene.Composer
	logger   *zap.SugaredLogger
}

// setup loads configuration and builds the engine. defaultLogFile is used
// when no log file is configured, so the TUI keeps stderr clean.
func setup(cmd *cobra.Command, defaultLogFile string) (*app, error) {
	path, _ := cmd.Flags().GetString("config")
	provider := config.NewYAMLProvider(path)
	defer provider.Close()

	cfg, err := config.Load(provider, viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logFile := cfg.Logging.File
	if logFile == "" {
		logFile = defaultLogFile
	}
	if err := log.Init(log.Options{Debug: cfg.Logging.Debug, File: logFile}); err != nil {
		return nil, err
	}
	logger := log.GetSugaredLogger()

	loc, err := cfg.TimeLocation()
	if err != nil {
		return nil, err
	}

	sc, err := scene.ConfigFrom(cfg)
	if err != nil {
		return nil, err
	}

	src := ephemeris.Lunar{}
	cache := sampler.NewCache(sampler.New(src, cfg.Sampling.StepMinutes, logger), cfg.Sampling.CacheSize, logger)

	log.Debugw("configuration loaded", "config", path, "lat", cfg.Location.Latitude, "lon", cfg.Location.Longitude, "tz", loc.String())

	return &app{
		cfg:      cfg,
		loc:      loc,
		src:      src,
		cache:    cache,
		composer: scene.NewComposer(src, cache, sc, logger),
		logger:   logger,
	}, nil
}

// start resolves --date and --time against now in the configured zone.
func (a *app) start(cmd *cobra.Command) (timeline.Instant, error) {
	now := time.Now().In(a.loc)
	day := sampler.DayOf(now)
	minute, second := now.Hour()*60+now.Minute(), now.Second()

	if s, _ := cmd.Flags().GetString("date"); s != "" {
		d, err := time.ParseInLocation("2006-01-02", s, a.loc)
		if err != nil {
			return timeline.Instant{}, fmt.Errorf("parse --date: %w", err)
		}
		day = sampler.DayOf(d)
	}
	if s, _ := cmd.Flags().GetString("time"); s != "" {
		t, err := time.Parse("15:04", s)
		if err != nil {
			return timeline.Instant{}, fmt.Errorf("parse --time: %w", err)
		}
		minute, second = t.Hour()*60+t.Minute(), 0
	}
	return timeline.InstantAt(day, minute, second), nil
}

func (a *app) lat() float64 { return a.cfg.Location.Latitude }
func (a *app) lon() float64 { return a.cfg.Location.Longitude }
