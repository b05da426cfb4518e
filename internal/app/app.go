package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/five82/insights/internal/config"
	"github.com/five82/insights/internal/feed"
	"github.com/five82/insights/internal/logging"
	"github.com/five82/insights/internal/metrics"
	"github.com/five82/insights/internal/prefs"
	"github.com/five82/insights/internal/state"
	"github.com/five82/insights/internal/tableview"
	"github.com/five82/insights/internal/ui"
)

// Options configure the insights application.
type Options struct {
	ConfigPath   string
	PrefsPath    string        // empty uses ~/.config/insights/prefs.toml
	TickInterval time.Duration // zero uses the config value
	Seed         uint64        // zero uses the config value, then the clock

	// Headless report
	Once  bool
	Ticks int
	Query string
	Sort  string // col, col:asc or col:desc
	Out   io.Writer
}

// Run boots the dashboard until the context is cancelled, or prints a single
// report when Once is set.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.TickInterval > 0 {
		cfg.TickInterval = opts.TickInterval
	}
	if opts.Seed != 0 {
		cfg.Seed = opts.Seed
	}

	log, closer, err := logging.Setup(logging.Options{File: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closer.Close()

	view, err := buildView(cfg, opts.Query, opts.Sort)
	if err != nil {
		return err
	}

	store := state.NewStore(metrics.Seed(time.Now()))
	engine := metrics.NewEngine(metrics.NewSource(cfg.Seed))

	if opts.Once {
		out := opts.Out
		if out == nil {
			out = os.Stdout
		}
		return runOnce(out, store, engine, view, opts.Ticks, log)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	f := feed.New(store, engine, feed.Options{
		Interval:     cfg.TickInterval,
		LoadingDelay: cfg.LoadingDelay,
		Logger:       log,
	})
	f.Start()
	defer f.Close()

	return ui.Run(ui.Options{
		Context:   ctx,
		Store:     store,
		Feed:      f,
		Table:     view,
		Config:    &cfg,
		Logger:    log,
		ThemeName: userPrefs.Theme,
		DarkTheme: userPrefs.DarkTheme,
		PrefsPath: opts.PrefsPath,
	})
}

func buildView(cfg config.Config, query, sortSpec string) (*tableview.View, error) {
	cols := tableview.DefaultColumns()
	view := tableview.NewView(tableview.SeedRecords(), cols, cfg.PageSize,
		tableview.FilterOptions{CaseSensitive: cfg.CaseSensitiveSearch})
	view.SetQuery(query)
	if sortSpec != "" {
		s, err := tableview.ParseSort(cols, sortSpec)
		if err != nil {
			return nil, fmt.Errorf("parse sort: %w", err)
		}
		view.SetSort(s)
	}
	return view, nil
}
