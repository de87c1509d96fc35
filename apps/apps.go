// Package apps assembles the configured apps for a front-end.
package apps

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"

	"github.com/plus3/scrollpack/apps/quotes"
	"github.com/plus3/scrollpack/apps/weather"
	"github.com/plus3/scrollpack/config"
	"github.com/plus3/scrollpack/launcher"
	"github.com/plus3/scrollpack/panel"
	"github.com/plus3/scrollpack/tetris"
)

// Set holds the built apps in launch order. The typed fields are nil for
// apps the config leaves out.
type Set struct {
	Apps []launcher.App

	Tetris  *tetris.Engine
	Quotes  *quotes.App
	Weather *weather.App
}

// Options tune Build for tests and benchmarks.
type Options struct {
	Logger *slog.Logger
	Rand   *rand.Rand

	// Offline skips the weather fetcher so no network is used.
	Offline bool
}

// Build creates every app named in cfg.Apps. The weather fetcher, when
// used, runs until ctx is cancelled.
func Build(ctx context.Context, cfg config.Config, display panel.Display, opts Options) (*Set, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	set := &Set{}
	for _, name := range cfg.Apps {
		switch name {
		case config.AppTetris:
			set.Tetris = tetris.NewEngine(display,
				tetris.WithTiming(cfg.Tetris),
				tetris.WithRand(rng),
				tetris.WithLogger(logger.With("app", name)),
			)
			set.Apps = append(set.Apps, set.Tetris)
		case config.AppQuotes:
			set.Quotes = quotes.New(display, cfg.Quotes,
				quotes.WithRand(rng),
				quotes.WithLogger(logger.With("app", name)),
			)
			set.Apps = append(set.Apps, set.Quotes)
		case config.AppWeather:
			var source weather.Source
			if !opts.Offline {
				client := &weather.Client{
					HTTP:        &http.Client{Timeout: cfg.Weather.Timeout},
					ForecastURL: cfg.Weather.ForecastURL,
					LocateURL:   cfg.Weather.LocateURL,
				}
				fetcher := weather.NewFetcher(client, cfg.Weather, logger.With("app", name))
				go fetcher.Run(ctx)
				source = fetcher
			}
			set.Weather = weather.New(display, source, cfg.Weather, logger.With("app", name))
			set.Apps = append(set.Apps, set.Weather)
		default:
			return nil, fmt.Errorf("apps: unknown app %q", name)
		}
	}
	if len(set.Apps) == 0 {
		return nil, fmt.Errorf("apps: no apps configured")
	}
	return set, nil
}

// Register adds the apps to s in order.
func (set *Set) Register(s *launcher.Scheduler) {
	for _, app := range set.Apps {
		s.Register(app)
	}
}
