package weather

import (
	"context"
	"log/slog"
	"time"
)

// Result is the outcome of one fetch.
type Result struct {
	Data *Data
	Err  error
	At   time.Time
}

// Source delivers fetch results to the app without blocking it.
type Source interface {
	Results() <-chan Result

	// Refresh asks for a new fetch as soon as possible.
	Refresh()
}

// Fetcher polls the services from its own goroutine. Only the latest result
// is kept when the app does not keep up.
type Fetcher struct {
	client *Client
	cfg    Config
	logger *slog.Logger

	results chan Result
	refresh chan struct{}
}

func NewFetcher(client *Client, cfg Config, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		client:  client,
		cfg:     cfg,
		logger:  logger,
		results: make(chan Result, 1),
		refresh: make(chan struct{}, 1),
	}
}

func (f *Fetcher) Results() <-chan Result {
	return f.results
}

func (f *Fetcher) Refresh() {
	select {
	case f.refresh <- struct{}{}:
	default:
	}
}

// Run fetches until ctx is cancelled. It waits cfg.Refresh after a success
// and cfg.Retry after a failure, or less when Refresh is called.
func (f *Fetcher) Run(ctx context.Context) {
	for {
		res := f.Fetch(ctx)
		if ctx.Err() != nil {
			return
		}
		f.publish(res)

		wait := f.cfg.Refresh
		if res.Err != nil {
			f.logger.Debug("weather: fetch failed", "err", res.Err, "retry", f.cfg.Retry)
			wait = f.cfg.Retry
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-f.refresh:
			timer.Stop()
		case <-timer.C:
		}
	}
}

func (f *Fetcher) publish(res Result) {
	select {
	case f.results <- res:
		return
	default:
	}
	// replace the unread result
	select {
	case <-f.results:
	default:
	}
	f.results <- res
}

// Fetch resolves the location and fetches its forecast once.
func (f *Fetcher) Fetch(ctx context.Context) Result {
	if f.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.cfg.Timeout)
		defer cancel()
	}

	loc := f.location(ctx)
	data, err := f.client.Forecast(ctx, loc)
	return Result{Data: data, Err: err, At: time.Now()}
}

func (f *Fetcher) location(ctx context.Context) Location {
	if f.cfg.Latitude != nil && f.cfg.Longitude != nil {
		return Location{Lat: *f.cfg.Latitude, Lon: *f.cfg.Longitude, City: f.cfg.City}
	}
	loc, err := f.client.Locate(ctx)
	if err != nil {
		f.logger.Debug("weather: location lookup failed, using default", "err", err, "city", Zurich.City)
		return Zurich
	}
	return loc
}
