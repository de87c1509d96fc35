package launcher

import (
	"context"
	"log/slog"
	"reflect"
	"time"

	"github.com/plus3/scrollpack/input"
	"github.com/plus3/scrollpack/panel"
)

// DefaultInterval is the nominal loop period.
const DefaultInterval = 20 * time.Millisecond

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	AppCount int
	Active   string
	Ticks    int64
	Switches int64
	Apps     []AppStats
}

// AppStats provides execution statistics for a single app.
type AppStats struct {
	Name         string
	InitCount    int64
	UpdateCount  int64
	MinDuration  time.Duration
	MaxDuration  time.Duration
	AvgDuration  time.Duration
	LastDuration time.Duration
	TotalUpdate  time.Duration
}

type appStatsInternal struct {
	name          string
	initCount     int64
	updateCount   int64
	minDuration   time.Duration
	maxDuration   time.Duration
	totalDuration time.Duration
	lastDuration  time.Duration
}

// Scheduler owns the app list and runs one app at a time. Every tick it
// samples the buttons, derives gesture events and either switches to the
// next app on a double click or updates the active one.
type Scheduler struct {
	display  panel.Display
	sampler  input.Sampler
	gestures *input.Gestures
	logger   *slog.Logger

	apps     []App
	appStats []*appStatsInternal

	active   int
	prev     input.Buttons
	clock    time.Duration
	started  bool
	ticks    int64
	switches int64
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger sets the logger used for display failures and app switches.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// WithDoubleClick sets the double click window of the switch gesture.
func WithDoubleClick(window time.Duration) Option {
	return func(s *Scheduler) {
		s.gestures = input.NewGestures(window)
	}
}

// NewScheduler creates a scheduler drawing to display and reading sampler.
func NewScheduler(display panel.Display, sampler input.Sampler, opts ...Option) *Scheduler {
	s := &Scheduler{
		display:  display,
		sampler:  sampler,
		gestures: input.NewGestures(input.DefaultDoubleClick),
		logger:   slog.Default(),
		apps:     make([]App, 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register appends an app. Apps are switched to in registration order.
func (s *Scheduler) Register(app App) {
	s.apps = append(s.apps, app)

	name := app.Name()
	if name == "" {
		appType := reflect.TypeOf(app)
		if appType.Kind() == reflect.Ptr {
			appType = appType.Elem()
		}
		name = appType.Name()
	}

	s.appStats = append(s.appStats, &appStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Start clears the panel, activates the first app and takes the initial
// button sample. Once and Run call it when needed.
func (s *Scheduler) Start() {
	if len(s.apps) == 0 {
		panic("launcher: no apps registered")
	}

	s.display.Clear()
	s.commit()

	s.active = 0
	s.initApp(s.active)
	s.prev = s.sampler.Sample()
	s.started = true
}

func (s *Scheduler) initApp(idx int) {
	s.apps[idx].Init()
	s.appStats[idx].initCount++
}

// Once runs a single tick with the given elapsed time.
func (s *Scheduler) Once(elapsed time.Duration) {
	if !s.started {
		s.Start()
	}
	if elapsed < 0 {
		elapsed = 0
	}

	s.clock += elapsed
	s.ticks++

	cur := s.sampler.Sample()
	ev := s.gestures.Detect(s.clock, cur, s.prev)

	if ev.DoubleClick {
		s.active = (s.active + 1) % len(s.apps)
		s.switches++
		s.logger.Debug("switching app", "app", s.appStats[s.active].name, "index", s.active)
		s.initApp(s.active)
	} else {
		frame := newFrame(elapsed, cur, ev)

		start := time.Now()
		s.apps[s.active].Update(frame)
		duration := time.Since(start)

		stats := s.appStats[s.active]
		stats.updateCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	s.prev = cur
}

// Run ticks at the given interval until the context is cancelled, then
// clears the panel.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	if !s.started {
		s.Start()
	}
	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			s.display.Clear()
			s.commit()
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime)
			lastTime = now
			s.Once(dt)
		}
	}
}

func (s *Scheduler) commit() {
	if err := s.display.Commit(); err != nil {
		s.logger.Debug("display commit failed", "err", err)
	}
}

// Active returns the active app and its index.
func (s *Scheduler) Active() (App, int) {
	if len(s.apps) == 0 {
		return nil, -1
	}
	return s.apps[s.active], s.active
}

// Clock returns the sum of all elapsed times seen so far.
func (s *Scheduler) Clock() time.Duration {
	return s.clock
}

// Stats returns statistics about app execution.
func (s *Scheduler) Stats() *SchedulerStats {
	stats := &SchedulerStats{
		AppCount: len(s.apps),
		Ticks:    s.ticks,
		Switches: s.switches,
		Apps:     make([]AppStats, len(s.appStats)),
	}
	if len(s.appStats) > 0 {
		stats.Active = s.appStats[s.active].name
	}

	for i, internal := range s.appStats {
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.updateCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.updateCount)
		} else {
			minDuration = 0
		}

		stats.Apps[i] = AppStats{
			Name:         internal.name,
			InitCount:    internal.initCount,
			UpdateCount:  internal.updateCount,
			MinDuration:  minDuration,
			MaxDuration:  internal.maxDuration,
			AvgDuration:  avgDuration,
			LastDuration: internal.lastDuration,
			TotalUpdate:  internal.totalDuration,
		}
	}

	return stats
}
