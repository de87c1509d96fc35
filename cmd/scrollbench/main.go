// Command scrollbench runs the launcher headless on an in-memory panel with
// random button presses and prints update latency figures.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/scrollpack/apps"
	"github.com/plus3/scrollpack/config"
	"github.com/plus3/scrollpack/input"
	"github.com/plus3/scrollpack/launcher"
	"github.com/plus3/scrollpack/panel"
)

// randomSampler flips each button with a small chance per tick. The X
// chance is lower so double clicks, and with them app switches, stay rare.
type randomSampler struct {
	rng     *rand.Rand
	buttons input.Buttons
	flip    float64
}

func (s *randomSampler) Sample() input.Buttons {
	for _, btn := range []input.Button{input.ButtonA, input.ButtonB, input.ButtonX, input.ButtonY} {
		chance := s.flip
		if btn == input.ButtonX {
			chance /= 4
		}
		if s.rng.Float64() < chance {
			s.buttons = s.buttons.Set(btn, !s.buttons.Get(btn))
		}
	}
	return s.buttons
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	configPath := flag.String("config", "", "Path to a YAML config file.")
	tick := flag.Duration("tick", 0, "Elapsed time passed per update. Defaults to the configured tick.")
	flip := flag.Float64("flip", 0.05, "Chance per tick that a button changes state.")
	seed := flag.Uint64("seed", 1, "Random seed for input and apps.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting launcher stress test...")

	cfg, err := config.Load(*configPath)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("No config file, using defaults: %v", err)
	} else if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *tick <= 0 {
		*tick = cfg.Launcher.Tick
	}

	// 1. Build apps and scheduler on an in-memory panel
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	buf := panel.NewBuffer()
	set, err := apps.Build(context.Background(), cfg, buf, apps.Options{
		Logger:  logger,
		Rand:    rand.New(rand.NewPCG(*seed, *seed)),
		Offline: true,
	})
	if err != nil {
		log.Fatalf("Failed to build apps: %v", err)
	}

	sampler := &randomSampler{rng: rand.New(rand.NewPCG(*seed, ^*seed)), flip: *flip}
	scheduler := launcher.NewScheduler(buf, sampler,
		launcher.WithLogger(logger),
		launcher.WithDoubleClick(cfg.Launcher.DoubleClick),
	)
	set.Register(scheduler)
	scheduler.Start()

	// 2. Run the update loop
	report := &Report{
		Duration:       *duration,
		Tick:           *tick,
		Flip:           *flip,
		Apps:           cfg.Apps,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			scheduler.Once(*tick)
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.SimulatedTime = scheduler.Clock()
	report.Commits = buf.Commits()
	report.Scheduler = scheduler.Stats()
	if set.Tetris != nil {
		snap := set.Tetris.Snapshot()
		report.Tetris = &snap
	}
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Run finished.")

	// 3. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
