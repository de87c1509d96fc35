// Command scrollterm runs the launcher in a terminal. Every LED is two
// character cells wide. Terminals only report key presses, so a button
// stays held for a short while after each press and auto-repeat keeps it
// down.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/scrollpack/apps"
	"github.com/plus3/scrollpack/config"
	"github.com/plus3/scrollpack/input"
	"github.com/plus3/scrollpack/launcher"
	"github.com/plus3/scrollpack/panel"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file.")
	quotesFile := flag.String("quotes", "", "Override the quotes file.")
	offline := flag.Bool("offline", false, "Do not fetch weather data.")
	hold := flag.Duration("hold", 150*time.Millisecond, "How long a key press keeps a button held.")
	logPath := flag.String("log", "", "Write debug logs to this file.")
	flag.Parse()

	logger, closeLog := openLog(*logPath)
	defer closeLog()

	cfg, err := config.Load(*configPath)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("No config file, using defaults: %v", err)
	} else if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *quotesFile != "" {
		cfg.Quotes.File = *quotesFile
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init terminal: %v", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	term := newTerminal(screen)
	display := panel.Adapt(term)

	set, err := apps.Build(ctx, cfg, display, apps.Options{Logger: logger, Offline: *offline})
	if err != nil {
		screen.Fini()
		log.Fatalf("Failed to build apps: %v", err)
	}

	latch := input.NewLatch(*hold, nil)
	go pumpEvents(screen, latch, cancel)

	scheduler := launcher.NewScheduler(display, latch,
		launcher.WithLogger(logger),
		launcher.WithDoubleClick(cfg.Launcher.DoubleClick),
	)
	set.Register(scheduler)
	scheduler.Run(ctx, cfg.Launcher.Tick)
}

func openLog(path string) (*slog.Logger, func()) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }
}

var runeButtons = map[rune]input.Button{
	'a': input.ButtonA,
	'b': input.ButtonB,
	'x': input.ButtonX,
	' ': input.ButtonX,
	'y': input.ButtonY,
}

var keyButtons = map[tcell.Key]input.Button{
	tcell.KeyRight: input.ButtonA,
	tcell.KeyLeft:  input.ButtonB,
	tcell.KeyDown:  input.ButtonX,
	tcell.KeyUp:    input.ButtonY,
}

// pumpEvents feeds key presses into the latch until the screen is closed
// or the user quits.
func pumpEvents(screen tcell.Screen, latch *input.Latch, quit func()) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				quit()
				return
			case tcell.KeyRune:
				if ev.Rune() == 'q' {
					quit()
					return
				}
				if btn, ok := runeButtons[ev.Rune()]; ok {
					latch.Press(btn)
				}
			default:
				if btn, ok := keyButtons[ev.Key()]; ok {
					latch.Press(btn)
				}
			}
		}
	}
}
