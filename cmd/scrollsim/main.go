// Command scrollsim runs the launcher in a desktop window. The panel is
// drawn as a grid of LEDs, the keyboard stands in for the four buttons and
// F1 toggles the Dear ImGui inspector.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/plus3/scrollpack/apps"
	"github.com/plus3/scrollpack/config"
	"github.com/plus3/scrollpack/debugui"
	debugui_ebiten "github.com/plus3/scrollpack/debugui/ebiten"
	"github.com/plus3/scrollpack/input"
	"github.com/plus3/scrollpack/launcher"
	"github.com/plus3/scrollpack/panel"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	statusHeight = 24
)

var keymap = [...][]ebiten.Key{
	input.ButtonA: {ebiten.KeyA, ebiten.KeyArrowRight},
	input.ButtonB: {ebiten.KeyB, ebiten.KeyArrowLeft},
	input.ButtonX: {ebiten.KeyX, ebiten.KeyArrowDown, ebiten.KeySpace},
	input.ButtonY: {ebiten.KeyY, ebiten.KeyArrowUp},
}

var (
	ledOff   = colornames.Darkslategray
	ledOn    = colornames.Whitesmoke
	ledFrame = colornames.Black
)

type Game struct {
	buf       *panel.Buffer
	scheduler *launcher.Scheduler
	backend   *debugui_ebiten.ImguiBackend
	clock     *tickClock
}

// Sample reads the held buttons. Keys go to the inspector while it has
// keyboard focus.
func (g *Game) Sample() input.Buttons {
	var b input.Buttons
	if g.backend.WantsKeyboard() {
		return b
	}
	for btn, keys := range keymap {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				b = b.Set(input.Button(btn), true)
			}
		}
	}
	return b
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.backend.Overlay.Toggle()
	}

	g.backend.Frame(func() {
		g.scheduler.Once(g.clock.Elapsed())
	})
	return nil
}

// ledColor blends from the unlit colour to the lit one by brightness.
func ledColor(brightness uint8) color.Color {
	if brightness == 0 {
		return ledOff
	}
	mix := func(a, b uint8) uint8 {
		return uint8((int(a)*(255-int(brightness)) + int(b)*int(brightness)) / 255)
	}
	return color.RGBA{
		R: mix(ledOff.R, ledOn.R),
		G: mix(ledOff.G, ledOn.G),
		B: mix(ledOff.B, ledOn.B),
		A: 255,
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ledFrame)

	bounds := screen.Bounds()
	cell := min(float32(bounds.Dx())/panel.Width, float32(bounds.Dy()-statusHeight)/panel.Height)
	gap := cell / 8
	offX := (float32(bounds.Dx()) - cell*panel.Width) / 2
	offY := (float32(bounds.Dy()-statusHeight) - cell*panel.Height) / 2

	front := g.buf.Front()
	for x := 0; x < panel.Width; x++ {
		for y := 0; y < panel.Height; y++ {
			sx := offX + float32(x)*cell + gap
			sy := offY + float32(y)*cell + gap
			vector.DrawFilledRect(screen, sx, sy, cell-2*gap, cell-2*gap, ledColor(front[x][y]), false)
		}
	}

	stats := g.scheduler.Stats()
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("%s  |  A/B/X/Y or arrows, double X switches, F1 inspector, Esc quits  |  %.0f TPS", stats.Active, ebiten.ActualTPS()),
		8, bounds.Dy()-statusHeight+4)

	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file.")
	quotesFile := flag.String("quotes", "", "Override the quotes file.")
	offline := flag.Bool("offline", false, "Do not fetch weather data.")
	inspector := flag.Bool("inspector", false, "Show the ImGui inspector on start.")
	deterministic := flag.Bool("deterministic", false, "Advance by exactly one configured tick per frame instead of the measured time.")
	verbose := flag.Bool("v", false, "Log at debug level.")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(*configPath)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("No config file, using defaults: %v", err)
	} else if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *quotesFile != "" {
		cfg.Quotes.File = *quotesFile
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	buf := panel.NewBuffer()
	set, err := apps.Build(ctx, cfg, buf, apps.Options{Logger: logger, Offline: *offline})
	if err != nil {
		log.Fatalf("Failed to build apps: %v", err)
	}

	game := &Game{buf: buf, clock: newTickClock(cfg.Launcher.Tick, *deterministic, nil)}
	game.scheduler = launcher.NewScheduler(buf, game,
		launcher.WithLogger(logger),
		launcher.WithDoubleClick(cfg.Launcher.DoubleClick),
	)
	set.Register(game.scheduler)

	overlay := debugui.NewOverlay()
	overlay.Add(debugui.NewPerformanceStats(game.scheduler, 120).Render)
	if set.Tetris != nil {
		overlay.Add(debugui.TetrisWindow(set.Tetris))
	}
	if set.Quotes != nil {
		overlay.Add(debugui.QuotesWindow(set.Quotes))
	}
	if set.Weather != nil {
		overlay.Add(debugui.WeatherWindow(set.Weather))
	}
	if !*inspector {
		overlay.Toggle()
	}
	game.backend = debugui_ebiten.NewImguiBackend("scrollpack", ScreenWidth, ScreenHeight, overlay)

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("scrollpack")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(max(1, int(time.Second/cfg.Launcher.Tick)))

	log.Printf("Running %d apps at %s per tick", len(set.Apps), cfg.Launcher.Tick)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("Simulator stopped: %v", err)
	}
}
