package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/scrollpack/launcher"
)

// History is a fixed-size ring of frame times in milliseconds.
type History struct {
	frames []float32
	index  int
	filled int
}

func NewHistory(size int) *History {
	if size < 1 {
		size = 1
	}
	return &History{frames: make([]float32, size)}
}

// Record stores one frame time given in seconds.
func (h *History) Record(deltaTime float32) {
	h.frames[h.index] = deltaTime * 1000.0
	h.index = (h.index + 1) % len(h.frames)
	if h.filled < len(h.frames) {
		h.filled++
	}
}

// Average returns the mean of the recorded frames in milliseconds.
func (h *History) Average() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for _, ft := range h.frames {
		sum += ft
	}
	return sum / float32(h.filled)
}

// PerformanceStats shows the frame time graph and the scheduler's per app
// timings.
type PerformanceStats struct {
	scheduler *launcher.Scheduler
	history   *History
	timer     *FrameTimer
}

func NewPerformanceStats(scheduler *launcher.Scheduler, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		scheduler: scheduler,
		history:   NewHistory(historyFrames),
		timer:     NewFrameTimer(),
	}
}

func (ps *PerformanceStats) Render() {
	ps.history.Record(ps.timer.GetDeltaTime())

	if !imgui.BeginV("Launcher", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := ps.scheduler.Stats()
	imgui.Text(fmt.Sprintf("Active: %s", stats.Active))
	imgui.Text(fmt.Sprintf("Apps: %d", stats.AppCount))
	imgui.Text(fmt.Sprintf("Ticks: %d  Switches: %d", stats.Ticks, stats.Switches))
	imgui.Text(fmt.Sprintf("Clock: %s", ps.scheduler.Clock().Truncate(time.Millisecond)))

	avg := ps.history.Average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.history.frames[0], int32(len(ps.history.frames)))

	if imgui.TreeNodeStr("App Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("AppStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("App")
			imgui.TableSetupColumn("Inits")
			imgui.TableSetupColumn("Updates")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, app := range stats.Apps {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(app.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", app.InitCount))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", app.UpdateCount))
				imgui.TableNextColumn()
				imgui.Text(app.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(app.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
