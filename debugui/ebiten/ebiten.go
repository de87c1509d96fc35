// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/scrollpack/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation
// and the overlay it draws.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
	Overlay *debugui.Overlay
}

// NewImguiBackend creates the window and disables imgui.ini.
func NewImguiBackend(title string, width, height int, overlay *debugui.Overlay) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &ImguiBackend{EbitenBackend: backend, Overlay: overlay}
}

// Frame runs one ImGui frame around update and the overlay.
func (b *ImguiBackend) Frame(update func()) {
	b.BeginFrame()
	update()
	b.Overlay.Render()
	b.EndFrame()
}

// WantsKeyboard reports whether the last frame's windows took the keyboard.
func (b *ImguiBackend) WantsKeyboard() bool {
	return !b.Overlay.Hidden() && b.Overlay.Input.WantCaptureKeyboard
}
