// Package debugui draws Dear ImGui windows over a front-end that runs the
// launcher. Windows are plain render funcs collected in an Overlay.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// Item holds a Dear ImGui render function drawn once per frame.
type Item struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard
// input. Front-ends check it before mapping keys to panel buttons.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay renders every added item. Call Render between the backend's
// BeginFrame and EndFrame.
type Overlay struct {
	items  []Item
	hidden bool
	Input  InputState
}

func NewOverlay() *Overlay {
	return &Overlay{}
}

// Add appends a window. Items render in the order they were added.
func (o *Overlay) Add(render func()) {
	o.items = append(o.items, Item{Render: render})
}

// Toggle shows or hides all windows.
func (o *Overlay) Toggle() {
	o.hidden = !o.hidden
}

func (o *Overlay) Hidden() bool {
	return o.hidden
}

func (o *Overlay) Len() int {
	return len(o.items)
}

// Render updates the input state and draws the items.
func (o *Overlay) Render() {
	io := imgui.CurrentIO()
	o.Input.WantCaptureMouse = io.WantCaptureMouse()
	o.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	if o.hidden {
		return
	}
	for _, item := range o.items {
		item.Render()
	}
}
