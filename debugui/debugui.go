// Package debugui provides immediate-mode GUI panels for a running engine using Dear ImGui.
// Panels are plain Items; ImguiSystem queues their render functions on the frame's
// command buffer so they draw after the engine has been updated.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/driver"
)

// Item holds a Dear ImGui render function.
type Item struct {
	Render func()
}

// InputState tracks Dear ImGui's input capture state.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers every item's render function and refreshes Input with the
// current capture state.
type ImguiSystem struct {
	Items []Item
	Input *InputState
}

// Add appends render functions to the system.
func (i *ImguiSystem) Add(items ...Item) {
	i.Items = append(i.Items, items...)
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *driver.UpdateFrame) {
	if i.Input != nil {
		i.Input.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
		i.Input.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()
	}

	for _, item := range i.Items {
		if item.Render != nil {
			frame.Commands.Defer(item.Render)
		}
	}
}
