// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"fmt"
	"image"

	"cogentcore.org/bplus/gl"
	"cogentcore.org/bplus/gpu"
	"cogentcore.org/core/math32"
)

// Platform is the windowing system an [App] runs on: something that can
// open a window with an OpenGL context and deliver its input events.
// All of its methods are called from the thread that runs [App.Run].
type Platform interface {

	// Init initializes the windowing system.
	Init() error

	// NewWindow opens the main window and creates its OpenGL context.
	NewWindow(opts *WindowOptions) (Window, error)

	// Terminate shuts the windowing system down. It is called once,
	// after the window is destroyed, and only if Init succeeded.
	Terminate()
}

// Window is a window with an OpenGL context.
type Window interface {
	gpu.SwapIntervaler

	// MakeContextCurrent binds the window's OpenGL context to the
	// calling thread and returns a driver for it.
	MakeContextCurrent() (gl.Driver, error)

	// PollEvents processes pending window-system events and returns
	// the ones for this window, in the order they happened.
	PollEvents() []Event

	// Size returns the window's client area size in screen coordinates.
	Size() image.Point

	// SetSize resizes the window's client area.
	SetSize(size image.Point)

	// FramebufferSize returns the size of the default framebuffer in pixels.
	FramebufferSize() image.Point

	// IsMaximized returns whether the window is currently maximized.
	IsMaximized() bool

	// SwapBuffers presents the back buffer.
	SwapBuffers()

	// Destroy closes the window and its OpenGL context.
	Destroy()
}

// WindowOptions are the parameters of the main window and its context.
type WindowOptions struct {
	Title     string
	Size      image.Point
	Maximized bool
	Resizable bool

	// GLMajor and GLMinor are the requested core profile version.
	GLMajor, GLMinor int

	DoubleBuffer bool
	DepthBits    int
	StencilBits  int
}

// EventTypes are the kinds of [Event].
type EventTypes int32 //enums:enum

const (
	// QuitEvent is a request from the OS to quit the app.
	QuitEvent EventTypes = iota

	// CloseEvent is a request to close the main window.
	CloseEvent

	// ResizeEvent is sent when the window's size changed.
	ResizeEvent

	// KeyEvent is a physical key being pressed or released.
	KeyEvent

	// CharEvent is a unicode character typed.
	CharEvent

	// MouseButtonEvent is a mouse button being pressed or released.
	MouseButtonEvent

	// MouseMoveEvent is the cursor moving.
	MouseMoveEvent

	// ScrollEvent is the scroll wheel or touchpad scrolling.
	ScrollEvent

	// FocusEvent is the window gaining or losing input focus.
	FocusEvent

	// ConfigReloadEvent is sent when the config file was reloaded
	// after being modified on disk.
	ConfigReloadEvent
)

// Event is a window or OS event.
type Event struct {
	Type EventTypes

	// Size is the new window size of a [ResizeEvent].
	Size image.Point

	// Pos is the cursor position of mouse events,
	// or the offset of a [ScrollEvent].
	Pos math32.Vector2

	// Code is the platform key code of a [KeyEvent]
	// or the button of a [MouseButtonEvent].
	Code int

	// Rune is the character of a [CharEvent].
	Rune rune

	// Down is whether the key or button was pressed, or for a
	// [FocusEvent] whether the window gained focus.
	Down bool
}

func (e Event) String() string {
	switch e.Type {
	case ResizeEvent:
		return fmt.Sprintf("%s %v", e.Type, e.Size)
	case KeyEvent, MouseButtonEvent:
		return fmt.Sprintf("%s %d down=%v", e.Type, e.Code, e.Down)
	case CharEvent:
		return fmt.Sprintf("%s %q", e.Type, e.Rune)
	case MouseMoveEvent, ScrollEvent:
		return fmt.Sprintf("%s %v", e.Type, e.Pos)
	}
	return e.Type.String()
}
