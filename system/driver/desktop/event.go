// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd

package desktop

import (
	"image"

	"cogentcore.org/bplus/system"
	"cogentcore.org/core/math32"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func (w *Window) setCallbacks() {
	w.glw.SetCloseCallback(w.closeReq)
	w.glw.SetSizeCallback(w.resized)
	w.glw.SetKeyCallback(w.keyEvent)
	w.glw.SetCharCallback(w.charEvent)
	w.glw.SetMouseButtonCallback(w.mouseButtonEvent)
	w.glw.SetCursorPosCallback(w.cursorPosEvent)
	w.glw.SetScrollCallback(w.scrollEvent)
	w.glw.SetFocusCallback(w.focusEvent)
}

// closeReq turns the close button into a request; the app decides
// whether the window actually closes.
func (w *Window) closeReq(gw *glfw.Window) {
	gw.SetShouldClose(false)
	w.send(system.Event{Type: system.CloseEvent})
}

func (w *Window) resized(gw *glfw.Window, width, height int) {
	w.send(system.Event{Type: system.ResizeEvent, Size: image.Pt(width, height)})
}

// physical key
func (w *Window) keyEvent(gw *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mod glfw.ModifierKey) {
	w.send(keyEvent(ky, action))
}

func keyEvent(ky glfw.Key, action glfw.Action) system.Event {
	return system.Event{Type: system.KeyEvent, Code: int(ky), Down: action != glfw.Release}
}

func (w *Window) charEvent(gw *glfw.Window, char rune) {
	w.send(system.Event{Type: system.CharEvent, Rune: char})
}

func (w *Window) mouseButtonEvent(gw *glfw.Window, button glfw.MouseButton, action glfw.Action, mod glfw.ModifierKey) {
	e := mouseButtonEvent(button, action)
	x, y := gw.GetCursorPos()
	e.Pos = math32.Vec2(float32(x), float32(y))
	w.send(e)
}

func mouseButtonEvent(button glfw.MouseButton, action glfw.Action) system.Event {
	return system.Event{Type: system.MouseButtonEvent, Code: int(button), Down: action == glfw.Press}
}

func (w *Window) cursorPosEvent(gw *glfw.Window, x, y float64) {
	w.send(system.Event{Type: system.MouseMoveEvent, Pos: math32.Vec2(float32(x), float32(y))})
}

func (w *Window) scrollEvent(gw *glfw.Window, xoff, yoff float64) {
	w.send(system.Event{Type: system.ScrollEvent, Pos: math32.Vec2(float32(xoff), float32(yoff))})
}

func (w *Window) focusEvent(gw *glfw.Window, focused bool) {
	w.send(system.Event{Type: system.FocusEvent, Down: focused})
}
