// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd

// Package desktop implements [system.Platform] for desktop operating
// systems using GLFW. Importing it locks the main goroutine to the
// main OS thread, which GLFW requires.
package desktop

import (
	"fmt"
	"image"
	"log/slog"
	"runtime"

	"cogentcore.org/bplus/gl"
	"cogentcore.org/bplus/gl/glgo"
	"cogentcore.org/bplus/system"
	"cogentcore.org/core/base/errors"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

// swapTearExtensions are the window system extensions that allow a
// negative swap interval (adaptive vsync).
var swapTearExtensions = []string{"WGL_EXT_swap_control_tear", "GLX_EXT_swap_control_tear"}

// Platform is the GLFW [system.Platform].
type Platform struct{}

// New returns the GLFW platform.
func New() *Platform { return &Platform{} }

// Init initializes GLFW. It must be called on the main thread.
func (p *Platform) Init() error {
	return errors.Log(glfw.Init())
}

func (p *Platform) Terminate() {
	glfw.Terminate()
}

// NewWindow opens a window with an OpenGL core profile context of the
// requested version and buffer layout.
func (p *Platform) NewWindow(opts *system.WindowOptions) (system.Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, opts.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, boolHint(opts.DoubleBuffer))
	glfw.WindowHint(glfw.DepthBits, opts.DepthBits)
	glfw.WindowHint(glfw.StencilBits, opts.StencilBits)
	glfw.WindowHint(glfw.Resizable, boolHint(opts.Resizable))
	glfw.WindowHint(glfw.Maximized, boolHint(opts.Maximized))
	glfw.WindowHint(glfw.Focused, glfw.True)

	glw, err := glfw.CreateWindow(opts.Size.X, opts.Size.Y, opts.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	w := &Window{glw: glw}
	w.setCallbacks()
	slog.Debug("desktop.Platform NewWindow", "title", opts.Title, "size", opts.Size, "maximized", opts.Maximized)
	return w, nil
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// Window is a GLFW [system.Window].
type Window struct {
	glw      *glfw.Window
	events   []system.Event
	interval int
}

// MakeContextCurrent makes the window's context current on the calling
// thread and loads the OpenGL functions for it.
func (w *Window) MakeContextCurrent() (gl.Driver, error) {
	w.glw.MakeContextCurrent()
	drv, err := glgo.New()
	if err != nil {
		return nil, err
	}
	return drv, nil
}

// PollEvents processes pending GLFW events and returns those queued
// by the window's callbacks since the last call.
func (w *Window) PollEvents() []system.Event {
	glfw.PollEvents()
	evs := w.events
	w.events = nil
	return evs
}

func (w *Window) Size() image.Point {
	x, y := w.glw.GetSize()
	return image.Pt(x, y)
}

func (w *Window) SetSize(size image.Point) { w.glw.SetSize(size.X, size.Y) }

func (w *Window) FramebufferSize() image.Point {
	x, y := w.glw.GetFramebufferSize()
	return image.Pt(x, y)
}

func (w *Window) IsMaximized() bool {
	return w.glw.GetAttrib(glfw.Maximized) == glfw.True
}

func (w *Window) SwapBuffers() { w.glw.SwapBuffers() }

func (w *Window) Destroy() {
	w.glw.Destroy()
	w.glw = nil
}

func (w *Window) SwapInterval() int { return w.interval }

// SetSwapInterval sets the swap interval of the current context.
// A negative interval needs one of the swap control tear extensions.
func (w *Window) SetSwapInterval(interval int) error {
	if interval < 0 && !hasAnyExtension(swapTearExtensions) {
		return fmt.Errorf("swap interval %d needs one of %v", interval, swapTearExtensions)
	}
	glfw.SwapInterval(interval)
	w.interval = interval
	return nil
}

func hasAnyExtension(names []string) bool {
	for _, name := range names {
		if glfw.ExtensionSupported(name) {
			return true
		}
	}
	return false
}

func (w *Window) send(e system.Event) {
	w.events = append(w.events, e)
}
