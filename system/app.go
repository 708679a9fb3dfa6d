// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system provides the application shell: it opens the main
// window through a [Platform], creates the [gpu.Context], runs the frame
// loop with fixed-step physics, and persists window state in a
// [ConfigFile].
package system

import (
	"image"
	"log/slog"
	"path/filepath"
	"runtime"
	"time"

	"cogentcore.org/bplus/gpu"
	"cogentcore.org/core/math32"
)

// Options configure the main window, its OpenGL context and frame timing.
type Options struct {
	Title     string
	Resizable bool

	// Maximized opens the window maximized. The window is also
	// maximized if it was when the app last quit.
	Maximized bool

	DoubleBuffer bool
	DepthBits    int
	StencilBits  int
	Vsync        gpu.VsyncModes

	// MinWindowSize is the smallest size the window may be resized to.
	MinWindowSize image.Point

	// PhysicsTimeStep is the length of each physics step.
	// Physics always advances in steps of exactly this size; a slow
	// frame runs several of them.
	PhysicsTimeStep time.Duration

	// MaxPhysicsStepsPerFrame caps the physics steps run in one frame.
	// Time beyond the cap is dropped, so physics runs in slow motion
	// rather than falling further behind every frame.
	MaxPhysicsStepsPerFrame int

	// MinDeltaT is the minimum frame time; a faster frame sleeps
	// for the rest of it. Zero or less means no cap.
	MinDeltaT time.Duration

	// WatchConfig reloads the config file when it is modified on disk
	// while the app runs.
	WatchConfig bool
}

// DefaultOptions returns the default [Options].
func DefaultOptions() Options {
	return Options{
		Title:                   "B+ App",
		Resizable:               true,
		DoubleBuffer:            true,
		DepthBits:               24,
		StencilBits:             8,
		Vsync:                   gpu.VsyncAdaptive,
		MinWindowSize:           image.Pt(250, 250),
		PhysicsTimeStep:         time.Second / 50,
		MaxPhysicsStepsPerFrame: 10,
		MinDeltaT:               -1,
	}
}

// Callbacks are the app's hooks into the lifecycle of an [App].
// Any of them may be nil. Frame times are in seconds.
type Callbacks struct {

	// OnBegin is called once setup succeeded, before the first frame.
	OnBegin func(a *App)

	// OnQuit is called when the app is asked to quit. For a request
	// that is not forced, returning false cancels it.
	OnQuit func(a *App, force bool) bool

	// OnEvent is called for each window event,
	// after the app has handled it.
	OnEvent func(a *App, e *Event)

	// OnPhysics runs one physics step.
	OnPhysics func(a *App, dt float32)

	// OnUpdate does the per-frame updates other than physics.
	OnUpdate func(a *App, dt float32)

	// OnRendering draws the frame, right after OnUpdate.
	// If it is nil the frame is cleared to magenta.
	OnRendering func(a *App, dt float32)
}

// App runs an application from setup to quit. All its methods
// must be called from the thread that calls [App.Run].
type App struct {
	Options
	Callbacks

	Config Config

	// OnError receives a descriptive message for each setup failure
	// and config file error.
	OnError func(msg string)

	// WorkingPath is the directory of the config file,
	// and ContentPath the content directory within it.
	WorkingPath, ContentPath string

	Platform Platform

	// Window and GPU exist only while the app is running.
	Window Window
	GPU    *gpu.Context

	running      bool
	platformInit bool
	watcher      *configWatcher
	physicsLag   time.Duration
	lastFrame    time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewApp returns an App with [DefaultOptions] that runs on
// platform and stores its state in cfg.
func NewApp(platform Platform, cfg Config, onError func(msg string)) *App {
	cf := cfg.ConfigBase()
	cf.OnError = onError
	wp := filepath.Dir(cf.FilePath)
	return &App{
		Options:     DefaultOptions(),
		Config:      cfg,
		OnError:     onError,
		WorkingPath: wp,
		ContentPath: filepath.Join(wp, "content"),
		Platform:    platform,
		now:         time.Now,
		sleep:       time.Sleep,
	}
}

// IsRunning returns whether [App.Run] is in progress and has not quit.
func (a *App) IsRunning() bool { return a.running }

// Run runs the app from beginning to end, blocking until it quits.
// If a setup step fails, the message is sent to OnError and
// Run returns after cleaning up.
func (a *App) Run() {
	if a.running {
		panic("system.App Run: already running")
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	a.running = true
	a.physicsLag = 0
	LoadConfig(a.Config)
	if !a.running { // quit from OnError
		return
	}
	if !a.setup() {
		if a.running {
			a.shutdown()
		}
		return
	}
	if a.OnBegin != nil {
		a.OnBegin(a)
	}
	a.lastFrame = a.now()
	for a.running {
		a.frame()
	}
}

// Quit asks the app to quit. Unless force is set, OnQuit may cancel it.
// Quitting releases the GPU context, closes the window and writes
// the config file.
func (a *App) Quit(force bool) {
	if !a.running {
		return
	}
	if a.OnQuit != nil && !a.OnQuit(a, force) && !force {
		slog.Info("system.App Quit: cancelled")
		return
	}
	a.shutdown()
}

func (a *App) setup() bool {
	cf := a.Config.ConfigBase()
	if !a.try(a.Platform.Init(), "Couldn't initialize the window system") {
		return false
	}
	a.platformInit = true

	win, err := a.Platform.NewWindow(&WindowOptions{
		Title:        a.Title,
		Size:         cf.WindowSize(),
		Maximized:    a.Maximized || cf.IsWindowMaximized,
		Resizable:    a.Resizable,
		GLMajor:      gpu.GLVersionMajor,
		GLMinor:      gpu.GLVersionMinor,
		DoubleBuffer: a.DoubleBuffer,
		DepthBits:    a.DepthBits,
		StencilBits:  a.StencilBits,
	})
	if !a.try(err, "Error creating main window") {
		return false
	}
	a.Window = win

	drv, err := win.MakeContextCurrent()
	if !a.try(err, "Error initializing OpenGL context") {
		return false
	}
	a.GPU = gpu.NewContext(drv, win)
	if !a.try(a.GPU.SetVsyncMode(a.Vsync), "Error setting vsync setting") {
		return false
	}

	if a.WatchConfig {
		// a config that can not be watched still works
		if w, err := watchConfig(cf.FilePath); err == nil {
			a.watcher = w
		}
	}
	slog.Debug("system.App setup", "title", a.Title, "size", cf.WindowSize(), "vsync", a.GPU.VsyncMode())
	return true
}

func (a *App) shutdown() {
	if a.watcher != nil {
		a.watcher.Close()
		a.watcher = nil
	}
	if a.GPU != nil {
		a.GPU.Release()
		a.GPU = nil
	}
	if a.Window != nil {
		a.Window.Destroy()
		a.Window = nil
	}
	if a.platformInit {
		a.Platform.Terminate()
		a.platformInit = false
	}
	SaveConfig(a.Config)
	a.running = false
	slog.Debug("system.App shutdown")
}

// frame runs one iteration of the main loop.
func (a *App) frame() {
	for _, e := range a.Window.PollEvents() {
		a.handleEvent(e)
		if !a.running {
			return
		}
	}
	if a.watcher != nil && a.watcher.Changed() {
		a.reloadConfig()
		if !a.running {
			return
		}
	}

	now := a.now()
	delta := now.Sub(a.lastFrame)
	if a.MinDeltaT > 0 && delta < a.MinDeltaT {
		a.sleep(a.MinDeltaT - delta)
		return
	}
	a.lastFrame = now

	if a.PhysicsTimeStep > 0 {
		a.physicsLag += delta
		for steps := 0; a.physicsLag >= a.PhysicsTimeStep; steps++ {
			if a.MaxPhysicsStepsPerFrame > 0 && steps == a.MaxPhysicsStepsPerFrame {
				a.physicsLag %= a.PhysicsTimeStep
				break
			}
			a.physicsLag -= a.PhysicsTimeStep
			if a.OnPhysics != nil {
				a.OnPhysics(a, float32(a.PhysicsTimeStep.Seconds()))
			}
			if !a.running {
				return
			}
		}
	}

	dt := float32(delta.Seconds())
	if a.OnUpdate != nil {
		a.OnUpdate(a, dt)
	}
	if !a.running {
		return
	}
	a.GPU.SetViewportSize(a.Window.FramebufferSize())
	if a.OnRendering != nil {
		a.OnRendering(a, dt)
	} else {
		a.GPU.Clear(math32.Vec4(1, 0, 1, 1), 1)
	}
	if !a.running {
		return
	}
	a.Window.SwapBuffers()
}

func (a *App) handleEvent(e Event) {
	switch e.Type {
	case QuitEvent, CloseEvent:
		a.Quit(false)
		if !a.running {
			return
		}
	case ResizeEvent:
		minSize := a.MinWindowSize
		if e.Size.X < minSize.X || e.Size.Y < minSize.Y {
			a.Window.SetSize(image.Pt(max(e.Size.X, minSize.X), max(e.Size.Y, minSize.Y)))
		}
	}

	cf := a.Config.ConfigBase()
	cf.IsWindowMaximized = a.Window.IsMaximized()
	if !cf.IsWindowMaximized {
		sz := a.Window.Size()
		cf.LastWindowSize = [2]int{sz.X, sz.Y}
	}
	if a.OnEvent != nil {
		a.OnEvent(a, &e)
	}
}

// reloadConfig loads the config file again after it changed on disk.
// The window keeps its current size and maximized state.
func (a *App) reloadConfig() {
	cf := a.Config.ConfigBase()
	maximized, size := cf.IsWindowMaximized, cf.LastWindowSize
	LoadConfig(a.Config)
	cf.IsWindowMaximized, cf.LastWindowSize = maximized, size
	slog.Info("system.App: config reloaded", "path", cf.FilePath)
	if a.OnEvent != nil {
		a.OnEvent(a, &Event{Type: ConfigReloadEvent})
	}
}

// try reports err, prefixed by msgPrefix, through OnError and
// returns whether err is nil.
func (a *App) try(err error, msgPrefix string) bool {
	if err == nil {
		return true
	}
	msg := msgPrefix + ": " + err.Error()
	if a.OnError == nil {
		slog.Error("system.App", "err", msg)
	} else {
		a.OnError(msg)
	}
	return false
}
