// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bplusapp is a template app: a window cleared to a configurable
// color, showing how to extend the config file and hook into the frame loop.
//
// Flags (case insensitive):
//
//	-noWriteConfig  do not update Config.toml on exit
//	-vv, -v, -q     debug, info or error-only logging (default: warnings)
package main

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/bplus/gpu"
	"cogentcore.org/bplus/system"
	"cogentcore.org/bplus/system/driver/desktop"
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/math32"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// config is the app's config file, with the base window state.
type config struct {
	system.ConfigFile

	// ClearColor is the background color, as RGBA in [0, 1].
	ClearColor [4]float32
}

func (c *config) OnDeserialized() error {
	for _, v := range c.ClearColor {
		if v < 0 || v > 1 {
			c.ClearColor = [4]float32{1, 1, 1, 1}
			return errors.New("ClearColor components must be in [0, 1]; using white")
		}
	}
	return nil
}

// flags are the command-line options.
type flags struct {
	noWriteConfig bool
	vv, v, q      bool
}

func parseFlags(args []string) flags {
	var f flags
	for _, arg := range args {
		switch strings.ToLower(arg) {
		case "-nowriteconfig":
			f.noWriteConfig = true
		case "-vv":
			f.vv = true
		case "-v":
			f.v = true
		case "-q":
			f.q = true
		}
	}
	return f
}

// demo is the state of the app's rendering.
type demo struct {
	cfg     *config
	texture *gpu.Texture2D
	view    *gpu.TexView
}

func (d *demo) begin(a *system.App) {
	a.GPU.SetDepthTest(gpu.TestLessOrEqual)
	a.GPU.SetFaceCulling(gpu.CullOn)
	a.GPU.SetBlending(gpu.BlendTransparent)

	d.texture = gpu.NewTexture2D(a.GPU, image.Pt(64, 64), gpu.RGBA8, 0, gpu.DefaultSampler())
	d.texture.SetFromImage(checkerboard(64, 8), 0)
	d.texture.RecomputeMips()
	d.view = d.texture.View(nil)
	slog.Info("bplusapp: checkerboard texture ready", "handle", d.view.GLPtr(), "mips", d.texture.MipCount())
}

func (d *demo) quit(a *system.App, force bool) bool {
	if d.view != nil {
		d.view.Release()
		d.view = nil
	}
	if d.texture != nil {
		d.texture.Release()
		d.texture = nil
	}
	return true
}

func (d *demo) event(a *system.App, e *system.Event) {
	slog.Debug("bplusapp: event", "event", e)
	if e.Type == system.KeyEvent && e.Down && e.Code == int(glfw.KeyEscape) {
		a.Quit(false)
	}
}

func (d *demo) render(a *system.App, dt float32) {
	c := d.cfg.ClearColor
	a.GPU.Clear(math32.Vec4(c[0], c[1], c[2], c[3]), 1)
}

func checkerboard(size, cell int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := range size {
		for x := range size {
			if (x/cell+y/cell)%2 == 0 {
				img.Set(x, y, color.White)
			} else {
				img.Set(x, y, color.Black)
			}
		}
	}
	return img
}

func main() {
	f := parseFlags(os.Args[1:])
	logx.UserLevel = logx.LevelFromFlags(f.vv, f.v, f.q)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logx.UserLevel})))

	exitCode := 0
	var app *system.App
	onError := func(msg string) {
		exitCode = 1
		fmt.Fprintf(os.Stderr, "Error: %s\n\n", msg)
		if app != nil {
			app.Quit(true)
		}
	}

	wd := errors.Log1(os.Getwd())
	cfg := &config{
		ConfigFile: system.NewConfigFile(filepath.Join(wd, "Config.toml"), onError, f.noWriteConfig),
		ClearColor: [4]float32{1, 1, 1, 1},
	}
	d := &demo{cfg: cfg}
	app = system.NewApp(desktop.New(), cfg, onError)
	app.Title = "My B+ App"
	app.WatchConfig = true
	app.OnBegin = d.begin
	app.OnQuit = d.quit
	app.OnEvent = d.event
	app.OnRendering = d.render
	app.Run()
	os.Exit(exitCode)
}
