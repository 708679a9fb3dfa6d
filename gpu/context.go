// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu manages OpenGL 4.5 state and bindless texture resources.
//
// A [Context] mirrors the driver's global pipeline state and skips any
// state change that would not change anything. Textures own their GPU
// storage and hand out views ([TexView], [ImgView]) of bindless handles,
// which are made resident while at least one view of them is alive.
//
// Everything in this package is bound to the OS thread that owns the
// OpenGL context: callers must use [runtime.LockOSThread], and at most
// one Context may exist per thread.
package gpu

import (
	"fmt"
	"image"
	"log/slog"
	"sync"

	"cogentcore.org/bplus/gl"
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// The OpenGL version that the engine targets.
const (
	GLVersionMajor = 4
	GLVersionMinor = 5
	GLSLVersion    = "#version 450"
)

// SwapIntervaler is the part of the window system that controls vsync
// for the window owning a context.
type SwapIntervaler interface {

	// SwapInterval returns the current swap interval.
	SwapInterval() int

	// SetSwapInterval sets the swap interval: 0 for immediate, 1 for
	// vsync, -1 for adaptive vsync. It returns an error if the interval
	// is not supported.
	SetSwapInterval(interval int) error
}

// contexts holds the Context of each OS thread.
var contexts = struct {
	sync.Mutex
	byThread map[uint64]*Context
}{byThread: map[uint64]*Context{}}

// CurrentContext returns the Context of the calling OS thread,
// or nil if there is none.
func CurrentContext() *Context {
	contexts.Lock()
	defer contexts.Unlock()
	return contexts.byThread[threadID()]
}

// Context is the cached OpenGL global state of one context. Every
// setter compares against the cache and only calls the driver if the
// value changes; getters never call the driver.
//
// The cache is only correct while all state changes go through it.
// After any direct driver call that changes state, call
// [Context.RefreshDriverState].
type Context struct {
	drv    gl.Driver
	sw     SwapIntervaler
	thread uint64

	vsync       VsyncModes
	cull        FaceCullModes
	depthTest   ValueTests
	depthWrites bool
	colorMask   ColorWriteMask
	colorBlend  BlendStateRGB
	alphaBlend  BlendStateAlpha

	// Per-face stencil state, indexed front then back.
	stencilTest   [2]StencilTest
	stencilResult [2]StencilResult
	stencilMask   [2]uint32

	viewport       image.Rectangle
	scissor        image.Rectangle
	scissorEnabled bool

	// noAdaptiveVsync is set once the window system rejected adaptive vsync.
	noAdaptiveVsync bool
}

// NewContext returns the Context for the OpenGL context that is current
// on the calling OS thread, loading its state from drv. sw controls
// vsync; it may be nil for headless use, in which case vsync is Off.
// NewContext panics if the thread already has a Context.
func NewContext(drv gl.Driver, sw SwapIntervaler) *Context {
	if drv == nil {
		panic("gpu.NewContext: nil driver")
	}
	id := threadID()
	c := &Context{drv: drv, sw: sw, thread: id}
	contexts.Lock()
	if contexts.byThread[id] != nil {
		contexts.Unlock()
		panic(fmt.Sprintf("gpu.NewContext: a Context already exists on OS thread %d", id))
	}
	contexts.byThread[id] = c
	contexts.Unlock()

	drv.Enable(gl.TEXTURE_CUBE_MAP_SEAMLESS)
	drv.Disable(gl.SCISSOR_TEST)
	c.RefreshDriverState()
	slog.Debug("gpu.NewContext", "thread", id, "viewport", c.viewport)
	return c
}

// Release unregisters the context from its thread.
// The Context can not be used afterwards.
func (c *Context) Release() {
	if c.drv == nil {
		return
	}
	contexts.Lock()
	if contexts.byThread[c.thread] == c {
		delete(contexts.byThread, c.thread)
	}
	contexts.Unlock()
	c.drv = nil
	slog.Debug("gpu.Context Release", "thread", c.thread)
}

// Driver returns the driver that the context calls. Any state changed
// directly through it must be followed by [Context.RefreshDriverState].
func (c *Context) Driver() gl.Driver {
	if c.drv == nil {
		panic("gpu.Context: use after Release")
	}
	return c.drv
}

func (c *Context) getInt(d gl.Driver, pname uint32) int32 {
	var v [1]int32
	d.GetIntegerv(pname, v[:])
	return v[0]
}

func (c *Context) getRect(d gl.Driver, pname uint32) image.Rectangle {
	var v [4]int32
	d.GetIntegerv(pname, v[:])
	return image.Rect(int(v[0]), int(v[1]), int(v[0]+v[2]), int(v[1]+v[3]))
}

// RefreshDriverState queries the driver for all tracked state,
// replacing the cache.
func (c *Context) RefreshDriverState() {
	d := c.Driver()

	c.viewport = c.getRect(d, gl.VIEWPORT)
	c.scissorEnabled = d.IsEnabled(gl.SCISSOR_TEST)
	c.scissor = c.getRect(d, gl.SCISSOR_BOX)

	var mask [4]bool
	d.GetBooleanv(gl.DEPTH_WRITEMASK, mask[:1])
	c.depthWrites = mask[0]
	d.GetBooleanv(gl.COLOR_WRITEMASK, mask[:])
	c.colorMask = ColorWriteMask(mask)

	c.vsync = VsyncOff
	if c.sw != nil {
		c.vsync = VsyncModes(c.sw.SwapInterval())
	}

	c.cull = CullOff
	if d.IsEnabled(gl.CULL_FACE) {
		c.cull = fromGL(cullFromGL, "cull face mode", c.getInt(d, gl.CULL_FACE_MODE))
	}
	c.depthTest = TestOff
	if d.IsEnabled(gl.DEPTH_TEST) {
		c.depthTest = fromGL(valueTestFromGL, "depth func", c.getInt(d, gl.DEPTH_FUNC))
	}

	if d.IsEnabled(gl.BLEND) {
		var col [4]float32
		d.GetFloatv(gl.BLEND_COLOR, col[:])
		factor := func(pname uint32) BlendFactors {
			return fromGL(blendFactorFromGL, "blend factor", c.getInt(d, pname))
		}
		op := func(pname uint32) BlendOps {
			return fromGL(blendOpFromGL, "blend equation", c.getInt(d, pname))
		}
		c.colorBlend = BlendStateRGB{Src: factor(gl.BLEND_SRC_RGB), Dest: factor(gl.BLEND_DST_RGB),
			Op: op(gl.BLEND_EQUATION_RGB), Constant: math32.Vec3(col[0], col[1], col[2])}
		c.alphaBlend = BlendStateAlpha{Src: factor(gl.BLEND_SRC_ALPHA), Dest: factor(gl.BLEND_DST_ALPHA),
			Op: op(gl.BLEND_EQUATION_ALPHA), Constant: col[3]}
	} else {
		c.colorBlend = BlendOpaque.RGB()
		c.alphaBlend = BlendOpaque.Alpha()
	}

	stencilOn := d.IsEnabled(gl.STENCIL_TEST)
	pnames := [2][7]uint32{
		{gl.STENCIL_FUNC, gl.STENCIL_REF, gl.STENCIL_VALUE_MASK,
			gl.STENCIL_FAIL, gl.STENCIL_PASS_DEPTH_FAIL, gl.STENCIL_PASS_DEPTH_PASS, gl.STENCIL_WRITEMASK},
		{gl.STENCIL_BACK_FUNC, gl.STENCIL_BACK_REF, gl.STENCIL_BACK_VALUE_MASK,
			gl.STENCIL_BACK_FAIL, gl.STENCIL_BACK_PASS_DEPTH_FAIL, gl.STENCIL_BACK_PASS_DEPTH_PASS, gl.STENCIL_BACK_WRITEMASK},
	}
	for face, pn := range pnames {
		st := StencilTest{Test: TestOff, Ref: c.getInt(d, pn[1]), Mask: uint32(c.getInt(d, pn[2]))}
		if stencilOn {
			st.Test = fromGL(valueTestFromGL, "stencil func", c.getInt(d, pn[0]))
		}
		c.stencilTest[face] = st
		sop := func(pname uint32) StencilOps {
			return fromGL(stencilOpFromGL, "stencil op", c.getInt(d, pname))
		}
		c.stencilResult[face] = StencilResult{StencilFail: sop(pn[3]), DepthFail: sop(pn[4]), Pass: sop(pn[5])}
		c.stencilMask[face] = uint32(c.getInt(d, pn[6]))
	}
}

// Clear clears the color and depth of the default framebuffer.
func (c *Context) Clear(rgba math32.Vector4, depth float32) {
	c.ClearColor(rgba)
	c.ClearDepth(depth)
}

// ClearColor clears the color of the default framebuffer.
func (c *Context) ClearColor(rgba math32.Vector4) {
	c.Driver().ClearNamedFramebufferfv(0, gl.COLOR, 0, []float32{rgba.X, rgba.Y, rgba.Z, rgba.W})
}

// ClearDepth clears the depth of the default framebuffer.
func (c *Context) ClearDepth(depth float32) {
	c.Driver().ClearNamedFramebufferfv(0, gl.DEPTH, 0, []float32{depth})
}

// Viewport returns the current viewport, in pixels from the bottom left.
func (c *Context) Viewport() image.Rectangle { return c.viewport }

// SetViewport sets the viewport, in pixels from the bottom left.
func (c *Context) SetViewport(r image.Rectangle) {
	if r == c.viewport {
		return
	}
	c.Driver().Viewport(int32(r.Min.X), int32(r.Min.Y), int32(r.Dx()), int32(r.Dy()))
	c.viewport = r
}

// SetViewportSize sets the viewport to cover size from the origin.
func (c *Context) SetViewportSize(size image.Point) {
	c.SetViewport(image.Rectangle{Max: size})
}

// Scissor returns the scissor rectangle and whether scissoring is on.
func (c *Context) Scissor() (image.Rectangle, bool) { return c.scissor, c.scissorEnabled }

// SetScissor enables scissoring to r.
func (c *Context) SetScissor(r image.Rectangle) {
	d := c.Driver()
	if !c.scissorEnabled {
		d.Enable(gl.SCISSOR_TEST)
		c.scissorEnabled = true
	}
	if r != c.scissor {
		d.Scissor(int32(r.Min.X), int32(r.Min.Y), int32(r.Dx()), int32(r.Dy()))
		c.scissor = r
	}
}

// DisableScissor turns scissoring off.
func (c *Context) DisableScissor() {
	if !c.scissorEnabled {
		return
	}
	c.Driver().Disable(gl.SCISSOR_TEST)
	c.scissorEnabled = false
}

// VsyncMode returns the current vsync mode.
func (c *Context) VsyncMode() VsyncModes { return c.vsync }

// SetVsyncMode sets the vsync mode. If adaptive vsync is not supported,
// it falls back to regular vsync, and later requests for adaptive vsync
// go straight to regular vsync. It returns an error if the window
// system rejects the resulting mode, in which case the mode is unchanged.
func (c *Context) SetVsyncMode(mode VsyncModes) error {
	if mode == VsyncAdaptive && c.noAdaptiveVsync {
		mode = VsyncOn
	}
	if mode == c.vsync {
		return nil
	}
	if c.sw == nil {
		return errors.Log(fmt.Errorf("gpu.Context SetVsyncMode %s: no window system", mode))
	}
	err := c.sw.SetSwapInterval(int(mode))
	if err != nil && mode == VsyncAdaptive {
		slog.Warn("gpu.Context SetVsyncMode: adaptive vsync not supported, using regular vsync", "err", err)
		c.noAdaptiveVsync = true
		mode = VsyncOn
		err = c.sw.SetSwapInterval(int(mode))
	}
	if err != nil {
		return errors.Log(fmt.Errorf("gpu.Context SetVsyncMode %s: %w", mode, err))
	}
	c.vsync = mode
	return nil
}

// FaceCulling returns the current face culling mode.
func (c *Context) FaceCulling() FaceCullModes { return c.cull }

// SetFaceCulling sets the face culling mode.
func (c *Context) SetFaceCulling(mode FaceCullModes) {
	if mode == c.cull {
		return
	}
	d := c.Driver()
	if mode == CullOff {
		d.Disable(gl.CULL_FACE)
	} else {
		if c.cull == CullOff {
			d.Enable(gl.CULL_FACE)
		}
		d.CullFace(mode.glEnum())
	}
	c.cull = mode
}

// DepthTest returns the current depth test.
func (c *Context) DepthTest() ValueTests { return c.depthTest }

// SetDepthTest sets the depth test; TestOff disables it.
func (c *Context) SetDepthTest(test ValueTests) {
	if test == c.depthTest {
		return
	}
	d := c.Driver()
	if test == TestOff {
		d.Disable(gl.DEPTH_TEST)
	} else {
		if c.depthTest == TestOff {
			d.Enable(gl.DEPTH_TEST)
		}
		d.DepthFunc(test.glEnum())
	}
	c.depthTest = test
}

// DepthWrites returns whether depth writes are enabled.
func (c *Context) DepthWrites() bool { return c.depthWrites }

func (c *Context) SetDepthWrites(canWrite bool) {
	if canWrite == c.depthWrites {
		return
	}
	c.Driver().DepthMask(canWrite)
	c.depthWrites = canWrite
}

// ColorWriteMask returns which color channels can be written.
func (c *Context) ColorWriteMask() ColorWriteMask { return c.colorMask }

func (c *Context) SetColorWriteMask(mask ColorWriteMask) {
	if mask == c.colorMask {
		return
	}
	c.Driver().ColorMask(mask[0], mask[1], mask[2], mask[3])
	c.colorMask = mask
}

// Blending returns the blend state shared by color and alpha.
// It panics if they differ; use [Context.ColorBlending] and
// [Context.AlphaBlending] then.
func (c *Context) Blending() BlendStateRGBA {
	rgb, a := c.colorBlend, c.alphaBlend
	if rgb.Src != a.Src || rgb.Dest != a.Dest || rgb.Op != a.Op {
		panic("gpu.Context Blending: color and alpha blending differ")
	}
	return BlendStateRGBA{Src: rgb.Src, Dest: rgb.Dest, Op: rgb.Op,
		Constant: math32.Vec4(rgb.Constant.X, rgb.Constant.Y, rgb.Constant.Z, a.Constant)}
}

// SetBlending sets both color and alpha blending.
func (c *Context) SetBlending(state BlendStateRGBA) { c.setBlend(state.RGB(), state.Alpha()) }

func (c *Context) ColorBlending() BlendStateRGB { return c.colorBlend }

func (c *Context) SetColorBlending(state BlendStateRGB) { c.setBlend(state, c.alphaBlend) }

func (c *Context) AlphaBlending() BlendStateAlpha { return c.alphaBlend }

func (c *Context) SetAlphaBlending(state BlendStateAlpha) { c.setBlend(c.colorBlend, state) }

// setBlend applies a new blend state. The driver's blend capability
// is on exactly when either side is not opaque.
func (c *Context) setBlend(rgb BlendStateRGB, a BlendStateAlpha) {
	if rgb == c.colorBlend && a == c.alphaBlend {
		return
	}
	d := c.Driver()
	wasOn := !c.colorBlend.IsOpaque() || !c.alphaBlend.IsOpaque()
	on := !rgb.IsOpaque() || !a.IsOpaque()
	c.colorBlend, c.alphaBlend = rgb, a
	if !on {
		if wasOn {
			d.Disable(gl.BLEND)
		}
		return
	}
	if !wasOn {
		d.Enable(gl.BLEND)
	}
	d.BlendFuncSeparate(rgb.Src.glEnum(), rgb.Dest.glEnum(), a.Src.glEnum(), a.Dest.glEnum())
	d.BlendEquationSeparate(rgb.Op.glEnum(), a.Op.glEnum())
	d.BlendColor(rgb.Constant.X, rgb.Constant.Y, rgb.Constant.Z, a.Constant)
}

// setFaces updates a front/back state pair, calling apply once for both
// faces when they change to the same value.
func setFaces[T comparable](cur *[2]T, next [2]T, apply func(face uint32, v T)) {
	front, back := next[0] != cur[0], next[1] != cur[1]
	switch {
	case front && back && next[0] == next[1]:
		apply(gl.FRONT_AND_BACK, next[0])
	case front && back:
		apply(gl.FRONT, next[0])
		apply(gl.BACK, next[1])
	case front:
		apply(gl.FRONT, next[0])
	case back:
		apply(gl.BACK, next[1])
	}
	*cur = next
}

// bothFaces returns the value shared by both faces, panicking if they differ.
func bothFaces[T comparable](faces [2]T, what string) T {
	if faces[0] != faces[1] {
		panic(fmt.Sprintf("gpu.Context %s: front and back faces differ", what))
	}
	return faces[0]
}

// StencilTest returns the stencil test shared by both faces.
// It panics if the faces differ.
func (c *Context) StencilTest() StencilTest { return bothFaces(c.stencilTest, "StencilTest") }

func (c *Context) StencilTestFrontFaces() StencilTest { return c.stencilTest[0] }

func (c *Context) StencilTestBackFaces() StencilTest { return c.stencilTest[1] }

// SetStencilTest sets the stencil test of both faces.
func (c *Context) SetStencilTest(test StencilTest) { c.setStencilTest([2]StencilTest{test, test}) }

func (c *Context) SetStencilTestFrontFaces(test StencilTest) {
	c.setStencilTest([2]StencilTest{test, c.stencilTest[1]})
}

func (c *Context) SetStencilTestBackFaces(test StencilTest) {
	c.setStencilTest([2]StencilTest{c.stencilTest[0], test})
}

// setStencilTest applies per-face stencil tests. The driver's stencil
// capability is on exactly when either face has a test.
func (c *Context) setStencilTest(next [2]StencilTest) {
	wasOn := c.stencilTest[0].Test != TestOff || c.stencilTest[1].Test != TestOff
	on := next[0].Test != TestOff || next[1].Test != TestOff
	if next == c.stencilTest {
		return
	}
	d := c.Driver()
	setFaces(&c.stencilTest, next, func(face uint32, st StencilTest) {
		d.StencilFuncSeparate(face, st.funcGL(), st.Ref, st.Mask)
	})
	switch {
	case on && !wasOn:
		d.Enable(gl.STENCIL_TEST)
	case !on && wasOn:
		d.Disable(gl.STENCIL_TEST)
	}
}

// StencilResult returns the stencil writes shared by both faces.
// It panics if the faces differ.
func (c *Context) StencilResult() StencilResult { return bothFaces(c.stencilResult, "StencilResult") }

func (c *Context) StencilResultFrontFaces() StencilResult { return c.stencilResult[0] }

func (c *Context) StencilResultBackFaces() StencilResult { return c.stencilResult[1] }

func (c *Context) SetStencilResult(result StencilResult) {
	c.setStencilResult([2]StencilResult{result, result})
}

func (c *Context) SetStencilResultFrontFaces(result StencilResult) {
	c.setStencilResult([2]StencilResult{result, c.stencilResult[1]})
}

func (c *Context) SetStencilResultBackFaces(result StencilResult) {
	c.setStencilResult([2]StencilResult{c.stencilResult[0], result})
}

func (c *Context) setStencilResult(next [2]StencilResult) {
	if next == c.stencilResult {
		return
	}
	d := c.Driver()
	setFaces(&c.stencilResult, next, func(face uint32, r StencilResult) {
		d.StencilOpSeparate(face, r.StencilFail.glEnum(), r.DepthFail.glEnum(), r.Pass.glEnum())
	})
}

// StencilMask returns the stencil write mask shared by both faces.
// It panics if the faces differ.
func (c *Context) StencilMask() uint32 { return bothFaces(c.stencilMask, "StencilMask") }

func (c *Context) StencilMaskFrontFaces() uint32 { return c.stencilMask[0] }

func (c *Context) StencilMaskBackFaces() uint32 { return c.stencilMask[1] }

// SetStencilMask sets which stencil bits of both faces can be written.
func (c *Context) SetStencilMask(mask uint32) { c.setStencilMask([2]uint32{mask, mask}) }

func (c *Context) SetStencilMaskFrontFaces(mask uint32) {
	c.setStencilMask([2]uint32{mask, c.stencilMask[1]})
}

func (c *Context) SetStencilMaskBackFaces(mask uint32) {
	c.setStencilMask([2]uint32{c.stencilMask[0], mask})
}

func (c *Context) setStencilMask(next [2]uint32) {
	if next == c.stencilMask {
		return
	}
	d := c.Driver()
	setFaces(&c.stencilMask, next, func(face uint32, mask uint32) {
		d.StencilMaskSeparate(face, mask)
	})
}
