// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"errors"
	"image"
	"runtime"
	"testing"

	"cogentcore.org/bplus/gl"
	"cogentcore.org/bplus/gl/gltest"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestContext returns a context on a locked OS thread backed by a
// fresh recording driver whose call counters start at zero.
func newTestContext(t *testing.T, sw SwapIntervaler) (*Context, *gltest.Driver) {
	t.Helper()
	runtime.LockOSThread()
	d := gltest.NewDriver()
	d.SetViewportState(image.Rect(0, 0, 800, 600))
	c := NewContext(d, sw)
	t.Cleanup(func() {
		c.Release()
		runtime.UnlockOSThread()
	})
	d.Reset()
	return c, d
}

type fakeSwapper struct {
	interval    int
	noAdaptive  bool
	setRequests []int
}

func (f *fakeSwapper) SwapInterval() int { return f.interval }

func (f *fakeSwapper) SetSwapInterval(interval int) error {
	f.setRequests = append(f.setRequests, interval)
	if interval == -1 && f.noAdaptive {
		return errors.New("adaptive vsync not supported")
	}
	f.interval = interval
	return nil
}

func TestNewContext(t *testing.T) {
	c, d := newTestContext(t, nil)
	assert.Same(t, c, CurrentContext())
	assert.True(t, d.IsEnabled(gl.TEXTURE_CUBE_MAP_SEAMLESS))

	assert.Equal(t, VsyncOff, c.VsyncMode())
	assert.Equal(t, CullOff, c.FaceCulling())
	assert.Equal(t, TestOff, c.DepthTest())
	assert.True(t, c.DepthWrites())
	assert.Equal(t, ColorWriteAll, c.ColorWriteMask())
	assert.Equal(t, BlendOpaque, c.Blending())
	assert.Equal(t, StencilTestOff, c.StencilTest())
	assert.Equal(t, StencilResult{}, c.StencilResult())
	assert.Equal(t, ^uint32(0), c.StencilMask())
	assert.Equal(t, image.Rect(0, 0, 800, 600), c.Viewport())
	_, on := c.Scissor()
	assert.False(t, on)

	assert.Panics(t, func() { NewContext(gltest.NewDriver(), nil) })
	assert.Same(t, c, CurrentContext())
}

func TestContextRelease(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	c := NewContext(gltest.NewDriver(), nil)
	c.Release()
	assert.Nil(t, CurrentContext())
	assert.Panics(t, func() { c.SetDepthTest(TestLess) })
	c.Release()

	c2 := NewContext(gltest.NewDriver(), nil)
	assert.Same(t, c2, CurrentContext())
	c2.Release()
}

func TestDepthTestElision(t *testing.T) {
	c, d := newTestContext(t, nil)
	c.SetDepthTest(TestLess)
	c.SetDepthTest(TestLess)
	assert.Equal(t, 1, d.Calls("DepthFunc"))
	assert.Equal(t, 1, d.Calls("Enable"))

	c.SetDepthTest(TestGreater)
	assert.Equal(t, 2, d.Calls("DepthFunc"))
	assert.Equal(t, 1, d.Calls("Enable"))
	assert.Equal(t, TestGreater, c.DepthTest())

	c.SetDepthTest(TestOff)
	c.SetDepthTest(TestOff)
	assert.Equal(t, 1, d.Calls("Disable"))
	assert.False(t, d.IsEnabled(gl.DEPTH_TEST))
}

func TestSimpleStates(t *testing.T) {
	c, d := newTestContext(t, nil)
	c.SetDepthWrites(true)
	assert.Equal(t, 0, d.Calls("DepthMask"))
	c.SetDepthWrites(false)
	c.SetDepthWrites(false)
	assert.Equal(t, 1, d.Calls("DepthMask"))

	mask := ColorWriteMask{true, false, true, false}
	c.SetColorWriteMask(mask)
	c.SetColorWriteMask(mask)
	assert.Equal(t, 1, d.Calls("ColorMask"))
	assert.Equal(t, mask, c.ColorWriteMask())

	c.SetFaceCulling(CullOn)
	c.SetFaceCulling(CullBackwards)
	c.SetFaceCulling(CullBackwards)
	assert.Equal(t, 1, d.Calls("Enable"))
	assert.Equal(t, 2, d.Calls("CullFace"))
	c.SetFaceCulling(CullOff)
	assert.Equal(t, 1, d.Calls("Disable"))
}

func TestBlending(t *testing.T) {
	c, d := newTestContext(t, nil)
	c.SetBlending(BlendOpaque)
	assert.Equal(t, 0, d.TotalCalls())

	c.SetBlending(BlendTransparent)
	c.SetBlending(BlendTransparent)
	assert.Equal(t, 1, d.Calls("Enable"))
	assert.Equal(t, 1, d.Calls("BlendFuncSeparate"))
	assert.Equal(t, 1, d.Calls("BlendEquationSeparate"))
	assert.Equal(t, BlendTransparent, c.Blending())

	c.SetAlphaBlending(BlendStateAlpha{Src: BlendOne, Dest: BlendOne, Op: BlendMax, Constant: 0.5})
	assert.Equal(t, 1, d.Calls("Enable"))
	assert.Equal(t, 2, d.Calls("BlendFuncSeparate"))
	assert.Panics(t, func() { c.Blending() })
	assert.Equal(t, BlendTransparent.RGB(), c.ColorBlending())

	c.SetBlending(BlendOpaque)
	assert.Equal(t, 1, d.Calls("Disable"))
	assert.False(t, d.IsEnabled(gl.BLEND))
	assert.Equal(t, BlendOpaque, c.Blending())
}

func TestStencil(t *testing.T) {
	c, d := newTestContext(t, nil)
	test := StencilTest{Test: TestEqual, Ref: 1, Mask: 0xFF}
	c.SetStencilTest(test)
	c.SetStencilTest(test)
	assert.Equal(t, 1, d.Calls("StencilFuncSeparate"))
	assert.Equal(t, 1, d.Calls("Enable"))
	assert.Equal(t, uint32(gl.FRONT_AND_BACK), d.Log[0].Args[0])
	assert.Equal(t, test, c.StencilTest())

	c.SetStencilTestBackFaces(StencilTestOff)
	assert.Equal(t, 2, d.Calls("StencilFuncSeparate"))
	assert.Equal(t, test, c.StencilTestFrontFaces())
	assert.Equal(t, StencilTestOff, c.StencilTestBackFaces())
	assert.Panics(t, func() { c.StencilTest() })
	assert.Equal(t, 1, d.Calls("Enable"))

	c.SetStencilTestFrontFaces(StencilTestOff)
	assert.Equal(t, 1, d.Calls("Disable"))
	assert.False(t, d.IsEnabled(gl.STENCIL_TEST))

	res := StencilResult{StencilFail: StencilKeep, DepthFail: StencilZero, Pass: StencilIncrementWrap}
	c.SetStencilResult(res)
	c.SetStencilResultFrontFaces(res)
	assert.Equal(t, 1, d.Calls("StencilOpSeparate"))
	assert.Equal(t, res, c.StencilResult())

	c.SetStencilMaskFrontFaces(0x0F)
	c.SetStencilMaskFrontFaces(0x0F)
	assert.Equal(t, 1, d.Calls("StencilMaskSeparate"))
	assert.Equal(t, uint32(0x0F), c.StencilMaskFrontFaces())
	assert.Equal(t, ^uint32(0), c.StencilMaskBackFaces())
	assert.Panics(t, func() { c.StencilMask() })
	c.SetStencilMask(0x0F)
	assert.Equal(t, 2, d.Calls("StencilMaskSeparate"))
	assert.Equal(t, uint32(0x0F), c.StencilMask())
}

func TestViewportScissor(t *testing.T) {
	c, d := newTestContext(t, nil)
	c.SetViewportSize(image.Pt(800, 600))
	assert.Equal(t, 0, d.Calls("Viewport"))
	c.SetViewport(image.Rect(10, 20, 110, 220))
	assert.Equal(t, 1, d.Calls("Viewport"))
	assert.Equal(t, []any{int32(10), int32(20), int32(100), int32(200)}, d.Log[0].Args)

	r := image.Rect(0, 0, 50, 50)
	c.SetScissor(r)
	c.SetScissor(r)
	assert.Equal(t, 1, d.Calls("Enable"))
	assert.Equal(t, 1, d.Calls("Scissor"))
	got, on := c.Scissor()
	assert.True(t, on)
	assert.Equal(t, r, got)
	c.DisableScissor()
	c.DisableScissor()
	assert.Equal(t, 1, d.Calls("Disable"))
}

func TestRefreshDriverState(t *testing.T) {
	c, d := newTestContext(t, nil)
	d.Enable(gl.DEPTH_TEST)
	d.DepthFunc(gl.GEQUAL)
	d.Enable(gl.BLEND)
	d.BlendFuncSeparate(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA, gl.ONE, gl.ZERO)
	d.BlendColor(0.25, 0.5, 0.75, 1)
	d.Enable(gl.STENCIL_TEST)
	d.StencilFuncSeparate(gl.FRONT, gl.NOTEQUAL, 2, 0xF0)
	d.StencilMaskSeparate(gl.BACK, 0x80000001)
	d.Enable(gl.CULL_FACE)
	d.CullFace(gl.FRONT)

	c.RefreshDriverState()
	assert.Equal(t, TestGreaterOrEqual, c.DepthTest())
	assert.Equal(t, CullBackwards, c.FaceCulling())
	assert.Equal(t, BlendStateRGB{Src: BlendSrcAlpha, Dest: BlendInverseSrcAlpha, Op: BlendAdd,
		Constant: math32.Vec3(0.25, 0.5, 0.75)}, c.ColorBlending())
	assert.Equal(t, BlendStateAlpha{Src: BlendOne, Dest: BlendZero, Op: BlendAdd, Constant: 1}, c.AlphaBlending())
	assert.Equal(t, StencilTest{Test: TestNotEqual, Ref: 2, Mask: 0xF0}, c.StencilTestFrontFaces())
	assert.Equal(t, StencilTest{Test: TestAlways, Ref: 0, Mask: ^uint32(0)}, c.StencilTestBackFaces())
	assert.Equal(t, uint32(0x80000001), c.StencilMaskBackFaces())

	d.Reset()
	c.SetDepthTest(TestGreaterOrEqual)
	assert.Equal(t, 0, d.TotalCalls())
}

func TestVsync(t *testing.T) {
	sw := &fakeSwapper{interval: 1, noAdaptive: true}
	c, _ := newTestContext(t, sw)
	assert.Equal(t, VsyncOn, c.VsyncMode())

	require.NoError(t, c.SetVsyncMode(VsyncOff))
	assert.Equal(t, VsyncOff, c.VsyncMode())
	require.NoError(t, c.SetVsyncMode(VsyncAdaptive))
	assert.Equal(t, VsyncOn, c.VsyncMode())
	assert.Equal(t, []int{0, -1, 1}, sw.setRequests)

	require.NoError(t, c.SetVsyncMode(VsyncOn))
	assert.Len(t, sw.setRequests, 3)

	// adaptive is not tried again once rejected
	require.NoError(t, c.SetVsyncMode(VsyncAdaptive))
	assert.Equal(t, VsyncOn, c.VsyncMode())
	assert.Len(t, sw.setRequests, 3)
	require.NoError(t, c.SetVsyncMode(VsyncOff))
	require.NoError(t, c.SetVsyncMode(VsyncAdaptive))
	assert.Equal(t, VsyncOn, c.VsyncMode())
	assert.Equal(t, []int{0, -1, 1, 0, 1}, sw.setRequests)
}

func TestVsyncAdaptive(t *testing.T) {
	sw := &fakeSwapper{interval: 0}
	c, _ := newTestContext(t, sw)
	require.NoError(t, c.SetVsyncMode(VsyncAdaptive))
	assert.Equal(t, VsyncAdaptive, c.VsyncMode())
	assert.Equal(t, -1, sw.interval)
	assert.Equal(t, []int{-1}, sw.setRequests)
}

func TestVsyncHeadless(t *testing.T) {
	c, _ := newTestContext(t, nil)
	assert.Error(t, c.SetVsyncMode(VsyncOn))
	assert.Equal(t, VsyncOff, c.VsyncMode())
	assert.NoError(t, c.SetVsyncMode(VsyncOff))
}

func TestClear(t *testing.T) {
	c, d := newTestContext(t, nil)
	c.Clear(math32.Vec4(1, 0, 1, 1), 0.5)
	assert.Equal(t, [4]float32{1, 0, 1, 1}, d.LastClearColor)
	assert.Equal(t, float32(0.5), d.LastClearDepth)
	c.ClearDepth(1)
	assert.Equal(t, 3, d.Calls("ClearNamedFramebufferfv"))
	assert.Equal(t, float32(1), d.LastClearDepth)
}
