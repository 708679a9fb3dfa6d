// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"cogentcore.org/core/math32"
)

// VsyncModes are the swap-interval settings for the window
// that owns a [Context]. The values are the swap intervals
// passed to the window system.
type VsyncModes int32 //enums:enum -trim-prefix Vsync

const (
	// VsyncOff presents frames as soon as they are rendered.
	VsyncOff VsyncModes = 0

	// VsyncOn waits for the vertical blank before presenting.
	VsyncOn VsyncModes = 1

	// VsyncAdaptive waits for the vertical blank unless the frame
	// is already late, in which case it presents immediately.
	VsyncAdaptive VsyncModes = -1
)

// FaceCullModes determine which triangle faces are discarded.
type FaceCullModes int32 //enums:enum -trim-prefix Cull

const (
	// CullOff draws both faces.
	CullOff FaceCullModes = iota

	// CullOn discards back faces.
	CullOn

	// CullBackwards discards front faces.
	CullBackwards

	// CullAll discards every triangle.
	CullAll
)

// ValueTests are comparisons of a new value against an existing one,
// used for the depth test, the stencil test and depth samplers.
// TestOff disables the test entirely.
type ValueTests int32 //enums:enum -trim-prefix Test

const (
	TestOff ValueTests = iota
	TestNever
	TestAlways
	TestLess
	TestLessOrEqual
	TestGreater
	TestGreaterOrEqual
	TestEqual
	TestNotEqual
)

// BlendFactors scale the source or destination color when blending.
type BlendFactors int32 //enums:enum -trim-prefix Blend

const (
	BlendZero BlendFactors = iota
	BlendOne
	BlendSrcColor
	BlendInverseSrcColor
	BlendSrcAlpha
	BlendInverseSrcAlpha
	BlendDstColor
	BlendInverseDstColor
	BlendDstAlpha
	BlendInverseDstAlpha
	BlendConstantColor
	BlendInverseConstantColor
	BlendConstantAlpha
	BlendInverseConstantAlpha
)

// BlendOps combine the scaled source and destination colors.
type BlendOps int32 //enums:enum -trim-prefix Blend

const (
	BlendAdd BlendOps = iota
	BlendSubtract
	BlendReverseSubtract
	BlendMin
	BlendMax
)

// BlendStateRGB is the blend function for the color channels.
type BlendStateRGB struct {
	Src, Dest BlendFactors
	Op        BlendOps

	// Constant is the RGB part of the constant blend color.
	Constant math32.Vector3
}

// BlendStateAlpha is the blend function for the alpha channel.
type BlendStateAlpha struct {
	Src, Dest BlendFactors
	Op        BlendOps

	// Constant is the alpha part of the constant blend color.
	Constant float32
}

// BlendStateRGBA is a blend function shared by color and alpha.
type BlendStateRGBA struct {
	Src, Dest BlendFactors
	Op        BlendOps
	Constant  math32.Vector4
}

// Common blend states.
var (
	// BlendOpaque overwrites the destination; it is what the driver
	// does when blending is disabled.
	BlendOpaque = BlendStateRGBA{Src: BlendOne, Dest: BlendZero, Op: BlendAdd}

	// BlendTransparent is standard non-premultiplied alpha blending.
	BlendTransparent = BlendStateRGBA{Src: BlendSrcAlpha, Dest: BlendInverseSrcAlpha, Op: BlendAdd}

	// BlendAdditive sums source and destination.
	BlendAdditive = BlendStateRGBA{Src: BlendOne, Dest: BlendOne, Op: BlendAdd}
)

// RGB returns the color part of the state.
func (bs BlendStateRGBA) RGB() BlendStateRGB {
	return BlendStateRGB{Src: bs.Src, Dest: bs.Dest, Op: bs.Op,
		Constant: math32.Vec3(bs.Constant.X, bs.Constant.Y, bs.Constant.Z)}
}

// Alpha returns the alpha part of the state.
func (bs BlendStateRGBA) Alpha() BlendStateAlpha {
	return BlendStateAlpha{Src: bs.Src, Dest: bs.Dest, Op: bs.Op, Constant: bs.Constant.W}
}

// IsOpaque returns whether the state is (One, Zero, Add),
// for which the constant color is irrelevant.
func (bs BlendStateRGB) IsOpaque() bool {
	return bs.Src == BlendOne && bs.Dest == BlendZero && bs.Op == BlendAdd
}

// IsOpaque returns whether the state is (One, Zero, Add),
// for which the constant alpha is irrelevant.
func (bs BlendStateAlpha) IsOpaque() bool {
	return bs.Src == BlendOne && bs.Dest == BlendZero && bs.Op == BlendAdd
}

// StencilTest decides whether a fragment passes the stencil test:
// (Ref & Mask) is compared against (stencil & Mask) with Test.
type StencilTest struct {
	Test ValueTests
	Ref  int32
	Mask uint32
}

// StencilTestOff is the stencil test of a fresh context.
var StencilTestOff = StencilTest{Test: TestOff, Ref: 0, Mask: ^uint32(0)}

// StencilOps say what happens to a stencil value.
type StencilOps int32 //enums:enum -trim-prefix Stencil

const (
	StencilKeep StencilOps = iota
	StencilZero
	StencilReplace
	StencilIncrement
	StencilIncrementWrap
	StencilDecrement
	StencilDecrementWrap
	StencilInvert
)

// StencilResult is the stencil write that happens
// for each outcome of the stencil and depth tests.
type StencilResult struct {

	// StencilFail applies when the stencil test fails.
	StencilFail StencilOps

	// DepthFail applies when the stencil test passes and the depth test fails.
	DepthFail StencilOps

	// Pass applies when both tests pass.
	Pass StencilOps
}

// ColorWriteMask enables writes to the R, G, B and A channels.
type ColorWriteMask [4]bool

// ColorWriteAll enables writes to every channel.
var ColorWriteAll = ColorWriteMask{true, true, true, true}

// ImageAccessModes are how a shader may use an image handle.
type ImageAccessModes int32 //enums:enum -trim-prefix Access

const (
	AccessRead ImageAccessModes = iota
	AccessWrite
	AccessReadWrite
)

// covers returns whether a handle made resident with am
// can be used with other.
func (am ImageAccessModes) covers(other ImageAccessModes) bool {
	return am == other || am == AccessReadWrite
}
