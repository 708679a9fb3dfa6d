// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/bplus/gl"
)

// WrappingModes say how texture coordinates outside [0, 1] are handled.
type WrappingModes int32 //enums:enum -trim-prefix Wrap

const (
	WrapRepeat WrappingModes = iota
	WrapMirrorRepeat
	WrapClamp
	WrapMirrorClamp

	// WrapBorder samples a transparent black border.
	WrapBorder
)

// PixelFilters are the filtering within one mip level.
type PixelFilters int32 //enums:enum -trim-prefix Pixel

const (
	// PixelRough takes the nearest texel.
	PixelRough PixelFilters = iota

	// PixelSmooth interpolates between neighboring texels.
	PixelSmooth
)

// MipFilters are the filtering between mip levels.
type MipFilters int32 //enums:enum -trim-prefix Mip

const (
	// MipOff samples only the base level.
	MipOff MipFilters = iota

	// MipRough takes the nearest mip level.
	MipRough

	// MipSmooth interpolates between the two nearest mip levels.
	MipSmooth
)

// Sampler is how a texture is sampled. It is a comparable value,
// and textures use it as the key for their sampler handles, so two
// equal samplers always share one handle.
//
// The zero Sampler repeats, takes the nearest texel of the base level,
// and works with every format.
type Sampler struct {

	// Wrapping per axis: U, V, W.
	Wrapping [3]WrappingModes

	PixelFilter PixelFilters

	MipFilter MipFilters

	// DepthComparison turns sampling of a depth texture into a comparison
	// against a reference value. TestOff samples the raw depth.
	DepthComparison ValueTests
}

// DefaultSampler returns the trilinear, repeating sampler.
func DefaultSampler() Sampler {
	return Sampler{PixelFilter: PixelSmooth, MipFilter: MipSmooth}
}

// SetWrapping sets the same wrapping on all axes.
func (s *Sampler) SetWrapping(mode WrappingModes) *Sampler {
	s.Wrapping = [3]WrappingModes{mode, mode, mode}
	return s
}

// AssertFormatIsAllowed panics if s can not be used to sample a
// texture of format f: integer formats can not be filtered, and
// a depth comparison needs a depth format.
func (s Sampler) AssertFormatIsAllowed(f Format) {
	if f.IsInteger() && (s.PixelFilter != PixelRough || s.MipFilter == MipSmooth) {
		panic(fmt.Sprintf("gpu.Sampler: integer format %s can only use rough filtering", f))
	}
	if s.DepthComparison != TestOff && !f.IsDepth() {
		panic(fmt.Sprintf("gpu.Sampler: depth comparison on non-depth format %s", f))
	}
}

// Apply writes every parameter of s through set, which is either
// [gl.Driver.TextureParameteri] or [gl.Driver.SamplerParameteri]
// bound to one object.
func (s Sampler) Apply(set func(pname uint32, param int32)) {
	set(gl.TEXTURE_MIN_FILTER, int32(minFilterToGL[s.PixelFilter][s.MipFilter]))
	set(gl.TEXTURE_MAG_FILTER, int32(magFilterToGL[s.PixelFilter]))
	set(gl.TEXTURE_WRAP_S, int32(s.Wrapping[0].glEnum()))
	set(gl.TEXTURE_WRAP_T, int32(s.Wrapping[1].glEnum()))
	set(gl.TEXTURE_WRAP_R, int32(s.Wrapping[2].glEnum()))
	if s.DepthComparison == TestOff {
		set(gl.TEXTURE_COMPARE_MODE, gl.NONE)
		return
	}
	set(gl.TEXTURE_COMPARE_MODE, gl.COMPARE_REF_TO_TEXTURE)
	set(gl.TEXTURE_COMPARE_FUNC, int32(s.DepthComparison.glEnum()))
}
