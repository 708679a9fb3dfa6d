// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"math/bits"
)

// Format is the sized pixel format of a texture's storage.
type Format int32 //enums:enum

const (
	UndefinedFormat Format = iota

	R8
	RG8
	RGB8
	RGBA8
	SRGB8
	SRGB8A8

	R16F
	RG16F
	RGBA16F
	R32F
	RG32F
	RGBA32F

	R8UI
	R32UI
	RGBA8UI
	RGBA32UI
	R32I
	RGBA32I

	Depth16
	Depth24
	Depth32F
	Depth24Stencil8
	Depth32FStencil8

	// BC1 is DXT1: opaque RGB, 8 bytes per 4x4 block.
	BC1

	// BC3 is DXT5: RGBA, 16 bytes per 4x4 block.
	BC3

	// BC4 is RGTC1: one channel.
	BC4

	// BC5 is RGTC2: two channels.
	BC5

	// BC6H is BPTC unsigned float HDR RGB.
	BC6H

	// BC7 is BPTC RGBA.
	BC7
)

type formatKind uint8

const (
	kindColor formatKind = iota
	kindInteger
	kindDepth
	kindDepthStencil
	kindCompressed
)

var formatKinds = [FormatN]formatKind{
	UndefinedFormat:  kindColor,
	R8:               kindColor,
	RG8:              kindColor,
	RGB8:             kindColor,
	RGBA8:            kindColor,
	SRGB8:            kindColor,
	SRGB8A8:          kindColor,
	R16F:             kindColor,
	RG16F:            kindColor,
	RGBA16F:          kindColor,
	R32F:             kindColor,
	RG32F:            kindColor,
	RGBA32F:          kindColor,
	R8UI:             kindInteger,
	R32UI:            kindInteger,
	RGBA8UI:          kindInteger,
	RGBA32UI:         kindInteger,
	R32I:             kindInteger,
	RGBA32I:          kindInteger,
	Depth16:          kindDepth,
	Depth24:          kindDepth,
	Depth32F:         kindDepth,
	Depth24Stencil8:  kindDepthStencil,
	Depth32FStencil8: kindDepthStencil,
	BC1:              kindCompressed,
	BC3:              kindCompressed,
	BC4:              kindCompressed,
	BC5:              kindCompressed,
	BC6H:             kindCompressed,
	BC7:              kindCompressed,
}

// kind returns the kind of a valid format; kindColor otherwise.
func (f Format) kind() formatKind {
	if f < 0 || f >= FormatN {
		return kindColor
	}
	return formatKinds[f]
}

// IsValid returns whether f names a real storage format.
func (f Format) IsValid() bool { return f > UndefinedFormat && f < FormatN }

// IsCompressed returns whether f is a block-compressed format.
func (f Format) IsCompressed() bool { return f.IsValid() && f.kind() == kindCompressed }

// IsInteger returns whether f stores unnormalized integers,
// which can only be sampled without filtering.
func (f Format) IsInteger() bool { return f.IsValid() && f.kind() == kindInteger }

// IsDepth returns whether f has a depth component,
// including the combined depth-stencil formats.
func (f Format) IsDepth() bool {
	k := f.kind()
	return f.IsValid() && (k == kindDepth || k == kindDepthStencil)
}

// IsDepthStencil returns whether f has both depth and stencil.
func (f Format) IsDepthStencil() bool { return f.IsValid() && f.kind() == kindDepthStencil }

// ComponentData is the channel layout of pixel data uploaded
// from the CPU.
type ComponentData int32 //enums:enum -trim-prefix Data

const (
	DataRed ComponentData = iota
	DataRG
	DataRGB
	DataBGR
	DataRGBA
	DataBGRA
	DataDepth
	DataStencil

	// The Int variants upload to integer formats without normalization.
	DataRedInt
	DataRGInt
	DataRGBInt
	DataRGBAInt
)

// ComponentType is the type of each channel of uploaded pixel data.
type ComponentType int32 //enums:enum -trim-prefix Type

const (
	TypeUInt8 ComponentType = iota
	TypeInt8
	TypeUInt16
	TypeInt16
	TypeUInt32
	TypeInt32
	TypeFloat32
)

// Targets are the kinds of texture.
type Targets int32 //enums:enum -trim-prefix Target

const (
	Target1D Targets = iota
	Target2D
	Target3D
	Target1DArray
	Target2DArray
	TargetCube
	TargetCubeArray
)

// MaxMipLevels returns the length of the full mip chain for a texture
// of the given size, down to 1x1: floor(log2(max(w, h))) + 1.
func MaxMipLevels(size image.Point) int {
	return bits.Len(uint(max(size.X, size.Y, 1)))
}
