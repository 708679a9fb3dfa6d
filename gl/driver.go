// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gl defines the boundary between the engine and an OpenGL
// driver: the [Driver] interface, which is the exact subset of the
// OpenGL 4.5 core + ARB_bindless_texture C entry points that the engine
// calls, and the raw enumerant values passed across it.
//
// Method names follow the C entry points without the gl prefix, and all
// enumerant arguments carry the driver's native integer codes unchanged.
// Converting the engine's closed enumerations to and from these codes
// happens in exactly one place, package gpu's glenums.go.
package gl

// Driver is an OpenGL function table bound to one context.
// All methods must be called from the OS thread on which that
// context is current.
type Driver interface {

	// Enable calls glEnable.
	Enable(capability uint32)

	// Disable calls glDisable.
	Disable(capability uint32)

	// IsEnabled calls glIsEnabled.
	IsEnabled(capability uint32) bool

	// GetIntegerv calls glGetIntegerv, filling data.
	GetIntegerv(pname uint32, data []int32)

	// GetFloatv calls glGetFloatv, filling data.
	GetFloatv(pname uint32, data []float32)

	// GetBooleanv calls glGetBooleanv, filling data.
	GetBooleanv(pname uint32, data []bool)

	DepthFunc(fn uint32)
	DepthMask(flag bool)
	ColorMask(r, g, b, a bool)
	CullFace(mode uint32)
	BlendEquationSeparate(modeRGB, modeAlpha uint32)
	BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha uint32)
	BlendColor(r, g, b, a float32)
	StencilFuncSeparate(face, fn uint32, ref int32, mask uint32)
	StencilOpSeparate(face, sfail, dpfail, dppass uint32)
	StencilMaskSeparate(face, mask uint32)
	Viewport(x, y, width, height int32)
	Scissor(x, y, width, height int32)

	// ClearNamedFramebufferfv calls glClearNamedFramebufferfv.
	// Framebuffer 0 is the default framebuffer.
	ClearNamedFramebufferfv(framebuffer, buffer uint32, drawbuffer int32, value []float32)

	// CreateTextures calls glCreateTextures for a single texture
	// and returns its name.
	CreateTextures(target uint32) uint32

	// DeleteTextures calls glDeleteTextures for a single texture.
	DeleteTextures(texture uint32)

	TextureStorage1D(texture uint32, levels int32, internalFormat uint32, width int32)
	TextureStorage2D(texture uint32, levels int32, internalFormat uint32, width, height int32)
	TextureStorage3D(texture uint32, levels int32, internalFormat uint32, width, height, depth int32)

	TextureSubImage1D(texture uint32, level, xoffset, width int32, format, xtype uint32, pixels []byte)
	TextureSubImage2D(texture uint32, level, xoffset, yoffset, width, height int32, format, xtype uint32, pixels []byte)
	TextureSubImage3D(texture uint32, level, xoffset, yoffset, zoffset, width, height, depth int32, format, xtype uint32, pixels []byte)
	CompressedTextureSubImage2D(texture uint32, level, xoffset, yoffset, width, height int32, format uint32, data []byte)

	GenerateTextureMipmap(texture uint32)
	TextureParameteri(texture, pname uint32, param int32)
	TextureParameterfv(texture, pname uint32, params []float32)

	// CreateSamplers calls glCreateSamplers for a single sampler
	// and returns its name.
	CreateSamplers() uint32

	// DeleteSamplers calls glDeleteSamplers for a single sampler.
	DeleteSamplers(sampler uint32)

	SamplerParameteri(sampler, pname uint32, param int32)
	SamplerParameterfv(sampler, pname uint32, params []float32)

	GetTextureHandleARB(texture uint32) uint64
	GetTextureSamplerHandleARB(texture, sampler uint32) uint64
	GetImageHandleARB(texture uint32, level int32, layered bool, layer int32, format uint32) uint64
	MakeTextureHandleResidentARB(handle uint64)
	MakeTextureHandleNonResidentARB(handle uint64)
	MakeImageHandleResidentARB(handle uint64, access uint32)
	MakeImageHandleNonResidentARB(handle uint64)
}
