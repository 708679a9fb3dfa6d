// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgo implements [gl.Driver] on top of the cgo bindings in
// github.com/go-gl/gl. The OpenGL context must be current on the
// calling OS thread before [New] is called, and every method must be
// called from that thread.
package glgo

import (
	"fmt"
	"log/slog"

	"cogentcore.org/bplus/gl"
	"cogentcore.org/core/base/errors"
	gogl "github.com/go-gl/gl/v4.6-core/gl"
)

// Driver is a [gl.Driver] that calls straight into the loaded
// OpenGL function pointers.
type Driver struct {

	// Version is the GL_VERSION string reported by the driver.
	Version string

	// Renderer is the GL_RENDERER string reported by the driver.
	Renderer string
}

// New loads the OpenGL function pointers for the current context and
// returns a Driver for it. It returns an error if loading fails or if
// the driver does not advertise [gl.BindlessExtension].
func New() (*Driver, error) {
	if err := gogl.Init(); err != nil {
		return nil, errors.Log(fmt.Errorf("glgo.New: loading OpenGL: %w", err))
	}
	d := &Driver{
		Version:  gogl.GoStr(gogl.GetString(gogl.VERSION)),
		Renderer: gogl.GoStr(gogl.GetString(gogl.RENDERER)),
	}
	if !HasExtension(gl.BindlessExtension) {
		return nil, errors.Log(fmt.Errorf("glgo.New: %s is not supported by %q", gl.BindlessExtension, d.Renderer))
	}
	slog.Info("glgo.New", "version", d.Version, "renderer", d.Renderer)
	return d, nil
}

// HasExtension reports whether the current context advertises
// the named extension.
func HasExtension(name string) bool {
	var n int32
	gogl.GetIntegerv(gl.NUM_EXTENSIONS, &n)
	for i := int32(0); i < n; i++ {
		if gogl.GoStr(gogl.GetStringi(gl.EXTENSIONS, uint32(i))) == name {
			return true
		}
	}
	return false
}

// bytesPtr returns a pointer to the first element of b, or nil
// if b is empty (which GL treats as "no client data").
func bytesPtr(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return &b[0]
}

func (d *Driver) Enable(capability uint32)         { gogl.Enable(capability) }
func (d *Driver) Disable(capability uint32)        { gogl.Disable(capability) }
func (d *Driver) IsEnabled(capability uint32) bool { return gogl.IsEnabled(capability) }

func (d *Driver) GetIntegerv(pname uint32, data []int32) { gogl.GetIntegerv(pname, &data[0]) }
func (d *Driver) GetFloatv(pname uint32, data []float32) { gogl.GetFloatv(pname, &data[0]) }
func (d *Driver) GetBooleanv(pname uint32, data []bool)  { gogl.GetBooleanv(pname, &data[0]) }

func (d *Driver) DepthFunc(fn uint32)           { gogl.DepthFunc(fn) }
func (d *Driver) DepthMask(flag bool)           { gogl.DepthMask(flag) }
func (d *Driver) ColorMask(r, g, b, a bool)     { gogl.ColorMask(r, g, b, a) }
func (d *Driver) CullFace(mode uint32)          { gogl.CullFace(mode) }
func (d *Driver) BlendColor(r, g, b, a float32) { gogl.BlendColor(r, g, b, a) }

func (d *Driver) BlendEquationSeparate(modeRGB, modeAlpha uint32) {
	gogl.BlendEquationSeparate(modeRGB, modeAlpha)
}

func (d *Driver) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha uint32) {
	gogl.BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha)
}

func (d *Driver) StencilFuncSeparate(face, fn uint32, ref int32, mask uint32) {
	gogl.StencilFuncSeparate(face, fn, ref, mask)
}

func (d *Driver) StencilOpSeparate(face, sfail, dpfail, dppass uint32) {
	gogl.StencilOpSeparate(face, sfail, dpfail, dppass)
}

func (d *Driver) StencilMaskSeparate(face, mask uint32) { gogl.StencilMaskSeparate(face, mask) }

func (d *Driver) Viewport(x, y, width, height int32) { gogl.Viewport(x, y, width, height) }
func (d *Driver) Scissor(x, y, width, height int32)  { gogl.Scissor(x, y, width, height) }

func (d *Driver) ClearNamedFramebufferfv(framebuffer, buffer uint32, drawbuffer int32, value []float32) {
	gogl.ClearNamedFramebufferfv(framebuffer, buffer, drawbuffer, &value[0])
}

func (d *Driver) CreateTextures(target uint32) uint32 {
	var tex uint32
	gogl.CreateTextures(target, 1, &tex)
	return tex
}

func (d *Driver) DeleteTextures(texture uint32) { gogl.DeleteTextures(1, &texture) }

func (d *Driver) TextureStorage1D(texture uint32, levels int32, internalFormat uint32, width int32) {
	gogl.TextureStorage1D(texture, levels, internalFormat, width)
}

func (d *Driver) TextureStorage2D(texture uint32, levels int32, internalFormat uint32, width, height int32) {
	gogl.TextureStorage2D(texture, levels, internalFormat, width, height)
}

func (d *Driver) TextureStorage3D(texture uint32, levels int32, internalFormat uint32, width, height, depth int32) {
	gogl.TextureStorage3D(texture, levels, internalFormat, width, height, depth)
}

func (d *Driver) TextureSubImage1D(texture uint32, level, xoffset, width int32, format, xtype uint32, pixels []byte) {
	gogl.TextureSubImage1D(texture, level, xoffset, width, format, xtype, gogl.Ptr(bytesPtr(pixels)))
}

func (d *Driver) TextureSubImage2D(texture uint32, level, xoffset, yoffset, width, height int32, format, xtype uint32, pixels []byte) {
	gogl.TextureSubImage2D(texture, level, xoffset, yoffset, width, height, format, xtype, gogl.Ptr(bytesPtr(pixels)))
}

func (d *Driver) TextureSubImage3D(texture uint32, level, xoffset, yoffset, zoffset, width, height, depth int32, format, xtype uint32, pixels []byte) {
	gogl.TextureSubImage3D(texture, level, xoffset, yoffset, zoffset, width, height, depth, format, xtype, gogl.Ptr(bytesPtr(pixels)))
}

func (d *Driver) CompressedTextureSubImage2D(texture uint32, level, xoffset, yoffset, width, height int32, format uint32, data []byte) {
	gogl.CompressedTextureSubImage2D(texture, level, xoffset, yoffset, width, height, format, int32(len(data)), gogl.Ptr(bytesPtr(data)))
}

func (d *Driver) GenerateTextureMipmap(texture uint32) { gogl.GenerateTextureMipmap(texture) }

func (d *Driver) TextureParameteri(texture, pname uint32, param int32) {
	gogl.TextureParameteri(texture, pname, param)
}

func (d *Driver) TextureParameterfv(texture, pname uint32, params []float32) {
	gogl.TextureParameterfv(texture, pname, &params[0])
}

func (d *Driver) CreateSamplers() uint32 {
	var s uint32
	gogl.CreateSamplers(1, &s)
	return s
}

func (d *Driver) DeleteSamplers(sampler uint32) { gogl.DeleteSamplers(1, &sampler) }

func (d *Driver) SamplerParameteri(sampler, pname uint32, param int32) {
	gogl.SamplerParameteri(sampler, pname, param)
}

func (d *Driver) SamplerParameterfv(sampler, pname uint32, params []float32) {
	gogl.SamplerParameterfv(sampler, pname, &params[0])
}

func (d *Driver) GetTextureHandleARB(texture uint32) uint64 {
	return gogl.GetTextureHandleARB(texture)
}

func (d *Driver) GetTextureSamplerHandleARB(texture, sampler uint32) uint64 {
	return gogl.GetTextureSamplerHandleARB(texture, sampler)
}

func (d *Driver) GetImageHandleARB(texture uint32, level int32, layered bool, layer int32, format uint32) uint64 {
	return gogl.GetImageHandleARB(texture, level, layered, layer, format)
}

func (d *Driver) MakeTextureHandleResidentARB(handle uint64) {
	gogl.MakeTextureHandleResidentARB(handle)
}
func (d *Driver) MakeTextureHandleNonResidentARB(handle uint64) {
	gogl.MakeTextureHandleNonResidentARB(handle)
}

func (d *Driver) MakeImageHandleResidentARB(handle uint64, access uint32) {
	gogl.MakeImageHandleResidentARB(handle, access)
}

func (d *Driver) MakeImageHandleNonResidentARB(handle uint64) {
	gogl.MakeImageHandleNonResidentARB(handle)
}

var _ gl.Driver = (*Driver)(nil)
