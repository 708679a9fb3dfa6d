// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"

	"cogentcore.org/bplus/gl"
)

// Texture is an OpenGL texture object with immutable storage, and the
// registry of its bindless handles: one [TexHandle] per distinct
// [Sampler] and one [ImgHandle] per distinct [ImgHandleKey], created
// the first time a view of that configuration is requested.
//
// A Texture has a unique GPU identity and must not be copied;
// use [Texture.Move] to transfer it.
type Texture struct {
	ctx    *Context
	name   uint32
	target Targets
	format Format
	mips   int

	// sampler is the default sampler, stored in the texture object itself.
	sampler Sampler

	texHandles map[Sampler]*TexHandle
	imgHandles map[ImgHandleKey]*ImgHandle
	images     map[imageKey]*imageBinding
}

// init creates the texture object and applies the default
// sampler. Storage is allocated by the caller, which knows the size.
func (tx *Texture) init(ctx *Context, target Targets, format Format, mips int, sampler Sampler) {
	if !format.IsValid() {
		panic(fmt.Sprintf("gpu.Texture: invalid format %v", format))
	}
	sampler.AssertFormatIsAllowed(format)
	d := ctx.Driver()
	*tx = Texture{
		ctx:        ctx,
		name:       d.CreateTextures(target.glEnum()),
		target:     target,
		format:     format,
		mips:       mips,
		sampler:    sampler,
		texHandles: map[Sampler]*TexHandle{},
		imgHandles: map[ImgHandleKey]*ImgHandle{},
		images:     map[imageKey]*imageBinding{},
	}
	sampler.Apply(func(pname uint32, param int32) { d.TextureParameteri(tx.name, pname, param) })
}

// driver returns the driver, panicking if the texture was released or moved.
func (tx *Texture) driver() gl.Driver {
	if tx.name == 0 {
		panic("gpu.Texture: use after Release or Move")
	}
	return tx.ctx.Driver()
}

// GLPtr returns the OpenGL texture name; 0 after Release or Move.
func (tx *Texture) GLPtr() uint32 { return tx.name }

func (tx *Texture) Target() Targets { return tx.target }

func (tx *Texture) Format() Format { return tx.format }

// MipCount returns the number of mip levels in the storage.
func (tx *Texture) MipCount() int { return tx.mips }

// Sampler returns the default sampler.
func (tx *Texture) Sampler() Sampler { return tx.sampler }

// HandleCount returns the number of sampler handles created so far.
func (tx *Texture) HandleCount() int { return len(tx.texHandles) }

// ImgHandleCount returns the number of image handles created so far,
// one per distinct [ImgHandleKey].
func (tx *Texture) ImgHandleCount() int { return len(tx.imgHandles) }

// SetSampler changes the default sampler. The driver locks a texture's
// parameters once a bindless handle of it exists, so SetSampler panics
// if any view has ever been requested.
func (tx *Texture) SetSampler(s Sampler) {
	d := tx.driver()
	if len(tx.texHandles)+len(tx.imgHandles) > 0 {
		panic("gpu.Texture SetSampler: texture parameters are immutable once a handle exists")
	}
	s.AssertFormatIsAllowed(tx.format)
	s.Apply(func(pname uint32, param int32) { d.TextureParameteri(tx.name, pname, param) })
	tx.sampler = s
}

// RecomputeMips regenerates every mip level from level 0.
// It panics for compressed formats, which the driver can not mipmap.
func (tx *Texture) RecomputeMips() {
	d := tx.driver()
	if tx.format.IsCompressed() {
		panic(fmt.Sprintf("gpu.Texture RecomputeMips: can not compute mipmaps for compressed format %s", tx.format))
	}
	d.GenerateTextureMipmap(tx.name)
}

// View returns a view of the texture sampled with s, or with the default
// sampler if s is nil. A custom sampler gets its own sampler object.
func (tx *Texture) View(s *Sampler) *TexView {
	d := tx.driver()
	key := tx.sampler
	if s != nil {
		key = *s
	}
	h, ok := tx.texHandles[key]
	if !ok {
		h = &TexHandle{owner: tx}
		if s == nil {
			h.ptr = d.GetTextureHandleARB(tx.name)
		} else {
			key.AssertFormatIsAllowed(tx.format)
			h.sampler = d.CreateSamplers()
			key.Apply(func(pname uint32, param int32) { d.SamplerParameteri(h.sampler, pname, param) })
			h.ptr = d.GetTextureSamplerHandleARB(tx.name, h.sampler)
		}
		tx.texHandles[key] = h
		slog.Debug("gpu.Texture View: new handle", "texture", tx.name, "handle", h.ptr, "sampler", h.sampler)
	}
	return newTexView(h)
}

// ImgView returns a view of mip level mip as an image with the given
// access. If singleLayer is nil every layer is bound; otherwise only
// that layer is.
func (tx *Texture) ImgView(access ImageAccessModes, singleLayer *int, mip int) *ImgView {
	d := tx.driver()
	key := ImgHandleKey{MipLevel: mip, Layered: true, Access: access}
	if singleLayer != nil {
		key.Layered = false
		key.Layer = *singleLayer
	}
	h, ok := tx.imgHandles[key]
	if !ok {
		im, ok := tx.images[key.imageKey()]
		if !ok {
			im = &imageBinding{ptr: d.GetImageHandleARB(tx.name, int32(mip), key.Layered, int32(key.Layer), tx.format.GLEnum())}
			tx.images[key.imageKey()] = im
		}
		h = &ImgHandle{owner: tx, key: key, binding: im}
		tx.imgHandles[key] = h
		slog.Debug("gpu.Texture ImgView: new handle", "texture", tx.name, "handle", im.ptr, "key", key)
	}
	return newImgView(h)
}

// Release deactivates every handle, deletes the handles' sampler
// objects and then the texture. Views still alive at this point are
// leaks: each one is logged and its handle forced non-resident.
// Releasing twice does nothing.
func (tx *Texture) Release() {
	if tx.name == 0 {
		return
	}
	d := tx.driver()
	for s, h := range tx.texHandles {
		if n := h.release(); n > 0 {
			slog.Warn("gpu.Texture Release: leaked TexView", "texture", tx.name, "sampler", s, "count", n)
		}
	}
	for k, h := range tx.imgHandles {
		if n := h.release(); n > 0 {
			slog.Warn("gpu.Texture Release: leaked ImgView", "texture", tx.name, "key", k, "count", n)
		}
	}
	d.DeleteTextures(tx.name)
	slog.Debug("gpu.Texture Release", "texture", tx.name)
	tx.name = 0
	tx.texHandles = nil
	tx.imgHandles = nil
	tx.images = nil
}

// Move returns a new Texture that owns tx's storage and handles;
// tx is left inert, and Release on it does nothing. Live views
// follow their handles to the new Texture.
func (tx *Texture) Move() *Texture {
	nt := &Texture{}
	tx.moveTo(nt)
	return nt
}

func (tx *Texture) moveTo(dst *Texture) {
	*dst = *tx
	for _, h := range dst.texHandles {
		h.owner = dst
	}
	for _, h := range dst.imgHandles {
		h.owner = dst
	}
	tx.name = 0
	tx.texHandles = nil
	tx.imgHandles = nil
	tx.images = nil
}
