// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"
)

// residency is the activation state of one bindless handle: inactive
// when count is 0, resident otherwise. The driver is only called on
// the transitions between the two.
type residency struct {
	count int
}

func (r *residency) activate(makeResident func()) {
	r.count++
	if r.count == 1 {
		makeResident()
	}
}

func (r *residency) deactivate(makeNonResident func(), what string) {
	if r.count == 0 {
		panic(fmt.Sprintf("gpu.%s: deactivated more times than activated", what))
	}
	r.count--
	if r.count == 0 {
		makeNonResident()
	}
}

// TexHandle is the bindless handle of a texture sampled with one
// [Sampler]. It is owned by its [Texture] and made resident while
// any [TexView] of it is alive.
type TexHandle struct {
	owner *Texture
	ptr   uint64

	// sampler is the sampler object for a custom sampler, or 0
	// when the handle samples with the texture's own parameters.
	sampler uint32

	active residency
}

// GLPtr returns the 64-bit handle value used in shaders.
func (h *TexHandle) GLPtr() uint64 { return h.ptr }

// ActiveCount returns the number of views currently keeping
// the handle resident.
func (h *TexHandle) ActiveCount() int { return h.active.count }

// IsResident returns whether the handle is resident.
func (h *TexHandle) IsResident() bool { return h.active.count > 0 }

func (h *TexHandle) activate() {
	h.active.activate(func() {
		h.owner.driver().MakeTextureHandleResidentARB(h.ptr)
		slog.Debug("gpu.TexHandle resident", "texture", h.owner.name, "handle", h.ptr)
	})
}

func (h *TexHandle) deactivate() {
	h.active.deactivate(func() {
		h.owner.driver().MakeTextureHandleNonResidentARB(h.ptr)
		slog.Debug("gpu.TexHandle non-resident", "texture", h.owner.name, "handle", h.ptr)
	}, "TexHandle")
}

// release forces the handle inactive and deletes its sampler object,
// returning how many activations were outstanding.
func (h *TexHandle) release() int {
	leaked := h.active.count
	for h.active.count > 0 {
		h.deactivate()
	}
	if h.sampler != 0 {
		h.owner.driver().DeleteSamplers(h.sampler)
		h.sampler = 0
	}
	return leaked
}

// ImgHandleKey identifies one image view of a texture.
type ImgHandleKey struct {
	MipLevel int

	// Layered is true when every layer is bound,
	// and false when only Layer is.
	Layered bool
	Layer   int

	Access ImageAccessModes
}

// imageKey returns the key of the driver image the view binds,
// which does not depend on the access.
func (k ImgHandleKey) imageKey() imageKey {
	return imageKey{mip: k.MipLevel, layered: k.Layered, layer: k.Layer}
}

type imageKey struct {
	mip     int
	layered bool
	layer   int
}

// imageBinding is one driver image handle. The driver returns the same
// handle for every access mode, so the [ImgHandle]s of all access
// modes of one image share it, and its residency.
//
// It is made resident with the access of the first view. A view
// needing more access than that makes it resident again with
// [AccessReadWrite], which covers every view.
type imageBinding struct {
	ptr    uint64
	access ImageAccessModes
	active residency
}

func (im *imageBinding) activate(tx *Texture, access ImageAccessModes) {
	d := tx.driver()
	if im.active.count > 0 && !im.access.covers(access) {
		d.MakeImageHandleNonResidentARB(im.ptr)
		im.access = AccessReadWrite
		d.MakeImageHandleResidentARB(im.ptr, im.access.glEnum())
		slog.Debug("gpu.ImgHandle resident again", "texture", tx.name, "handle", im.ptr, "access", im.access)
	}
	im.active.activate(func() {
		im.access = access
		d.MakeImageHandleResidentARB(im.ptr, access.glEnum())
		slog.Debug("gpu.ImgHandle resident", "texture", tx.name, "handle", im.ptr, "access", access)
	})
}

func (im *imageBinding) deactivate(tx *Texture) {
	im.active.deactivate(func() {
		tx.driver().MakeImageHandleNonResidentARB(im.ptr)
		slog.Debug("gpu.ImgHandle non-resident", "texture", tx.name, "handle", im.ptr)
	}, "ImgHandle")
}

// ImgHandle is the bindless image handle of one mip level (and
// optionally one layer) of a texture, for one access mode. It is
// owned by its [Texture] and made resident while any [ImgView]
// of it is alive.
type ImgHandle struct {
	owner   *Texture
	key     ImgHandleKey
	binding *imageBinding

	// views is the number of live views of this access mode.
	views int
}

// GLPtr returns the 64-bit handle value used in shaders.
// Handles that differ only in access have the same value.
func (h *ImgHandle) GLPtr() uint64 { return h.binding.ptr }

// Key returns the configuration the handle was created for.
func (h *ImgHandle) Key() ImgHandleKey { return h.key }

// ActiveCount returns the number of views currently keeping
// the handle resident.
func (h *ImgHandle) ActiveCount() int { return h.views }

// IsResident returns whether the handle is resident, which it is while
// a view of it, or of the same image with another access, is alive.
func (h *ImgHandle) IsResident() bool { return h.binding.active.count > 0 }

// ResidentAccess returns the access the handle was made resident
// with, which may be wider than its own.
func (h *ImgHandle) ResidentAccess() ImageAccessModes { return h.binding.access }

func (h *ImgHandle) activate() {
	h.binding.activate(h.owner, h.key.Access)
	h.views++
}

func (h *ImgHandle) deactivate() {
	if h.views == 0 {
		panic("gpu.ImgHandle: deactivated more times than activated")
	}
	h.views--
	h.binding.deactivate(h.owner)
}

func (h *ImgHandle) release() int {
	leaked := h.views
	for h.views > 0 {
		h.deactivate()
	}
	return leaked
}
