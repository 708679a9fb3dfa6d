// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// TexView keeps a [TexHandle] resident for as long as it is alive.
// Views are cheap; get them from [Texture.View], duplicate them with
// Clone, and Release each one exactly once. A view must be released
// before its texture.
type TexView struct {
	handle *TexHandle
}

func newTexView(h *TexHandle) *TexView {
	h.activate()
	return &TexView{handle: h}
}

func (v *TexView) live() *TexHandle {
	if v.handle == nil {
		panic("gpu.TexView: use after Release")
	}
	return v.handle
}

// GLPtr returns the bindless handle value to pass to shaders.
func (v *TexView) GLPtr() uint64 { return v.live().ptr }

// Handle returns the handle this view keeps resident.
func (v *TexView) Handle() *TexHandle { return v.live() }

// Owner returns the texture of the view.
func (v *TexView) Owner() *Texture { return v.live().owner }

// Clone returns a new view of the same handle.
func (v *TexView) Clone() *TexView { return newTexView(v.live()) }

// Assign makes v a view of the same handle as src. If the handles
// differ, v's current handle is deactivated and src's is activated.
func (v *TexView) Assign(src *TexView) {
	h, nh := v.live(), src.live()
	if h == nh {
		return
	}
	h.deactivate()
	nh.activate()
	v.handle = nh
}

// Release deactivates the view's handle. The view can not be used
// afterwards, and releasing it again panics.
func (v *TexView) Release() {
	v.live().deactivate()
	v.handle = nil
}

// ImgView keeps an [ImgHandle] resident for as long as it is alive,
// with the same rules as [TexView].
type ImgView struct {
	handle *ImgHandle
}

func newImgView(h *ImgHandle) *ImgView {
	h.activate()
	return &ImgView{handle: h}
}

func (v *ImgView) live() *ImgHandle {
	if v.handle == nil {
		panic("gpu.ImgView: use after Release")
	}
	return v.handle
}

// GLPtr returns the bindless handle value to pass to shaders.
func (v *ImgView) GLPtr() uint64 { return v.live().GLPtr() }

func (v *ImgView) Handle() *ImgHandle { return v.live() }

func (v *ImgView) Owner() *Texture { return v.live().owner }

func (v *ImgView) Clone() *ImgView { return newImgView(v.live()) }

// Assign makes v a view of the same handle as src.
func (v *ImgView) Assign(src *ImgView) {
	h, nh := v.live(), src.live()
	if h == nh {
		return
	}
	h.deactivate()
	nh.activate()
	v.handle = nh
}

// Release deactivates the view's handle.
func (v *ImgView) Release() {
	v.live().deactivate()
	v.handle = nil
}
