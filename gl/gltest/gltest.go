// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gltest provides an in-memory [gl.Driver] that records every
// call made through it and simulates the driver state that the engine
// depends on: global pipeline state, texture and sampler objects,
// bindless handles and their residency. It is meant for tests and
// for headless use where no OpenGL context is available.
package gltest

import (
	"fmt"
	"image"
	"slices"

	"cogentcore.org/bplus/gl"
)

// Call is one recorded driver call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

// Texture is the simulated state of one texture object.
type Texture struct {
	Target         uint32
	InternalFormat uint32
	Levels         int32
	Size           [3]int32

	// Params holds the integer parameters set with TextureParameteri.
	Params map[uint32]int32

	// Uploads lists every SubImage call, in order.
	Uploads []Upload

	// MipGenerations counts GenerateTextureMipmap calls.
	MipGenerations int
}

// Upload is one recorded pixel upload into a texture.
type Upload struct {
	Level      int32
	Region     image.Rectangle
	Format     uint32
	Type       uint32
	Compressed bool
	Bytes      int
}

// Handle is the simulated state of one bindless handle.
type Handle struct {
	Texture uint32
	Sampler uint32
	Image   bool
	Level   int32
	Layered bool
	Layer   int32
	Format  uint32

	// Resident is whether the handle is currently resident.
	Resident bool

	// Access is the access passed to MakeImageHandleResidentARB.
	Access uint32
}

type handleKey struct {
	texture uint32
	sampler uint32
	image   bool
	level   int32
	layered bool
	layer   int32
	format  uint32
}

// Driver is a recording, simulating [gl.Driver].
// It is not safe for concurrent use, like the real thing.
type Driver struct {

	// Log is the ordered list of calls made since the last Reset.
	Log []Call

	// Errors lists the GL errors the simulated driver would have raised,
	// such as making an already-resident handle resident again.
	Errors []string

	// Textures maps texture names to their simulated state.
	Textures map[uint32]*Texture

	// Samplers maps sampler names to their integer parameters.
	Samplers map[uint32]map[uint32]int32

	// Handles maps bindless handle values to their simulated state.
	Handles map[uint64]*Handle

	// LastClearColor and LastClearDepth are the values most recently
	// passed to ClearNamedFramebufferfv for the default framebuffer.
	LastClearColor [4]float32
	LastClearDepth float32

	calls      map[string]int
	enabled    map[uint32]bool
	ints       map[uint32][]int32
	floats     map[uint32][]float32
	bools      map[uint32][]bool
	handleKeys map[handleKey]uint64
	nextName   uint32
	nextHandle uint64
}

// NewDriver returns a Driver holding the initial state of a freshly
// created OpenGL context, as listed in the OpenGL 4.5 state tables.
func NewDriver() *Driver {
	d := &Driver{
		Textures:   map[uint32]*Texture{},
		Samplers:   map[uint32]map[uint32]int32{},
		Handles:    map[uint64]*Handle{},
		calls:      map[string]int{},
		enabled:    map[uint32]bool{},
		handleKeys: map[handleKey]uint64{},
		nextName:   1,
		nextHandle: 0x1000,
	}
	d.ints = map[uint32][]int32{
		gl.VIEWPORT:                     {0, 0, 0, 0},
		gl.SCISSOR_BOX:                  {0, 0, 0, 0},
		gl.DEPTH_FUNC:                   {gl.LESS},
		gl.CULL_FACE_MODE:               {gl.BACK},
		gl.BLEND_SRC_RGB:                {gl.ONE},
		gl.BLEND_DST_RGB:                {gl.ZERO},
		gl.BLEND_SRC_ALPHA:              {gl.ONE},
		gl.BLEND_DST_ALPHA:              {gl.ZERO},
		gl.BLEND_EQUATION_RGB:           {gl.FUNC_ADD},
		gl.BLEND_EQUATION_ALPHA:         {gl.FUNC_ADD},
		gl.STENCIL_FUNC:                 {gl.ALWAYS},
		gl.STENCIL_REF:                  {0},
		gl.STENCIL_VALUE_MASK:           {-1},
		gl.STENCIL_FAIL:                 {gl.KEEP},
		gl.STENCIL_PASS_DEPTH_FAIL:      {gl.KEEP},
		gl.STENCIL_PASS_DEPTH_PASS:      {gl.KEEP},
		gl.STENCIL_WRITEMASK:            {-1},
		gl.STENCIL_BACK_FUNC:            {gl.ALWAYS},
		gl.STENCIL_BACK_REF:             {0},
		gl.STENCIL_BACK_VALUE_MASK:      {-1},
		gl.STENCIL_BACK_FAIL:            {gl.KEEP},
		gl.STENCIL_BACK_PASS_DEPTH_FAIL: {gl.KEEP},
		gl.STENCIL_BACK_PASS_DEPTH_PASS: {gl.KEEP},
		gl.STENCIL_BACK_WRITEMASK:       {-1},
	}
	d.floats = map[uint32][]float32{
		gl.BLEND_COLOR: {0, 0, 0, 0},
	}
	d.bools = map[uint32][]bool{
		gl.DEPTH_WRITEMASK: {true},
		gl.COLOR_WRITEMASK: {true, true, true, true},
	}
	return d
}

func (d *Driver) record(name string, args ...any) {
	d.calls[name]++
	d.Log = append(d.Log, Call{Name: name, Args: args})
}

func (d *Driver) errorf(format string, args ...any) {
	d.Errors = append(d.Errors, fmt.Sprintf(format, args...))
}

// Calls returns the number of times the named method
// has been called since the last Reset.
func (d *Driver) Calls(name string) int {
	return d.calls[name]
}

// TotalCalls returns the number of recorded calls since the last Reset.
func (d *Driver) TotalCalls() int {
	return len(d.Log)
}

// Reset clears the call counters and the log.
// The simulated state is kept.
func (d *Driver) Reset() {
	d.calls = map[string]int{}
	d.Log = nil
}

// SetViewportState overwrites the simulated viewport without recording
// a call, as if a window system had resized the default framebuffer.
func (d *Driver) SetViewportState(r image.Rectangle) {
	d.ints[gl.VIEWPORT] = []int32{int32(r.Min.X), int32(r.Min.Y), int32(r.Dx()), int32(r.Dy())}
}

// Resident returns the number of currently resident handles.
func (d *Driver) Resident() int {
	n := 0
	for _, h := range d.Handles {
		if h.Resident {
			n++
		}
	}
	return n
}

// Texture returns the simulated state of the named texture, or nil.
func (d *Driver) Texture(name uint32) *Texture {
	return d.Textures[name]
}

func (d *Driver) Enable(capability uint32) {
	d.record("Enable", capability)
	d.enabled[capability] = true
}

func (d *Driver) Disable(capability uint32) {
	d.record("Disable", capability)
	d.enabled[capability] = false
}

func (d *Driver) IsEnabled(capability uint32) bool {
	d.record("IsEnabled", capability)
	return d.enabled[capability]
}

func (d *Driver) GetIntegerv(pname uint32, data []int32) {
	d.record("GetIntegerv", pname)
	v, ok := d.ints[pname]
	if !ok {
		d.errorf("GL_INVALID_ENUM: GetIntegerv(0x%04X)", pname)
		return
	}
	copy(data, v)
}

func (d *Driver) GetFloatv(pname uint32, data []float32) {
	d.record("GetFloatv", pname)
	v, ok := d.floats[pname]
	if !ok {
		d.errorf("GL_INVALID_ENUM: GetFloatv(0x%04X)", pname)
		return
	}
	copy(data, v)
}

func (d *Driver) GetBooleanv(pname uint32, data []bool) {
	d.record("GetBooleanv", pname)
	v, ok := d.bools[pname]
	if !ok {
		d.errorf("GL_INVALID_ENUM: GetBooleanv(0x%04X)", pname)
		return
	}
	copy(data, v)
}

func (d *Driver) DepthFunc(fn uint32) {
	d.record("DepthFunc", fn)
	d.ints[gl.DEPTH_FUNC] = []int32{int32(fn)}
}

func (d *Driver) DepthMask(flag bool) {
	d.record("DepthMask", flag)
	d.bools[gl.DEPTH_WRITEMASK] = []bool{flag}
}

func (d *Driver) ColorMask(r, g, b, a bool) {
	d.record("ColorMask", r, g, b, a)
	d.bools[gl.COLOR_WRITEMASK] = []bool{r, g, b, a}
}

func (d *Driver) CullFace(mode uint32) {
	d.record("CullFace", mode)
	d.ints[gl.CULL_FACE_MODE] = []int32{int32(mode)}
}

func (d *Driver) BlendEquationSeparate(modeRGB, modeAlpha uint32) {
	d.record("BlendEquationSeparate", modeRGB, modeAlpha)
	d.ints[gl.BLEND_EQUATION_RGB] = []int32{int32(modeRGB)}
	d.ints[gl.BLEND_EQUATION_ALPHA] = []int32{int32(modeAlpha)}
}

func (d *Driver) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha uint32) {
	d.record("BlendFuncSeparate", srcRGB, dstRGB, srcAlpha, dstAlpha)
	d.ints[gl.BLEND_SRC_RGB] = []int32{int32(srcRGB)}
	d.ints[gl.BLEND_DST_RGB] = []int32{int32(dstRGB)}
	d.ints[gl.BLEND_SRC_ALPHA] = []int32{int32(srcAlpha)}
	d.ints[gl.BLEND_DST_ALPHA] = []int32{int32(dstAlpha)}
}

func (d *Driver) BlendColor(r, g, b, a float32) {
	d.record("BlendColor", r, g, b, a)
	d.floats[gl.BLEND_COLOR] = []float32{r, g, b, a}
}

// faces returns whether face selects the front and/or back faces.
func (d *Driver) faces(fn string, face uint32) (front, back bool) {
	switch face {
	case gl.FRONT:
		return true, false
	case gl.BACK:
		return false, true
	case gl.FRONT_AND_BACK:
		return true, true
	}
	d.errorf("GL_INVALID_ENUM: %s face 0x%04X", fn, face)
	return false, false
}

func (d *Driver) StencilFuncSeparate(face, fn uint32, ref int32, mask uint32) {
	d.record("StencilFuncSeparate", face, fn, ref, mask)
	front, back := d.faces("StencilFuncSeparate", face)
	if front {
		d.ints[gl.STENCIL_FUNC] = []int32{int32(fn)}
		d.ints[gl.STENCIL_REF] = []int32{ref}
		d.ints[gl.STENCIL_VALUE_MASK] = []int32{int32(mask)}
	}
	if back {
		d.ints[gl.STENCIL_BACK_FUNC] = []int32{int32(fn)}
		d.ints[gl.STENCIL_BACK_REF] = []int32{ref}
		d.ints[gl.STENCIL_BACK_VALUE_MASK] = []int32{int32(mask)}
	}
}

func (d *Driver) StencilOpSeparate(face, sfail, dpfail, dppass uint32) {
	d.record("StencilOpSeparate", face, sfail, dpfail, dppass)
	front, back := d.faces("StencilOpSeparate", face)
	if front {
		d.ints[gl.STENCIL_FAIL] = []int32{int32(sfail)}
		d.ints[gl.STENCIL_PASS_DEPTH_FAIL] = []int32{int32(dpfail)}
		d.ints[gl.STENCIL_PASS_DEPTH_PASS] = []int32{int32(dppass)}
	}
	if back {
		d.ints[gl.STENCIL_BACK_FAIL] = []int32{int32(sfail)}
		d.ints[gl.STENCIL_BACK_PASS_DEPTH_FAIL] = []int32{int32(dpfail)}
		d.ints[gl.STENCIL_BACK_PASS_DEPTH_PASS] = []int32{int32(dppass)}
	}
}

func (d *Driver) StencilMaskSeparate(face, mask uint32) {
	d.record("StencilMaskSeparate", face, mask)
	front, back := d.faces("StencilMaskSeparate", face)
	if front {
		d.ints[gl.STENCIL_WRITEMASK] = []int32{int32(mask)}
	}
	if back {
		d.ints[gl.STENCIL_BACK_WRITEMASK] = []int32{int32(mask)}
	}
}

func (d *Driver) Viewport(x, y, width, height int32) {
	d.record("Viewport", x, y, width, height)
	d.ints[gl.VIEWPORT] = []int32{x, y, width, height}
}

func (d *Driver) Scissor(x, y, width, height int32) {
	d.record("Scissor", x, y, width, height)
	d.ints[gl.SCISSOR_BOX] = []int32{x, y, width, height}
}

func (d *Driver) ClearNamedFramebufferfv(framebuffer, buffer uint32, drawbuffer int32, value []float32) {
	d.record("ClearNamedFramebufferfv", framebuffer, buffer, drawbuffer, slices.Clone(value))
	if framebuffer != 0 {
		return
	}
	switch buffer {
	case gl.COLOR:
		copy(d.LastClearColor[:], value)
	case gl.DEPTH:
		d.LastClearDepth = value[0]
	}
}

func (d *Driver) CreateTextures(target uint32) uint32 {
	d.record("CreateTextures", target)
	name := d.nextName
	d.nextName++
	d.Textures[name] = &Texture{Target: target, Params: map[uint32]int32{}}
	return name
}

func (d *Driver) DeleteTextures(texture uint32) {
	d.record("DeleteTextures", texture)
	if _, ok := d.Textures[texture]; !ok {
		d.errorf("DeleteTextures: unknown texture %d", texture)
		return
	}
	delete(d.Textures, texture)
	for v, h := range d.Handles {
		if h.Texture == texture {
			if h.Resident {
				d.errorf("DeleteTextures: texture %d deleted with resident handle 0x%X", texture, v)
			}
			delete(d.Handles, v)
		}
	}
}

func (d *Driver) texture(fn string, texture uint32) *Texture {
	t, ok := d.Textures[texture]
	if !ok {
		d.errorf("GL_INVALID_OPERATION: %s: unknown texture %d", fn, texture)
	}
	return t
}

func (d *Driver) storage(fn string, texture uint32, levels int32, internalFormat uint32, size [3]int32) {
	d.record(fn, texture, levels, internalFormat, size)
	t := d.texture(fn, texture)
	if t == nil {
		return
	}
	if t.Levels != 0 {
		d.errorf("GL_INVALID_OPERATION: %s: texture %d storage is immutable", fn, texture)
		return
	}
	t.Levels = levels
	t.InternalFormat = internalFormat
	t.Size = size
}

func (d *Driver) TextureStorage1D(texture uint32, levels int32, internalFormat uint32, width int32) {
	d.storage("TextureStorage1D", texture, levels, internalFormat, [3]int32{width, 1, 1})
}

func (d *Driver) TextureStorage2D(texture uint32, levels int32, internalFormat uint32, width, height int32) {
	d.storage("TextureStorage2D", texture, levels, internalFormat, [3]int32{width, height, 1})
}

func (d *Driver) TextureStorage3D(texture uint32, levels int32, internalFormat uint32, width, height, depth int32) {
	d.storage("TextureStorage3D", texture, levels, internalFormat, [3]int32{width, height, depth})
}

func (d *Driver) upload(fn string, texture uint32, up Upload) {
	d.record(fn, texture, up.Level, up.Region, up.Format, up.Type, up.Bytes)
	if t := d.texture(fn, texture); t != nil {
		t.Uploads = append(t.Uploads, up)
	}
}

func (d *Driver) TextureSubImage1D(texture uint32, level, xoffset, width int32, format, xtype uint32, pixels []byte) {
	r := image.Rect(int(xoffset), 0, int(xoffset+width), 1)
	d.upload("TextureSubImage1D", texture, Upload{Level: level, Region: r, Format: format, Type: xtype, Bytes: len(pixels)})
}

func (d *Driver) TextureSubImage2D(texture uint32, level, xoffset, yoffset, width, height int32, format, xtype uint32, pixels []byte) {
	r := image.Rect(int(xoffset), int(yoffset), int(xoffset+width), int(yoffset+height))
	d.upload("TextureSubImage2D", texture, Upload{Level: level, Region: r, Format: format, Type: xtype, Bytes: len(pixels)})
}

func (d *Driver) TextureSubImage3D(texture uint32, level, xoffset, yoffset, zoffset, width, height, depth int32, format, xtype uint32, pixels []byte) {
	r := image.Rect(int(xoffset), int(yoffset), int(xoffset+width), int(yoffset+height))
	d.upload("TextureSubImage3D", texture, Upload{Level: level, Region: r, Format: format, Type: xtype, Bytes: len(pixels)})
}

func (d *Driver) CompressedTextureSubImage2D(texture uint32, level, xoffset, yoffset, width, height int32, format uint32, data []byte) {
	r := image.Rect(int(xoffset), int(yoffset), int(xoffset+width), int(yoffset+height))
	d.upload("CompressedTextureSubImage2D", texture, Upload{Level: level, Region: r, Format: format, Compressed: true, Bytes: len(data)})
}

func (d *Driver) GenerateTextureMipmap(texture uint32) {
	d.record("GenerateTextureMipmap", texture)
	if t := d.texture("GenerateTextureMipmap", texture); t != nil {
		t.MipGenerations++
	}
}

func (d *Driver) TextureParameteri(texture, pname uint32, param int32) {
	d.record("TextureParameteri", texture, pname, param)
	if t := d.texture("TextureParameteri", texture); t != nil {
		t.Params[pname] = param
	}
}

func (d *Driver) TextureParameterfv(texture, pname uint32, params []float32) {
	d.record("TextureParameterfv", texture, pname, slices.Clone(params))
	d.texture("TextureParameterfv", texture)
}

func (d *Driver) CreateSamplers() uint32 {
	d.record("CreateSamplers")
	name := d.nextName
	d.nextName++
	d.Samplers[name] = map[uint32]int32{}
	return name
}

func (d *Driver) DeleteSamplers(sampler uint32) {
	d.record("DeleteSamplers", sampler)
	if _, ok := d.Samplers[sampler]; !ok {
		d.errorf("DeleteSamplers: unknown sampler %d", sampler)
		return
	}
	delete(d.Samplers, sampler)
}

func (d *Driver) SamplerParameteri(sampler, pname uint32, param int32) {
	d.record("SamplerParameteri", sampler, pname, param)
	s, ok := d.Samplers[sampler]
	if !ok {
		d.errorf("GL_INVALID_OPERATION: SamplerParameteri: unknown sampler %d", sampler)
		return
	}
	s[pname] = param
}

func (d *Driver) SamplerParameterfv(sampler, pname uint32, params []float32) {
	d.record("SamplerParameterfv", sampler, pname, slices.Clone(params))
	if _, ok := d.Samplers[sampler]; !ok {
		d.errorf("GL_INVALID_OPERATION: SamplerParameterfv: unknown sampler %d", sampler)
	}
}

// handle returns the handle for key, minting it on first use.
// Repeated requests for the same texture (and sampler, or image
// parameters) return the same value, as the bindless extension requires.
func (d *Driver) handle(key handleKey) uint64 {
	if v, ok := d.handleKeys[key]; ok {
		if _, live := d.Handles[v]; live {
			return v
		}
	}
	v := d.nextHandle
	d.nextHandle++
	d.handleKeys[key] = v
	d.Handles[v] = &Handle{
		Texture: key.texture, Sampler: key.sampler, Image: key.image,
		Level: key.level, Layered: key.layered, Layer: key.layer, Format: key.format,
	}
	return v
}

func (d *Driver) GetTextureHandleARB(texture uint32) uint64 {
	d.record("GetTextureHandleARB", texture)
	d.texture("GetTextureHandleARB", texture)
	return d.handle(handleKey{texture: texture})
}

func (d *Driver) GetTextureSamplerHandleARB(texture, sampler uint32) uint64 {
	d.record("GetTextureSamplerHandleARB", texture, sampler)
	d.texture("GetTextureSamplerHandleARB", texture)
	if _, ok := d.Samplers[sampler]; !ok {
		d.errorf("GL_INVALID_VALUE: GetTextureSamplerHandleARB: unknown sampler %d", sampler)
	}
	return d.handle(handleKey{texture: texture, sampler: sampler})
}

func (d *Driver) GetImageHandleARB(texture uint32, level int32, layered bool, layer int32, format uint32) uint64 {
	d.record("GetImageHandleARB", texture, level, layered, layer, format)
	if t := d.texture("GetImageHandleARB", texture); t != nil && (level < 0 || level >= t.Levels) {
		d.errorf("GL_INVALID_VALUE: GetImageHandleARB: level %d out of range", level)
	}
	return d.handle(handleKey{texture: texture, image: true, level: level, layered: layered, layer: layer, format: format})
}

func (d *Driver) residency(fn string, handle uint64, image, resident bool) *Handle {
	h, ok := d.Handles[handle]
	switch {
	case !ok:
		d.errorf("GL_INVALID_OPERATION: %s: unknown handle 0x%X", fn, handle)
		return nil
	case h.Image != image:
		d.errorf("GL_INVALID_OPERATION: %s: wrong handle kind 0x%X", fn, handle)
		return nil
	case h.Resident == resident:
		d.errorf("GL_INVALID_OPERATION: %s: handle 0x%X resident=%v already", fn, handle, resident)
		return nil
	}
	h.Resident = resident
	return h
}

func (d *Driver) MakeTextureHandleResidentARB(handle uint64) {
	d.record("MakeTextureHandleResidentARB", handle)
	d.residency("MakeTextureHandleResidentARB", handle, false, true)
}

func (d *Driver) MakeTextureHandleNonResidentARB(handle uint64) {
	d.record("MakeTextureHandleNonResidentARB", handle)
	d.residency("MakeTextureHandleNonResidentARB", handle, false, false)
}

func (d *Driver) MakeImageHandleResidentARB(handle uint64, access uint32) {
	d.record("MakeImageHandleResidentARB", handle, access)
	if h := d.residency("MakeImageHandleResidentARB", handle, true, true); h != nil {
		h.Access = access
	}
}

func (d *Driver) MakeImageHandleNonResidentARB(handle uint64) {
	d.record("MakeImageHandleNonResidentARB", handle)
	d.residency("MakeImageHandleNonResidentARB", handle, true, false)
}

var _ gl.Driver = (*Driver)(nil)
