// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gltest

import (
	"testing"

	"cogentcore.org/bplus/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialState(t *testing.T) {
	d := NewDriver()
	v := make([]int32, 1)
	d.GetIntegerv(gl.DEPTH_FUNC, v)
	assert.Equal(t, int32(gl.LESS), v[0])
	d.GetIntegerv(gl.STENCIL_BACK_WRITEMASK, v)
	assert.Equal(t, uint32(0xFFFFFFFF), uint32(v[0]))

	b := make([]bool, 4)
	d.GetBooleanv(gl.COLOR_WRITEMASK, b)
	assert.Equal(t, []bool{true, true, true, true}, b)
	assert.False(t, d.IsEnabled(gl.BLEND))
	assert.Empty(t, d.Errors)
	assert.Equal(t, 4, d.TotalCalls())
}

func TestStencilFaces(t *testing.T) {
	d := NewDriver()
	d.StencilFuncSeparate(gl.BACK, gl.EQUAL, 3, 0xF)
	v := make([]int32, 1)
	d.GetIntegerv(gl.STENCIL_FUNC, v)
	assert.Equal(t, int32(gl.ALWAYS), v[0])
	d.GetIntegerv(gl.STENCIL_BACK_FUNC, v)
	assert.Equal(t, int32(gl.EQUAL), v[0])
	d.GetIntegerv(gl.STENCIL_BACK_REF, v)
	assert.Equal(t, int32(3), v[0])

	d.StencilMaskSeparate(gl.FRONT_AND_BACK, 0xAB)
	d.GetIntegerv(gl.STENCIL_WRITEMASK, v)
	assert.Equal(t, int32(0xAB), v[0])
	d.GetIntegerv(gl.STENCIL_BACK_WRITEMASK, v)
	assert.Equal(t, int32(0xAB), v[0])

	d.StencilMaskSeparate(0x1234, 1)
	assert.Len(t, d.Errors, 1)
}

func TestCallCounting(t *testing.T) {
	d := NewDriver()
	d.Enable(gl.DEPTH_TEST)
	d.Enable(gl.DEPTH_TEST)
	d.DepthFunc(gl.GREATER)
	assert.Equal(t, 2, d.Calls("Enable"))
	assert.Equal(t, 1, d.Calls("DepthFunc"))
	assert.Equal(t, "DepthFunc[516]", d.Log[2].String())

	d.Reset()
	assert.Equal(t, 0, d.Calls("Enable"))
	assert.Equal(t, 0, d.TotalCalls())
	assert.True(t, d.IsEnabled(gl.DEPTH_TEST))
}

func TestHandles(t *testing.T) {
	d := NewDriver()
	tex := d.CreateTextures(gl.TEXTURE_2D)
	d.TextureStorage2D(tex, 3, gl.RGBA8, 4, 4)
	require.NotNil(t, d.Texture(tex))
	assert.Equal(t, int32(3), d.Texture(tex).Levels)

	h1 := d.GetTextureHandleARB(tex)
	h2 := d.GetTextureHandleARB(tex)
	assert.Equal(t, h1, h2)
	assert.NotZero(t, h1)

	smp := d.CreateSamplers()
	hs := d.GetTextureSamplerHandleARB(tex, smp)
	assert.NotEqual(t, h1, hs)

	img := d.GetImageHandleARB(tex, 1, false, 0, gl.RGBA8)
	assert.NotEqual(t, h1, img)

	d.MakeTextureHandleResidentARB(h1)
	assert.Equal(t, 1, d.Resident())
	d.MakeTextureHandleResidentARB(h1)
	assert.Len(t, d.Errors, 1)

	d.MakeImageHandleResidentARB(img, gl.READ_WRITE)
	assert.Equal(t, uint32(gl.READ_WRITE), d.Handles[img].Access)
	d.MakeTextureHandleNonResidentARB(img)
	assert.Len(t, d.Errors, 2)

	d.MakeTextureHandleNonResidentARB(h1)
	d.MakeImageHandleNonResidentARB(img)
	assert.Equal(t, 0, d.Resident())
	assert.Len(t, d.Errors, 2)

	d.DeleteTextures(tex)
	assert.Nil(t, d.Texture(tex))
	assert.Empty(t, d.Handles)
	assert.Len(t, d.Errors, 2)
}

func TestImmutableStorage(t *testing.T) {
	d := NewDriver()
	tex := d.CreateTextures(gl.TEXTURE_2D)
	d.TextureStorage2D(tex, 1, gl.R8, 2, 2)
	d.TextureStorage2D(tex, 1, gl.R8, 2, 2)
	assert.Len(t, d.Errors, 1)

	d.TextureSubImage2D(tex, 0, 0, 0, 2, 2, gl.RED, gl.UNSIGNED_BYTE, make([]byte, 4))
	require.Len(t, d.Texture(tex).Uploads, 1)
	assert.Equal(t, 4, d.Texture(tex).Uploads[0].Bytes)
}
