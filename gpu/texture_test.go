// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/bplus/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTexture2DScenario(t *testing.T) {
	c, d := newTestContext(t, nil)
	tx := NewTexture2D(c, image.Pt(256, 256), RGBA8, 0, DefaultSampler())
	assert.Equal(t, 9, tx.MipCount())
	gt := d.Texture(tx.GLPtr())
	require.NotNil(t, gt)
	assert.Equal(t, int32(9), gt.Levels)
	assert.Equal(t, uint32(gl.RGBA8), gt.InternalFormat)
	assert.Equal(t, uint32(gl.TEXTURE_2D), gt.Target)

	v1 := tx.View(nil)
	v2 := tx.View(nil)
	assert.Equal(t, 1, d.Calls("GetTextureHandleARB"))
	assert.Equal(t, 1, tx.HandleCount())
	assert.Same(t, v1.Handle(), v2.Handle())
	assert.Equal(t, v1.GLPtr(), v2.GLPtr())
	assert.Equal(t, 2, v1.Handle().ActiveCount())
	assert.Equal(t, 1, d.Calls("MakeTextureHandleResidentARB"))

	h := v1.Handle()
	v1.Release()
	assert.True(t, h.IsResident())
	v2.Release()
	assert.Equal(t, 0, h.ActiveCount())
	assert.Equal(t, 1, d.Calls("MakeTextureHandleNonResidentARB"))
	assert.Equal(t, 0, d.Resident())

	tx.Release()
	assert.Empty(t, d.Errors)
}

func TestBalancedResidency(t *testing.T) {
	for n := 1; n <= 5; n++ {
		c, d := newTestContext(t, nil)
		tx := NewTexture2D(c, image.Pt(16, 16), RGBA8, 1, Sampler{})
		views := make([]*TexView, n)
		for i := range views {
			views[i] = tx.View(nil)
		}
		assert.Equal(t, n, views[0].Handle().ActiveCount())
		for _, v := range views {
			v.Release()
		}
		assert.Equal(t, 1, d.Calls("MakeTextureHandleResidentARB"), "n=%d", n)
		assert.Equal(t, 1, d.Calls("MakeTextureHandleNonResidentARB"), "n=%d", n)
		tx.Release()
		c.Release()
	}
}

func TestCustomSamplers(t *testing.T) {
	c, d := newTestContext(t, nil)
	tx := NewTexture2D(c, image.Pt(8, 8), RGBA8, 0, DefaultSampler())

	clamp := DefaultSampler()
	clamp.SetWrapping(WrapClamp)
	rough := Sampler{}

	views := []*TexView{tx.View(&clamp), tx.View(&rough), tx.View(&clamp), tx.View(nil)}
	assert.Equal(t, 2, d.Calls("GetTextureSamplerHandleARB"))
	assert.Equal(t, 1, d.Calls("GetTextureHandleARB"))
	assert.Equal(t, 2, d.Calls("CreateSamplers"))
	assert.Equal(t, 3, tx.HandleCount())
	assert.Same(t, views[0].Handle(), views[2].Handle())
	assert.NotEqual(t, views[0].GLPtr(), views[1].GLPtr())

	def := DefaultSampler()
	dv := tx.View(&def)
	assert.Same(t, views[3].Handle(), dv.Handle())
	assert.Equal(t, 2, d.Calls("CreateSamplers"))

	smp := views[0].Handle().sampler
	assert.Equal(t, int32(gl.CLAMP_TO_EDGE), d.Samplers[smp][gl.TEXTURE_WRAP_T])
	assert.Equal(t, int32(gl.LINEAR_MIPMAP_LINEAR), d.Samplers[smp][gl.TEXTURE_MIN_FILTER])

	for _, v := range append(views, dv) {
		v.Release()
	}
	tx.Release()
	assert.Equal(t, 2, d.Calls("DeleteSamplers"))
	assert.Empty(t, d.Samplers)
	assert.Empty(t, d.Errors)
}

func TestImgViews(t *testing.T) {
	c, d := newTestContext(t, nil)
	tx := NewTexture2D(c, image.Pt(64, 32), RGBA16F, 0, Sampler{})
	layer := 0

	a := tx.ImgView(AccessReadWrite, nil, 1)
	b := tx.ImgView(AccessReadWrite, nil, 1)
	cv := tx.ImgView(AccessRead, nil, 1)
	e := tx.ImgView(AccessReadWrite, &layer, 1)
	assert.Equal(t, 2, d.Calls("GetImageHandleARB"))
	assert.Equal(t, 3, tx.ImgHandleCount())
	assert.Same(t, a.Handle(), b.Handle())
	assert.NotSame(t, a.Handle(), cv.Handle())
	assert.Equal(t, a.GLPtr(), cv.GLPtr())
	assert.NotEqual(t, a.GLPtr(), e.GLPtr())
	assert.Equal(t, ImgHandleKey{MipLevel: 1, Layered: true, Access: AccessReadWrite}, a.Handle().Key())
	assert.Equal(t, ImgHandleKey{MipLevel: 1, Layered: true, Access: AccessRead}, cv.Handle().Key())
	assert.Equal(t, ImgHandleKey{MipLevel: 1, Layered: false, Layer: 0, Access: AccessReadWrite}, e.Handle().Key())
	assert.Equal(t, 2, a.Handle().ActiveCount())
	assert.Equal(t, 1, cv.Handle().ActiveCount())

	gh := d.Handles[a.GLPtr()]
	require.NotNil(t, gh)
	assert.Equal(t, uint32(gl.RGBA16F), gh.Format)
	assert.True(t, gh.Layered)
	assert.Equal(t, int32(1), gh.Level)
	assert.Equal(t, uint32(gl.READ_WRITE), gh.Access)
	assert.Equal(t, AccessReadWrite, cv.Handle().ResidentAccess())
	assert.False(t, d.Handles[e.GLPtr()].Layered)
	assert.Equal(t, 2, d.Calls("MakeImageHandleResidentARB"))

	assert.Same(t, &tx.Texture, a.Owner())
	for _, v := range []*ImgView{a, b, cv, e} {
		v.Release()
	}
	assert.Equal(t, 2, d.Calls("MakeImageHandleNonResidentARB"))
	tx.Release()
	assert.Empty(t, d.Errors)
}

func TestImgViewAccessSharesResidency(t *testing.T) {
	c, d := newTestContext(t, nil)
	tx := NewTexture2D(c, image.Pt(16, 16), RGBA8, 1, Sampler{})

	rw := tx.ImgView(AccessReadWrite, nil, 0)
	r := tx.ImgView(AccessRead, nil, 0)
	require.Equal(t, rw.GLPtr(), r.GLPtr())
	gh := d.Handles[rw.GLPtr()]
	require.NotNil(t, gh)

	r.Release()
	assert.True(t, gh.Resident)
	assert.True(t, rw.Handle().IsResident())
	assert.Equal(t, 1, rw.Handle().ActiveCount())
	assert.Equal(t, 0, d.Calls("MakeImageHandleNonResidentARB"))

	rw.Release()
	assert.False(t, gh.Resident)
	assert.Equal(t, 1, d.Calls("MakeImageHandleResidentARB"))
	assert.Equal(t, 1, d.Calls("MakeImageHandleNonResidentARB"))
	tx.Release()
	assert.Empty(t, d.Errors)
}

func TestImgViewAccessWidening(t *testing.T) {
	c, d := newTestContext(t, nil)
	tx := NewTexture2D(c, image.Pt(16, 16), RGBA8, 1, Sampler{})

	r := tx.ImgView(AccessRead, nil, 0)
	gh := d.Handles[r.GLPtr()]
	require.NotNil(t, gh)
	assert.Equal(t, uint32(gl.READ_ONLY), gh.Access)

	// a second read view does not touch the driver
	r2 := r.Clone()
	assert.Equal(t, 1, d.Calls("MakeImageHandleResidentARB"))

	w := tx.ImgView(AccessWrite, nil, 0)
	assert.True(t, gh.Resident)
	assert.Equal(t, uint32(gl.READ_WRITE), gh.Access)
	assert.Equal(t, AccessReadWrite, w.Handle().ResidentAccess())
	assert.Equal(t, 2, d.Calls("MakeImageHandleResidentARB"))
	assert.Equal(t, 1, d.Calls("MakeImageHandleNonResidentARB"))

	rw := tx.ImgView(AccessReadWrite, nil, 0)
	assert.Equal(t, 2, d.Calls("MakeImageHandleResidentARB"))

	for _, v := range []*ImgView{r, w, r2} {
		v.Release()
	}
	assert.True(t, gh.Resident)
	rw.Release()
	assert.False(t, gh.Resident)
	assert.Equal(t, 2, d.Calls("MakeImageHandleNonResidentARB"))

	// resident again with the access of the new first view
	r3 := tx.ImgView(AccessRead, nil, 0)
	assert.Equal(t, uint32(gl.READ_ONLY), gh.Access)
	r3.Release()
	tx.Release()
	assert.Empty(t, d.Errors)
}

func TestViewAssign(t *testing.T) {
	c, d := newTestContext(t, nil)
	tx := NewTexture2D(c, image.Pt(4, 4), RGBA8, 1, Sampler{})
	smooth := Sampler{PixelFilter: PixelSmooth}
	a := tx.View(nil)
	b := tx.View(&smooth)
	ha, hb := a.Handle(), b.Handle()

	a.Assign(b)
	assert.Same(t, hb, a.Handle())
	assert.Equal(t, 0, ha.ActiveCount())
	assert.Equal(t, 2, hb.ActiveCount())
	assert.Equal(t, 1, d.Calls("MakeTextureHandleNonResidentARB"))

	a.Assign(b)
	assert.Equal(t, 2, hb.ActiveCount())

	cl := a.Clone()
	assert.Equal(t, 3, hb.ActiveCount())
	for _, v := range []*TexView{a, b, cl} {
		v.Release()
	}
	assert.False(t, hb.IsResident())
	tx.Release()
}

func TestViewMisuse(t *testing.T) {
	c, _ := newTestContext(t, nil)
	tx := NewTexture2D(c, image.Pt(4, 4), RGBA8, 1, Sampler{})
	v := tx.View(nil)
	v.Release()
	assert.Panics(t, func() { v.Release() })
	assert.Panics(t, func() { v.GLPtr() })
	assert.Panics(t, func() { v.Clone() })

	var r residency
	assert.Panics(t, func() { r.deactivate(func() {}, "test") })
	tx.Release()
}

func TestTextureReleaseLeaks(t *testing.T) {
	c, d := newTestContext(t, nil)
	tx := NewTexture2D(c, image.Pt(4, 4), RGBA8, 1, Sampler{})
	name := tx.GLPtr()
	tx.View(nil)
	tx.View(nil)
	tx.ImgView(AccessWrite, nil, 0)
	assert.Equal(t, 2, d.Resident())

	tx.Release()
	assert.Equal(t, 0, d.Resident())
	assert.Equal(t, 1, d.Calls("MakeTextureHandleNonResidentARB"))
	assert.Equal(t, 1, d.Calls("DeleteTextures"))
	assert.Nil(t, d.Texture(name))
	assert.Empty(t, d.Errors)
	assert.Zero(t, tx.GLPtr())

	tx.Release()
	assert.Equal(t, 1, d.Calls("DeleteTextures"))
	assert.Panics(t, func() { tx.View(nil) })
}

func TestTextureMove(t *testing.T) {
	c, d := newTestContext(t, nil)
	tx := NewTexture2D(c, image.Pt(32, 16), R8, 0, Sampler{})
	name := tx.GLPtr()
	v := tx.View(nil)

	moved := tx.Move()
	assert.Zero(t, tx.GLPtr())
	assert.Equal(t, image.Point{}, tx.Size())
	assert.Equal(t, name, moved.GLPtr())
	assert.Equal(t, image.Pt(32, 16), moved.Size())
	assert.Equal(t, 6, moved.MipCount())
	assert.Same(t, &moved.Texture, v.Owner())

	tx.Release()
	assert.Equal(t, 0, d.Calls("DeleteTextures"))

	assert.Equal(t, 1, moved.HandleCount())
	v.Release()
	moved.Release()
	assert.Equal(t, 1, d.Calls("DeleteTextures"))
	assert.Empty(t, d.Errors)
}

func TestRecomputeMips(t *testing.T) {
	c, d := newTestContext(t, nil)
	tx := NewTexture2D(c, image.Pt(16, 16), RGBA8, 0, DefaultSampler())
	tx.RecomputeMips()
	assert.Equal(t, 1, d.Texture(tx.GLPtr()).MipGenerations)

	bc := NewTexture2D(c, image.Pt(16, 16), BC1, 0, DefaultSampler())
	assert.Panics(t, func() { bc.RecomputeMips() })
	assert.Equal(t, 0, d.Texture(bc.GLPtr()).MipGenerations)
	tx.Release()
	bc.Release()
}

func TestSetSampler(t *testing.T) {
	c, d := newTestContext(t, nil)
	tx := NewTexture2D(c, image.Pt(16, 16), Depth24, 0, Sampler{})
	cfg := Sampler{
		Wrapping:        [3]WrappingModes{WrapClamp, WrapMirrorRepeat, WrapBorder},
		PixelFilter:     PixelSmooth,
		MipFilter:       MipRough,
		DepthComparison: TestLessOrEqual,
	}
	tx.SetSampler(cfg)
	assert.Equal(t, cfg, tx.Sampler())

	p := d.Texture(tx.GLPtr()).Params
	assert.Equal(t, int32(gl.LINEAR_MIPMAP_NEAREST), p[gl.TEXTURE_MIN_FILTER])
	assert.Equal(t, int32(gl.LINEAR), p[gl.TEXTURE_MAG_FILTER])
	assert.Equal(t, int32(gl.CLAMP_TO_EDGE), p[gl.TEXTURE_WRAP_S])
	assert.Equal(t, int32(gl.MIRRORED_REPEAT), p[gl.TEXTURE_WRAP_T])
	assert.Equal(t, int32(gl.CLAMP_TO_BORDER), p[gl.TEXTURE_WRAP_R])
	assert.Equal(t, int32(gl.COMPARE_REF_TO_TEXTURE), p[gl.TEXTURE_COMPARE_MODE])
	assert.Equal(t, int32(gl.LEQUAL), p[gl.TEXTURE_COMPARE_FUNC])

	v := tx.View(nil)
	assert.Panics(t, func() { tx.SetSampler(Sampler{}) })
	assert.Equal(t, cfg, tx.Sampler())
	v.Release()
	tx.Release()
}

func TestFormatSamplerRules(t *testing.T) {
	c, _ := newTestContext(t, nil)
	assert.Panics(t, func() { NewTexture2D(c, image.Pt(4, 4), R32UI, 1, DefaultSampler()) })
	assert.Panics(t, func() {
		NewTexture2D(c, image.Pt(4, 4), RGBA8, 1, Sampler{DepthComparison: TestLess})
	})
	assert.Panics(t, func() { NewTexture2D(c, image.Pt(4, 4), UndefinedFormat, 1, Sampler{}) })
	assert.Panics(t, func() { NewTexture2D(c, image.Pt(4, 4), RGBA8, 4, Sampler{}) })

	it := NewTexture2D(c, image.Pt(4, 4), R32UI, 1, Sampler{MipFilter: MipRough})
	smooth := DefaultSampler()
	assert.Panics(t, func() { it.View(&smooth) })
	assert.Equal(t, 0, it.HandleCount())
	it.Release()
}

func TestSetData(t *testing.T) {
	c, d := newTestContext(t, nil)
	tx := NewTexture2D(c, image.Pt(256, 128), RGBA8, 0, Sampler{})
	assert.Equal(t, image.Pt(128, 64), tx.SizeAtMip(1))
	assert.Equal(t, image.Pt(1, 1), tx.SizeAtMip(8))

	tx.SetData(make([]byte, 128*64*4), DataRGBA, TypeUInt8, image.Rectangle{}, 1)
	tx.SetData(make([]byte, 4*4*4), DataBGRA, TypeUInt8, image.Rect(8, 8, 12, 12), 0)
	ups := d.Texture(tx.GLPtr()).Uploads
	require.Len(t, ups, 2)
	assert.Equal(t, int32(1), ups[0].Level)
	assert.Equal(t, image.Rect(0, 0, 128, 64), ups[0].Region)
	assert.Equal(t, uint32(gl.RGBA), ups[0].Format)
	assert.Equal(t, uint32(gl.UNSIGNED_BYTE), ups[0].Type)
	assert.Equal(t, image.Rect(8, 8, 12, 12), ups[1].Region)
	assert.Equal(t, uint32(gl.BGRA), ups[1].Format)

	img := image.NewNRGBA(image.Rect(2, 2, 6, 4))
	img.Set(2, 2, color.NRGBA{R: 255, A: 255})
	tx.SetFromImage(img, 0)
	ups = d.Texture(tx.GLPtr()).Uploads
	require.Len(t, ups, 3)
	assert.Equal(t, image.Rect(0, 0, 4, 2), ups[2].Region)
	assert.Equal(t, 4*2*4, ups[2].Bytes)

	assert.Panics(t, func() { tx.SetCompressedData(nil, image.Rectangle{}, 0) })
	tx.Release()
}

func TestSetCompressedData(t *testing.T) {
	c, d := newTestContext(t, nil)
	tx := NewTexture2D(c, image.Pt(8, 8), BC7, 1, Sampler{})
	tx.SetCompressedData(make([]byte, 4*16), image.Rectangle{}, 0)
	ups := d.Texture(tx.GLPtr()).Uploads
	require.Len(t, ups, 1)
	assert.True(t, ups[0].Compressed)
	assert.Equal(t, uint32(gl.COMPRESSED_RGBA_BPTC_UNORM), ups[0].Format)
	tx.Release()
}

func TestImageToRGBA(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(0, 0, 3, 3))
	assert.Same(t, rgba, ImageToRGBA(rgba))

	sub := rgba.SubImage(image.Rect(1, 1, 3, 3)).(*image.RGBA)
	sub.Set(1, 1, color.RGBA{G: 200, A: 255})
	conv := ImageToRGBA(sub)
	assert.NotSame(t, sub, conv)
	assert.Equal(t, image.Rect(0, 0, 2, 2), conv.Rect)
	assert.Equal(t, color.RGBA{G: 200, A: 255}, conv.RGBAAt(0, 0))
}
