// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"
	"log/slog"

	"golang.org/x/image/draw"
)

// Texture2D is a two-dimensional [Texture].
type Texture2D struct {
	Texture
	size image.Point
}

// NewTexture2D allocates a texture of the given size and format with
// mips mip levels; 0 means the full chain down to 1x1.
func NewTexture2D(ctx *Context, size image.Point, format Format, mips int, sampler Sampler) *Texture2D {
	if size.X <= 0 || size.Y <= 0 {
		panic(fmt.Sprintf("gpu.NewTexture2D: invalid size %v", size))
	}
	maxMips := MaxMipLevels(size)
	if mips == 0 {
		mips = maxMips
	}
	if mips < 0 || mips > maxMips {
		panic(fmt.Sprintf("gpu.NewTexture2D: %d mip levels requested, %v has at most %d", mips, size, maxMips))
	}
	tx := &Texture2D{size: size}
	tx.init(ctx, Target2D, format, mips, sampler)
	tx.driver().TextureStorage2D(tx.name, int32(mips), format.GLEnum(), int32(size.X), int32(size.Y))
	slog.Debug("gpu.NewTexture2D", "texture", tx.name, "size", size, "format", format, "mips", mips)
	return tx
}

// Size returns the size of mip level 0.
func (tx *Texture2D) Size() image.Point { return tx.size }

// SizeAtMip returns the size of the given mip level.
func (tx *Texture2D) SizeAtMip(mip int) image.Point {
	return image.Pt(max(1, tx.size.X>>mip), max(1, tx.size.Y>>mip))
}

func (tx *Texture2D) region(region image.Rectangle, mip int) image.Rectangle {
	if region.Empty() {
		return image.Rectangle{Max: tx.SizeAtMip(mip)}
	}
	return region
}

// SetData uploads pixels into region of mip level mip; an empty region
// means the whole level. pixels is tightly packed rows of comps channels
// of type typ, starting at the region's minimum corner. The region and
// mip level are not checked.
func (tx *Texture2D) SetData(pixels []byte, comps ComponentData, typ ComponentType, region image.Rectangle, mip int) {
	d := tx.driver()
	r := tx.region(region, mip)
	d.TextureSubImage2D(tx.name, int32(mip), int32(r.Min.X), int32(r.Min.Y), int32(r.Dx()), int32(r.Dy()),
		comps.glEnum(), typ.glEnum(), pixels)
}

// SetCompressedData uploads pre-compressed blocks of the texture's
// format into region of mip level mip; an empty region means the
// whole level. It panics if the format is not compressed.
func (tx *Texture2D) SetCompressedData(blocks []byte, region image.Rectangle, mip int) {
	d := tx.driver()
	if !tx.format.IsCompressed() {
		panic(fmt.Sprintf("gpu.Texture2D SetCompressedData: format %s is not compressed", tx.format))
	}
	r := tx.region(region, mip)
	d.CompressedTextureSubImage2D(tx.name, int32(mip), int32(r.Min.X), int32(r.Min.Y), int32(r.Dx()), int32(r.Dy()),
		tx.format.GLEnum(), blocks)
}

// SetFromImage uploads img into mip level mip, starting at the origin,
// converting it to 8-bit RGBA first if needed. The image's top row is
// uploaded first, so it ends up at texture coordinate v = 0.
func (tx *Texture2D) SetFromImage(img image.Image, mip int) {
	rgba := ImageToRGBA(img)
	sz := rgba.Rect.Size()
	tx.SetData(rgba.Pix, DataRGBA, TypeUInt8, image.Rectangle{Max: sz}, mip)
}

// Move returns a new Texture2D that owns tx's storage and handles,
// leaving tx inert.
func (tx *Texture2D) Move() *Texture2D {
	nt := &Texture2D{size: tx.size}
	tx.moveTo(&nt.Texture)
	tx.size = image.Point{}
	return nt
}

// ImageToRGBA returns img as a tightly packed *image.RGBA with its
// bounds at the origin, converting only if necessary.
func ImageToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == 4*rgba.Rect.Dx() {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rectangle{Max: b.Size()})
	draw.Draw(rgba, rgba.Rect, img, b.Min, draw.Src)
	return rgba
}
