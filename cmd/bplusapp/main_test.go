// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags(t *testing.T) {
	assert.Equal(t, flags{}, parseFlags(nil))
	assert.Equal(t, flags{noWriteConfig: true}, parseFlags([]string{"-noWriteConfig"}))
	assert.Equal(t, flags{noWriteConfig: true}, parseFlags([]string{"-NOWRITECONFIG"}))
	assert.Equal(t, flags{vv: true, q: true}, parseFlags([]string{"-vv", "extra", "-q"}))
	assert.Equal(t, flags{}, parseFlags([]string{"--noWriteConfig", "noWriteConfig"}))
}

func TestConfigValidation(t *testing.T) {
	c := &config{ClearColor: [4]float32{0, 0.5, 1, 1}}
	assert.NoError(t, c.OnDeserialized())
	assert.Equal(t, [4]float32{0, 0.5, 1, 1}, c.ClearColor)

	c.ClearColor[2] = 2
	assert.Error(t, c.OnDeserialized())
	assert.Equal(t, [4]float32{1, 1, 1, 1}, c.ClearColor)
}

func TestCheckerboard(t *testing.T) {
	img := checkerboard(16, 4)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, color.RGBAModel.Convert(color.White), img.At(0, 0))
	assert.Equal(t, color.RGBAModel.Convert(color.Black), img.At(4, 0))
	assert.Equal(t, color.RGBAModel.Convert(color.White), img.At(4, 4))
}
