// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd

package desktop

import (
	"testing"

	"cogentcore.org/bplus/system"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

var _ system.Platform = (*Platform)(nil)

var _ system.Window = (*Window)(nil)

func TestBoolHint(t *testing.T) {
	assert.Equal(t, glfw.True, boolHint(true))
	assert.Equal(t, glfw.False, boolHint(false))
}

func TestKeyEvent(t *testing.T) {
	e := keyEvent(glfw.KeyEscape, glfw.Press)
	assert.Equal(t, system.KeyEvent, e.Type)
	assert.Equal(t, int(glfw.KeyEscape), e.Code)
	assert.True(t, e.Down)
	assert.True(t, keyEvent(glfw.KeyA, glfw.Repeat).Down)
	assert.False(t, keyEvent(glfw.KeyA, glfw.Release).Down)
}

func TestMouseButtonEvent(t *testing.T) {
	e := mouseButtonEvent(glfw.MouseButtonRight, glfw.Press)
	assert.Equal(t, system.MouseButtonEvent, e.Type)
	assert.Equal(t, int(glfw.MouseButtonRight), e.Code)
	assert.True(t, e.Down)
	assert.False(t, mouseButtonEvent(glfw.MouseButtonLeft, glfw.Release).Down)
}

func TestSendQueuesEvents(t *testing.T) {
	w := &Window{}
	w.send(system.Event{Type: system.FocusEvent, Down: true})
	w.send(system.Event{Type: system.CloseEvent})
	assert.Len(t, w.events, 2)
	assert.Equal(t, system.CloseEvent, w.events[1].Type)
}
