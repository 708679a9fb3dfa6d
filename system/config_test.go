// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/core/base/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	ConfigFile

	Speed float64
	Name  string

	deserialized int
}

func (tc *testConfig) OnDeserialized() error {
	tc.deserialized++
	if tc.Speed < 0 {
		return errors.New("negative speed")
	}
	return nil
}

// newTestConfig returns a config stored in a temporary directory
// and the list that its error messages are appended to.
func newTestConfig(t *testing.T) (*testConfig, *[]string) {
	t.Helper()
	var msgs []string
	path := filepath.Join(t.TempDir(), "config.toml")
	tc := &testConfig{ConfigFile: NewConfigFile(path, func(msg string) { msgs = append(msgs, msg) }, false)}
	return tc, &msgs
}

func TestConfigDefaults(t *testing.T) {
	cf := NewConfigFile("app.toml", nil, true)
	assert.False(t, cf.IsWindowMaximized)
	assert.Equal(t, [2]int{800, 600}, cf.LastWindowSize)
	assert.Equal(t, 800, cf.WindowSize().X)
	assert.Same(t, &cf, cf.ConfigBase())

	cf.IsWindowMaximized = true
	cf.LastWindowSize = [2]int{1, 2}
	cf.ResetToDefaults()
	assert.False(t, cf.IsWindowMaximized)
	assert.Equal(t, DefaultWindowSize, cf.LastWindowSize)
}

func TestConfigSaveLoad(t *testing.T) {
	tc, msgs := newTestConfig(t)
	tc.IsWindowMaximized = true
	tc.LastWindowSize = [2]int{1024, 768}
	tc.Speed = 2.5
	tc.Name = "bplus"
	SaveConfig(tc)
	require.Empty(t, *msgs)

	data, err := os.ReadFile(tc.FilePath)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "IsWindowMaximized = true")
	assert.Contains(t, text, "LastWindowSize")
	assert.Contains(t, text, "Speed = 2.5")
	assert.NotContains(t, text, "FilePath")
	assert.NotContains(t, text, "DisableWrite")

	loaded := &testConfig{ConfigFile: NewConfigFile(tc.FilePath, tc.OnError, false)}
	LoadConfig(loaded)
	assert.Empty(t, *msgs)
	assert.True(t, loaded.IsWindowMaximized)
	assert.Equal(t, [2]int{1024, 768}, loaded.LastWindowSize)
	assert.Equal(t, 2.5, loaded.Speed)
	assert.Equal(t, "bplus", loaded.Name)
	assert.Equal(t, 1, loaded.deserialized)
}

func TestConfigMissingFile(t *testing.T) {
	tc, msgs := newTestConfig(t)
	tc.Speed = 3
	LoadConfig(tc)
	assert.Empty(t, *msgs)
	assert.Equal(t, DefaultWindowSize, tc.LastWindowSize)
	assert.Equal(t, 3.0, tc.Speed)
	assert.Zero(t, tc.deserialized)
}

func TestConfigPartialFile(t *testing.T) {
	tc, msgs := newTestConfig(t)
	require.NoError(t, os.WriteFile(tc.FilePath, []byte("Speed = 4.0\n"), 0666))
	LoadConfig(tc)
	assert.Empty(t, *msgs)
	assert.Equal(t, 4.0, tc.Speed)
	assert.Equal(t, DefaultWindowSize, tc.LastWindowSize)
}

func TestConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		want string
	}{
		{"syntax", "IsWindowMaximized = = true\n", "Error reading/parsing TOML config file: "},
		{"type", "LastWindowSize = \"big\"\n", "Error reading/parsing TOML config file: "},
		{"size", "LastWindowSize = [0, 600]\n", "Invalid LastWindowSize in config file; using the default"},
		{"validation", "Speed = -1.0\n", "Error in config file: negative speed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc, msgs := newTestConfig(t)
			require.NoError(t, os.WriteFile(tc.FilePath, []byte(tt.file), 0666))
			LoadConfig(tc)
			require.Len(t, *msgs, 1)
			assert.Contains(t, (*msgs)[0], tt.want)
			assert.Equal(t, DefaultWindowSize, tc.LastWindowSize)
		})
	}
}

func TestConfigDisableWrite(t *testing.T) {
	tc, msgs := newTestConfig(t)
	tc.DisableWrite = true
	SaveConfig(tc)
	assert.Empty(t, *msgs)
	assert.NoFileExists(t, tc.FilePath)
}

func TestConfigWriteError(t *testing.T) {
	tc, msgs := newTestConfig(t)
	tc.FilePath = filepath.Join(t.TempDir(), "missing", "config.toml")
	SaveConfig(tc)
	assert.Equal(t, []string{"Error opening config file to write: " + tc.FilePath}, *msgs)
}

func TestConfigSaveTruncates(t *testing.T) {
	tc, msgs := newTestConfig(t)
	tc.Name = "a very long name that takes up space"
	SaveConfig(tc)
	tc.Name = "short"
	SaveConfig(tc)
	require.Empty(t, *msgs)

	loaded := &testConfig{ConfigFile: NewConfigFile(tc.FilePath, tc.OnError, false)}
	LoadConfig(loaded)
	assert.Empty(t, *msgs)
	assert.Equal(t, "short", loaded.Name)
}
