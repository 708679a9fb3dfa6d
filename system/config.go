// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"image"
	"io/fs"
	"log/slog"
	"os"

	"cogentcore.org/core/base/errors"
	"github.com/pelletier/go-toml/v2"
)

// DefaultWindowSize is the window size used when the config file has none.
var DefaultWindowSize = [2]int{800, 600}

// Config is an app's persistent settings. Apps define their own config
// type by embedding [ConfigFile]; all of the exported fields of the
// outer type are stored in the same TOML document.
type Config interface {

	// ConfigBase returns the embedded [ConfigFile].
	ConfigBase() *ConfigFile
}

// ConfigDeserializer is implemented by configs that post-process
// their data after it is loaded, for example to validate it.
type ConfigDeserializer interface {
	OnDeserialized() error
}

// ConfigFile is the part of the config that every app has, along with
// where it is stored. It is loaded as the app starts running and written
// back, creating the file if needed, when the app quits.
type ConfigFile struct {
	IsWindowMaximized bool

	// LastWindowSize is the size of the window the last time it
	// was not maximized.
	LastWindowSize [2]int

	// FilePath is the TOML file the config is stored in.
	FilePath string `toml:"-"`

	// DisableWrite turns [SaveConfig] into a no-op, which is useful
	// when running from an IDE.
	DisableWrite bool `toml:"-"`

	// OnError receives a message for each failure to read or write the file.
	OnError func(msg string) `toml:"-"`
}

// NewConfigFile returns a ConfigFile with default values.
func NewConfigFile(filePath string, onError func(msg string), disableWrite bool) ConfigFile {
	cf := ConfigFile{FilePath: filePath, OnError: onError, DisableWrite: disableWrite}
	cf.ResetToDefaults()
	return cf
}

func (cf *ConfigFile) ConfigBase() *ConfigFile { return cf }

// ResetToDefaults resets the window state to its default values.
func (cf *ConfigFile) ResetToDefaults() {
	cf.IsWindowMaximized = false
	cf.LastWindowSize = DefaultWindowSize
}

// WindowSize returns LastWindowSize as a point.
func (cf *ConfigFile) WindowSize() image.Point {
	return image.Pt(cf.LastWindowSize[0], cf.LastWindowSize[1])
}

func (cf *ConfigFile) report(msg string) {
	if cf.OnError == nil {
		slog.Error("system.ConfigFile", "err", msg)
		return
	}
	cf.OnError(msg)
}

// LoadConfig reads cfg from its file. Keys missing from the file keep
// their current values, and a missing file is not an error.
// Failures are reported through OnError.
func LoadConfig(cfg Config) {
	cf := cfg.ConfigBase()
	f, err := os.Open(cf.FilePath)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("system.LoadConfig: no config file yet", "path", cf.FilePath)
		return
	}
	if err != nil {
		cf.report("Error reading/parsing TOML config file: " + err.Error())
		return
	}
	defer f.Close()

	if err := toml.NewDecoder(f).Decode(cfg); err != nil {
		cf.report("Error reading/parsing TOML config file: " + err.Error())
		return
	}
	if cf.LastWindowSize[0] <= 0 || cf.LastWindowSize[1] <= 0 {
		cf.report("Invalid LastWindowSize in config file; using the default")
		cf.LastWindowSize = DefaultWindowSize
	}
	if d, ok := cfg.(ConfigDeserializer); ok {
		if err := d.OnDeserialized(); err != nil {
			cf.report("Error in config file: " + err.Error())
		}
	}
}

// SaveConfig writes cfg to its file, replacing the previous contents,
// unless writing is disabled. Failures are reported through OnError.
func SaveConfig(cfg Config) {
	cf := cfg.ConfigBase()
	if cf.DisableWrite {
		return
	}
	f, err := os.Create(cf.FilePath)
	if err != nil {
		cf.report("Error opening config file to write: " + cf.FilePath)
		return
	}
	enc := toml.NewEncoder(f)
	enc.SetIndentTables(true)
	err = enc.Encode(cfg)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		slog.Error("system.SaveConfig", "path", cf.FilePath, "err", err)
		cf.report("Error writing updated config file")
	}
}
