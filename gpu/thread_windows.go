// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package gpu

import "golang.org/x/sys/windows"

func threadID() uint64 { return uint64(windows.GetCurrentThreadId()) }
