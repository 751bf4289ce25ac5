// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package allbackends

import (
	// Vulkan backend - the reference backend on Windows.
	_ "github.com/renderhi/rhi/hal/vulkan"
)
