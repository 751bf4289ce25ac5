// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build linux && !android

package allbackends

import (
	// Vulkan backend - the reference backend on Linux.
	_ "github.com/renderhi/rhi/hal/vulkan"
)
