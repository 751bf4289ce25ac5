// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build darwin

package allbackends

import (
	// Vulkan backend - available via MoltenVK on macOS. Metal itself is
	// out of scope for this module; Metal conformance is exercised through
	// the noop backend's plugin-contract tests instead.
	_ "github.com/renderhi/rhi/hal/vulkan"
)
