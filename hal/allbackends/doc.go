// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package allbackends imports all HAL backend implementations.
//
// Import this package for side effects to register all available backends:
//
//	import (
//		_ "github.com/renderhi/rhi/hal/allbackends"
//	)
//
// This will register:
//   - Vulkan backend (Windows, Linux, macOS via MoltenVK)
//   - No-op backend (all platforms, for testing)
//
// No Metal, DX12 or OpenGL ES backend is registered.
//
// After importing, use hal.GetBackend or hal.SelectBestBackend to access backends.
//
// Build tags control which backends are available:
//   - windows, darwin, linux && !android: Vulkan plus no-op
//   - any other platform (including android): no-op only
//
// Example usage:
//
//	import (
//		_ "github.com/renderhi/rhi/hal/allbackends"
//		"github.com/renderhi/rhi/core"
//	)
//
//	func main() {
//		// Instance will now enumerate real GPUs
//		instance := core.NewInstance(nil)
//		adapters := instance.EnumerateAdapters()
//		for _, a := range adapters {
//			fmt.Println(a) // Real GPU adapters
//		}
//	}
package allbackends
