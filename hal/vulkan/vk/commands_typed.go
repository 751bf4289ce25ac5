// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import "unsafe"

// Typed call-through wrappers for Commands function pointers that callers
// invoke directly rather than routing through Call themselves (surface
// creation, debug utils, legacy render pass/framebuffer/query pool
// lifetime). Each checks its function pointer is loaded and returns
// ErrorExtensionNotPresent when it is not, mirroring the nil checks in
// memory.go's deviceCmds-backed functions.

// CreateRenderPass wraps vkCreateRenderPass.
func (c *Commands) CreateRenderPass(device Device, createInfo *RenderPassCreateInfo, allocator *AllocationCallbacks, renderPass *RenderPass) Result {
	if c.createRenderPass == nil {
		return ErrorInitializationFailed
	}
	var pAllocator uintptr
	if allocator != nil {
		pAllocator = uintptr(unsafe.Pointer(allocator))
	}
	ret, _, _ := Call(uintptr(c.createRenderPass),
		uintptr(device),
		uintptr(unsafe.Pointer(createInfo)),
		pAllocator,
		uintptr(unsafe.Pointer(renderPass)),
	)
	return Result(ret)
}

// DestroyRenderPass wraps vkDestroyRenderPass.
func (c *Commands) DestroyRenderPass(device Device, renderPass RenderPass, allocator *AllocationCallbacks) {
	if c.destroyRenderPass == nil {
		return
	}
	var pAllocator uintptr
	if allocator != nil {
		pAllocator = uintptr(unsafe.Pointer(allocator))
	}
	//nolint:errcheck // Vulkan void function
	Call(uintptr(c.destroyRenderPass), uintptr(device), uintptr(renderPass), pAllocator)
}

// CreateFramebuffer wraps vkCreateFramebuffer.
func (c *Commands) CreateFramebuffer(device Device, createInfo *FramebufferCreateInfo, allocator *AllocationCallbacks, framebuffer *Framebuffer) Result {
	if c.createFramebuffer == nil {
		return ErrorInitializationFailed
	}
	var pAllocator uintptr
	if allocator != nil {
		pAllocator = uintptr(unsafe.Pointer(allocator))
	}
	ret, _, _ := Call(uintptr(c.createFramebuffer),
		uintptr(device),
		uintptr(unsafe.Pointer(createInfo)),
		pAllocator,
		uintptr(unsafe.Pointer(framebuffer)),
	)
	return Result(ret)
}

// DestroyFramebuffer wraps vkDestroyFramebuffer.
func (c *Commands) DestroyFramebuffer(device Device, framebuffer Framebuffer, allocator *AllocationCallbacks) {
	if c.destroyFramebuffer == nil {
		return
	}
	var pAllocator uintptr
	if allocator != nil {
		pAllocator = uintptr(unsafe.Pointer(allocator))
	}
	//nolint:errcheck // Vulkan void function
	Call(uintptr(c.destroyFramebuffer), uintptr(device), uintptr(framebuffer), pAllocator)
}

// CreateQueryPool wraps vkCreateQueryPool.
func (c *Commands) CreateQueryPool(device Device, createInfo *QueryPoolCreateInfo, allocator *AllocationCallbacks, pool *QueryPool) Result {
	if c.createQueryPool == nil {
		return ErrorInitializationFailed
	}
	var pAllocator uintptr
	if allocator != nil {
		pAllocator = uintptr(unsafe.Pointer(allocator))
	}
	ret, _, _ := Call(uintptr(c.createQueryPool),
		uintptr(device),
		uintptr(unsafe.Pointer(createInfo)),
		pAllocator,
		uintptr(unsafe.Pointer(pool)),
	)
	return Result(ret)
}

// DestroyQueryPool wraps vkDestroyQueryPool.
func (c *Commands) DestroyQueryPool(device Device, pool QueryPool, allocator *AllocationCallbacks) {
	if c.destroyQueryPool == nil {
		return
	}
	var pAllocator uintptr
	if allocator != nil {
		pAllocator = uintptr(unsafe.Pointer(allocator))
	}
	//nolint:errcheck // Vulkan void function
	Call(uintptr(c.destroyQueryPool), uintptr(device), uintptr(pool), pAllocator)
}

// ResetQueryPool wraps vkResetQueryPool (Vulkan 1.2 core).
func (c *Commands) ResetQueryPool(device Device, pool QueryPool, firstQuery, queryCount uint32) {
	if c.resetQueryPool == nil {
		return
	}
	//nolint:errcheck // Vulkan void function
	Call(uintptr(c.resetQueryPool), uintptr(device), uintptr(pool), uintptr(firstQuery), uintptr(queryCount))
}

// HasDebugUtils returns true if VK_EXT_debug_utils object naming was loaded.
func (c *Commands) HasDebugUtils() bool {
	return c.setDebugUtilsObjectNameEXT != nil
}

// SetDebugUtilsObjectNameEXT wraps vkSetDebugUtilsObjectNameEXT.
func (c *Commands) SetDebugUtilsObjectNameEXT(device Device, nameInfo *DebugUtilsObjectNameInfoEXT) Result {
	if c.setDebugUtilsObjectNameEXT == nil {
		return ErrorExtensionNotPresent
	}
	ret, _, _ := Call(uintptr(c.setDebugUtilsObjectNameEXT),
		uintptr(device),
		uintptr(unsafe.Pointer(nameInfo)),
	)
	return Result(ret)
}

// CreateDebugUtilsMessengerEXT wraps vkCreateDebugUtilsMessengerEXT.
func (c *Commands) CreateDebugUtilsMessengerEXT(instance Instance, createInfo *DebugUtilsMessengerCreateInfoEXT, allocator *AllocationCallbacks, messenger *DebugUtilsMessengerEXT) Result {
	if c.createDebugUtilsMessengerEXT == nil {
		return ErrorExtensionNotPresent
	}
	var pAllocator uintptr
	if allocator != nil {
		pAllocator = uintptr(unsafe.Pointer(allocator))
	}
	ret, _, _ := Call(uintptr(c.createDebugUtilsMessengerEXT),
		uintptr(instance),
		uintptr(unsafe.Pointer(createInfo)),
		pAllocator,
		uintptr(unsafe.Pointer(messenger)),
	)
	return Result(ret)
}

// DestroyDebugUtilsMessengerEXT wraps vkDestroyDebugUtilsMessengerEXT.
func (c *Commands) DestroyDebugUtilsMessengerEXT(instance Instance, messenger DebugUtilsMessengerEXT, allocator *AllocationCallbacks) {
	if c.destroyDebugUtilsMessengerEXT == nil {
		return
	}
	var pAllocator uintptr
	if allocator != nil {
		pAllocator = uintptr(unsafe.Pointer(allocator))
	}
	//nolint:errcheck // Vulkan void function
	Call(uintptr(c.destroyDebugUtilsMessengerEXT), uintptr(instance), uintptr(messenger), pAllocator)
}

// HasCreateWin32SurfaceKHR returns true if VK_KHR_win32_surface was loaded.
func (c *Commands) HasCreateWin32SurfaceKHR() bool { return c.createWin32SurfaceKHR != nil }

// CreateWin32SurfaceKHR wraps vkCreateWin32SurfaceKHR.
func (c *Commands) CreateWin32SurfaceKHR(instance Instance, createInfo *Win32SurfaceCreateInfoKHR, allocator *AllocationCallbacks, surface *SurfaceKHR) Result {
	if c.createWin32SurfaceKHR == nil {
		return ErrorExtensionNotPresent
	}
	var pAllocator uintptr
	if allocator != nil {
		pAllocator = uintptr(unsafe.Pointer(allocator))
	}
	ret, _, _ := Call(uintptr(c.createWin32SurfaceKHR),
		uintptr(instance),
		uintptr(unsafe.Pointer(createInfo)),
		pAllocator,
		uintptr(unsafe.Pointer(surface)),
	)
	return Result(ret)
}

// HasCreateXlibSurfaceKHR returns true if VK_KHR_xlib_surface was loaded.
func (c *Commands) HasCreateXlibSurfaceKHR() bool { return c.createXlibSurfaceKHR != nil }

// CreateXlibSurfaceKHR wraps vkCreateXlibSurfaceKHR.
func (c *Commands) CreateXlibSurfaceKHR(instance Instance, createInfo *XlibSurfaceCreateInfoKHR, allocator *AllocationCallbacks, surface *SurfaceKHR) Result {
	if c.createXlibSurfaceKHR == nil {
		return ErrorExtensionNotPresent
	}
	var pAllocator uintptr
	if allocator != nil {
		pAllocator = uintptr(unsafe.Pointer(allocator))
	}
	ret, _, _ := Call(uintptr(c.createXlibSurfaceKHR),
		uintptr(instance),
		uintptr(unsafe.Pointer(createInfo)),
		pAllocator,
		uintptr(unsafe.Pointer(surface)),
	)
	return Result(ret)
}

// HasCreateWaylandSurfaceKHR returns true if VK_KHR_wayland_surface was loaded.
func (c *Commands) HasCreateWaylandSurfaceKHR() bool { return c.createWaylandSurfaceKHR != nil }

// CreateWaylandSurfaceKHR wraps vkCreateWaylandSurfaceKHR.
func (c *Commands) CreateWaylandSurfaceKHR(instance Instance, createInfo *WaylandSurfaceCreateInfoKHR, allocator *AllocationCallbacks, surface *SurfaceKHR) Result {
	if c.createWaylandSurfaceKHR == nil {
		return ErrorExtensionNotPresent
	}
	var pAllocator uintptr
	if allocator != nil {
		pAllocator = uintptr(unsafe.Pointer(allocator))
	}
	ret, _, _ := Call(uintptr(c.createWaylandSurfaceKHR),
		uintptr(instance),
		uintptr(unsafe.Pointer(createInfo)),
		pAllocator,
		uintptr(unsafe.Pointer(surface)),
	)
	return Result(ret)
}

// CreateMetalSurfaceEXT wraps vkCreateMetalSurfaceEXT.
func (c *Commands) CreateMetalSurfaceEXT(instance Instance, createInfo *MetalSurfaceCreateInfoEXT, allocator *AllocationCallbacks, surface *SurfaceKHR) Result {
	if c.createMetalSurfaceEXT == nil {
		return ErrorExtensionNotPresent
	}
	var pAllocator uintptr
	if allocator != nil {
		pAllocator = uintptr(unsafe.Pointer(allocator))
	}
	ret, _, _ := Call(uintptr(c.createMetalSurfaceEXT),
		uintptr(instance),
		uintptr(unsafe.Pointer(createInfo)),
		pAllocator,
		uintptr(unsafe.Pointer(surface)),
	)
	return Result(ret)
}
