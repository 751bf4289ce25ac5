// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import "unsafe"

// Commands holds every Vulkan function pointer the loader resolves via
// vkGetInstanceProcAddr / vkGetDeviceProcAddr. Each field is the raw address
// returned by the loader; callers go through the typed wrapper methods in
// commands_ext.go and commands_manual.go rather than touching fields
// directly. Zero value is a Commands with nothing loaded yet — see
// NewCommands and LoadGlobal/LoadInstance/LoadDevice in commands.go.
type Commands struct {
	// Global (no instance required)
	createInstance                        unsafe.Pointer
	enumerateInstanceVersion              unsafe.Pointer
	enumerateInstanceLayerProperties      unsafe.Pointer
	enumerateInstanceExtensionProperties  unsafe.Pointer

	// Instance-level
	destroyInstance                              unsafe.Pointer
	enumeratePhysicalDevices                     unsafe.Pointer
	getPhysicalDeviceProperties                  unsafe.Pointer
	getPhysicalDeviceQueueFamilyProperties        unsafe.Pointer
	getPhysicalDeviceMemoryProperties             unsafe.Pointer
	getPhysicalDeviceFeatures                     unsafe.Pointer
	getPhysicalDeviceFormatProperties             unsafe.Pointer
	getPhysicalDeviceImageFormatProperties        unsafe.Pointer
	getPhysicalDeviceSparseImageFormatProperties  unsafe.Pointer
	createDevice                                  unsafe.Pointer
	getDeviceProcAddr                             unsafe.Pointer
	enumerateDeviceLayerProperties                unsafe.Pointer
	enumerateDeviceExtensionProperties             unsafe.Pointer
	getPhysicalDeviceFeatures2                    unsafe.Pointer
	getPhysicalDeviceProperties2                  unsafe.Pointer

	// WSI (instance-level)
	destroySurfaceKHR                        unsafe.Pointer
	getPhysicalDeviceSurfaceSupportKHR       unsafe.Pointer
	getPhysicalDeviceSurfaceCapabilitiesKHR  unsafe.Pointer
	getPhysicalDeviceSurfaceFormatsKHR       unsafe.Pointer
	getPhysicalDeviceSurfacePresentModesKHR  unsafe.Pointer
	createWin32SurfaceKHR                    unsafe.Pointer
	createXlibSurfaceKHR                     unsafe.Pointer
	createWaylandSurfaceKHR                  unsafe.Pointer
	createMetalSurfaceEXT                    unsafe.Pointer

	// Debug utils (instance-level, EXT)
	createDebugUtilsMessengerEXT  unsafe.Pointer
	destroyDebugUtilsMessengerEXT unsafe.Pointer
	setDebugUtilsObjectNameEXT    unsafe.Pointer

	// Device-level: lifetime & queues
	destroyDevice   unsafe.Pointer
	getDeviceQueue  unsafe.Pointer
	queueSubmit     unsafe.Pointer
	queueWaitIdle   unsafe.Pointer
	deviceWaitIdle  unsafe.Pointer
	queueBindSparse unsafe.Pointer

	// Memory
	allocateMemory                unsafe.Pointer
	freeMemory                    unsafe.Pointer
	mapMemory                     unsafe.Pointer
	unmapMemory                   unsafe.Pointer
	flushMappedMemoryRanges       unsafe.Pointer
	invalidateMappedMemoryRanges  unsafe.Pointer
	getDeviceMemoryCommitment     unsafe.Pointer
	getBufferMemoryRequirements   unsafe.Pointer
	bindBufferMemory              unsafe.Pointer
	getImageMemoryRequirements    unsafe.Pointer
	bindImageMemory               unsafe.Pointer
	getImageSparseMemoryRequirements unsafe.Pointer

	// Synchronization primitives
	createFence           unsafe.Pointer
	destroyFence          unsafe.Pointer
	resetFences           unsafe.Pointer
	getFenceStatus        unsafe.Pointer
	waitForFences         unsafe.Pointer
	createSemaphore       unsafe.Pointer
	destroySemaphore      unsafe.Pointer
	createEvent           unsafe.Pointer
	destroyEvent          unsafe.Pointer
	getEventStatus        unsafe.Pointer
	setEvent              unsafe.Pointer
	resetEvent            unsafe.Pointer
	getSemaphoreCounterValue unsafe.Pointer
	waitSemaphores        unsafe.Pointer
	signalSemaphore       unsafe.Pointer

	// Query pools
	createQueryPool      unsafe.Pointer
	destroyQueryPool     unsafe.Pointer
	getQueryPoolResults  unsafe.Pointer
	resetQueryPool       unsafe.Pointer

	// Buffers & images
	createBuffer                unsafe.Pointer
	destroyBuffer               unsafe.Pointer
	createBufferView            unsafe.Pointer
	destroyBufferView           unsafe.Pointer
	createImage                 unsafe.Pointer
	destroyImage                unsafe.Pointer
	getImageSubresourceLayout   unsafe.Pointer
	createImageView             unsafe.Pointer
	destroyImageView            unsafe.Pointer

	// Shaders & pipelines
	createShaderModule       unsafe.Pointer
	destroyShaderModule      unsafe.Pointer
	createPipelineCache      unsafe.Pointer
	destroyPipelineCache     unsafe.Pointer
	getPipelineCacheData     unsafe.Pointer
	mergePipelineCaches      unsafe.Pointer
	createGraphicsPipelines  unsafe.Pointer
	createComputePipelines   unsafe.Pointer
	destroyPipeline          unsafe.Pointer
	createPipelineLayout     unsafe.Pointer
	destroyPipelineLayout    unsafe.Pointer

	// Samplers & descriptors
	createSampler               unsafe.Pointer
	destroySampler              unsafe.Pointer
	createDescriptorSetLayout   unsafe.Pointer
	destroyDescriptorSetLayout  unsafe.Pointer
	createDescriptorPool        unsafe.Pointer
	destroyDescriptorPool       unsafe.Pointer
	resetDescriptorPool         unsafe.Pointer
	allocateDescriptorSets      unsafe.Pointer
	freeDescriptorSets          unsafe.Pointer
	updateDescriptorSets        unsafe.Pointer

	// Framebuffers & render passes (legacy, kept for render-pass fallback path)
	createFramebuffer        unsafe.Pointer
	destroyFramebuffer       unsafe.Pointer
	createRenderPass         unsafe.Pointer
	destroyRenderPass        unsafe.Pointer
	getRenderAreaGranularity unsafe.Pointer

	// Command pools & buffers
	createCommandPool       unsafe.Pointer
	destroyCommandPool      unsafe.Pointer
	resetCommandPool        unsafe.Pointer
	allocateCommandBuffers  unsafe.Pointer
	freeCommandBuffers      unsafe.Pointer
	beginCommandBuffer      unsafe.Pointer
	endCommandBuffer        unsafe.Pointer
	resetCommandBuffer      unsafe.Pointer

	// Command recording: pipeline state
	cmdBindPipeline          unsafe.Pointer
	cmdSetViewport           unsafe.Pointer
	cmdSetScissor            unsafe.Pointer
	cmdSetLineWidth          unsafe.Pointer
	cmdSetDepthBias          unsafe.Pointer
	cmdSetBlendConstants     unsafe.Pointer
	cmdSetDepthBounds        unsafe.Pointer
	cmdSetStencilCompareMask unsafe.Pointer
	cmdSetStencilWriteMask   unsafe.Pointer
	cmdSetStencilReference   unsafe.Pointer
	cmdBindDescriptorSets    unsafe.Pointer
	cmdBindIndexBuffer       unsafe.Pointer
	cmdBindVertexBuffers     unsafe.Pointer
	cmdPushConstants         unsafe.Pointer

	// Command recording: draw & dispatch
	cmdDraw                unsafe.Pointer
	cmdDrawIndexed         unsafe.Pointer
	cmdDrawIndirect        unsafe.Pointer
	cmdDrawIndexedIndirect unsafe.Pointer
	cmdDispatch            unsafe.Pointer
	cmdDispatchIndirect    unsafe.Pointer

	// Command recording: copies & clears
	cmdCopyBuffer             unsafe.Pointer
	cmdCopyImage              unsafe.Pointer
	cmdBlitImage              unsafe.Pointer
	cmdCopyBufferToImage      unsafe.Pointer
	cmdCopyImageToBuffer      unsafe.Pointer
	cmdUpdateBuffer           unsafe.Pointer
	cmdFillBuffer             unsafe.Pointer
	cmdClearColorImage        unsafe.Pointer
	cmdClearDepthStencilImage unsafe.Pointer
	cmdClearAttachments       unsafe.Pointer
	cmdResolveImage           unsafe.Pointer

	// Command recording: synchronization
	cmdSetEvent          unsafe.Pointer
	cmdResetEvent        unsafe.Pointer
	cmdWaitEvents        unsafe.Pointer
	cmdPipelineBarrier   unsafe.Pointer
	cmdPipelineBarrier2  unsafe.Pointer // Vulkan 1.3 core (Synchronization2)

	// Command recording: queries
	cmdBeginQuery           unsafe.Pointer
	cmdEndQuery             unsafe.Pointer
	cmdResetQueryPool       unsafe.Pointer
	cmdWriteTimestamp       unsafe.Pointer
	cmdCopyQueryPoolResults unsafe.Pointer

	// Command recording: render passes / dynamic rendering
	cmdBeginRenderPass unsafe.Pointer
	cmdNextSubpass     unsafe.Pointer
	cmdEndRenderPass   unsafe.Pointer
	cmdBeginRendering  unsafe.Pointer // Vulkan 1.3 core (dynamic rendering)
	cmdEndRendering    unsafe.Pointer // Vulkan 1.3 core (dynamic rendering)
	cmdExecuteCommands unsafe.Pointer

	// Swapchain (WSI, device-level)
	createSwapchainKHR    unsafe.Pointer
	destroySwapchainKHR   unsafe.Pointer
	getSwapchainImagesKHR unsafe.Pointer
	acquireNextImageKHR   unsafe.Pointer
	queuePresentKHR       unsafe.Pointer
}
