// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

// Getter methods for Commands function pointers.
// These provide access to the loaded Vulkan function addresses.

// CreateInstance returns the vkCreateInstance function pointer.
func (c *Commands) CreateInstance() uintptr { return uintptr(c.createInstance) }

// DestroyInstance returns the vkDestroyInstance function pointer.
func (c *Commands) DestroyInstance() uintptr { return uintptr(c.destroyInstance) }

// EnumeratePhysicalDevices returns the vkEnumeratePhysicalDevices function pointer.
func (c *Commands) EnumeratePhysicalDevices() uintptr { return uintptr(c.enumeratePhysicalDevices) }

// GetPhysicalDeviceProperties returns the vkGetPhysicalDeviceProperties function pointer.
func (c *Commands) GetPhysicalDeviceProperties() uintptr {
	return uintptr(c.getPhysicalDeviceProperties)
}

// GetPhysicalDeviceFeatures returns the vkGetPhysicalDeviceFeatures function pointer.
func (c *Commands) GetPhysicalDeviceFeatures() uintptr { return uintptr(c.getPhysicalDeviceFeatures) }

// GetPhysicalDeviceQueueFamilyProperties returns the function pointer.
func (c *Commands) GetPhysicalDeviceQueueFamilyProperties() uintptr {
	return uintptr(c.getPhysicalDeviceQueueFamilyProperties)
}

// CreateDevice returns the vkCreateDevice function pointer.
func (c *Commands) CreateDevice() uintptr { return uintptr(c.createDevice) }

// EnumerateInstanceExtensionProperties returns the function pointer.
func (c *Commands) EnumerateInstanceExtensionProperties() uintptr {
	return uintptr(c.enumerateInstanceExtensionProperties)
}

// EnumerateInstanceLayerProperties returns the function pointer.
func (c *Commands) EnumerateInstanceLayerProperties() uintptr {
	return uintptr(c.enumerateInstanceLayerProperties)
}

// EnumerateInstanceVersion returns the vkEnumerateInstanceVersion function pointer.
func (c *Commands) EnumerateInstanceVersion() uintptr { return uintptr(c.enumerateInstanceVersion) }

// DestroyDevice returns the vkDestroyDevice function pointer.
func (c *Commands) DestroyDevice() uintptr { return uintptr(c.destroyDevice) }

// GetDeviceQueue returns the vkGetDeviceQueue function pointer.
func (c *Commands) GetDeviceQueue() uintptr { return uintptr(c.getDeviceQueue) }

// GetPhysicalDeviceMemoryProperties returns the function pointer.
func (c *Commands) GetPhysicalDeviceMemoryProperties() uintptr {
	return uintptr(c.getPhysicalDeviceMemoryProperties)
}

// AllocateMemory returns the vkAllocateMemory function pointer.
func (c *Commands) AllocateMemory() uintptr { return uintptr(c.allocateMemory) }

// FreeMemory returns the vkFreeMemory function pointer.
func (c *Commands) FreeMemory() uintptr { return uintptr(c.freeMemory) }

// MapMemory returns the vkMapMemory function pointer.
func (c *Commands) MapMemory() uintptr { return uintptr(c.mapMemory) }

// UnmapMemory returns the vkUnmapMemory function pointer.
func (c *Commands) UnmapMemory() uintptr { return uintptr(c.unmapMemory) }

// GetBufferMemoryRequirements returns the function pointer.
func (c *Commands) GetBufferMemoryRequirements() uintptr {
	return uintptr(c.getBufferMemoryRequirements)
}

// BindBufferMemory returns the vkBindBufferMemory function pointer.
func (c *Commands) BindBufferMemory() uintptr { return uintptr(c.bindBufferMemory) }

// GetImageMemoryRequirements returns the function pointer.
func (c *Commands) GetImageMemoryRequirements() uintptr {
	return uintptr(c.getImageMemoryRequirements)
}

// BindImageMemory returns the vkBindImageMemory function pointer.
func (c *Commands) BindImageMemory() uintptr { return uintptr(c.bindImageMemory) }

// CreateBuffer returns the vkCreateBuffer function pointer.
func (c *Commands) CreateBuffer() uintptr { return uintptr(c.createBuffer) }

// DestroyBuffer returns the vkDestroyBuffer function pointer.
func (c *Commands) DestroyBuffer() uintptr { return uintptr(c.destroyBuffer) }

// CreateImage returns the vkCreateImage function pointer.
func (c *Commands) CreateImage() uintptr { return uintptr(c.createImage) }

// DestroyImage returns the vkDestroyImage function pointer.
func (c *Commands) DestroyImage() uintptr { return uintptr(c.destroyImage) }

// FlushMappedMemoryRanges returns the function pointer.
func (c *Commands) FlushMappedMemoryRanges() uintptr { return uintptr(c.flushMappedMemoryRanges) }

// InvalidateMappedMemoryRanges returns the function pointer.
func (c *Commands) InvalidateMappedMemoryRanges() uintptr {
	return uintptr(c.invalidateMappedMemoryRanges)
}

// --- Command Pool & Buffer ---

// CreateCommandPool returns the vkCreateCommandPool function pointer.
func (c *Commands) CreateCommandPool() uintptr { return uintptr(c.createCommandPool) }

// DestroyCommandPool returns the vkDestroyCommandPool function pointer.
func (c *Commands) DestroyCommandPool() uintptr { return uintptr(c.destroyCommandPool) }

// ResetCommandPool returns the vkResetCommandPool function pointer.
func (c *Commands) ResetCommandPool() uintptr { return uintptr(c.resetCommandPool) }

// AllocateCommandBuffers returns the vkAllocateCommandBuffers function pointer.
func (c *Commands) AllocateCommandBuffers() uintptr { return uintptr(c.allocateCommandBuffers) }

// FreeCommandBuffers returns the vkFreeCommandBuffers function pointer.
func (c *Commands) FreeCommandBuffers() uintptr { return uintptr(c.freeCommandBuffers) }

// BeginCommandBuffer returns the vkBeginCommandBuffer function pointer.
func (c *Commands) BeginCommandBuffer() uintptr { return uintptr(c.beginCommandBuffer) }

// EndCommandBuffer returns the vkEndCommandBuffer function pointer.
func (c *Commands) EndCommandBuffer() uintptr { return uintptr(c.endCommandBuffer) }

// ResetCommandBuffer returns the vkResetCommandBuffer function pointer.
func (c *Commands) ResetCommandBuffer() uintptr { return uintptr(c.resetCommandBuffer) }

// --- Pipeline Binding ---

// CmdBindPipeline returns the vkCmdBindPipeline function pointer.
func (c *Commands) CmdBindPipeline() uintptr { return uintptr(c.cmdBindPipeline) }

// CmdBindDescriptorSets returns the vkCmdBindDescriptorSets function pointer.
func (c *Commands) CmdBindDescriptorSets() uintptr { return uintptr(c.cmdBindDescriptorSets) }

// CmdBindVertexBuffers returns the vkCmdBindVertexBuffers function pointer.
func (c *Commands) CmdBindVertexBuffers() uintptr { return uintptr(c.cmdBindVertexBuffers) }

// CmdBindIndexBuffer returns the vkCmdBindIndexBuffer function pointer.
func (c *Commands) CmdBindIndexBuffer() uintptr { return uintptr(c.cmdBindIndexBuffer) }

// CmdPushConstants returns the vkCmdPushConstants function pointer.
func (c *Commands) CmdPushConstants() uintptr { return uintptr(c.cmdPushConstants) }

// --- Drawing ---

// CmdDraw returns the vkCmdDraw function pointer.
func (c *Commands) CmdDraw() uintptr { return uintptr(c.cmdDraw) }

// CmdDrawIndexed returns the vkCmdDrawIndexed function pointer.
func (c *Commands) CmdDrawIndexed() uintptr { return uintptr(c.cmdDrawIndexed) }

// CmdDrawIndirect returns the vkCmdDrawIndirect function pointer.
func (c *Commands) CmdDrawIndirect() uintptr { return uintptr(c.cmdDrawIndirect) }

// CmdDrawIndexedIndirect returns the vkCmdDrawIndexedIndirect function pointer.
func (c *Commands) CmdDrawIndexedIndirect() uintptr { return uintptr(c.cmdDrawIndexedIndirect) }

// --- Compute ---

// CmdDispatch returns the vkCmdDispatch function pointer.
func (c *Commands) CmdDispatch() uintptr { return uintptr(c.cmdDispatch) }

// CmdDispatchIndirect returns the vkCmdDispatchIndirect function pointer.
func (c *Commands) CmdDispatchIndirect() uintptr { return uintptr(c.cmdDispatchIndirect) }

// --- Viewport & Scissor ---

// CmdSetViewport returns the vkCmdSetViewport function pointer.
func (c *Commands) CmdSetViewport() uintptr { return uintptr(c.cmdSetViewport) }

// CmdSetScissor returns the vkCmdSetScissor function pointer.
func (c *Commands) CmdSetScissor() uintptr { return uintptr(c.cmdSetScissor) }

// CmdSetDepthBias returns the vkCmdSetDepthBias function pointer.
func (c *Commands) CmdSetDepthBias() uintptr { return uintptr(c.cmdSetDepthBias) }

// CmdSetBlendConstants returns the vkCmdSetBlendConstants function pointer.
func (c *Commands) CmdSetBlendConstants() uintptr { return uintptr(c.cmdSetBlendConstants) }

// CmdSetStencilReference returns the vkCmdSetStencilReference function pointer.
func (c *Commands) CmdSetStencilReference() uintptr { return uintptr(c.cmdSetStencilReference) }

// --- Render Pass ---

// CmdBeginRenderPass returns the vkCmdBeginRenderPass function pointer.
func (c *Commands) CmdBeginRenderPass() uintptr { return uintptr(c.cmdBeginRenderPass) }

// CmdEndRenderPass returns the vkCmdEndRenderPass function pointer.
func (c *Commands) CmdEndRenderPass() uintptr { return uintptr(c.cmdEndRenderPass) }

// CmdNextSubpass returns the vkCmdNextSubpass function pointer.
func (c *Commands) CmdNextSubpass() uintptr { return uintptr(c.cmdNextSubpass) }

// CmdBeginRendering returns the vkCmdBeginRendering function pointer (Vulkan 1.3+).
func (c *Commands) CmdBeginRendering() uintptr { return uintptr(c.cmdBeginRendering) }

// CmdEndRendering returns the vkCmdEndRendering function pointer (Vulkan 1.3+).
func (c *Commands) CmdEndRendering() uintptr { return uintptr(c.cmdEndRendering) }

// --- Copy Commands ---

// CmdCopyBuffer returns the vkCmdCopyBuffer function pointer.
func (c *Commands) CmdCopyBuffer() uintptr { return uintptr(c.cmdCopyBuffer) }

// CmdCopyImage returns the vkCmdCopyImage function pointer.
func (c *Commands) CmdCopyImage() uintptr { return uintptr(c.cmdCopyImage) }

// CmdCopyBufferToImage returns the vkCmdCopyBufferToImage function pointer.
func (c *Commands) CmdCopyBufferToImage() uintptr { return uintptr(c.cmdCopyBufferToImage) }

// CmdCopyImageToBuffer returns the vkCmdCopyImageToBuffer function pointer.
func (c *Commands) CmdCopyImageToBuffer() uintptr { return uintptr(c.cmdCopyImageToBuffer) }

// CmdBlitImage returns the vkCmdBlitImage function pointer.
func (c *Commands) CmdBlitImage() uintptr { return uintptr(c.cmdBlitImage) }

// --- Clear Commands ---

// CmdFillBuffer returns the vkCmdFillBuffer function pointer.
func (c *Commands) CmdFillBuffer() uintptr { return uintptr(c.cmdFillBuffer) }

// CmdClearColorImage returns the vkCmdClearColorImage function pointer.
func (c *Commands) CmdClearColorImage() uintptr { return uintptr(c.cmdClearColorImage) }

// CmdClearDepthStencilImage returns the vkCmdClearDepthStencilImage function pointer.
func (c *Commands) CmdClearDepthStencilImage() uintptr { return uintptr(c.cmdClearDepthStencilImage) }

// CmdClearAttachments returns the vkCmdClearAttachments function pointer.
func (c *Commands) CmdClearAttachments() uintptr { return uintptr(c.cmdClearAttachments) }

// --- Synchronization ---

// CmdPipelineBarrier returns the vkCmdPipelineBarrier function pointer.
func (c *Commands) CmdPipelineBarrier() uintptr { return uintptr(c.cmdPipelineBarrier) }

// CmdPipelineBarrier2 returns the vkCmdPipelineBarrier2 function pointer (Vulkan 1.3+).
func (c *Commands) CmdPipelineBarrier2() uintptr { return uintptr(c.cmdPipelineBarrier2) }

// CmdSetEvent returns the vkCmdSetEvent function pointer.
func (c *Commands) CmdSetEvent() uintptr { return uintptr(c.cmdSetEvent) }

// CmdResetEvent returns the vkCmdResetEvent function pointer.
func (c *Commands) CmdResetEvent() uintptr { return uintptr(c.cmdResetEvent) }

// CmdWaitEvents returns the vkCmdWaitEvents function pointer.
func (c *Commands) CmdWaitEvents() uintptr { return uintptr(c.cmdWaitEvents) }

// --- Secondary Command Buffers ---

// CmdExecuteCommands returns the vkCmdExecuteCommands function pointer.
func (c *Commands) CmdExecuteCommands() uintptr { return uintptr(c.cmdExecuteCommands) }
