// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"fmt"
	"unsafe"

	"github.com/renderhi/rhi/hal"
	"github.com/renderhi/rhi/hal/vulkan/vk"
	"github.com/renderhi/rhi/types"
)

// CommandPool manages command buffer allocation.
type CommandPool struct {
	handle vk.CommandPool
	device *Device
}

// CommandBuffer holds a recorded Vulkan command buffer.
type CommandBuffer struct {
	handle vk.CommandBuffer
	pool   *CommandPool
}

// Destroy releases the command buffer resources.
func (c *CommandBuffer) Destroy() {
	// Command buffers are freed when the pool is destroyed or reset
	c.handle = 0
}

// CommandEncoder implements hal.CommandEncoder for Vulkan.
type CommandEncoder struct {
	device      *Device
	pool        *CommandPool
	cmdBuffer   vk.CommandBuffer
	label       string
	isRecording bool
}

// BeginEncoding begins command recording.
func (e *CommandEncoder) BeginEncoding(label string) error {
	e.label = label

	// Begin command buffer
	beginInfo := vk.CommandBufferBeginInfo{
		SType: vk.StructureTypeCommandBufferBeginInfo,
		Flags: vk.CommandBufferUsageFlags(vk.CommandBufferUsageOneTimeSubmitBit),
	}

	result := vkBeginCommandBuffer(e.device.cmds, e.cmdBuffer, &beginInfo)
	if result != vk.Success {
		return fmt.Errorf("vulkan: vkBeginCommandBuffer failed: %d", result)
	}

	e.isRecording = true
	return nil
}

// EndEncoding finishes command recording and returns a command buffer.
func (e *CommandEncoder) EndEncoding() (hal.CommandBuffer, error) {
	if !e.isRecording {
		return nil, fmt.Errorf("vulkan: command encoder is not recording")
	}

	result := vkEndCommandBuffer(e.device.cmds, e.cmdBuffer)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkEndCommandBuffer failed: %d", result)
	}

	e.isRecording = false

	return &CommandBuffer{
		handle: e.cmdBuffer,
		pool:   e.pool,
	}, nil
}

// DiscardEncoding discards the encoder.
func (e *CommandEncoder) DiscardEncoding() {
	if e.isRecording {
		// End the command buffer even though we're discarding it
		_ = vkEndCommandBuffer(e.device.cmds, e.cmdBuffer)
		e.isRecording = false
	}
}

// ResetAll resets command buffers for reuse.
func (e *CommandEncoder) ResetAll(commandBuffers []hal.CommandBuffer) {
	// Reset the pool instead of individual buffers for better performance
	if e.pool != nil {
		vkResetCommandPool(e.device.cmds, e.device.handle, e.pool.handle, 0)
	}
	_ = commandBuffers // Individual buffers are reset with the pool
}

// TransitionBuffers transitions buffer states for synchronization using the
// Synchronization2 enhanced-barrier path (a single VkDependencyInfo holding
// VkBufferMemoryBarrier2 entries, submitted via vkCmdPipelineBarrier2).
// Each barrier carries its own src/dst stage and access masks rather than
// the one blunt stage mask the legacy vkCmdPipelineBarrier call required.
func (e *CommandEncoder) TransitionBuffers(barriers []hal.BufferBarrier) {
	if !e.isRecording || len(barriers) == 0 {
		return
	}

	if !e.device.cmds.HasSynchronization2() {
		e.transitionBuffersLegacy(barriers)
		return
	}

	bufferBarriers := make([]vk.BufferMemoryBarrier2, 0, len(barriers))
	for _, b := range barriers {
		buf, ok := b.Buffer.(*Buffer)
		if !ok {
			continue
		}

		srcAccess, srcStage := bufferUsageToAccessAndStage2(b.Usage.OldUsage)
		dstAccess, dstStage := bufferUsageToAccessAndStage2(b.Usage.NewUsage)

		bufferBarriers = append(bufferBarriers, vk.BufferMemoryBarrier2{
			SType:               vk.StructureTypeBufferMemoryBarrier2,
			SrcStageMask:        srcStage,
			SrcAccessMask:       srcAccess,
			DstStageMask:        dstStage,
			DstAccessMask:       dstAccess,
			SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
			DstQueueFamilyIndex: vk.QueueFamilyIgnored,
			Buffer:              buf.handle,
			Offset:              0,
			Size:                vk.DeviceSize(vk.WholeSize),
		})
	}
	if len(bufferBarriers) == 0 {
		return
	}

	depInfo := vk.DependencyInfo{
		SType:                    vk.StructureTypeDependencyInfo,
		BufferMemoryBarrierCount: uint32(len(bufferBarriers)),
		PBufferMemoryBarriers:    &bufferBarriers[0],
	}
	vkCmdPipelineBarrier2(e.device.cmds, e.cmdBuffer, &depInfo)
}

// transitionBuffersLegacy is the Synchronization1 fallback for drivers that
// did not resolve vkCmdPipelineBarrier2 (pre-Vulkan-1.3). VkAccessFlagBits2
// and VkPipelineStageFlagBits2 are defined by the spec to share bit values
// with their Synchronization1 counterparts for every flag that predates
// Synchronization2, so truncating the 64-bit mask to 32 bits is lossless
// here; it only drops the newer bits (e.g. COPY_BIT) that have no Sync1
// equivalent. An empty source mask becomes TOP_OF_PIPE and an empty
// destination mask becomes BOTTOM_OF_PIPE.
func (e *CommandEncoder) transitionBuffersLegacy(barriers []hal.BufferBarrier) {
	bufferBarriers := make([]vk.BufferMemoryBarrier, 0, len(barriers))
	var srcStageMask, dstStageMask vk.PipelineStageFlags
	for _, b := range barriers {
		buf, ok := b.Buffer.(*Buffer)
		if !ok {
			continue
		}

		srcAccess2, srcStage2 := bufferUsageToAccessAndStage2(b.Usage.OldUsage)
		dstAccess2, dstStage2 := bufferUsageToAccessAndStage2(b.Usage.NewUsage)
		srcStage, dstStage := stage2ToStage1(srcStage2), stage2ToStage1(dstStage2)
		srcStageMask |= srcStage
		dstStageMask |= dstStage

		bufferBarriers = append(bufferBarriers, vk.BufferMemoryBarrier{
			SType:               vk.StructureTypeBufferMemoryBarrier,
			SrcAccessMask:       vk.AccessFlags(srcAccess2),
			DstAccessMask:       vk.AccessFlags(dstAccess2),
			SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
			DstQueueFamilyIndex: vk.QueueFamilyIgnored,
			Buffer:              buf.handle,
			Offset:              0,
			Size:                vk.DeviceSize(vk.WholeSize),
		})
	}
	if len(bufferBarriers) == 0 {
		return
	}
	if srcStageMask == 0 {
		srcStageMask = vk.PipelineStageTopOfPipeBit
	}
	if dstStageMask == 0 {
		dstStageMask = vk.PipelineStageBottomOfPipeBit
	}

	vkCmdPipelineBarrier(e.device.cmds, e.cmdBuffer,
		srcStageMask, dstStageMask, 0,
		0, nil,
		uint32(len(bufferBarriers)), &bufferBarriers[0],
		0, nil)
}

// TransitionTextures transitions texture states for synchronization using
// the Synchronization2 enhanced-barrier path (VkImageMemoryBarrier2 entries
// inside a single VkDependencyInfo, submitted via vkCmdPipelineBarrier2).
func (e *CommandEncoder) TransitionTextures(barriers []hal.TextureBarrier) {
	if !e.isRecording || len(barriers) == 0 {
		return
	}

	if !e.device.cmds.HasSynchronization2() {
		e.transitionTexturesLegacy(barriers)
		return
	}

	imageBarriers := make([]vk.ImageMemoryBarrier2, 0, len(barriers))
	for _, b := range barriers {
		tex, ok := b.Texture.(*Texture)
		if !ok {
			continue
		}

		srcAccess, srcStage, oldLayout := textureUsageToAccessStageLayout2(b.Usage.OldUsage)
		dstAccess, dstStage, newLayout := textureUsageToAccessStageLayout2(b.Usage.NewUsage)

		imageBarriers = append(imageBarriers, vk.ImageMemoryBarrier2{
			SType:               vk.StructureTypeImageMemoryBarrier2,
			SrcStageMask:        srcStage,
			SrcAccessMask:       srcAccess,
			DstStageMask:        dstStage,
			DstAccessMask:       dstAccess,
			OldLayout:           oldLayout,
			NewLayout:           newLayout,
			SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
			DstQueueFamilyIndex: vk.QueueFamilyIgnored,
			Image:               tex.handle,
			SubresourceRange: vk.ImageSubresourceRange{
				AspectMask:     textureAspectToVk(b.Range.Aspect),
				BaseMipLevel:   b.Range.BaseMipLevel,
				LevelCount:     mipLevelCountOrRemaining(b.Range.MipLevelCount),
				BaseArrayLayer: b.Range.BaseArrayLayer,
				LayerCount:     arrayLayerCountOrRemaining(b.Range.ArrayLayerCount),
			},
		})
	}
	if len(imageBarriers) == 0 {
		return
	}

	depInfo := vk.DependencyInfo{
		SType:                   vk.StructureTypeDependencyInfo,
		ImageMemoryBarrierCount: uint32(len(imageBarriers)),
		PImageMemoryBarriers:    &imageBarriers[0],
	}
	vkCmdPipelineBarrier2(e.device.cmds, e.cmdBuffer, &depInfo)
}

// transitionTexturesLegacy is the Synchronization1 fallback for
// TransitionTextures on drivers without vkCmdPipelineBarrier2; see
// transitionBuffersLegacy for the truncation rationale. Layout values are
// unaffected: VkImageLayout did not change between Synchronization1 and 2.
func (e *CommandEncoder) transitionTexturesLegacy(barriers []hal.TextureBarrier) {
	imageBarriers := make([]vk.ImageMemoryBarrier, 0, len(barriers))
	var srcStageMask, dstStageMask vk.PipelineStageFlags
	for _, b := range barriers {
		tex, ok := b.Texture.(*Texture)
		if !ok {
			continue
		}

		srcAccess2, srcStage2, oldLayout := textureUsageToAccessStageLayout2(b.Usage.OldUsage)
		dstAccess2, dstStage2, newLayout := textureUsageToAccessStageLayout2(b.Usage.NewUsage)
		srcStage, dstStage := stage2ToStage1(srcStage2), stage2ToStage1(dstStage2)
		srcStageMask |= srcStage
		dstStageMask |= dstStage

		imageBarriers = append(imageBarriers, vk.ImageMemoryBarrier{
			SType:               vk.StructureTypeImageMemoryBarrier,
			SrcAccessMask:       vk.AccessFlags(srcAccess2),
			DstAccessMask:       vk.AccessFlags(dstAccess2),
			OldLayout:           oldLayout,
			NewLayout:           newLayout,
			SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
			DstQueueFamilyIndex: vk.QueueFamilyIgnored,
			Image:               tex.handle,
			SubresourceRange: vk.ImageSubresourceRange{
				AspectMask:     textureAspectToVk(b.Range.Aspect),
				BaseMipLevel:   b.Range.BaseMipLevel,
				LevelCount:     mipLevelCountOrRemaining(b.Range.MipLevelCount),
				BaseArrayLayer: b.Range.BaseArrayLayer,
				LayerCount:     arrayLayerCountOrRemaining(b.Range.ArrayLayerCount),
			},
		})
	}
	if len(imageBarriers) == 0 {
		return
	}
	if srcStageMask == 0 {
		srcStageMask = vk.PipelineStageTopOfPipeBit
	}
	if dstStageMask == 0 {
		dstStageMask = vk.PipelineStageBottomOfPipeBit
	}

	vkCmdPipelineBarrier(e.device.cmds, e.cmdBuffer,
		srcStageMask, dstStageMask, 0,
		0, nil,
		0, nil,
		uint32(len(imageBarriers)), &imageBarriers[0])
}

// stage2ToStage1 truncates a Synchronization2 pipeline-stage mask to its
// 32-bit Synchronization1 equivalent. Bits with no Sync1 counterpart (the
// top 32 bits, e.g. COPY_BIT/RESOLVE_BIT) are dropped; callers fall back to
// TOP_OF_PIPE/BOTTOM_OF_PIPE when that leaves the mask empty.
func stage2ToStage1(stage vk.PipelineStageFlags2) vk.PipelineStageFlags {
	return vk.PipelineStageFlags(stage & 0xFFFFFFFF)
}

// ClearBuffer clears a buffer region to zero.
func (e *CommandEncoder) ClearBuffer(buffer hal.Buffer, offset, size uint64) {
	if !e.isRecording {
		return
	}

	buf, ok := buffer.(*Buffer)
	if !ok {
		return
	}

	// vkCmdFillBuffer fills with a 32-bit value (0 for zero fill)
	vkCmdFillBuffer(e.device.cmds, e.cmdBuffer, buf.handle, vk.DeviceSize(offset), vk.DeviceSize(size), 0)
}

// CopyBufferToBuffer copies data between buffers.
func (e *CommandEncoder) CopyBufferToBuffer(src, dst hal.Buffer, regions []hal.BufferCopy) {
	if !e.isRecording {
		return
	}

	srcBuf, srcOk := src.(*Buffer)
	dstBuf, dstOk := dst.(*Buffer)
	if !srcOk || !dstOk {
		return
	}

	vkRegions := make([]vk.BufferCopy, len(regions))
	for i, r := range regions {
		vkRegions[i] = vk.BufferCopy{
			SrcOffset: vk.DeviceSize(r.SrcOffset),
			DstOffset: vk.DeviceSize(r.DstOffset),
			Size:      vk.DeviceSize(r.Size),
		}
	}

	vkCmdCopyBuffer(e.device.cmds, e.cmdBuffer, srcBuf.handle, dstBuf.handle, uint32(len(vkRegions)), &vkRegions[0])
}

// convertBufferImageCopyRegions converts HAL BufferTextureCopy regions to Vulkan BufferImageCopy.
func convertBufferImageCopyRegions(regions []hal.BufferTextureCopy) []vk.BufferImageCopy {
	vkRegions := make([]vk.BufferImageCopy, len(regions))
	for i, r := range regions {
		vkRegions[i] = vk.BufferImageCopy{
			BufferOffset:      vk.DeviceSize(r.BufferLayout.Offset),
			BufferRowLength:   r.BufferLayout.BytesPerRow,
			BufferImageHeight: r.BufferLayout.RowsPerImage,
			ImageSubresource: vk.ImageSubresourceLayers{
				AspectMask:     textureAspectToVk(r.TextureBase.Aspect),
				MipLevel:       r.TextureBase.MipLevel,
				BaseArrayLayer: 0,
				LayerCount:     1,
			},
			ImageOffset: vk.Offset3D{
				X: int32(r.TextureBase.Origin.X),
				Y: int32(r.TextureBase.Origin.Y),
				Z: int32(r.TextureBase.Origin.Z),
			},
			ImageExtent: vk.Extent3D{
				Width:  r.Size.Width,
				Height: r.Size.Height,
				Depth:  r.Size.DepthOrArrayLayers,
			},
		}
	}
	return vkRegions
}

// CopyBufferToTexture copies data from a buffer to a texture.
func (e *CommandEncoder) CopyBufferToTexture(src hal.Buffer, dst hal.Texture, regions []hal.BufferTextureCopy) {
	if !e.isRecording {
		return
	}

	srcBuf, srcOk := src.(*Buffer)
	dstTex, dstOk := dst.(*Texture)
	if !srcOk || !dstOk {
		return
	}

	vkRegions := convertBufferImageCopyRegions(regions)
	vkCmdCopyBufferToImage(
		e.device.cmds,
		e.cmdBuffer,
		srcBuf.handle,
		dstTex.handle,
		vk.ImageLayoutTransferDstOptimal,
		uint32(len(vkRegions)),
		&vkRegions[0],
	)
}

// CopyTextureToBuffer copies data from a texture to a buffer.
func (e *CommandEncoder) CopyTextureToBuffer(src hal.Texture, dst hal.Buffer, regions []hal.BufferTextureCopy) {
	if !e.isRecording {
		return
	}

	srcTex, srcOk := src.(*Texture)
	dstBuf, dstOk := dst.(*Buffer)
	if !srcOk || !dstOk {
		return
	}

	vkRegions := convertBufferImageCopyRegions(regions)
	vkCmdCopyImageToBuffer(
		e.device.cmds,
		e.cmdBuffer,
		srcTex.handle,
		vk.ImageLayoutTransferSrcOptimal,
		dstBuf.handle,
		uint32(len(vkRegions)),
		&vkRegions[0],
	)
}

// CopyTextureToTexture copies data between textures.
func (e *CommandEncoder) CopyTextureToTexture(src, dst hal.Texture, regions []hal.TextureCopy) {
	if !e.isRecording {
		return
	}

	srcTex, srcOk := src.(*Texture)
	dstTex, dstOk := dst.(*Texture)
	if !srcOk || !dstOk {
		return
	}

	vkRegions := make([]vk.ImageCopy, len(regions))
	for i, r := range regions {
		vkRegions[i] = vk.ImageCopy{
			SrcSubresource: vk.ImageSubresourceLayers{
				AspectMask:     textureAspectToVk(r.SrcBase.Aspect),
				MipLevel:       r.SrcBase.MipLevel,
				BaseArrayLayer: 0,
				LayerCount:     1,
			},
			SrcOffset: vk.Offset3D{
				X: int32(r.SrcBase.Origin.X),
				Y: int32(r.SrcBase.Origin.Y),
				Z: int32(r.SrcBase.Origin.Z),
			},
			DstSubresource: vk.ImageSubresourceLayers{
				AspectMask:     textureAspectToVk(r.DstBase.Aspect),
				MipLevel:       r.DstBase.MipLevel,
				BaseArrayLayer: 0,
				LayerCount:     1,
			},
			DstOffset: vk.Offset3D{
				X: int32(r.DstBase.Origin.X),
				Y: int32(r.DstBase.Origin.Y),
				Z: int32(r.DstBase.Origin.Z),
			},
			Extent: vk.Extent3D{
				Width:  r.Size.Width,
				Height: r.Size.Height,
				Depth:  r.Size.DepthOrArrayLayers,
			},
		}
	}

	vkCmdCopyImage(
		e.device.cmds,
		e.cmdBuffer,
		srcTex.handle,
		vk.ImageLayoutTransferSrcOptimal,
		dstTex.handle,
		vk.ImageLayoutTransferDstOptimal,
		uint32(len(vkRegions)),
		&vkRegions[0],
	)
}

// BeginRenderPass begins a render pass using dynamic rendering (Vulkan 1.3+).
func (e *CommandEncoder) BeginRenderPass(desc *hal.RenderPassDescriptor) hal.RenderPassEncoder {
	rpe := &RenderPassEncoder{
		encoder: e,
		desc:    desc,
	}

	if !e.isRecording {
		return rpe
	}

	// Use dynamic rendering (VK_KHR_dynamic_rendering / Vulkan 1.3)
	// This avoids the need for VkRenderPass and VkFramebuffer objects
	colorAttachments := make([]vk.RenderingAttachmentInfo, len(desc.ColorAttachments))
	for i, ca := range desc.ColorAttachments {
		view, ok := ca.View.(*TextureView)
		if !ok {
			continue
		}

		colorAttachments[i] = vk.RenderingAttachmentInfo{
			SType:       vk.StructureTypeRenderingAttachmentInfo,
			ImageView:   view.handle,
			ImageLayout: vk.ImageLayoutColorAttachmentOptimal,
			LoadOp:      loadOpToVk(ca.LoadOp),
			StoreOp:     storeOpToVk(ca.StoreOp),
			ClearValue: vk.ClearValueColor(
				float32(ca.ClearValue.R),
				float32(ca.ClearValue.G),
				float32(ca.ClearValue.B),
				float32(ca.ClearValue.A),
			),
		}

		// Handle resolve target for MSAA
		if ca.ResolveTarget != nil {
			resolveView, ok := ca.ResolveTarget.(*TextureView)
			if ok {
				colorAttachments[i].ResolveMode = vk.ResolveModeAverageBit
				colorAttachments[i].ResolveImageView = resolveView.handle
				colorAttachments[i].ResolveImageLayout = vk.ImageLayoutColorAttachmentOptimal
			}
		}
	}

	renderingInfo := vk.RenderingInfo{
		SType: vk.StructureTypeRenderingInfo,
		RenderArea: vk.Rect2D{
			Offset: vk.Offset2D{X: 0, Y: 0},
			Extent: vk.Extent2D{Width: 0, Height: 0}, // Set from first attachment below
		},
		LayerCount:           1,
		ColorAttachmentCount: uint32(len(colorAttachments)),
	}
	if len(desc.ColorAttachments) > 0 {
		if view, ok := desc.ColorAttachments[0].View.(*TextureView); ok && view.texture != nil {
			renderingInfo.RenderArea.Extent = vk.Extent2D{Width: view.texture.size.Width, Height: view.texture.size.Height}
		}
	}

	if len(colorAttachments) > 0 {
		renderingInfo.PColorAttachments = &colorAttachments[0]
	}

	// Handle depth/stencil attachment
	var depthAttachment vk.RenderingAttachmentInfo
	if desc.DepthStencilAttachment != nil {
		dsa := desc.DepthStencilAttachment
		view, ok := dsa.View.(*TextureView)
		if ok {
			depthAttachment = vk.RenderingAttachmentInfo{
				SType:       vk.StructureTypeRenderingAttachmentInfo,
				ImageView:   view.handle,
				ImageLayout: vk.ImageLayoutDepthStencilAttachmentOptimal,
				LoadOp:      loadOpToVk(dsa.DepthLoadOp),
				StoreOp:     storeOpToVk(dsa.DepthStoreOp),
				ClearValue:  vk.ClearValueDepthStencil(dsa.DepthClearValue, dsa.StencilClearValue),
			}
			renderingInfo.PDepthAttachment = &depthAttachment
			renderingInfo.PStencilAttachment = &depthAttachment // Same attachment for depth/stencil
		}
	}

	vkCmdBeginRendering(e.device.cmds, e.cmdBuffer, &renderingInfo)

	return rpe
}

// BeginComputePass begins a compute pass.
func (e *CommandEncoder) BeginComputePass(desc *hal.ComputePassDescriptor) hal.ComputePassEncoder {
	_ = desc // Compute passes don't need Vulkan-level begin/end
	return &ComputePassEncoder{
		encoder: e,
	}
}

// RenderPassEncoder implements hal.RenderPassEncoder for Vulkan.
type RenderPassEncoder struct {
	encoder     *CommandEncoder
	desc        *hal.RenderPassDescriptor
	pipeline    *RenderPipeline
	indexFormat types.IndexFormat
}

// End finishes the render pass.
func (e *RenderPassEncoder) End() {
	if e.encoder.isRecording {
		vkCmdEndRendering(e.encoder.device.cmds, e.encoder.cmdBuffer)
	}
}

// SetPipeline sets the render pipeline.
func (e *RenderPassEncoder) SetPipeline(pipeline hal.RenderPipeline) {
	p, ok := pipeline.(*RenderPipeline)
	if !ok || !e.encoder.isRecording {
		return
	}
	e.pipeline = p

	vkCmdBindPipeline(e.encoder.device.cmds, e.encoder.cmdBuffer, vk.PipelineBindPointGraphics, p.handle)
}

// SetBindGroup sets a bind group.
func (e *RenderPassEncoder) SetBindGroup(index uint32, group hal.BindGroup, offsets []uint32) {
	bg, ok := group.(*BindGroup)
	if !ok || !e.encoder.isRecording {
		return
	}

	var pOffsets *uint32
	if len(offsets) > 0 {
		pOffsets = &offsets[0]
	}

	vkCmdBindDescriptorSets(
		e.encoder.device.cmds,
		e.encoder.cmdBuffer,
		vk.PipelineBindPointGraphics,
		e.pipeline.layout,
		index,
		1,
		&bg.handle,
		uint32(len(offsets)),
		pOffsets,
	)
}

// SetVertexBuffer sets a vertex buffer.
func (e *RenderPassEncoder) SetVertexBuffer(slot uint32, buffer hal.Buffer, offset uint64) {
	buf, ok := buffer.(*Buffer)
	if !ok || !e.encoder.isRecording {
		return
	}

	offsets := []vk.DeviceSize{vk.DeviceSize(offset)}
	buffers := []vk.Buffer{buf.handle}

	vkCmdBindVertexBuffers(e.encoder.device.cmds, e.encoder.cmdBuffer, slot, 1, &buffers[0], &offsets[0])
}

// SetIndexBuffer sets the index buffer.
func (e *RenderPassEncoder) SetIndexBuffer(buffer hal.Buffer, format types.IndexFormat, offset uint64) {
	buf, ok := buffer.(*Buffer)
	if !ok || !e.encoder.isRecording {
		return
	}

	e.indexFormat = format
	indexType := vk.IndexTypeUint16
	if format == types.IndexFormatUint32 {
		indexType = vk.IndexTypeUint32
	}

	vkCmdBindIndexBuffer(e.encoder.device.cmds, e.encoder.cmdBuffer, buf.handle, vk.DeviceSize(offset), indexType)
}

// SetViewport sets the viewport.
func (e *RenderPassEncoder) SetViewport(x, y, width, height, minDepth, maxDepth float32) {
	if !e.encoder.isRecording {
		return
	}

	viewport := vk.Viewport{
		X:        x,
		Y:        y,
		Width:    width,
		Height:   height,
		MinDepth: minDepth,
		MaxDepth: maxDepth,
	}

	vkCmdSetViewport(e.encoder.device.cmds, e.encoder.cmdBuffer, 0, 1, &viewport)
}

// SetScissorRect sets the scissor rectangle.
func (e *RenderPassEncoder) SetScissorRect(x, y, width, height uint32) {
	if !e.encoder.isRecording {
		return
	}

	scissor := vk.Rect2D{
		Offset: vk.Offset2D{X: int32(x), Y: int32(y)},
		Extent: vk.Extent2D{Width: width, Height: height},
	}

	vkCmdSetScissor(e.encoder.device.cmds, e.encoder.cmdBuffer, 0, 1, &scissor)
}

// SetBlendConstant sets the blend constant.
func (e *RenderPassEncoder) SetBlendConstant(color *types.Color) {
	if !e.encoder.isRecording || color == nil {
		return
	}

	blendConstants := [4]float32{
		float32(color.R),
		float32(color.G),
		float32(color.B),
		float32(color.A),
	}

	vkCmdSetBlendConstants(e.encoder.device.cmds, e.encoder.cmdBuffer, &blendConstants)
}

// SetStencilReference sets the stencil reference value.
func (e *RenderPassEncoder) SetStencilReference(ref uint32) {
	if !e.encoder.isRecording {
		return
	}

	// Set for both front and back faces
	vkCmdSetStencilReference(e.encoder.device.cmds, e.encoder.cmdBuffer, vk.StencilFaceFlags(vk.StencilFaceFrontAndBack), ref)
}

// Draw draws primitives.
func (e *RenderPassEncoder) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	if !e.encoder.isRecording {
		return
	}

	vkCmdDraw(e.encoder.device.cmds, e.encoder.cmdBuffer, vertexCount, instanceCount, firstVertex, firstInstance)
}

// DrawIndexed draws indexed primitives.
func (e *RenderPassEncoder) DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32) {
	if !e.encoder.isRecording {
		return
	}

	vkCmdDrawIndexed(e.encoder.device.cmds, e.encoder.cmdBuffer, indexCount, instanceCount, firstIndex, baseVertex, firstInstance)
}

// DrawIndirect draws primitives with GPU-generated parameters.
func (e *RenderPassEncoder) DrawIndirect(buffer hal.Buffer, offset uint64) {
	buf, ok := buffer.(*Buffer)
	if !ok || !e.encoder.isRecording {
		return
	}

	vkCmdDrawIndirect(e.encoder.device.cmds, e.encoder.cmdBuffer, buf.handle, vk.DeviceSize(offset), 1, 0)
}

// DrawIndexedIndirect draws indexed primitives with GPU-generated parameters.
func (e *RenderPassEncoder) DrawIndexedIndirect(buffer hal.Buffer, offset uint64) {
	buf, ok := buffer.(*Buffer)
	if !ok || !e.encoder.isRecording {
		return
	}

	vkCmdDrawIndexedIndirect(e.encoder.device.cmds, e.encoder.cmdBuffer, buf.handle, vk.DeviceSize(offset), 1, 0)
}

// ExecuteBundle records nothing: the bundle is ignored and its commands
// are not executed.
func (e *RenderPassEncoder) ExecuteBundle(bundle hal.RenderBundle) {
	_ = bundle
}

// ComputePassEncoder implements hal.ComputePassEncoder for Vulkan.
type ComputePassEncoder struct {
	encoder  *CommandEncoder
	pipeline *ComputePipeline
}

// End finishes the compute pass.
func (e *ComputePassEncoder) End() {
	// No Vulkan-level end needed for compute passes
}

// SetPipeline sets the compute pipeline.
func (e *ComputePassEncoder) SetPipeline(pipeline hal.ComputePipeline) {
	p, ok := pipeline.(*ComputePipeline)
	if !ok || !e.encoder.isRecording {
		return
	}
	e.pipeline = p

	vkCmdBindPipeline(e.encoder.device.cmds, e.encoder.cmdBuffer, vk.PipelineBindPointCompute, p.handle)
}

// SetBindGroup sets a bind group.
func (e *ComputePassEncoder) SetBindGroup(index uint32, group hal.BindGroup, offsets []uint32) {
	bg, ok := group.(*BindGroup)
	if !ok || !e.encoder.isRecording || e.pipeline == nil {
		return
	}

	var pOffsets *uint32
	if len(offsets) > 0 {
		pOffsets = &offsets[0]
	}

	vkCmdBindDescriptorSets(
		e.encoder.device.cmds,
		e.encoder.cmdBuffer,
		vk.PipelineBindPointCompute,
		e.pipeline.layout,
		index,
		1,
		&bg.handle,
		uint32(len(offsets)),
		pOffsets,
	)
}

// Dispatch dispatches compute work.
func (e *ComputePassEncoder) Dispatch(x, y, z uint32) {
	if !e.encoder.isRecording {
		return
	}

	vkCmdDispatch(e.encoder.device.cmds, e.encoder.cmdBuffer, x, y, z)
}

// DispatchIndirect dispatches compute work with GPU-generated parameters.
func (e *ComputePassEncoder) DispatchIndirect(buffer hal.Buffer, offset uint64) {
	buf, ok := buffer.(*Buffer)
	if !ok || !e.encoder.isRecording {
		return
	}

	vkCmdDispatchIndirect(e.encoder.device.cmds, e.encoder.cmdBuffer, buf.handle, vk.DeviceSize(offset))
}

// --- Helper functions ---

// bufferUsageToAccessAndStage2 maps a buffer usage flag set to the
// Synchronization2 access/stage masks a barrier needs on either side of a
// transition.
func bufferUsageToAccessAndStage2(usage types.BufferUsage) (vk.AccessFlags2, vk.PipelineStageFlags2) {
	var access vk.AccessFlags2
	var stage vk.PipelineStageFlags2

	if usage&types.BufferUsageCopySrc != 0 {
		access |= vk.Access2TransferReadBit
		stage |= vk.PipelineStage2AllTransferBit
	}
	if usage&types.BufferUsageCopyDst != 0 {
		access |= vk.Access2TransferWriteBit
		stage |= vk.PipelineStage2AllTransferBit
	}
	if usage&types.BufferUsageVertex != 0 {
		access |= vk.Access2VertexAttributeReadBit
		stage |= vk.PipelineStage2VertexInputBit
	}
	if usage&types.BufferUsageIndex != 0 {
		access |= vk.Access2IndexReadBit
		stage |= vk.PipelineStage2VertexInputBit
	}
	if usage&types.BufferUsageUniform != 0 {
		access |= vk.Access2UniformReadBit
		stage |= vk.PipelineStage2VertexShaderBit | vk.PipelineStage2FragmentShaderBit
	}
	if usage&types.BufferUsageStorage != 0 {
		access |= vk.Access2ShaderReadBit | vk.Access2ShaderWriteBit
		stage |= vk.PipelineStage2VertexShaderBit | vk.PipelineStage2FragmentShaderBit | vk.PipelineStage2ComputeShaderBit
	}
	if usage&types.BufferUsageIndirect != 0 {
		access |= vk.Access2IndirectCommandReadBit
		stage |= vk.PipelineStage2DrawIndirectBit
	}

	if stage == 0 {
		stage = vk.PipelineStage2TopOfPipeBit
	}

	return access, stage
}

// textureUsageToAccessStageLayout2 maps a texture usage flag set to the
// Synchronization2 access/stage masks and the VkImageLayout a transition
// into that usage requires.
func textureUsageToAccessStageLayout2(usage types.TextureUsage) (vk.AccessFlags2, vk.PipelineStageFlags2, vk.ImageLayout) {
	var access vk.AccessFlags2
	var stage vk.PipelineStageFlags2
	layout := vk.ImageLayoutGeneral

	if usage&types.TextureUsageCopySrc != 0 {
		access |= vk.Access2TransferReadBit
		stage |= vk.PipelineStage2AllTransferBit
		layout = vk.ImageLayoutTransferSrcOptimal
	}
	if usage&types.TextureUsageCopyDst != 0 {
		access |= vk.Access2TransferWriteBit
		stage |= vk.PipelineStage2AllTransferBit
		layout = vk.ImageLayoutTransferDstOptimal
	}
	if usage&types.TextureUsageTextureBinding != 0 {
		access |= vk.Access2ShaderReadBit
		stage |= vk.PipelineStage2FragmentShaderBit
		layout = vk.ImageLayoutShaderReadOnlyOptimal
	}
	if usage&types.TextureUsageStorageBinding != 0 {
		access |= vk.Access2ShaderReadBit | vk.Access2ShaderWriteBit
		stage |= vk.PipelineStage2ComputeShaderBit
		layout = vk.ImageLayoutGeneral
	}
	if usage&types.TextureUsageRenderAttachment != 0 {
		access |= vk.Access2ColorAttachmentWriteBit | vk.Access2ColorAttachmentReadBit
		stage |= vk.PipelineStage2ColorAttachmentOutputBit
		layout = vk.ImageLayoutColorAttachmentOptimal
	}

	if stage == 0 {
		stage = vk.PipelineStage2TopOfPipeBit
	}

	return access, stage, layout
}

func textureAspectToVk(aspect types.TextureAspect) vk.ImageAspectFlags {
	switch aspect {
	case types.TextureAspectDepthOnly:
		return vk.ImageAspectFlags(vk.ImageAspectDepthBit)
	case types.TextureAspectStencilOnly:
		return vk.ImageAspectFlags(vk.ImageAspectStencilBit)
	default:
		return vk.ImageAspectFlags(vk.ImageAspectColorBit)
	}
}

func mipLevelCountOrRemaining(count uint32) uint32 {
	if count == 0 {
		return vk.RemainingMipLevels
	}
	return count
}

func arrayLayerCountOrRemaining(count uint32) uint32 {
	if count == 0 {
		return vk.RemainingArrayLayers
	}
	return count
}

func loadOpToVk(op types.LoadOp) vk.AttachmentLoadOp {
	switch op {
	case types.LoadOpClear:
		return vk.AttachmentLoadOpClear
	case types.LoadOpLoad:
		return vk.AttachmentLoadOpLoad
	default:
		return vk.AttachmentLoadOpDontCare
	}
}

func storeOpToVk(op types.StoreOp) vk.AttachmentStoreOp {
	switch op {
	case types.StoreOpStore:
		return vk.AttachmentStoreOpStore
	default:
		return vk.AttachmentStoreOpDontCare
	}
}

// --- Vulkan function wrappers ---

func vkBeginCommandBuffer(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, beginInfo *vk.CommandBufferBeginInfo) vk.Result {
	ret, _, _ := vk.Call(cmds.BeginCommandBuffer(),
		uintptr(cmdBuffer),
		uintptr(unsafe.Pointer(beginInfo)))
	return vk.Result(ret)
}

func vkEndCommandBuffer(cmds *vk.Commands, cmdBuffer vk.CommandBuffer) vk.Result {
	ret, _, _ := vk.Call(cmds.EndCommandBuffer(), uintptr(cmdBuffer))
	return vk.Result(ret)
}

func vkResetCommandPool(cmds *vk.Commands, device vk.Device, pool vk.CommandPool, flags vk.CommandPoolResetFlags) vk.Result {
	ret, _, _ := vk.Call(cmds.ResetCommandPool(),
		uintptr(device),
		uintptr(pool),
		uintptr(flags))
	return vk.Result(ret)
}

func vkCmdPipelineBarrier(cmds *vk.Commands, cmdBuffer vk.CommandBuffer,
	srcStageMask, dstStageMask vk.PipelineStageFlags,
	dependencyFlags vk.DependencyFlags,
	memoryBarrierCount uint32, pMemoryBarriers *vk.MemoryBarrier,
	bufferMemoryBarrierCount uint32, pBufferMemoryBarriers *vk.BufferMemoryBarrier,
	imageMemoryBarrierCount uint32, pImageMemoryBarriers *vk.ImageMemoryBarrier) {
	//nolint:errcheck // Vulkan void function
	vk.Call(cmds.CmdPipelineBarrier(),
		uintptr(cmdBuffer),
		uintptr(srcStageMask),
		uintptr(dstStageMask),
		uintptr(dependencyFlags),
		uintptr(memoryBarrierCount),
		uintptr(unsafe.Pointer(pMemoryBarriers)),
		uintptr(bufferMemoryBarrierCount),
		uintptr(unsafe.Pointer(pBufferMemoryBarriers)),
		uintptr(imageMemoryBarrierCount),
		uintptr(unsafe.Pointer(pImageMemoryBarriers)))
}

func vkCmdPipelineBarrier2(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, depInfo *vk.DependencyInfo) {
	//nolint:errcheck // Vulkan void function
	vk.Call(cmds.CmdPipelineBarrier2(),
		uintptr(cmdBuffer),
		uintptr(unsafe.Pointer(depInfo)))
}

func vkCmdFillBuffer(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, buffer vk.Buffer, offset, size vk.DeviceSize, data uint32) {
	//nolint:errcheck // Vulkan void function
	vk.Call(cmds.CmdFillBuffer(),
		uintptr(cmdBuffer),
		uintptr(buffer),
		uintptr(offset),
		uintptr(size),
		uintptr(data))
}

func vkCmdCopyBuffer(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, src, dst vk.Buffer, regionCount uint32, pRegions *vk.BufferCopy) {
	//nolint:errcheck // Vulkan void function
	vk.Call(cmds.CmdCopyBuffer(),
		uintptr(cmdBuffer),
		uintptr(src),
		uintptr(dst),
		uintptr(regionCount),
		uintptr(unsafe.Pointer(pRegions)))
}

func vkCmdCopyBufferToImage(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, src vk.Buffer, dst vk.Image, layout vk.ImageLayout, regionCount uint32, pRegions *vk.BufferImageCopy) {
	//nolint:errcheck // Vulkan void function
	vk.Call(cmds.CmdCopyBufferToImage(),
		uintptr(cmdBuffer),
		uintptr(src),
		uintptr(dst),
		uintptr(layout),
		uintptr(regionCount),
		uintptr(unsafe.Pointer(pRegions)))
}

func vkCmdCopyImageToBuffer(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, src vk.Image, layout vk.ImageLayout, dst vk.Buffer, regionCount uint32, pRegions *vk.BufferImageCopy) {
	//nolint:errcheck // Vulkan void function
	vk.Call(cmds.CmdCopyImageToBuffer(),
		uintptr(cmdBuffer),
		uintptr(src),
		uintptr(layout),
		uintptr(dst),
		uintptr(regionCount),
		uintptr(unsafe.Pointer(pRegions)))
}

func vkCmdCopyImage(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, src vk.Image, srcLayout vk.ImageLayout, dst vk.Image, dstLayout vk.ImageLayout, regionCount uint32, pRegions *vk.ImageCopy) {
	//nolint:errcheck // Vulkan void function
	vk.Call(cmds.CmdCopyImage(),
		uintptr(cmdBuffer),
		uintptr(src),
		uintptr(srcLayout),
		uintptr(dst),
		uintptr(dstLayout),
		uintptr(regionCount),
		uintptr(unsafe.Pointer(pRegions)))
}

func vkCmdBeginRendering(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, renderingInfo *vk.RenderingInfo) {
	//nolint:errcheck // Vulkan void function
	vk.Call(cmds.CmdBeginRendering(),
		uintptr(cmdBuffer),
		uintptr(unsafe.Pointer(renderingInfo)))
}

func vkCmdEndRendering(cmds *vk.Commands, cmdBuffer vk.CommandBuffer) {
	//nolint:errcheck // Vulkan void function
	vk.Call(cmds.CmdEndRendering(), uintptr(cmdBuffer))
}

func vkCmdBindPipeline(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, bindPoint vk.PipelineBindPoint, pipeline vk.Pipeline) {
	//nolint:errcheck // Vulkan void function
	vk.Call(cmds.CmdBindPipeline(),
		uintptr(cmdBuffer),
		uintptr(bindPoint),
		uintptr(pipeline))
}

func vkCmdBindDescriptorSets(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, bindPoint vk.PipelineBindPoint, layout vk.PipelineLayout, firstSet uint32, setCount uint32, pSets *vk.DescriptorSet, dynamicOffsetCount uint32, pDynamicOffsets *uint32) {
	//nolint:errcheck // Vulkan void function
	vk.Call(cmds.CmdBindDescriptorSets(),
		uintptr(cmdBuffer),
		uintptr(bindPoint),
		uintptr(layout),
		uintptr(firstSet),
		uintptr(setCount),
		uintptr(unsafe.Pointer(pSets)),
		uintptr(dynamicOffsetCount),
		uintptr(unsafe.Pointer(pDynamicOffsets)))
}

func vkCmdBindVertexBuffers(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, firstBinding, bindingCount uint32, pBuffers *vk.Buffer, pOffsets *vk.DeviceSize) {
	//nolint:errcheck // Vulkan void function
	vk.Call(cmds.CmdBindVertexBuffers(),
		uintptr(cmdBuffer),
		uintptr(firstBinding),
		uintptr(bindingCount),
		uintptr(unsafe.Pointer(pBuffers)),
		uintptr(unsafe.Pointer(pOffsets)))
}

func vkCmdBindIndexBuffer(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, buffer vk.Buffer, offset vk.DeviceSize, indexType vk.IndexType) {
	//nolint:errcheck // Vulkan void function
	vk.Call(cmds.CmdBindIndexBuffer(),
		uintptr(cmdBuffer),
		uintptr(buffer),
		uintptr(offset),
		uintptr(indexType))
}

func vkCmdSetViewport(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, firstViewport, viewportCount uint32, pViewports *vk.Viewport) {
	//nolint:errcheck // Vulkan void function
	vk.Call(cmds.CmdSetViewport(),
		uintptr(cmdBuffer),
		uintptr(firstViewport),
		uintptr(viewportCount),
		uintptr(unsafe.Pointer(pViewports)))
}

func vkCmdSetScissor(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, firstScissor, scissorCount uint32, pScissors *vk.Rect2D) {
	//nolint:errcheck // Vulkan void function
	vk.Call(cmds.CmdSetScissor(),
		uintptr(cmdBuffer),
		uintptr(firstScissor),
		uintptr(scissorCount),
		uintptr(unsafe.Pointer(pScissors)))
}

func vkCmdSetBlendConstants(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, blendConstants *[4]float32) {
	//nolint:errcheck // Vulkan void function
	vk.Call(cmds.CmdSetBlendConstants(),
		uintptr(cmdBuffer),
		uintptr(unsafe.Pointer(blendConstants)))
}

func vkCmdSetStencilReference(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, faceMask vk.StencilFaceFlags, reference uint32) {
	//nolint:errcheck // Vulkan void function
	vk.Call(cmds.CmdSetStencilReference(),
		uintptr(cmdBuffer),
		uintptr(faceMask),
		uintptr(reference))
}

func vkCmdDraw(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	//nolint:errcheck // Vulkan void function
	vk.Call(cmds.CmdDraw(),
		uintptr(cmdBuffer),
		uintptr(vertexCount),
		uintptr(instanceCount),
		uintptr(firstVertex),
		uintptr(firstInstance))
}

func vkCmdDrawIndexed(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	//nolint:errcheck // Vulkan void function
	vk.Call(cmds.CmdDrawIndexed(),
		uintptr(cmdBuffer),
		uintptr(indexCount),
		uintptr(instanceCount),
		uintptr(firstIndex),
		uintptr(vertexOffset),
		uintptr(firstInstance))
}

func vkCmdDrawIndirect(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, buffer vk.Buffer, offset vk.DeviceSize, drawCount, stride uint32) {
	//nolint:errcheck // Vulkan void function
	vk.Call(cmds.CmdDrawIndirect(),
		uintptr(cmdBuffer),
		uintptr(buffer),
		uintptr(offset),
		uintptr(drawCount),
		uintptr(stride))
}

func vkCmdDrawIndexedIndirect(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, buffer vk.Buffer, offset vk.DeviceSize, drawCount, stride uint32) {
	//nolint:errcheck // Vulkan void function
	vk.Call(cmds.CmdDrawIndexedIndirect(),
		uintptr(cmdBuffer),
		uintptr(buffer),
		uintptr(offset),
		uintptr(drawCount),
		uintptr(stride))
}

func vkCmdDispatch(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, x, y, z uint32) {
	//nolint:errcheck // Vulkan void function
	vk.Call(cmds.CmdDispatch(),
		uintptr(cmdBuffer),
		uintptr(x),
		uintptr(y),
		uintptr(z))
}

func vkCmdDispatchIndirect(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, buffer vk.Buffer, offset vk.DeviceSize) {
	//nolint:errcheck // Vulkan void function
	vk.Call(cmds.CmdDispatchIndirect(),
		uintptr(cmdBuffer),
		uintptr(buffer),
		uintptr(offset))
}
