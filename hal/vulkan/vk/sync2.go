// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

// Vulkan 1.3 core Synchronization2 (promoted from VK_KHR_synchronization2).
// PipelineStageFlagBits2 and AccessFlagBits2 are 64-bit supersets of the
// legacy 32-bit flag types: every Vulkan-1.0-era bit keeps the same numeric
// position, so the constants below read as plain widenings of their
// PipelineStageFlags/AccessFlags counterparts in types_gen.go.

type PipelineStageFlags2 uint64

const (
	PipelineStage2TopOfPipeBit             PipelineStageFlags2 = 0x00000001
	PipelineStage2DrawIndirectBit          PipelineStageFlags2 = 0x00000002
	PipelineStage2VertexInputBit           PipelineStageFlags2 = 0x00000004
	PipelineStage2VertexShaderBit          PipelineStageFlags2 = 0x00000008
	PipelineStage2FragmentShaderBit        PipelineStageFlags2 = 0x00000080
	PipelineStage2ColorAttachmentOutputBit PipelineStageFlags2 = 0x00000400
	PipelineStage2ComputeShaderBit         PipelineStageFlags2 = 0x00000800
	PipelineStage2AllTransferBit           PipelineStageFlags2 = 0x00001000
	PipelineStage2BottomOfPipeBit          PipelineStageFlags2 = 0x00002000
	PipelineStage2AllCommandsBit           PipelineStageFlags2 = 0x00010000
	PipelineStage2CopyBit                  PipelineStageFlags2 = 0x100000000
)

type AccessFlags2 uint64

const (
	Access2IndirectCommandReadBit         AccessFlags2 = 0x00000001
	Access2IndexReadBit                   AccessFlags2 = 0x00000002
	Access2VertexAttributeReadBit         AccessFlags2 = 0x00000004
	Access2UniformReadBit                 AccessFlags2 = 0x00000008
	Access2ShaderReadBit                  AccessFlags2 = 0x00000020
	Access2ShaderWriteBit                 AccessFlags2 = 0x00000040
	Access2ColorAttachmentReadBit         AccessFlags2 = 0x00000080
	Access2ColorAttachmentWriteBit        AccessFlags2 = 0x00000100
	Access2DepthStencilAttachmentReadBit  AccessFlags2 = 0x00000200
	Access2DepthStencilAttachmentWriteBit AccessFlags2 = 0x00000400
	Access2TransferReadBit                AccessFlags2 = 0x00000800
	Access2TransferWriteBit               AccessFlags2 = 0x00001000
	Access2HostReadBit                    AccessFlags2 = 0x00002000
	Access2HostWriteBit                   AccessFlags2 = 0x00004000
	Access2MemoryReadBit                  AccessFlags2 = 0x00008000
	Access2MemoryWriteBit                 AccessFlags2 = 0x00010000
)

const (
	StructureTypeMemoryBarrier2       StructureType = 1000314000
	StructureTypeBufferMemoryBarrier2 StructureType = 1000314001
	StructureTypeImageMemoryBarrier2  StructureType = 1000314002
	StructureTypeDependencyInfo       StructureType = 1000314003
)

// MemoryBarrier2 is the Synchronization2 global memory barrier.
type MemoryBarrier2 struct {
	SType         StructureType
	PNext         *uintptr
	SrcStageMask  PipelineStageFlags2
	SrcAccessMask AccessFlags2
	DstStageMask  PipelineStageFlags2
	DstAccessMask AccessFlags2
}

// BufferMemoryBarrier2 is the Synchronization2 buffer barrier: unlike its
// legacy counterpart it carries its own src/dst stage masks, so a single
// VkDependencyInfo can express a distinct wait/signal stage per resource.
type BufferMemoryBarrier2 struct {
	SType               StructureType
	PNext               *uintptr
	SrcStageMask        PipelineStageFlags2
	SrcAccessMask       AccessFlags2
	DstStageMask        PipelineStageFlags2
	DstAccessMask       AccessFlags2
	SrcQueueFamilyIndex uint32
	DstQueueFamilyIndex uint32
	Buffer              Buffer
	Offset              DeviceSize
	Size                DeviceSize
}

// ImageMemoryBarrier2 is the Synchronization2 image barrier.
type ImageMemoryBarrier2 struct {
	SType               StructureType
	PNext               *uintptr
	SrcStageMask        PipelineStageFlags2
	SrcAccessMask       AccessFlags2
	DstStageMask        PipelineStageFlags2
	DstAccessMask       AccessFlags2
	OldLayout           ImageLayout
	NewLayout           ImageLayout
	SrcQueueFamilyIndex uint32
	DstQueueFamilyIndex uint32
	Image               Image
	SubresourceRange    ImageSubresourceRange
}

// DependencyInfo bundles every barrier kind for a single
// vkCmdPipelineBarrier2 call, replacing the separate stage-mask parameters
// and three barrier-array arguments of the legacy vkCmdPipelineBarrier.
type DependencyInfo struct {
	SType                    StructureType
	PNext                    *uintptr
	DependencyFlags          DependencyFlags
	MemoryBarrierCount       uint32
	PMemoryBarriers          *MemoryBarrier2
	BufferMemoryBarrierCount uint32
	PBufferMemoryBarriers    *BufferMemoryBarrier2
	ImageMemoryBarrierCount  uint32
	PImageMemoryBarriers     *ImageMemoryBarrier2
}
