package rhi

import (
	"fmt"

	"github.com/renderhi/rhi/hal"
	"github.com/renderhi/rhi/types"
)

// Blas is a bottom-level acceleration structure.
// Ray tracing is an optional capability; see Device.CreateBlas.
type Blas struct {
	hal      hal.Blas
	device   *Device
	released bool
}

// Release destroys the acceleration structure.
func (b *Blas) Release() {
	if b.released {
		return
	}
	b.released = true
	if rt := b.device.rayTracingDevice(); rt != nil {
		rt.DestroyBlas(b.hal)
	}
}

// Tlas is a top-level acceleration structure referencing Blas instances.
type Tlas struct {
	hal      hal.Tlas
	device   *Device
	released bool
}

// Release destroys the acceleration structure.
func (t *Tlas) Release() {
	if t.released {
		return
	}
	t.released = true
	if rt := t.device.rayTracingDevice(); rt != nil {
		rt.DestroyTlas(t.hal)
	}
}

// RayTracingPipeline is a configured ray tracing pipeline.
// Declared so callers compile against a stable API (spec 4.8); concrete
// backends may return ErrNotImplemented until ray tracing is wired.
type RayTracingPipeline struct {
	hal      hal.RayTracingPipeline
	device   *Device
	released bool
}

// Release destroys the ray tracing pipeline.
func (p *RayTracingPipeline) Release() {
	if p.released {
		return
	}
	p.released = true
	if rt := p.device.rayTracingDevice(); rt != nil {
		rt.DestroyRayTracingPipeline(p.hal)
	}
}

// rayTracingDevice type-asserts the active HAL device against the optional
// ray tracing capability. A backend that has not wired ray tracing (every
// backend shipped with this module) simply fails the assertion.
func (d *Device) rayTracingDevice() hal.RayTracingDevice {
	halDevice := d.halDevice()
	if halDevice == nil {
		return nil
	}
	rt, _ := halDevice.(hal.RayTracingDevice)
	return rt
}

// CreateBlas builds a bottom-level acceleration structure.
// Returns ErrNotImplemented if the active backend has not wired ray tracing.
func (d *Device) CreateBlas(desc *types.BlasDescriptor) (*Blas, error) {
	if d.released {
		return nil, ErrReleased
	}
	if !d.core.Features.Contains(types.FeatureRayTracing) {
		return nil, fmt.Errorf("wgpu: CreateBlas requires the RayTracing feature: %w", hal.ErrNotImplemented)
	}

	rt := d.rayTracingDevice()
	if rt == nil {
		return nil, hal.ErrNotImplemented
	}

	halBlas, err := rt.CreateBlas(desc)
	if err != nil {
		return nil, fmt.Errorf("wgpu: failed to create blas: %w", err)
	}

	return &Blas{hal: halBlas, device: d}, nil
}

// CreateTlas builds a top-level acceleration structure.
// Returns ErrNotImplemented if the active backend has not wired ray tracing.
func (d *Device) CreateTlas(desc *types.TlasDescriptor) (*Tlas, error) {
	if d.released {
		return nil, ErrReleased
	}
	if !d.core.Features.Contains(types.FeatureRayTracing) {
		return nil, fmt.Errorf("wgpu: CreateTlas requires the RayTracing feature: %w", hal.ErrNotImplemented)
	}

	rt := d.rayTracingDevice()
	if rt == nil {
		return nil, hal.ErrNotImplemented
	}

	halTlas, err := rt.CreateTlas(desc)
	if err != nil {
		return nil, fmt.Errorf("wgpu: failed to create tlas: %w", err)
	}

	return &Tlas{hal: halTlas, device: d}, nil
}

// CreateRayTracingPipeline creates a ray tracing pipeline.
// Returns ErrNotImplemented if the active backend has not wired ray tracing.
func (d *Device) CreateRayTracingPipeline(desc *types.RayTracingPipelineDescriptor) (*RayTracingPipeline, error) {
	if d.released {
		return nil, ErrReleased
	}
	if !d.core.Features.Contains(types.FeatureRayTracing) {
		return nil, fmt.Errorf("wgpu: CreateRayTracingPipeline requires the RayTracing feature: %w", hal.ErrNotImplemented)
	}

	rt := d.rayTracingDevice()
	if rt == nil {
		return nil, hal.ErrNotImplemented
	}

	halPipeline, err := rt.CreateRayTracingPipeline(desc)
	if err != nil {
		return nil, fmt.Errorf("wgpu: failed to create ray tracing pipeline: %w", err)
	}

	return &RayTracingPipeline{hal: halPipeline, device: d}, nil
}
