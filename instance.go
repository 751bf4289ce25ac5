package rhi

import (
	"fmt"
	"sync"

	"github.com/renderhi/rhi/core"
	"github.com/renderhi/rhi/hal"
	"github.com/renderhi/rhi/types"
)

// InstanceDescriptor configures instance creation.
type InstanceDescriptor struct {
	Backends Backends
}

// Instance is the entry point for GPU operations.
//
// Instance methods are safe for concurrent use, except Release() which
// must not be called concurrently with other methods.
type Instance struct {
	core     *core.Instance
	released bool
}

// initCell is the process-scope single-entry guard for CreateInstance
// (spec 4.1: RHI::init is a single-entry module operation). Only one
// Instance may be live at a time; CreateInstance called while one is
// already live returns hal.ErrAlreadyInitialized, and Release frees the
// cell so a subsequent CreateInstance succeeds again (spec 8, scenario 1).
var (
	initMu   sync.Mutex
	initLive bool
)

// CreateInstance creates a new GPU instance.
// If desc is nil, all available backends are used.
//
// CreateInstance is single-entry at process scope: calling it again
// before the returned Instance is Released returns
// hal.ErrAlreadyInitialized.
func CreateInstance(desc *InstanceDescriptor) (*Instance, error) {
	initMu.Lock()
	if initLive {
		initMu.Unlock()
		return nil, hal.ErrAlreadyInitialized
	}
	initLive = true
	initMu.Unlock()

	var gpuDesc *types.InstanceDescriptor
	if desc != nil {
		d := types.DefaultInstanceDescriptor()
		d.Backends = desc.Backends
		gpuDesc = &d
	}

	coreInstance := core.NewInstance(gpuDesc)

	return &Instance{core: coreInstance}, nil
}

// RequestAdapter requests a GPU adapter matching the options.
// If opts is nil, the best available adapter is returned.
func (i *Instance) RequestAdapter(opts *RequestAdapterOptions) (*Adapter, error) {
	if i.released {
		return nil, ErrReleased
	}

	adapterID, err := i.core.RequestAdapter(opts)
	if err != nil {
		return nil, err
	}

	info, err := core.GetAdapterInfo(adapterID)
	if err != nil {
		return nil, fmt.Errorf("wgpu: failed to get adapter info: %w", err)
	}
	features, err := core.GetAdapterFeatures(adapterID)
	if err != nil {
		return nil, fmt.Errorf("wgpu: failed to get adapter features: %w", err)
	}
	limits, err := core.GetAdapterLimits(adapterID)
	if err != nil {
		return nil, fmt.Errorf("wgpu: failed to get adapter limits: %w", err)
	}

	hub := core.GetGlobal().Hub()
	coreAdapter, err := hub.GetAdapter(adapterID)
	if err != nil {
		return nil, fmt.Errorf("wgpu: failed to get adapter: %w", err)
	}

	return &Adapter{
		id:       adapterID,
		core:     &coreAdapter,
		info:     info,
		features: features,
		limits:   limits,
		instance: i,
	}, nil
}

// Release releases the instance and all associated resources, and frees
// the single-entry init cell so a subsequent CreateInstance can succeed.
func (i *Instance) Release() {
	if i.released {
		return
	}
	i.released = true
	i.core.Destroy()

	initMu.Lock()
	initLive = false
	initMu.Unlock()
}
