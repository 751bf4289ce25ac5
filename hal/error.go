package hal

import "errors"

// Common HAL sentinel errors.
var (
	// ErrBackendNotFound indicates the requested backend is not registered.
	ErrBackendNotFound = errors.New("hal: backend not found")
	// ErrDeviceOutOfMemory indicates the GPU has exhausted its memory.
	// This is unrecoverable - the application should reduce resource usage
	// or gracefully terminate.
	ErrDeviceOutOfMemory = errors.New("hal: device out of memory")

	// ErrDeviceLost indicates the GPU device has been lost.
	// This can happen due to:
	//   - GPU driver crash or reset
	//   - GPU hardware disconnection
	//   - Driver timeout (TDR on Windows)
	// The device cannot be recovered and must be recreated.
	ErrDeviceLost = errors.New("hal: device lost")

	// ErrSurfaceLost indicates the rendering surface has been destroyed.
	// This typically happens when the window is closed.
	// The surface cannot be recovered - create a new one if needed.
	ErrSurfaceLost = errors.New("hal: surface lost")

	// ErrSurfaceOutdated indicates the surface configuration is stale.
	// This happens when:
	//   - Window was resized
	//   - Display mode changed
	//   - Surface pixel format changed
	// Call Surface.Configure again with updated parameters.
	ErrSurfaceOutdated = errors.New("hal: surface outdated")

	// ErrTimeout indicates an operation timed out.
	// This is typically returned by Wait operations.
	ErrTimeout = errors.New("hal: timeout")

	// ErrZeroArea indicates that both surface width and height must be non-zero.
	// This error is returned by Surface.Configure when the window has zero area.
	// Wait to recreate the surface until the window has non-zero area.
	// This commonly happens when:
	//   - Window is minimized
	//   - Window is not yet fully visible (timing issue on macOS)
	//   - Invalid dimensions passed to Configure
	ErrZeroArea = errors.New("hal: surface width and height must be non-zero")

	// ErrDriverBug indicates the GPU driver returned an invalid or unexpected result
	// that violates the graphics API specification. This typically indicates a
	// driver bug rather than an application error.
	//
	// Known cases:
	//   - Intel Iris Xe: vkCreateGraphicsPipelines returns VK_SUCCESS but writes
	//     VK_NULL_HANDLE to pipeline output (Vulkan spec violation)
	//
	// The operation cannot be completed. Possible workarounds:
	//   - Update GPU driver to latest version
	//   - Use a different backend (e.g., DX12 instead of Vulkan)
	//   - Use software rendering backend
	//
	// See: https://github.com/renderhi/rhi/issues/24
	ErrDriverBug = errors.New("hal: driver bug detected (API spec violation)")

	// ErrNotImplemented indicates an optional operation (ray tracing,
	// query-set resolve, occlusion queries, ...) that a backend has
	// declared in its surface but not wired up.
	ErrNotImplemented = errors.New("hal: not implemented on this backend")

	// ErrAlreadyInitialized is returned by the process-scope single-entry
	// init cell (spec 4.1) when a second init is attempted before the
	// first is torn down.
	ErrAlreadyInitialized = errors.New("hal: already initialized")

	// ErrNotInitialized is returned when an operation that requires the
	// single-entry cell to be live is attempted before init or after
	// destroy.
	ErrNotInitialized = errors.New("hal: not initialized")

	// ErrSwapchainSuboptimal indicates the swapchain can still present
	// the current image but no longer matches the surface exactly
	// (e.g. after a resize). Present succeeds; callers should rebuild
	// the swapchain before the next acquire.
	ErrSwapchainSuboptimal = errors.New("hal: swapchain suboptimal")

	// ErrSwapchainOutOfDate indicates the swapchain can no longer be
	// used to present at all and must be rebuilt before the next
	// acquire.
	ErrSwapchainOutOfDate = errors.New("hal: swapchain out of date")
)

// FeatureUnsupportedError reports that a device or adapter does not
// support a named feature flag (spec 7: FeatureUnsupported(name)).
type FeatureUnsupportedError struct {
	Name string
}

func (e *FeatureUnsupportedError) Error() string {
	return "hal: feature unsupported: " + e.Name
}

func (e *FeatureUnsupportedError) Is(target error) bool {
	_, ok := target.(*FeatureUnsupportedError)
	return ok
}

// NewFeatureUnsupported builds a FeatureUnsupportedError for the named
// feature.
func NewFeatureUnsupported(name string) error {
	return &FeatureUnsupportedError{Name: name}
}

// DescriptorInvalidError reports that a descriptor field failed
// validation (spec 7: DescriptorInvalid(field, reason)).
type DescriptorInvalidError struct {
	Field  string
	Reason string
}

func (e *DescriptorInvalidError) Error() string {
	return "hal: invalid descriptor field " + e.Field + ": " + e.Reason
}

func (e *DescriptorInvalidError) Is(target error) bool {
	_, ok := target.(*DescriptorInvalidError)
	return ok
}

// NewDescriptorInvalid builds a DescriptorInvalidError for the named
// field.
func NewDescriptorInvalid(field, reason string) error {
	return &DescriptorInvalidError{Field: field, Reason: reason}
}

// ObjectInInvalidStateError reports that an object of the named kind
// was used outside the state its operation requires (spec 7:
// ObjectInInvalidState(kind)) — e.g. recording into a command encoder
// after it has already been finished.
type ObjectInInvalidStateError struct {
	Kind string
}

func (e *ObjectInInvalidStateError) Error() string {
	return "hal: object in invalid state: " + e.Kind
}

func (e *ObjectInInvalidStateError) Is(target error) bool {
	_, ok := target.(*ObjectInInvalidStateError)
	return ok
}

// NewObjectInInvalidState builds an ObjectInInvalidStateError for the
// named object kind.
func NewObjectInInvalidState(kind string) error {
	return &ObjectInInvalidStateError{Kind: kind}
}

// HandleInvalidError reports that a handle of the named kind was
// stale, zero, or otherwise could not be resolved (spec 7:
// HandleInvalid(kind)).
type HandleInvalidError struct {
	Kind string
}

func (e *HandleInvalidError) Error() string {
	return "hal: invalid handle: " + e.Kind
}

func (e *HandleInvalidError) Is(target error) bool {
	_, ok := target.(*HandleInvalidError)
	return ok
}

// NewHandleInvalid builds a HandleInvalidError for the named handle
// kind.
func NewHandleInvalid(kind string) error {
	return &HandleInvalidError{Kind: kind}
}

// BackendUnavailableError reports that a named backend could not be
// loaded or initialized (spec 7: BackendUnavailable(backend)) — e.g.
// the Vulkan loader could not find libvulkan.so/vulkan-1.dll.
type BackendUnavailableError struct {
	Backend string
}

func (e *BackendUnavailableError) Error() string {
	return "hal: backend unavailable: " + e.Backend
}

func (e *BackendUnavailableError) Is(target error) bool {
	_, ok := target.(*BackendUnavailableError)
	return ok
}

// NewBackendUnavailable builds a BackendUnavailableError for the named
// backend.
func NewBackendUnavailable(backend string) error {
	return &BackendUnavailableError{Backend: backend}
}
