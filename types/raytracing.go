package types

// BVHFlag controls acceleration structure build behavior.
// Optional capability: RAYTRACING feature must be requested before these
// descriptors are meaningful to a backend.
type BVHFlag uint32

const (
	// BVHFlagAllowUpdate permits an in-place refit instead of a full rebuild.
	BVHFlagAllowUpdate BVHFlag = 1 << iota
	// BVHFlagAllowCompaction permits querying a compacted size after build.
	BVHFlagAllowCompaction
	// BVHFlagPreferFastTrace favors trace performance over build time.
	BVHFlagPreferFastTrace
	// BVHFlagPreferFastBuild favors build time over trace performance.
	BVHFlagPreferFastBuild
	// BVHFlagLowMemory minimizes scratch and result memory at the cost of
	// build/trace performance.
	BVHFlagLowMemory
)

// Contains reports whether the flag set contains bit.
func (f BVHFlag) Contains(bit BVHFlag) bool { return f&bit == bit }

// BlasGeometryKind discriminates the geometry payload of a BLAS entry.
type BlasGeometryKind uint8

const (
	// BlasGeometryTriangles indicates an indexed/non-indexed triangle mesh.
	BlasGeometryTriangles BlasGeometryKind = iota
	// BlasGeometryAABBs indicates axis-aligned bounding box (procedural) geometry.
	BlasGeometryAABBs
)

// BlasTriangleGeometry describes a triangle mesh entry in a BLAS.
type BlasTriangleGeometry struct {
	VertexBuffer BufferHandle
	VertexFormat VertexFormat
	VertexCount  uint32
	VertexStride uint64
	IndexBuffer  BufferHandle
	IndexFormat  IndexFormat
	IndexCount   uint32
	Opaque       bool
}

// BlasAABBGeometry describes a procedural AABB entry in a BLAS.
type BlasAABBGeometry struct {
	AABBBuffer BufferHandle
	Count      uint32
	Stride     uint64
	Opaque     bool
}

// BlasGeometry is one entry of a bottom-level acceleration structure build.
type BlasGeometry struct {
	Kind      BlasGeometryKind
	Triangles *BlasTriangleGeometry
	AABBs     *BlasAABBGeometry
}

// BlasDescriptor describes a bottom-level acceleration structure build.
type BlasDescriptor struct {
	Label    string
	Flags    BVHFlag
	Geometry []BlasGeometry
}

// TlasInstance is one BLAS placement inside a top-level build.
type TlasInstance struct {
	Blas         BlasHandle
	Transform    [12]float32 // row-major 3x4 affine transform
	InstanceMask uint8
	ShaderOffset uint32
}

// TlasDescriptor describes a top-level acceleration structure build.
type TlasDescriptor struct {
	Label     string
	Flags     BVHFlag
	Instances []TlasInstance
}

// RayTracingShaderGroupKind discriminates a shader-binding-table group.
type RayTracingShaderGroupKind uint8

const (
	// RayTracingShaderGroupGeneral covers raygen, miss, and callable stages.
	RayTracingShaderGroupGeneral RayTracingShaderGroupKind = iota
	// RayTracingShaderGroupTriangleHit covers closest-hit/any-hit over triangles.
	RayTracingShaderGroupTriangleHit
	// RayTracingShaderGroupProceduralHit covers intersection/any-hit/closest-hit
	// over procedural (AABB) geometry.
	RayTracingShaderGroupProceduralHit
)

// RayTracingShaderGroup binds shader module entry points to a hit-group slot.
type RayTracingShaderGroup struct {
	Kind         RayTracingShaderGroupKind
	General      *ProgrammableStage
	ClosestHit   *ProgrammableStage
	AnyHit       *ProgrammableStage
	Intersection *ProgrammableStage
}

// RayTracingPipelineDescriptor describes a ray tracing pipeline.
// Declared so callers compile against a stable API; concrete backends may
// return NotImplemented until ray tracing is wired.
type RayTracingPipelineDescriptor struct {
	Label             string
	Layout            PipelineLayoutHandle
	Groups            []RayTracingShaderGroup
	MaxRecursionDepth uint32
}

// Handle types for ray tracing objects.
type (
	BlasHandle               uint64
	TlasHandle               uint64
	RayTracingPipelineHandle uint64
)
