package model

import (
	"github.com/DonReek/obj-import/common"
)

// MeshData is the GPU-ready result of importing a model file: a deduplicated,
// interleaved vertex attribute buffer and a triangle index buffer.
//
// The vertex buffer layout is position (3 floats), then texture coordinate
// (2 floats, only when HasTexCoords), then normal (3 floats, only when
// HasNormals). The layout is not embedded in the buffer itself; consumers must
// read the two flags (or use VertexBufferLayout) to interpret it.
type MeshData struct {
	// Name is the mesh identifier, typically the source file name or the cache
	// key it was loaded under.
	Name string

	// VertexData is the interleaved vertex attribute buffer. Each vertex
	// occupies Stride() consecutive floats.
	VertexData []float32

	// Indices are the triangle indices into VertexData (counted in vertices,
	// not floats). Every three entries form one triangle.
	Indices []uint32

	// HasTexCoords reports whether each vertex carries a 2-float texture
	// coordinate after its position.
	HasTexCoords bool

	// HasNormals reports whether each vertex carries a 3-float normal at the
	// end of its record.
	HasNormals bool

	// BoundingMin is the minimum corner of the axis-aligned bounding box.
	BoundingMin [3]float32

	// BoundingMax is the maximum corner of the axis-aligned bounding box.
	BoundingMax [3]float32
}

// Stride returns the number of floats occupied by one vertex record.
//
// Returns:
//   - int: 3 for position, +2 when texture coordinates are present, +3 when normals are present
func (m *MeshData) Stride() int {
	stride := 3
	if m.HasTexCoords {
		stride += 2
	}
	if m.HasNormals {
		stride += 3
	}
	return stride
}

// VertexCount returns the number of vertex records in the vertex buffer.
//
// Returns:
//   - int: the vertex count (len(VertexData) / Stride())
func (m *MeshData) VertexCount() int {
	return len(m.VertexData) / m.Stride()
}

// VertexBytes returns a byte view of the vertex buffer suitable for GPU upload.
// The returned slice shares memory with VertexData.
//
// Returns:
//   - []byte: byte view of the interleaved vertex buffer
func (m *MeshData) VertexBytes() []byte {
	return common.SliceToBytes(m.VertexData)
}

// IndexBytes returns a byte view of the index buffer suitable for GPU upload.
// The returned slice shares memory with Indices.
//
// Returns:
//   - []byte: byte view of the triangle index buffer
func (m *MeshData) IndexBytes() []byte {
	return common.SliceToBytes(m.Indices)
}
