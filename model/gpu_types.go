package model

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// Shader locations for the interleaved vertex attributes. Locations stay fixed
// regardless of which optional attributes are present, so the same shader
// source can declare all three and pipelines bind only the ones in the layout.
const (
	locationPosition = 0
	locationTexCoord = 1
	locationNormal   = 2
)

// VertexBufferLayout builds the wgpu vertex buffer layout describing a
// MeshData vertex buffer with the given attribute presence flags. This is how
// the per-vertex stride and field offsets reach a render pipeline, since the
// interleaved buffer does not carry its own layout.
//
// Attribute order matches the buffer: position (Float32x3, location 0), then
// texture coordinate (Float32x2, location 1) when hasTexCoords, then normal
// (Float32x3, location 2) when hasNormals.
//
// Parameters:
//   - hasTexCoords: true when each vertex carries a texture coordinate
//   - hasNormals: true when each vertex carries a normal
//
// Returns:
//   - wgpu.VertexBufferLayout: the layout for a pipeline's vertex state
func VertexBufferLayout(hasTexCoords, hasNormals bool) wgpu.VertexBufferLayout {
	var attrs []wgpu.VertexAttribute
	var offset uint64

	attrs = append(attrs, wgpu.VertexAttribute{
		Format:         wgpu.VertexFormatFloat32x3,
		Offset:         offset,
		ShaderLocation: locationPosition,
	})
	offset += 12

	if hasTexCoords {
		attrs = append(attrs, wgpu.VertexAttribute{
			Format:         wgpu.VertexFormatFloat32x2,
			Offset:         offset,
			ShaderLocation: locationTexCoord,
		})
		offset += 8
	}
	if hasNormals {
		attrs = append(attrs, wgpu.VertexAttribute{
			Format:         wgpu.VertexFormatFloat32x3,
			Offset:         offset,
			ShaderLocation: locationNormal,
		})
		offset += 12
	}

	return wgpu.VertexBufferLayout{
		ArrayStride: offset,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes:  attrs,
	}
}

// Layout returns the vertex buffer layout for this mesh's attribute flags.
//
// Returns:
//   - wgpu.VertexBufferLayout: the layout describing VertexData
func (m *MeshData) Layout() wgpu.VertexBufferLayout {
	return VertexBufferLayout(m.HasTexCoords, m.HasNormals)
}
