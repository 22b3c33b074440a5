package loader

import (
	"io"
	"math"
	"path/filepath"

	"github.com/DonReek/obj-import/model"
)

// objLoaderBackend is the Wavefront OBJ implementation of the loaderBackend
// interface. It runs the two-stage pipeline: the parser extracts raw attribute
// arrays and face index triples, then the indexer deduplicates attribute
// combinations and fan-triangulates the polygons into the final buffers.
type objLoaderBackend struct{}

var _ loaderBackend = &objLoaderBackend{}

// newOBJLoaderBackend creates a new OBJ loader backend.
//
// Returns:
//   - loaderBackend: the OBJ backend
func newOBJLoaderBackend() loaderBackend {
	return &objLoaderBackend{}
}

func (b *objLoaderBackend) Load(path string) (*model.MeshData, error) {
	parser := newOBJParser()
	if err := parser.Parse(path); err != nil {
		return nil, err
	}
	return b.index(parser.Data(), filepath.Base(path))
}

func (b *objLoaderBackend) LoadReader(r io.Reader, name string) (*model.MeshData, error) {
	parser := newOBJParser()
	if err := parser.ParseReader(r); err != nil {
		return nil, err
	}
	return b.index(parser.Data(), name)
}

// index converts parsed raw data into a MeshData. Attribute presence is
// derived from the raw array lengths: a file with no vt lines produces a
// vertex buffer without texture coordinate slots, regardless of what the face
// tokens declared.
func (b *objLoaderBackend) index(data *objData, name string) (*model.MeshData, error) {
	hasTexCoords := len(data.texCoords) > 0
	hasNormals := len(data.normals) > 0

	indexer := newOBJIndexer(data, hasTexCoords, hasNormals)
	indices, vertexData, err := indexer.IndexData()
	if err != nil {
		return nil, err
	}

	mesh := &model.MeshData{
		Name:         name,
		VertexData:   vertexData,
		Indices:      indices,
		HasTexCoords: hasTexCoords,
		HasNormals:   hasNormals,
	}
	mesh.BoundingMin, mesh.BoundingMax = calculateBoundingBox(vertexData, mesh.Stride())
	return mesh, nil
}

// calculateBoundingBox computes the axis-aligned bounding box over the
// position slots of an interleaved vertex buffer.
func calculateBoundingBox(vertexData []float32, stride int) ([3]float32, [3]float32) {
	if len(vertexData) == 0 {
		return [3]float32{}, [3]float32{}
	}

	bmin := [3]float32{
		float32(math.MaxFloat32),
		float32(math.MaxFloat32),
		float32(math.MaxFloat32),
	}
	bmax := [3]float32{
		-float32(math.MaxFloat32),
		-float32(math.MaxFloat32),
		-float32(math.MaxFloat32),
	}

	for i := 0; i+2 < len(vertexData); i += stride {
		for j := 0; j < 3; j++ {
			if vertexData[i+j] < bmin[j] {
				bmin[j] = vertexData[i+j]
			}
			if vertexData[i+j] > bmax[j] {
				bmax[j] = vertexData[i+j]
			}
		}
	}

	return bmin, bmax
}
