package loader

import (
	"fmt"

	"github.com/DonReek/obj-import/common"
)

// uniqueVertex is one deduplicated output vertex: the resolved attribute
// values for a distinct faceIndex triple. Vertices are created lazily in
// first-encounter order and never mutated afterwards; a vertex's output index
// is its position in the indexer's vertices slice.
type uniqueVertex struct {
	pos      common.Vec3
	texCoord common.Vec2
	normal   common.Vec3
}

// objIndexer converts raw OBJ data into GPU buffers. It reconciles the
// format's per-attribute indexing (a face vertex may reuse a position shared
// with other faces but pair it with a different normal) against the GPU
// requirement that each unique attribute combination be a single vertex
// record referenced by one index.
//
// The lookup map and vertex list are owned exclusively by one IndexData run
// and never escape it.
type objIndexer struct {
	data         *objData
	hasTexCoords bool
	hasNormals   bool

	lookup   map[faceIndex]uint32
	vertices []uniqueVertex
}

// newOBJIndexer creates an indexer over parsed OBJ data. The presence flags
// decide both which attribute arrays resolve consults and the layout of the
// emitted vertex buffer.
func newOBJIndexer(data *objData, hasTexCoords, hasNormals bool) *objIndexer {
	return &objIndexer{
		data:         data,
		hasTexCoords: hasTexCoords,
		hasNormals:   hasNormals,
		lookup:       make(map[faceIndex]uint32),
	}
}

// resolve returns the output index for a face index triple, creating a new
// unique vertex on first encounter. When an attribute is absent from the
// whole file its slot resolves to a zero placeholder, but only if the face
// token left the slot empty too: a face that names a tex/norm index while the
// corresponding array is empty references a missing element, the same failure
// as any other out-of-bounds index (including negatives left by the 1-based
// conversion).
func (x *objIndexer) resolve(fi faceIndex) (uint32, error) {
	if idx, ok := x.lookup[fi]; ok {
		return idx, nil
	}

	if fi.pos < 0 || fi.pos >= len(x.data.positions) {
		return 0, fmt.Errorf("%w: position %d of %d", ErrIndexOutOfRange, fi.pos, len(x.data.positions))
	}
	v := uniqueVertex{pos: x.data.positions[fi.pos]}
	if x.hasTexCoords {
		if fi.tex < 0 || fi.tex >= len(x.data.texCoords) {
			return 0, fmt.Errorf("%w: texture coordinate %d of %d", ErrIndexOutOfRange, fi.tex, len(x.data.texCoords))
		}
		v.texCoord = x.data.texCoords[fi.tex]
	} else if fi.tex != indexAbsent {
		return 0, fmt.Errorf("%w: texture coordinate %d of %d", ErrIndexOutOfRange, fi.tex, len(x.data.texCoords))
	}
	if x.hasNormals {
		if fi.norm < 0 || fi.norm >= len(x.data.normals) {
			return 0, fmt.Errorf("%w: normal %d of %d", ErrIndexOutOfRange, fi.norm, len(x.data.normals))
		}
		v.normal = x.data.normals[fi.norm]
	} else if fi.norm != indexAbsent {
		return 0, fmt.Errorf("%w: normal %d of %d", ErrIndexOutOfRange, fi.norm, len(x.data.normals))
	}

	idx := uint32(len(x.vertices))
	x.lookup[fi] = idx
	x.vertices = append(x.vertices, v)
	return idx, nil
}

// IndexData produces the triangle index buffer and the interleaved vertex
// buffer. Polygons are fan-triangulated from their first vertex, which
// assumes convex planar faces; a non-convex polygon triangulates without
// error but may yield visually incorrect geometry.
//
// Attribute values are carried at double precision and narrowed to float32
// here, at emission. Per vertex the buffer holds position x/y/z, then texture
// coordinate x/y when texture coordinates are present, then normal x/y/z when
// normals are present.
//
// Returns:
//   - []uint32: the triangle index buffer (3·(N−2) entries per N-sided face)
//   - []float32: the interleaved vertex buffer, in first-encounter order
//   - error: ErrIndexOutOfRange if a face references a missing attribute
func (x *objIndexer) IndexData() ([]uint32, []float32, error) {
	var indices []uint32

	for _, face := range x.data.faces {
		if len(face) < 3 {
			continue
		}
		first, err := x.resolve(face[0])
		if err != nil {
			return nil, nil, err
		}
		for i := 1; i+1 < len(face); i++ {
			a, err := x.resolve(face[i])
			if err != nil {
				return nil, nil, err
			}
			b, err := x.resolve(face[i+1])
			if err != nil {
				return nil, nil, err
			}
			indices = append(indices, first, a, b)
		}
	}

	stride := 3
	if x.hasTexCoords {
		stride += 2
	}
	if x.hasNormals {
		stride += 3
	}
	vertexData := make([]float32, 0, len(x.vertices)*stride)
	for _, v := range x.vertices {
		vertexData = append(vertexData, float32(v.pos.X), float32(v.pos.Y), float32(v.pos.Z))
		if x.hasTexCoords {
			vertexData = append(vertexData, float32(v.texCoord.X), float32(v.texCoord.Y))
		}
		if x.hasNormals {
			vertexData = append(vertexData, float32(v.normal.X), float32(v.normal.Y), float32(v.normal.Z))
		}
	}

	return indices, vertexData, nil
}
