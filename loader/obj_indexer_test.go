package loader

import (
	"errors"
	"testing"
)

func indexString(t *testing.T, src string) ([]uint32, []float32) {
	t.Helper()
	data := parseString(t, src)
	indexer := newOBJIndexer(data, len(data.texCoords) > 0, len(data.normals) > 0)
	indices, vertexData, err := indexer.IndexData()
	if err != nil {
		t.Fatalf("IndexData failed: %v", err)
	}
	return indices, vertexData
}

func TestIndexSingleTriangle(t *testing.T) {
	indices, vertexData := indexString(t, "v 0 0 0\nv 1 0 0\nv 1 1 0\nf 1 2 3\n")

	wantVerts := []float32{0, 0, 0, 1, 0, 0, 1, 1, 0}
	if len(vertexData) != len(wantVerts) {
		t.Fatalf("expected %d floats, got %d", len(wantVerts), len(vertexData))
	}
	for i, v := range wantVerts {
		if vertexData[i] != v {
			t.Errorf("vertexData[%d] = %v, want %v", i, vertexData[i], v)
		}
	}

	wantIndices := []uint32{0, 1, 2}
	if len(indices) != len(wantIndices) {
		t.Fatalf("expected %d indices, got %d", len(wantIndices), len(indices))
	}
	for i, v := range wantIndices {
		if indices[i] != v {
			t.Errorf("indices[%d] = %d, want %d", i, indices[i], v)
		}
	}
}

func TestIndexQuadFan(t *testing.T) {
	indices, vertexData := indexString(t, "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n")

	if len(vertexData) != 4*3 {
		t.Fatalf("expected 4 vertices, got %d floats", len(vertexData))
	}
	want := []uint32{0, 1, 2, 0, 2, 3}
	if len(indices) != len(want) {
		t.Fatalf("expected %d indices, got %d", len(want), len(indices))
	}
	for i, v := range want {
		if indices[i] != v {
			t.Errorf("indices[%d] = %d, want %d", i, indices[i], v)
		}
	}
}

func TestIndexPolygonFanTriangleCount(t *testing.T) {
	// An N-sided convex polygon fans into N-2 triangles from vertex 0.
	src := "v 0 0 0\nv 1 0 0\nv 2 1 0\nv 1 2 0\nv 0 2 0\nv -1 1 0\nf 1 2 3 4 5 6\n"
	indices, _ := indexString(t, src)

	n := 6
	if len(indices) != 3*(n-2) {
		t.Fatalf("expected %d indices for a %d-gon, got %d", 3*(n-2), n, len(indices))
	}
	for i := 0; i < len(indices); i += 3 {
		if indices[i] != 0 {
			t.Errorf("triangle %d does not fan from vertex 0: %v", i/3, indices[i:i+3])
		}
	}
}

func TestIndexDedupSharedEdge(t *testing.T) {
	// Two triangles sharing the edge 1-3 with identical attribute triples must
	// reuse the shared vertices rather than grow the vertex buffer.
	src := "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3\nf 1 3 4\n"
	indices, vertexData := indexString(t, src)

	if len(vertexData) != 4*3 {
		t.Fatalf("expected 4 unique vertices, got %d floats", len(vertexData))
	}
	want := []uint32{0, 1, 2, 0, 2, 3}
	for i, v := range want {
		if indices[i] != v {
			t.Errorf("indices[%d] = %d, want %d", i, indices[i], v)
		}
	}
}

func TestIndexDistinctTriplesSplitVertex(t *testing.T) {
	// The same position paired with a different normal is a different
	// attribute combination and must become its own output vertex.
	src := "v 0 0 0\nv 1 0 0\nv 1 1 0\n" +
		"vn 0 0 1\nvn 1 0 0\n" +
		"f 1//1 2//1 3//1\nf 1//2 2//2 3//2\n"
	indices, vertexData := indexString(t, src)

	stride := 6 // position + normal
	if len(vertexData) != 6*stride {
		t.Fatalf("expected 6 unique vertices, got %d floats", len(vertexData))
	}
	if len(indices) != 6 {
		t.Fatalf("expected 6 indices, got %d", len(indices))
	}
	for i := 0; i < 3; i++ {
		if indices[i] == indices[i+3] {
			t.Errorf("vertex %d was deduplicated across differing normals", i)
		}
	}
}

func TestIndexInterleavedLayout(t *testing.T) {
	src := "v 1 2 3\nv 4 5 6\nv 7 8 9\n" +
		"vt 0.1 0.2\n" +
		"vn 0 0 1\n" +
		"f 1/1/1 2/1/1 3/1/1\n"
	_, vertexData := indexString(t, src)

	stride := 8 // 3 position + 2 tex + 3 normal
	if len(vertexData) != 3*stride {
		t.Fatalf("expected %d floats, got %d", 3*stride, len(vertexData))
	}
	// Second vertex record: position 4,5,6 then tex 0.1,0.2 then normal 0,0,1.
	rec := vertexData[stride : 2*stride]
	want := []float32{4, 5, 6, 0.1, 0.2, 0, 0, 1}
	for i, v := range want {
		if rec[i] != v {
			t.Errorf("record[%d] = %v, want %v", i, rec[i], v)
		}
	}
}

func TestIndexAllIndicesInRange(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nv 0 0 1\n" +
		"f 1 2 3 4\nf 1 4 5\nf 2 3 5\n"
	indices, vertexData := indexString(t, src)

	vertexCount := uint32(len(vertexData) / 3)
	for i, idx := range indices {
		if idx >= vertexCount {
			t.Errorf("indices[%d] = %d, out of range for %d vertices", i, idx, vertexCount)
		}
	}
}

func TestIndexDeterminism(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\nf 4 3 2 1\n"
	data := parseString(t, src)

	i1, v1, err := newOBJIndexer(data, false, false).IndexData()
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	i2, v2, err := newOBJIndexer(data, false, false).IndexData()
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if len(i1) != len(i2) || len(v1) != len(v2) {
		t.Fatalf("runs disagree on buffer sizes: %d/%d indices, %d/%d floats", len(i1), len(i2), len(v1), len(v2))
	}
	for i := range i1 {
		if i1[i] != i2[i] {
			t.Errorf("index buffers diverge at %d: %d vs %d", i, i1[i], i2[i])
		}
	}
	for i := range v1 {
		if v1[i] != v2[i] {
			t.Errorf("vertex buffers diverge at %d: %v vs %v", i, v1[i], v2[i])
		}
	}
}

func TestIndexPositionOutOfRange(t *testing.T) {
	data := parseString(t, "v 0 0 0\nv 1 0 0\nv 1 1 0\nf 1 2 9\n")
	_, _, err := newOBJIndexer(data, false, false).IndexData()
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestIndexNegativeIndexRejected(t *testing.T) {
	// OBJ relative (negative) indexing is unsupported and must fail loudly
	// rather than read the wrong element.
	data := parseString(t, "v 0 0 0\nv 1 0 0\nv 1 1 0\nf -1 -2 -3\n")
	_, _, err := newOBJIndexer(data, false, false).IndexData()
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange for negative indices, got %v", err)
	}
}

func TestIndexAbsentSlotWithPopulatedArray(t *testing.T) {
	// Texture coordinates exist, but the faces never reference them. The
	// absent slot must fail bounds checking instead of silently emitting zero.
	data := parseString(t, "v 0 0 0\nv 1 0 0\nv 1 1 0\nvt 0.5 0.5\nf 1//1 2//1 3//1\nvn 0 0 1\n")
	_, _, err := newOBJIndexer(data, true, true).IndexData()
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange for absent tex slot, got %v", err)
	}
}

func TestIndexSpecifiedSlotWithEmptyArray(t *testing.T) {
	// Faces name texture indices but the file declares no vt lines: the
	// reference points at a missing element and must fail, not silently
	// resolve to zero.
	data := parseString(t, "v 0 0 0\nv 1 0 0\nv 1 1 0\nf 1/1 2/2 3/3\n")
	_, _, err := newOBJIndexer(data, false, false).IndexData()
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange for tex reference without vt lines, got %v", err)
	}
}

func TestIndexAbsentSlotWithEmptyArray(t *testing.T) {
	// No vt lines at all: the empty slot in 1//1 is fine, and the vertex
	// buffer simply has no texture coordinate field.
	indices, vertexData := indexString(t, "v 0 0 0\nv 1 0 0\nv 1 1 0\nvn 0 0 1\nf 1//1 2//1 3//1\n")

	stride := 6 // position + normal, no tex
	if len(vertexData) != 3*stride {
		t.Fatalf("expected %d floats, got %d", 3*stride, len(vertexData))
	}
	if len(indices) != 3 {
		t.Fatalf("expected 3 indices, got %d", len(indices))
	}
}
