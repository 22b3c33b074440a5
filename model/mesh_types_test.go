package model

import "testing"

func TestStride(t *testing.T) {
	cases := []struct {
		hasTex, hasNorm bool
		want            int
	}{
		{false, false, 3},
		{true, false, 5},
		{false, true, 6},
		{true, true, 8},
	}
	for _, c := range cases {
		m := &MeshData{HasTexCoords: c.hasTex, HasNormals: c.hasNorm}
		if got := m.Stride(); got != c.want {
			t.Errorf("Stride(tex=%v, norm=%v) = %d, want %d", c.hasTex, c.hasNorm, got, c.want)
		}
	}
}

func TestVertexCount(t *testing.T) {
	m := &MeshData{
		VertexData:   make([]float32, 24),
		HasTexCoords: true,
		HasNormals:   true,
	}
	if m.VertexCount() != 3 {
		t.Errorf("VertexCount = %d, want 3", m.VertexCount())
	}
}

func TestUploadByteViews(t *testing.T) {
	m := &MeshData{
		VertexData: []float32{0, 0, 0, 1, 0, 0, 1, 1, 0},
		Indices:    []uint32{0, 1, 2},
	}
	if got := len(m.VertexBytes()); got != 9*4 {
		t.Errorf("VertexBytes length = %d, want %d", got, 9*4)
	}
	if got := len(m.IndexBytes()); got != 3*4 {
		t.Errorf("IndexBytes length = %d, want %d", got, 3*4)
	}

	empty := &MeshData{}
	if empty.VertexBytes() != nil || empty.IndexBytes() != nil {
		t.Error("empty buffers should produce nil byte views")
	}
}
