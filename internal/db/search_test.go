package db

import "testing"

func TestEncodeVector_LittleEndianFloat32(t *testing.T) {
	blob := EncodeVector([]float32{1.0})
	if len(blob) != 4 {
		t.Fatalf("len = %d, want 4", len(blob))
	}
	// 1.0 as IEEE-754 float32 little-endian
	want := "\x00\x00\x80\x3f"
	if blob != want {
		t.Errorf("blob = %q, want %q", blob, want)
	}
}

func TestEncodeVector_Length(t *testing.T) {
	blob := EncodeVector(make([]float32, 256))
	if len(blob) != 1024 {
		t.Errorf("len = %d, want 1024", len(blob))
	}
}

func TestEncodeVector_Deterministic(t *testing.T) {
	v := []float32{0.25, -3.5, 42}
	if EncodeVector(v) != EncodeVector(v) {
		t.Error("encoding is not deterministic")
	}
}
