package util

import (
	"testing"
)

func TestNewIdentifier(t *testing.T) {
	seen := make(map[string]bool)
	for range 1000 {
		id := NewIdentifier()
		if len(id) != IdentifierLength {
			t.Fatalf("identifier %q has length %d, want %d", id, len(id), IdentifierLength)
		}
		if !IsIdentifier(id) {
			t.Fatalf("identifier %q does not match the 8-4-4-4-12 uppercase pattern", id)
		}
		if seen[id] {
			t.Fatalf("duplicate identifier %q", id)
		}
		seen[id] = true
	}
}

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{name: "uppercase", id: "3F2504E0-4F89-11D3-9A0C-0305E82C3301", want: true},
		{name: "lowercase", id: "3f2504e0-4f89-11d3-9a0c-0305e82c3301", want: false},
		{name: "missing hyphens", id: "3F2504E04F8911D39A0C0305E82C3301", want: false},
		{name: "wrong grouping", id: "3F2504E0-4F8911-D3-9A0C-0305E82C3301", want: false},
		{name: "non hex", id: "3F2504E0-4F89-11D3-9A0C-0305E82C33ZZ", want: false},
		{name: "empty", id: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsIdentifier(tt.id); got != tt.want {
				t.Errorf("IsIdentifier(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}
