package cmd

import (
	"testing"
)

func TestPathWithin(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		dir      string
		expected bool
	}{
		{
			name:     "identical paths",
			path:     "/tmp/icons",
			dir:      "/tmp/icons",
			expected: true,
		},
		{
			name:     "path inside dir",
			path:     "/tmp/icons/out",
			dir:      "/tmp/icons",
			expected: true,
		},
		{
			name:     "dir inside path",
			path:     "/tmp",
			dir:      "/tmp/icons",
			expected: false,
		},
		{
			name:     "completely separate paths",
			path:     "/tmp/icons",
			dir:      "/mnt/out",
			expected: false,
		},
		{
			name:     "sibling with shared prefix",
			path:     "/tmp/icons-out",
			dir:      "/tmp/icons",
			expected: false,
		},
		{
			name:     "dotted name inside dir",
			path:     "/tmp/icons/..out",
			dir:      "/tmp/icons",
			expected: true,
		},
		{
			name:     "relative paths - inside",
			path:     "icons/out",
			dir:      "icons",
			expected: true,
		},
		{
			name:     "relative paths - separate",
			path:     "out",
			dir:      "icons",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pathWithin(tt.path, tt.dir)
			if result != tt.expected {
				t.Errorf("pathWithin(%q, %q) = %v, expected %v", tt.path, tt.dir, result, tt.expected)
			}
		})
	}
}
