package util

import (
	"bytes"
	"errors"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func TestCompress_RoundTrip(t *testing.T) {
	payload := []byte(`{"meta":{"version":"2.0"},"groups":{}}`)

	compressed, err := Compress(payload)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if bytes.Equal(compressed, payload) {
		t.Fatal("Compress returned its input unchanged")
	}

	got, err := Decompress(bytes.NewReader(compressed))
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("Decompress = %q, want %q", got, payload)
	}
}

func TestCompress_IsGzip(t *testing.T) {
	compressed, err := Compress([]byte("metadata"))
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if len(compressed) < 2 || compressed[0] != 0x1f || compressed[1] != 0x8b {
		t.Fatalf("output does not start with the gzip magic number: % x", compressed[:2])
	}
	if _, err := gzip.NewReader(bytes.NewReader(compressed)); err != nil {
		t.Errorf("gzip.NewReader rejected output: %v", err)
	}
}

func TestDecompress_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		wantErr error
	}{
		{name: "empty input", input: nil, wantErr: ErrEmptyPayload},
		{name: "not gzip", input: []byte("plain text, not compressed"), wantErr: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decompress(bytes.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Decompress error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
