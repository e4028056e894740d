package util

import (
	"errors"
	"os"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	billyutil "github.com/go-git/go-billy/v5/util"
)

func TestCopyFile(t *testing.T) {
	fs := memfs.New()
	if err := billyutil.WriteFile(fs, "/src/bear.png", []byte("png bytes"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := fs.MkdirAll("/dst", 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	if err := CopyFile(fs, "/src/bear.png", "/dst/bear.png"); err != nil {
		t.Fatalf("CopyFile failed: %v", err)
	}
	got, err := billyutil.ReadFile(fs, "/dst/bear.png")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(got) != "png bytes" {
		t.Errorf("copied content = %q, want %q", got, "png bytes")
	}
}

func TestCopyFile_Truncates(t *testing.T) {
	fs := memfs.New()
	billyutil.WriteFile(fs, "/src.svg", []byte("new"), 0o644)
	billyutil.WriteFile(fs, "/dst.svg", []byte("much longer old content"), 0o644)

	if err := CopyFile(fs, "/src.svg", "/dst.svg"); err != nil {
		t.Fatalf("CopyFile failed: %v", err)
	}
	got, _ := billyutil.ReadFile(fs, "/dst.svg")
	if string(got) != "new" {
		t.Errorf("copied content = %q, want %q", got, "new")
	}
}

func TestCopyFile_Errors(t *testing.T) {
	fs := memfs.New()
	fs.MkdirAll("/dir", 0o755)

	t.Run("missing source", func(t *testing.T) {
		err := CopyFile(fs, "/missing.svg", "/out.svg")
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected os.ErrNotExist, got %v", err)
		}
	})
	t.Run("directory source", func(t *testing.T) {
		err := CopyFile(fs, "/dir", "/out.svg")
		if err != ErrExpectedFile {
			t.Errorf("expected ErrExpectedFile, got %v", err)
		}
	})
}
