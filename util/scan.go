package util

import (
	"os"
	"path/filepath"
	"strings"
)

// Dir is one directory of a scanned tree. Only directories that contain a
// matching file somewhere below them are kept.
type Dir struct {
	Name  string   // base name of the directory
	Path  string   // path as reached from the scan root
	Files []string // matching files directly inside, sorted by name
	Dirs  []Dir    // non-empty subdirectories, sorted by name
}

// Empty reports whether d holds no matching files at any depth.
func (d Dir) Empty() bool {
	return len(d.Files) == 0 && len(d.Dirs) == 0
}

// CountFiles returns the number of matching files at or below d.
func (d Dir) CountFiles() int {
	count := len(d.Files)
	for _, sub := range d.Dirs {
		count += sub.CountFiles()
	}
	return count
}

// ScanDirectory walks root and returns the tree of regular files for which
// match returns true. match receives the slash-separated path relative to
// root; a nil match accepts every file. Hidden entries and symlinks are
// skipped.
func ScanDirectory(root string, match func(rel string) bool) (Dir, error) {
	info, err := os.Stat(root)
	if err != nil {
		return Dir{}, err
	}
	if !info.IsDir() {
		return Dir{}, ErrExpectedDirectory
	}
	return scanDir(root, root, match)
}

func scanDir(root, path string, match func(string) bool) (Dir, error) {
	d := Dir{Name: filepath.Base(path), Path: path}
	entries, err := os.ReadDir(path)
	if err != nil {
		return d, err
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if e.Type()&os.ModeSymlink != 0 {
			continue
		}
		full := filepath.Join(path, e.Name())
		if e.IsDir() {
			sub, err := scanDir(root, full, match)
			if err != nil {
				return d, err
			}
			if !sub.Empty() {
				d.Dirs = append(d.Dirs, sub)
			}
			continue
		}
		if !e.Type().IsRegular() {
			continue
		}
		rel, err := filepath.Rel(root, full)
		if err != nil {
			return d, err
		}
		if match != nil && !match(filepath.ToSlash(rel)) {
			continue
		}
		d.Files = append(d.Files, full)
	}
	return d, nil
}
