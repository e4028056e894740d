package util

import (
	"io"
	"os"

	"github.com/go-git/go-billy/v5"
)

// CopyFile copies the bytes at src to dst on fsys, creating or truncating dst.
// A directory at src yields ErrExpectedFile.
func CopyFile(fsys billy.Basic, src, dst string) error {
	stat, err := fsys.Stat(src)
	if err != nil {
		return err
	}
	if stat.IsDir() {
		return ErrExpectedFile
	}
	file, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer file.Close()

	newFile, err := fsys.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err = io.Copy(newFile, file); err != nil {
		newFile.Close()
		return err
	}
	return newFile.Close()
}
