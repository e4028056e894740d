package util

import (
	"errors"
	"fmt"
	"os"
	"path"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-git/go-billy/v5"
)

// FallbackFilename replaces a file name that cleans to nothing.
const FallbackFilename = "icon"

var unsafeRun = regexp.MustCompile(`[^a-zA-Z0-9@.]+`)

// CleanString collapses every run of characters other than ASCII letters,
// digits, '@' and '.' into a single hyphen and lowercases the result.
func CleanString(text string) string {
	return strings.ToLower(unsafeRun.ReplaceAllString(text, "-"))
}

// UniqueFilename returns a file name derived from filename that does not exist
// in dir on fsys.
//
// Leading dots are stripped and the rest is passed through CleanString; an
// empty result becomes FallbackFilename. If that name is taken, "stem.1.ext",
// "stem.2.ext", ... are probed in order and the first free candidate is
// returned. Only the last extension is split off,
// so "icon.tar.gz" probes "icon.tar.1.gz".
//
// The check is not atomic with the later file creation; callers are expected
// to create the file before asking for the next name.
func UniqueFilename(fsys billy.Basic, filename, dir string) (string, error) {
	cleaned := CleanString(strings.TrimLeft(filename, "."))
	if cleaned == "" {
		cleaned = FallbackFilename
	}

	taken, err := exists(fsys, fsys.Join(dir, cleaned))
	if err != nil {
		return "", err
	}
	if !taken {
		return cleaned, nil
	}

	ext := path.Ext(cleaned)
	stem := strings.TrimSuffix(cleaned, ext)
	for counter := 1; ; counter++ {
		candidate := stem + "." + strconv.Itoa(counter) + ext
		taken, err = exists(fsys, fsys.Join(dir, candidate))
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
}

func exists(fsys billy.Basic, name string) (bool, error) {
	_, err := fsys.Stat(name)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("stat %q: %w", name, err)
	}
}
