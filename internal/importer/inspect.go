package importer

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/png"
	"os"

	"github.com/gabriel-vasile/mimetype"

	"github.com/dendrascience/iconjar/iconjar"
)

// expectedMIME is the content type each icon type must sniff as.
var expectedMIME = map[iconjar.IconType]string{
	iconjar.TypeSVG:  "image/svg+xml",
	iconjar.TypePNG:  "image/png",
	iconjar.TypeGIF:  "image/gif",
	iconjar.TypePDF:  "application/pdf",
	iconjar.TypeICNS: "image/x-icns",
	iconjar.TypeWEBP: "image/webp",
	iconjar.TypeICO:  "image/x-icon",
}

// fileInfo is what the importer learns about a candidate icon file.
type fileInfo struct {
	typ    iconjar.IconType
	width  int
	height int
}

// inspect checks that the content of path matches its extension and reads
// the pixel size where the format allows it. A non-nil error is the reason
// the file is skipped.
func inspect(path string, defaultSize int) (fileInfo, error) {
	info := fileInfo{typ: iconjar.TypeFromPath(path)}
	want, ok := expectedMIME[info.typ]
	if !ok {
		return info, errors.New("unknown icon type")
	}

	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return info, err
	}
	if !matchesMIME(mime, want) {
		return info, fmt.Errorf("content is %s, expected %s", mime.String(), want)
	}

	switch info.typ {
	case iconjar.TypeSVG:
		return info, nil
	case iconjar.TypePNG, iconjar.TypeGIF:
		w, h, err := decodeSize(path)
		if err != nil {
			return info, err
		}
		info.width, info.height = w, h
		return info, nil
	}
	if defaultSize <= 0 {
		return info, fmt.Errorf("size of %s files cannot be read and no default size is set", info.typ)
	}
	info.width, info.height = defaultSize, defaultSize
	return info, nil
}

func matchesMIME(mime *mimetype.MIME, want string) bool {
	for m := mime; m != nil; m = m.Parent() {
		if m.Is(want) {
			return true
		}
	}
	return false
}

func decodeSize(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("read image header: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}
