package iconjar

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeFromPath(t *testing.T) {
	tests := []struct {
		path string
		want IconType
	}{
		{"/icons/love.svg", TypeSVG},
		{"LOVE.SVG", TypeSVG},
		{"bear.png", TypePNG},
		{"spin.gif", TypeGIF},
		{"doc.pdf", TypePDF},
		{"app.icns", TypeICNS},
		{"photo.webp", TypeWEBP},
		{"favicon.icon", TypeICO},
		{"favicon.ico", TypeUnknown},
		{"notes.txt", TypeUnknown},
		{"README", TypeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeFromPath(tt.path))
		})
	}
}

func TestParseIconType(t *testing.T) {
	typ, ok := ParseIconType("PNG")
	assert.True(t, ok)
	assert.Equal(t, TypePNG, typ)

	typ, ok = ParseIconType("webp")
	assert.True(t, ok)
	assert.Equal(t, TypeWEBP, typ)

	typ, ok = ParseIconType("bmp")
	assert.False(t, ok)
	assert.Equal(t, TypeUnknown, typ)
}

func TestIconTypeEncodesAsInteger(t *testing.T) {
	raw, err := json.Marshal(map[string]IconType{"svg": TypeSVG, "ico": TypeICO})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"svg":0,"ico":6}`, string(raw))

	assert.True(t, TypeICO.Known())
	assert.False(t, TypeUnknown.Known())
	assert.False(t, IconType(7).Known())
}
