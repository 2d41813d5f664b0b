package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
)

func TestFacesCachesBySnappedSize(t *testing.T) {
	faces, err := NewFaces()
	require.NoError(t, err)

	a := faces.Face(24.1, true)
	b := faces.Face(23.9, true)
	assert.Same(t, a, b)

	assert.NotSame(t, a, faces.Face(24, false))
	assert.NotSame(t, a, faces.Face(30, true))
}

func TestFacesClampsBadSizes(t *testing.T) {
	faces, err := NewFaces()
	require.NoError(t, err)

	assert.NotNil(t, faces.Face(0, false))
	assert.NotNil(t, faces.Face(-3, true))
}

func TestFacesCoverBlockGlyph(t *testing.T) {
	faces, err := NewFaces()
	require.NoError(t, err)

	for _, r := range "█ÚÍÇÃÉ▲" {
		assert.NotZero(t, faces.bold.Index(r), "missing glyph %q", r)
		assert.NotZero(t, faces.regular.Index(r), "missing glyph %q", r)
	}
	assert.Positive(t, font.MeasureString(faces.Face(16, true), "ISSO FOI").Ceil())
}

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())
	assert.NotNil(t, MonoTitle.Get())
	assert.Panics(t, func() { FontName("missing").Get() })
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	assert.Error(t, LoadFont("broken", []byte("not a font")))
}
