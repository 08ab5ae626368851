package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())

	for _, name := range []FontName{Regular, Title, Small} {
		face := name.Get()
		require.NotNil(t, face, name)
		assert.Positive(t, font.MeasureString(face, "hoh").Ceil(), name)
	}
}

func TestLoadFontWithSize_BadData(t *testing.T) {
	assert.Error(t, LoadFontWithSize("broken", []byte("not a font"), 10))
}

func TestGet_Unknown(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
