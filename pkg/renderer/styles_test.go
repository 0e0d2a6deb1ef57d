package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleSheet_IdentifiersStableAcrossFontSwap(t *testing.T) {
	p := DefaultPalette()
	prop := NewStyleSheet(p, ProportionalFonts())
	mono := NewStyleSheet(p, MonospacedFonts())

	assert.ElementsMatch(t, prop.Names(), mono.Names())

	for _, name := range prop.Names() {
		a := prop.Get(name)
		b := mono.Get(name)
		assert.Equal(t, a.Size, b.Size, "size changed for %s", name)
		assert.Equal(t, a.Color, b.Color, "color changed for %s", name)
		assert.Equal(t, a.Align, b.Align, "alignment changed for %s", name)
		assert.Equal(t, a.Bold, b.Bold, "weight changed for %s", name)
	}
}

func TestStyleSheet_FontPairSwapChangesFamilyOnly(t *testing.T) {
	ss := NewStyleSheet(DefaultPalette(), MonospacedFonts())

	assert.Equal(t, "Courier", ss.Get(StyleValue).Family)
	assert.Equal(t, "Courier", ss.Get(StyleTitle).Family)
	assert.True(t, ss.Get(StyleTitle).Bold)
}

func TestStyleSheet_UnknownIdentifierFallsBack(t *testing.T) {
	ss := NewStyleSheet(DefaultPalette(), ProportionalFonts())

	got := ss.Get("no-such-style")
	assert.Equal(t, ss.Get(StyleValue), got)
	require.NotEmpty(t, got.Family)
}

func TestDefaultPalette_BrandColors(t *testing.T) {
	p := DefaultPalette()

	assert.Equal(t, RGB{52, 152, 219}, p.Primary)
	assert.Equal(t, RGB{44, 62, 80}, p.Dark)
	assert.Equal(t, RGB{255, 249, 230}, p.NotesFill)
}

func TestStyle_LineHeightScalesWithSize(t *testing.T) {
	small := Style{Size: 8}
	large := Style{Size: 16}

	assert.InDelta(t, small.lineHeight()*2, large.lineHeight(), 0.001)
}
