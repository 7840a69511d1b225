package gui

import (
	"encoding/json"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/memorice/pkg/board"
)

func TestThemeHexRoundTrip(t *testing.T) {
	for _, theme := range []Theme{ThemeBasic, ThemeWheel} {
		hex := theme.Hex()
		require.Len(t, hex.Cards, board.Pairs)

		back, err := hex.Theme()
		require.NoError(t, err, theme.Name)
		assert.Equal(t, hex, back.Hex(), theme.Name)
	}
}

func TestThemeHexJSON(t *testing.T) {
	data, err := json.Marshal([]ThemeHex{ThemeBasic.Hex()})
	require.NoError(t, err)

	var themes []ThemeHex
	require.NoError(t, json.Unmarshal(data, &themes))

	theme, err := ImportThemes("basic", themes)
	require.NoError(t, err)
	assert.Equal(t, ThemeBasic.Cards, theme.Cards)

	_, err = ImportThemes("missing", themes)
	assert.Error(t, err)
}

func TestThemeHexInvalidCards(t *testing.T) {
	hex := ThemeBasic.Hex()
	hex.Cards = hex.Cards[:3]
	_, err := hex.Theme()
	assert.Error(t, err)

	hex = ThemeBasic.Hex()
	hex.Cards[4] = "red"
	_, err = hex.Theme()
	assert.Error(t, err)
}

func TestFmtHexDefault(t *testing.T) {
	assert.Equal(t, "#0", fmtHex(tcell.ColorDefault.Hex()))
	assert.Equal(t, "#ff0000", fmtHex(ThemeBasic.Cards[0].Hex()))
}

func TestWheelDistinct(t *testing.T) {
	seen := make(map[int32]bool)
	for _, c := range ThemeWheel.Cards {
		assert.False(t, seen[c.Hex()], "duplicate color %06x", c.Hex())
		seen[c.Hex()] = true
	}
}

func TestTextOn(t *testing.T) {
	assert.Equal(t, tcell.ColorBlack, TextOn(tcell.NewRGBColor(255, 255, 0)))
	assert.Equal(t, tcell.ColorWhite, TextOn(tcell.NewRGBColor(0, 0, 128)))
}

func TestBuiltinTheme(t *testing.T) {
	theme, err := BuiltinTheme("wheel")
	require.NoError(t, err)
	assert.Equal(t, "wheel", theme.Name)

	_, err = BuiltinTheme("nope")
	assert.Error(t, err)
}
