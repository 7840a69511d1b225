package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/memorice/pkg/game"
	"github.com/qnkhuat/memorice/pkg/gui"
)

func TestParseDefaults(t *testing.T) {
	c, err := Parse("memorice", nil)
	require.NoError(t, err)

	assert.NotZero(t, c.Seed, "seed is picked from the clock")
	assert.Equal(t, game.DefaultMoveDelay, c.MoveDelay)
	assert.Equal(t, game.DefaultHideDelay, c.HideDelay)
	assert.True(t, c.AutoPlay)
	assert.False(t, c.Headless)
	assert.Equal(t, "basic", c.Theme)
}

func TestParseFlags(t *testing.T) {
	c, err := Parse("memorice", []string{
		"-seed", "42",
		"-move-delay", "200ms",
		"-hide-delay", "2s",
		"-autoplay=false",
		"-theme", "wheel",
		"-solve",
	})
	require.NoError(t, err)

	opts := c.GameOptions()
	assert.Equal(t, game.Options{
		Seed:      42,
		MoveDelay: 200 * time.Millisecond,
		HideDelay: 2 * time.Second,
		AutoPlay:  false,
	}, opts)
	assert.True(t, c.Headless)

	theme, err := c.ResolveTheme()
	require.NoError(t, err)
	assert.Equal(t, gui.ThemeWheel.Name, theme.Name)
}

func TestParseBadFlag(t *testing.T) {
	_, err := Parse("memorice", []string{"-move-delay", "soon"})
	assert.Error(t, err)
}

func TestResolveThemeFromFile(t *testing.T) {
	custom := gui.ThemeWheel.Hex()
	custom.Name = "night"
	data, err := json.Marshal([]gui.ThemeHex{custom})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "themes.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	c := Default()
	c.ThemeFile = path
	c.Theme = "night"
	theme, err := c.ResolveTheme()
	require.NoError(t, err)
	assert.Equal(t, "night", theme.Name)
	assert.Equal(t, gui.ThemeWheel.Cards, theme.Cards)

	c.Theme = "basic"
	theme, err = c.ResolveTheme()
	require.NoError(t, err)
	assert.Equal(t, gui.ThemeBasic.Name, theme.Name, "built-ins stay available")

	c.Theme = "missing"
	_, err = c.ResolveTheme()
	assert.Error(t, err)
}

func TestLoadThemesErrors(t *testing.T) {
	_, err := LoadThemes(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
	_, err = LoadThemes(path)
	assert.Error(t, err)
}
