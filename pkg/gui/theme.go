package gui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/qnkhuat/memorice/pkg/board"
)

// Theme is used for dynamically coloring the UI. Cards holds one color per
// pair value.
type Theme struct {
	Name       string
	Title      tcell.Color
	Info       tcell.Color
	Status     tcell.Color
	GameOver   tcell.Color
	Hidden     tcell.Color
	HiddenText tcell.Color
	Cards      [board.Pairs]tcell.Color
}

// ThemeHex is the JSON form of a Theme.
type ThemeHex struct {
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	Info       string   `json:"info"`
	Status     string   `json:"status"`
	GameOver   string   `json:"gameOver"`
	Hidden     string   `json:"hidden"`
	HiddenText string   `json:"hiddenText"`
	Cards      []string `json:"cards"`
}

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex. This is useful
// because it allows ColorDefault to be imported from the config
// and parsed properly rather than being interpreted as black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	cards := make([]string, len(t.Cards))
	for i, c := range t.Cards {
		cards[i] = fmtHex(c.Hex())
	}

	return ThemeHex{
		Name:       t.Name,
		Title:      fmtHex(t.Title.Hex()),
		Info:       fmtHex(t.Info.Hex()),
		Status:     fmtHex(t.Status.Hex()),
		GameOver:   fmtHex(t.GameOver.Hex()),
		Hidden:     fmtHex(t.Hidden.Hex()),
		HiddenText: fmtHex(t.HiddenText.Hex()),
		Cards:      cards,
	}
}

// Theme converts a ThemeHex to a Theme. Card colors must be full hex
// colors, one per pair.
func (t ThemeHex) Theme() (Theme, error) {
	if len(t.Cards) != board.Pairs {
		return Theme{}, fmt.Errorf("theme %q: %d card colors, want %d", t.Name, len(t.Cards), board.Pairs)
	}

	theme := Theme{
		Name:       t.Name,
		Title:      tcell.GetColor(t.Title),
		Info:       tcell.GetColor(t.Info),
		Status:     tcell.GetColor(t.Status),
		GameOver:   tcell.GetColor(t.GameOver),
		Hidden:     tcell.GetColor(t.Hidden),
		HiddenText: tcell.GetColor(t.HiddenText),
	}
	for i, hex := range t.Cards {
		c, err := colorful.Hex(hex)
		if err != nil {
			return Theme{}, fmt.Errorf("theme %q: card %d: %w", t.Name, i, err)
		}
		theme.Cards[i] = toTcell(c)
	}

	return theme, nil
}

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	for _, t := range themes {
		if t.Name == want {
			return t.Theme()
		}
	}

	return Theme{}, errors.New("theme: no theme found")
}

func BuiltinTheme(name string) (Theme, error) {
	switch name {
	case ThemeBasic.Name:
		return ThemeBasic, nil
	case ThemeWheel.Name:
		return ThemeWheel, nil
	default:
		return Theme{}, fmt.Errorf("theme: unknown theme %q", name)
	}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func fromTcell(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// TextOn picks black or white text, whichever reads better on bg.
func TextOn(bg tcell.Color) tcell.Color {
	l, _, _ := fromTcell(bg).Lab()
	if l > 0.6 {
		return tcell.ColorBlack
	}
	return tcell.ColorWhite
}

func mustPalette(hexes ...string) [board.Pairs]tcell.Color {
	var cards [board.Pairs]tcell.Color
	for i, hex := range hexes {
		c, err := colorful.Hex(hex)
		if err != nil {
			panic(err)
		}
		cards[i] = toTcell(c)
	}
	return cards
}

// wheel spreads the pairs evenly around the HCL hue circle.
func wheel() [board.Pairs]tcell.Color {
	var cards [board.Pairs]tcell.Color
	for i := range cards {
		h := float64(i) * 360 / float64(board.Pairs)
		l := 0.55
		if i%2 == 1 {
			l = 0.75
		}
		cards[i] = toTcell(colorful.Hcl(h, 0.6, l))
	}
	return cards
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	Name:       "basic",
	Title:      tcell.Color33,
	Info:       tcell.ColorDefault,
	Status:     tcell.Color40,
	GameOver:   tcell.Color160,
	Hidden:     tcell.Color240,
	HiddenText: tcell.ColorWhite,
	Cards: mustPalette(
		"#ff0000", "#00ff00", "#0000ff", "#ffff00",
		"#ff00ff", "#00ffff", "#800000", "#008000",
		"#000080", "#808000", "#800080", "#008080",
		"#ff8000", "#ff0080", "#80ff00", "#00ff80",
		"#8000ff", "#0080ff",
	),
}

var ThemeWheel = Theme{
	Name:       "wheel",
	Title:      tcell.Color212,
	Info:       tcell.Color247,
	Status:     tcell.Color122,
	GameOver:   tcell.Color167,
	Hidden:     tcell.Color236,
	HiddenText: tcell.Color250,
	Cards:      wheel(),
}
