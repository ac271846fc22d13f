package widark

import (
	"fmt"
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// Color is a logical color identifier. Widgets only ever refer to colors
// by name; the Palette owned by the Screen resolves them to cell styles.
type Color string

// Logical colors.
const (
	DEFAULT   Color = "DEFAULT"
	PRIMARY   Color = "PRIMARY"
	SECONDARY Color = "SECONDARY"
	SUCCESS   Color = "SUCCESS"
	DANGER    Color = "DANGER"
	WARNING   Color = "WARNING"
	INFO      Color = "INFO"
	LIGHT     Color = "LIGHT"
	DARK      Color = "DARK"
)

const reverseSuffix = ":reverse"

// Reverse returns the variant of c drawn with foreground and background
// swapped.
func (c Color) Reverse() Color {
	if c.Reversed() {
		return c
	}
	return c + reverseSuffix
}

// Reversed reports whether c is a Reverse variant.
func (c Color) Reversed() bool {
	return strings.HasSuffix(string(c), reverseSuffix)
}

// Back returns the filled variant of c: light text on a background of c.
func (c Color) Back() Color {
	return "BACK_" + c
}

// Palette maps logical colors to concrete cell styles.
type Palette map[Color]tcell.Style

// DefaultPalette returns the built-in mapping onto the 16 ANSI colors.
func DefaultPalette() Palette {
	p := Palette{DEFAULT: tcell.StyleDefault}
	base := map[Color]tcell.Color{
		PRIMARY:   tcell.ColorBlue,
		SECONDARY: tcell.ColorGray,
		SUCCESS:   tcell.ColorLime,
		DANGER:    tcell.ColorRed,
		WARNING:   tcell.ColorYellow,
		INFO:      tcell.ColorAqua,
		LIGHT:     tcell.ColorWhite,
		DARK:      tcell.ColorBlack,
	}
	for name, c := range base {
		p[name] = tcell.StyleDefault.Foreground(c)
		p[name.Back()] = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(c)
	}
	return p
}

// Style resolves c. Unknown colors fall back to DEFAULT.
func (p Palette) Style(c Color) tcell.Style {
	reverse := c.Reversed()
	if reverse {
		c = Color(strings.TrimSuffix(string(c), reverseSuffix))
	}
	style, ok := p[c]
	if !ok {
		style = p[DEFAULT]
	}
	if reverse {
		style = style.Reverse(true)
	}
	return style
}

// paletteEntry is the YAML shape of one palette color.
type paletteEntry struct {
	Fg    string   `yaml:"fg"`
	Bg    string   `yaml:"bg"`
	Attrs []string `yaml:"attrs"`
}

var attrs = map[string]tcell.AttrMask{
	"bold":          tcell.AttrBold,
	"dim":           tcell.AttrDim,
	"italic":        tcell.AttrItalic,
	"underline":     tcell.AttrUnderline,
	"blink":         tcell.AttrBlink,
	"reverse":       tcell.AttrReverse,
	"strikethrough": tcell.AttrStrikeThrough,
}

// LoadPalette parses a YAML palette on top of DefaultPalette:
//
//	PRIMARY: {fg: "#5f87ff", attrs: [bold]}
//	DANGER:  {fg: red, bg: black}
//
// Colors are tcell color names or #rrggbb values.
func LoadPalette(r io.Reader) (Palette, error) {
	var entries map[string]paletteEntry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding palette: %w", err)
	}

	p := DefaultPalette()
	for name, e := range entries {
		style := tcell.StyleDefault
		if e.Fg != "" {
			c, err := parseColor(e.Fg)
			if err != nil {
				return nil, fmt.Errorf("palette color %s: %w", name, err)
			}
			style = style.Foreground(c)
		}
		if e.Bg != "" {
			c, err := parseColor(e.Bg)
			if err != nil {
				return nil, fmt.Errorf("palette color %s: %w", name, err)
			}
			style = style.Background(c)
		}
		for _, a := range e.Attrs {
			mask, ok := attrs[strings.ToLower(a)]
			if !ok {
				return nil, fmt.Errorf("palette color %s: unknown attribute %q", name, a)
			}
			style = style.Attributes(mask | attrMask(style))
		}
		p[Color(strings.ToUpper(name))] = style
	}
	return p, nil
}

func attrMask(s tcell.Style) tcell.AttrMask {
	_, _, a := s.Decompose()
	return a
}

func parseColor(s string) (tcell.Color, error) {
	c := tcell.GetColor(strings.ToLower(s))
	if c == tcell.ColorDefault && !strings.EqualFold(s, "default") {
		return c, fmt.Errorf("unknown color %q", s)
	}
	return c, nil
}
