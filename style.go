package widark

import "strings"

// Style is the presentation of a widget: border glyphs, logical colors,
// content alignment and the template wrapping its content.
//
// The zero value of each field means "unset"; Configure only replaces the
// fields a patch actually sets.
type Style struct {
	// Border lists up to eight glyphs in the order left, right, top,
	// bottom, top-left, top-right, bottom-left, bottom-right. A zero or
	// missing glyph selects the single-line default. Empty means no border.
	Border          []rune
	Color           Color
	BackgroundColor Color
	BorderColor     Color
	// Align is a two-character code, vertical then horizontal, drawn from
	// L, C and R.
	Align string
	// Template wraps the content; its first "{}" is replaced by it.
	Template string
}

// DefaultStyle returns a Style with every default filled in.
func DefaultStyle() Style {
	return Style{
		Color:           DEFAULT,
		BackgroundColor: DEFAULT,
		BorderColor:     DEFAULT,
		Align:           "LL",
		Template:        "{}",
	}
}

// NewStyle returns the defaults configured with patch.
func NewStyle(patch Style) Style {
	s := DefaultStyle()
	s.Configure(patch)
	return s
}

// Configure merges patch into s. Zero-valued fields of the patch keep the
// previous value.
func (s *Style) Configure(patch Style) {
	if len(patch.Border) > 0 {
		s.Border = append([]rune(nil), patch.Border...)
	}
	if patch.Color != "" {
		s.Color = patch.Color
	}
	if patch.BackgroundColor != "" {
		s.BackgroundColor = patch.BackgroundColor
	}
	if patch.BorderColor != "" {
		s.BorderColor = patch.BorderColor
	}
	if patch.Align != "" {
		s.Align = strings.ToUpper(patch.Align)
	}
	if patch.Template != "" {
		s.Template = patch.Template
	}
}

// Bordered reports whether a border is configured.
func (s Style) Bordered() bool {
	return len(s.Border) > 0
}

// Format substitutes content for the first "{}" of the template.
func (s Style) Format(content string) string {
	tpl := s.Template
	if tpl == "" {
		tpl = "{}"
	}
	return strings.Replace(tpl, "{}", content, 1)
}
