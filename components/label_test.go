package components

import (
	"testing"

	"github.com/widark/widark"
)

func TestLabel(t *testing.T) {
	type tc struct {
		opts      []widark.Option
		wantColor widark.Color
		wantAlign string
	}

	tests := map[string]tc{
		"defaults": {
			wantColor: widark.INFO,
			wantAlign: "C",
		},
		"options override": {
			opts:      []widark.Option{widark.WithStyle(widark.Style{Color: widark.DANGER, Align: "lr"})},
			wantColor: widark.DANGER,
			wantAlign: "LR",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root, _ := newRoot(t, 3, 10)
			label := NewLabel(root, "Name", tt.opts...)

			if label.Content() != "Name" {
				t.Errorf("Content() = %q", label.Content())
			}
			if s := label.Styling(); s.Color != tt.wantColor || s.Align != tt.wantAlign {
				t.Errorf("Styling() = %+v", s)
			}
			if label.Parent() != root {
				t.Error("label not added to its parent")
			}
		})
	}
}

func TestLabel_Render(t *testing.T) {
	root, screen := newRoot(t, 3, 10)
	NewLabel(root, "Hi")

	root.Render()

	if got := string(line(screen, 1)); got != "    Hi    " {
		t.Errorf("row 1 = %q, want %q", got, "    Hi    ")
	}
}

func TestSpacer(t *testing.T) {
	root, screen := newRoot(t, 1, 6)
	NewSpacer(root, widark.WithGrid(0, 0))
	NewLabel(root, "ab", widark.WithGrid(0, 1))

	root.Render()

	if got := screen.Buffer().StringTrimmed(); got != "   ab" {
		t.Errorf("buffer = %q, want %q", got, "   ab")
	}
}
