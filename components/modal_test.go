package components

import (
	"testing"

	"github.com/widark/widark"
)

func TestModal_Defaults(t *testing.T) {
	root, _ := newRoot(t, 10, 10)
	modal := NewModal(root, nil)

	if modal.Position() != widark.Fixed || modal.Body().Position() != widark.Fixed {
		t.Error("modal and body should be fixed")
	}
	if !modal.Body().Styling().Bordered() {
		t.Error("body is not bordered")
	}
	if modal.Launched() || len(root.Children()) != 0 {
		t.Error("modal shown before Launch")
	}
}

func TestModal_Launch(t *testing.T) {
	root, _ := newRoot(t, 30, 90)
	NewLabel(root, "behind")
	modal := NewModal(root, nil).Launch(5, 5, 20, 20)

	if root.Children()[0] != modal.Widget {
		t.Fatal("modal is not the first child")
	}
	if !modal.Attached() || !modal.Body().Attached() {
		t.Fatal("modal not rendered on launch")
	}
	if got := modal.Frame(); got != widark.NewRect(0, 0, 30, 90) {
		t.Errorf("backdrop = %+v, want the whole parent", got)
	}
	if got := modal.Body().Frame(); got != widark.NewRect(5, 5, 20, 20) {
		t.Errorf("body = %+v", got)
	}
}

func TestModal_Backdrop(t *testing.T) {
	type tc struct {
		y, x      int
		wantClose bool
	}

	tests := map[string]tc{
		"inside the body": {y: 15, x: 15},
		"on the backdrop": {y: 3, x: 3, wantClose: true},
		"below the body":  {y: 26, x: 10, wantClose: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root, _ := newRoot(t, 30, 90)
			closed := false
			NewModal(root, func(ev *widark.Event) error {
				closed = ev.Category == widark.Custom
				return nil
			}).Launch(5, 5, 20, 20)

			if err := click(root, tt.y, tt.x); err != nil {
				t.Fatalf("click = %v", err)
			}
			if closed != tt.wantClose {
				t.Errorf("closed = %v, want %v", closed, tt.wantClose)
			}
		})
	}
}

func TestModal_Close(t *testing.T) {
	root, screen := newRoot(t, 3, 10)
	NewLabel(root, "under", widark.WithStyle(widark.Style{Align: "LL"}))
	modal := NewModal(root, nil)
	modal.On("close", func(*widark.Event) error {
		modal.Close()
		return nil
	})
	modal.Launch(0, 5, 3, 5)

	if got := string(line(screen, 0)[:5]); got != "     " {
		t.Fatalf("backdrop not drawn over the label: %q", got)
	}

	if err := click(root, 1, 1); err != nil {
		t.Fatalf("click = %v", err)
	}

	if modal.Launched() || len(root.Children()) != 1 {
		t.Error("modal still in the tree")
	}
	if got := string(line(screen, 0)[:5]); got != "under" {
		t.Errorf("row 0 = %q, want the label again", got)
	}
}
