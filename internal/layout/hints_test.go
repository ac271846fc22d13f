package layout

import "testing"

func TestAlignment(t *testing.T) {
	type tc struct {
		code       string
		vertical   byte
		horizontal byte
	}

	tests := map[string]tc{
		"empty is top left":   {code: "", vertical: 'L', horizontal: 'L'},
		"single char doubles": {code: "C", vertical: 'C', horizontal: 'C'},
		"two chars":           {code: "RC", vertical: 'R', horizontal: 'C'},
		"lower case":          {code: "lr", vertical: 'L', horizontal: 'R'},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			v, h := Alignment(tt.code)
			if v != tt.vertical || h != tt.horizontal {
				t.Errorf("Alignment(%q) = %c%c, want %c%c", tt.code, v, h, tt.vertical, tt.horizontal)
			}
		})
	}
}

func TestGridHint_Normalize(t *testing.T) {
	got := GridHint{Position: 3, Span: 0, Weight: -2}.Normalize()
	want := GridHint{Position: 3, Span: 1, Weight: 1}
	if got != want {
		t.Errorf("Normalize() = %+v, want %+v", got, want)
	}
	if d := DefaultGridHint(); d != (GridHint{Span: 1, Weight: 1}) {
		t.Errorf("DefaultGridHint() = %+v", d)
	}
}
