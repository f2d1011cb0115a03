package graphics

import "testing"

func TestRectFromLTWH_ClampsNegative(t *testing.T) {
	r := RectFromLTWH(10, 20, -5, 30)
	if r.Width != 0 || r.Height != 30 {
		t.Errorf("got %+v, want width clamped to 0", r)
	}
}

func TestRectContains(t *testing.T) {
	r := RectFromLTWH(300, 250, 200, 50)
	tests := []struct {
		name string
		p    Offset
		want bool
	}{
		{"center", Offset{X: 400, Y: 275}, true},
		{"top-left corner", Offset{X: 300, Y: 250}, true},
		{"bottom-right corner", Offset{X: 500, Y: 300}, true},
		{"left of rect", Offset{X: 299.5, Y: 275}, false},
		{"below rect", Offset{X: 400, Y: 300.5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectContains_EmptyRect(t *testing.T) {
	var zero Rect
	if zero.Contains(Offset{}) {
		t.Error("zero rect must not contain its own origin")
	}
}

func TestRectIntersect(t *testing.T) {
	a := RectFromLTWH(0, 0, 10, 10)
	b := RectFromLTWH(5, 5, 10, 10)
	if got := a.Intersect(b); got != RectFromLTWH(5, 5, 5, 5) {
		t.Errorf("Intersect = %+v", got)
	}
	if got := a.Intersect(RectFromLTWH(20, 20, 1, 1)); got != (Rect{}) {
		t.Errorf("disjoint Intersect = %+v, want zero", got)
	}
}
