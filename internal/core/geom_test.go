package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent horizontal (no overlap)", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"adjacent vertical (no overlap)", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"left of rect", 5, 15, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestViewportCell(t *testing.T) {
	v := Viewport{Area: NewRect(2, 1, 40, 20), FieldW: 400, FieldH: 200}

	tests := []struct {
		name   string
		fx, fy float64
		cx, cy int
	}{
		{"origin", 0, 0, 2, 1},
		{"middle", 200, 100, 22, 11},
		{"last column", 399, 199, 41, 20},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := v.Cell(tc.fx, tc.fy)
			if x != tc.cx || y != tc.cy {
				t.Errorf("Cell(%v, %v) = (%d, %d), expected (%d, %d)", tc.fx, tc.fy, x, y, tc.cx, tc.cy)
			}
		})
	}
}

func TestViewportFlipY(t *testing.T) {
	v := Viewport{Area: NewRect(0, 0, 10, 10), FieldW: 100, FieldH: 100, FlipY: true}

	_, y := v.Cell(0, 0)
	if y != 9 {
		t.Errorf("ground row = %d, expected 9", y)
	}
	_, y = v.Cell(0, 95)
	if y != 0 {
		t.Errorf("top row = %d, expected 0", y)
	}
	if span := v.Span(1); span != 1 {
		t.Errorf("Span of tiny width = %d, expected 1", span)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %v, expected 1", got)
	}
}
