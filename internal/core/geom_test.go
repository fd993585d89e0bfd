package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestRectIntersects(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		other    Rect
		expected bool
	}{
		{"overlapping", NewRect(15, 15, 20, 15), true},
		{"contained", NewRect(12, 12, 5, 5), true},
		{"containing", NewRect(0, 0, 100, 100), true},
		{"touching right edge", NewRect(30, 10, 5, 5), false},
		{"touching bottom edge", NewRect(10, 25, 5, 5), false},
		{"fully left", NewRect(0, 10, 5, 5), false},
		{"fully above", NewRect(10, 0, 5, 5), false},
		{"corner overlap", NewRect(29, 24, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if r.Intersects(tc.other) != tc.expected {
				t.Errorf("Intersects(%+v) = %v, expected %v", tc.other, r.Intersects(tc.other), tc.expected)
			}
			// Intersection is symmetric
			if tc.other.Intersects(r) != tc.expected {
				t.Errorf("Intersects is not symmetric for %+v", tc.other)
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
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEmpty(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		expected bool
	}{
		{"normal", NewRect(0, 0, 10, 10), false},
		{"zero width", NewRect(0, 0, 0, 10), true},
		{"zero height", NewRect(0, 0, 10, 0), true},
		{"zero both", NewRect(5, 5, 0, 0), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.r.Empty() != tc.expected {
				t.Errorf("Empty() = %v, expected %v", tc.r.Empty(), tc.expected)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 10, 10).Inset(1)
	if r != (Rect{X: 1, Y: 1, W: 8, H: 8}) {
		t.Errorf("Inset(1) = %+v, expected {1 1 8 8}", r)
	}

	// Inset larger than the rect saturates dimensions to zero
	tiny := NewRect(0, 0, 3, 3).Inset(2)
	if tiny.W != 0 || tiny.H != 0 {
		t.Errorf("oversized Inset should produce zero dimensions, got %+v", tiny)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
