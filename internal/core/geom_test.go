package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "single pixel overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
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

func TestFRectOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     FRect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewFRect(0, 0, 10, 10),
			b:        NewFRect(5.5, 5.5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewFRect(0, 0, 10, 10),
			b:        NewFRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        NewFRect(0, 0, 10, 10),
			b:        NewFRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "fractional overlap",
			a:        NewFRect(0, 0, 10, 10),
			b:        NewFRect(9.9, 9.9, 10, 10),
			expected: true,
		},
		{
			name:     "contained rect",
			a:        NewFRect(0, 0, 20, 20),
			b:        NewFRect(5, 5, 2.5, 2.5),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if result := tc.a.Overlaps(tc.b); result != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			if result := tc.b.Overlaps(tc.a); result != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestFRectOverlapsInset(t *testing.T) {
	a := NewFRect(0, 0, 4, 4)
	b := NewFRect(3.5, 3.5, 4, 4) // raw overlap of 0.5 on each axis

	if !a.Overlaps(b) {
		t.Error("raw boxes should overlap")
	}
	if a.OverlapsInset(b, 0.5) {
		t.Error("inset of 0.5 should eliminate a 0.5 overlap")
	}
	if !a.OverlapsInset(b, 0.2) {
		t.Error("inset of 0.2 should leave the overlap intact")
	}
}

func TestFRectEdges(t *testing.T) {
	r := NewFRect(1.5, 2.0, 3.0, 4.0)

	if r.Right() != 4.5 {
		t.Errorf("Right() = %f, expected 4.5", r.Right())
	}
	if r.Bottom() != 6.0 {
		t.Errorf("Bottom() = %f, expected 6.0", r.Bottom())
	}
	if r.CenterX() != 3.0 {
		t.Errorf("CenterX() = %f, expected 3.0", r.CenterX())
	}
	if r.CenterY() != 4.0 {
		t.Errorf("CenterY() = %f, expected 4.0", r.CenterY())
	}
}

func TestDist(t *testing.T) {
	tests := []struct {
		x1, y1, x2, y2, expected float64
	}{
		{0, 0, 3, 4, 5},
		{0, 0, 0, 0, 0},
		{1, 1, 1, 5, 4},
		{-3, 0, 0, -4, 5},
	}

	for _, tc := range tests {
		result := Dist(tc.x1, tc.y1, tc.x2, tc.y2)
		if result != tc.expected {
			t.Errorf("Dist(%f, %f, %f, %f) = %f, expected %f", tc.x1, tc.y1, tc.x2, tc.y2, result, tc.expected)
		}
	}
}

func TestInBand(t *testing.T) {
	tests := []struct {
		name        string
		y, top, bot float64
		expected    bool
	}{
		{"inside", 5, 0, 10, true},
		{"at top (inclusive)", 0, 0, 10, true},
		{"at bottom (exclusive)", 10, 0, 10, false},
		{"above", -1, 0, 10, false},
		{"below", 11, 0, 10, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if result := InBand(tc.y, tc.top, tc.bot); result != tc.expected {
				t.Errorf("InBand(%f, %f, %f) = %v, expected %v", tc.y, tc.top, tc.bot, result, tc.expected)
			}
		})
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

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}
