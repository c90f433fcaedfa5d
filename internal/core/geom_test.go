package core

import (
	"math"
	"testing"
)

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
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}

	if r.Right() != 30 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), expected (30, 25)", r.Right(), r.Bottom())
	}
}

func TestVec2Normalized(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"zero stays zero", V(0, 0), V(0, 0)},
		{"axis", V(0, 5), V(0, 1)},
		{"3-4-5", V(3, 4), V(0.6, 0.8)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalized()
			if math.Abs(got.X-tc.want.X) > 1e-9 || math.Abs(got.Y-tc.want.Y) > 1e-9 {
				t.Errorf("Normalized(%v) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestVec2IsFinite(t *testing.T) {
	if !V(1, 2).IsFinite() {
		t.Error("ordinary vector should be finite")
	}
	if V(math.NaN(), 0).IsFinite() {
		t.Error("NaN component should not be finite")
	}
	if V(0, math.Inf(-1)).IsFinite() {
		t.Error("Inf component should not be finite")
	}
}

func TestBoundsClamp(t *testing.T) {
	b := Bounds{W: 100, H: 50}

	tests := []struct {
		in, want Vec2
	}{
		{V(10, 10), V(10, 10)},
		{V(-5, 10), V(0, 10)},
		{V(150, 60), V(100, 50)},
		{V(100, 0), V(100, 0)},
	}

	for _, tc := range tests {
		got := b.Clamp(tc.in)
		if got != tc.want {
			t.Errorf("Clamp(%v) = %v, expected %v", tc.in, got, tc.want)
		}
		if !b.Contains(got) {
			t.Errorf("Clamp(%v) = %v is outside bounds", tc.in, got)
		}
	}
}

func TestHeadingVector(t *testing.T) {
	tests := []struct {
		deg  float64
		want Vec2
	}{
		{0, V(0, 1)},
		{90, V(1, 0)},
		{180, V(0, -1)},
		{270, V(-1, 0)},
	}

	for _, tc := range tests {
		got := HeadingVector(tc.deg)
		if math.Abs(got.X-tc.want.X) > 1e-9 || math.Abs(got.Y-tc.want.Y) > 1e-9 {
			t.Errorf("HeadingVector(%v) = %v, expected %v", tc.deg, got, tc.want)
		}
		back := WrapDegrees(HeadingTo(got))
		if math.Abs(back-tc.deg) > 1e-9 {
			t.Errorf("HeadingTo(HeadingVector(%v)) = %v", tc.deg, back)
		}
	}
}

func TestWrapDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{-90, 270},
		{725, 5},
	}

	for _, tc := range tests {
		if got := WrapDegrees(tc.in); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("WrapDegrees(%v) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}

func TestAngleDelta(t *testing.T) {
	tests := []struct {
		from, to, want float64
	}{
		{0, 90, 90},
		{90, 0, -90},
		{350, 10, 20},
		{10, 350, -20},
		{0, 180, 180},
		{-720, 45, 45},
	}

	for _, tc := range tests {
		if got := AngleDelta(tc.from, tc.to); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("AngleDelta(%v, %v) = %v, expected %v", tc.from, tc.to, got, tc.want)
		}
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

	if ClampF(-5.5, 0, 10) != 0 || ClampF(15.5, 0, 10) != 10 || ClampF(5.5, 0, 10) != 5.5 {
		t.Error("ClampF did not clamp into [0, 10]")
	}
}
