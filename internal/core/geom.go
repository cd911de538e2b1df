// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box in cell coordinates.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// FRect is an axis-aligned bounding box in world coordinates.
// Simulation entities move in float space; FRect is what they collide with.
type FRect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewFRect creates a new float rectangle.
func NewFRect(x, y, w, h float64) FRect {
	return FRect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r FRect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r FRect) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the x-coordinate of the rectangle's center.
func (r FRect) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY returns the y-coordinate of the rectangle's center.
func (r FRect) CenterY() float64 {
	return r.Y + r.H/2
}

// Overlaps returns true if this rectangle overlaps with another.
func (r FRect) Overlaps(other FRect) bool {
	return r.OverlapsInset(other, 0)
}

// OverlapsInset performs the AABB overlap test with both boxes shrunk by
// inset on every side. A positive inset makes contact detection stricter
// than the raw bounding boxes suggest.
func (r FRect) OverlapsInset(other FRect, inset float64) bool {
	if r.X+inset >= other.Right()-inset || other.X+inset >= r.Right()-inset {
		return false
	}
	if r.Y+inset >= other.Bottom()-inset || other.Y+inset >= r.Bottom()-inset {
		return false
	}
	return true
}

// Dist returns the Euclidean distance between two points.
func Dist(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// InBand reports whether a y-coordinate lies within the vertical band
// [top, bottom). Used to test whether an entity is inside the camera's
// visible (or tracked) region.
func InBand(y, top, bottom float64) bool {
	return y >= top && y < bottom
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
