// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned cell rectangle on the screen.
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
// Touching edges do not count as overlap.
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

// Viewport maps a normalized play field onto a block of screen cells.
// Field coordinates grow right and down unless FlipY is set, in which case
// field y = 0 is the bottom row (ground-based games).
type Viewport struct {
	Area   Rect
	FieldW float64
	FieldH float64
	FlipY  bool
}

// Cell converts a field coordinate to a screen cell.
func (v Viewport) Cell(fx, fy float64) (int, int) {
	if v.FieldW <= 0 || v.FieldH <= 0 {
		return v.Area.X, v.Area.Y
	}
	cx := v.Area.X + int(math.Floor(fx/v.FieldW*float64(v.Area.W)))
	cy := int(math.Floor(fy / v.FieldH * float64(v.Area.H)))
	if v.FlipY {
		cy = v.Area.Bottom() - 1 - cy
	} else {
		cy += v.Area.Y
	}
	return cx, cy
}

// Span converts a field width to a cell count, never less than one.
func (v Viewport) Span(fw float64) int {
	if v.FieldW <= 0 {
		return 1
	}
	return max(1, int(math.Round(fw/v.FieldW*float64(v.Area.W))))
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
