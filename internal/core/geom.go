// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea or ebiten)
// to keep game logic pure and testable.
package core

import "cmp"

// Rect represents an integer axis-aligned rectangle.
// Used for screen-space drawing and UI hit tests.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Box is a world-space bounding box: real-valued position, integer size.
// The covered area is the half-open [X, X+W) x [Y, Y+H).
type Box struct {
	X, Y float64
	W, H int
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + float64(b.W)
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + float64(b.H)
}

// Rect truncates the box to integer screen coordinates.
func (b Box) Rect() Rect {
	return Rect{X: int(b.X), Y: int(b.Y), W: b.W, H: b.H}
}

// Overlaps reports whether two boxes intersect (separating-axis test).
// Touching edges do not count as overlap.
func Overlaps(a, b Box) bool {
	return !(a.Right() <= b.X || a.X >= b.Right() || a.Bottom() <= b.Y || a.Y >= b.Bottom())
}

// Clamp restricts v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return max(lo, min(v, hi))
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
