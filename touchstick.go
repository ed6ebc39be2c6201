package touchstick

import (
	"fmt"
	"math"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for positions, offsets, sizes, and stick values.
// Screen positions use a y-down convention; stick values use y-up.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// FlipY mirrors v across the x axis. Converts between the y-up value space
// and y-down screen space.
func (v Vec2) FlipY() Vec2 { return Vec2{v.X, -v.Y} }

// Clamp clamps each component independently to [lo, hi].
func (v Vec2) Clamp(lo, hi float64) Vec2 {
	return Vec2{clampFloat(v.X, lo, hi), clampFloat(v.Y, lo, hi)}
}

// ClampLength rescales v so its length is at most limit, preserving direction.
func (v Vec2) ClampLength(limit float64) Vec2 {
	l := v.Len()
	if l <= limit || l == 0 {
		return v
	}
	return Vec2{v.X / l * limit, v.Y / l * limit}
}

func clampFloat(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Mode selects how a stick anchors its drag and where its feedback is drawn.
type Mode uint8

const (
	ModeFixed    Mode = iota // origin and outline never move
	ModeFloating             // feedback appears at the drag start, hidden when idle
	ModeDynamic              // feedback stays where the last drag began
)

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case ModeFixed:
		return "fixed"
	case ModeFloating:
		return "floating"
	case ModeDynamic:
		return "dynamic"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode converts a mode name (case-insensitive) into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fixed", "":
		return ModeFixed, nil
	case "floating":
		return ModeFloating, nil
	case "dynamic":
		return ModeDynamic, nil
	default:
		return ModeFixed, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// PointerID is an opaque correlation key for a mouse button or touch contact.
// Sessions compare it by equality only.
type PointerID uint64

// MousePointer is the PointerID used for the primary mouse button.
const MousePointer PointerID = 0
