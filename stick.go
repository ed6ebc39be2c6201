package touchstick

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Configuration errors. Returned (wrapped) by NewStick, Reconfigure and the
// layout loader; runtime input paths never return errors.
var (
	ErrInvalidRadius   = errors.New("touchstick: radius must be > 0")
	ErrInvalidDeadZone = errors.New("touchstick: dead zone must be in [0, radius)")
	ErrDuplicateStick  = errors.New("touchstick: stick id already registered")
	ErrUnknownMode     = errors.New("touchstick: unknown stick mode")
)

// Default configuration values.
const (
	DefaultRadius   = 75.0
	DefaultDeadZone = 0.0
)

// Config holds the construction-time parameters of a stick.
type Config struct {
	Mode     Mode
	Radius   float64 // maximum logical travel in pixels
	DeadZone float64 // displacement below this length reads as zero
}

// DefaultConfig returns a Fixed stick with DefaultRadius and no dead zone.
func DefaultConfig() Config {
	return Config{Mode: ModeFixed, Radius: DefaultRadius, DeadZone: DefaultDeadZone}
}

// Validate reports a configuration error, or nil.
func (c Config) Validate() error {
	if !(c.Radius > 0) {
		return fmt.Errorf("%w (got %v)", ErrInvalidRadius, c.Radius)
	}
	if c.DeadZone < 0 || c.DeadZone >= c.Radius {
		return fmt.Errorf("%w (dead zone %v, radius %v)", ErrInvalidDeadZone, c.DeadZone, c.Radius)
	}
	if c.Mode > ModeDynamic {
		return fmt.Errorf("%w: %v", ErrUnknownMode, c.Mode)
	}
	return nil
}

// DragSession is the live state of one drag gesture driving a stick.
type DragSession struct {
	DragID          PointerID
	Mode            Mode // latched when the session opened
	BasePosition    Vec2 // anchor for Fixed (static center) and Dynamic
	StartPosition   Vec2 // anchor for Floating
	CurrentPosition Vec2
}

// Element is a visual part of a stick widget (the knob or the outline).
type Element struct {
	// Image is drawn centered on the element position, scaled to Size.
	// A nil Image is reported as a missing asset and skipped at draw time.
	Image *ebiten.Image
	Size  Vec2
	Color Color
	// Style is written every frame by PatchStyles.
	Style Style
}

// Stick is the per-identity state of one virtual joystick.
//
// Session and value are mutated only through the session operations
// (Begin, Update, End, Cancel) and Recompute.
type Stick[S comparable] struct {
	ID S
	// Mode may be assigned at any time. A drag in progress keeps the mode it
	// started with; the new mode applies from the next drag. Radius and dead
	// zone go through Reconfigure.
	Mode Mode

	// Container is the host layout node of the widget.
	Container Container
	// Area overrides the interaction region; nil means the container bounds.
	Area HitShape
	// ScreenSpaceArea makes Area use screen coordinates instead of
	// container-local ones.
	ScreenSpaceArea bool

	Knob    Element
	Outline Element

	// Mapping, when set, exposes the stick through the emulated gamepad.
	Mapping *GamepadMapping

	// ZIndex orders sticks for hit testing and drawing; higher is on top.
	ZIndex int

	radius   float64
	deadZone float64
	session  *DragSession
	value    Vec2

	// anchor is the last session base, kept for Dynamic feedback after release.
	anchor   Vec2
	anchored bool

	pending *Config
}

// NewStick validates cfg and returns an idle stick.
func NewStick[S comparable](id S, cfg Config) (*Stick[S], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Stick[S]{
		ID:       id,
		Mode:     cfg.Mode,
		radius:   cfg.Radius,
		deadZone: cfg.DeadZone,
		Knob:     Element{Color: ColorWhite},
		Outline:  Element{Color: ColorWhite},
	}, nil
}

// activeMode is the mode of the open session, or Mode when idle.
func (s *Stick[S]) activeMode() Mode {
	if s.session != nil {
		return s.session.Mode
	}
	return s.Mode
}

// Radius returns the maximum logical travel in pixels.
func (s *Stick[S]) Radius() float64 { return s.radius }

// DeadZone returns the dead zone length in pixels.
func (s *Stick[S]) DeadZone() float64 { return s.deadZone }

// Value returns the normalized stick value. Its length is at most 1 and y
// grows upward.
func (s *Stick[S]) Value() Vec2 { return s.value }

// Session returns a copy of the active drag session.
func (s *Stick[S]) Session() (DragSession, bool) {
	if s.session == nil {
		return DragSession{}, false
	}
	return *s.session, true
}

// Active reports whether a drag currently owns the stick.
func (s *Stick[S]) Active() bool { return s.session != nil }

// Config returns the effective configuration.
func (s *Stick[S]) Config() Config {
	return Config{Mode: s.Mode, Radius: s.radius, DeadZone: s.deadZone}
}

// Reconfigure replaces mode, radius and dead zone. Invalid configurations are
// rejected. While a session is active the change is deferred and applied when
// the session closes; the returned bool reports whether it was applied now.
func (s *Stick[S]) Reconfigure(cfg Config) (bool, error) {
	if err := cfg.Validate(); err != nil {
		return false, err
	}
	if s.session != nil {
		s.pending = &cfg
		if globalDebug {
			debugf("stick %v: reconfigure deferred until session %d ends", s.ID, s.session.DragID)
		}
		return false, nil
	}
	s.apply(cfg)
	return true, nil
}

// PendingConfig returns a deferred configuration waiting for session end.
func (s *Stick[S]) PendingConfig() (Config, bool) {
	if s.pending == nil {
		return Config{}, false
	}
	return *s.pending, true
}

func (s *Stick[S]) apply(cfg Config) {
	s.Mode = cfg.Mode
	s.radius = cfg.Radius
	s.deadZone = cfg.DeadZone
	s.pending = nil
}
