package touchstick

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// Layout is a YAML description of a set of sticks.
//
//	sticks:
//	  - id: left
//	    mode: fixed
//	    radius: 75
//	    dead_zone: 5
//	    align: bottom-left
//	    rect: {x: 35, y: 35, width: 150, height: 150}
//	    gamepad: left
//	    knob: {image: knob.png, width: 75, height: 75}
//	    outline: {image: outline.png, width: 150, height: 150}
type Layout struct {
	Sticks []StickSpec `yaml:"sticks"`
}

// StickSpec describes one stick in a Layout.
type StickSpec struct {
	ID       string      `yaml:"id"`
	Mode     string      `yaml:"mode"`
	Radius   float64     `yaml:"radius"`
	DeadZone float64     `yaml:"dead_zone"`
	Align    string      `yaml:"align"`
	Rect     RectSpec    `yaml:"rect"`
	Area     *RectSpec   `yaml:"area"`       // screen-space interaction area, aligned like Rect
	FullArea bool        `yaml:"fullscreen"` // accept drags anywhere on screen
	Gamepad  string      `yaml:"gamepad"`    // "", "left" or "right"
	ZIndex   int         `yaml:"z_index"`
	Knob     ElementSpec `yaml:"knob"`
	Outline  ElementSpec `yaml:"outline"`
}

// RectSpec is a rectangle in YAML.
type RectSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ElementSpec describes a knob or outline element in YAML.
type ElementSpec struct {
	Image  string    `yaml:"image"`
	Width  float64   `yaml:"width"`
	Height float64   `yaml:"height"`
	Color  []float64 `yaml:"color"` // r, g, b[, a] in [0, 1]
}

// ErrEmptyLayout is returned when a layout defines no sticks. A truncated file
// observed mid-save parses this way.
var ErrEmptyLayout = errors.New("touchstick: layout has no sticks")

// LoadLayout reads and parses a YAML layout file.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("touchstick: load layout %s: %w", path, err)
	}
	l, err := ParseLayout(data)
	if err != nil {
		return nil, fmt.Errorf("touchstick: layout %s: %w", path, err)
	}
	return l, nil
}

// ParseLayout parses and validates a YAML layout.
func ParseLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if len(l.Sticks) == 0 {
		return nil, ErrEmptyLayout
	}
	seen := make(map[string]bool, len(l.Sticks))
	for i := range l.Sticks {
		sp := &l.Sticks[i]
		if sp.ID == "" {
			return nil, fmt.Errorf("stick %d: missing id", i)
		}
		if seen[sp.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateStick, sp.ID)
		}
		seen[sp.ID] = true
		if _, err := sp.Config(); err != nil {
			return nil, fmt.Errorf("stick %s: %w", sp.ID, err)
		}
		if _, err := sp.mapping(); err != nil {
			return nil, fmt.Errorf("stick %s: %w", sp.ID, err)
		}
		if _, err := alignOrigin(sp.Align, Vec2{}, Vec2{}); err != nil {
			return nil, fmt.Errorf("stick %s: %w", sp.ID, err)
		}
	}
	return &l, nil
}

// Config converts the entry into a validated stick configuration. A zero
// radius defaults to half the rect width, or DefaultRadius.
func (sp StickSpec) Config() (Config, error) {
	mode, err := ParseMode(sp.Mode)
	if err != nil {
		return Config{}, err
	}
	radius := sp.Radius
	if radius == 0 {
		radius = sp.Rect.Width / 2
	}
	if radius == 0 {
		radius = DefaultRadius
	}
	cfg := Config{Mode: mode, Radius: radius, DeadZone: sp.DeadZone}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (sp StickSpec) mapping() (*GamepadMapping, error) {
	switch strings.ToLower(sp.Gamepad) {
	case "":
		return nil, nil
	case "left":
		m := LeftStickMapping
		return &m, nil
	case "right":
		m := RightStickMapping
		return &m, nil
	default:
		return nil, fmt.Errorf("unknown gamepad mapping %q", sp.Gamepad)
	}
}

// ApplyOptions controls Layout.Apply.
type ApplyOptions struct {
	// Screen is the screen size used to resolve aligned rectangles.
	Screen Vec2
	// Images resolves element image names. Unresolved names leave the image
	// nil, which is drawn as nothing.
	Images func(name string) *ebiten.Image
}

// Apply creates, updates or removes sticks in r so that it matches the
// layout. Sticks in a drag keep their radius and dead zone until the drag
// ends (see Stick.Reconfigure); geometry and appearance update at once.
func (l *Layout) Apply(r *Registry[string], opts ApplyOptions) error {
	keep := make(map[string]bool, len(l.Sticks))
	for _, sp := range l.Sticks {
		keep[sp.ID] = true
		cfg, err := sp.Config()
		if err != nil {
			return fmt.Errorf("stick %s: %w", sp.ID, err)
		}
		s, ok := r.Get(sp.ID)
		if ok {
			if _, err := s.Reconfigure(cfg); err != nil {
				return fmt.Errorf("stick %s: %w", sp.ID, err)
			}
		} else if s, err = r.Add(sp.ID, cfg); err != nil {
			return err
		}
		if err := sp.applyTo(s, opts); err != nil {
			return fmt.Errorf("stick %s: %w", sp.ID, err)
		}
	}
	for _, s := range append([]*Stick[string](nil), r.Sticks()...) {
		if !keep[s.ID] {
			r.Remove(s.ID)
		}
	}
	return nil
}

func (sp StickSpec) applyTo(s *Stick[string], opts ApplyOptions) error {
	rect, err := sp.Rect.resolve(sp.Align, opts.Screen)
	if err != nil {
		return err
	}
	s.Container = ContainerAt(rect)
	s.ZIndex = sp.ZIndex

	switch {
	case sp.FullArea:
		s.Area = HitAll{}
		s.ScreenSpaceArea = true
	case sp.Area != nil:
		area, err := sp.Area.resolve(sp.Align, opts.Screen)
		if err != nil {
			return err
		}
		s.Area = area
		s.ScreenSpaceArea = true
	default:
		s.Area = nil
		s.ScreenSpaceArea = false
	}

	if s.Mapping, err = sp.mapping(); err != nil {
		return err
	}
	sp.Knob.applyTo(&s.Knob, opts)
	sp.Outline.applyTo(&s.Outline, opts)
	return nil
}

func (es ElementSpec) applyTo(el *Element, opts ApplyOptions) {
	el.Size = Vec2{es.Width, es.Height}
	el.Color = parseColor(es.Color)
	el.Image = nil
	if es.Image != "" && opts.Images != nil {
		el.Image = opts.Images(es.Image)
	}
}

func parseColor(c []float64) Color {
	switch len(c) {
	case 3:
		return Color{c[0], c[1], c[2], 1}
	case 4:
		return Color{c[0], c[1], c[2], c[3]}
	default:
		return ColorWhite
	}
}

// resolve converts an aligned rect into screen coordinates. X and Y are
// measured from the aligned screen corner towards the screen interior.
func (rs RectSpec) resolve(align string, screen Vec2) (Rect, error) {
	size := Vec2{rs.Width, rs.Height}
	origin, err := alignOrigin(align, screen, size)
	if err != nil {
		return Rect{}, err
	}
	x, y := origin.X+rs.X, origin.Y+rs.Y
	switch strings.ToLower(align) {
	case "top-right", "bottom-right":
		x = origin.X - rs.X
	}
	switch strings.ToLower(align) {
	case "bottom-left", "bottom-right":
		y = origin.Y - rs.Y
	}
	return Rect{X: x, Y: y, Width: rs.Width, Height: rs.Height}, nil
}

// alignOrigin returns the top-left position of a rect of the given size placed
// flush against the aligned screen corner (or centered).
func alignOrigin(align string, screen, size Vec2) (Vec2, error) {
	switch strings.ToLower(align) {
	case "", "top-left":
		return Vec2{}, nil
	case "top-right":
		return Vec2{screen.X - size.X, 0}, nil
	case "bottom-left":
		return Vec2{0, screen.Y - size.Y}, nil
	case "bottom-right":
		return Vec2{screen.X - size.X, screen.Y - size.Y}, nil
	case "center":
		return Vec2{(screen.X - size.X) / 2, (screen.Y - size.Y) / 2}, nil
	default:
		return Vec2{}, fmt.Errorf("unknown align %q", align)
	}
}
