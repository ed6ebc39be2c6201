package touchstick

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields of a widget element
// simultaneously. Create one with TweenTint or TweenAlpha and call Update(dt)
// each frame; values are written straight into the element.
//
// Tweens only touch tint. They never affect stick values or feedback
// placement, so they are safe to run during a drag.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenTint animates all four components of el.Color to the target color
// over duration seconds.
func TweenTint(el *Element, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4}
	g.tweens[0] = gween.New(float32(el.Color.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(el.Color.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(el.Color.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(el.Color.A), float32(to.A), duration, fn)
	g.fields[0] = &el.Color.R
	g.fields[1] = &el.Color.G
	g.fields[2] = &el.Color.B
	g.fields[3] = &el.Color.A
	return g
}

// TweenAlpha animates el.Color.A to the target value over duration seconds.
func TweenAlpha(el *Element, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(el.Color.A), float32(to), duration, fn)
	g.fields[0] = &el.Color.A
	return g
}

// FadeStick returns tweens fading both elements of s to alpha over duration
// seconds with a linear curve. Typical use is dimming controls while paused.
func FadeStick[S comparable](s *Stick[S], alpha float64, duration float32) []*TweenGroup {
	return []*TweenGroup{
		TweenAlpha(&s.Outline, alpha, duration, ease.Linear),
		TweenAlpha(&s.Knob, alpha, duration, ease.Linear),
	}
}
