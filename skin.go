package touchstick

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// CircleImage returns a white anti-aliased disc of the given diameter, or a
// ring when thickness > 0. Tint it through Element.Color. Useful as a default
// knob and outline when a game ships no artwork.
func CircleImage(diameter int, thickness float64) *ebiten.Image {
	return ebiten.NewImageFromImage(circleRGBA(diameter, thickness))
}

// DefaultSkin gives s a filled knob half the outline size and a ring outline
// matching the stick radius.
func DefaultSkin[S comparable](s *Stick[S]) {
	d := int(math.Ceil(s.radius * 2))
	s.Outline.Image = CircleImage(d, math.Max(2, s.radius/15))
	s.Outline.Size = Vec2{float64(d), float64(d)}
	s.Knob.Image = CircleImage(d/2, 0)
	s.Knob.Size = Vec2{float64(d / 2), float64(d / 2)}
}

func circleRGBA(diameter int, thickness float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, diameter, diameter))
	r := float64(diameter) / 2
	for y := 0; y < diameter; y++ {
		for x := 0; x < diameter; x++ {
			d := math.Hypot(float64(x)+0.5-r, float64(y)+0.5-r)
			// Coverage of the outer edge, then of the inner edge for rings.
			a := clampFloat(r-d, 0, 1)
			if thickness > 0 {
				a *= clampFloat(d-(r-thickness), 0, 1)
			}
			v := uint8(a * 255)
			img.SetRGBA(x, y, color.RGBA{v, v, v, v})
		}
	}
	return img
}
