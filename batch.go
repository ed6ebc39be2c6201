package touchstick

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// SubmitDrawList draws the commands onto target in list order. Each image is
// scaled to the command Size (or drawn at its native size when Size is zero)
// and centered on the command Position.
func SubmitDrawList(target *ebiten.Image, l *DrawList) {
	if target == nil || len(l.Commands) == 0 {
		return
	}
	var op ebiten.DrawImageOptions
	for i := range l.Commands {
		submitCommand(target, &l.Commands[i], &op)
	}
}

// submitCommand draws a single command using DrawImage.
func submitCommand(target *ebiten.Image, cmd *DrawCommand, op *ebiten.DrawImageOptions) {
	if cmd.Image == nil {
		return
	}
	geo := commandGeoM(cmd)
	op.GeoM.Reset()
	op.GeoM.Concat(geo)

	// Apply premultiplied color scale.
	op.ColorScale.Reset()
	a := float32(cmd.Color.A)
	op.ColorScale.Scale(float32(cmd.Color.R)*a, float32(cmd.Color.G)*a, float32(cmd.Color.B)*a, a)

	target.DrawImage(cmd.Image, op)
}

// commandGeoM builds the image-space to screen-space transform of a command.
func commandGeoM(cmd *DrawCommand) ebiten.GeoM {
	var m ebiten.GeoM
	b := cmd.Image.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	size := cmd.Size
	if size.X == 0 || size.Y == 0 {
		size = Vec2{w, h}
	}
	if w > 0 && h > 0 {
		m.Scale(size.X/w, size.Y/h)
	}
	m.Translate(cmd.Position.X-size.X/2, cmd.Position.Y-size.Y/2)
	return m
}

// Draw patches element styles, extracts the draw list into l and submits it
// to screen. A convenience for games that let the registry draw its own
// widgets; l is reused across frames.
func (r *Registry[S]) Draw(screen *ebiten.Image, l *DrawList) {
	PatchStyles(r)
	l.Reset()
	ExtractDrawList(r, l, 0)
	SubmitDrawList(screen, l)
}
