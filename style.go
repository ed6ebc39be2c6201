package touchstick

// Display is the layout display flag of a widget element.
type Display uint8

const (
	DisplayNone Display = iota // element is not laid out or drawn
	DisplayFlex                // element is shown
)

// Style is the per-frame layout patch for a knob or outline element. Left and
// Top are pixel offsets (y down) from the container center, which is where a
// retained UI lays the widget out. A Floating or Dynamic widget anchored at a
// drag start elsewhere carries that displacement in both elements.
type Style struct {
	Left, Top float64
	Display   Display
}

// PatchStyles writes every stick's feedback into its Knob.Style and
// Outline.Style. The display flag is always written; offsets are only written
// while the container is visible and has a non-zero size, so a hidden widget
// keeps its last laid-out offsets.
func PatchStyles[S comparable](r *Registry[S]) {
	for _, s := range r.Sticks() {
		PatchStickStyle(s)
	}
}

// PatchStickStyle applies the current feedback of one stick to its element styles.
func PatchStickStyle[S comparable](s *Stick[S]) {
	fb := s.Feedback()
	live := s.Container.Visible && s.Container.HasArea()
	shift := fb.Anchor.Sub(s.Container.Center())
	patchElement(&s.Knob.Style, fb.Knob, shift, live)
	patchElement(&s.Outline.Style, fb.Outline, shift, live)
}

func patchElement(st *Style, p Placement, shift Vec2, live bool) {
	if !p.Visible {
		st.Display = DisplayNone
		return
	}
	st.Display = DisplayFlex
	if live {
		st.Left = shift.X + p.Offset.X
		st.Top = shift.Y + p.Offset.Y
	}
}
