package touchstick

// fixedKnobTravel bounds the drawn Fixed-mode knob to half the outline radius.
const fixedKnobTravel = 0.5

// ComputeValue derives the normalized stick value for a session.
//
// The displacement is measured from the mode's anchor: the static center
// (BasePosition) for Fixed, StartPosition for Floating, and BasePosition for
// Dynamic. Displacements shorter than deadZone read as zero; a displacement of
// exactly deadZone is not suppressed. The result is delta/radius clamped to the
// closed unit disk, with y flipped so that dragging up yields a positive Y.
//
// A nil session always yields the zero vector.
func ComputeValue(mode Mode, session *DragSession, radius, deadZone float64) Vec2 {
	if session == nil || !(radius > 0) {
		return Vec2{}
	}

	var anchor Vec2
	switch mode {
	case ModeFloating:
		anchor = session.StartPosition
	case ModeFixed, ModeDynamic:
		anchor = session.BasePosition
	default:
		return Vec2{}
	}

	delta := session.CurrentPosition.Sub(anchor)
	if delta.Len() < deadZone {
		return Vec2{}
	}
	return Vec2{delta.X / radius, (anchor.Y - session.CurrentPosition.Y) / radius}.ClampLength(1)
}

// FixedKnobClamp limits a stick value to the drawn travel of a Fixed knob:
// each axis is clamped to [-0.5, 0.5], then the length is clamped to 0.5.
// It applies to rendering only; the reported value keeps its unit-disk range.
func FixedKnobClamp(v Vec2) Vec2 {
	return v.Clamp(-fixedKnobTravel, fixedKnobTravel).ClampLength(fixedKnobTravel)
}

// Recompute re-derives the stick value from its current session.
// Idempotent: an unchanged session always yields the same value.
func (s *Stick[S]) Recompute() Vec2 {
	s.value = ComputeValue(s.activeMode(), s.session, s.radius, s.deadZone)
	return s.value
}
