package touchstick

// dynamicOutlineFollow is the fraction of the knob offset applied to a Dynamic
// outline.
const dynamicOutlineFollow = 0.25

// Placement is the computed display state of one widget element.
type Placement struct {
	// Offset is in screen pixels (y down), relative to Feedback.Anchor.
	Offset  Vec2
	Visible bool
}

// Feedback is the per-frame visual state of a stick: where the widget is
// anchored on screen and how the knob and outline sit relative to it.
type Feedback struct {
	Anchor  Vec2
	Knob    Placement
	Outline Placement
}

// FeedbackInput collects everything PositionFeedback reads.
type FeedbackInput struct {
	Mode    Mode
	Value   Vec2
	Radius  float64
	Center  Vec2         // container center in screen space
	Session *DragSession // nil when idle
	// Anchor is the base of the most recent session; used by Dynamic sticks
	// when idle. Ignored unless Anchored is set.
	Anchor   Vec2
	Anchored bool
}

// PositionFeedback computes knob and outline placement for one stick.
// Every renderer goes through this function so that all of them agree on
// pixel offsets.
func PositionFeedback(in FeedbackInput) Feedback {
	switch in.Mode {
	case ModeFixed:
		return Feedback{
			Anchor:  in.Center,
			Knob:    Placement{Offset: FixedKnobClamp(in.Value).FlipY().Scale(in.Radius), Visible: true},
			Outline: Placement{Visible: true},
		}

	case ModeFloating:
		if in.Session == nil || in.Value.IsZero() {
			return Feedback{Anchor: in.Center}
		}
		return Feedback{
			Anchor:  in.Session.StartPosition,
			Knob:    Placement{Offset: in.Value.FlipY().Scale(in.Radius), Visible: true},
			Outline: Placement{Visible: true},
		}

	case ModeDynamic:
		anchor := in.Center
		switch {
		case in.Session != nil:
			anchor = in.Session.BasePosition
		case in.Anchored:
			anchor = in.Anchor
		}
		knob := in.Value.FlipY().Scale(in.Radius)
		return Feedback{
			Anchor:  anchor,
			Knob:    Placement{Offset: knob, Visible: true},
			Outline: Placement{Offset: knob.Scale(dynamicOutlineFollow), Visible: true},
		}
	}
	return Feedback{Anchor: in.Center}
}

// FeedbackInput returns the positioner input for the stick's current state.
func (s *Stick[S]) FeedbackInput() FeedbackInput {
	return FeedbackInput{
		Mode:     s.activeMode(),
		Value:    s.value,
		Radius:   s.radius,
		Center:   s.Container.Center(),
		Session:  s.session,
		Anchor:   s.anchor,
		Anchored: s.anchored,
	}
}

// Feedback computes the stick's current knob and outline placement.
func (s *Stick[S]) Feedback() Feedback {
	return PositionFeedback(s.FeedbackInput())
}
