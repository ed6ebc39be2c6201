package touchstick

import "testing"

func TestFeedback_FixedIdle(t *testing.T) {
	s := newTestStick(t, ModeFixed)
	fb := s.Feedback()
	if fb.Anchor != (Vec2{100, 100}) {
		t.Errorf("Anchor = %v", fb.Anchor)
	}
	if !fb.Knob.Visible || !fb.Outline.Visible {
		t.Error("fixed elements should always be visible")
	}
	if fb.Knob.Offset != (Vec2{}) || fb.Outline.Offset != (Vec2{}) {
		t.Errorf("idle offsets = %v, %v", fb.Knob.Offset, fb.Outline.Offset)
	}
}

func TestFeedback_FixedKnobHalfTravel(t *testing.T) {
	s := newTestStick(t, ModeFixed)
	s.Begin(1, Vec2{100, 100})
	s.Update(1, Vec2{300, 100})
	s.Recompute()
	if s.Value() != (Vec2{1, 0}) {
		t.Fatalf("value = %v", s.Value())
	}
	fb := s.Feedback()
	if fb.Knob.Offset != (Vec2{50, 0}) {
		t.Errorf("knob offset = %v, want (50, 0)", fb.Knob.Offset)
	}
	if fb.Outline.Offset != (Vec2{}) {
		t.Errorf("outline offset = %v, want zero", fb.Outline.Offset)
	}
}

func TestFeedback_FixedYFlip(t *testing.T) {
	s := newTestStick(t, ModeFixed)
	s.Begin(1, Vec2{100, 100})
	s.Update(1, Vec2{100, 75}) // 25px up
	s.Recompute()
	if s.Value() != (Vec2{0, 0.25}) {
		t.Fatalf("value = %v", s.Value())
	}
	if off := s.Feedback().Knob.Offset; off != (Vec2{0, -25}) {
		t.Errorf("knob offset = %v, want (0, -25)", off)
	}
}

func TestFeedback_Floating(t *testing.T) {
	s := newTestStick(t, ModeFloating)
	fb := s.Feedback()
	if fb.Knob.Visible || fb.Outline.Visible {
		t.Error("floating should be hidden when idle")
	}

	s.Begin(1, Vec2{60, 60})
	s.Recompute()
	if s.Feedback().Knob.Visible {
		t.Error("floating should be hidden while the value is zero")
	}

	s.Update(1, Vec2{60, 10})
	s.Recompute()
	fb = s.Feedback()
	if !fb.Knob.Visible || !fb.Outline.Visible {
		t.Fatal("floating should be visible while dragged")
	}
	if fb.Anchor != (Vec2{60, 60}) {
		t.Errorf("Anchor = %v, want drag start", fb.Anchor)
	}
	if fb.Knob.Offset != (Vec2{0, -50}) {
		t.Errorf("knob offset = %v, want (0, -50)", fb.Knob.Offset)
	}

	s.End(1)
	if s.Feedback().Knob.Visible {
		t.Error("floating should hide after release")
	}
}

func TestFeedback_Dynamic(t *testing.T) {
	s := newTestStick(t, ModeDynamic)
	if fb := s.Feedback(); fb.Anchor != (Vec2{100, 100}) || !fb.Knob.Visible {
		t.Errorf("idle dynamic feedback = %+v", fb)
	}

	s.Begin(1, Vec2{40, 160})
	s.Update(1, Vec2{80, 160})
	s.Recompute()
	fb := s.Feedback()
	if fb.Anchor != (Vec2{40, 160}) {
		t.Errorf("Anchor = %v", fb.Anchor)
	}
	if fb.Knob.Offset != (Vec2{40, 0}) {
		t.Errorf("knob offset = %v, want (40, 0)", fb.Knob.Offset)
	}
	if fb.Outline.Offset != (Vec2{10, 0}) {
		t.Errorf("outline offset = %v, want (10, 0)", fb.Outline.Offset)
	}

	s.End(1)
	fb = s.Feedback()
	if fb.Anchor != (Vec2{40, 160}) {
		t.Errorf("anchor after release = %v, want last base", fb.Anchor)
	}
	if fb.Knob.Offset != (Vec2{}) || fb.Outline.Offset != (Vec2{}) {
		t.Errorf("offsets after release = %v, %v", fb.Knob.Offset, fb.Outline.Offset)
	}
}

func TestFeedback_FloatingFollowsStart(t *testing.T) {
	s := newTestStick(t, ModeFloating)
	s.Begin(1, Vec2{50, 50})
	s.Update(1, Vec2{50, 80})
	s.Recompute()
	fb := s.Feedback()
	if fb.Anchor != (Vec2{50, 50}) {
		t.Errorf("Anchor = %v, want (50, 50)", fb.Anchor)
	}
	if !approxEqual(fb.Knob.Offset.X, 0, epsilon) || !approxEqual(fb.Knob.Offset.Y, 30, epsilon) {
		t.Errorf("knob offset = %v, want (0, 30)", fb.Knob.Offset)
	}
	if fb.Outline.Offset != (Vec2{}) {
		t.Errorf("outline offset = %v, want zero", fb.Outline.Offset)
	}
}

func TestFeedback_DynamicRebasesOnNextDrag(t *testing.T) {
	s := newTestStick(t, ModeDynamic)
	drags := []struct {
		start, move Vec2
	}{
		{Vec2{40, 160}, Vec2{80, 160}},
		{Vec2{150, 30}, Vec2{150, 60}},
		{Vec2{100, 100}, Vec2{70, 100}},
	}
	for i, d := range drags {
		if !s.Begin(1, d.start) {
			t.Fatalf("drag %d: Begin at %v failed", i, d.start)
		}
		s.Update(1, d.move)
		s.Recompute()
		if fb := s.Feedback(); fb.Anchor != d.start {
			t.Errorf("drag %d: anchor = %v, want %v", i, fb.Anchor, d.start)
		}
		s.End(1)
		if fb := s.Feedback(); fb.Anchor != d.start {
			t.Errorf("drag %d: anchor after release = %v, want %v", i, fb.Anchor, d.start)
		}
	}
}

func TestPositionFeedback_Pure(t *testing.T) {
	in := FeedbackInput{
		Mode:    ModeDynamic,
		Value:   Vec2{0.25, -0.5},
		Radius:  80,
		Center:  Vec2{10, 10},
		Session: session(Vec2{5, 5}, Vec2{5, 5}, Vec2{25, 45}),
	}
	a := PositionFeedback(in)
	b := PositionFeedback(in)
	if a != b {
		t.Errorf("PositionFeedback not deterministic: %+v vs %+v", a, b)
	}
	if a.Knob.Offset != (Vec2{20, 40}) {
		t.Errorf("knob offset = %v, want (20, 40)", a.Knob.Offset)
	}
}

// Both renderers must place every element at the same screen position.
func TestRenderersAgree(t *testing.T) {
	drags := []struct{ from, to Vec2 }{
		{Vec2{100, 100}, Vec2{100, 100}},
		{Vec2{100, 100}, Vec2{137.3, 81.9}},
		{Vec2{20, 180}, Vec2{260, -40}},
		{Vec2{150, 50}, Vec2{149, 52}},
	}
	for _, m := range []Mode{ModeFixed, ModeFloating, ModeDynamic} {
		for i, d := range drags {
			r := NewRegistry[string]()
			s, err := r.Add("s", Config{Mode: m, Radius: 100, DeadZone: 3})
			if err != nil {
				t.Fatal(err)
			}
			s.Container = ContainerAt(Rect{Width: 200, Height: 200})
			img := testImage()
			s.Knob.Image, s.Outline.Image = img, img

			r.PointerDown(1, d.from)
			r.PointerMove(1, d.to)
			r.RecomputeAll()

			PatchStyles(r)
			var l DrawList
			ExtractDrawList(r, &l, 0)

			for _, cmd := range l.Commands {
				st := s.Knob.Style
				if cmd.Element == ElementOutline {
					st = s.Outline.Style
				}
				if st.Display != DisplayFlex {
					t.Errorf("%v drag %d: %v drawn but display none", m, i, cmd.Element)
				}
				center := s.Container.Center()
				got := Vec2{center.X + st.Left, center.Y + st.Top}
				if !approxEqual(got.X, cmd.Position.X, epsilon) || !approxEqual(got.Y, cmd.Position.Y, epsilon) {
					t.Errorf("%v drag %d: %v styled at %v, drawn at %v",
						m, i, cmd.Element, got, cmd.Position)
				}
			}
			visible := 0
			if s.Knob.Style.Display == DisplayFlex {
				visible++
			}
			if s.Outline.Style.Display == DisplayFlex {
				visible++
			}
			if visible != len(l.Commands) {
				t.Errorf("%v drag %d: %d styled visible, %d commands", m, i, visible, len(l.Commands))
			}
		}
	}
}
