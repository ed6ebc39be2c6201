package touchstick

// Begin opens a drag session for pointer id at screen position pos.
//
// It is a no-op when the stick already has a session (sessions are never
// stolen) or when pos lies outside the interaction area. Fixed sticks anchor
// the session base at the container center; other modes anchor it at pos.
// Reports whether a session was opened.
func (s *Stick[S]) Begin(id PointerID, pos Vec2) bool {
	if s.session != nil || !s.InArea(pos) {
		return false
	}
	base := pos
	if s.Mode == ModeFixed {
		base = s.Container.Center()
	}
	s.session = &DragSession{
		DragID:          id,
		Mode:            s.Mode,
		BasePosition:    base,
		StartPosition:   pos,
		CurrentPosition: pos,
	}
	s.anchor = base
	s.anchored = true
	if globalDebug {
		debugf("stick %v: session %d opened at (%.1f, %.1f) mode=%v", s.ID, id, pos.X, pos.Y, s.Mode)
	}
	return true
}

// Update moves the current position of the session owned by pointer id.
// Events for another pointer, or with no session open, are dropped.
func (s *Stick[S]) Update(id PointerID, pos Vec2) bool {
	if s.session == nil || s.session.DragID != id {
		return false
	}
	s.session.CurrentPosition = pos
	return true
}

// End closes the session owned by pointer id and immediately recomputes the
// value, so no stale value survives the release. A configuration deferred by
// Reconfigure is applied here. Events for another pointer are dropped.
func (s *Stick[S]) End(id PointerID) bool {
	if s.session == nil || s.session.DragID != id {
		return false
	}
	s.session = nil
	if s.pending != nil {
		if globalDebug {
			debugf("stick %v: applying deferred reconfigure", s.ID)
		}
		s.apply(*s.pending)
	}
	s.Recompute()
	if globalDebug {
		debugf("stick %v: session %d closed", s.ID, id)
	}
	return true
}

// Cancel closes the session owned by pointer id after a gesture cancellation.
// Same semantics as End.
func (s *Stick[S]) Cancel(id PointerID) bool {
	return s.End(id)
}
