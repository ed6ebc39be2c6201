package touchstick

// HitShape is an interaction region. Coordinates are container-local unless
// the owning stick sets ScreenSpaceArea. Rect, HitCircle and HitAll
// implement it.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitCircle is a round hit area, suited to a circular stick outline.
type HitCircle struct {
	Center Vec2
	Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	return Vec2{x, y}.Sub(c.Center).Len() <= c.Radius
}

// HitAll accepts every point. Useful with ScreenSpaceArea for sticks that can
// be grabbed anywhere on screen.
type HitAll struct{}

// Contains always reports true.
func (HitAll) Contains(x, y float64) bool { return true }

// InArea reports whether the screen-space point p lies inside the stick's
// interaction area. With no Area set, the container bounds are used; a
// container with zero size is never hit.
func (s *Stick[S]) InArea(p Vec2) bool {
	if s.ScreenSpaceArea {
		if s.Area == nil {
			return false
		}
		return s.Area.Contains(p.X, p.Y)
	}
	lx, ly := s.Container.WorldToLocal(p.X, p.Y)
	if s.Area != nil {
		return s.Area.Contains(lx, ly)
	}
	if !s.Container.HasArea() {
		return false
	}
	return lx >= 0 && lx <= s.Container.Size.X && ly >= 0 && ly <= s.Container.Size.Y
}
