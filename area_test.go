package touchstick

import "testing"

func TestHitShapes(t *testing.T) {
	tests := []struct {
		name  string
		shape HitShape
		x, y  float64
		want  bool
	}{
		{"rect inside", Rect{Width: 10, Height: 10}, 5, 5, true},
		{"rect edge", Rect{Width: 10, Height: 10}, 10, 10, true},
		{"rect outside", Rect{Width: 10, Height: 10}, 11, 5, false},
		{"circle inside", HitCircle{Center: Vec2{5, 5}, Radius: 5}, 8, 8, true},
		{"circle edge", HitCircle{Center: Vec2{5, 5}, Radius: 5}, 10, 5, true},
		{"circle outside", HitCircle{Center: Vec2{5, 5}, Radius: 5}, 9, 9, false},
		{"all", HitAll{}, -1e9, 1e9, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shape.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestInArea_ContainerBounds(t *testing.T) {
	s := newTestStick(t, ModeFixed)
	s.Container = ContainerAt(Rect{X: 100, Y: 100, Width: 50, Height: 50})
	if !s.InArea(Vec2{120, 120}) {
		t.Error("point inside container should hit")
	}
	if s.InArea(Vec2{90, 120}) {
		t.Error("point outside container should miss")
	}
}

func TestInArea_LocalShape(t *testing.T) {
	s := newTestStick(t, ModeFixed)
	s.Container = ContainerAt(Rect{X: 100, Y: 100, Width: 50, Height: 50})
	s.Area = HitCircle{Center: Vec2{25, 25}, Radius: 10}
	if !s.InArea(Vec2{125, 125}) {
		t.Error("center should hit")
	}
	if s.InArea(Vec2{101, 101}) {
		t.Error("container corner outside the circle should miss")
	}
}

func TestInArea_ScreenSpace(t *testing.T) {
	s := newTestStick(t, ModeFloating)
	s.Area = Rect{X: 0, Y: 300, Width: 400, Height: 300}
	s.ScreenSpaceArea = true
	if !s.InArea(Vec2{350, 500}) {
		t.Error("screen-space area should hit outside the container")
	}
	if s.InArea(Vec2{100, 100}) {
		t.Error("screen-space area replaces the container bounds")
	}

	s.Area = nil
	if s.InArea(Vec2{100, 100}) {
		t.Error("screen-space flag without an area never hits")
	}
}

func TestInArea_ZeroSize(t *testing.T) {
	s := newTestStick(t, ModeFixed)
	s.Container.Size = Vec2{}
	if s.InArea(Vec2{0, 0}) {
		t.Error("zero-size container should never hit")
	}
}
