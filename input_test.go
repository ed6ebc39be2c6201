package touchstick

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestProcessPointer_Transitions(t *testing.T) {
	r := newTestRegistry(t)
	s := addStick(t, r, "s", ModeFixed, Rect{Width: 200, Height: 200})

	// Hover without press does nothing.
	r.processPointer(MousePointer, Vec2{100, 100}, false)
	if s.Active() {
		t.Fatal("hover opened a session")
	}

	r.processPointer(MousePointer, Vec2{100, 100}, true)
	if !s.Active() {
		t.Fatal("press did not open a session")
	}

	r.processPointer(MousePointer, Vec2{160, 100}, true)
	if ses, _ := s.Session(); ses.CurrentPosition != (Vec2{160, 100}) {
		t.Errorf("CurrentPosition = %v", ses.CurrentPosition)
	}

	// Release at a new position: the move is applied before the session ends.
	r.processPointer(MousePointer, Vec2{170, 100}, false)
	if s.Active() {
		t.Error("release did not close the session")
	}
}

func TestProcessPointer_PressOutsideThenDragIn(t *testing.T) {
	r := newTestRegistry(t)
	s := addStick(t, r, "s", ModeFloating, Rect{Width: 100, Height: 100})

	r.processPointer(5, Vec2{500, 500}, true)
	r.processPointer(5, Vec2{50, 50}, true)
	if s.Active() {
		t.Error("dragging into the area must not open a session")
	}
}

func TestCancelPointer(t *testing.T) {
	r := newTestRegistry(t)
	s := addStick(t, r, "s", ModeFloating, Rect{Width: 100, Height: 100})
	r.processPointer(5, Vec2{50, 50}, true)
	r.cancelPointer(5)
	if s.Active() {
		t.Error("cancel did not close the session")
	}
	// The next press is a fresh press.
	r.processPointer(5, Vec2{50, 50}, true)
	if !s.Active() {
		t.Error("press after cancel should open a session")
	}
}

func TestTouchSlot(t *testing.T) {
	in := newInputState()
	a := in.touchSlot(10)
	b := in.touchSlot(20)
	if a == b || a < 0 || b < 0 {
		t.Fatalf("slots %d %d", a, b)
	}
	if in.touchSlot(10) != a {
		t.Error("same touch id should keep its slot")
	}
	for i := 2; i < maxTouchSlots; i++ {
		if in.touchSlot(ebiten.TouchID(100+i)) < 0 {
			t.Fatalf("slot %d not allocated", i)
		}
	}
	if in.touchSlot(999) != -1 {
		t.Error("expected -1 when all slots are used")
	}
}

func TestTouchPointer_DistinctFromMouse(t *testing.T) {
	for i := 0; i < maxTouchSlots; i++ {
		if touchPointer(i) == MousePointer {
			t.Fatalf("slot %d collides with MousePointer", i)
		}
	}
}
