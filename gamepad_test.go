package touchstick

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func countKind(events []GamepadEvent, kind GamepadEventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestGamepadBridge_ConnectOnce(t *testing.T) {
	var q GamepadEventQueue
	b := NewGamepadBridge(&q)
	samples := []AxisSample{{Mapping: LeftStickMapping}}

	for i := 0; i < 5; i++ {
		b.Update(samples)
	}
	events := q.Drain()
	if n := countKind(events, GamepadConnected); n != 1 {
		t.Errorf("connected events = %d, want 1", n)
	}
	if events[0].Kind != GamepadConnected || events[0].Name != TouchGamepadName {
		t.Errorf("first event = %+v", events[0])
	}
	if n := countKind(events, GamepadAxisChanged); n != 10 {
		t.Errorf("axis events = %d, want 10", n)
	}
	if !b.Connected() {
		t.Error("bridge should be connected")
	}
}

func TestGamepadBridge_DisconnectOnce(t *testing.T) {
	var q GamepadEventQueue
	b := NewGamepadBridge(&q)
	b.Update([]AxisSample{{Mapping: LeftStickMapping}})
	q.Drain()

	for i := 0; i < 3; i++ {
		b.Update(nil)
	}
	events := q.Drain()
	if len(events) != 1 || events[0].Kind != GamepadDisconnected {
		t.Errorf("events = %+v, want one disconnect", events)
	}
	if events[0].GamepadID != TouchGamepadID {
		t.Errorf("GamepadID = %d", events[0].GamepadID)
	}
}

func TestGamepadBridge_NothingWhileDisconnected(t *testing.T) {
	var q GamepadEventQueue
	b := NewGamepadBridge(&q)
	b.Update(nil)
	if events := q.Drain(); events != nil {
		t.Errorf("events = %+v", events)
	}
}

func TestGamepadBridge_AxisValues(t *testing.T) {
	var events []GamepadEvent
	b := NewGamepadBridge(GamepadSinkFunc(func(e GamepadEvent) {
		events = append(events, e)
	}))
	b.Update([]AxisSample{{Mapping: RightStickMapping, Value: Vec2{0.5, 0.75}}})

	if len(events) != 3 {
		t.Fatalf("events = %d, want 3", len(events))
	}
	x, y := events[1], events[2]
	if x.Axis != ebiten.StandardGamepadAxisRightStickHorizontal || x.Value != 0.5 {
		t.Errorf("x event = %+v", x)
	}
	// Pushed up reads negative on the standard vertical axis.
	if y.Axis != ebiten.StandardGamepadAxisRightStickVertical || y.Value != -0.75 {
		t.Errorf("y event = %+v", y)
	}
}

func TestRegistryGamepad(t *testing.T) {
	r := newTestRegistry(t)
	var q GamepadEventQueue
	r.SetGamepadSink(&q)

	s := addStick(t, r, "s", ModeFixed, Rect{Width: 200, Height: 200})
	r.Update()
	if events := q.Drain(); len(events) != 0 {
		t.Fatalf("unmapped stick produced events: %+v", events)
	}

	m := LeftStickMapping
	s.Mapping = &m
	r.InjectPress(100, 100)
	r.InjectMove(150, 100)
	r.Update()
	r.Update()
	events := q.Drain()
	if countKind(events, GamepadConnected) != 1 {
		t.Fatalf("events = %+v", events)
	}
	last := events[len(events)-2]
	if last.Axis != ebiten.StandardGamepadAxisLeftStickHorizontal || last.Value != 0.5 {
		t.Errorf("x axis = %+v, want 0.5", last)
	}

	r.Remove("s")
	r.Update()
	events = q.Drain()
	if len(events) != 1 || events[0].Kind != GamepadDisconnected {
		t.Errorf("events after remove = %+v", events)
	}
}

func TestRegistrySetGamepadSink_Replace(t *testing.T) {
	r := newTestRegistry(t)
	s := addStick(t, r, "s", ModeFixed, Rect{Width: 200, Height: 200})
	m := LeftStickMapping
	s.Mapping = &m

	var first, second GamepadEventQueue
	r.SetGamepadSink(&first)
	r.Update()
	if countKind(first.Drain(), GamepadConnected) != 1 {
		t.Fatal("first sink not connected")
	}

	r.SetGamepadSink(&second)
	if events := first.Drain(); len(events) != 1 || events[0].Kind != GamepadDisconnected {
		t.Errorf("first sink after replace = %+v, want one disconnect", events)
	}
	r.Update()
	events := second.Drain()
	if len(events) == 0 || events[0].Kind != GamepadConnected {
		t.Fatalf("second sink events = %+v, want connect first", events)
	}
	if countKind(events, GamepadAxisChanged) != 2 {
		t.Errorf("second sink axis events = %+v", events)
	}

	// Reattaching the same sink never yields two connects in a row.
	r.SetGamepadSink(&second)
	r.Update()
	r.SetGamepadSink(nil)
	r.Update()
	var kinds []GamepadEventKind
	for _, e := range second.Drain() {
		if e.Kind != GamepadAxisChanged {
			kinds = append(kinds, e.Kind)
		}
	}
	want := []GamepadEventKind{GamepadDisconnected, GamepadConnected, GamepadDisconnected}
	if len(kinds) != len(want) {
		t.Fatalf("connection events = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("connection event %d = %v, want %v", i, kinds[i], want[i])
		}
	}
}
