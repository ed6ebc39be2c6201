package touchstick

import "github.com/hajimehoshi/ebiten/v2"

// Emulated gamepad identity.
const (
	// TouchGamepadID identifies the emulated gamepad; chosen to stay clear of
	// ids assigned to physical devices.
	TouchGamepadID = 51492
	// TouchGamepadName is reported with the connect event.
	TouchGamepadName = "touchstick"
)

// GamepadMapping pairs a stick with two standard gamepad axes.
type GamepadMapping struct {
	X, Y ebiten.StandardGamepadAxis
}

// Default mappings.
var (
	LeftStickMapping = GamepadMapping{
		X: ebiten.StandardGamepadAxisLeftStickHorizontal,
		Y: ebiten.StandardGamepadAxisLeftStickVertical,
	}
	RightStickMapping = GamepadMapping{
		X: ebiten.StandardGamepadAxisRightStickHorizontal,
		Y: ebiten.StandardGamepadAxisRightStickVertical,
	}
)

// GamepadEventKind identifies a kind of emulated gamepad event.
type GamepadEventKind uint8

const (
	GamepadConnected    GamepadEventKind = iota // first mapped stick appeared
	GamepadDisconnected                         // last mapped stick went away
	GamepadAxisChanged                          // per-frame axis value
)

// GamepadEvent is published by the bridge.
type GamepadEvent struct {
	Kind      GamepadEventKind
	GamepadID int
	Name      string // set on GamepadConnected
	Axis      ebiten.StandardGamepadAxis
	// Value follows the standard layout: horizontal axes grow to the right,
	// vertical axes grow downward (so a stick pushed up reads negative).
	Value float64
}

// GamepadSink receives events from a GamepadBridge.
type GamepadSink interface {
	EmitGamepadEvent(GamepadEvent)
}

// GamepadSinkFunc adapts a function to GamepadSink.
type GamepadSinkFunc func(GamepadEvent)

// EmitGamepadEvent calls f(e).
func (f GamepadSinkFunc) EmitGamepadEvent(e GamepadEvent) { f(e) }

// GamepadEventQueue is a FIFO GamepadSink drained by the consumer.
type GamepadEventQueue struct {
	items []GamepadEvent
}

// EmitGamepadEvent appends an event.
func (q *GamepadEventQueue) EmitGamepadEvent(e GamepadEvent) {
	q.items = append(q.items, e)
}

// Drain returns all queued events and clears the queue.
func (q *GamepadEventQueue) Drain() []GamepadEvent {
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// AxisSample is the settled value of one mapped stick for a frame.
type AxisSample struct {
	Mapping GamepadMapping
	Value   Vec2 // stick value, y up
}

// GamepadBridge republishes stick values as an emulated gamepad. The gamepad
// is connected while at least one mapped stick exists; connection changes are
// emitted once per transition.
type GamepadBridge struct {
	sink      GamepadSink
	connected bool
}

// NewGamepadBridge creates a disconnected bridge publishing to sink.
func NewGamepadBridge(sink GamepadSink) *GamepadBridge {
	return &GamepadBridge{sink: sink}
}

// Connected reports whether the emulated gamepad is currently connected.
func (b *GamepadBridge) Connected() bool { return b.connected }

// Close emits a disconnect if the gamepad is connected. A later Update
// reconnects it.
func (b *GamepadBridge) Close() {
	if !b.connected {
		return
	}
	b.connected = false
	b.sink.EmitGamepadEvent(GamepadEvent{Kind: GamepadDisconnected, GamepadID: TouchGamepadID})
}

// Update publishes one frame. The connection event (if any) precedes the
// axis events of the same frame.
func (b *GamepadBridge) Update(samples []AxisSample) {
	connected := len(samples) > 0
	if connected != b.connected {
		b.connected = connected
		e := GamepadEvent{Kind: GamepadDisconnected, GamepadID: TouchGamepadID}
		if connected {
			e.Kind = GamepadConnected
			e.Name = TouchGamepadName
		}
		if globalDebug {
			debugf("gamepad %d connected=%v", TouchGamepadID, connected)
		}
		b.sink.EmitGamepadEvent(e)
	}
	if !connected {
		return
	}
	for _, s := range samples {
		b.sink.EmitGamepadEvent(GamepadEvent{
			Kind: GamepadAxisChanged, GamepadID: TouchGamepadID,
			Axis: s.Mapping.X, Value: s.Value.X,
		})
		b.sink.EmitGamepadEvent(GamepadEvent{
			Kind: GamepadAxisChanged, GamepadID: TouchGamepadID,
			Axis: s.Mapping.Y, Value: -s.Value.Y,
		})
	}
}
