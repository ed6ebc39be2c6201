package touchstick

import "fmt"

// Registry owns every stick of one scene, keyed by identity, and runs the
// per-frame passes in a fixed order: input, value recompute, gamepad bridge.
// Rendering (PatchStyles, ExtractDrawList) runs afterwards from Draw.
//
// Registry is not safe for concurrent use; drive it from the game loop.
type Registry[S comparable] struct {
	sticks map[S]*Stick[S]
	order  []*Stick[S] // ZIndex-sorted, stable by insertion
	sorted bool

	input      inputState
	gamepad    *GamepadBridge
	testRunner *TestRunner
	debug      bool

	// OnMissingAsset is called by ExtractDrawList for each element whose
	// image is nil. Value computation is unaffected.
	OnMissingAsset func(id S, element ElementKind)
}

// NewRegistry creates an empty registry that polls Ebitengine mouse and touch
// input during Update.
func NewRegistry[S comparable]() *Registry[S] {
	return &Registry[S]{
		sticks: make(map[S]*Stick[S]),
		sorted: true,
		input:  newInputState(),
	}
}

// Add creates a stick for id and registers it. Fails on invalid configuration
// or when id is already registered.
func (r *Registry[S]) Add(id S, cfg Config) (*Stick[S], error) {
	if _, ok := r.sticks[id]; ok {
		return nil, fmt.Errorf("%w: %v", ErrDuplicateStick, id)
	}
	s, err := NewStick(id, cfg)
	if err != nil {
		return nil, fmt.Errorf("stick %v: %w", id, err)
	}
	r.sticks[id] = s
	r.order = append(r.order, s)
	r.sorted = false
	return s, nil
}

// Remove unregisters the stick for id. Any open session is discarded.
// Reports whether a stick was removed.
func (r *Registry[S]) Remove(id S) bool {
	s, ok := r.sticks[id]
	if !ok {
		return false
	}
	delete(r.sticks, id)
	for i, o := range r.order {
		if o == s {
			copy(r.order[i:], r.order[i+1:])
			r.order[len(r.order)-1] = nil
			r.order = r.order[:len(r.order)-1]
			break
		}
	}
	return true
}

// Get returns the stick registered for id.
func (r *Registry[S]) Get(id S) (*Stick[S], bool) {
	s, ok := r.sticks[id]
	return s, ok
}

// Value returns the current value of the stick for id, or the zero vector if
// no such stick exists.
func (r *Registry[S]) Value(id S) Vec2 {
	if s, ok := r.sticks[id]; ok {
		return s.value
	}
	return Vec2{}
}

// Len returns the number of registered sticks.
func (r *Registry[S]) Len() int {
	return len(r.sticks)
}

// Sticks returns the sticks in stacking order (bottom first). The returned
// slice MUST NOT be mutated.
func (r *Registry[S]) Sticks() []*Stick[S] {
	r.sortSticks()
	return r.order
}

// sortSticks orders sticks by ZIndex with a stable insertion sort; the list
// is short and usually already sorted.
func (r *Registry[S]) sortSticks() {
	if r.sorted {
		for i := 1; i < len(r.order); i++ {
			if r.order[i-1].ZIndex > r.order[i].ZIndex {
				r.sorted = false
				break
			}
		}
		if r.sorted {
			return
		}
	}
	for i := 1; i < len(r.order); i++ {
		key := r.order[i]
		j := i - 1
		for j >= 0 && r.order[j].ZIndex > key.ZIndex {
			r.order[j+1] = r.order[j]
			j--
		}
		r.order[j+1] = key
	}
	r.sorted = true
}

// --- Pointer dispatch ---

// PointerDown offers a new pointer to the sticks, topmost first. The first
// idle stick whose interaction area contains pos opens a session. A pointer
// that already owns a session is ignored. Reports whether a session opened.
func (r *Registry[S]) PointerDown(id PointerID, pos Vec2) bool {
	r.sortSticks()
	for _, s := range r.order {
		if s.session != nil && s.session.DragID == id {
			return false
		}
	}
	for i := len(r.order) - 1; i >= 0; i-- {
		if r.order[i].Begin(id, pos) {
			return true
		}
	}
	return false
}

// PointerMove forwards a pointer move to every stick; only the session owned
// by id accepts it.
func (r *Registry[S]) PointerMove(id PointerID, pos Vec2) {
	for _, s := range r.order {
		s.Update(id, pos)
	}
}

// PointerUp ends the session owned by id, if any.
func (r *Registry[S]) PointerUp(id PointerID) {
	for _, s := range r.order {
		s.End(id)
	}
}

// PointerCancel cancels the session owned by id, if any.
func (r *Registry[S]) PointerCancel(id PointerID) {
	for _, s := range r.order {
		s.Cancel(id)
	}
}

// --- Frame passes ---

// Update runs one frame: scripted steps, pointer input, value recompute and
// the gamepad bridge, strictly in that order.
func (r *Registry[S]) Update() {
	if r.testRunner != nil {
		r.testRunner.step(r)
	}
	r.processInput()
	r.RecomputeAll()
	if r.gamepad != nil {
		r.gamepad.Update(r.gamepadSamples())
	}
	if r.debug {
		r.debugLog()
	}
}

// RecomputeAll re-derives every stick value from its session.
func (r *Registry[S]) RecomputeAll() {
	for _, s := range r.order {
		s.Recompute()
	}
}

// SetGamepadSink attaches an emulated gamepad bridge publishing to sink.
// A connected gamepad on the previous sink is disconnected first, so every
// sink sees balanced connect and disconnect events. Passing nil detaches.
func (r *Registry[S]) SetGamepadSink(sink GamepadSink) {
	if r.gamepad != nil {
		r.gamepad.Close()
	}
	if sink == nil {
		r.gamepad = nil
		return
	}
	r.gamepad = NewGamepadBridge(sink)
}

func (r *Registry[S]) gamepadSamples() []AxisSample {
	var out []AxisSample
	for _, s := range r.order {
		if s.Mapping == nil {
			continue
		}
		out = append(out, AxisSample{Mapping: *s.Mapping, Value: s.value})
	}
	return out
}

// SetDebugMode enables or disables debug logging of session and draw events
// to stderr.
func (r *Registry[S]) SetDebugMode(enabled bool) {
	r.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Registry debug flag so that stick
// operations (which lack a Registry pointer) can check it cheaply.
var globalDebug bool
