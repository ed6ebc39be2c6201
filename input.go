package touchstick

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// maxTouchSlots bounds the number of simultaneously tracked touches.
const maxTouchSlots = 9

// touchPointerBase offsets touch slot numbers so they never collide with
// MousePointer. Touch slot i maps to PointerID(touchPointerBase + i).
const touchPointerBase = 1

// --- Per-pointer state ---

type pointerState struct {
	down bool
	last Vec2
}

// inputState tracks hardware and injected pointers between frames.
type inputState struct {
	pointers     map[PointerID]*pointerState
	touchMap     [maxTouchSlots]ebiten.TouchID
	touchUsed    [maxTouchSlots]bool
	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticPointerEvent

	// pollDisabled turns off Ebitengine polling; injected events still flow.
	pollDisabled bool
}

func newInputState() inputState {
	return inputState{pointers: make(map[PointerID]*pointerState)}
}

// SetPointerPolling enables or disables reading mouse and touch state from
// Ebitengine during Update. Hosts that deliver events themselves through
// PointerDown/PointerMove/PointerUp should disable it.
func (r *Registry[S]) SetPointerPolling(enabled bool) {
	r.input.pollDisabled = !enabled
}

// processInput is called from Update. An injected event, when queued, replaces
// hardware input for that frame.
func (r *Registry[S]) processInput() {
	if r.processInjectedInput() {
		return
	}
	if r.input.pollDisabled {
		return
	}
	r.processMousePointer()
	r.processTouchPointers()
}

// processMousePointer handles the left mouse button as MousePointer.
func (r *Registry[S]) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	r.processPointer(MousePointer, Vec2{float64(mx), float64(my)}, pressed)
}

// processTouchPointers handles touch contacts, one pointer per slot.
func (r *Registry[S]) processTouchPointers() {
	in := &r.input
	touchIDs := ebiten.AppendTouchIDs(in.prevTouchIDs[:0])
	in.prevTouchIDs = touchIDs

	var activeSlots [maxTouchSlots]bool
	for _, tid := range touchIDs {
		slot := in.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		r.processPointer(touchPointer(slot), Vec2{float64(tx), float64(ty)}, true)
	}

	// Release any touch slots that are no longer active.
	for i := 0; i < maxTouchSlots; i++ {
		if in.touchUsed[i] && !activeSlots[i] {
			id := touchPointer(i)
			if ps := in.pointers[id]; ps != nil && ps.down {
				r.processPointer(id, ps.last, false)
			}
			in.touchUsed[i] = false
			in.touchMap[i] = 0
		}
	}
}

func touchPointer(slot int) PointerID {
	return PointerID(touchPointerBase + slot)
}

// touchSlot maps an ebiten.TouchID to a slot index.
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (in *inputState) touchSlot(tid ebiten.TouchID) int {
	for i := 0; i < maxTouchSlots; i++ {
		if in.touchUsed[i] && in.touchMap[i] == tid {
			return i
		}
	}
	for i := 0; i < maxTouchSlots; i++ {
		if !in.touchUsed[i] {
			in.touchUsed[i] = true
			in.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the press/move/release state machine for one pointer
// and forwards transitions to the sticks.
func (r *Registry[S]) processPointer(id PointerID, pos Vec2, pressed bool) {
	ps := r.input.pointers[id]
	if ps == nil {
		ps = &pointerState{}
		r.input.pointers[id] = ps
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.last = pos
		r.PointerDown(id, pos)
	case !pressed && ps.down:
		if pos != ps.last {
			r.PointerMove(id, pos)
		}
		r.PointerUp(id)
		ps.down = false
		ps.last = pos
	case pressed && ps.down:
		if pos != ps.last {
			r.PointerMove(id, pos)
		}
		ps.last = pos
	default:
		ps.last = pos
	}
}

// cancelPointer drops a pointer without a release position.
func (r *Registry[S]) cancelPointer(id PointerID) {
	if ps := r.input.pointers[id]; ps != nil {
		ps.down = false
	}
	r.PointerCancel(id)
}
