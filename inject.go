package touchstick

// pointerAction is the kind of an injected pointer event.
type pointerAction uint8

const (
	actionPress pointerAction = iota
	actionMove
	actionRelease
	actionCancel
)

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates.
type syntheticPointerEvent struct {
	pointer PointerID
	x, y    float64
	action  pointerAction
}

// InjectPress queues a mouse press at the given screen coordinates. The event
// is consumed on the next frame's Update.
func (r *Registry[S]) InjectPress(x, y float64) {
	r.InjectPointer(MousePointer, x, y, true)
}

// InjectMove queues a mouse move with the button held. Use this between
// InjectPress and InjectRelease to simulate a drag. A move while the mouse
// is up only records the position; it never opens a session.
func (r *Registry[S]) InjectMove(x, y float64) {
	r.queue(syntheticPointerEvent{pointer: MousePointer, x: x, y: y, action: actionMove})
}

// InjectRelease queues a mouse release at the given screen coordinates.
func (r *Registry[S]) InjectRelease(x, y float64) {
	r.InjectPointer(MousePointer, x, y, false)
}

// InjectPointer queues a press (pressed=true) or release for an arbitrary
// pointer id, e.g. to simulate a second touch. A press for a pointer that is
// already down acts as a move.
func (r *Registry[S]) InjectPointer(id PointerID, x, y float64, pressed bool) {
	action := actionRelease
	if pressed {
		action = actionPress
	}
	r.queue(syntheticPointerEvent{pointer: id, x: x, y: y, action: action})
}

// InjectCancel queues a gesture cancellation for pointer id.
func (r *Registry[S]) InjectCancel(id PointerID) {
	r.queue(syntheticPointerEvent{pointer: id, action: actionCancel})
}

// InjectDrag queues a full mouse drag: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The sequence consumes `frames` frames; minimum is 2.
func (r *Registry[S]) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	r.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		r.InjectMove(x, y)
	}
	r.InjectRelease(toX, toY)
}

// PendingInjections returns the number of queued synthetic events.
func (r *Registry[S]) PendingInjections() int {
	return len(r.input.injectQueue)
}

func (r *Registry[S]) queue(evt syntheticPointerEvent) {
	r.input.injectQueue = append(r.input.injectQueue, evt)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed (hardware
// input is skipped for that frame).
func (r *Registry[S]) processInjectedInput() bool {
	q := r.input.injectQueue
	if len(q) == 0 {
		return false
	}
	evt := q[0]
	copy(q, q[1:])
	r.input.injectQueue = q[:len(q)-1]

	pos := Vec2{evt.x, evt.y}
	switch evt.action {
	case actionPress:
		r.processPointer(evt.pointer, pos, true)
	case actionMove:
		ps := r.input.pointers[evt.pointer]
		r.processPointer(evt.pointer, pos, ps != nil && ps.down)
	case actionRelease:
		r.processPointer(evt.pointer, pos, false)
	case actionCancel:
		r.cancelPointer(evt.pointer)
	}
	return true
}
