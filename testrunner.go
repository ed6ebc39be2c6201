package touchstick

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action  string  `json:"action"`
	Pointer uint64  `json:"pointer,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	FromX   float64 `json:"fromX,omitempty"`
	FromY   float64 `json:"fromY,omitempty"`
	ToX     float64 `json:"toX,omitempty"`
	ToY     float64 `json:"toY,omitempty"`
	Frames  int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected pointer gestures across frames for automated
// runs of a game. Attach it with Registry.SetTestRunner.
//
// Supported actions: press, move, release, cancel (all take "pointer", "x",
// "y"), tap, drag (mouse only) and wait.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached with SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "press", "move", "release", "cancel", "tap", "drag", "wait":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner. Its step method runs at the start of
// every Update, before input is processed.
func (r *Registry[S]) SetTestRunner(runner *TestRunner) {
	r.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (t *TestRunner) Done() bool {
	return t.done
}

// step advances the test runner by one frame. Called from Registry.Update.
func (t *TestRunner) step(r stepTarget) {
	if t.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if r.PendingInjections() > 0 {
		return
	}
	if t.waitCount > 0 {
		t.waitCount--
		return
	}
	if t.cursor >= len(t.steps) {
		t.done = true
		return
	}

	st := t.steps[t.cursor]
	t.cursor++

	id := PointerID(st.Pointer)
	switch st.Action {
	case "press":
		r.InjectPointer(id, st.X, st.Y, true)
	case "move":
		r.queue(syntheticPointerEvent{pointer: id, x: st.X, y: st.Y, action: actionMove})
	case "release":
		r.InjectPointer(id, st.X, st.Y, false)
	case "cancel":
		r.InjectCancel(id)
	case "tap":
		r.InjectPress(st.X, st.Y)
		r.InjectRelease(st.X, st.Y)
	case "drag":
		r.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "wait":
		if st.Frames > 0 {
			t.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if t.cursor >= len(t.steps) && t.waitCount == 0 && r.PendingInjections() == 0 {
		t.done = true
	}
}

// stepTarget is the injection surface a TestRunner drives. Registry[S]
// satisfies it for every S.
type stepTarget interface {
	PendingInjections() int
	InjectPointer(id PointerID, x, y float64, pressed bool)
	InjectCancel(id PointerID)
	InjectPress(x, y float64)
	InjectRelease(x, y float64)
	InjectDrag(fromX, fromY, toX, toY float64, frames int)
	queue(evt syntheticPointerEvent)
}
