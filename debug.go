package touchstick

import (
	"fmt"
	"io"
	"os"
)

// debugOutput receives debug lines. Tests swap it for a buffer.
var debugOutput io.Writer = os.Stderr

// debugf prints one prefixed debug line.
func debugf(format string, args ...any) {
	_, _ = fmt.Fprintf(debugOutput, "[touchstick] "+format+"\n", args...)
}

// debugLog prints per-frame stick state. Only lines for sticks with an open
// session or a non-zero value are printed.
func (r *Registry[S]) debugLog() {
	if !r.debug {
		return
	}
	active := 0
	for _, s := range r.order {
		if s.session == nil && s.value.IsZero() {
			continue
		}
		if s.session != nil {
			active++
		}
		debugf("stick %v: mode=%v value=(%.3f, %.3f) active=%v", s.ID, s.Mode, s.value.X, s.value.Y, s.session != nil)
	}
	if active > 0 {
		debugf("sticks: %d | active sessions: %d | queued injections: %d",
			len(r.order), active, len(r.input.injectQueue))
	}
}
