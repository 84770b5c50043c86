package aspen

import (
	"fmt"
	"os"
)

// SetDebugMode enables or disables debug logging. When enabled, gesture
// transitions, rejected presses, and swallowed releases are logged to stderr.
func (d *DragInteraction) SetDebugMode(enabled bool) {
	d.debug = enabled
}

// debugLog prints one diagnostic line to stderr. No-op unless debug mode is on.
func (d *DragInteraction) debugLog(format string, args ...any) {
	if !d.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[aspen] "+format+"\n", args...)
}

// defaultPanicLog reports a recovered callback panic to stderr. Used when no
// panic handler is set on the interaction.
func defaultPanicLog(event EventType, recovered any) {
	_, _ = fmt.Fprintf(os.Stderr, "[aspen] recovered panic in %s callback: %v\n", event, recovered)
}
