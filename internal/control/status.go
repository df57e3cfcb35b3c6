package control

import (
	"fmt"
	"strings"

	"github.com/Faultbox/orrery/internal/solar"
)

// Title formats the window title shown once per second.
func Title(app string, fps int, sys *solar.System, following string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s | %d fps | t=%.1fs x%g", app, fps, sys.Time(), sys.TimeScale())
	if sys.Paused() {
		b.WriteString(" | paused")
	}
	if following != "" {
		b.WriteString(" | following ")
		b.WriteString(following)
	}
	return b.String()
}
