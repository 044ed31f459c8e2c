package render

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/lixenwraith/oddball-pong/status"
)

// StatusLine formats integer metrics, then float metrics, as name=value sorted by name
func StatusLine(reg *status.Registry) string {
	var sb strings.Builder
	sep := func() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
	}
	reg.Ints.Range(func(key string, ptr *atomic.Int64) {
		sep()
		fmt.Fprintf(&sb, "%s=%d", key, ptr.Load())
	})
	reg.Floats.Range(func(key string, ptr *status.AtomicFloat) {
		sep()
		fmt.Fprintf(&sb, "%s=%.2f", key, ptr.Get())
	})
	return sb.String()
}
