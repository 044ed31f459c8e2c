// Package trial records stimulus-cycle trials as a msgpack stream
package trial

// NoResponse is the latency recorded when no response key was pressed after target onset
const NoResponse int64 = -1

// Square is one stimulus square as shown during the setup phase
type Square struct {
	X     float64 `msgpack:"x"`
	Y     float64 `msgpack:"y"`
	Color string  `msgpack:"color"`
}

// Record is one completed stimulus cycle
type Record struct {
	Index       int      `msgpack:"index"`
	StartedAt   int64    `msgpack:"started_at"` // Unix milliseconds of cycle start
	TargetColor string   `msgpack:"target_color"`
	Squares     []Square `msgpack:"squares"`
	Response    string   `msgpack:"response,omitempty"`
	LatencyMs   int64    `msgpack:"latency_ms"`
}

// Responded reports whether a response key was captured in this trial
func (r Record) Responded() bool {
	return r.LatencyMs != NoResponse
}

// Sink receives completed trials
type Sink interface {
	Record(r Record) error
}
