package trace

// SimulationTrace collects event records during a run, for inspection by
// tests and tooling.
type SimulationTrace struct {
	Records []EventRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace() *SimulationTrace {
	return &SimulationTrace{Records: make([]EventRecord, 0)}
}

// Record appends an event record.
func (st *SimulationTrace) Record(record EventRecord) {
	st.Records = append(st.Records, record)
}

// OfKind returns the collected records of the given kind, in order.
func (st *SimulationTrace) OfKind(kind EventKind) []EventRecord {
	var out []EventRecord
	for _, r := range st.Records {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}

// MultiReporter fans records out to several reporters in order.
type MultiReporter []Reporter

// Record forwards the record to every reporter.
func (m MultiReporter) Record(record EventRecord) {
	for _, r := range m {
		r.Record(record)
	}
}
