// Package trace provides event notification records and rendering for the
// hospital simulation. This package has no dependencies on sim/ — it
// stores pure data types and formats them.
package trace

// EventKind identifies the kind of a processed simulation event.
type EventKind string

const (
	KindArrival            EventKind = "arrival"
	KindAssessmentStart    EventKind = "assessment_start"
	KindAssessmentComplete EventKind = "assessment_complete"
	KindStartTreatment     EventKind = "start_treatment"
	KindTreatmentCompleted EventKind = "treatment_completed"
	KindAdmission          EventKind = "admission"
	KindDeparture          EventKind = "departure"
)

// EventRecord captures one processed event as reported by the driver.
type EventRecord struct {
	Time        int64
	Kind        EventKind
	PatientID   int
	PatientType string // "E" or "W"
	Priority    int    // 0 when not yet assigned
	// Waited carries the station wait relevant to the kind: assessment
	// wait for assessment starts, waiting-room wait for treatment
	// starts, admission wait for admissions. Zero otherwise.
	Waited int64
	// RoomsRemaining is the free-room count after the driver's
	// adjustment for this event.
	RoomsRemaining int
}

// Reporter consumes per-event records emitted by the simulation driver.
type Reporter interface {
	Record(EventRecord)
}
