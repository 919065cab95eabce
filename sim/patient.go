// Defines the Patient struct that models an individual patient in the simulation.
// Tracks identity, arrival, treatment duration, priority, and per-station wait time.

package sim

import (
	"fmt"
)

// PatientType distinguishes how a patient entered the emergency room.
type PatientType string

const (
	// Emergency patients arrive with priority 1 and skip assessment.
	Emergency PatientType = "E"
	// WalkIn patients are assessed first and receive a priority afterwards.
	WalkIn PatientType = "W"
)

// WaitKind names the three stations where a patient can accumulate wait time.
type WaitKind string

const (
	WaitAssessment  WaitKind = "assessment"
	WaitWaitingRoom WaitKind = "waiting_room"
	WaitAdmission   WaitKind = "admission"
)

// BasePatientID is the id assigned to the first patient created by a
// Simulator. Subsequent ids increase by one in creation order.
const BasePatientID = 28064212

// PriorityUnset is the effective ordering priority of a patient whose
// priority has not been assigned yet. Unassessed walk-ins sort after
// every assessed patient when events tie on time.
const PriorityUnset = 999

// Patient models a single patient's lifecycle in the simulation.
// Wait time is tracked as open/close intervals: at most one interval is
// open at a time, and closing adds the elapsed duration to the
// accumulator of the interval's station.
type Patient struct {
	ID            int         // Unique identifier, assigned in creation order
	ArrivalTime   int64       // Time when the patient arrives
	Type          PatientType // Emergency or WalkIn
	TreatmentTime int64       // Time units required for treatment

	// Wait accumulators, one per station. Monotonically non-decreasing.
	AssessmentWait  int64
	WaitingRoomWait int64
	AdmissionWait   int64

	// Location is the station currently holding the patient. Bookkeeping
	// only; no transition branches on it.
	Location string

	priority  int // 1 (highest) .. 5 (lowest); 0 until assigned
	waitStart int64
	waitOpen  bool
}

// Priority returns the patient's priority, or 0 if not yet assigned.
func (p *Patient) Priority() int {
	return p.priority
}

// HasPriority reports whether a priority has been assigned.
func (p *Patient) HasPriority() bool {
	return p.priority != 0
}

// EffectivePriority returns the priority used for event ordering:
// the assigned priority, or PriorityUnset when none has been assigned.
func (p *Patient) EffectivePriority() int {
	if p.priority == 0 {
		return PriorityUnset
	}
	return p.priority
}

// SetPriority assigns the priority drawn at assessment completion.
// Only walk-in patients are ever assessed, and exactly once; violations
// are internal consistency defects, not user errors.
func (p *Patient) SetPriority(priority int) {
	if p.Type == Emergency {
		panic(fmt.Sprintf("SetPriority: patient %d is an emergency patient and already has priority 1", p.ID))
	}
	if p.priority != 0 {
		panic(fmt.Sprintf("SetPriority: patient %d already has priority %d", p.ID, p.priority))
	}
	if priority < 1 || priority > 5 {
		panic(fmt.Sprintf("SetPriority: patient %d: priority %d out of range 1..5", p.ID, priority))
	}
	p.priority = priority
}

// StartWait opens a wait interval at the given station.
// A patient can have at most one open interval at any time.
func (p *Patient) StartWait(now int64, kind WaitKind) {
	if p.waitOpen {
		panic(fmt.Sprintf("StartWait: patient %d at time %d: wait interval already open at %q", p.ID, now, p.Location))
	}
	p.waitStart = now
	p.waitOpen = true
	p.Location = string(kind)
}

// EndWait closes the open wait interval, if any, and adds its duration to
// the accumulator for kind. Calling EndWait with no open interval is a
// no-op: queue-advance transitions close the new front patient's wait
// unconditionally, and the front patient may never have waited.
func (p *Patient) EndWait(now int64, kind WaitKind) {
	if !p.waitOpen {
		return
	}
	duration := now - p.waitStart
	if duration < 0 {
		panic(fmt.Sprintf("EndWait: patient %d: interval closes at %d before it opened at %d", p.ID, now, p.waitStart))
	}
	switch kind {
	case WaitAssessment:
		p.AssessmentWait += duration
	case WaitWaitingRoom:
		p.WaitingRoomWait += duration
	case WaitAdmission:
		p.AdmissionWait += duration
	}
	p.waitOpen = false
}

// TotalWait returns the sum of the three per-station wait accumulators.
func (p *Patient) TotalWait() int64 {
	return p.AssessmentWait + p.WaitingRoomWait + p.AdmissionWait
}

// IsEmergency reports whether this is an emergency patient.
func (p *Patient) IsEmergency() bool {
	return p.Type == Emergency
}

// IsWalkIn reports whether this is a walk-in patient.
func (p *Patient) IsWalkIn() bool {
	return p.Type == WalkIn
}

// String returns a human-readable representation of the patient.
func (p *Patient) String() string {
	if p.HasPriority() {
		return fmt.Sprintf("Patient %d (%s) Priority %d", p.ID, p.Type, p.priority)
	}
	return fmt.Sprintf("Patient %d (%s) unassessed", p.ID, p.Type)
}
