package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/hospital-sim/hospital-sim/sim/trace"
)

// Event defines the interface for all simulation events.
// Each event carries a timestamp and the patient it refers to, and an
// Execute method that advances simulation state when invoked. Events are
// ordered by time, then patient effective priority, then patient id (see
// EventQueue in simulator.go).
type Event interface {
	Timestamp() int64
	Patient() *Patient
	Kind() trace.EventKind
	Execute(*Simulator)
}

// mustEnterWaitingRoom enqueues into the waiting room, treating a missing
// priority as an internal consistency defect: every enqueue site assigns
// the priority first.
func mustEnterWaitingRoom(sim *Simulator, p *Patient) {
	if err := sim.Hospital.WaitingRoom.Enqueue(p); err != nil {
		panic(fmt.Sprintf("waiting room at time %d: %v", sim.Clock, err))
	}
}

// mustDequeueFront removes the front patient from a station queue and
// verifies it is the patient the event was scheduled for. A mismatch (or
// an empty queue) means the scheduling invariants were violated.
func mustDequeueFront(front *Patient, want *Patient, kind trace.EventKind, now int64) {
	if front == nil {
		panic(fmt.Sprintf("%s: patient %d at time %d: dequeue from empty queue", kind, want.ID, now))
	}
	if front != want {
		panic(fmt.Sprintf("%s: patient %d at time %d: queue front is patient %d", kind, want.ID, now, front.ID))
	}
}

// ArrivalEvent represents a patient arriving at the hospital.
type ArrivalEvent struct {
	time    int64
	patient *Patient
}

func (e *ArrivalEvent) Timestamp() int64      { return e.time }
func (e *ArrivalEvent) Patient() *Patient     { return e.patient }
func (e *ArrivalEvent) Kind() trace.EventKind { return trace.KindArrival }

// Execute routes the patient: emergencies go straight to the waiting room,
// walk-ins join the assessment queue (starting assessment immediately when
// the station is idle and they are first in line).
func (e *ArrivalEvent) Execute(sim *Simulator) {
	logrus.Infof("<< Arrival: patient %d (%s) at time %d", e.patient.ID, e.patient.Type, e.time)
	p := e.patient

	if p.IsEmergency() {
		p.StartWait(sim.Clock, WaitWaitingRoom)
		mustEnterWaitingRoom(sim, p)
		if sim.AvailableRooms > 0 {
			sim.Schedule(&StartTreatmentEvent{time: sim.Clock, patient: p})
		}
		return
	}

	sim.Hospital.AssessmentQueue.Enqueue(p)
	if !sim.Hospital.AssessmentInProgress && sim.Hospital.AssessmentQueue.Len() == 1 {
		// Station idle and nobody ahead: assessment starts now, no wait.
		first := sim.Hospital.AssessmentQueue.Peek()
		sim.Hospital.AssessmentInProgress = true
		sim.Schedule(&AssessmentStartEvent{time: sim.Clock, patient: first})
		sim.Schedule(&AssessmentCompleteEvent{time: sim.Clock + AssessmentDuration, patient: first})
	} else {
		p.StartWait(sim.Clock, WaitAssessment)
	}
}

// AssessmentStartEvent marks the moment a walk-in patient's assessment
// begins. Pure notification for the reporting collaborator; no state
// changes.
type AssessmentStartEvent struct {
	time    int64
	patient *Patient
}

func (e *AssessmentStartEvent) Timestamp() int64      { return e.time }
func (e *AssessmentStartEvent) Patient() *Patient     { return e.patient }
func (e *AssessmentStartEvent) Kind() trace.EventKind { return trace.KindAssessmentStart }

func (e *AssessmentStartEvent) Execute(sim *Simulator) {
	logrus.Infof("<< AssessmentStart: patient %d at time %d", e.patient.ID, e.time)
}

// AssessmentCompleteEvent represents a walk-in patient finishing the
// fixed-duration assessment and receiving a priority.
type AssessmentCompleteEvent struct {
	time    int64
	patient *Patient
}

func (e *AssessmentCompleteEvent) Timestamp() int64      { return e.time }
func (e *AssessmentCompleteEvent) Patient() *Patient     { return e.patient }
func (e *AssessmentCompleteEvent) Kind() trace.EventKind { return trace.KindAssessmentComplete }

func (e *AssessmentCompleteEvent) Execute(sim *Simulator) {
	logrus.Infof("<< AssessmentComplete: patient %d at time %d", e.patient.ID, e.time)
	p := e.patient

	front := sim.Hospital.AssessmentQueue.Dequeue()
	mustDequeueFront(front, p, e.Kind(), sim.Clock)
	sim.Hospital.AssessmentInProgress = false
	p.EndWait(sim.Clock, WaitAssessment)

	p.SetPriority(sim.Priorities.Draw())

	p.StartWait(sim.Clock, WaitWaitingRoom)
	mustEnterWaitingRoom(sim, p)
	if sim.AvailableRooms > 0 {
		sim.Schedule(&StartTreatmentEvent{time: sim.Clock, patient: p})
	}

	// Advance the assessment station: the next patient's wait ends the
	// instant their assessment starts.
	if !sim.Hospital.AssessmentQueue.IsEmpty() {
		next := sim.Hospital.AssessmentQueue.Peek()
		next.EndWait(sim.Clock, WaitAssessment)
		sim.Hospital.AssessmentInProgress = true
		sim.Schedule(&AssessmentStartEvent{time: sim.Clock, patient: next})
		sim.Schedule(&AssessmentCompleteEvent{time: sim.Clock + AssessmentDuration, patient: next})
	}
}

// StartTreatmentEvent represents a patient claiming a treatment room.
// The driver decrements the free-room counter immediately after this
// transition runs, so the transition itself observes the pre-decrement
// count.
type StartTreatmentEvent struct {
	time    int64
	patient *Patient
}

func (e *StartTreatmentEvent) Timestamp() int64      { return e.time }
func (e *StartTreatmentEvent) Patient() *Patient     { return e.patient }
func (e *StartTreatmentEvent) Kind() trace.EventKind { return trace.KindStartTreatment }

func (e *StartTreatmentEvent) Execute(sim *Simulator) {
	logrus.Infof("<< StartTreatment: patient %d at time %d", e.patient.ID, e.time)
	p := e.patient

	front := sim.Hospital.WaitingRoom.Dequeue()
	mustDequeueFront(front, p, e.Kind(), sim.Clock)
	p.EndWait(sim.Clock, WaitWaitingRoom)

	sim.Schedule(&TreatmentCompletedEvent{time: sim.Clock + p.TreatmentTime, patient: p})
}

// TreatmentCompletedEvent represents a patient finishing treatment.
// Priority-1 patients continue to admission; everyone else departs after
// a short discharge delay.
type TreatmentCompletedEvent struct {
	time    int64
	patient *Patient
}

func (e *TreatmentCompletedEvent) Timestamp() int64      { return e.time }
func (e *TreatmentCompletedEvent) Patient() *Patient     { return e.patient }
func (e *TreatmentCompletedEvent) Kind() trace.EventKind { return trace.KindTreatmentCompleted }

func (e *TreatmentCompletedEvent) Execute(sim *Simulator) {
	logrus.Infof("<< TreatmentCompleted: patient %d at time %d", e.patient.ID, e.time)
	p := e.patient

	if p.Priority() == 1 {
		sim.Hospital.AdmissionQueue.Enqueue(p)
		if sim.Hospital.AdmissionQueue.Len() == 1 {
			// Only patient at the station: admission starts now, no wait.
			sim.Schedule(&AdmissionEvent{time: sim.Clock + AdmissionDelay, patient: p})
		} else {
			p.StartWait(sim.Clock, WaitAdmission)
		}
		return
	}

	sim.Schedule(&DepartureEvent{time: sim.Clock + DischargeDelay, patient: p})
}

// AdmissionEvent represents a priority-1 patient being admitted to the
// hospital proper.
type AdmissionEvent struct {
	time    int64
	patient *Patient
}

func (e *AdmissionEvent) Timestamp() int64      { return e.time }
func (e *AdmissionEvent) Patient() *Patient     { return e.patient }
func (e *AdmissionEvent) Kind() trace.EventKind { return trace.KindAdmission }

func (e *AdmissionEvent) Execute(sim *Simulator) {
	logrus.Infof("<< Admission: patient %d at time %d", e.patient.ID, e.time)
	p := e.patient

	front := sim.Hospital.AdmissionQueue.Dequeue()
	mustDequeueFront(front, p, e.Kind(), sim.Clock)
	p.EndWait(sim.Clock, WaitAdmission)

	sim.Schedule(&DepartureEvent{time: sim.Clock, patient: p})

	// Advance the admission station for the next patient in line.
	if !sim.Hospital.AdmissionQueue.IsEmpty() {
		next := sim.Hospital.AdmissionQueue.Peek()
		next.EndWait(sim.Clock, WaitAdmission)
		sim.Schedule(&AdmissionEvent{time: sim.Clock + AdmissionDelay, patient: next})
	}
}

// DepartureEvent represents a patient leaving the hospital, freeing their
// treatment room. The driver increments the free-room counter immediately
// before this transition runs, so the freed room is visible here.
type DepartureEvent struct {
	time    int64
	patient *Patient
}

func (e *DepartureEvent) Timestamp() int64      { return e.time }
func (e *DepartureEvent) Patient() *Patient     { return e.patient }
func (e *DepartureEvent) Kind() trace.EventKind { return trace.KindDeparture }

func (e *DepartureEvent) Execute(sim *Simulator) {
	logrus.Infof("<< Departure: patient %d at time %d", e.patient.ID, e.time)

	if !sim.Hospital.WaitingRoom.IsEmpty() && sim.AvailableRooms > 0 {
		next := sim.Hospital.WaitingRoom.Peek()
		sim.Schedule(&StartTreatmentEvent{time: sim.Clock, patient: next})
	}
}
