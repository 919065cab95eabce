// sim/simulator.go
package sim

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/hospital-sim/hospital-sim/sim/trace"
)

const (
	// TreatmentRooms is the total number of interchangeable treatment
	// rooms. Rooms have no identity; a single counter tracks how many
	// are free.
	TreatmentRooms = 3

	// AssessmentDuration is the fixed triage time for walk-in patients.
	AssessmentDuration = 4

	// AdmissionDelay is the fixed time between a priority-1 patient
	// reaching the front of the admission queue and being admitted.
	AdmissionDelay = 3

	// DischargeDelay is the time between treatment completion and
	// departure for patients who skip admission.
	DischargeDelay = 1
)

// pendingEvent pairs an event with its insertion sequence number. The
// sequence breaks ties between events whose (time, priority, id) keys all
// match — events on the same patient at the same instant — reproducing
// the behavior of a stable sort by the three-part comparator.
type pendingEvent struct {
	event Event
	seq   int64
}

// EventQueue implements heap.Interface and orders pending events by
// time, then patient effective priority (unset sorts last), then patient
// id, then insertion order.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type EventQueue []pendingEvent

func (eq EventQueue) Len() int { return len(eq) }

func (eq EventQueue) Less(i, j int) bool {
	a, b := eq[i], eq[j]
	if a.event.Timestamp() != b.event.Timestamp() {
		return a.event.Timestamp() < b.event.Timestamp()
	}
	aPriority := a.event.Patient().EffectivePriority()
	bPriority := b.event.Patient().EffectivePriority()
	if aPriority != bPriority {
		return aPriority < bPriority
	}
	if a.event.Patient().ID != b.event.Patient().ID {
		return a.event.Patient().ID < b.event.Patient().ID
	}
	return a.seq < b.seq
}

func (eq EventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *EventQueue) Push(x any) {
	*eq = append(*eq, x.(pendingEvent))
}

func (eq *EventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	*eq = old[0 : n-1]
	return item
}

// Simulator is the core object that holds simulation time, hospital
// state, the pending event set, and the event loop. It exclusively owns
// the pending set: transitions only append via Schedule, and removal
// happens solely in Run's dequeue of the minimum.
type Simulator struct {
	Clock int64
	// EventQueue holds all pending events in driver ordering.
	EventQueue EventQueue
	Hospital   *HospitalState
	// Patients is the authoritative registry, in creation order. Queues
	// and events hold non-owning references into it.
	Patients []*Patient
	// AvailableRooms counts free treatment rooms, always in [0, TreatmentRooms].
	AvailableRooms int
	Priorities     *PriorityGenerator
	// Reporter receives one record per processed event. Nil disables
	// notification.
	Reporter trace.Reporter
	// DepartureTimes records when each patient actually departed.
	DepartureTimes map[int]int64

	nextPatientID int
	nextSeq       int64
}

// NewSimulator creates a simulator with an empty hospital, all rooms
// free, and a priority generator seeded with the given value.
func NewSimulator(seed int64) *Simulator {
	return &Simulator{
		Clock:          0,
		EventQueue:     make(EventQueue, 0),
		Hospital:       NewHospitalState(),
		Patients:       make([]*Patient, 0),
		AvailableRooms: TreatmentRooms,
		Priorities:     NewPriorityGenerator(seed),
		DepartureTimes: make(map[int]int64),
		nextPatientID:  BasePatientID,
	}
}

// NewPatient creates a patient, assigns the next id in creation order,
// and registers it. Emergency patients are created with priority 1.
func (sim *Simulator) NewPatient(arrivalTime int64, patientType PatientType, treatmentTime int64) *Patient {
	p := &Patient{
		ID:            sim.nextPatientID,
		ArrivalTime:   arrivalTime,
		Type:          patientType,
		TreatmentTime: treatmentTime,
		Location:      "arrived",
	}
	sim.nextPatientID++
	if patientType == Emergency {
		p.priority = 1
	}
	sim.Patients = append(sim.Patients, p)
	return p
}

// ScheduleArrival pushes the patient's arrival event onto the pending set.
// All arrivals are loaded before Run begins; there is no incremental
// ingestion inside the loop.
func (sim *Simulator) ScheduleArrival(p *Patient) {
	sim.Schedule(&ArrivalEvent{time: p.ArrivalTime, patient: p})
}

// Schedule pushes an event into the simulator's pending set.
func (sim *Simulator) Schedule(ev Event) {
	heap.Push(&sim.EventQueue, pendingEvent{event: ev, seq: sim.nextSeq})
	sim.nextSeq++
}

// Run executes the simulation loop: pop the earliest-ordered event,
// advance the clock, apply its transition, adjust the room counter for
// the two kinds that touch it, and notify the reporter. Terminates when
// the pending set drains.
func (sim *Simulator) Run() {
	for len(sim.EventQueue) > 0 {
		pe := heap.Pop(&sim.EventQueue).(pendingEvent)
		ev := pe.event
		sim.Clock = ev.Timestamp()
		logrus.Infof("[time %3d] Executing %T for patient %d", sim.Clock, ev, ev.Patient().ID)

		// A departing patient frees their room at the moment of
		// departure, visible to the departure transition itself.
		if ev.Kind() == trace.KindDeparture {
			sim.AvailableRooms++
			if sim.AvailableRooms > TreatmentRooms {
				panic(fmt.Sprintf("Departure: patient %d at time %d: room counter exceeds capacity %d",
					ev.Patient().ID, sim.Clock, TreatmentRooms))
			}
		}

		ev.Execute(sim)

		// A treatment start claims its room only after the transition
		// has observed the pre-decrement count.
		if ev.Kind() == trace.KindStartTreatment {
			sim.AvailableRooms--
			if sim.AvailableRooms < 0 {
				panic(fmt.Sprintf("StartTreatment: patient %d at time %d: room counter went negative",
					ev.Patient().ID, sim.Clock))
			}
		}

		if ev.Kind() == trace.KindDeparture {
			sim.DepartureTimes[ev.Patient().ID] = sim.Clock
		}

		sim.notify(ev)
	}
	logrus.Infof("[time %3d] Simulation ended", sim.Clock)
}

// notify builds the record for a processed event and hands it to the
// reporter. The room count reported is the post-adjustment value.
func (sim *Simulator) notify(ev Event) {
	if sim.Reporter == nil {
		return
	}
	p := ev.Patient()
	record := trace.EventRecord{
		Time:           sim.Clock,
		Kind:           ev.Kind(),
		PatientID:      p.ID,
		PatientType:    string(p.Type),
		Priority:       p.Priority(),
		RoomsRemaining: sim.AvailableRooms,
	}
	switch ev.Kind() {
	case trace.KindAssessmentStart:
		record.Waited = p.AssessmentWait
	case trace.KindStartTreatment:
		record.Waited = p.WaitingRoomWait
	case trace.KindAdmission:
		record.Waited = p.AdmissionWait
	}
	sim.Reporter.Record(record)
}

// Summary assembles the final per-patient rows and aggregate statistics.
// Rows are sorted by (priority ascending, id ascending).
func (sim *Simulator) Summary() *trace.Summary {
	patients := make([]*Patient, len(sim.Patients))
	copy(patients, sim.Patients)
	sort.Slice(patients, func(i, j int) bool {
		if patients[i].EffectivePriority() != patients[j].EffectivePriority() {
			return patients[i].EffectivePriority() < patients[j].EffectivePriority()
		}
		return patients[i].ID < patients[j].ID
	})

	summary := &trace.Summary{Rows: make([]trace.PatientRow, 0, len(patients))}
	for _, p := range patients {
		assessmentTime := p.ArrivalTime
		if p.IsWalkIn() {
			assessmentTime = p.ArrivalTime + p.AssessmentWait
		}
		summary.Rows = append(summary.Rows, trace.PatientRow{
			PatientID:      p.ID,
			Priority:       p.Priority(),
			ArrivalTime:    p.ArrivalTime,
			AssessmentTime: assessmentTime,
			TreatmentTime:  p.TreatmentTime,
			DepartureTime:  sim.DepartureTimes[p.ID],
			WaitTime:       p.TotalWait(),
		})
		summary.TotalWait += p.TotalWait()
	}
	summary.PatientCount = len(patients)
	if summary.PatientCount > 0 {
		summary.AverageWait = float64(summary.TotalWait) / float64(summary.PatientCount)
	}
	return summary
}
