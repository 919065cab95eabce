// Implements the hospital's patient queues: FIFO queues for assessment and
// admission, and the priority-ordered waiting room. Queues hold shared
// references to patients; the Simulator's registry owns them.

package sim

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// FIFOQueue is a first-in-first-out queue of patients, used for the
// assessment and admission stations.
type FIFOQueue struct {
	queue []*Patient
}

// Enqueue adds a patient to the back of the queue.
func (q *FIFOQueue) Enqueue(p *Patient) {
	q.queue = append(q.queue, p)
}

// Dequeue removes and returns the patient at the front of the queue.
// Returns nil if the queue is empty.
func (q *FIFOQueue) Dequeue() *Patient {
	if len(q.queue) == 0 {
		return nil
	}
	front := q.queue[0]
	q.queue = q.queue[1:]
	return front
}

// Peek returns the patient at the front without removing them.
// Returns nil if the queue is empty.
func (q *FIFOQueue) Peek() *Patient {
	if len(q.queue) == 0 {
		return nil
	}
	return q.queue[0]
}

// Len returns the number of patients in the queue.
func (q *FIFOQueue) Len() int {
	return len(q.queue)
}

// IsEmpty reports whether the queue holds no patients.
func (q *FIFOQueue) IsEmpty() bool {
	return len(q.queue) == 0
}

func (q *FIFOQueue) String() string {
	return formatQueue("FIFOQueue", q.queue)
}

// ErrNoPriority is returned when a patient without an assigned priority is
// enqueued into the priority queue.
var ErrNoPriority = errors.New("patient must have a priority to enter priority queue")

// PriorityQueue is the waiting room: patients ordered by
// (priority ascending, id ascending). Priority 1 is the most urgent.
type PriorityQueue struct {
	queue []*Patient
}

// Enqueue inserts a patient maintaining (priority, id) order.
// Fails if the patient's priority has not been assigned.
func (q *PriorityQueue) Enqueue(p *Patient) error {
	if !p.HasPriority() {
		return fmt.Errorf("enqueue patient %d: %w", p.ID, ErrNoPriority)
	}
	at := len(q.queue)
	for i, existing := range q.queue {
		if p.Priority() < existing.Priority() ||
			(p.Priority() == existing.Priority() && p.ID < existing.ID) {
			at = i
			break
		}
	}
	q.queue = slices.Insert(q.queue, at, p)
	return nil
}

// Dequeue removes and returns the most urgent patient.
// Returns nil if the queue is empty.
func (q *PriorityQueue) Dequeue() *Patient {
	if len(q.queue) == 0 {
		return nil
	}
	front := q.queue[0]
	q.queue = q.queue[1:]
	return front
}

// Peek returns the most urgent patient without removing them.
// Returns nil if the queue is empty.
func (q *PriorityQueue) Peek() *Patient {
	if len(q.queue) == 0 {
		return nil
	}
	return q.queue[0]
}

// Len returns the number of patients in the queue.
func (q *PriorityQueue) Len() int {
	return len(q.queue)
}

// IsEmpty reports whether the queue holds no patients.
func (q *PriorityQueue) IsEmpty() bool {
	return len(q.queue) == 0
}

func (q *PriorityQueue) String() string {
	return formatQueue("PriorityQueue", q.queue)
}

func formatQueue(name string, patients []*Patient) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteString("[")
	for i, p := range patients {
		sb.WriteString(p.String())
		if i < len(patients)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// HospitalState bundles the three station queues and the assessment latch.
// Created once at simulation start, mutated by event transitions, and
// discarded when the simulation ends.
type HospitalState struct {
	AssessmentQueue *FIFOQueue
	WaitingRoom     *PriorityQueue
	AdmissionQueue  *FIFOQueue

	// AssessmentInProgress latches while a patient is being assessed.
	// At most one assessment is active at a time.
	AssessmentInProgress bool
}

// NewHospitalState creates an empty hospital with all queues initialized.
func NewHospitalState() *HospitalState {
	return &HospitalState{
		AssessmentQueue: &FIFOQueue{},
		WaitingRoom:     &PriorityQueue{},
		AdmissionQueue:  &FIFOQueue{},
	}
}
