package sim

import (
	"errors"
	"testing"
)

func walkInWithPriority(s *Simulator, priority int) *Patient {
	p := s.NewPatient(0, WalkIn, 5)
	p.SetPriority(priority)
	return p
}

func TestFIFOQueue_DequeueOrderEqualsEnqueueOrder(t *testing.T) {
	// GIVEN patients enqueued [A, B, C]
	s := NewSimulator(DefaultSeed)
	q := &FIFOQueue{}
	a := s.NewPatient(0, WalkIn, 5)
	b := s.NewPatient(0, WalkIn, 5)
	c := s.NewPatient(0, WalkIn, 5)
	q.Enqueue(a)
	q.Enqueue(b)
	q.Enqueue(c)

	// THEN dequeue returns them in the same order
	for i, want := range []*Patient{a, b, c} {
		if got := q.Dequeue(); got != want {
			t.Errorf("dequeue %d: got patient %v, want %v", i, got, want)
		}
	}
	if !q.IsEmpty() {
		t.Errorf("queue should be empty, has %d", q.Len())
	}
}

func TestFIFOQueue_PeekAndEmptyBehavior(t *testing.T) {
	s := NewSimulator(DefaultSeed)
	q := &FIFOQueue{}

	if q.Dequeue() != nil || q.Peek() != nil {
		t.Error("empty queue: Dequeue and Peek must return nil")
	}

	p := s.NewPatient(0, Emergency, 5)
	q.Enqueue(p)
	if q.Peek() != p {
		t.Error("Peek should return the front patient")
	}
	if q.Len() != 1 {
		t.Errorf("Peek modified queue length: got %d, want 1", q.Len())
	}
}

func TestPriorityQueue_OrdersByPriorityThenID(t *testing.T) {
	// GIVEN patients enqueued out of priority order
	s := NewSimulator(DefaultSeed)
	q := &PriorityQueue{}
	p4 := walkInWithPriority(s, 4)
	p2a := walkInWithPriority(s, 2) // lower id
	p2b := walkInWithPriority(s, 2) // higher id
	p1 := walkInWithPriority(s, 1)

	for _, p := range []*Patient{p4, p2b, p1, p2a} {
		if err := q.Enqueue(p); err != nil {
			t.Fatalf("enqueue: %v", err)
		}
	}

	// THEN dequeue order is (priority asc, id asc)
	want := []*Patient{p1, p2a, p2b, p4}
	for i, w := range want {
		if got := q.Dequeue(); got != w {
			t.Errorf("dequeue %d: got %v, want %v", i, got, w)
		}
	}
}

func TestPriorityQueue_AdjacentPairInvariant(t *testing.T) {
	// GIVEN a queue filled with generator-drawn priorities
	s := NewSimulator(DefaultSeed)
	q := &PriorityQueue{}
	g := NewPriorityGenerator(99)
	for i := 0; i < 50; i++ {
		if err := q.Enqueue(walkInWithPriority(s, g.Draw())); err != nil {
			t.Fatalf("enqueue %d: %v", i, err)
		}
	}

	// THEN every adjacent pair satisfies (priority, id) ordering
	for i := 0; i+1 < len(q.queue); i++ {
		front, next := q.queue[i], q.queue[i+1]
		if front.Priority() > next.Priority() ||
			(front.Priority() == next.Priority() && front.ID > next.ID) {
			t.Fatalf("pair %d: (%d,%d) before (%d,%d)", i,
				front.Priority(), front.ID, next.Priority(), next.ID)
		}
	}
}

func TestPriorityQueue_RejectsUnsetPriority(t *testing.T) {
	// GIVEN an unassessed walk-in
	s := NewSimulator(DefaultSeed)
	q := &PriorityQueue{}
	p := s.NewPatient(0, WalkIn, 5)

	// WHEN enqueued, THEN the enqueue fails
	err := q.Enqueue(p)
	if !errors.Is(err, ErrNoPriority) {
		t.Errorf("enqueue without priority: got %v, want ErrNoPriority", err)
	}
	if !q.IsEmpty() {
		t.Error("failed enqueue must not modify the queue")
	}
}

func TestNewHospitalState_StartsEmptyAndIdle(t *testing.T) {
	h := NewHospitalState()
	if !h.AssessmentQueue.IsEmpty() || !h.WaitingRoom.IsEmpty() || !h.AdmissionQueue.IsEmpty() {
		t.Error("all queues must start empty")
	}
	if h.AssessmentInProgress {
		t.Error("assessment latch must start clear")
	}
}
