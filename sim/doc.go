// Package sim provides the discrete-event simulation engine for the
// hospital emergency room model.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - patient.go: Patient record, priority rules, and wait-interval tracking
//   - event.go: the seven event kinds and their state transitions
//   - simulator.go: event ordering, the driver loop, and room accounting
//
// # Architecture
//
// The sim package owns the timeline: a heap of pending events ordered by
// (time, patient effective priority, patient id, insertion order). The
// driver pops the minimum, advances the clock, runs the transition, and
// adjusts the free-room counter for the two kinds that touch it — a
// departure frees its room before its transition runs, a treatment start
// claims its room after.
//
// Surrounding concerns live in sub-packages:
//   - sim/workload/: input parsing/validation and YAML scenario specs
//   - sim/trace/: pure event records, trace-line rendering, final summary
//
// The driver emits one trace.EventRecord per processed event to an
// optional trace.Reporter; the engine itself never prints.
package sim
