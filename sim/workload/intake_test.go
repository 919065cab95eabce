package workload

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	sim "github.com/hospital-sim/hospital-sim/sim"
)

func TestParseArrivals_ValidInput(t *testing.T) {
	input := "0 E 5\n0 W 3\n\n  7 W 2  \n"

	arrivals, err := ParseArrivals(strings.NewReader(input))

	assert.NoError(t, err)
	want := []Arrival{
		{Time: 0, Type: sim.Emergency, TreatmentTime: 5},
		{Time: 0, Type: sim.WalkIn, TreatmentTime: 3},
		{Time: 7, Type: sim.WalkIn, TreatmentTime: 2},
	}
	assert.Equal(t, want, arrivals)
}

func TestParseArrivals_EmptyInput(t *testing.T) {
	arrivals, err := ParseArrivals(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Empty(t, arrivals)
}

func TestParseArrivals_RejectsFirstDefect(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"wrong field count", "0 E\n", "line 1: expected <time> <E|W> <treatment_time>"},
		{"extra field", "0 E 5 9\n", "line 1: expected"},
		{"non-integer time", "x E 5\n", "invalid arrival time"},
		{"negative time", "-1 E 5\n", "arrival time must not be negative"},
		{"bad type code", "0 Q 5\n", "patient type must be 'E' or 'W'"},
		{"non-integer treatment", "0 E five\n", "invalid treatment time"},
		{"zero treatment", "0 E 0\n", "treatment time must be positive"},
		{"negative treatment", "0 W -3\n", "treatment time must be positive"},
		{"defect on later line", "0 E 5\n1 W 3\n2 Z 4\n", "line 3: patient type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arrivals, err := ParseArrivals(strings.NewReader(tt.input))
			assert.Nil(t, arrivals, "whole input must be rejected")
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestPreload_CreatesPatientsInInputOrder(t *testing.T) {
	// GIVEN arrivals out of time order
	s := sim.NewSimulator(sim.DefaultSeed)
	arrivals := []Arrival{
		{Time: 9, Type: sim.WalkIn, TreatmentTime: 2},
		{Time: 0, Type: sim.Emergency, TreatmentTime: 5},
	}

	// WHEN preloaded
	Preload(s, arrivals)

	// THEN ids follow input order and every arrival event is pending
	assert.Len(t, s.Patients, 2)
	assert.Equal(t, sim.BasePatientID, s.Patients[0].ID)
	assert.Equal(t, sim.BasePatientID+1, s.Patients[1].ID)
	assert.Equal(t, int64(9), s.Patients[0].ArrivalTime)
	assert.Equal(t, 2, s.EventQueue.Len())
}
