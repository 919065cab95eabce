// Package workload reads and validates patient arrival input for the
// hospital simulation, and preloads it into a Simulator. Input is a text
// stream of whitespace-separated triples, one per line:
//
//	<arrival_time> <E|W> <treatment_time>
//
// Blank lines are ignored. The whole input is rejected on the first
// defect, before any simulation state is created.
package workload

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hospital-sim/hospital-sim/sim"
)

// Arrival is one validated input tuple.
type Arrival struct {
	Time          int64
	Type          sim.PatientType
	TreatmentTime int64
}

// ParseArrivals reads and validates the whole input stream.
// Returns the arrivals in input order, or the first defect found.
func ParseArrivals(r io.Reader) ([]Arrival, error) {
	var arrivals []Arrival
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: expected <time> <E|W> <treatment_time>, got %q", lineNumber, line)
		}

		arrivalTime, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid arrival time %q: %w", lineNumber, fields[0], err)
		}
		if arrivalTime < 0 {
			return nil, fmt.Errorf("line %d: arrival time must not be negative, got %d", lineNumber, arrivalTime)
		}

		patientType := sim.PatientType(fields[1])
		if patientType != sim.Emergency && patientType != sim.WalkIn {
			return nil, fmt.Errorf("line %d: patient type must be 'E' or 'W', got %q", lineNumber, fields[1])
		}

		treatmentTime, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid treatment time %q: %w", lineNumber, fields[2], err)
		}
		if treatmentTime <= 0 {
			return nil, fmt.Errorf("line %d: treatment time must be positive, got %d", lineNumber, treatmentTime)
		}

		arrivals = append(arrivals, Arrival{
			Time:          arrivalTime,
			Type:          patientType,
			TreatmentTime: treatmentTime,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return arrivals, nil
}

// LoadArrivals parses an arrival file.
func LoadArrivals(path string) ([]Arrival, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	defer file.Close()
	return ParseArrivals(file)
}

// Preload creates a patient per arrival, in input order, and schedules
// every arrival event before the simulation loop begins. Patient ids
// follow creation order, which is input order, not arrival-time order.
func Preload(s *sim.Simulator, arrivals []Arrival) {
	for _, a := range arrivals {
		p := s.NewPatient(a.Time, a.Type, a.TreatmentTime)
		s.ScheduleArrival(p)
	}
}
