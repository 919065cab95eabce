package workload

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hospital-sim/hospital-sim/sim"
)

// ScenarioSpec is the top-level scenario configuration.
// Loaded from YAML via LoadScenarioSpec(path). Arrivals come either from
// an input file (`input`) or inline (`arrivals`), not both.
type ScenarioSpec struct {
	Seed     int64         `yaml:"seed,omitempty"`
	Input    string        `yaml:"input,omitempty"`
	Arrivals []ArrivalSpec `yaml:"arrivals,omitempty"`
}

// ArrivalSpec is one inline arrival entry.
type ArrivalSpec struct {
	Time          int64  `yaml:"time"`
	Type          string `yaml:"type"`
	TreatmentTime int64  `yaml:"treatment_time"`
}

// LoadScenarioSpec reads and validates a scenario spec from a YAML file.
func LoadScenarioSpec(path string) (*ScenarioSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario spec: %w", err)
	}
	var spec ScenarioSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing scenario spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks that all fields in the spec are valid. Inline arrivals
// follow the same rules as input-file lines.
func (s *ScenarioSpec) Validate() error {
	if s.Input != "" && len(s.Arrivals) > 0 {
		return fmt.Errorf("scenario spec: input and arrivals are mutually exclusive")
	}
	for i, a := range s.Arrivals {
		if a.Time < 0 {
			return fmt.Errorf("arrivals[%d]: arrival time must not be negative, got %d", i, a.Time)
		}
		if t := sim.PatientType(a.Type); t != sim.Emergency && t != sim.WalkIn {
			return fmt.Errorf("arrivals[%d]: patient type must be 'E' or 'W', got %q", i, a.Type)
		}
		if a.TreatmentTime <= 0 {
			return fmt.Errorf("arrivals[%d]: treatment time must be positive, got %d", i, a.TreatmentTime)
		}
	}
	return nil
}

// ResolveArrivals returns the spec's arrivals, loading and validating the
// input file when one is referenced.
func (s *ScenarioSpec) ResolveArrivals() ([]Arrival, error) {
	if s.Input != "" {
		return LoadArrivals(s.Input)
	}
	arrivals := make([]Arrival, 0, len(s.Arrivals))
	for _, a := range s.Arrivals {
		arrivals = append(arrivals, Arrival{
			Time:          a.Time,
			Type:          sim.PatientType(a.Type),
			TreatmentTime: a.TreatmentTime,
		})
	}
	return arrivals, nil
}
