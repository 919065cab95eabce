package trace

import (
	"fmt"
	"io"
)

// PatientRow is one line of the final summary table.
type PatientRow struct {
	PatientID      int
	Priority       int
	ArrivalTime    int64
	AssessmentTime int64 // arrival time for emergencies, arrival + assessment wait for walk-ins
	TreatmentTime  int64
	DepartureTime  int64
	WaitTime       int64 // sum of the three station waits
}

// Summary aggregates the per-patient results of a completed run.
// Rows are ordered by (priority ascending, patient id ascending).
type Summary struct {
	Rows         []PatientRow
	PatientCount int
	TotalWait    int64
	AverageWait  float64 // 0 when there are no patients
}

// Render writes the final summary table and aggregate statistics.
func (s *Summary) Render(w io.Writer) {
	fmt.Fprintf(w, "\n...All events complete.  Final Summary:\n")
	fmt.Fprintln(w)
	fmt.Fprintln(w, " Patient Priority   Arrival Assessment   Treatment   Departure  Waiting")
	fmt.Fprintln(w, "  Number               Time       Time    Required        Time     Time")
	for i := 0; i < 70; i++ {
		fmt.Fprint(w, "-")
	}
	fmt.Fprintln(w)

	for _, row := range s.Rows {
		fmt.Fprintf(w, "%8d %8d %8d %8d %8d %8d %8d\n",
			row.PatientID, row.Priority, row.ArrivalTime, row.AssessmentTime,
			row.TreatmentTime, row.DepartureTime, row.WaitTime)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Patients seen in total: %d\n", s.PatientCount)
	if s.PatientCount > 0 {
		fmt.Fprintf(w, "Average waiting time per patient : %.6f\n", s.AverageWait)
	} else {
		fmt.Fprintln(w, "Average waiting time per patient : 0.000000")
	}
}
