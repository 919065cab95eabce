package trace

import (
	"fmt"
	"io"
)

// Printer renders each event record as a human-readable trace line.
// Line formats are fixed; two runs with the same input and seed produce
// byte-identical output.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Record renders one trace line (two for arrivals of emergency patients
// and for assessment completions).
func (p *Printer) Record(r EventRecord) {
	timeStr := fmt.Sprintf("Time %2d:", r.Time)

	switch r.Kind {
	case KindArrival:
		label := "Walk-In"
		if r.PatientType == "E" {
			label = "Emergency"
		}
		priorityStr := ""
		if r.Priority != 0 {
			priorityStr = fmt.Sprintf("Priority %d", r.Priority)
		}
		fmt.Fprintf(p.w, "%s %d (%s) %s arrives\n", timeStr, r.PatientID, label, priorityStr)
		if r.PatientType == "E" {
			fmt.Fprintf(p.w, "%s %d (Priority %d) enters waiting room\n", timeStr, r.PatientID, r.Priority)
		}

	case KindAssessmentStart:
		fmt.Fprintf(p.w, "%s %d starts assessment (waited %d)\n", timeStr, r.PatientID, r.Waited)

	case KindAssessmentComplete:
		fmt.Fprintf(p.w, "%s %d assessment completed  (Priority now %d)\n", timeStr, r.PatientID, r.Priority)
		fmt.Fprintf(p.w, "%s %d (Priority %d) enters waiting room\n", timeStr, r.PatientID, r.Priority)

	case KindStartTreatment:
		fmt.Fprintf(p.w, "%s %d (Priority %d) starts treatment (waited %d, %d rm(s) remain)\n",
			timeStr, r.PatientID, r.Priority, r.Waited, r.RoomsRemaining)

	case KindTreatmentCompleted:
		fmt.Fprintf(p.w, "%s %d (Priority %d) finishes treatment\n", timeStr, r.PatientID, r.Priority)

	case KindAdmission:
		fmt.Fprintf(p.w, "%s %d (Priority %d, waited %d) admitted to Hospital\n",
			timeStr, r.PatientID, r.Priority, r.Waited)

	case KindDeparture:
		fmt.Fprintf(p.w, "%s %d (Priority %d) departs, %d rm(s) remain\n",
			timeStr, r.PatientID, r.Priority, r.RoomsRemaining)
	}
}
