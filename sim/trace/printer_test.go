package trace

import (
	"bytes"
	"testing"
)

func renderOne(r EventRecord) string {
	var buf bytes.Buffer
	NewPrinter(&buf).Record(r)
	return buf.String()
}

func TestPrinter_LineFormats(t *testing.T) {
	tests := []struct {
		name   string
		record EventRecord
		want   string
	}{
		{
			"emergency arrival",
			EventRecord{Time: 0, Kind: KindArrival, PatientID: 28064212, PatientType: "E", Priority: 1, RoomsRemaining: 3},
			"Time  0: 28064212 (Emergency) Priority 1 arrives\n" +
				"Time  0: 28064212 (Priority 1) enters waiting room\n",
		},
		{
			"walk-in arrival has no priority yet",
			EventRecord{Time: 3, Kind: KindArrival, PatientID: 28064213, PatientType: "W", RoomsRemaining: 3},
			"Time  3: 28064213 (Walk-In)  arrives\n",
		},
		{
			"assessment start",
			EventRecord{Time: 5, Kind: KindAssessmentStart, PatientID: 28064213, PatientType: "W", Waited: 2},
			"Time  5: 28064213 starts assessment (waited 2)\n",
		},
		{
			"assessment complete",
			EventRecord{Time: 9, Kind: KindAssessmentComplete, PatientID: 28064213, PatientType: "W", Priority: 4},
			"Time  9: 28064213 assessment completed  (Priority now 4)\n" +
				"Time  9: 28064213 (Priority 4) enters waiting room\n",
		},
		{
			"treatment start",
			EventRecord{Time: 9, Kind: KindStartTreatment, PatientID: 28064213, PatientType: "W", Priority: 4, Waited: 0, RoomsRemaining: 2},
			"Time  9: 28064213 (Priority 4) starts treatment (waited 0, 2 rm(s) remain)\n",
		},
		{
			"treatment completed",
			EventRecord{Time: 14, Kind: KindTreatmentCompleted, PatientID: 28064213, PatientType: "W", Priority: 4},
			"Time 14: 28064213 (Priority 4) finishes treatment\n",
		},
		{
			"admission",
			EventRecord{Time: 17, Kind: KindAdmission, PatientID: 28064212, PatientType: "E", Priority: 1, Waited: 3},
			"Time 17: 28064212 (Priority 1, waited 3) admitted to Hospital\n",
		},
		{
			"departure",
			EventRecord{Time: 17, Kind: KindDeparture, PatientID: 28064212, PatientType: "E", Priority: 1, RoomsRemaining: 3},
			"Time 17: 28064212 (Priority 1) departs, 3 rm(s) remain\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderOne(tt.record); got != tt.want {
				t.Errorf("got:\n%q\nwant:\n%q", got, tt.want)
			}
		})
	}
}

func TestMultiReporter_FansOut(t *testing.T) {
	a := NewSimulationTrace()
	b := NewSimulationTrace()
	multi := MultiReporter{a, b}

	multi.Record(EventRecord{Kind: KindArrival, PatientID: 1})

	if len(a.Records) != 1 || len(b.Records) != 1 {
		t.Errorf("fan-out: got %d and %d records, want 1 and 1", len(a.Records), len(b.Records))
	}
}

func TestSimulationTrace_OfKind(t *testing.T) {
	st := NewSimulationTrace()
	st.Record(EventRecord{Kind: KindArrival, PatientID: 1})
	st.Record(EventRecord{Kind: KindDeparture, PatientID: 1})
	st.Record(EventRecord{Kind: KindArrival, PatientID: 2})

	arrivals := st.OfKind(KindArrival)
	if len(arrivals) != 2 || arrivals[1].PatientID != 2 {
		t.Errorf("OfKind(arrival): got %+v, want two records ending with patient 2", arrivals)
	}
}
