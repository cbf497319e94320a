package models

// SymptomSlots is the number of symptom inputs a submission can carry.
const SymptomSlots = 5

// MinSymptoms is the number of selected symptoms required before predicting.
const MinSymptoms = 3

// NoneSelected is the sentinel value of a select input with nothing chosen.
// The catalog never contains it, so it cannot collide with a real value.
const NoneSelected = ""

// RecordColumns are the column names of a SymptomRecord, in encoder order.
var RecordColumns = []string{"AnimalName", "symptoms1", "symptoms2", "symptoms3", "symptoms4", "symptoms5"}

// SymptomRecord is the fixed-schema row passed to the encoder.
// Unfilled symptom slots hold the empty string.
type SymptomRecord struct {
	AnimalName string
	Symptoms   [SymptomSlots]string
}

// Values returns the record as a row matching RecordColumns.
func (r SymptomRecord) Values() []string {
	row := make([]string, 0, len(RecordColumns))
	row = append(row, r.AnimalName)
	row = append(row, r.Symptoms[:]...)
	return row
}

// Submission is a validated form submission.
type Submission struct {
	Animal string
	// Picks holds the raw slot values, sentinel included.
	Picks [SymptomSlots]string
	// Selected holds the non-sentinel symptoms in slot order.
	Selected []string
}

// Record builds the encoder input for the submission.
func (s Submission) Record() SymptomRecord {
	rec := SymptomRecord{AnimalName: s.Animal}
	for i, p := range s.Picks {
		if p == NoneSelected {
			rec.Symptoms[i] = ""
			continue
		}
		rec.Symptoms[i] = p
	}
	return rec
}
