package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleCSV = `AnimalName,symptoms1,symptoms2,symptoms3,symptoms4,symptoms5,Dangerous
Dog,vomiting,diarrhea,lethargy,,,Yes
Cat,itching,hair loss,vomiting,fever,,No
Dog,fever,coughing,,,,No
Rabbit,diarrhea,loss of appetite,weight loss,lethargy,dehydration,Yes
`

func TestRead(t *testing.T) {
	c, err := Read(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	wantAnimals := []string{"Dog", "Cat", "Rabbit"}
	if diff := cmp.Diff(wantAnimals, c.Animals); diff != "" {
		t.Errorf("Animals mismatch (-want +got):\n%s", diff)
	}

	wantSymptoms := []string{
		"vomiting", "diarrhea", "lethargy", "itching", "hair loss", "fever",
		"coughing", "loss of appetite", "weight loss", "dehydration",
	}
	if diff := cmp.Diff(wantSymptoms, c.Symptoms); diff != "" {
		t.Errorf("Symptoms mismatch (-want +got):\n%s", diff)
	}

	if !c.HasAnimal("Cat") || c.HasAnimal("Horse") {
		t.Error("HasAnimal() returned unexpected result")
	}
	if !c.HasSymptom("fever") || c.HasSymptom("") {
		t.Error("HasSymptom() returned unexpected result")
	}
}

func TestRead_KeepsSlotOrderWhateverHeaderOrder(t *testing.T) {
	data := "symptoms5,symptoms4,symptoms3,symptoms2,symptoms1,AnimalName\n,,c,b,a,Goat\n"
	c, err := Read(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, c.Symptoms); diff != "" {
		t.Errorf("Symptoms mismatch (-want +got):\n%s", diff)
	}
}

func TestRead_MissingColumn(t *testing.T) {
	data := "AnimalName,symptoms1,symptoms2,symptoms3,symptoms4\nDog,a,b,c,d\n"
	_, err := Read(strings.NewReader(data))
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("Read() error = %v, want ErrMissingColumn", err)
	}
	if !strings.Contains(err.Error(), "symptoms5") {
		t.Errorf("error %q should name the missing column", err)
	}
}

func TestRead_Empty(t *testing.T) {
	if _, err := Read(strings.NewReader("")); err == nil {
		t.Fatal("Read() expected error for empty input")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(c.Animals) != 3 {
		t.Errorf("len(Animals) = %d, want 3", len(c.Animals))
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	badPath := filepath.Join(dir, "bad.csv")
	if err := os.WriteFile(badPath, []byte("Name,Symptom\nDog,fever\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.csv")},
		{"wrong columns", badPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			var loadErr *DataLoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("Load() error = %v, want *DataLoadError", err)
			}
			if loadErr.Path != tt.path {
				t.Errorf("DataLoadError.Path = %q, want %q", loadErr.Path, tt.path)
			}
		})
	}
}
