// Package testutil provides test utilities and helpers.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// DataCSV is a small reference dataset.
const DataCSV = `AnimalName,symptoms1,symptoms2,symptoms3,symptoms4,symptoms5,Dangerous
Dog,vomiting,diarrhea,lethargy,,,Yes
Cat,itching,fever,,,,No
Dog,fever,lethargy,diarrhea,itching,,No
`

// EncoderJSON encodes AnimalName over {Cat, Dog} and every symptom slot over
// {"", diarrhea, fever, itching, lethargy, vomiting}, ignoring unknown values.
// The encoded width is 32; symptoms1 == "vomiting" sets index 7.
const EncoderJSON = `{
  "type": "onehot",
  "features": ["AnimalName", "symptoms1", "symptoms2", "symptoms3", "symptoms4", "symptoms5"],
  "categories": [
    ["Cat", "Dog"],
    ["", "diarrhea", "fever", "itching", "lethargy", "vomiting"],
    ["", "diarrhea", "fever", "itching", "lethargy", "vomiting"],
    ["", "diarrhea", "fever", "itching", "lethargy", "vomiting"],
    ["", "diarrhea", "fever", "itching", "lethargy", "vomiting"],
    ["", "diarrhea", "fever", "itching", "lethargy", "vomiting"]
  ],
  "handle_unknown": "ignore"
}`

// EncodedWidth is the feature count produced by EncoderJSON.
const EncodedWidth = 32

// VomitingFeature is the encoded index of symptoms1 == "vomiting".
const VomitingFeature = 7

// ForestJSON is a two-tree forest. Records whose first symptom is "vomiting"
// score [0.375, 0.625] (dangerous); all others score [0.7, 0.3].
const ForestJSON = `{
  "type": "random_forest",
  "n_features": 32,
  "classes": [0, 1],
  "trees": [
    {
      "children_left": [1, -1, -1],
      "children_right": [2, -1, -1],
      "feature": [7, -2, -2],
      "threshold": [0.5, -2, -2],
      "value": [[10, 4], [9, 1], [1, 3]]
    },
    {
      "children_left": [-1],
      "children_right": [-1],
      "feature": [-2],
      "threshold": [-2],
      "value": [[1, 1]]
    }
  ]
}`

// Artifacts holds the paths of fixture files written by WriteArtifacts.
type Artifacts struct {
	DataPath    string
	EncoderPath string
	ModelPath   string
}

// WriteArtifacts writes the fixture dataset, encoder and forest into a
// temporary directory.
func WriteArtifacts(t *testing.T) Artifacts {
	t.Helper()
	dir := t.TempDir()

	a := Artifacts{
		DataPath:    WriteFile(t, dir, "data.csv", DataCSV),
		EncoderPath: WriteFile(t, dir, "onehot_encoder.json", EncoderJSON),
		ModelPath:   WriteFile(t, dir, "random_forest_model.json", ForestJSON),
	}
	return a
}

// WriteFile writes content to dir/name and returns the path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}
