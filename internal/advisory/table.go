// Package advisory resolves first-aid guidance for selected symptoms.
package advisory

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"symptomcheck/internal/models"
	"symptomcheck/internal/validation"
)

//go:embed advice.yaml
var defaultAdvice []byte

// Entry is one symptom definition in an advisory file.
type Entry struct {
	Symptom string `yaml:"symptom"`
	Advice  string `yaml:"advice"`
}

// Table maps lowercase symptoms to advice text. It is immutable after load.
type Table struct {
	advice     map[string]string
	duplicates []string
}

// Default returns the advisory table compiled into the binary.
func Default() (*Table, error) {
	return Parse(defaultAdvice)
}

// LoadFile reads an advisory table from a YAML file.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read advisory file: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse builds a table from a YAML list of entries. Symptoms are lowercased;
// when a symptom is defined again the later advice replaces the earlier one
// and the symptom is recorded in Duplicates.
func Parse(data []byte) (*Table, error) {
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse advisory table: %w", err)
	}

	t := &Table{advice: make(map[string]string, len(entries))}
	for i, e := range entries {
		key := validation.NormalizeSymptom(e.Symptom)
		text := strings.TrimSpace(e.Advice)
		if key == "" {
			return nil, fmt.Errorf("advisory entry %d has no symptom", i+1)
		}
		if text == "" {
			return nil, fmt.Errorf("advisory entry %q has no advice", e.Symptom)
		}
		if _, ok := t.advice[key]; ok {
			t.duplicates = append(t.duplicates, key)
		}
		t.advice[key] = text
	}

	if len(t.advice) == 0 {
		return nil, errors.New("advisory table is empty")
	}
	return t, nil
}

// Len returns the number of distinct symptoms in the table.
func (t *Table) Len() int {
	return len(t.advice)
}

// Duplicates lists symptoms defined more than once, in the order the
// overriding definitions appear.
func (t *Table) Duplicates() []string {
	return t.duplicates
}

// Lookup returns the advice for symptom, ignoring case.
func (t *Table) Lookup(symptom string) (string, bool) {
	text, ok := t.advice[validation.NormalizeSymptom(symptom)]
	return text, ok
}

// Resolve returns one advice block per selected symptom that has advice, in
// selection order. Symptoms without advice are skipped; a symptom selected
// twice yields a single block.
func (t *Table) Resolve(symptoms []string) []models.AdviceBlock {
	seen := make(map[string]bool, len(symptoms))
	var blocks []models.AdviceBlock
	for _, s := range symptoms {
		key := validation.NormalizeSymptom(s)
		text, ok := t.advice[key]
		if !ok || seen[key] {
			continue
		}
		seen[key] = true
		blocks = append(blocks, models.AdviceBlock{
			Symptom: s,
			Title:   Title(s),
			Text:    text,
		})
	}
	return blocks
}

// Title converts a symptom to title case for display.
func Title(symptom string) string {
	// Casers are stateful, so each call gets its own.
	return cases.Title(language.English).String(strings.TrimSpace(symptom))
}
