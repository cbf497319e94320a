// Package catalog loads the reference dataset of known animal and symptom
// combinations used to populate the selection inputs.
package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"symptomcheck/internal/models"
)

// ErrMissingColumn is returned when the dataset header lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

// DataLoadError reports a failure to load the reference dataset.
type DataLoadError struct {
	Path string
	Err  error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("failed to load reference data %s: %v", e.Path, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}

// Catalog holds the distinct animals and symptoms of the dataset, in order of
// first appearance. It is never modified after Load returns.
type Catalog struct {
	Animals  []string
	Symptoms []string

	animalSet  map[string]struct{}
	symptomSet map[string]struct{}
}

// Load reads the dataset at path.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DataLoadError{Path: path, Err: err}
	}
	defer f.Close()

	c, err := Read(f)
	if err != nil {
		return nil, &DataLoadError{Path: path, Err: err}
	}
	return c, nil
}

// Read parses a dataset with the columns AnimalName, symptoms1..symptoms5.
// Other columns are ignored. Symptoms are collected row by row across the
// five symptom columns; empty cells are skipped.
func Read(r io.Reader) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.New("dataset is empty")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	idx, err := columnIndexes(header)
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		animalSet:  make(map[string]struct{}),
		symptomSet: make(map[string]struct{}),
	}

	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", line, err)
		}

		if v := cell(row, idx[0]); v != "" {
			c.addAnimal(v)
		}
		for _, i := range idx[1:] {
			if v := cell(row, i); v != "" {
				c.addSymptom(v)
			}
		}
	}

	return c, nil
}

// HasAnimal reports whether name appears in the dataset.
func (c *Catalog) HasAnimal(name string) bool {
	_, ok := c.animalSet[name]
	return ok
}

// HasSymptom reports whether symptom appears in the dataset.
func (c *Catalog) HasSymptom(symptom string) bool {
	_, ok := c.symptomSet[symptom]
	return ok
}

func (c *Catalog) addAnimal(v string) {
	if _, ok := c.animalSet[v]; ok {
		return
	}
	c.animalSet[v] = struct{}{}
	c.Animals = append(c.Animals, v)
}

func (c *Catalog) addSymptom(v string) {
	if _, ok := c.symptomSet[v]; ok {
		return
	}
	c.symptomSet[v] = struct{}{}
	c.Symptoms = append(c.Symptoms, v)
}

// columnIndexes maps models.RecordColumns to their header positions.
func columnIndexes(header []string) ([]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := pos[h]; !dup {
			pos[h] = i
		}
	}

	idx := make([]int, len(models.RecordColumns))
	for i, col := range models.RecordColumns {
		p, ok := pos[col]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, col)
		}
		idx[i] = p
	}
	return idx, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
