package model

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"symptomcheck/internal/models"
)

// Tree is one fitted decision tree in flat array form. Node i is a leaf when
// ChildrenLeft[i] == -1; otherwise samples with x[Feature[i]] <= Threshold[i]
// go left. Value[i] holds the class weights at node i.
type Tree struct {
	ChildrenLeft  []int       `json:"children_left"`
	ChildrenRight []int       `json:"children_right"`
	Feature       []int       `json:"feature"`
	Threshold     []float64   `json:"threshold"`
	Value         [][]float64 `json:"value"`
}

// Forest is a tree-ensemble classifier: a random forest, or a single decision
// tree when it has one tree.
type Forest struct {
	Type        string `json:"type"`
	NFeatures   int    `json:"n_features"`
	ClassLabels []int  `json:"classes"`
	Trees       []Tree `json:"trees"`
}

// LoadForest reads a JSON tree-ensemble export from path. numFeatures, when
// non-zero, must match the forest's input width.
func LoadForest(path string, numFeatures int) (*Forest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ArtifactLoadError{Artifact: ArtifactClassifier, Path: path, Err: err}
	}

	f, err := ParseForest(data)
	if err != nil {
		return nil, &ArtifactLoadError{Artifact: ArtifactClassifier, Path: path, Err: err}
	}
	if numFeatures != 0 && f.NFeatures != numFeatures {
		return nil, &ArtifactLoadError{
			Artifact: ArtifactClassifier,
			Path:     path,
			Err:      fmt.Errorf("%w: model expects %d features, encoder produces %d", ErrFeatureCount, f.NFeatures, numFeatures),
		}
	}
	return f, nil
}

// ParseForest decodes and validates a JSON tree-ensemble export.
func ParseForest(data []byte) (*Forest, error) {
	var f Forest
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *Forest) validate() error {
	if f.Type != "random_forest" && f.Type != "decision_tree" {
		return fmt.Errorf("%w: classifier type %q", ErrUnsupportedType, f.Type)
	}
	if f.NFeatures <= 0 {
		return fmt.Errorf("%w: n_features must be positive", ErrInvalidArtifact)
	}
	if len(f.ClassLabels) != 2 {
		return fmt.Errorf("%w: expected 2 classes, got %d", ErrInvalidArtifact, len(f.ClassLabels))
	}
	// Probability columns are read as [not dangerous, dangerous].
	if f.ClassLabels[0] != models.LabelNotDangerous || f.ClassLabels[1] != models.LabelDangerous {
		return fmt.Errorf("%w: classes must be [0, 1], got %v", ErrInvalidArtifact, f.ClassLabels)
	}
	if len(f.Trees) == 0 {
		return fmt.Errorf("%w: no trees", ErrInvalidArtifact)
	}
	if f.Type == "decision_tree" && len(f.Trees) != 1 {
		return fmt.Errorf("%w: decision_tree has %d trees", ErrInvalidArtifact, len(f.Trees))
	}
	for i := range f.Trees {
		if err := f.validateTree(&f.Trees[i]); err != nil {
			return fmt.Errorf("tree %d: %w", i, err)
		}
	}
	return nil
}

// validateTree checks array shapes and that every child index is greater than
// its parent, which rules out cycles during traversal.
func (f *Forest) validateTree(t *Tree) error {
	n := len(t.ChildrenLeft)
	if n == 0 {
		return fmt.Errorf("%w: empty tree", ErrInvalidArtifact)
	}
	if len(t.ChildrenRight) != n || len(t.Feature) != n || len(t.Threshold) != n || len(t.Value) != n {
		return fmt.Errorf("%w: node arrays differ in length", ErrInvalidArtifact)
	}

	for i := 0; i < n; i++ {
		left, right := t.ChildrenLeft[i], t.ChildrenRight[i]
		if left == -1 {
			if right != -1 {
				return fmt.Errorf("%w: node %d has one child", ErrInvalidArtifact, i)
			}
			if len(t.Value[i]) != len(f.ClassLabels) {
				return fmt.Errorf("%w: leaf %d has %d class weights", ErrInvalidArtifact, i, len(t.Value[i]))
			}
			var sum float64
			for _, w := range t.Value[i] {
				if w < 0 {
					return fmt.Errorf("%w: leaf %d has negative weight", ErrInvalidArtifact, i)
				}
				sum += w
			}
			if sum <= 0 {
				return fmt.Errorf("%w: leaf %d has no weight", ErrInvalidArtifact, i)
			}
			continue
		}
		if left <= i || left >= n || right <= i || right >= n {
			return fmt.Errorf("%w: node %d has out of range children", ErrInvalidArtifact, i)
		}
		if t.Feature[i] < 0 || t.Feature[i] >= f.NFeatures {
			return fmt.Errorf("%w: node %d splits on feature %d", ErrInvalidArtifact, i, t.Feature[i])
		}
	}
	return nil
}

// PredictProba returns the mean of the per-tree leaf class distributions.
func (f *Forest) PredictProba(_ context.Context, features []float64) ([]float64, error) {
	if len(features) != f.NFeatures {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrFeatureCount, len(features), f.NFeatures)
	}

	proba := make([]float64, len(f.ClassLabels))
	for i := range f.Trees {
		leaf := f.Trees[i].Value[f.Trees[i].leaf(features)]
		var sum float64
		for _, w := range leaf {
			sum += w
		}
		for c, w := range leaf {
			proba[c] += w / sum
		}
	}

	n := float64(len(f.Trees))
	for c := range proba {
		proba[c] /= n
	}
	return proba, nil
}

// Predict returns the class with the highest mean probability.
func (f *Forest) Predict(ctx context.Context, features []float64) (int, error) {
	proba, err := f.PredictProba(ctx, features)
	if err != nil {
		return 0, err
	}
	return f.ClassLabels[argmax(proba)], nil
}

func (t *Tree) leaf(x []float64) int {
	node := 0
	for t.ChildrenLeft[node] != -1 {
		if x[t.Feature[node]] <= t.Threshold[node] {
			node = t.ChildrenLeft[node]
		} else {
			node = t.ChildrenRight[node]
		}
	}
	return node
}
