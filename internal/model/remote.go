package model

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type remotePredictRequest struct {
	Values [][]float64 `json:"values"`
}

type remotePredictResponse struct {
	Predictions   []int       `json:"predictions"`
	Probabilities [][]float64 `json:"probabilities"`
	Status        string      `json:"status"`
}

// RemoteClassifier delegates prediction to an out-of-process model server
// that holds the trained artifact.
type RemoteClassifier struct {
	baseURL string
	client  *http.Client
}

// NewRemoteClassifier creates a client for the model server at baseURL.
func NewRemoteClassifier(baseURL string, timeout time.Duration) *RemoteClassifier {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &RemoteClassifier{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Health checks that the model server is reachable.
func (r *RemoteClassifier) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("model server unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("model server unhealthy: %d", resp.StatusCode)
	}
	return nil
}

// Classify returns the label and class probabilities from a single
// /predict round trip.
func (r *RemoteClassifier) Classify(ctx context.Context, features []float64) (int, []float64, error) {
	out, err := r.call(ctx, features)
	if err != nil {
		return 0, nil, err
	}
	if len(out.Predictions) != 1 {
		return 0, nil, fmt.Errorf("%w: %d predictions", ErrBadModelResponse, len(out.Predictions))
	}
	if len(out.Probabilities) != 1 {
		return 0, nil, fmt.Errorf("%w: %d probability rows", ErrBadModelResponse, len(out.Probabilities))
	}
	return out.Predictions[0], out.Probabilities[0], nil
}

// Predict returns the label the model server assigns to features.
func (r *RemoteClassifier) Predict(ctx context.Context, features []float64) (int, error) {
	label, _, err := r.Classify(ctx, features)
	return label, err
}

// PredictProba returns the class probabilities the model server assigns to features.
func (r *RemoteClassifier) PredictProba(ctx context.Context, features []float64) ([]float64, error) {
	_, proba, err := r.Classify(ctx, features)
	return proba, err
}

func (r *RemoteClassifier) call(ctx context.Context, features []float64) (*remotePredictResponse, error) {
	body, err := json.Marshal(remotePredictRequest{Values: [][]float64{features}})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("model server request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %s", ErrBadModelResponse, resp.Status)
	}

	var out remotePredictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadModelResponse, err)
	}
	if out.Status != "" && out.Status != "ok" {
		return nil, fmt.Errorf("%w: status %q", ErrBadModelResponse, out.Status)
	}
	return &out, nil
}
