package model

import (
	"context"
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// ortEnv manages global ONNX Runtime initialization (process-wide singleton).
var ortEnv struct {
	once sync.Once
	err  error
}

// initORT initializes the ONNX Runtime environment. Only the first call has
// any effect.
func initORT(libPath string) error {
	ortEnv.once.Do(func() {
		if libPath != "" {
			ort.SetSharedLibraryPath(libPath)
		}
		ortEnv.err = ort.InitializeEnvironment()
	})
	return ortEnv.err
}

// ONNXClassifier runs a classifier exported to ONNX with zipmap disabled: one
// float input of shape [batch, features], an int64 label output and a float
// probabilities output of shape [batch, classes].
type ONNXClassifier struct {
	session   *ort.DynamicAdvancedSession
	inputName string
	labelName string
	probaName string
	nFeatures int64
	nClasses  int64
}

func newONNXClassifier(modelPath, libPath string, numFeatures int) (*ONNXClassifier, error) {
	if err := initORT(libPath); err != nil {
		return nil, fmt.Errorf("onnx: failed to initialize runtime: %w", err)
	}

	inputs, outputs, err := ort.GetInputOutputInfo(modelPath)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to read model info: %w", err)
	}
	if len(inputs) != 1 {
		return nil, fmt.Errorf("onnx: expected 1 input, got %d", len(inputs))
	}

	in := inputs[0]
	if len(in.Dimensions) != 2 {
		return nil, fmt.Errorf("onnx: expected 2D input tensor, got %v", in.Dimensions)
	}
	nFeatures := in.Dimensions[1]
	if nFeatures <= 0 {
		nFeatures = int64(numFeatures)
	}
	if numFeatures != 0 && nFeatures != int64(numFeatures) {
		return nil, fmt.Errorf("%w: model expects %d features, encoder produces %d", ErrFeatureCount, nFeatures, numFeatures)
	}
	if nFeatures <= 0 {
		return nil, fmt.Errorf("onnx: cannot determine input width")
	}

	labelName, probaName, nClasses, err := findOutputs(outputs)
	if err != nil {
		return nil, err
	}

	opts, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create session options: %w", err)
	}
	defer opts.Destroy()
	opts.SetIntraOpNumThreads(1)
	opts.SetInterOpNumThreads(1)

	session, err := ort.NewDynamicAdvancedSession(
		modelPath,
		[]string{in.Name},
		[]string{labelName, probaName},
		opts,
	)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create session: %w", err)
	}

	return &ONNXClassifier{
		session:   session,
		inputName: in.Name,
		labelName: labelName,
		probaName: probaName,
		nFeatures: nFeatures,
		nClasses:  nClasses,
	}, nil
}

// findOutputs picks the label and probabilities outputs, by name when the
// exporter used the conventional names and by position otherwise.
func findOutputs(outputs []ort.InputOutputInfo) (string, string, int64, error) {
	if len(outputs) != 2 {
		return "", "", 0, fmt.Errorf("onnx: expected 2 outputs, got %d", len(outputs))
	}

	label, proba := outputs[0], outputs[1]
	for _, o := range outputs {
		switch o.Name {
		case "label", "output_label":
			label = o
		case "probabilities", "output_probability":
			proba = o
		}
	}
	if label.Name == proba.Name {
		return "", "", 0, fmt.Errorf("onnx: cannot tell label and probabilities outputs apart")
	}

	nClasses := int64(2)
	if len(proba.Dimensions) == 2 && proba.Dimensions[1] > 0 {
		nClasses = proba.Dimensions[1]
	}
	return label.Name, proba.Name, nClasses, nil
}

func (c *ONNXClassifier) run(features []float64) (int64, []float32, error) {
	if int64(len(features)) != c.nFeatures {
		return 0, nil, fmt.Errorf("%w: got %d, want %d", ErrFeatureCount, len(features), c.nFeatures)
	}

	x := make([]float32, len(features))
	for i, v := range features {
		x[i] = float32(v)
	}

	tIn, err := ort.NewTensor(ort.NewShape(1, c.nFeatures), x)
	if err != nil {
		return 0, nil, fmt.Errorf("onnx: failed to create input tensor: %w", err)
	}
	defer tIn.Destroy()

	tLabel, err := ort.NewEmptyTensor[int64](ort.NewShape(1))
	if err != nil {
		return 0, nil, fmt.Errorf("onnx: failed to create label tensor: %w", err)
	}
	defer tLabel.Destroy()

	tProba, err := ort.NewEmptyTensor[float32](ort.NewShape(1, c.nClasses))
	if err != nil {
		return 0, nil, fmt.Errorf("onnx: failed to create probabilities tensor: %w", err)
	}
	defer tProba.Destroy()

	if err := c.session.Run([]ort.Value{tIn}, []ort.Value{tLabel, tProba}); err != nil {
		return 0, nil, fmt.Errorf("onnx: inference failed: %w", err)
	}

	// Copy data out before the tensors are destroyed.
	proba := make([]float32, c.nClasses)
	copy(proba, tProba.GetData())
	return tLabel.GetData()[0], proba, nil
}

// Predict returns the label the ONNX model assigns to features.
func (c *ONNXClassifier) Predict(_ context.Context, features []float64) (int, error) {
	label, _, err := c.run(features)
	if err != nil {
		return 0, err
	}
	return int(label), nil
}

// PredictProba returns the class probabilities the ONNX model assigns to features.
func (c *ONNXClassifier) PredictProba(_ context.Context, features []float64) ([]float64, error) {
	_, p, err := c.run(features)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(p))
	for i, v := range p {
		out[i] = float64(v)
	}
	return out, nil
}

// Close releases the ONNX session.
func (c *ONNXClassifier) Close() error {
	return c.session.Destroy()
}
