package evaluate

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

// floatsNear compares two floats within tolerance
func floatsNear(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestEvaluateTop1WithinThreshold(t *testing.T) {

	e := NewEvaluator(EvaluatorParams{Threshold: 10, TopK: 15, NearBias: 5, FarBias: 170})

	// top-1 bias is distance(10, 15) = 5 which is within the threshold
	ranked := [][]int{{10, 190, 50}}
	truth := []int{15}

	res, err := e.Evaluate(ranked, truth)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Top1 != 1.0 || res.TopK != 1.0 {
		t.Errorf("expected top1=1.0 topK=1.0, got %v and %v", res.Top1, res.TopK)
	}

	if len(res.Wrong) != 0 {
		t.Errorf("expected no wrong samples, got %d", len(res.Wrong))
	}
}

func TestEvaluateTopKRescue(t *testing.T) {

	e := NewEvaluator(EvaluatorParams{Threshold: 2, TopK: 15, NearBias: 5, FarBias: 170})

	// top-1 bias 5 exceeds threshold 2, but the third candidate's bias
	// distance(14, 15) = 1 keeps top-K correct
	ranked := [][]int{{10, 190, 14}}
	truth := []int{15}

	res, err := e.Evaluate(ranked, truth)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Top1 != 0.0 {
		t.Errorf("expected top1=0.0, got %v", res.Top1)
	}

	if res.TopK != 1.0 {
		t.Errorf("expected topK=1.0, got %v", res.TopK)
	}

	expectedWrong := []WrongSample{{Predicted: 10, GroundTruth: 15}}

	if !reflect.DeepEqual(res.Wrong, expectedWrong) {
		t.Errorf("expected wrong samples %+v, got %+v", expectedWrong, res.Wrong)
	}
}

func TestEvaluateBuckets(t *testing.T) {

	e := NewEvaluator(EvaluatorParams{Threshold: 10, TopK: 5, NearBias: 5, FarBias: 170})

	ranked := [][]int{
		{100},      // bias 0, near
		{105},      // bias 5, near
		{150},      // bias 50, mid
		{280},      // bias 180, far
		{271},      // bias 171, far
	}
	truth := []int{100, 100, 100, 100, 100}

	res, err := e.Evaluate(ranked, truth)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Near != 2 || res.Mid != 1 || res.Far != 2 {
		t.Errorf("expected buckets near=2 mid=1 far=2, got near=%d mid=%d far=%d",
			res.Near, res.Mid, res.Far)
	}
}

// TestEvaluateSweepMonotonic asserts the threshold sweep curve never
// decreases in either accuracy
func TestEvaluateSweepMonotonic(t *testing.T) {

	e := NewEvaluator(EvaluatorParams{Threshold: 180, TopK: 3, NearBias: 5, FarBias: 170})

	ranked := [][]int{
		{12, 40, 200},
		{359, 5, 100},
		{180, 181, 179},
		{90, 270, 0},
		{33, 34, 35},
	}
	truth := []int{10, 0, 0, 95, 120}

	res, err := e.Evaluate(ranked, truth)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Sweep) != 181 {
		t.Fatalf("expected 181 sweep points, got %d", len(res.Sweep))
	}

	for i := 1; i < len(res.Sweep); i++ {
		if res.Sweep[i].Top1 < res.Sweep[i-1].Top1 {
			t.Errorf("top1 sweep decreased at threshold %d: %v -> %v",
				i, res.Sweep[i-1].Top1, res.Sweep[i].Top1)
		}

		if res.Sweep[i].TopK < res.Sweep[i-1].TopK {
			t.Errorf("topK sweep decreased at threshold %d: %v -> %v",
				i, res.Sweep[i-1].TopK, res.Sweep[i].TopK)
		}
	}

	// at the maximum threshold every sample is trivially correct
	if res.Sweep[180].Top1 != 1.0 || res.Sweep[180].TopK != 1.0 {
		t.Errorf("expected accuracy 1.0 at threshold 180, got %v and %v",
			res.Sweep[180].Top1, res.Sweep[180].TopK)
	}
}

func TestEvaluateThresholdClamp(t *testing.T) {

	e := NewEvaluator(EvaluatorParams{Threshold: 999, TopK: 1, NearBias: 5, FarBias: 170})

	ranked := [][]int{{0}, {180}}
	truth := []int{180, 0}

	res, err := e.Evaluate(ranked, truth)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// threshold clamps to 180 so even opposite predictions count
	if res.Top1 != 1.0 {
		t.Errorf("expected top1=1.0 at clamped threshold, got %v", res.Top1)
	}

	if len(res.Sweep) != 181 {
		t.Errorf("expected sweep clamped to 181 points, got %d", len(res.Sweep))
	}
}

func TestEvaluateErrors(t *testing.T) {

	e := NewEvaluator(DefaultEvaluatorParams())

	if _, err := e.Evaluate(nil, nil); !errors.Is(err, ErrEmptyBatch) {
		t.Errorf("expected ErrEmptyBatch, got %v", err)
	}

	if _, err := e.Evaluate([][]int{{1}}, []int{1, 2}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch for length mismatch, got %v", err)
	}

	if _, err := e.Evaluate([][]int{{}}, []int{1}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch for empty candidate row, got %v", err)
	}
}

// TestEvaluateWorkersParity checks the parallel bias computation gives the
// identical result as the single threaded path
func TestEvaluateWorkersParity(t *testing.T) {

	serial := NewEvaluator(EvaluatorParams{Threshold: 15, TopK: 5, NearBias: 5, FarBias: 170, Workers: 1})
	parallel := NewEvaluator(EvaluatorParams{Threshold: 15, TopK: 5, NearBias: 5, FarBias: 170, Workers: 8})

	ranked := make([][]int, 200)
	truth := make([]int, 200)

	for i := range ranked {
		ranked[i] = []int{(i * 7) % 360, (i * 13) % 360, (i * 29) % 360}
		truth[i] = (i * 11) % 360
	}

	a, err := serial.Evaluate(ranked, truth)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, err := parallel.Evaluate(ranked, truth)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Error("parallel evaluation differs from serial evaluation")
	}
}

func TestEvaluateWithSmoothed(t *testing.T) {

	e := NewEvaluator(EvaluatorParams{Threshold: 10, TopK: 3, NearBias: 5, FarBias: 170})

	ranked := [][]int{{10, 190, 50}, {200, 10, 30}}
	smoothed := [][]int{{12, 190, 50}, {25, 10, 30}}
	truth := []int{15, 20}

	res, err := e.EvaluateWithSmoothed(ranked, smoothed, truth)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectedRaw := []float64{5, 180}
	expectedSmoothed := []float64{3, 5}

	for i := range expectedRaw {
		if !floatsNear(res.Bias[i], expectedRaw[i], 1e-9) {
			t.Errorf("sample %d: expected raw bias %v, got %v",
				i, expectedRaw[i], res.Bias[i])
		}

		if !floatsNear(res.SmoothedBias[i], expectedSmoothed[i], 1e-9) {
			t.Errorf("sample %d: expected smoothed bias %v, got %v",
				i, expectedSmoothed[i], res.SmoothedBias[i])
		}
	}

	// the raw accuracy must be unaffected by the smoothed ranking
	if res.Top1 != 0.5 {
		t.Errorf("expected top1=0.5, got %v", res.Top1)
	}
}
