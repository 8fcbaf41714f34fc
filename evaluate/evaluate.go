package evaluate

import (
	"errors"
	"fmt"
	"sync"

	rotframe "github.com/rotframe/go-rotframe"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrEmptyBatch is returned when evaluating an empty prediction or
	// ground truth batch
	ErrEmptyBatch = errors.New("empty evaluation batch")
	// ErrShapeMismatch is returned when prediction and ground truth sample
	// counts differ or a sample has no ranked candidates
	ErrShapeMismatch = errors.New("prediction and ground truth shapes do not match")
)

// EvaluatorParams defines the struct containing the Evaluator parameters to
// use for scoring ranked angle predictions
type EvaluatorParams struct {
	// Threshold is the maximum circular bias in degrees for a candidate to
	// count as correct.  Values above 180 are clamped, at 180 every sample
	// is trivially correct.
	Threshold int
	// TopK is the number of ranked candidates considered per sample
	TopK int
	// NearBias and FarBias bound the diagnostic error buckets over the
	// top-1 bias.  Bias at or below NearBias lands in the near bucket, at
	// or above FarBias in the far bucket.
	NearBias int
	FarBias  int
	// Workers is the number of goroutines computing per sample bias.
	// Values below 2 run single threaded.
	Workers int
}

// DefaultEvaluatorParams returns an instance of EvaluatorParams configured
// with the reference deployment values
// - Threshold: 10
// - TopK: 15
// - Near Bias: 5
// - Far Bias: 170
func DefaultEvaluatorParams() EvaluatorParams {
	return EvaluatorParams{
		Threshold: 10,
		TopK:      DefaultTopK,
		NearBias:  5,
		FarBias:   170,
		Workers:   1,
	}
}

// SweepPoint is one entry of the threshold sweep curve
type SweepPoint struct {
	Threshold int
	Top1      float64
	TopK      float64
}

// WrongSample pairs a wrong top-1 prediction with its ground truth for
// external inspection
type WrongSample struct {
	Predicted   int
	GroundTruth int
}

// Result aggregates one evaluation pass over a batch
type Result struct {
	// Top1 and TopK are the accuracies at the configured threshold
	Top1 float64
	TopK float64
	// Sweep is the accuracy curve over thresholds 0 to the configured
	// maximum, non decreasing in both accuracies
	Sweep []SweepPoint
	// Wrong lists the samples whose top-1 bias exceeds the threshold
	Wrong []WrongSample
	// bucket counts over the top-1 bias
	Near int
	Mid  int
	Far  int
	// Bias is the per sample top-1 circular bias
	Bias []float64
	// SmoothedBias is the per sample top-1 bias of the smoothed ranking
	// when one was supplied, for diagnostic comparison against Bias.  It
	// never affects the primary accuracy numbers.
	SmoothedBias []float64
}

// Evaluator scores ranked angle predictions against ground truth on the
// circular degree domain
type Evaluator struct {
	// Params are the evaluation configuration parameters
	Params EvaluatorParams
}

// NewEvaluator returns an instance of the Evaluator
func NewEvaluator(p EvaluatorParams) *Evaluator {
	return &Evaluator{
		Params: p,
	}
}

// Evaluate computes top-1/top-K accuracy, the threshold sweep, error
// buckets and the wrong sample list for a batch of ranked predictions
func (e *Evaluator) Evaluate(ranked [][]int, truth []int) (*Result, error) {

	if len(ranked) == 0 || len(truth) == 0 {
		return nil, ErrEmptyBatch
	}

	if len(ranked) != len(truth) {
		return nil, fmt.Errorf("%w: %d predictions, %d truths",
			ErrShapeMismatch, len(ranked), len(truth))
	}

	for i, row := range ranked {
		if len(row) == 0 {
			return nil, fmt.Errorf("%w: sample %d has no candidates",
				ErrShapeMismatch, i)
		}
	}

	threshold := clampThreshold(e.Params.Threshold)

	bias := e.biasMatrix(ranked, truth)

	res := &Result{
		Bias: make([]float64, len(bias)),
	}

	res.Top1, res.TopK = accuracyAt(bias, float64(threshold))

	// sweep every integer threshold up to the configured maximum
	for t := 0; t <= threshold; t++ {
		top1, topK := accuracyAt(bias, float64(t))

		res.Sweep = append(res.Sweep, SweepPoint{
			Threshold: t,
			Top1:      top1,
			TopK:      topK,
		})
	}

	// bucket the top-1 bias and collect wrong samples
	for i, row := range bias {
		top1Bias := row[0]
		res.Bias[i] = top1Bias

		switch {
		case top1Bias >= float64(e.Params.FarBias):
			res.Far++
		case top1Bias <= float64(e.Params.NearBias):
			res.Near++
		default:
			res.Mid++
		}

		if top1Bias > float64(threshold) {
			res.Wrong = append(res.Wrong, WrongSample{
				Predicted:   ranked[i][0],
				GroundTruth: truth[i],
			})
		}
	}

	return res, nil
}

// EvaluateWithSmoothed evaluates the raw ranking and additionally reports
// the top-1 bias of a post processed (smoothed) ranking of the same batch
// alongside it
func (e *Evaluator) EvaluateWithSmoothed(ranked, smoothed [][]int,
	truth []int) (*Result, error) {

	res, err := e.Evaluate(ranked, truth)

	if err != nil {
		return nil, err
	}

	if len(smoothed) != len(truth) {
		return nil, fmt.Errorf("%w: %d smoothed predictions, %d truths",
			ErrShapeMismatch, len(smoothed), len(truth))
	}

	res.SmoothedBias = make([]float64, len(smoothed))

	for i, row := range smoothed {
		if len(row) == 0 {
			return nil, fmt.Errorf("%w: smoothed sample %d has no candidates",
				ErrShapeMismatch, i)
		}

		res.SmoothedBias[i] = rotframe.CircularDistance(
			float64(row[0]), float64(truth[i]))
	}

	return res, nil
}

// biasMatrix computes the circular bias of every ranked candidate against
// its sample's ground truth.  Samples are independent so the computation
// fans out over workers when configured, with each goroutine writing only
// its own sample rows.
func (e *Evaluator) biasMatrix(ranked [][]int, truth []int) [][]float64 {

	bias := make([][]float64, len(ranked))

	topK := e.Params.TopK

	if topK <= 0 {
		topK = DefaultTopK
	}

	fill := func(i int) {
		row := ranked[i]

		if len(row) > topK {
			row = row[:topK]
		}

		biasRow := make([]float64, len(row))

		for k, pred := range row {
			biasRow[k] = rotframe.CircularDistance(
				float64(pred), float64(truth[i]))
		}

		bias[i] = biasRow
	}

	if e.Params.Workers < 2 {
		for i := range ranked {
			fill(i)
		}

		return bias
	}

	jobs := make(chan int)

	var wg sync.WaitGroup

	for w := 0; w < e.Params.Workers; w++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range jobs {
				fill(i)
			}
		}()
	}

	for i := range ranked {
		jobs <- i
	}

	close(jobs)
	wg.Wait()

	return bias
}

// accuracyAt computes the top-1 and top-K hit rates at the given threshold.
// A sample counts for top-K if any of its ranked candidates is within the
// threshold.
func accuracyAt(bias [][]float64, threshold float64) (float64, float64) {

	hit1 := make([]float64, len(bias))
	hitK := make([]float64, len(bias))

	for i, row := range bias {
		if row[0] <= threshold {
			hit1[i] = 1
		}

		for _, b := range row {
			if b <= threshold {
				hitK[i] = 1
				break
			}
		}
	}

	return stat.Mean(hit1, nil), stat.Mean(hitK, nil)
}

// clampThreshold restricts the threshold to the valid [0,180] circular
// bias range
func clampThreshold(t int) int {

	if t < 0 {
		return 0
	}

	if t > 180 {
		return 180
	}

	return t
}
