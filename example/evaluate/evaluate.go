package main

import (
	"flag"
	"fmt"
	"github.com/rotframe/go-rotframe/evaluate"
	"github.com/rotframe/go-rotframe/plot"
	"log"
	"os"
	"runtime"
)

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	// read in cli flags
	scoresFile := flag.String("s", "../data/scores.txt", "File of per sample angle score vectors")
	truthFile := flag.String("g", "../data/truth.txt", "File of ground truth angles, one per line")
	fp16 := flag.Bool("f", false, "Scores file is a raw little endian float16 dump")
	threshold := flag.Int("t", 10, "Bias threshold in degrees a prediction must be within to count as correct")
	topK := flag.Int("k", evaluate.DefaultTopK, "Number of ranked candidates to evaluate")
	window := flag.Int("w", 0, "Circular smoothing window size, 0 disables smoothing")
	sumMode := flag.Bool("m", false, "Smooth with the normalized window sum instead of the median")
	workers := flag.Int("j", runtime.NumCPU(), "Number of worker goroutines")
	chartFile := flag.String("c", "", "File to write the threshold sweep chart HTML to")

	flag.Parse()

	var scores []evaluate.ScoreVector
	var err error

	if *fp16 {
		scores, err = evaluate.LoadScoresFP16(*scoresFile)
	} else {
		scores, err = evaluate.LoadScores(*scoresFile)
	}

	if err != nil {
		log.Fatal("Error loading scores: ", err)
	}

	truth, err := evaluate.LoadGroundTruth(*truthFile)

	if err != nil {
		log.Fatal("Error loading ground truth: ", err)
	}

	params := evaluate.DefaultEvaluatorParams()
	params.Threshold = *threshold
	params.TopK = *topK
	params.Workers = *workers

	eval := evaluate.NewEvaluator(params)

	ranked := evaluate.RankAll(scores, *topK)

	var res *evaluate.Result

	if *window > 0 {
		mode := evaluate.SmoothMedian

		if *sumMode {
			mode = evaluate.SmoothSum
		}

		smoothScores, err := evaluate.SmoothAll(scores, *window, mode)

		if err != nil {
			log.Fatal("Error smoothing scores: ", err)
		}

		smoothed := evaluate.RankAll(smoothScores, *topK)

		res, err = eval.EvaluateWithSmoothed(ranked, smoothed, truth)

		if err != nil {
			log.Fatal("Evaluation failed: ", err)
		}

	} else {
		res, err = eval.Evaluate(ranked, truth)

		if err != nil {
			log.Fatal("Evaluation failed: ", err)
		}
	}

	fmt.Printf("samples: %d\n", len(res.Bias))
	fmt.Printf("top-1 accuracy @ %d deg: %.4f\n", *threshold, res.Top1)
	fmt.Printf("top-%d accuracy @ %d deg: %.4f\n", *topK, *threshold, res.TopK)
	fmt.Printf("bias buckets: near=%d mid=%d far=%d\n", res.Near, res.Mid, res.Far)
	fmt.Printf("wrong samples: %d\n", len(res.Wrong))

	for _, w := range res.Wrong {
		fmt.Printf("  predicted=%d truth=%d\n", w.Predicted, w.GroundTruth)
	}

	if len(res.SmoothedBias) > 0 {
		better := 0

		for i := range res.Bias {
			if res.SmoothedBias[i] < res.Bias[i] {
				better++
			}
		}

		fmt.Printf("smoothing reduced bias on %d of %d samples\n",
			better, len(res.Bias))
	}

	if *chartFile != "" {
		f, err := os.Create(*chartFile)

		if err != nil {
			log.Fatal("Error creating chart file: ", err)
		}

		defer f.Close()

		err = plot.WriteSweepHTML(res, f)

		if err != nil {
			log.Fatal("Error writing chart: ", err)
		}

		log.Printf("Saved sweep chart to %s", *chartFile)
	}
}
