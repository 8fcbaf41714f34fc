package evaluate

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	rotframe "github.com/rotframe/go-rotframe"
)

// NumBins is the number of candidate angle bins in a score vector
const NumBins = 360

// ScoreVector is one sample's model confidence per candidate angle, indexed
// by degree
type ScoreVector []float64

// LoadScores reads whitespace separated score vectors from a text file, one
// sample of NumBins values per line
func LoadScores(file string) ([]ScoreVector, error) {

	f, err := os.Open(file)

	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}

	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var samples []ScoreVector

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			continue
		}

		fields := strings.Fields(line)

		if len(fields) != NumBins {
			return nil, fmt.Errorf("sample %d has %d bins, want %d",
				len(samples), len(fields), NumBins)
		}

		scores := make(ScoreVector, NumBins)

		for i, field := range fields {
			scores[i], err = strconv.ParseFloat(field, 64)

			if err != nil {
				return nil, fmt.Errorf("sample %d bin %d: %w", len(samples), i, err)
			}
		}

		samples = append(samples, scores)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	return samples, nil
}

// LoadGroundTruth reads one integer ground truth angle per line, validated
// against the [0,360) angle range
func LoadGroundTruth(file string) ([]int, error) {

	f, err := os.Open(file)

	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}

	defer f.Close()

	scanner := bufio.NewScanner(f)

	var truth []int

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			continue
		}

		angle, err := strconv.Atoi(line)

		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", len(truth), err)
		}

		if angle < 0 || angle >= 360 {
			return nil, fmt.Errorf("sample %d: %w: %d", len(truth),
				rotframe.ErrInvalidAngle, angle)
		}

		truth = append(truth, angle)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	return truth, nil
}
