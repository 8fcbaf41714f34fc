package evaluate

import (
	"fmt"
	"os"

	"github.com/x448/float16"
)

var f16LookupTable [65536]float32

func init() {
	// precompute float16 lookup table for faster conversion to float64
	for i := range f16LookupTable {
		f16 := float16.Frombits(uint16(i))
		f16LookupTable[i] = f16.Float32()
	}
}

// LoadScoresFP16 reads a raw little endian float16 dump of concatenated
// NumBins sized score vectors, as written by half precision model exports
func LoadScoresFP16(file string) ([]ScoreVector, error) {

	buf, err := os.ReadFile(file)

	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	sampleBytes := NumBins * 2

	if len(buf) == 0 || len(buf)%sampleBytes != 0 {
		return nil, fmt.Errorf("file size %d is not a multiple of %d byte samples",
			len(buf), sampleBytes)
	}

	samples := make([]ScoreVector, 0, len(buf)/sampleBytes)

	for off := 0; off < len(buf); off += sampleBytes {
		samples = append(samples, convertFloat16Buffer(buf[off:off+sampleBytes]))
	}

	return samples, nil
}

// convertFloat16Buffer converts a raw little endian float16 buffer to a
// score vector using the precomputed lookup table
func convertFloat16Buffer(buf []byte) ScoreVector {

	scores := make(ScoreVector, len(buf)/2)

	for i := range scores {
		bits := uint16(buf[2*i]) | uint16(buf[2*i+1])<<8
		scores[i] = float64(f16LookupTable[bits])
	}

	return scores
}
