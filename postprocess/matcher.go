package postprocess

import (
	"errors"
	"math"

	rotframe "github.com/rotframe/go-rotframe"
	"github.com/rotframe/go-rotframe/preprocess"
)

// ErrEmptyCandidates is returned when matching against an empty candidate
// set
var ErrEmptyCandidates = errors.New("empty candidate set")

// NearestDetection projects the query detection center into the candidate
// frame and returns the index of the candidate closest to the projected
// point by squared euclidean distance.  The query must be in pixel units of
// the projector's primary frame and the candidates in pixel units of the
// rotated frame.  Ties resolve to the lowest candidate index so matching is
// reproducible across runs.
func NearestDetection(query rotframe.Detection,
	candidates []rotframe.Detection, proj *preprocess.Projector) (int, error) {

	if len(candidates) == 0 {
		return -1, ErrEmptyCandidates
	}

	px, py := proj.Project(query.X, query.Y)

	best := 0
	bestDist := math.Inf(1)

	for i, c := range candidates {
		dx := px - c.X
		dy := py - c.Y

		if d := dx*dx + dy*dy; d < bestDist {
			bestDist = d
			best = i
		}
	}

	return best, nil
}
