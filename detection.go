package rotframe

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrMalformedRecord is returned for a detection record with the wrong
	// field count or a non numeric field
	ErrMalformedRecord = errors.New("malformed detection record")
	// ErrInvalidAngle is returned for an angle outside the range [0,360)
	ErrInvalidAngle = errors.New("angle outside range [0,360)")
)

// Detection is a single detected object parsed from a label record.  X, Y,
// W, and H are fractions of the frame dimensions as output by the upstream
// detector.
type Detection struct {
	// Angle is the labelled orientation in degrees [0,360)
	Angle int
	// X and Y are the box center
	X float64
	Y float64
	// W and H are the axis aligned extents of the detector output box, not
	// yet disambiguated into long/short axis
	W float64
	H float64
}

// ToPixels scales a normalized detection into pixel units for a frame of the
// given dimensions
func (d Detection) ToPixels(width, height int) Detection {
	return Detection{
		Angle: d.Angle,
		X:     d.X * float64(width),
		Y:     d.Y * float64(height),
		W:     d.W * float64(width),
		H:     d.H * float64(height),
	}
}

// ParseDetection parses a single "angle x y w h" label record where angle is
// an integer degree and the remaining fields are fractions of the frame
// dimensions
func ParseDetection(line string) (Detection, error) {

	fields := strings.Fields(line)

	if len(fields) != 5 {
		return Detection{}, fmt.Errorf("%w: got %d fields, want 5",
			ErrMalformedRecord, len(fields))
	}

	angle, err := strconv.Atoi(fields[0])

	if err != nil {
		return Detection{}, fmt.Errorf("%w: bad angle %q",
			ErrMalformedRecord, fields[0])
	}

	if angle < 0 || angle >= 360 {
		return Detection{}, fmt.Errorf("%w: %d", ErrInvalidAngle, angle)
	}

	var vals [4]float64

	for i, f := range fields[1:] {
		vals[i], err = strconv.ParseFloat(f, 64)

		if err != nil {
			return Detection{}, fmt.Errorf("%w: bad field %q",
				ErrMalformedRecord, f)
		}
	}

	return Detection{
		Angle: angle,
		X:     vals[0],
		Y:     vals[1],
		W:     vals[2],
		H:     vals[3],
	}, nil
}

// LoadDetections reads the detection records from the given label file.  It
// should contain one record per line, blank lines are skipped.
func LoadDetections(file string) ([]Detection, error) {

	// open the file
	f, err := os.Open(file)

	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}

	defer f.Close()

	// create a scanner to read the file.
	scanner := bufio.NewScanner(f)

	var dets []Detection

	// read and parse each line
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			continue
		}

		det, err := ParseDetection(line)

		if err != nil {
			return nil, err
		}

		dets = append(dets, det)
	}

	// check for errors during scanning
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	return dets, nil
}
