package rotframe

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseDetection(t *testing.T) {

	det, err := ParseDetection("30 0.5 0.25 0.1 0.2")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := Detection{Angle: 30, X: 0.5, Y: 0.25, W: 0.1, H: 0.2}

	if det != expected {
		t.Errorf("expected %+v, got %+v", expected, det)
	}
}

func TestParseDetectionErrors(t *testing.T) {

	tests := []struct {
		name     string
		line     string
		expected error
	}{
		{"too few fields", "30 0.5 0.25 0.1", ErrMalformedRecord},
		{"too many fields", "30 0.5 0.25 0.1 0.2 0.3", ErrMalformedRecord},
		{"non numeric angle", "abc 0.5 0.25 0.1 0.2", ErrMalformedRecord},
		{"non numeric field", "30 0.5 x 0.1 0.2", ErrMalformedRecord},
		{"angle too large", "360 0.5 0.25 0.1 0.2", ErrInvalidAngle},
		{"negative angle", "-1 0.5 0.25 0.1 0.2", ErrInvalidAngle},
	}

	for _, tc := range tests {
		_, err := ParseDetection(tc.line)

		if !errors.Is(err, tc.expected) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.expected, err)
		}
	}
}

func TestToPixels(t *testing.T) {

	det := Detection{Angle: 45, X: 0.5, Y: 0.5, W: 0.1, H: 0.2}
	px := det.ToPixels(200, 100)

	expected := Detection{Angle: 45, X: 100, Y: 50, W: 20, H: 20}

	if px != expected {
		t.Errorf("expected %+v, got %+v", expected, px)
	}
}

func TestLoadDetections(t *testing.T) {

	file := filepath.Join(t.TempDir(), "labels.txt")
	content := "30 0.5 0.25 0.1 0.2\n\n200 0.1 0.1 0.05 0.08\n"

	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatalf("failed writing label file: %v", err)
	}

	dets, err := LoadDetections(file)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(dets) != 2 {
		t.Fatalf("expected 2 detections, got %d", len(dets))
	}

	if dets[0].Angle != 30 || dets[1].Angle != 200 {
		t.Errorf("unexpected angles: %d, %d", dets[0].Angle, dets[1].Angle)
	}
}

func TestLoadDetectionsBadRecord(t *testing.T) {

	file := filepath.Join(t.TempDir(), "labels.txt")

	if err := os.WriteFile(file, []byte("30 0.5 0.25\n"), 0644); err != nil {
		t.Fatalf("failed writing label file: %v", err)
	}

	_, err := LoadDetections(file)

	if !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("expected ErrMalformedRecord, got %v", err)
	}
}
