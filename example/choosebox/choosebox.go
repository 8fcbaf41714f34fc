package main

import (
	"flag"
	"fmt"
	rotframe "github.com/rotframe/go-rotframe"
	"github.com/rotframe/go-rotframe/postprocess"
	"github.com/rotframe/go-rotframe/preprocess"
	"github.com/rotframe/go-rotframe/render"
	"gocv.io/x/gocv"
	"log"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	// read in cli flags
	labelDir := flag.String("l", "../data/labels", "Directory of primary frame label files")
	rotLabelDir := flag.String("r", "../data/labels-rot", "Directory of rotated frame label files")
	imgDir := flag.String("i", "../data/images", "Directory of primary frame images")
	outDir := flag.String("o", "../data/out", "Directory to write annotated images to")
	rotAngle := flag.Float64("a", 45, "Rotation angle in degrees the secondary frames were produced with")
	saveRotated := flag.Bool("s", false, "Also save the rotated frame next to each annotated image")
	ttfFont := flag.String("t", "", "TTF font file to draw angle labels with, uses the built in Hershey font when empty")

	flag.Parse()

	err := os.MkdirAll(*outDir, 0755)

	if err != nil {
		log.Fatal("Error creating output directory: ", err)
	}

	labelFiles, err := filepath.Glob(filepath.Join(*labelDir, "*.txt"))

	if err != nil {
		log.Fatal("Error listing label files: ", err)
	}

	if len(labelFiles) == 0 {
		log.Fatal("No label files found in: ", *labelDir)
	}

	params := postprocess.DefaultReconstructorParams()
	params.RotationAngle = *rotAngle

	rec := postprocess.NewReconstructor(params)
	font := render.DefaultFont()

	// optional TTF label rendering for glyphs outside the Hershey range
	var text *render.TextRenderer

	if *ttfFont != "" {
		text, err = render.NewTextRenderer(*ttfFont, render.TTFFontSize)

		if err != nil {
			log.Fatal("Error initializing font face: ", err)
		}

		defer text.Close()
	}

	for _, labelFile := range labelFiles {

		base := strings.TrimSuffix(filepath.Base(labelFile), ".txt")

		dets, err := rotframe.LoadDetections(labelFile)

		if err != nil {
			log.Fatal("Error loading detections: ", err)
		}

		// the rotated frame labels are optional, boxes outside the
		// ambiguous angle zone reconstruct without them
		var rotDets []rotframe.Detection

		rotFile := filepath.Join(*rotLabelDir, base+".txt")

		if _, err := os.Stat(rotFile); err == nil {
			rotDets, err = rotframe.LoadDetections(rotFile)

			if err != nil {
				log.Fatal("Error loading rotated detections: ", err)
			}
		}

		// load image
		imgFile := filepath.Join(*imgDir, base+".jpg")
		img := gocv.IMRead(imgFile, gocv.IMReadColor)

		if img.Empty() {
			log.Fatal("Error reading image from: ", imgFile)
		}

		// the rotated frame is produced from the clean source before any
		// annotation is drawn on it
		if *saveRotated {
			rotImg := gocv.NewMat()
			preprocess.RotateFrame(img, &rotImg, *rotAngle)

			rotOutFile := filepath.Join(*outDir, base+"-rot.jpg")

			if ok := gocv.IMWrite(rotOutFile, rotImg); !ok {
				log.Fatal("Failed to save image to: ", rotOutFile)
			}

			rotImg.Close()
		}

		boxes := make([]postprocess.OrientedBox, 0, len(dets))

		for _, det := range dets {
			box, err := rec.Reconstruct(det, img.Cols(), img.Rows(), rotDets)

			if err != nil {
				log.Printf("%s: skipping box at angle %d: %v", base, det.Angle, err)
				continue
			}

			fmt.Printf("%s: angle=%d center=(%.1f %.1f) size=%.1fx%.1f\n",
				base, box.Angle, box.X, box.Y, box.Width, box.Height)

			boxes = append(boxes, box)
		}

		if text != nil {
			// draw outlines only and write the labels with the TTF face
			render.OrientedBoxOutlines(&img, boxes, 2)

			for _, box := range boxes {
				label := fmt.Sprintf("%d deg", box.Angle)

				err := text.PutText(&img, label, int(box.X), int(box.Y),
					render.White)

				if err != nil {
					log.Fatal("Error drawing label: ", err)
				}
			}
		} else {
			render.OrientedBoxes(&img, boxes, font, 2)
		}

		outFile := filepath.Join(*outDir, base+".jpg")

		if ok := gocv.IMWrite(outFile, img); !ok {
			log.Fatal("Failed to save image to: ", outFile)
		}

		img.Close()

		log.Printf("Saved annotated image to %s", outFile)
	}

	log.Println("done")
}
