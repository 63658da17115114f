// Package annotate re-encodes a video with a frame counter burned into
// every frame, which makes it easy to line up captured stills against the
// exact frame they came from.
package annotate

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"gocv.io/x/gocv"

	"quadview/internal/video"
)

// Text placement matches the reference capture footage: top-left corner,
// baseline 50 pixels down.
var labelOrigin = image.Pt(10, 50)

// Options controls the look of the burned-in counter.
type Options struct {
	FontScale float64
	Thickness int
	Color     color.RGBA

	// OnFrame, when set, is called after each frame is written with the
	// zero-based index of that frame. Used by the daemon for progress.
	OnFrame func(n int)
}

// DefaultOptions returns the standard green counter styling.
func DefaultOptions() Options {
	return Options{
		FontScale: 2,
		Thickness: 3,
		Color:     color.RGBA{G: 255},
	}
}

// Label formats the counter text for frame n.
func Label(n int) string {
	return fmt.Sprintf("Frame: %d", n)
}

// labelBox returns the background rectangle for a label of the given
// rendered size, padded 5 pixels around the text.
func labelBox(origin, size image.Point, baseline int) image.Rectangle {
	return image.Rect(
		origin.X-5, origin.Y-size.Y-5,
		origin.X+size.X+5, origin.Y+baseline+5,
	)
}

// Video copies inputPath to outputPath with a counter drawn on every frame.
// The output has the same frame count, FPS, and resolution as the input.
// It returns the number of frames written.
func Video(inputPath, outputPath string, opts Options) (int, error) {
	vc, err := video.Open(inputPath)
	if err != nil {
		return 0, err
	}
	defer vc.Close()

	meta := video.Meta(vc)
	log.Printf("annotating %s: %d frames, %.2f fps, %dx%d",
		inputPath, meta.FrameCount, meta.FPS, meta.Width, meta.Height)

	writer, err := gocv.VideoWriterFile(outputPath, "mp4v", meta.FPS, meta.Width, meta.Height, true)
	if err != nil {
		return 0, fmt.Errorf("create output %s: %w", outputPath, err)
	}
	defer writer.Close()
	if !writer.IsOpened() {
		return 0, fmt.Errorf("create output %s: writer not opened", outputPath)
	}

	frame := gocv.NewMat()
	defer frame.Close()

	n := 0
	for {
		if ok := vc.Read(&frame); !ok || frame.Empty() {
			break
		}

		drawLabel(&frame, Label(n), opts)

		if err := writer.Write(frame); err != nil {
			return n, fmt.Errorf("write frame %d: %w", n, err)
		}
		if opts.OnFrame != nil {
			opts.OnFrame(n)
		}
		n++

		if n%30 == 0 && meta.FrameCount > 0 {
			log.Printf("  progress: %d/%d frames (%.1f%%)",
				n, meta.FrameCount, float64(n)/float64(meta.FrameCount)*100)
		}
	}

	log.Printf("annotated %d frames -> %s", n, outputPath)
	return n, nil
}

// drawLabel draws text over a semi-transparent black box in the frame's
// top-left corner.
func drawLabel(frame *gocv.Mat, text string, opts Options) {
	size, baseline := gocv.GetTextSizeWithBaseline(text, gocv.FontHersheySimplex, opts.FontScale, opts.Thickness)
	box := labelBox(labelOrigin, size, baseline)

	overlay := frame.Clone()
	defer overlay.Close()
	gocv.Rectangle(&overlay, box, color.RGBA{}, -1)
	gocv.AddWeighted(overlay, 0.6, *frame, 0.4, 0, frame)

	gocv.PutTextWithParams(frame, text, labelOrigin,
		gocv.FontHersheySimplex, opts.FontScale, opts.Color, opts.Thickness,
		gocv.LineAA, false)
}
