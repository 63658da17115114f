// Package capture saves still images out of a video: whole frames by index
// or a single quad-view channel of one frame.
package capture

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gocv.io/x/gocv"

	"quadview/internal/quadsplit"
	"quadview/internal/video"
)

// FrameName returns the deterministic file name for a whole-frame still.
func FrameName(index int) string {
	return fmt.Sprintf("frame_%04d.jpg", index)
}

// ChannelName returns the deterministic file name for a channel still.
func ChannelName(index int, ch quadsplit.Channel) string {
	return fmt.Sprintf("frame_%04d_%s.jpg", index, ch)
}

// Frame saves frame index of the video at path as a JPEG at outPath.
// The index is validated against the stream's frame count before seeking.
func Frame(path string, index int, outPath string) error {
	vc, err := video.Open(path)
	if err != nil {
		return err
	}
	defer vc.Close()

	meta := video.Meta(vc)
	if err := video.CheckIndex(index, meta.FrameCount); err != nil {
		return err
	}

	video.Seek(vc, index)
	frame := gocv.NewMat()
	defer frame.Close()
	if ok := vc.Read(&frame); !ok || frame.Empty() {
		return fmt.Errorf("read frame %d: decode failed", index)
	}

	if err := ensureDir(outPath); err != nil {
		return err
	}
	if ok := gocv.IMWrite(outPath, frame); !ok {
		return fmt.Errorf("write image %s", outPath)
	}
	return nil
}

// Frames saves every valid index in indices under outDir using FrameName.
// Out-of-range indices and frames that fail to decode are logged and
// skipped; the remaining indices are still written. Returns the number of
// stills written.
func Frames(path string, indices []int, outDir string) (int, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, fmt.Errorf("create output dir: %w", err)
	}

	vc, err := video.Open(path)
	if err != nil {
		return 0, err
	}
	defer vc.Close()

	meta := video.Meta(vc)
	frame := gocv.NewMat()
	defer frame.Close()

	written := 0
	for _, index := range indices {
		if err := video.CheckIndex(index, meta.FrameCount); err != nil {
			log.Printf("skip: %v", err)
			continue
		}

		video.Seek(vc, index)
		if ok := vc.Read(&frame); !ok || frame.Empty() {
			log.Printf("skip: read frame %d: decode failed", index)
			continue
		}

		outPath := filepath.Join(outDir, FrameName(index))
		if ok := gocv.IMWrite(outPath, frame); !ok {
			log.Printf("skip: write image %s failed", outPath)
			continue
		}
		log.Printf("saved frame %d -> %s", index, outPath)
		written++
	}
	return written, nil
}

// ChannelRequest selects one channel of one frame, with an optional resize
// applied to the composite before splitting.
type ChannelRequest struct {
	Frame   int
	Channel int

	// Width and Height resize the composite before the split; zero keeps
	// the source dimensions.
	Width  int
	Height int

	// OutPath overrides the default ChannelName-based file name.
	OutPath string
}

// Channel saves the requested quad-view channel as a JPEG and returns the
// path written. The channel selector is validated before the video is
// opened and the frame index before any seek.
func Channel(path string, req ChannelRequest) (string, error) {
	ch, err := quadsplit.ParseChannel(req.Channel)
	if err != nil {
		return "", err
	}

	vc, err := video.Open(path)
	if err != nil {
		return "", err
	}
	defer vc.Close()

	meta := video.Meta(vc)
	if err := video.CheckIndex(req.Frame, meta.FrameCount); err != nil {
		return "", err
	}

	video.Seek(vc, req.Frame)
	frame := gocv.NewMat()
	defer frame.Close()
	if ok := vc.Read(&frame); !ok || frame.Empty() {
		return "", fmt.Errorf("read frame %d: decode failed", req.Frame)
	}

	channels := quadsplit.SplitResized(frame, req.Width, req.Height)
	defer quadsplit.CloseAll(channels)
	selected := channels[ch-1]
	if selected.Empty() {
		return "", fmt.Errorf("frame %d too small to split", req.Frame)
	}

	outPath := req.OutPath
	if outPath == "" {
		outPath = ChannelName(req.Frame, ch)
	}
	if err := ensureDir(outPath); err != nil {
		return "", err
	}
	if ok := gocv.IMWrite(outPath, selected); !ok {
		return "", fmt.Errorf("write image %s", outPath)
	}

	log.Printf("saved frame %d %s (%dx%d) -> %s",
		req.Frame, ch, selected.Cols(), selected.Rows(), outPath)
	return outPath, nil
}

func ensureDir(outPath string) error {
	dir := filepath.Dir(outPath)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return nil
}
