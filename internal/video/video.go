// Package video wraps the OpenCV capture primitives shared by the CLI and
// the daemon: opening files, reading stream metadata, and seeking to an
// absolute frame index.
package video

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Metadata describes a video stream as reported by its capture handle.
type Metadata struct {
	FrameCount int     `json:"frame_count"`
	FPS        float64 `json:"fps"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
}

// Open opens a video file for reading. The caller must Close the capture.
func Open(path string) (*gocv.VideoCapture, error) {
	vc, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, fmt.Errorf("open video %s: %w", path, err)
	}
	return vc, nil
}

// Meta reads stream properties from an open capture.
func Meta(vc *gocv.VideoCapture) Metadata {
	return Metadata{
		FrameCount: int(vc.Get(gocv.VideoCaptureFrameCount)),
		FPS:        vc.Get(gocv.VideoCaptureFPS),
		Width:      int(vc.Get(gocv.VideoCaptureFrameWidth)),
		Height:     int(vc.Get(gocv.VideoCaptureFrameHeight)),
	}
}

// Seek positions the capture so the next Read decodes frame index.
func Seek(vc *gocv.VideoCapture, index int) {
	vc.Set(gocv.VideoCapturePosFrames, float64(index))
}

// CheckIndex rejects frame indices outside [0, total).
func CheckIndex(index, total int) error {
	if total <= 0 {
		return fmt.Errorf("frame index %d out of range (video reports no frames)", index)
	}
	if index < 0 || index >= total {
		return fmt.Errorf("frame index %d out of range (0-%d)", index, total-1)
	}
	return nil
}
