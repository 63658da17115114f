// Package quadsplit turns a quad-view composite frame into its four camera
// channels. The capture hardware stores the composite rotated 90 degrees
// clockwise, so the frame is first rotated 270 degrees clockwise (90
// counter-clockwise) to restore the intended layout, then cut into four
// equal quadrants.
package quadsplit

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// Channel identifies one of the four camera feeds tiled into a quad-view
// frame. Channel numbers follow the capture hardware labels 1 through 4.
type Channel int

const (
	Channel1 Channel = 1 // bottom-left after rotation
	Channel2 Channel = 2 // top-left after rotation
	Channel3 Channel = 3 // bottom-right after rotation
	Channel4 Channel = 4 // top-right after rotation
)

// ChannelCount is the number of feeds in a quad-view composite.
const ChannelCount = 4

// ParseChannel validates a user-supplied channel number.
func ParseChannel(n int) (Channel, error) {
	if n < 1 || n > ChannelCount {
		return 0, fmt.Errorf("channel must be 1, 2, 3 or 4, got %d", n)
	}
	return Channel(n), nil
}

// Valid reports whether c is one of the four channels.
func (c Channel) Valid() bool {
	return c >= 1 && c <= ChannelCount
}

func (c Channel) String() string {
	return fmt.Sprintf("ch%d", int(c))
}

// Quadrants returns the four quadrant rectangles of a rotated frame of the
// given size, in channel order [ch1, ch2, ch3, ch4].
//
// Halves use floor division, so on odd dimensions the last row/column of
// the rotated frame belongs to no quadrant. The mapping of quadrant to
// channel matches the capture hardware layout and must not be re-derived:
// ch1 bottom-left, ch2 top-left, ch3 bottom-right, ch4 top-right.
func Quadrants(width, height int) [ChannelCount]image.Rectangle {
	wHalf := width / 2
	hHalf := height / 2
	return [ChannelCount]image.Rectangle{
		image.Rect(0, hHalf, wHalf, hHalf*2),     // ch1
		image.Rect(0, 0, wHalf, hHalf),           // ch2
		image.Rect(wHalf, hHalf, wHalf*2, hHalf*2), // ch3
		image.Rect(wHalf, 0, wHalf*2, hHalf),     // ch4
	}
}

// Split rotates frame 270 degrees clockwise and returns the four channel
// images in order [ch1, ch2, ch3, ch4]. The returned mats are copies owned
// by the caller; frame is left untouched.
//
// A degenerate input (empty frame, or a frame too small to quarter) yields
// empty outputs rather than an error; callers validate upstream.
func Split(frame gocv.Mat) [ChannelCount]gocv.Mat {
	var out [ChannelCount]gocv.Mat
	if frame.Empty() {
		for i := range out {
			out[i] = gocv.NewMat()
		}
		return out
	}

	rotated := gocv.NewMat()
	defer rotated.Close()
	gocv.Rotate(frame, &rotated, gocv.Rotate90CounterClockwise)

	quads := Quadrants(rotated.Cols(), rotated.Rows())
	for i, q := range quads {
		if q.Empty() {
			out[i] = gocv.NewMat()
			continue
		}
		region := rotated.Region(q)
		out[i] = region.Clone()
		region.Close()
	}
	return out
}

// SplitResized resizes frame to width x height before splitting. Values of
// zero or less keep the source dimensions for that axis.
func SplitResized(frame gocv.Mat, width, height int) [ChannelCount]gocv.Mat {
	if frame.Empty() {
		return Split(frame)
	}
	if width <= 0 {
		width = frame.Cols()
	}
	if height <= 0 {
		height = frame.Rows()
	}
	if width == frame.Cols() && height == frame.Rows() {
		return Split(frame)
	}

	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(frame, &resized, image.Pt(width, height), 0, 0, gocv.InterpolationLinear)
	return Split(resized)
}

// CloseAll releases every mat in a split result.
func CloseAll(channels [ChannelCount]gocv.Mat) {
	for i := range channels {
		channels[i].Close()
	}
}
