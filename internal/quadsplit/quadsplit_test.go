package quadsplit

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

func TestParseChannel(t *testing.T) {
	for n := 1; n <= 4; n++ {
		ch, err := ParseChannel(n)
		require.NoError(t, err)
		assert.Equal(t, Channel(n), ch)
		assert.True(t, ch.Valid())
	}

	for _, n := range []int{0, -1, 5, 100} {
		_, err := ParseChannel(n)
		assert.Error(t, err, "channel %d", n)
	}
}

func TestQuadrantsEvenDimensions(t *testing.T) {
	// A 1280x720 composite rotated 270 degrees clockwise is 720x1280;
	// each quadrant must be 360 wide and 640 tall.
	quads := Quadrants(720, 1280)

	for i, q := range quads {
		assert.Equal(t, 360, q.Dx(), "quadrant %d width", i)
		assert.Equal(t, 640, q.Dy(), "quadrant %d height", i)
	}

	assert.Equal(t, image.Rect(0, 640, 360, 1280), quads[0], "ch1 bottom-left")
	assert.Equal(t, image.Rect(0, 0, 360, 640), quads[1], "ch2 top-left")
	assert.Equal(t, image.Rect(360, 640, 720, 1280), quads[2], "ch3 bottom-right")
	assert.Equal(t, image.Rect(360, 0, 720, 640), quads[3], "ch4 top-right")
}

func TestQuadrantsDisjointAndCovering(t *testing.T) {
	sizes := [][2]int{{720, 1280}, {640, 480}, {2, 2}, {100, 50}}
	for _, size := range sizes {
		quads := Quadrants(size[0], size[1])

		area := 0
		for i, q := range quads {
			area += q.Dx() * q.Dy()
			for j := i + 1; j < len(quads); j++ {
				assert.True(t, q.Intersect(quads[j]).Empty(),
					"%dx%d: quadrants %d and %d overlap", size[0], size[1], i, j)
			}
		}
		assert.Equal(t, size[0]*size[1], area, "%dx%d: quadrants must cover the frame", size[0], size[1])
	}
}

func TestQuadrantsOddDimensionsDropLastRowColumn(t *testing.T) {
	// Floor division: a 5x3 frame quarters into 2x1 quadrants, leaving the
	// last column and row unassigned.
	quads := Quadrants(5, 3)

	area := 0
	for i, q := range quads {
		assert.Equal(t, 2, q.Dx(), "quadrant %d width", i)
		assert.Equal(t, 1, q.Dy(), "quadrant %d height", i)
		area += q.Dx() * q.Dy()
	}
	assert.Equal(t, (5/2*2)*(3/2*2), area)
	assert.Less(t, area, 5*3)
}

func TestQuadrantsZeroSize(t *testing.T) {
	for _, q := range Quadrants(0, 0) {
		assert.True(t, q.Empty())
	}
	for _, q := range Quadrants(1, 1) {
		assert.True(t, q.Empty())
	}
}

// fillQuadrants writes a distinct value into each pre-rotation quadrant of
// a single-channel mat: top-left, top-right, bottom-left, bottom-right.
func fillQuadrants(t *testing.T, rows, cols int, vals [4]uint8) gocv.Mat {
	t.Helper()
	m := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV8U)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := 0
			if r >= rows/2 {
				i += 2
			}
			if c >= cols/2 {
				i++
			}
			m.SetUCharAt(r, c, vals[i])
		}
	}
	return m
}

func uniformValue(t *testing.T, m gocv.Mat) uint8 {
	t.Helper()
	require.False(t, m.Empty())
	v := m.GetUCharAt(0, 0)
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			require.Equal(t, v, m.GetUCharAt(r, c), "pixel (%d,%d)", r, c)
		}
	}
	return v
}

func TestSplitChannelMapping(t *testing.T) {
	// Pre-rotation quadrant values: top-left=10, top-right=20,
	// bottom-left=30, bottom-right=40. After the 270 degree clockwise
	// rotation the channels must come out as ch1=top-left, ch2=top-right,
	// ch3=bottom-left, ch4=bottom-right of the source.
	src := fillQuadrants(t, 4, 6, [4]uint8{10, 20, 30, 40})
	defer src.Close()

	channels := Split(src)
	defer CloseAll(channels)

	assert.Equal(t, uint8(10), uniformValue(t, channels[0]), "ch1")
	assert.Equal(t, uint8(20), uniformValue(t, channels[1]), "ch2")
	assert.Equal(t, uint8(30), uniformValue(t, channels[2]), "ch3")
	assert.Equal(t, uint8(40), uniformValue(t, channels[3]), "ch4")

	// Dimension swap: 6x4 source rotates to 4x6, quartering into 2x3.
	for i, ch := range channels {
		assert.Equal(t, 3, ch.Rows(), "channel %d rows", i+1)
		assert.Equal(t, 2, ch.Cols(), "channel %d cols", i+1)
	}
}

func TestSplitFixedOrderAnySize(t *testing.T) {
	for _, size := range [][2]int{{4, 6}, {8, 8}, {72, 128}} {
		src := fillQuadrants(t, size[0], size[1], [4]uint8{1, 2, 3, 4})
		channels := Split(src)
		for i := range channels {
			assert.Equal(t, uint8(i+1), channels[i].GetUCharAt(0, 0),
				"%dx%d channel %d", size[0], size[1], i+1)
		}
		CloseAll(channels)
		src.Close()
	}
}

func TestSplitLeavesSourceUntouched(t *testing.T) {
	src := fillQuadrants(t, 4, 4, [4]uint8{1, 2, 3, 4})
	defer src.Close()

	channels := Split(src)
	CloseAll(channels)

	assert.Equal(t, 4, src.Rows())
	assert.Equal(t, 4, src.Cols())
	assert.Equal(t, uint8(1), src.GetUCharAt(0, 0))
	assert.Equal(t, uint8(4), src.GetUCharAt(3, 3))
}

func TestSplitEmptyFrame(t *testing.T) {
	src := gocv.NewMat()
	defer src.Close()

	channels := Split(src)
	defer CloseAll(channels)

	for i, ch := range channels {
		assert.True(t, ch.Empty(), "channel %d", i+1)
	}
}

func TestSplitResized(t *testing.T) {
	src := fillQuadrants(t, 8, 12, [4]uint8{10, 20, 30, 40})
	defer src.Close()

	channels := SplitResized(src, 6, 4)
	defer CloseAll(channels)

	// Resized composite is 6x4, rotated 4x6, quadrants 2x3.
	for i, ch := range channels {
		assert.Equal(t, 3, ch.Rows(), "channel %d rows", i+1)
		assert.Equal(t, 2, ch.Cols(), "channel %d cols", i+1)
	}
}

func TestSplitResizedDefaultsToSource(t *testing.T) {
	src := fillQuadrants(t, 4, 6, [4]uint8{10, 20, 30, 40})
	defer src.Close()

	channels := SplitResized(src, 0, 0)
	defer CloseAll(channels)

	for i, ch := range channels {
		assert.Equal(t, 3, ch.Rows(), "channel %d rows", i+1)
		assert.Equal(t, 2, ch.Cols(), "channel %d cols", i+1)
	}
	assert.Equal(t, uint8(10), uniformValue(t, channels[0]))
}
