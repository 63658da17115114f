package annotate

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadview/internal/video"
)

func TestLabel(t *testing.T) {
	assert.Equal(t, "Frame: 0", Label(0))
	assert.Equal(t, "Frame: 42", Label(42))

	// Counters are distinct and monotonically formatted per frame index.
	seen := map[string]bool{}
	for n := 0; n < 100; n++ {
		l := Label(n)
		assert.False(t, seen[l], "duplicate label %q", l)
		seen[l] = true
	}
}

func TestLabelBox(t *testing.T) {
	// 5 pixel padding around the rendered text, origin at the baseline.
	box := labelBox(image.Pt(10, 50), image.Pt(200, 30), 8)
	assert.Equal(t, image.Rect(5, 15, 215, 63), box)
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, float64(2), opts.FontScale)
	assert.Equal(t, 3, opts.Thickness)
	assert.Equal(t, uint8(255), opts.Color.G)
	assert.Equal(t, uint8(0), opts.Color.R)
	assert.Equal(t, uint8(0), opts.Color.B)
}

func TestVideoUnopenableInput(t *testing.T) {
	_, err := Video("testdata/does-not-exist.mp4", t.TempDir()+"/out.mp4", DefaultOptions())
	assert.Error(t, err)
}

// TestVideoRoundTrip needs real codecs, so it only runs when a sample clip
// is checked in under testdata.
func TestVideoRoundTrip(t *testing.T) {
	const sample = "testdata/sample.mp4"
	if _, err := os.Stat(sample); err != nil {
		t.Skip("testdata/sample.mp4 not present")
	}

	var frames []int
	opts := DefaultOptions()
	opts.OnFrame = func(n int) { frames = append(frames, n) }

	out := filepath.Join(t.TempDir(), "out.mp4")
	n, err := Video(sample, out, opts)
	require.NoError(t, err)
	require.Positive(t, n)

	// Counters are 0..n-1 in order.
	require.Len(t, frames, n)
	for i, f := range frames {
		assert.Equal(t, i, f)
	}

	vc, err := video.Open(out)
	require.NoError(t, err)
	defer vc.Close()
	assert.Equal(t, n, video.Meta(vc).FrameCount)
}
