package daemon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoBase(t *testing.T) {
	assert.Equal(t, "sample", videoBase("/videos/sample.mp4"))
	assert.Equal(t, "clip.v2", videoBase("clip.v2.mov"))
}

func TestOutputPaths(t *testing.T) {
	s := NewServer(ProcessConfig{OutputRoot: "out"})
	assert.Equal(t, filepath.Join("out", "sample"), s.framesDirForVideo("/videos/sample.mp4"))
	assert.Equal(t, filepath.Join("out", "sample_annotated.mp4"), s.annotatedPath("/videos/sample.mp4"))
}

func TestBGRColor(t *testing.T) {
	c := bgrColor([3]int{255, 128, 0})
	assert.Equal(t, uint8(255), c.B)
	assert.Equal(t, uint8(128), c.G)
	assert.Equal(t, uint8(0), c.R)
}

func TestCountStills(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"frame_0000.jpg", "frame_0030.jpg", // frames job output
		"frame_0030_ch1.jpg", // channel still sharing the directory
		"other.png", "frame_bad.txt",
	}
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	count, err := countStills(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCountStillsMissingDir(t *testing.T) {
	count, err := countStills(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
