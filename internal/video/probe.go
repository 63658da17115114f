package video

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// ProbeInfo is container-level metadata gathered without opening a decode
// handle. The daemon probes files at registration time so it can validate
// frame indices and estimate job progress before any job runs.
type ProbeInfo struct {
	DurationSeconds float64 `json:"duration_seconds"`
	FrameCount      int     `json:"frame_count"`
	FPS             float64 `json:"fps"`
	Width           int     `json:"width"`
	Height          int     `json:"height"`
}

type probeOutput struct {
	Streams []struct {
		CodecType    string `json:"codec_type"`
		Width        int    `json:"width"`
		Height       int    `json:"height"`
		AvgFrameRate string `json:"avg_frame_rate"`
		NbFrames     string `json:"nb_frames"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// Probe runs ffprobe against path and extracts the first video stream's
// dimensions, frame rate, and frame count.
func Probe(path string) (*ProbeInfo, error) {
	raw, err := ffmpeg.Probe(path)
	if err != nil {
		return nil, fmt.Errorf("probe %s: %w", path, err)
	}
	return parseProbe(raw)
}

func parseProbe(raw string) (*ProbeInfo, error) {
	var out probeOutput
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("parse probe output: %w", err)
	}

	info := &ProbeInfo{}
	if d, err := strconv.ParseFloat(out.Format.Duration, 64); err == nil {
		info.DurationSeconds = d
	}

	for _, s := range out.Streams {
		if s.CodecType != "video" {
			continue
		}
		info.Width = s.Width
		info.Height = s.Height
		info.FPS = parseRate(s.AvgFrameRate)
		if n, err := strconv.Atoi(s.NbFrames); err == nil {
			info.FrameCount = n
		}
		break
	}

	if info.Width == 0 || info.Height == 0 {
		return nil, fmt.Errorf("no video stream found")
	}
	// Some containers omit nb_frames; fall back to duration * fps.
	if info.FrameCount == 0 && info.DurationSeconds > 0 && info.FPS > 0 {
		info.FrameCount = int(info.DurationSeconds * info.FPS)
	}
	return info, nil
}

// parseRate converts an ffprobe rational like "30000/1001" to a float.
func parseRate(r string) float64 {
	parts := strings.SplitN(r, "/", 2)
	if len(parts) == 2 {
		num, err1 := strconv.ParseFloat(parts[0], 64)
		den, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 == nil && err2 == nil && den != 0 {
			return num / den
		}
		return 0
	}
	f, err := strconv.ParseFloat(r, 64)
	if err != nil {
		return 0
	}
	return f
}
