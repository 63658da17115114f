package daemon

import (
	"errors"
	"time"
)

// Config holds the default styling and capture settings applied to jobs
// that do not override them.
type Config struct {
	FontScale   float64 `json:"font_scale" example:"2"`
	Thickness   int     `json:"thickness" example:"3"`
	Color       [3]int  `json:"color" swaggertype:"array,integer" example:"0,255,0"`
	FrameWidth  int     `json:"frame_width" example:"1280"`
	FrameHeight int     `json:"frame_height" example:"720"`
}

// Folder represents a tracked folder scanned for videos.
type Folder struct {
	ID     string `json:"folder_id" example:"fld_abcd1234"`
	Path   string `json:"path" example:"/videos"`
	Videos int    `json:"videos" example:"3"`
}

// Video tracks a registered video and its probed stream metadata.
type Video struct {
	ID              string     `json:"video_id" example:"vid_abcd1234"`
	Path            string     `json:"path" example:"/videos/sample.mp4"`
	DurationSeconds float64    `json:"duration_seconds,omitempty" example:"120.5"`
	FPS             float64    `json:"fps,omitempty" example:"29.97"`
	Width           int        `json:"width,omitempty" example:"1280"`
	Height          int        `json:"height,omitempty" example:"720"`
	FrameCount      int        `json:"frame_count,omitempty" example:"3600"`
	Status          string     `json:"status" example:"registered"`
	LastError       *string    `json:"last_error" example:"failed to decode frame"`
	LastProcessedAt *time.Time `json:"last_processed_at" example:"2024-01-01T12:00:00Z"`
}

// Job represents a background annotate or frame-extraction run.
type Job struct {
	ID         string    `json:"job_id" example:"job_abcd1234"`
	VideoID    string    `json:"video_id" example:"vid_abcd1234"`
	Type       string    `json:"type" example:"annotate"`
	Status     string    `json:"status" example:"running"`
	Progress   float64   `json:"progress" example:"0.42"`
	OutputPath string    `json:"output_path,omitempty" example:"output/sample_annotated.mp4"`
	CreatedAt  time.Time `json:"created_at" example:"2024-01-01T12:00:00Z"`
	UpdatedAt  time.Time `json:"updated_at" example:"2024-01-01T12:05:00Z"`
}

// ErrorResponse represents a standard error payload.
type ErrorResponse struct {
	Error string `json:"error" example:"description of the error"`
}

// HealthResponse describes the health endpoint payload.
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Version string `json:"version" example:"0.1.0"`
}

// ConfigUpdateRequest allows partial configuration updates.
type ConfigUpdateRequest struct {
	FontScale   *float64 `json:"font_scale" example:"1.5"`
	Thickness   *int     `json:"thickness" example:"2"`
	Color       *[3]int  `json:"color" swaggertype:"array,integer" example:"0,0,255"`
	FrameWidth  *int     `json:"frame_width" example:"1280"`
	FrameHeight *int     `json:"frame_height" example:"720"`
}

// StatusResponse is a generic status wrapper.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// AddFolderRequest is the payload to scan a folder for videos.
type AddFolderRequest struct {
	Path string `json:"path" example:"/videos"`
}

// AddFolderResponse returns the tracked folder ID and registration count.
type AddFolderResponse struct {
	FolderID string `json:"folder_id" example:"fld_abcd1234"`
	Videos   int    `json:"videos" example:"3"`
}

// AddVideoRequest registers a new video.
type AddVideoRequest struct {
	Path string `json:"path" example:"/videos/sample.mp4"`
}

// AddVideoResponse returns the created video ID.
type AddVideoResponse struct {
	VideoID string `json:"video_id" example:"vid_abcd1234"`
	Status  string `json:"status" example:"registered"`
}

// AnnotateRequest overrides counter styling for a single annotate job.
type AnnotateRequest struct {
	FontScale *float64 `json:"font_scale" example:"2"`
	Thickness *int     `json:"thickness" example:"3"`
	Color     *[3]int  `json:"color" swaggertype:"array,integer" example:"0,255,0"`
}

// FramesRequest lists the frame indices to extract.
type FramesRequest struct {
	Frames []int `json:"frames" example:"0,30,60"`
}

// ChannelRequest selects a frame and optional resize for a channel capture.
type ChannelRequest struct {
	Frame  int `json:"frame" example:"30"`
	Width  int `json:"width,omitempty" example:"1280"`
	Height int `json:"height,omitempty" example:"720"`
}

// ChannelResponse reports where the captured channel still was written.
type ChannelResponse struct {
	OutputPath string `json:"output_path" example:"output/sample/frame_0030_ch1.jpg"`
}

// StartJobResponse provides the started job ID.
type StartJobResponse struct {
	Status string `json:"status" example:"started"`
	JobID  string `json:"job_id" example:"job_abcd1234"`
}

// CancelJobResponse indicates a cancellation attempt.
type CancelJobResponse struct {
	Status string `json:"status" example:"cancelling"`
}

var errNotFound = errors.New("not found")
