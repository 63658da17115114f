package daemon

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"quadview/internal/annotate"
)

const (
	jobTypeAnnotate = "annotate"
	jobTypeFrames   = "extract_frames"
)

// newJob registers a queued job for a video and returns its cancel channel.
// Caller must hold no locks.
func (s *Server) newJob(videoID, jobType string) (*Job, chan struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	video, ok := s.videos[videoID]
	if !ok {
		return nil, nil, errNotFound
	}
	video.Status = "processing"
	video.LastError = nil

	now := time.Now().UTC()
	job := &Job{
		ID:        newID("job_"),
		VideoID:   videoID,
		Type:      jobType,
		Status:    "queued",
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.jobs[job.ID] = job
	cancelCh := make(chan struct{})
	s.jobCancel[job.ID] = cancelCh
	return job, cancelCh, nil
}

// startAnnotateJob schedules a counter burn-in run for a video.
func (s *Server) startAnnotateJob(videoID string, req AnnotateRequest) (*Job, error) {
	job, cancelCh, err := s.newJob(videoID, jobTypeAnnotate)
	if err != nil {
		return nil, err
	}
	go s.runAnnotateJob(job.ID, cancelCh, req)
	return job, nil
}

// startFramesJob schedules extraction of the given frame indices.
func (s *Server) startFramesJob(videoID string, indices []int) (*Job, error) {
	job, cancelCh, err := s.newJob(videoID, jobTypeFrames)
	if err != nil {
		return nil, err
	}
	go s.runFramesJob(job.ID, cancelCh, indices)
	return job, nil
}

// cancelJob stops an active job and marks it failed. The status flip and
// the channel close happen in one critical section so a second cancel for
// the same video sees a terminal job instead of a missing cancel channel.
func (s *Server) cancelJob(videoID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var job *Job
	for _, j := range s.jobs {
		if j.VideoID == videoID && (j.Status == "running" || j.Status == "queued") {
			job = j
			break
		}
	}
	if job == nil {
		return errNotFound
	}
	cancelCh, ok := s.jobCancel[job.ID]
	if !ok {
		return errNotFound
	}
	close(cancelCh)
	delete(s.jobCancel, job.ID)

	job.Status = "failed"
	job.Progress = 0
	job.UpdatedAt = time.Now().UTC()
	if video, exists := s.videos[videoID]; exists {
		video.Status = "failed"
		msg := "cancelled"
		video.LastError = &msg
	}
	jobsTotal.WithLabelValues(job.Type, "cancelled").Inc()
	return nil
}

// runAnnotateJob burns frame counters into a new copy of the video,
// tracking progress through the per-frame callback.
func (s *Server) runAnnotateJob(jobID string, cancelCh <-chan struct{}, req AnnotateRequest) {
	defer s.dropCancel(jobID)

	s.mu.Lock()
	job, ok := s.jobs[jobID]
	if !ok {
		s.mu.Unlock()
		return
	}
	video, ok := s.videos[job.VideoID]
	if !ok {
		s.mu.Unlock()
		return
	}
	videoPath := video.Path
	expected := video.FrameCount
	if expected <= 0 {
		expected = 1
	}
	outputPath := s.annotatedPath(videoPath)

	opts := annotate.Options{
		FontScale: s.config.FontScale,
		Thickness: s.config.Thickness,
		Color:     bgrColor(s.config.Color),
	}
	if req.FontScale != nil {
		opts.FontScale = *req.FontScale
	}
	if req.Thickness != nil {
		opts.Thickness = *req.Thickness
	}
	if req.Color != nil {
		opts.Color = bgrColor(*req.Color)
	}

	now := time.Now().UTC()
	job.Status = "running"
	job.OutputPath = outputPath
	job.UpdatedAt = now
	s.mu.Unlock()

	if err := os.MkdirAll(s.outputRoot, 0o755); err != nil {
		s.failJob(jobID, fmt.Errorf("prepare output root: %w", err))
		return
	}

	var done atomic.Int64
	opts.OnFrame = func(n int) { done.Store(int64(n) + 1) }

	errCh := make(chan error, 1)
	go func() {
		written, err := s.annotateRun(videoPath, outputPath, opts)
		framesWrittenTotal.Add(float64(written))
		errCh <- err
	}()

	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-cancelCh:
			// cancelJob already marked the job failed.
			return
		case err := <-errCh:
			if err != nil {
				s.failJob(jobID, fmt.Errorf("annotate video: %w", err))
			} else {
				s.completeJob(jobID)
			}
			return
		case <-ticker.C:
			s.setProgress(jobID, float64(done.Load())/float64(expected))
		}
	}
}

// runFramesJob extracts stills, tracking progress by counting the files
// that have appeared in the output directory so far.
func (s *Server) runFramesJob(jobID string, cancelCh <-chan struct{}, indices []int) {
	defer s.dropCancel(jobID)

	s.mu.Lock()
	job, ok := s.jobs[jobID]
	if !ok {
		s.mu.Unlock()
		return
	}
	video, ok := s.videos[job.VideoID]
	if !ok {
		s.mu.Unlock()
		return
	}
	videoPath := video.Path
	outDir := s.framesDirForVideo(videoPath)

	now := time.Now().UTC()
	job.Status = "running"
	job.OutputPath = outDir
	job.UpdatedAt = now
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		written, err := s.framesRun(videoPath, indices, outDir)
		framesWrittenTotal.Add(float64(written))
		errCh <- err
	}()

	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-cancelCh:
			// cancelJob already marked the job failed.
			return
		case err := <-errCh:
			if err != nil {
				s.failJob(jobID, fmt.Errorf("extract frames: %w", err))
			} else {
				s.completeJob(jobID)
			}
			return
		case <-ticker.C:
			count, err := countStills(outDir)
			if err != nil {
				s.failJob(jobID, fmt.Errorf("monitor stills: %w", err))
				return
			}
			s.setProgress(jobID, float64(count)/float64(len(indices)))
		}
	}
}

func (s *Server) dropCancel(jobID string) {
	s.mu.Lock()
	delete(s.jobCancel, jobID)
	s.mu.Unlock()
}

// setProgress raises a running job's progress, capped just below 1 so only
// completion reports 100%.
func (s *Server) setProgress(jobID string, progress float64) {
	if progress >= 1 {
		progress = math.Nextafter(1, 0)
	}
	s.mu.Lock()
	if job, ok := s.jobs[jobID]; ok && job.Status == "running" && progress > job.Progress {
		job.Progress = progress
		job.UpdatedAt = time.Now().UTC()
	}
	s.mu.Unlock()
}

func (s *Server) completeJob(jobID string) {
	now := time.Now().UTC()
	s.mu.Lock()
	job, ok := s.jobs[jobID]
	if !ok || job.Status == "done" || job.Status == "failed" {
		s.mu.Unlock()
		return
	}
	job.Status = "done"
	job.Progress = 1
	job.UpdatedAt = now
	if video, exists := s.videos[job.VideoID]; exists {
		video.Status = "done"
		video.LastError = nil
		video.LastProcessedAt = &now
	}
	jobsTotal.WithLabelValues(job.Type, "done").Inc()
	jobDuration.WithLabelValues(job.Type).Observe(now.Sub(job.CreatedAt).Seconds())
	s.mu.Unlock()
}

func (s *Server) failJob(jobID string, err error) {
	msg := err.Error()
	now := time.Now().UTC()
	s.mu.Lock()
	job, ok := s.jobs[jobID]
	if !ok || job.Status == "done" || job.Status == "failed" {
		s.mu.Unlock()
		return
	}
	job.Status = "failed"
	job.Progress = 0
	job.UpdatedAt = now
	if video, exists := s.videos[job.VideoID]; exists {
		video.Status = "failed"
		video.LastError = &msg
	}
	jobsTotal.WithLabelValues(job.Type, "failed").Inc()
	s.mu.Unlock()
}

func (s *Server) framesDirForVideo(videoPath string) string {
	return filepath.Join(s.outputRoot, videoBase(videoPath))
}

func (s *Server) annotatedPath(videoPath string) string {
	return filepath.Join(s.outputRoot, videoBase(videoPath)+"_annotated.mp4")
}

func videoBase(videoPath string) string {
	base := filepath.Base(videoPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func bgrColor(c [3]int) color.RGBA {
	return color.RGBA{B: uint8(c[0]), G: uint8(c[1]), R: uint8(c[2])}
}

// countStills counts the frame_NNNN.jpg stills written so far. Channel
// captures ("frame_0030_ch1.jpg") land in the same directory and are not
// part of a frames job, so anything beyond the bare index is skipped.
func countStills(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	count := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, "frame_") || !strings.HasSuffix(name, ".jpg") {
			continue
		}
		index := strings.TrimSuffix(strings.TrimPrefix(name, "frame_"), ".jpg")
		if _, err := strconv.Atoi(index); err != nil {
			continue
		}
		count++
	}
	return count, nil
}
