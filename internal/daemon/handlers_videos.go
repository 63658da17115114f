package daemon

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"quadview/internal/capture"
	"quadview/internal/quadsplit"
	"quadview/internal/video"
)

// handleVideos godoc
// @Summary List or register videos
// @Description GET lists registered videos; POST probes and registers a new video.
// @Tags videos
// @Accept json
// @Produce json
// @Param request body AddVideoRequest true "Video to register"
// @Success 200 {array} Video
// @Success 200 {object} AddVideoResponse
// @Failure 400 {object} ErrorResponse
// @Router /videos [get]
// @Router /videos [post]
func (s *Server) handleVideos(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.mu.RLock()
		list := make([]Video, 0, len(s.videos))
		for _, v := range s.videos {
			copyVideo := *v
			list = append(list, copyVideo)
		}
		s.mu.RUnlock()
		writeJSON(w, http.StatusOK, list)
	case http.MethodPost:
		var req AddVideoRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json payload")
			return
		}
		if strings.TrimSpace(req.Path) == "" {
			writeError(w, http.StatusBadRequest, "path is required")
			return
		}

		s.mu.RLock()
		id, exists := s.videoByPath[req.Path]
		s.mu.RUnlock()
		if exists {
			writeJSON(w, http.StatusOK, AddVideoResponse{VideoID: id, Status: "already_exists"})
			return
		}

		v, err := s.registerVideo(req.Path)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, AddVideoResponse{VideoID: v.ID, Status: v.Status})
	}
}

// registerVideo probes a file and adds it to the registry. Registering the
// same path twice returns the existing entry.
func (s *Server) registerVideo(path string) (*Video, error) {
	info, err := s.probe(path)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if id, exists := s.videoByPath[path]; exists {
		return s.videos[id], nil
	}
	v := &Video{
		ID:              newID("vid_"),
		Path:            path,
		DurationSeconds: info.DurationSeconds,
		FPS:             info.FPS,
		Width:           info.Width,
		Height:          info.Height,
		FrameCount:      info.FrameCount,
		Status:          "registered",
	}
	s.videos[v.ID] = v
	s.videoByPath[path] = v.ID
	return v, nil
}

// handleGetVideo godoc
// @Summary Get video details
// @Description Returns probed metadata and processing status for a video.
// @Tags videos
// @Produce json
// @Param videoID path string true "Video ID"
// @Success 200 {object} Video
// @Failure 404 {object} ErrorResponse
// @Router /videos/{videoID} [get]
func (s *Server) handleGetVideo(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "videoID")
	s.mu.RLock()
	v, ok := s.videos[videoID]
	if ok {
		copyVideo := *v
		s.mu.RUnlock()
		writeJSON(w, http.StatusOK, copyVideo)
		return
	}
	s.mu.RUnlock()
	writeError(w, http.StatusNotFound, "video not found")
}

// handleAnnotate godoc
// @Summary Start an annotate job
// @Description Re-encodes the video with a frame counter burned into every frame.
// @Tags videos
// @Accept json
// @Produce json
// @Param videoID path string true "Video ID"
// @Param request body AnnotateRequest false "Styling overrides"
// @Success 200 {object} StartJobResponse
// @Failure 404 {object} ErrorResponse
// @Router /videos/{videoID}/annotate [post]
func (s *Server) handleAnnotate(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "videoID")
	var req AnnotateRequest
	_ = decodeJSON(r, &req)

	job, err := s.startAnnotateJob(videoID, req)
	if err != nil {
		if errors.Is(err, errNotFound) {
			writeError(w, http.StatusNotFound, "video not found")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, StartJobResponse{Status: "started", JobID: job.ID})
}

// handleFrames godoc
// @Summary Start a frame extraction job
// @Description Saves the listed frame indices as JPEG stills. Invalid indices are skipped.
// @Tags videos
// @Accept json
// @Produce json
// @Param videoID path string true "Video ID"
// @Param request body FramesRequest true "Frame indices"
// @Success 200 {object} StartJobResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /videos/{videoID}/frames [post]
func (s *Server) handleFrames(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "videoID")
	var req FramesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json payload")
		return
	}
	if len(req.Frames) == 0 {
		writeError(w, http.StatusBadRequest, "frames is required")
		return
	}

	job, err := s.startFramesJob(videoID, req.Frames)
	if err != nil {
		if errors.Is(err, errNotFound) {
			writeError(w, http.StatusNotFound, "video not found")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, StartJobResponse{Status: "started", JobID: job.ID})
}

// handleChannel godoc
// @Summary Capture one quad-view channel
// @Description Saves the selected channel of one frame as a JPEG still and returns its path.
// @Tags videos
// @Accept json
// @Produce json
// @Param videoID path string true "Video ID"
// @Param channel path int true "Channel number (1-4)"
// @Param request body ChannelRequest true "Frame selection"
// @Success 200 {object} ChannelResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /videos/{videoID}/channels/{channel} [post]
func (s *Server) handleChannel(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "videoID")

	chNum, err := strconv.Atoi(chi.URLParam(r, "channel"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "channel must be a number")
		return
	}
	ch, err := quadsplit.ParseChannel(chNum)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req ChannelRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json payload")
		return
	}

	s.mu.RLock()
	v, ok := s.videos[videoID]
	var videoPath, outDir string
	var frameCount, width, height int
	if ok {
		videoPath = v.Path
		frameCount = v.FrameCount
		outDir = s.framesDirForVideo(v.Path)
		width = s.config.FrameWidth
		height = s.config.FrameHeight
	}
	s.mu.RUnlock()
	if !ok {
		writeError(w, http.StatusNotFound, "video not found")
		return
	}

	// Frame range is checked against probed metadata before any decode.
	if err := video.CheckIndex(req.Frame, frameCount); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Width > 0 {
		width = req.Width
	}
	if req.Height > 0 {
		height = req.Height
	}

	outPath, err := s.channelRun(videoPath, capture.ChannelRequest{
		Frame:   req.Frame,
		Channel: int(ch),
		Width:   width,
		Height:  height,
		OutPath: filepath.Join(outDir, capture.ChannelName(req.Frame, ch)),
	})
	if err != nil {
		channelCapturesTotal.WithLabelValues("failed").Inc()
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	channelCapturesTotal.WithLabelValues("done").Inc()
	framesWrittenTotal.Inc()
	writeJSON(w, http.StatusOK, ChannelResponse{OutputPath: outPath})
}

// handleVideoFile streams a registered video's file contents.
func (s *Server) handleVideoFile(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "videoID")
	s.mu.RLock()
	v, ok := s.videos[videoID]
	s.mu.RUnlock()
	if !ok {
		writeError(w, http.StatusNotFound, "video not found")
		return
	}
	if strings.TrimSpace(v.Path) == "" {
		writeError(w, http.StatusNotFound, "video path missing")
		return
	}

	http.ServeFile(w, r, v.Path)
}
