package daemon

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleJobs godoc
// @Summary List jobs
// @Description Returns all annotate and extraction jobs with progress.
// @Tags jobs
// @Produce json
// @Success 200 {array} Job
// @Router /jobs [get]
func (s *Server) handleJobs(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	list := make([]Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		copyJob := *j
		list = append(list, copyJob)
	}
	s.mu.RUnlock()
	writeJSON(w, http.StatusOK, list)
}

// handleCancel godoc
// @Summary Cancel a job
// @Description Attempts to cancel an active job for the given video.
// @Tags videos
// @Produce json
// @Param videoID path string true "Video ID"
// @Success 200 {object} CancelJobResponse
// @Failure 404 {object} ErrorResponse
// @Router /videos/{videoID}/cancel [post]
func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "videoID")
	if err := s.cancelJob(videoID); err != nil {
		if errors.Is(err, errNotFound) {
			writeError(w, http.StatusNotFound, "video not found or no active job")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, CancelJobResponse{Status: "cancelling"})
}
