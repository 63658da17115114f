package daemon

import (
	"net/http"
)

// handleHealth godoc
// @Summary Health check
// @Description Returns service health and version.
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: Version,
	})
}

// handleConfig godoc
// @Summary Get or update configuration
// @Description Returns the current defaults on GET and updates selected fields on PUT.
// @Tags config
// @Accept json
// @Produce json
// @Param request body ConfigUpdateRequest false "Fields to update (PUT only)"
// @Success 200 {object} Config
// @Success 200 {object} StatusResponse "Update acknowledgment"
// @Failure 400 {object} ErrorResponse
// @Router /config [get]
// @Router /config [put]
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.mu.RLock()
		cfg := s.config
		s.mu.RUnlock()
		writeJSON(w, http.StatusOK, cfg)
	case http.MethodPut:
		var req ConfigUpdateRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json payload")
			return
		}
		if req.FontScale != nil && *req.FontScale <= 0 {
			writeError(w, http.StatusBadRequest, "font_scale must be greater than zero")
			return
		}
		if req.Thickness != nil && *req.Thickness <= 0 {
			writeError(w, http.StatusBadRequest, "thickness must be greater than zero")
			return
		}
		s.mu.Lock()
		if req.FontScale != nil {
			s.config.FontScale = *req.FontScale
		}
		if req.Thickness != nil {
			s.config.Thickness = *req.Thickness
		}
		if req.Color != nil {
			s.config.Color = *req.Color
		}
		if req.FrameWidth != nil {
			s.config.FrameWidth = *req.FrameWidth
		}
		if req.FrameHeight != nil {
			s.config.FrameHeight = *req.FrameHeight
		}
		s.mu.Unlock()
		writeJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
	}
}
