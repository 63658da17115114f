package daemon

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// handleFolders godoc
// @Summary Scan a folder for videos
// @Description GET lists scanned folders; POST scans a folder and registers every video file found in it.
// @Tags folders
// @Accept json
// @Produce json
// @Param request body AddFolderRequest true "Folder to scan"
// @Success 200 {array} Folder
// @Success 200 {object} AddFolderResponse
// @Failure 400 {object} ErrorResponse
// @Router /folders [get]
// @Router /folders [post]
func (s *Server) handleFolders(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.mu.RLock()
		list := make([]Folder, 0, len(s.folders))
		for _, f := range s.folders {
			copyFolder := *f
			list = append(list, copyFolder)
		}
		s.mu.RUnlock()
		writeJSON(w, http.StatusOK, list)
	case http.MethodPost:
		var req AddFolderRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json payload")
			return
		}
		if strings.TrimSpace(req.Path) == "" {
			writeError(w, http.StatusBadRequest, "path is required")
			return
		}

		entries, err := os.ReadDir(req.Path)
		if err != nil {
			writeError(w, http.StatusBadRequest, "cannot read folder: "+err.Error())
			return
		}

		added := 0
		for _, entry := range entries {
			if entry.IsDir() || !isVideoFile(entry.Name()) {
				continue
			}
			path := filepath.Join(req.Path, entry.Name())
			if _, err := s.registerVideo(path); err != nil {
				log.Printf("skip %s: %v", path, err)
				continue
			}
			added++
		}

		folder := &Folder{ID: newID("fld_"), Path: req.Path, Videos: added}
		s.mu.Lock()
		s.folders[folder.ID] = folder
		s.mu.Unlock()

		writeJSON(w, http.StatusOK, AddFolderResponse{FolderID: folder.ID, Videos: added})
	}
}

func isVideoFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".mp4", ".mov", ".mkv", ".avi", ".m4v", ".webm":
		return true
	default:
		return false
	}
}
