package daemon

import (
	"net/http"
	"os"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"quadview/internal/annotate"
	"quadview/internal/capture"
	"quadview/internal/video"
)

// Server stores all in-memory state and exposes HTTP handlers.
type Server struct {
	mu          sync.RWMutex
	config      Config
	folders     map[string]*Folder
	videos      map[string]*Video
	jobs        map[string]*Job
	jobCancel   map[string]chan struct{}
	videoByPath map[string]string
	outputRoot  string
	stateless   bool
	cleanupDirs []string
	cleanupOnce sync.Once

	// Operation entry points, swappable in tests.
	probe       func(path string) (*video.ProbeInfo, error)
	annotateRun func(inputPath, outputPath string, opts annotate.Options) (int, error)
	framesRun   func(path string, indices []int, outDir string) (int, error)
	channelRun  func(path string, req capture.ChannelRequest) (string, error)
}

// NewServer builds a server rooted at cfg.OutputRoot. In stateless mode the
// output root is a temp directory removed by Cleanup.
func NewServer(cfg ProcessConfig) *Server {
	outputRoot := cfg.OutputRoot
	cleanupDirs := []string{}
	if cfg.Stateless {
		if tmp, err := os.MkdirTemp("", "quadview-output-"); err == nil {
			outputRoot = tmp
			cleanupDirs = append(cleanupDirs, tmp)
		}
	}
	if outputRoot == "" {
		outputRoot = "output"
	}

	return &Server{
		config: Config{
			FontScale: 2,
			Thickness: 3,
			Color:     [3]int{0, 255, 0},
		},
		folders:     make(map[string]*Folder),
		videos:      make(map[string]*Video),
		jobs:        make(map[string]*Job),
		jobCancel:   make(map[string]chan struct{}),
		videoByPath: make(map[string]string),
		outputRoot:  outputRoot,
		stateless:   cfg.Stateless,
		cleanupDirs: cleanupDirs,
		probe:       video.Probe,
		annotateRun: annotate.Video,
		framesRun:   capture.Frames,
		channelRun:  capture.Channel,
	}
}

// Routes returns the HTTP handler for all endpoints.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	// Logging
	r.Use(logRequestMiddleware)

	// CORS to allow local client
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Swagger docs
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
	})
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Metrics
	r.Handle("/metrics", promhttp.Handler())

	// Config and health
	r.Get("/health", s.handleHealth)
	r.MethodFunc(http.MethodGet, "/config", s.handleConfig)
	r.MethodFunc(http.MethodPut, "/config", s.handleConfig)

	// Folders
	r.MethodFunc(http.MethodGet, "/folders", s.handleFolders)
	r.MethodFunc(http.MethodPost, "/folders", s.handleFolders)

	// Videos
	r.MethodFunc(http.MethodGet, "/videos", s.handleVideos)
	r.MethodFunc(http.MethodPost, "/videos", s.handleVideos)
	r.Route("/videos/{videoID}", func(r chi.Router) {
		r.MethodFunc(http.MethodGet, "/", s.handleGetVideo)
		r.MethodFunc(http.MethodPost, "/annotate", s.handleAnnotate)
		r.MethodFunc(http.MethodPost, "/frames", s.handleFrames)
		r.MethodFunc(http.MethodPost, "/channels/{channel}", s.handleChannel)
		r.MethodFunc(http.MethodPost, "/cancel", s.handleCancel)
		r.MethodFunc(http.MethodGet, "/file", s.handleVideoFile)
	})

	// Jobs
	r.MethodFunc(http.MethodGet, "/jobs", s.handleJobs)

	return r
}

// Cleanup removes temporary data when stateless mode is enabled.
func (s *Server) Cleanup() {
	if !s.stateless {
		return
	}
	s.cleanupOnce.Do(func() {
		for _, dir := range s.cleanupDirs {
			_ = os.RemoveAll(dir)
		}
	})
}
