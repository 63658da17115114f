// @title Quadview API
// @version 1.0
// @description API for annotating quad-view videos and capturing frames or channels as stills.
// @host localhost:8080
// @BasePath /
package main

import (
	"log"
	"net/http"

	"quadview/internal/daemon"
	_ "quadview/internal/docs"
)

func main() {
	cfg, err := daemon.LoadProcessConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	server := daemon.NewServer(*cfg)
	defer server.Cleanup()

	log.Printf("Starting server on %s\n", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, server.Routes()); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
