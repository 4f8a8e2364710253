package main

import (
	"log"

	"github.com/franciscoturdera00/resume-automation/internal/bootstrap"
	"github.com/franciscoturdera00/resume-automation/internal/server"
	"github.com/franciscoturdera00/resume-automation/internal/shared/config"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
