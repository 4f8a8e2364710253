package main

// Tailor a resume for a job posting from the command line:
//   go run ./cmd/tailor --job "https://example.com/careers/123"
//   go run ./cmd/tailor --job posting.txt --dry-run

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/franciscoturdera00/resume-automation/internal/bootstrap"
	"github.com/franciscoturdera00/resume-automation/internal/jobinput"
	"github.com/franciscoturdera00/resume-automation/internal/shared/config"
	"github.com/franciscoturdera00/resume-automation/internal/tailor"
)

func main() {
	jobFlag := flag.String("job", "", "job posting URL, .txt/.pdf/.docx file path, or raw text")
	masterFlag := flag.String("master", "", "master resume JSON path (defaults to MASTER_RESUME)")
	dryRun := flag.Bool("dry-run", false, "print tailored JSON without rendering the DOCX")
	flag.Parse()

	if strings.TrimSpace(*jobFlag) == "" {
		fmt.Fprintln(os.Stderr, "usage: tailor --job <url|file|text> [--master resume.json] [--dry-run]")
		os.Exit(2)
	}

	cfg := config.Load()
	if strings.TrimSpace(*masterFlag) != "" {
		cfg.MasterResume = *masterFlag
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}

	ctx := context.Background()

	log.Printf("resolving job input")
	jobText, err := jobinput.NewResolver().Resolve(ctx, *jobFlag)
	if err != nil {
		log.Fatalf("resolve job input: %v", err)
	}
	log.Printf("job description: %d chars", len(jobText))

	master, err := os.ReadFile(cfg.MasterResume)
	if err != nil {
		log.Fatalf("read master resume %s: %v", cfg.MasterResume, err)
	}

	log.Printf("calling tailoring model")
	result, err := app.TailorService.Run(ctx, tailor.RunInput{
		MasterResume:   json.RawMessage(master),
		JobDescription: jobText,
	})
	if err != nil {
		log.Fatalf("tailoring failed: %v", err)
	}

	log.Printf("tailored for: %s - %s", result.Run.Company, result.Run.JobTitle)

	if *dryRun {
		pretty, err := json.MarshalIndent(result.Tailored, "", "  ")
		if err != nil {
			log.Fatalf("marshal tailored resume: %v", err)
		}
		fmt.Println(string(pretty))
	}

	fmt.Printf("done: run %s, artifacts under %s\n", result.Run.ID, result.Run.DocxKey)
}
