package main

// Render a built-in sample resume for eyeballing the DOCX output:
//   go run ./cmd/renderdemo --out ./out/sample_resume.docx

import (
	"archive/zip"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/franciscoturdera00/resume-automation/resume/model"
	"github.com/franciscoturdera00/resume-automation/resume/render"
)

func main() {
	outPath := flag.String("out", "./out/sample_resume.docx", "output path for generated DOCX")
	flag.Parse()

	doc := sampleResume()

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir failed: %v\n", err)
		os.Exit(1)
	}

	if err := render.Save(doc, render.DefaultStyle(), *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
		os.Exit(1)
	}

	if err := writeModelJSON(*outPath, doc); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}

	if err := validateDocxZip(*outPath); err != nil {
		fmt.Fprintf(os.Stderr, "render validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: wrote %s\n", *outPath)
}

func writeModelJSON(outPath string, doc model.ResumeDocument) error {
	modelPath := filepath.Join(filepath.Dir(outPath), "sample_resume.json")
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(modelPath, payload, 0o644)
}

func validateDocxZip(path string) error {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("open docx: %w", err)
	}
	defer zr.Close()

	required := map[string]bool{
		"[Content_Types].xml": false,
		"word/document.xml":   false,
		"word/styles.xml":     false,
		"word/numbering.xml":  false,
	}
	for _, f := range zr.File {
		if _, ok := required[f.Name]; ok {
			required[f.Name] = true
		}
	}
	for name, seen := range required {
		if !seen {
			return fmt.Errorf("missing part %s", name)
		}
	}
	return nil
}

func sampleResume() model.ResumeDocument {
	return model.ResumeDocument{
		Meta: model.ContactMeta{
			Name:     "Jordan Lee",
			Title:    "Senior Backend Engineer",
			Location: "Austin, TX",
			Phone:    "+1-555-0102",
			Email:    "jordan.lee@example.com",
			LinkedIn: "linkedin.com/in/jordanlee",
			GitHub:   "github.com/jordanlee",
		},
		Summary: "Backend engineer with 8+ years of experience building resilient APIs and data services, " +
			"including platform modernization work spanning cloud migration and observability adoption.",
		Experience: []model.JobEntry{
			{
				Title:    "Senior Backend Engineer",
				Company:  "Acme Logistics",
				Location: "Austin, TX",
				Start:    "Apr 2021",
				End:      "Present",
				Bullets: []string{
					"Designed a routing service that reduced shipment latency by 18%.",
					"Introduced OpenTelemetry tracing across 12 services.",
					"Mentored four engineers through promotion cycles.",
				},
			},
			{
				Title:    "Backend Engineer",
				Company:  "Initech",
				Location: "Remote",
				Start:    "Jun 2017",
				End:      "Mar 2021",
				Bullets: []string{
					"Built the billing pipeline processing $40M/year.",
					"Cut p99 API latency from 900ms to 220ms.",
				},
			},
		},
		Skills: model.SkillList{
			{Label: "languages", Items: []string{"Go", "Java", "SQL"}},
			{Label: "frameworks", Items: []string{"Gin", "Spring Boot"}},
			{Label: "databases", Items: []string{"PostgreSQL", "Redis"}},
			{Label: "cloud", Items: []string{"AWS", "Docker", "Kubernetes"}},
		},
		Projects: []model.ProjectEntry{
			{
				Name:        "opentrace-sampler",
				Tech:        []string{"Go", "OpenTelemetry"},
				Description: "Adaptive sampling library for high-volume trace pipelines.",
			},
		},
		Education: []model.EducationEntry{
			{
				Degree:      "BSc Computer Science",
				Institution: "University of Texas at Austin",
				Location:    "Austin, TX",
				Start:       "2009",
				End:         "2013",
				Honors:      "magna cum laude",
			},
		},
	}
}
