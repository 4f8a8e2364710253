package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyenthenguyen/docx"

	"github.com/franciscoturdera00/resume-automation/resume/model"
)

func sampleResume() model.ResumeDocument {
	return model.ResumeDocument{
		Meta: model.ContactMeta{
			Name:     "Ada Lovelace",
			Title:    "Backend Engineer",
			Location: "London, UK",
			Phone:    "555-555-5555",
			Email:    "ada@example.com",
			LinkedIn: "linkedin.com/in/ada",
			GitHub:   "github.com/ada",
		},
		Summary: "Engineer with a decade of experience building analytical engines.",
		Experience: []model.JobEntry{
			{
				Title:    "Senior Engineer",
				Company:  "Analytical Engines Ltd",
				Location: "London, UK",
				Start:    "Jan 2020",
				End:      "Present",
				Bullets: []string{
					"Designed the computation pipeline.",
					"Cut processing latency by 40%.",
				},
			},
		},
		Skills: model.SkillList{
			{Label: "languages", Items: []string{"Go", "Rust"}},
			{Label: "tools", Items: []string{"Git"}},
		},
		Projects: []model.ProjectEntry{
			{
				Name:        "Difference Engine",
				Tech:        []string{"Go", "PostgreSQL"},
				Description: "Built a deterministic calculation service.",
			},
		},
		Education: []model.EducationEntry{
			{
				Degree:      "BS Mathematics",
				Institution: "University of London",
				Location:    "London, UK",
				Start:       "2008",
				End:         "2012",
				Honors:      "Summa Cum Laude",
			},
		},
	}
}

func TestRenderProducesOpenableDocx(t *testing.T) {
	payload, err := Render(sampleResume(), DefaultStyle())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if len(payload) == 0 {
		t.Fatalf("expected non-empty document")
	}

	reader, err := zip.NewReader(bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		t.Fatalf("zip reader failed: %v", err)
	}
	required := map[string]bool{
		"[Content_Types].xml": false,
		"_rels/.rels":         false,
		"word/document.xml":   false,
		"word/numbering.xml":  false,
		"word/styles.xml":     false,
	}
	for _, file := range reader.File {
		if _, ok := required[file.Name]; ok {
			required[file.Name] = true
		}
	}
	for name, found := range required {
		if !found {
			t.Fatalf("expected docx to contain %s", name)
		}
	}

	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		t.Fatalf("docx open failed: %v", err)
	}
	defer doc.Close()
	content := doc.Editable().GetContent()
	if !strings.Contains(content, "ADA LOVELACE") {
		t.Fatalf("expected document content to contain the name")
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	first, err := Render(sampleResume(), DefaultStyle())
	if err != nil {
		t.Fatalf("first render failed: %v", err)
	}
	second, err := Render(sampleResume(), DefaultStyle())
	if err != nil {
		t.Fatalf("second render failed: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("expected byte-identical output across renders")
	}
}

func TestRenderDocumentXMLIsWellFormed(t *testing.T) {
	payload, err := Render(sampleResume(), DefaultStyle())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	documentXML := readDocumentXML(t, payload)

	var doc struct {
		XMLName xml.Name `xml:"document"`
	}
	if err := xml.Unmarshal([]byte(documentXML), &doc); err != nil {
		t.Fatalf("document.xml parse failed: %v", err)
	}
}

func TestContactLineJoinsOnlyPresentFields(t *testing.T) {
	resume := sampleResume()
	resume.Meta = model.ContactMeta{
		Name:  "Ada Lovelace",
		Title: "Backend Engineer",
		Email: "ada@example.com",
	}

	payload, err := Render(resume, DefaultStyle())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	documentXML := readDocumentXML(t, payload)

	if got := strings.Count(documentXML, "·"); got != 0 {
		t.Fatalf("expected no contact separators for a single field, got %d", got)
	}
	assertContains(t, documentXML, "ada@example.com")
}

func TestContactLineFixedOrderAllFields(t *testing.T) {
	resume := sampleResume()
	resume.Meta = model.ContactMeta{
		Name:       "Ada Lovelace",
		Title:      "Backend Engineer",
		Location:   "London, UK",
		Phone:      "555-555-5555",
		Email:      "ada@example.com",
		LinkedIn:   "linkedin.com/in/ada",
		GitHub:     "github.com/ada",
		Relocation: "Open to relocation",
	}

	payload, err := Render(resume, DefaultStyle())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	documentXML := readDocumentXML(t, payload)

	if got := strings.Count(documentXML, "·"); got != 5 {
		t.Fatalf("expected 5 contact separators, got %d", got)
	}

	order := []string{"London, UK", "555-555-5555", "ada@example.com", "linkedin.com/in/ada", "github.com/ada", "Open to relocation"}
	last := -1
	for _, part := range order {
		idx := strings.Index(documentXML, part)
		if idx == -1 {
			t.Fatalf("expected contact line to contain %q", part)
		}
		if idx < last {
			t.Fatalf("contact field %q rendered out of order", part)
		}
		last = idx
	}
}

func TestBulletCountMatchesInput(t *testing.T) {
	resume := sampleResume()
	resume.Projects = []model.ProjectEntry{}
	resume.Education = []model.EducationEntry{}

	payload, err := Render(resume, DefaultStyle())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	documentXML := readDocumentXML(t, payload)

	if got := strings.Count(documentXML, "<w:numPr>"); got != 2 {
		t.Fatalf("expected 2 bullet paragraphs, got %d", got)
	}
	if got := strings.Count(documentXML, `<w:numId w:val="1">`); got != 2 {
		t.Fatalf("expected all bullets bound to numbering id 1, got %d bindings", got)
	}

	// Empty sections keep their headers.
	assertContains(t, documentXML, "PROJECTS")
	assertContains(t, documentXML, "EDUCATION")
}

func TestSkillsOrderPreserved(t *testing.T) {
	payload, err := Render(sampleResume(), DefaultStyle())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	documentXML := readDocumentXML(t, payload)

	languages := strings.Index(documentXML, "Languages: ")
	tools := strings.Index(documentXML, "Tools: ")
	if languages == -1 || tools == -1 {
		t.Fatalf("expected both skill labels, got languages=%d tools=%d", languages, tools)
	}
	if languages > tools {
		t.Fatalf("expected Languages before Tools")
	}
	assertContains(t, documentXML, "Go, Rust")
}

func TestRenderMissingSummaryFailsClosed(t *testing.T) {
	resume := sampleResume()
	resume.Summary = ""

	if _, err := Render(resume, DefaultStyle()); !model.IsMissingField(err) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
}

func TestSaveDoesNotLeavePartialFileOnValidationFailure(t *testing.T) {
	resume := sampleResume()
	resume.Summary = ""

	target := filepath.Join(t.TempDir(), "resume.docx")
	if err := Save(resume, DefaultStyle(), target); !model.IsMissingField(err) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Fatalf("expected no output file after validation failure")
	}
}

func TestSaveWritesFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "resume.docx")
	if err := Save(sampleResume(), DefaultStyle(), target); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected non-empty file")
	}

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(target))
	if err != nil {
		t.Fatalf("read dir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the output file, got %d entries", len(entries))
	}
}

func TestSaveMissingDirectoryIsIOError(t *testing.T) {
	target := filepath.Join(t.TempDir(), "missing", "resume.docx")
	err := Save(sampleResume(), DefaultStyle(), target)
	if err == nil {
		t.Fatalf("expected error for missing parent directory")
	}
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected IOError, got %T", err)
	}
}

func TestCustomStyleSpecIsApplied(t *testing.T) {
	style := StyleSpec{Accent: "AA0000", Dark: "111111", Gray: "777777", Font: "Arial"}
	payload, err := Render(sampleResume(), style)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	documentXML := readDocumentXML(t, payload)

	assertContains(t, documentXML, `<w:color w:val="AA0000">`)
	assertContains(t, documentXML, `w:ascii="Arial"`)
	if strings.Contains(documentXML, "2B4C7E") {
		t.Fatalf("expected default accent to be absent under a custom style")
	}
}

func readDocumentXML(t *testing.T, payload []byte) string {
	t.Helper()
	reader, err := zip.NewReader(bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		t.Fatalf("zip reader failed: %v", err)
	}
	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			t.Fatalf("open document.xml failed: %v", err)
		}
		defer rc.Close()
		content, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read document.xml failed: %v", err)
		}
		return string(content)
	}
	t.Fatalf("document.xml not found")
	return ""
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected to contain %q", needle)
	}
}
