package model

import (
	"encoding/json"
	"testing"
)

func validDocument() ResumeDocument {
	return ResumeDocument{
		Meta:       ContactMeta{Name: "Ada Lovelace", Title: "Engineer", Email: "ada@example.com"},
		Summary:    "Engineer.",
		Experience: []JobEntry{},
		Skills:     SkillList{},
		Projects:   []ProjectEntry{},
		Education:  []EducationEntry{},
	}
}

func TestValidateAcceptsEmptySections(t *testing.T) {
	if err := validDocument().Validate(); err != nil {
		t.Fatalf("expected valid document, got %v", err)
	}
}

func TestValidateRejectsAbsentSections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ResumeDocument)
		field  string
	}{
		{"name", func(d *ResumeDocument) { d.Meta.Name = "" }, "meta.name"},
		{"title", func(d *ResumeDocument) { d.Meta.Title = "" }, "meta.title"},
		{"summary", func(d *ResumeDocument) { d.Summary = "" }, "summary"},
		{"experience", func(d *ResumeDocument) { d.Experience = nil }, "experience"},
		{"skills", func(d *ResumeDocument) { d.Skills = nil }, "skills"},
		{"projects", func(d *ResumeDocument) { d.Projects = nil }, "projects"},
		{"education", func(d *ResumeDocument) { d.Education = nil }, "education"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := validDocument()
			tc.mutate(&doc)
			err := doc.Validate()
			if !IsMissingField(err) {
				t.Fatalf("expected MissingFieldError, got %v", err)
			}
			var missing MissingFieldError
			if !asMissing(err, &missing) || missing.Field != tc.field {
				t.Fatalf("expected field %q, got %v", tc.field, err)
			}
		})
	}
}

func TestValidateNestedEntryFields(t *testing.T) {
	doc := validDocument()
	doc.Experience = []JobEntry{{Title: "Engineer", Company: "Acme", Location: "Remote", Start: "2020"}}

	err := doc.Validate()
	var missing MissingFieldError
	if !asMissing(err, &missing) || missing.Field != "experience[0].end" {
		t.Fatalf("expected experience[0].end, got %v", err)
	}
}

func TestValidateHonorsOptional(t *testing.T) {
	doc := validDocument()
	doc.Education = []EducationEntry{{
		Degree:      "BS",
		Institution: "State",
		Location:    "Austin, TX",
		Start:       "2016",
		End:         "2020",
	}}
	if err := doc.Validate(); err != nil {
		t.Fatalf("expected honors to be optional, got %v", err)
	}
}

func TestContactPartsSkipAbsentFields(t *testing.T) {
	meta := ContactMeta{
		Name:   "Ada",
		Title:  "Engineer",
		Email:  "ada@example.com",
		GitHub: "github.com/ada",
	}
	parts := meta.Parts()
	if len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(parts))
	}
	if parts[0] != "ada@example.com" || parts[1] != "github.com/ada" {
		t.Fatalf("expected fixed display order, got %v", parts)
	}
}

func TestAbsentJSONKeysFailValidation(t *testing.T) {
	payload := []byte(`{
		"meta": {"name": "Ada Lovelace", "title": "Engineer"},
		"summary": "Engineer.",
		"experience": [],
		"skills": {},
		"education": []
	}`)

	var doc ResumeDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	err := doc.Validate()
	var missing MissingFieldError
	if !asMissing(err, &missing) || missing.Field != "projects" {
		t.Fatalf("expected missing projects, got %v", err)
	}
}

func asMissing(err error, target *MissingFieldError) bool {
	m, ok := err.(MissingFieldError)
	if ok {
		*target = m
	}
	return ok
}
