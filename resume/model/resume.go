package model

import (
	"fmt"
	"strings"
)

// ResumeDocument is the tailored resume payload handed over by the upstream
// tailoring step. Every top-level field is required; the renderer fails closed
// if any is absent.
type ResumeDocument struct {
	Meta       ContactMeta      `json:"meta"`
	Summary    string           `json:"summary"`
	Experience []JobEntry       `json:"experience"`
	Skills     SkillList        `json:"skills"`
	Projects   []ProjectEntry   `json:"projects"`
	Education  []EducationEntry `json:"education"`
}

// TailoredResume is the full LLM output: the resume plus the posting it was
// tailored for, used to address output artifacts.
type TailoredResume struct {
	Company  string `json:"company"`
	JobTitle string `json:"job_title"`
	ResumeDocument
}

// ContactMeta captures the resume header. Name and Title are required; the
// remaining fields render only when present, in the order returned by Parts.
type ContactMeta struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	Location   string `json:"location,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	LinkedIn   string `json:"linkedin,omitempty"`
	GitHub     string `json:"github,omitempty"`
	Relocation string `json:"relocation,omitempty"`
}

// Parts returns the optional contact fields that are set, in display order.
func (m ContactMeta) Parts() []string {
	ordered := []string{m.Location, m.Phone, m.Email, m.LinkedIn, m.GitHub, m.Relocation}
	out := make([]string, 0, len(ordered))
	for _, v := range ordered {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

// JobEntry is one work history entry.
type JobEntry struct {
	Title    string   `json:"title"`
	Company  string   `json:"company"`
	Location string   `json:"location"`
	Start    string   `json:"start"`
	End      string   `json:"end"`
	Bullets  []string `json:"bullets"`
}

// ProjectEntry is one project with a single-bullet description.
type ProjectEntry struct {
	Name        string   `json:"name"`
	Tech        []string `json:"tech"`
	Description string   `json:"description"`
}

// EducationEntry is one education entry. Honors is optional.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Location    string `json:"location"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Honors      string `json:"honors,omitempty"`
}

// Validate enforces the required-field contract. It returns a
// MissingFieldError naming the first absent field, walking the document in
// render order. Empty (non-nil) section lists are valid; absent ones are not.
func (d ResumeDocument) Validate() error {
	if strings.TrimSpace(d.Meta.Name) == "" {
		return MissingFieldError{Field: "meta.name"}
	}
	if strings.TrimSpace(d.Meta.Title) == "" {
		return MissingFieldError{Field: "meta.title"}
	}
	if strings.TrimSpace(d.Summary) == "" {
		return MissingFieldError{Field: "summary"}
	}
	if d.Experience == nil {
		return MissingFieldError{Field: "experience"}
	}
	for i, job := range d.Experience {
		if err := job.validate(i); err != nil {
			return err
		}
	}
	if d.Skills == nil {
		return MissingFieldError{Field: "skills"}
	}
	for i, group := range d.Skills {
		if strings.TrimSpace(group.Label) == "" {
			return MissingFieldError{Field: fmt.Sprintf("skills[%d].label", i)}
		}
	}
	if d.Projects == nil {
		return MissingFieldError{Field: "projects"}
	}
	for i, project := range d.Projects {
		if err := project.validate(i); err != nil {
			return err
		}
	}
	if d.Education == nil {
		return MissingFieldError{Field: "education"}
	}
	for i, edu := range d.Education {
		if err := edu.validate(i); err != nil {
			return err
		}
	}
	return nil
}

func (j JobEntry) validate(idx int) error {
	required := []struct {
		name  string
		value string
	}{
		{"title", j.Title},
		{"company", j.Company},
		{"location", j.Location},
		{"start", j.Start},
		{"end", j.End},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return MissingFieldError{Field: fmt.Sprintf("experience[%d].%s", idx, field.name)}
		}
	}
	if j.Bullets == nil {
		return MissingFieldError{Field: fmt.Sprintf("experience[%d].bullets", idx)}
	}
	return nil
}

func (p ProjectEntry) validate(idx int) error {
	if strings.TrimSpace(p.Name) == "" {
		return MissingFieldError{Field: fmt.Sprintf("projects[%d].name", idx)}
	}
	if p.Tech == nil {
		return MissingFieldError{Field: fmt.Sprintf("projects[%d].tech", idx)}
	}
	if strings.TrimSpace(p.Description) == "" {
		return MissingFieldError{Field: fmt.Sprintf("projects[%d].description", idx)}
	}
	return nil
}

func (e EducationEntry) validate(idx int) error {
	required := []struct {
		name  string
		value string
	}{
		{"degree", e.Degree},
		{"institution", e.Institution},
		{"location", e.Location},
		{"start", e.Start},
		{"end", e.End},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return MissingFieldError{Field: fmt.Sprintf("education[%d].%s", idx, field.name)}
		}
	}
	return nil
}
