// Package render turns a resume document into a one-page ATS-friendly DOCX.
// The package builds the OOXML parts from paragraph/run primitives; no
// template file is involved.
package render

import (
	"os"
	"path/filepath"

	"github.com/franciscoturdera00/resume-automation/resume/model"
)

// Render builds the DOCX package for the given resume. The input is validated
// first and a MissingFieldError is returned before any document state exists.
// Rendering is deterministic: equal inputs produce identical bytes.
func Render(doc model.ResumeDocument, style StyleSpec) ([]byte, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	d := newDocument(style)
	numID, err := d.defineBulletNumbering()
	if err != nil {
		return nil, err
	}

	buildHeader(d, doc.Meta)
	buildSummary(d, doc.Summary)

	buildSectionHeader(d, "Experience")
	buildExperience(d, doc.Experience, numID)

	buildSectionHeader(d, "Skills")
	buildSkills(d, doc.Skills)

	buildSectionHeader(d, "Projects")
	buildProjects(d, doc.Projects, numID)

	buildSectionHeader(d, "Education")
	buildEducation(d, doc.Education)

	return d.bytes()
}

// Save renders the resume and writes it to path atomically: the document is
// fully built and validated before any file exists, then written to a temp
// file in the target directory and renamed, so a failed render never leaves a
// partial file behind.
func Save(doc model.ResumeDocument, style StyleSpec, path string) error {
	payload, err := Render(doc, style)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".resume-*.docx")
	if err != nil {
		return &IOError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &IOError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &IOError{Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &IOError{Path: path, Err: err}
	}
	return nil
}
