package render

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/franciscoturdera00/resume-automation/resume/model"
)

const (
	fieldSeparator   = "  |  "
	contactSeparator = "  ·  "
	dateSeparator    = " – "
)

// buildHeader renders the name, title, and contact line.
func buildHeader(d *document, meta model.ContactMeta) {
	name := d.addParagraph()
	center(name)
	r := name.addRun(strings.ToUpper(meta.Name))
	applyFont(r, 20, true, d.style.Accent, d.style.Font)
	setLetterSpacing(r, 30)
	setSpacing(name, 0, 0, 240)

	title := d.addParagraph()
	center(title)
	applyFont(title.addRun(meta.Title), 11.5, false, d.style.Gray, d.style.Font)
	setSpacing(title, 20, 20, 240)

	contact := d.addParagraph()
	center(contact)
	line := strings.Join(meta.Parts(), contactSeparator)
	applyFont(contact.addRun(line), 8.5, false, d.style.Gray, d.style.Font)
	setSpacing(contact, 0, 60, 240)
}

// buildSummary renders the summary paragraph.
func buildSummary(d *document, summary string) {
	p := d.addParagraph()
	applyFont(p.addRun(summary), 10.5, false, d.style.Dark, d.style.Font)
	setSpacing(p, 0, 40, 240)
}

// buildSectionHeader renders an upper-cased section label with the accent
// bottom border used before every section block.
func buildSectionHeader(d *document, label string) {
	p := d.addParagraph()
	applyFont(p.addRun(strings.ToUpper(label)), 11.5, true, d.style.Accent, d.style.Font)
	addBottomBorder(p, d.style.Accent, 4, 2)
	setSpacing(p, 120, 40, 240)
}

// buildExperience renders each job as a role line, a date line, and one
// bullet paragraph per bullet string. Entry order is preserved as given.
func buildExperience(d *document, jobs []model.JobEntry, numID string) {
	for _, job := range jobs {
		role := d.addParagraph()
		applyFont(role.addRun(job.Title), 11, true, d.style.Dark, d.style.Font)
		rest := fieldSeparator + job.Company + fieldSeparator + job.Location
		applyFont(role.addRun(rest), 10.5, false, d.style.Gray, d.style.Font)
		setSpacing(role, 60, 0, 240)

		dates := d.addParagraph()
		applyFont(dates.addRun(job.Start+dateSeparator+job.End), 10, false, d.style.Gray, d.style.Font)
		setSpacing(dates, 0, 20, 240)

		for _, bullet := range job.Bullets {
			addBullet(d, bullet, numID)
		}
	}
}

// buildSkills renders one paragraph per category: bold accent label followed
// by the comma-joined items. Category and item order are never reordered.
func buildSkills(d *document, skills model.SkillList) {
	caser := cases.Title(language.English)
	for _, group := range skills {
		p := d.addParagraph()
		applyFont(p.addRun(caser.String(group.Label)+": "), 10.5, true, d.style.Accent, d.style.Font)
		applyFont(p.addRun(strings.Join(group.Items, ", ")), 10.5, false, d.style.Dark, d.style.Font)
		setSpacing(p, 0, 20, 240)
	}
}

// buildProjects renders each project as a name/tech line plus exactly one
// description bullet.
func buildProjects(d *document, projects []model.ProjectEntry, numID string) {
	for _, project := range projects {
		p := d.addParagraph()
		applyFont(p.addRun(project.Name), 11, true, d.style.Dark, d.style.Font)
		tech := fieldSeparator + strings.Join(project.Tech, ", ")
		applyFont(p.addRun(tech), 10.5, false, d.style.Gray, d.style.Font)
		setSpacing(p, 60, 20, 240)

		addBullet(d, project.Description, numID)
	}
}

// buildEducation renders each entry as a degree line (with optional honors
// suffix) and a gray institution line. No bullets.
func buildEducation(d *document, education []model.EducationEntry) {
	for _, edu := range education {
		degree := d.addParagraph()
		applyFont(degree.addRun(edu.Degree), 11, true, d.style.Dark, d.style.Font)
		if edu.Honors != "" {
			applyFont(degree.addRun(fieldSeparator+edu.Honors), 10.5, false, d.style.Accent, d.style.Font)
		}
		setSpacing(degree, 60, 0, 240)

		detail := d.addParagraph()
		line := edu.Institution + fieldSeparator + edu.Location + fieldSeparator + edu.Start + dateSeparator + edu.End
		applyFont(detail.addRun(line), 10.5, false, d.style.Gray, d.style.Font)
		setSpacing(detail, 0, 0, 240)
	}
}

func addBullet(d *document, text, numID string) {
	p := d.addParagraph()
	applyFont(p.addRun(text), 10.5, false, d.style.Dark, d.style.Font)
	bindBullet(p, numID)
	setSpacing(p, 0, 5, 240)
}
