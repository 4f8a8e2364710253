package render

import "strconv"

// StyleSpec holds the document-wide palette and typeface. It is threaded into
// the assembler and down to section builders; render calls never mutate it.
type StyleSpec struct {
	Accent string
	Dark   string
	Gray   string
	Font   string
}

// DefaultStyle returns the fixed resume palette.
func DefaultStyle() StyleSpec {
	return StyleSpec{
		Accent: "2B4C7E",
		Dark:   "1A1A1A",
		Gray:   "555555",
		Font:   "Calibri",
	}
}

// Schema-mandated child order inside w:pPr and w:rPr. replaceChild uses these
// so restyling a paragraph replaces nodes instead of appending duplicates.
var (
	paraPropRank = map[string]int{
		"w:numPr":   0,
		"w:pBdr":    1,
		"w:spacing": 2,
		"w:ind":     3,
		"w:jc":      4,
	}
	runPropRank = map[string]int{
		"w:rFonts":  0,
		"w:b":       1,
		"w:color":   2,
		"w:spacing": 3,
		"w:sz":      4,
		"w:szCs":    5,
	}
)

// applyFont sets the run's typeface, size, weight, and color. Sizes are points
// (halves allowed); the wire unit is half-points. Sibling runs are untouched.
func applyFont(r *run, sizePt float64, bold bool, colorHex, family string) {
	props := r.props()
	halfPoints := strconv.Itoa(int(sizePt * 2))

	fonts := elem("w:rFonts").set("w:ascii", family).set("w:hAnsi", family)
	props.replaceChild(fonts, runPropRank)
	if bold {
		props.replaceChild(elem("w:b"), runPropRank)
	}
	props.replaceChild(elem("w:color").set("w:val", colorHex), runPropRank)
	props.replaceChild(elem("w:sz").set("w:val", halfPoints), runPropRank)
	props.replaceChild(elem("w:szCs").set("w:val", halfPoints), runPropRank)
}

// setLetterSpacing expands the run's character spacing, in twips.
func setLetterSpacing(r *run, twips int) {
	spacing := elem("w:spacing").set("w:val", strconv.Itoa(twips))
	r.props().replaceChild(spacing, runPropRank)
}

// setSpacing sets paragraph vertical spacing in twips with automatic line
// rule. A prior spacing node on the paragraph is replaced, not duplicated.
func setSpacing(p *paragraph, before, after, line int) {
	spacing := elem("w:spacing").
		set("w:before", strconv.Itoa(before)).
		set("w:after", strconv.Itoa(after)).
		set("w:line", strconv.Itoa(line)).
		set("w:lineRule", "auto")
	p.props().replaceChild(spacing, paraPropRank)
}

// addBottomBorder attaches a single-line border below the paragraph.
func addBottomBorder(p *paragraph, colorHex string, width, space int) {
	bottom := elem("w:bottom").
		set("w:val", "single").
		set("w:sz", strconv.Itoa(width)).
		set("w:space", strconv.Itoa(space)).
		set("w:color", colorHex)
	p.props().replaceChild(elem("w:pBdr", bottom), paraPropRank)
}

// center sets the paragraph's alignment to centered.
func center(p *paragraph) {
	p.props().replaceChild(elem("w:jc").set("w:val", "center"), paraPropRank)
}

// bindBullet marks the paragraph as a level-0 item of the given numbering
// definition.
func bindBullet(p *paragraph, numID string) {
	numPr := elem("w:numPr",
		elem("w:ilvl").set("w:val", "0"),
		elem("w:numId").set("w:val", numID),
	)
	p.props().replaceChild(numPr, paraPropRank)
}
