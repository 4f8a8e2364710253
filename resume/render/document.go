package render

import (
	"archive/zip"
	"bytes"
	"fmt"
)

const (
	wmlNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	relNamespace = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

	bulletNumID      = "1"
	bulletAbstractID = "1"
	bulletGlyph      = "•"
	bulletGlyphFont  = "Symbol"
	bulletIndentLeft = "360"
	bulletIndentHang = "180"
)

// US Letter with 0.5in top/bottom and 0.7in left/right margins, in twips.
const (
	pageWidth    = "12240"
	pageHeight   = "15840"
	marginTopBot = "720"
	marginSides  = "1008"
)

// document is the output DOCX under construction. One instance is built per
// render call and discarded after serialization.
type document struct {
	style      StyleSpec
	body       []*node
	numbering  []*node
	bulletsSet bool
}

type paragraph struct {
	n *node
}

type run struct {
	n *node
}

func newDocument(style StyleSpec) *document {
	return &document{style: style}
}

// addParagraph creates an empty paragraph at the end of the body. w:pPr is
// created up front so it stays the first child regardless of styling order.
func (d *document) addParagraph() *paragraph {
	p := elem("w:p", elem("w:pPr"))
	d.body = append(d.body, p)
	return &paragraph{n: p}
}

func (p *paragraph) props() *node {
	return p.n.child("w:pPr")
}

// addRun appends a text run to the paragraph. Runs carry their own w:rPr so
// styling one never leaks into siblings.
func (p *paragraph) addRun(text string) *run {
	t := elem("w:t", textNode(text))
	if needsPreserve(text) {
		t.set("xml:space", "preserve")
	}
	r := elem("w:r", elem("w:rPr"), t)
	p.n.append(r)
	return &run{n: r}
}

func (r *run) props() *node {
	return r.n.child("w:rPr")
}

// defineBulletNumbering registers the single bullet-list definition and
// returns its id. The numbering part is provisioned lazily on first call;
// repeat calls return the same id. A conflicting pre-existing definition is a
// programming defect and surfaces as a StyleError.
func (d *document) defineBulletNumbering() (string, error) {
	if d.bulletsSet {
		return bulletNumID, nil
	}
	if len(d.numbering) != 0 {
		return "", &StyleError{Op: "defineBulletNumbering", Reason: "numbering part already populated"}
	}

	abstract := elem("w:abstractNum",
		elem("w:lvl",
			elem("w:start").set("w:val", "1"),
			elem("w:numFmt").set("w:val", "bullet"),
			elem("w:lvlText").set("w:val", bulletGlyph),
			elem("w:lvlJc").set("w:val", "left"),
			elem("w:pPr",
				elem("w:ind").set("w:left", bulletIndentLeft).set("w:hanging", bulletIndentHang),
			),
			elem("w:rPr",
				elem("w:rFonts").
					set("w:ascii", bulletGlyphFont).
					set("w:hAnsi", bulletGlyphFont).
					set("w:hint", "default"),
			),
		).set("w:ilvl", "0"),
	).set("w:abstractNumId", bulletAbstractID)

	instance := elem("w:num",
		elem("w:abstractNumId").set("w:val", bulletAbstractID),
	).set("w:numId", bulletNumID)

	d.numbering = append(d.numbering, abstract, instance)
	d.bulletsSet = true
	return bulletNumID, nil
}

// bytes serializes the finished document into a DOCX package. Part order and
// zip headers are fixed so identical input yields identical bytes.
func (d *document) bytes() ([]byte, error) {
	documentXML, err := d.documentXML()
	if err != nil {
		return nil, err
	}
	if err := validateDocumentXML(documentXML); err != nil {
		return nil, err
	}
	numberingXML, err := d.numberingXML()
	if err != nil {
		return nil, err
	}

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/document.xml", documentXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", d.stylesXML()},
		{"word/numbering.xml", numberingXML},
	}

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	for _, part := range parts {
		header := &zip.FileHeader{Name: part.name, Method: zip.Deflate}
		dst, err := writer.CreateHeader(header)
		if err != nil {
			return nil, err
		}
		if _, err := dst.Write([]byte(part.content)); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *document) documentXML() (string, error) {
	children := make([]*node, 0, len(d.body)+1)
	children = append(children, d.body...)
	children = append(children, sectionProperties())

	rootStart := fmt.Sprintf(`<w:document xmlns:w=%q xmlns:r=%q><w:body>`, wmlNamespace, relNamespace)
	return encodePart(rootStart, "</w:body></w:document>", children)
}

func (d *document) numberingXML() (string, error) {
	rootStart := fmt.Sprintf(`<w:numbering xmlns:w=%q>`, wmlNamespace)
	return encodePart(rootStart, "</w:numbering>", d.numbering)
}

func sectionProperties() *node {
	return elem("w:sectPr",
		elem("w:pgSz").set("w:w", pageWidth).set("w:h", pageHeight),
		elem("w:pgMar").
			set("w:top", marginTopBot).
			set("w:bottom", marginTopBot).
			set("w:left", marginSides).
			set("w:right", marginSides).
			set("w:header", "720").
			set("w:footer", "720").
			set("w:gutter", "0"),
	)
}

func (d *document) stylesXML() string {
	return xmlHeader + fmt.Sprintf(
		`<w:styles xmlns:w=%q>`+
			`<w:docDefaults><w:rPrDefault><w:rPr>`+
			`<w:rFonts w:ascii=%q w:hAnsi=%q/>`+
			`<w:sz w:val="21"/><w:szCs w:val="21"/>`+
			`</w:rPr></w:rPrDefault></w:docDefaults>`+
			`<w:style w:type="paragraph" w:default="1" w:styleId="Normal">`+
			`<w:name w:val="Normal"/></w:style>`+
			`</w:styles>`,
		wmlNamespace, d.style.Font, d.style.Font,
	)
}

const contentTypesXML = xmlHeader +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>` +
	`</Types>`

const packageRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

const documentRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>` +
	`</Relationships>`
