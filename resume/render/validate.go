package render

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// validateDocumentXML re-decodes the serialized body and rejects structures
// Word refuses to open: nested paragraphs and run properties appearing after
// run text. It is a self-check on the builder, so failures surface as
// StyleError.
func validateDocumentXML(xmlText string) error {
	decoder := xml.NewDecoder(strings.NewReader(xmlText))
	var stack []xml.Name
	type runState struct {
		seenText bool
	}
	var runs []runState

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return &StyleError{Op: "validate", Reason: fmt.Sprintf("document.xml parse failed: %v", err)}
		}
		switch t := token.(type) {
		case xml.StartElement:
			stack = append(stack, t.Name)
			if isWmlElement(t.Name, "p") {
				for i := len(stack) - 2; i >= 0; i-- {
					if isWmlElement(stack[i], "p") {
						return &StyleError{Op: "validate", Reason: "document.xml has nested <w:p>"}
					}
				}
			}
			if isWmlElement(t.Name, "r") {
				runs = append(runs, runState{})
			}
			if isWmlElement(t.Name, "t") && len(runs) > 0 {
				runs[len(runs)-1].seenText = true
			}
			if isWmlElement(t.Name, "rPr") && len(runs) > 0 && runs[len(runs)-1].seenText {
				return &StyleError{Op: "validate", Reason: "document.xml has <w:rPr> after <w:t> in a run"}
			}
		case xml.EndElement:
			if isWmlElement(t.Name, "r") && len(runs) > 0 {
				runs = runs[:len(runs)-1]
			}
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	return nil
}

func isWmlElement(name xml.Name, local string) bool {
	return name.Local == local && name.Space == wmlNamespace
}
