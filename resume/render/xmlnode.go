package render

import (
	"bytes"
	"encoding/xml"
	"strings"
)

// node is a minimal mutable XML element used to build document parts. Tags and
// attribute names carry their wire prefix directly ("w:p", "w:val"); namespace
// declarations live on the part roots, written by the serializers.
type node struct {
	tag      string
	attrs    []attr
	children []*node
	text     string
	isText   bool
}

type attr struct {
	name  string
	value string
}

func elem(tag string, children ...*node) *node {
	return &node{tag: tag, children: children}
}

func textNode(text string) *node {
	return &node{isText: true, text: text}
}

// set appends or overwrites an attribute and returns the node for chaining.
func (n *node) set(name, value string) *node {
	for i := range n.attrs {
		if n.attrs[i].name == name {
			n.attrs[i].value = value
			return n
		}
	}
	n.attrs = append(n.attrs, attr{name: name, value: value})
	return n
}

func (n *node) append(children ...*node) {
	n.children = append(n.children, children...)
}

// child returns the first direct child with the given tag, or nil.
func (n *node) child(tag string) *node {
	for _, c := range n.children {
		if !c.isText && c.tag == tag {
			return c
		}
	}
	return nil
}

// replaceChild swaps the first direct child with the same tag for repl, or
// inserts repl at the position dictated by rank when no such child exists.
// rank maps tags to their schema-mandated order inside the parent; unknown
// tags sort last.
func (n *node) replaceChild(repl *node, rank map[string]int) {
	for i, c := range n.children {
		if !c.isText && c.tag == repl.tag {
			n.children[i] = repl
			return
		}
	}
	pos := len(n.children)
	replRank, ok := rank[repl.tag]
	if ok {
		for i, c := range n.children {
			if c.isText {
				continue
			}
			if r, known := rank[c.tag]; !known || r > replRank {
				pos = i
				break
			}
		}
	}
	n.children = append(n.children, nil)
	copy(n.children[pos+1:], n.children[pos:])
	n.children[pos] = repl
}

func encodeNode(encoder *xml.Encoder, n *node) error {
	if n.isText {
		return encoder.EncodeToken(xml.CharData([]byte(n.text)))
	}
	start := xml.StartElement{Name: xml.Name{Local: n.tag}}
	for _, a := range n.attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.name}, Value: a.value})
	}
	if err := encoder.EncodeToken(start); err != nil {
		return err
	}
	for _, child := range n.children {
		if err := encodeNode(encoder, child); err != nil {
			return err
		}
	}
	return encoder.EncodeToken(start.End())
}

// encodePart serializes children inside a hand-written root tag carrying the
// namespace declarations. The XML header is emitted verbatim.
func encodePart(rootStart, rootEnd string, children []*node) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	buf.WriteString(rootStart)

	encoder := xml.NewEncoder(&buf)
	for _, child := range children {
		if err := encodeNode(encoder, child); err != nil {
			return "", err
		}
	}
	if err := encoder.Flush(); err != nil {
		return "", err
	}

	buf.WriteString(rootEnd)
	return buf.String(), nil
}

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// needsPreserve reports whether a text run must carry xml:space="preserve".
func needsPreserve(text string) bool {
	return text != strings.TrimSpace(text)
}
