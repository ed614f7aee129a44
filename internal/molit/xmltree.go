package molit

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// xmlNode is a minimal element tree over an upstream markup payload. The
// gateway's XML carries no attributes or namespaces worth preserving; only
// element names, text, and order matter.
type xmlNode struct {
	name     string
	text     string
	children []*xmlNode
}

// parseXMLTree parses a full document into its root element.
func parseXMLTree(data []byte) (*xmlNode, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return parseElement(dec, start)
		}
	}
}

func parseElement(dec *xml.Decoder, start xml.StartElement) (*xmlNode, error) {
	n := &xmlNode{name: start.Name.Local}
	var text strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := parseElement(dec, t)
			if err != nil {
				return nil, err
			}
			n.children = append(n.children, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			n.text = strings.TrimSpace(text.String())
			return n, nil
		}
	}
}

// child returns the first direct child with the given name, or nil.
func (n *xmlNode) child(name string) *xmlNode {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// childText returns the trimmed text of the first direct child with the
// given name, or "".
func (n *xmlNode) childText(name string) string {
	if c := n.child(name); c != nil {
		return c.text
	}
	return ""
}

// find returns the first element with the given name anywhere in the
// subtree (depth-first, document order), or nil.
func (n *xmlNode) find(name string) *xmlNode {
	if n.name == name {
		return n
	}
	for _, c := range n.children {
		if found := c.find(name); found != nil {
			return found
		}
	}
	return nil
}

// findText returns the text of the first matching element in the subtree
// and whether one was found.
func (n *xmlNode) findText(name string) (string, bool) {
	if found := n.find(name); found != nil {
		return found.text, true
	}
	return "", false
}

// findAll collects every element with the given name in document order.
func (n *xmlNode) findAll(name string) []*xmlNode {
	var out []*xmlNode
	if n.name == name {
		out = append(out, n)
	}
	for _, c := range n.children {
		out = append(out, c.findAll(name)...)
	}
	return out
}
