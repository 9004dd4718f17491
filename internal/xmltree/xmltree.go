// Package xmltree provides a generic XML element tree for documents whose
// tag vocabulary is not known ahead of time (diagram sources flatten
// arbitrary child tags, so static struct mapping does not work here).
package xmltree

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"strings"
)

// Node is one XML element with its attributes, text content, and children.
type Node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Content  string     `xml:",chardata"`
	Children []Node     `xml:",any"`
}

// Tag returns the local element name.
func (n *Node) Tag() string {
	return n.XMLName.Local
}

// Text returns the element's trimmed character data.
func (n *Node) Text() string {
	return strings.TrimSpace(n.Content)
}

// Attr returns the value of the named attribute and whether it was present.
// Namespaced attributes are addressed as "prefix:local" (see AttrKey).
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if AttrKey(a) == name {
			return a.Value, true
		}
	}
	return "", false
}

// AttrKey reconstructs the attribute name as written: "space:local" for
// namespaced attributes, bare local name otherwise.
func AttrKey(a xml.Attr) string {
	if a.Name.Space != "" {
		return a.Name.Space + ":" + a.Name.Local
	}
	return a.Name.Local
}

// Child returns the first direct child with the given tag, or nil.
func (n *Node) Child(tag string) *Node {
	for i := range n.Children {
		if n.Children[i].XMLName.Local == tag {
			return &n.Children[i]
		}
	}
	return nil
}

// Find returns the first element matching a slash-separated path of direct
// child tags, e.g. "MetaData/ClassName". Nil when any segment is missing.
func (n *Node) Find(path string) *Node {
	cur := n
	for _, seg := range strings.Split(path, "/") {
		cur = cur.Child(seg)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// FindText returns the trimmed text of the element at path, or "".
func (n *Node) FindText(path string) string {
	if c := n.Find(path); c != nil {
		return c.Text()
	}
	return ""
}

// Descendant returns the first descendant (depth-first, document order)
// with the given tag, not including n itself. Mirrors ".//tag" lookups.
func (n *Node) Descendant(tag string) *Node {
	for i := range n.Children {
		c := &n.Children[i]
		if c.XMLName.Local == tag {
			return c
		}
		if d := c.Descendant(tag); d != nil {
			return d
		}
	}
	return nil
}

// Descendants collects every descendant with the given tag in document
// order, not including n itself.
func (n *Node) Descendants(tag string) []*Node {
	var out []*Node
	for i := range n.Children {
		c := &n.Children[i]
		if c.XMLName.Local == tag {
			out = append(out, c)
		}
		out = append(out, c.Descendants(tag)...)
	}
	return out
}

// Walk visits n and every descendant in document order. Returning false
// from fn stops the walk.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Walk(fn) {
			return false
		}
	}
	return true
}

// Parse reads a single-rooted XML document from data. A second root
// element is a parse error, matching strict document parsers.
func Parse(data []byte) (*Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	var root Node
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		if _, ok := tok.(xml.StartElement); ok {
			return nil, fmt.Errorf("parsing document: multiple root elements")
		}
	}
	return &root, nil
}

// ParseFile parses a single-rooted XML file.
func ParseFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	root, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return root, nil
}

// ParseLenient parses a file that may carry a byte-order mark, junk before
// the XML declaration, or multiple sibling root elements. Everything before
// the declaration is dropped and the remainder is wrapped in a synthetic
// root. The returned node is that synthetic root.
func ParseLenient(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	if idx := bytes.Index(data, []byte("<?xml")); idx >= 0 {
		// Keep from the declaration onward, then drop the declaration
		// itself so the content can be wrapped.
		data = data[idx:]
		if end := bytes.Index(data, []byte("?>")); end >= 0 {
			data = data[end+2:]
		}
	} else {
		data = bytes.TrimLeft(data, " \t\r\n")
	}

	var buf bytes.Buffer
	buf.WriteString("<DummyRoot>\n")
	buf.Write(data)
	buf.WriteString("\n</DummyRoot>")

	root, err := Parse(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return root, nil
}
