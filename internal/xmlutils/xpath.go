// Package xmlutils provides XPath-based access to generated XML documents,
// used to inspect conversion output without re-parsing it into struct trees.
package xmlutils

import (
	"fmt"
	"strings"

	"gopkg.in/xmlpath.v2"
)

// Node is a parsed XML document node that XPath expressions run against.
type Node = xmlpath.Node

// ParseXML parses an XML document string and returns its root node.
func ParseXML(xmlText string) (*Node, error) {
	root, err := xmlpath.Parse(strings.NewReader(xmlText))
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}
	return root, nil
}

// ExtractFromXML extracts all values matching an XPath expression, in
// document order.
func ExtractFromXML(root *Node, xpath string) ([]string, error) {
	path, err := xmlpath.Compile(xpath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile XPath: %w", err)
	}

	var values []string
	iter := path.Iter(root)
	for iter.Next() {
		values = append(values, iter.Node().String())
	}
	return values, nil
}

// ExtractOne extracts the single value matching an XPath expression, or ""
// when nothing matches.
func ExtractOne(root *Node, xpath string) (string, error) {
	values, err := ExtractFromXML(root, xpath)
	if err != nil {
		return "", err
	}
	return GetOrEmpty(values, 0), nil
}

// GetOrEmpty returns the value at index, or an empty string when the index is
// out of bounds.
func GetOrEmpty(slice []string, index int) string {
	if index < len(slice) {
		return slice[index]
	}
	return ""
}
