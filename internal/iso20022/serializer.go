package iso20022

import (
	"encoding/xml"
	"fmt"
)

// NamespaceXSI is the XML-Schema-instance namespace declared on every
// Document root.
const NamespaceXSI = "http://www.w3.org/2001/XMLSchema-instance"

// Marshal renders a Document tree as an indented UTF-8 XML string: XML
// declaration, two-space indentation per nesting level, elements in struct
// (schema) order, absent optionals omitted.
func Marshal(doc interface{}) (string, error) {
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize document: %w", err)
	}
	return xml.Header + string(out) + "\n", nil
}
