package swift

import (
	"strings"

	"github.com/Ejyke90/iso20022-migration-service/internal/converr"
)

// Field holds one extracted field: the tag that actually matched (including
// its letter option) and the raw text lines belonging to it.
type Field struct {
	Tag   string
	Lines []string
}

// Value returns the first line of the field, trimmed. This is the full value
// of a single-line field.
func (f Field) Value() string {
	if len(f.Lines) == 0 {
		return ""
	}
	return strings.TrimSpace(f.Lines[0])
}

// Text returns all lines of the field joined by newlines, trimmed.
func (f Field) Text() string {
	return strings.TrimSpace(strings.Join(f.Lines, "\n"))
}

// FieldSet maps canonical field names to extracted fields. Keys are present
// only when the corresponding tag was found in the input.
type FieldSet map[string]Field

// Has reports whether the named field was present in the input.
func (fs FieldSet) Has(name string) bool {
	_, ok := fs[name]
	return ok
}

// Value returns the single-line value of the named field, or "" when absent.
func (fs FieldSet) Value(name string) string {
	return fs[name].Value()
}

// Text returns the multi-line text of the named field, or "" when absent.
func (fs FieldSet) Text(name string) string {
	return fs[name].Text()
}

// Extract tokenizes raw message text and resolves each token against the tag
// table. The first occurrence of a field wins; later duplicates are ignored.
// After resolution every mandatory field must be present, otherwise extraction
// fails with a MissingFieldError before any normalization or mapping runs.
func Extract(messageType, raw string, table []TagSpec) (FieldSet, error) {
	tokens, err := tokenize(messageType, raw)
	if err != nil {
		return nil, err
	}

	fields := make(FieldSet, len(table))
	for _, tok := range tokens {
		for _, spec := range table {
			if !spec.Matches(tok.tag) {
				continue
			}
			if _, seen := fields[spec.Name]; !seen {
				fields[spec.Name] = Field{Tag: tok.tag, Lines: tok.lines}
			}
			break
		}
	}

	for _, spec := range table {
		if spec.Mandatory && !fields.Has(spec.Name) {
			return nil, &converr.MissingFieldError{
				MessageType: messageType,
				Tag:         spec.TagString(),
				FieldName:   spec.Name,
			}
		}
	}

	return fields, nil
}
