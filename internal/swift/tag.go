// Package swift implements the message-grammar layer of the conversion
// pipeline: a line-oriented tokenizer for fixed-tag SWIFT MT text, tag-table
// field extraction, transaction-block segmentation and composite-field
// decomposition into party/institution descriptors.
package swift

import (
	"regexp"
	"strings"

	"github.com/Ejyke90/iso20022-migration-service/internal/converr"
)

// tagHeaderPattern recognizes a line that starts a new field: a two-digit tag
// with an optional letter option, e.g. ":20:", ":32A:", ":50K:".
var tagHeaderPattern = regexp.MustCompile(`^:(\d{2}[A-Z]?):(.*)$`)

// TagSpec describes one field of a message type's tag table.
type TagSpec struct {
	// Name is the canonical field name used as key in the FieldSet.
	Name string
	// Base is the two-digit tag, e.g. "50".
	Base string
	// Variants lists the accepted letter options, e.g. "K", "F". Empty means
	// only the bare tag matches.
	Variants []string
	// Mandatory marks fields whose absence aborts extraction.
	Mandatory bool
}

// Matches reports whether the spec accepts the given tag, e.g. "50K".
func (s TagSpec) Matches(tag string) bool {
	if len(s.Variants) == 0 {
		return tag == s.Base
	}
	if !strings.HasPrefix(tag, s.Base) {
		return false
	}
	variant := tag[len(s.Base):]
	if variant == "" {
		// A bare tag is accepted alongside its letter options, as in :57: vs :57A:.
		return true
	}
	for _, v := range s.Variants {
		if variant == v {
			return true
		}
	}
	return false
}

// TagString renders the spec as a SWIFT tag reference for error messages,
// using the conventional lowercase "a" placeholder for letter options.
func (s TagSpec) TagString() string {
	if len(s.Variants) == 0 {
		return ":" + s.Base + ":"
	}
	if len(s.Variants) == 1 {
		return ":" + s.Base + s.Variants[0] + ":"
	}
	return ":" + s.Base + "a:"
}

// token is one extracted field occurrence: its tag and the text lines that
// belong to it. lines[0] is the remainder of the tag line itself; subsequent
// entries are continuation lines up to the next tag header.
type token struct {
	tag   string
	lines []string
}

// tokenize scans raw message text line by line, starting a new token at every
// tag header and accumulating continuation lines. Text before the first tag
// header (SWIFT block headers, blank lines) is skipped. The boundary of a
// field is always the next tag header or end of text, never a regex lookahead.
func tokenize(messageType, raw string) ([]token, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, &converr.ParseError{MessageType: messageType, Reason: "empty message"}
	}

	var tokens []token
	current := -1

	for _, line := range strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n") {
		if m := tagHeaderPattern.FindStringSubmatch(line); m != nil {
			tokens = append(tokens, token{tag: m[1], lines: []string{m[2]}})
			current = len(tokens) - 1
			continue
		}
		if current >= 0 {
			tokens[current].lines = append(tokens[current].lines, line)
		}
	}

	if len(tokens) == 0 {
		return nil, &converr.ParseError{MessageType: messageType, Reason: "no recognizable field tags"}
	}

	return tokens, nil
}
