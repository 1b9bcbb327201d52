package swift

import (
	"regexp"
	"strings"
)

// Target-schema limits for postal address lines.
const (
	maxAddressLines   = 7
	maxAddressLineLen = 70
)

// bicPattern is the structural BIC check: 6 letters, 2 alphanumerics and an
// optional 3-alphanumeric branch code. It is a shape test, not registry
// validation.
var bicPattern = regexp.MustCompile(`^[A-Z]{6}[A-Z0-9]{2}([A-Z0-9]{3})?$`)

// PartyInfo is the decomposed form of a multi-line party or institution field.
// Absent components are empty.
type PartyInfo struct {
	Account      string
	Name         string
	BIC          string
	AddressLines []string
}

// IsEmpty reports whether no component was resolved.
func (p PartyInfo) IsEmpty() bool {
	return p.Account == "" && p.Name == "" && p.BIC == "" && len(p.AddressLines) == 0
}

// DecomposeParty splits a party field (:50K:, :59:) into account identifier,
// display name and address lines. A first line starting with "/" is the
// account identifier; the next line is the name; the rest are address lines,
// capped at 7 entries of at most 70 characters each. Empty input yields an
// all-absent descriptor; mandatory-presence is the mapper's concern.
func DecomposeParty(text string) PartyInfo {
	lines := nonEmptyLines(text)
	var info PartyInfo

	if len(lines) > 0 && strings.HasPrefix(lines[0], "/") {
		info.Account = strings.TrimPrefix(lines[0], "/")
		lines = lines[1:]
	}
	if len(lines) > 0 {
		info.Name = lines[0]
		info.AddressLines = capAddressLines(lines[1:])
	}

	return info
}

// DecomposeInstitution splits an institution field (:52a:, :57a:, :58a:) into
// BIC and name. After stripping an optional "/"-prefixed account line, a first
// line matching the BIC structural pattern is the BIC and the remaining lines
// join as the institution name; otherwise all lines join as the name.
func DecomposeInstitution(text string) PartyInfo {
	lines := nonEmptyLines(text)
	var info PartyInfo

	if len(lines) > 0 && strings.HasPrefix(lines[0], "/") {
		info.Account = strings.TrimPrefix(lines[0], "/")
		lines = lines[1:]
	}
	if len(lines) == 0 {
		return info
	}

	if bicPattern.MatchString(lines[0]) {
		info.BIC = lines[0]
		lines = lines[1:]
	}
	if len(lines) > 0 {
		info.Name = strings.Join(lines, " ")
	}

	return info
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

func capAddressLines(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}
	if len(lines) > maxAddressLines {
		lines = lines[:maxAddressLines]
	}
	capped := make([]string, len(lines))
	for i, line := range lines {
		if len(line) > maxAddressLineLen {
			line = line[:maxAddressLineLen]
		}
		capped[i] = line
	}
	return capped
}
