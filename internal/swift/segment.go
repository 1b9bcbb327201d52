package swift

import "strings"

// Block is one transaction leg of a multi-transaction message. Sequence is
// the marker tag's value (e.g. the :21: content); Text is the raw sub-string
// of the message covering the leg, ready for field extraction.
type Block struct {
	Sequence string
	Text     string
}

// Segment splits raw message text into per-transaction blocks anchored on the
// markerBase tag (e.g. "21"). Every marker occurrence starts a block that
// extends to the line before the next occurrence, or to end of text. Block
// order equals marker order in the input.
//
// When no marker occurs, implicitSingle decides whether the whole text counts
// as one block (MT101) or no blocks are returned (MT102).
func Segment(raw, markerBase string, implicitSingle bool) []Block {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")

	var starts []int
	for i, line := range lines {
		if m := tagHeaderPattern.FindStringSubmatch(line); m != nil && m[1] == markerBase {
			starts = append(starts, i)
		}
	}

	if len(starts) == 0 {
		if implicitSingle {
			return []Block{{Text: raw}}
		}
		return nil
	}

	blocks := make([]Block, 0, len(starts))
	for i, start := range starts {
		end := len(lines)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		m := tagHeaderPattern.FindStringSubmatch(lines[start])
		blocks = append(blocks, Block{
			Sequence: strings.TrimSpace(m[2]),
			Text:     strings.Join(lines[start:end], "\n"),
		})
	}

	return blocks
}
