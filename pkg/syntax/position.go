package syntax

import "strings"

// Position is a zero-based line and character in a document. Characters
// are counted in runes.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// OffsetAt converts a position into a rune offset into text. Positions
// past the end of a line clamp to the end of that line and lines past the
// end of the text clamp to the end of the text.
func OffsetAt(text string, pos Position) int {
	lines := strings.Split(text, "\n")
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Character < 0 {
		pos.Character = 0
	}

	offset := 0
	for i, line := range lines {
		length := len([]rune(line))
		if i == pos.Line {
			return offset + min(pos.Character, length)
		}
		offset += length + 1
	}
	// The loop adds a newline after the last line that is not there.
	return offset - 1
}

// PositionAt is the inverse of OffsetAt. Offsets outside the text clamp
// to its bounds.
func PositionAt(text string, offset int) Position {
	var pos Position
	if offset <= 0 {
		return pos
	}
	for i, r := range []rune(text) {
		if i == offset {
			break
		}
		if r == '\n' {
			pos.Line++
			pos.Character = 0
		} else {
			pos.Character++
		}
	}
	return pos
}
