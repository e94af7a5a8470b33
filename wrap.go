package reportkit

import "strings"

// Text measurement uses a single average-character-width heuristic rather
// than true glyph metrics. The same constant backs wrapping, truncation and
// dot-leader sizing so the approximations stay mutually consistent.
const (
	// avgCharWidth is the assumed glyph advance as a fraction of the font
	// size. 0.5 suits Helvetica at typical report sizes.
	avgCharWidth = 0.5

	// ptToMM converts font points to millimetres.
	ptToMM = 25.4 / 72.0
)

const ellipsis = "..."

// CharWidth returns the estimated width in millimetres of one character at
// the given font size in points.
func CharWidth(size float64) float64 {
	return size * ptToMM * avgCharWidth
}

// EstimateWidth returns the estimated rendered width of s in millimetres.
func EstimateWidth(s string, size float64) float64 {
	return float64(len([]rune(s))) * CharWidth(size)
}

// CharsPerLine returns how many characters of the given font size fit in
// width millimetres. Always at least 1.
func CharsPerLine(width, size float64) int {
	n := int(width / CharWidth(size))
	if n < 1 {
		n = 1
	}
	return n
}

// WrapText breaks s into lines no wider than width millimetres at the given
// font size. Runs of whitespace collapse to single spaces; words are never
// dropped, reordered or split, so a single word longer than the budget
// occupies a line by itself and overflows it.
func WrapText(s string, width, size float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	limit := CharsPerLine(width, size)

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len([]rune(line))+1+len([]rune(w)) > limit {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

// TruncateText shortens s with a trailing ellipsis so it fits in width
// millimetres at the given font size. Used for single-line contexts (table
// cells, headers) where wrapping is not an option.
func TruncateText(s string, width, size float64) string {
	limit := CharsPerLine(width, size)
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= len(ellipsis) {
		return string(runes[:limit])
	}
	return string(runes[:limit-len(ellipsis)]) + ellipsis
}
