package reportkit

import (
	"strings"
	"testing"
)

func TestWrapTextPreservesWords(t *testing.T) {
	in := "The anticipated final cost exceeds the approved budget by a " +
		"material margin and requires client sign-off before proceeding"
	lines := WrapText(in, 80, 10)
	if len(lines) < 2 {
		t.Fatalf("expected multiple lines, got %d", len(lines))
	}
	joined := strings.Join(lines, " ")
	if joined != in {
		t.Errorf("rejoined text differs:\n got %q\nwant %q", joined, in)
	}
}

func TestWrapTextWidthBudget(t *testing.T) {
	in := "alpha beta gamma delta epsilon zeta eta theta iota kappa"
	width, size := 40.0, 10.0
	limit := CharsPerLine(width, size)
	for _, line := range WrapText(in, width, size) {
		if len([]rune(line)) > limit {
			t.Errorf("line %q exceeds %d characters", line, limit)
		}
	}
}

func TestWrapTextLongWord(t *testing.T) {
	long := strings.Repeat("x", 60)
	lines := WrapText("a "+long+" b", 20, 10)
	found := false
	for _, line := range lines {
		if line == long {
			found = true
		}
	}
	if !found {
		t.Errorf("unbreakable word should occupy its own line: %v", lines)
	}
}

func TestWrapTextCollapsesWhitespace(t *testing.T) {
	lines := WrapText("  a\t b \n c  ", 100, 10)
	if len(lines) != 1 || lines[0] != "a b c" {
		t.Errorf("got %v, want [a b c]", lines)
	}
}

func TestWrapTextEmpty(t *testing.T) {
	if lines := WrapText("   ", 50, 10); lines != nil {
		t.Errorf("expected nil for blank input, got %v", lines)
	}
}

func TestTruncateText(t *testing.T) {
	s := "Distribution board DB-3A feeder cable"
	out := TruncateText(s, 20, 9)
	if len([]rune(out)) > CharsPerLine(20, 9) {
		t.Errorf("truncated text %q still exceeds budget", out)
	}
	if !strings.HasSuffix(out, "...") {
		t.Errorf("expected ellipsis suffix, got %q", out)
	}
	if got := TruncateText("short", 50, 9); got != "short" {
		t.Errorf("short text should pass through unchanged, got %q", got)
	}
}

func TestTruncateConsistentWithWrap(t *testing.T) {
	// Truncate and wrap must share the same character-width estimate.
	if CharsPerLine(50, 10) != int(50/CharWidth(10)) {
		t.Error("CharsPerLine diverges from CharWidth")
	}
}
