package overlay

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"
)

const resetSeq = "\x1b[0m"

// PlaceOverlay draws fg centered over bg. Both may contain ANSI sequences.
// Cells of bg outside the foreground box are preserved.
func PlaceOverlay(fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")

	fgWidth := maxLineWidth(fgLines)
	bgWidth := maxLineWidth(bgLines)
	if fgWidth >= bgWidth && len(fgLines) >= len(bgLines) {
		return fg
	}

	x := max((bgWidth-fgWidth)/2, 0)
	y := max((len(bgLines)-len(fgLines))/2, 0)

	var b strings.Builder
	for i, bgLine := range bgLines {
		if i > 0 {
			b.WriteString("\n")
		}
		if i < y || i >= y+len(fgLines) {
			b.WriteString(bgLine)
			continue
		}

		left := truncate.String(bgLine, uint(x))
		pos := ansi.PrintableRuneWidth(left)
		b.WriteString(left)
		b.WriteString(resetSeq)
		if pos < x {
			b.WriteString(strings.Repeat(" ", x-pos))
			pos = x
		}

		fgLine := fgLines[i-y]
		b.WriteString(fgLine)
		pos += ansi.PrintableRuneWidth(fgLine)
		if pos < x+fgWidth {
			b.WriteString(strings.Repeat(" ", x+fgWidth-pos))
			pos = x + fgWidth
		}

		if right := cutLeft(bgLine, pos); right != "" {
			b.WriteString(resetSeq)
			b.WriteString(right)
		}
	}
	return b.String()
}

func maxLineWidth(lines []string) int {
	w := 0
	for _, l := range lines {
		w = max(w, ansi.PrintableRuneWidth(l))
	}
	return w
}

// cutLeft drops the first cells printable cells of s. Escape sequences are
// kept so the remainder keeps its styling. A wide rune split by the cut
// becomes spaces.
func cutLeft(s string, cells int) string {
	var b strings.Builder
	inSeq := false
	width := 0
	printed := false
	for _, r := range s {
		if r == ansi.Marker {
			inSeq = true
		}
		if inSeq {
			b.WriteRune(r)
			if ansi.IsTerminator(r) {
				inSeq = false
			}
			continue
		}
		if width >= cells {
			b.WriteRune(r)
			printed = true
			continue
		}
		width += runewidth.RuneWidth(r)
		if width > cells {
			b.WriteString(strings.Repeat(" ", width-cells))
			printed = true
		}
	}
	if !printed {
		return ""
	}
	return b.String()
}
