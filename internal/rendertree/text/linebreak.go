package text

// Line is one laid-out line: the words it contains (in order) and
// their total advance width, not counting the collapsed space that
// would follow the last word. HardBreak is set when the line was
// ended by an explicit line break rather than a wrapping decision —
// such a line is never justified (spec.md §4.5 emit step).
type Line struct {
	Words     []Word
	Width     float64
	HardBreak bool
}

// BreakLines performs greedy first-fit line breaking (spec.md §4.5):
// accumulate words onto the current line until the next word (plus
// one collapsed space) would overflow maxWidth, then start a new line.
// A HardBreak word always ends its line, even if more would fit.
func BreakLines(words []Word, maxWidth float64) []Line {
	var lines []Line
	var cur []Word
	var curWidth float64

	flush := func(hardBreak bool) {
		if len(cur) > 0 {
			lines = append(lines, Line{Words: cur, Width: curWidth, HardBreak: hardBreak})
		}
		cur = nil
		curWidth = 0
	}

	for _, w := range words {
		if w.HardBreak {
			flush(true)
			continue
		}

		needsSpace := len(cur) > 0 && cur[len(cur)-1].SpaceAfter
		spaceW := 0.0
		if needsSpace {
			spaceW = spaceWidth(cur[len(cur)-1])
		}

		if len(cur) > 0 && curWidth+spaceW+w.Width > maxWidth {
			flush(false)
			needsSpace = false
			spaceW = 0
		}

		curWidth += spaceW + w.Width
		cur = append(cur, w)
	}
	flush(false)
	return lines
}

// spaceWidth approximates the advance of one collapsed inter-word
// space as a quarter of the preceding word's font size — the shaper
// never measures a standalone space, so this is an estimate rather
// than a glyph-accurate advance.
func spaceWidth(w Word) float64 {
	if w.Style == nil {
		return 0
	}
	return w.Style.FontSize * 0.25
}

// ChooseBreakLine decides how many of totalLines to place on the
// current page given fitLines physically fit, applying the
// widows-then-orphans-then-overflow precedence (spec.md Open
// Questions, resolved in SPEC_FULL.md): first try to leave at least
// `widows` lines for the next page; if that would leave fewer than
// `orphans` lines behind, push the whole paragraph to the next page
// instead (unless the current page is still empty, in which case
// there is nowhere else to put it and the constraint is relaxed).
func ChooseBreakLine(totalLines, fitLines, widows, orphans int, pageEmpty bool) int {
	if fitLines >= totalLines {
		return totalLines
	}
	if fitLines <= 0 {
		if pageEmpty {
			return 0
		}
		return 0
	}

	candidate := fitLines
	if totalLines-candidate < widows {
		candidate = totalLines - widows
	}
	if candidate > fitLines {
		candidate = fitLines
	}
	if candidate < orphans {
		if pageEmpty {
			return fitLines
		}
		return 0
	}
	if candidate < 1 {
		if pageEmpty {
			return fitLines
		}
		return 0
	}
	return candidate
}
