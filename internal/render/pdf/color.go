package pdf

import (
	"fmt"
	"strconv"
	"strings"
)

// parseColor parses a CSS color value (#rgb, #rrggbb, or rgb(r,g,b))
// into 0..255 RGB components, adapted directly from the teacher's
// internal/render/pdf/pdf.go.
func parseColor(value string) [3]int {
	if strings.HasPrefix(value, "#") {
		if r, g, b, ok := parseHexColor(value); ok {
			return [3]int{r, g, b}
		}
	}

	var r, g, b int
	if _, err := fmt.Sscanf(value, "rgb(%d,%d,%d)", &r, &g, &b); err == nil {
		return [3]int{r, g, b}
	}
	if _, err := fmt.Sscanf(value, "rgb(%d, %d, %d)", &r, &g, &b); err == nil {
		return [3]int{r, g, b}
	}

	return [3]int{0, 0, 0}
}

// parseHexColor parses #RRGGBB or #RGB into r,g,b.
func parseHexColor(s string) (int, int, int, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 6:
		if rv, err := strconv.ParseUint(s[0:2], 16, 8); err == nil {
			if gv, err := strconv.ParseUint(s[2:4], 16, 8); err == nil {
				if bv, err := strconv.ParseUint(s[4:6], 16, 8); err == nil {
					return int(rv), int(gv), int(bv), true
				}
			}
		}
	case 3:
		r := string([]byte{s[0], s[0]})
		g := string([]byte{s[1], s[1]})
		b := string([]byte{s[2], s[2]})
		if rv, err := strconv.ParseUint(r, 16, 8); err == nil {
			if gv, err := strconv.ParseUint(g, 16, 8); err == nil {
				if bv, err := strconv.ParseUint(b, 16, 8); err == nil {
					return int(rv), int(gv), int(bv), true
				}
			}
		}
	}
	return 0, 0, 0, false
}
