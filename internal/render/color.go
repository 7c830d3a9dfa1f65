package render

import (
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// ParseColor understands "#rgb"/"#rrggbb", "rgb(r, g, b)", "hsl(h, s%, l%)" and
// the bare "h s% l%" triplets theme systems store in custom properties.
func ParseColor(s string) (gg.RGBA, bool) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return gg.RGBA{}, false
	case strings.HasPrefix(s, "#"):
		switch len(s) {
		case 4, 5, 7, 9:
			if _, err := strconv.ParseUint(s[1:], 16, 32); err != nil {
				return gg.RGBA{}, false
			}
			return gg.Hex(s), true
		}
		return gg.RGBA{}, false
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		v, ok := numbers(s[len("rgb(") : len(s)-1])
		if !ok || len(v) != 3 {
			return gg.RGBA{}, false
		}
		return gg.RGB(v[0]/255, v[1]/255, v[2]/255), true
	case strings.HasPrefix(s, "hsl(") && strings.HasSuffix(s, ")"):
		s = s[len("hsl(") : len(s)-1]
	}

	v, ok := numbers(s)
	if !ok || len(v) != 3 {
		return gg.RGBA{}, false
	}
	return gg.HSL(v[0], v[1]/100, v[2]/100), true
}

func numbers(s string) ([]float64, bool) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '/' })
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSuffix(strings.TrimSuffix(f, "%"), "deg")
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}
