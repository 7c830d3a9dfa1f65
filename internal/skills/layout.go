package skills

import (
	"fmt"
	"math"
	"strings"

	"github.com/Sunil5411/portfolio/internal/render"
)

// Filter returns the items whose name contains search (case-insensitively)
// and whose category matches, in catalog order. All matches every category.
func Filter(items []Item, search string, category Category) []Item {
	needle := strings.ToLower(search)
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if !strings.Contains(strings.ToLower(it.Name), needle) {
			continue
		}
		if category != All && it.Category != category {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Placement is an item's spot on the spiral before any global rotation.
type Placement struct {
	Item     Item
	Index    int
	Angle    float64 // radians
	Radius   float64
	Position render.Point
}

// Turns is how many full revolutions the spiral makes across the item list.
const Turns = 2

// Layout puts item i of n at angle (i/n)·4π and radius (i/n)·maxRadius around
// center. Later items sit further out so nodes do not pile up on one circle.
func Layout(items []Item, center render.Point, maxRadius float64) []Placement {
	n := float64(len(items))
	out := make([]Placement, len(items))
	for i, it := range items {
		frac := float64(i) / n
		angle := frac * Turns * 2 * math.Pi
		radius := frac * maxRadius
		out[i] = Placement{
			Item:   it,
			Index:  i,
			Angle:  angle,
			Radius: radius,
			Position: render.Point{
				X: center.X + radius*math.Cos(angle),
				Y: center.Y + radius*math.Sin(angle),
			},
		}
	}
	return out
}

// At returns the placement's position with the whole spiral turned by phase
// radians about center.
func (p Placement) At(center render.Point, phase float64) render.Point {
	a := p.Angle + phase
	return render.Point{
		X: center.X + p.Radius*math.Cos(a),
		Y: center.Y + p.Radius*math.Sin(a),
	}
}

// NodeRadius maps a 0-100 level onto a 5-20px circle.
func NodeRadius(level int) float64 {
	return 5 + float64(level)/100*15
}

// HoverRadius is the radius of the node under the pointer.
const HoverRadius = 25.0

// cardinal returns the Bézier segments of a cardinal spline (tension 0)
// through pts, with the end points repeated as their own neighbours.
func cardinal(pts []render.Point) [][3]render.Point {
	if len(pts) < 2 {
		return nil
	}
	const k = 1.0 / 6
	at := func(i int) render.Point {
		switch {
		case i < 0:
			return pts[0]
		case i >= len(pts):
			return pts[len(pts)-1]
		}
		return pts[i]
	}

	segs := make([][3]render.Point, 0, len(pts)-1)
	for i := 0; i+1 < len(pts); i++ {
		p0, p1, p2, p3 := at(i-1), at(i), at(i+1), at(i+2)
		c1 := render.Point{X: p1.X + k*(p2.X-p0.X), Y: p1.Y + k*(p2.Y-p0.Y)}
		c2 := render.Point{X: p2.X - k*(p3.X-p1.X), Y: p2.Y - k*(p3.Y-p1.Y)}
		segs = append(segs, [3]render.Point{c1, c2, p2})
	}
	return segs
}

// SpiralPath returns SVG path data for the guide curve through pts.
func SpiralPath(pts []render.Point) string {
	if len(pts) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "M%.2f,%.2f", pts[0].X, pts[0].Y)
	for _, s := range cardinal(pts) {
		fmt.Fprintf(&b, "C%.2f,%.2f,%.2f,%.2f,%.2f,%.2f", s[0].X, s[0].Y, s[1].X, s[1].Y, s[2].X, s[2].Y)
	}
	return b.String()
}
