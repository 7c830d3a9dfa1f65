package skills

import (
	"strings"

	"github.com/Sunil5411/portfolio/internal/render"
)

// View is a static snapshot of the visualizer for server-side rendering. The
// browser applies the rotation, so nodes are resolved at phase zero.
type View struct {
	Width      float64
	Height     float64
	Center     render.Point
	Search     string
	Category   Category
	Playing    bool
	Categories []CategoryInfo
	Nodes      []Node
	Path       string
}

// NewView filters and lays out catalog exactly as an interactive Visualizer
// would.
func NewView(catalog []Item, search string, category Category, playing bool) View {
	if category == "" {
		category = All
	}
	v := New(catalog)
	v.SetSearch(search)
	v.SetCategory(category)
	v.SetPlaying(playing)

	nodes := v.Nodes()
	pts := make([]render.Point, len(nodes))
	for i, n := range nodes {
		pts[i] = n.Center
	}

	return View{
		Width:      v.width,
		Height:     v.height,
		Center:     v.Center(),
		Search:     search,
		Category:   category,
		Playing:    playing,
		Categories: Categories(),
		Nodes:      nodes,
		Path:       SpiralPath(pts),
	}
}

// Tooltip is the node's tooltip text joined for a title attribute.
func (n Node) Tooltip() string {
	return strings.Join(TooltipLines(n.Item), "\n")
}

// Label is where the node's name is drawn.
func (n Node) Label() render.Point {
	return render.Point{X: n.Center.X, Y: n.Center.Y + n.LabelOffset()}
}
