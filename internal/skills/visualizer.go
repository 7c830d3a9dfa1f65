package skills

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/Sunil5411/portfolio/internal/host"
	"github.com/Sunil5411/portfolio/internal/render"
)

const (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
	// RotationStep is how far the spiral turns per frame, in degrees.
	RotationStep = 0.5
)

// Opener opens a link in a new browsing context.
type Opener interface {
	Open(url string) error
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(url string) error

func (f OpenerFunc) Open(url string) error { return f(url) }

// Tooltip is the single floating detail box. It is attached to the host
// document while the visualizer shows it.
type Tooltip struct {
	id       string
	Lines    []string
	Position render.Point
}

func (t *Tooltip) ElementID() string { return t.id }

// Node is a placement resolved for drawing at the current rotation phase.
type Node struct {
	Placement
	Center  render.Point
	Radius  float64
	Color   string
	Hovered bool
}

// LabelOffset is the distance from a node's centre to its label baseline.
func (n Node) LabelOffset() float64 {
	return NodeRadius(n.Item.Level) + 15
}

// Visualizer is the interactive spiral: filter state, rotation phase, hover
// and tooltip. It is driven from a single goroutine.
type Visualizer struct {
	catalog []Item
	width   float64
	height  float64
	opener  Opener
	logger  *slog.Logger
	labels  string

	search   string
	category Category
	playing  bool
	phase    float64 // degrees

	placements []Placement
	hovered    int
	tooltip    *Tooltip

	win     *host.Window
	gfx     render.Provider
	surface *render.Surface
	frame   host.FrameID
	mounted bool
	onDraw  func(now time.Duration)
}

type Option func(*Visualizer)

func WithOpener(o Opener) Option {
	return func(v *Visualizer) { v.opener = o }
}

func WithLogger(l *slog.Logger) Option {
	return func(v *Visualizer) { v.logger = l }
}

// WithSize overrides the 800x600 drawing area.
func WithSize(w, h float64) Option {
	return func(v *Visualizer) { v.width, v.height = w, h }
}

// WithLabelColor sets the colour of node labels.
func WithLabelColor(hex string) Option {
	return func(v *Visualizer) { v.labels = hex }
}

// WithFrameHook registers a callback run after every frame.
func WithFrameHook(h func(now time.Duration)) Option {
	return func(v *Visualizer) { v.onDraw = h }
}

// New returns a playing visualizer showing the whole catalog.
func New(catalog []Item, opts ...Option) *Visualizer {
	v := &Visualizer{
		catalog:  catalog,
		width:    DefaultWidth,
		height:   DefaultHeight,
		logger:   slog.Default(),
		labels:   "#e2e8f0",
		category: All,
		playing:  true,
		hovered:  -1,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.relayout()
	return v
}

func (v *Visualizer) Search() string     { return v.search }
func (v *Visualizer) Category() Category { return v.category }
func (v *Visualizer) Playing() bool      { return v.playing }

// Phase returns the global rotation in degrees.
func (v *Visualizer) Phase() float64 { return v.phase }

func (v *Visualizer) Center() render.Point {
	return render.Point{X: v.width / 2, Y: v.height / 2}
}

// MaxRadius is the radius of the outermost node.
func (v *Visualizer) MaxRadius() float64 {
	return math.Min(v.width, v.height) / 3
}

func (v *Visualizer) SetSearch(s string) {
	if s == v.search {
		return
	}
	v.search = s
	v.relayout()
}

func (v *Visualizer) SetCategory(c Category) {
	if c == v.category {
		return
	}
	v.category = c
	v.relayout()
}

func (v *Visualizer) SetPlaying(p bool) { v.playing = p }
func (v *Visualizer) TogglePlaying()    { v.playing = !v.playing }

// Visible returns the filtered items in catalog order.
func (v *Visualizer) Visible() []Item {
	out := make([]Item, len(v.placements))
	for i, p := range v.placements {
		out[i] = p.Item
	}
	return out
}

func (v *Visualizer) Placements() []Placement {
	out := make([]Placement, len(v.placements))
	copy(out, v.placements)
	return out
}

// relayout rebuilds the spiral for the current filter and drops every hover
// binding, so nothing from the previous item set survives.
func (v *Visualizer) relayout() {
	v.placements = Layout(Filter(v.catalog, v.search, v.category), v.Center(), v.MaxRadius())
	v.hovered = -1
	v.removeTooltip()
}

// Advance runs one frame of animation: the spiral turns by RotationStep while
// playing. Relative node positions never change.
func (v *Visualizer) Advance() {
	if v.playing {
		v.phase = math.Mod(v.phase+RotationStep, 360)
	}
}

func (v *Visualizer) phaseRadians() float64 {
	return v.phase * math.Pi / 180
}

// Nodes resolves every placement at the current phase.
func (v *Visualizer) Nodes() []Node {
	c := v.Center()
	ph := v.phaseRadians()
	out := make([]Node, len(v.placements))
	for i, p := range v.placements {
		r := NodeRadius(p.Item.Level)
		if i == v.hovered {
			r = HoverRadius
		}
		out[i] = Node{
			Placement: p,
			Center:    p.At(c, ph),
			Radius:    r,
			Color:     p.Item.Category.Color(),
			Hovered:   i == v.hovered,
		}
	}
	return out
}

// hit returns the index of the top-most node under pt, or -1.
func (v *Visualizer) hit(pt render.Point) int {
	nodes := v.Nodes()
	for i := len(nodes) - 1; i >= 0; i-- {
		n := nodes[i]
		if math.Hypot(pt.X-n.Center.X, pt.Y-n.Center.Y) <= n.Radius {
			return i
		}
	}
	return -1
}

// PointerMove updates hover state for a pointer at (x, y) in drawing
// coordinates. The tooltip follows the pointer while a node is hovered.
func (v *Visualizer) PointerMove(x, y float64) {
	pt := render.Point{X: x, Y: y}
	i := v.hit(pt)
	v.hovered = i
	if i < 0 {
		v.removeTooltip()
		return
	}

	it := v.placements[i].Item
	if v.tooltip == nil {
		v.tooltip = &Tooltip{id: uuid.NewString()}
		if v.mounted {
			v.win.Document().AppendChild(v.tooltip)
		}
	}
	v.tooltip.Lines = TooltipLines(it)
	v.tooltip.Position = render.Point{X: x + 10, Y: y - 10}
}

// PointerLeave clears hover state.
func (v *Visualizer) PointerLeave() {
	v.hovered = -1
	v.removeTooltip()
}

// Hovered returns the hovered item, if any.
func (v *Visualizer) Hovered() (Item, bool) {
	if v.hovered < 0 {
		return Item{}, false
	}
	return v.placements[v.hovered].Item, true
}

// Tooltip returns the visible tooltip or nil.
func (v *Visualizer) Tooltip() *Tooltip {
	return v.tooltip
}

func (v *Visualizer) removeTooltip() {
	if v.tooltip == nil {
		return
	}
	if v.win != nil {
		v.win.Document().RemoveChild(v.tooltip)
	}
	v.tooltip = nil
}

// Click opens the link of the node under (x, y). ok is false when the click
// missed every node.
func (v *Visualizer) Click(x, y float64) (Item, bool, error) {
	i := v.hit(render.Point{X: x, Y: y})
	if i < 0 {
		return Item{}, false, nil
	}
	it := v.placements[i].Item
	if v.opener == nil {
		return it, true, nil
	}
	if err := v.opener.Open(it.Link); err != nil {
		return it, true, fmt.Errorf("open %s: %w", it.Link, err)
	}
	return it, true, nil
}

// TooltipLines is the tooltip text for it.
func TooltipLines(it Item) []string {
	return []string{
		it.Name,
		fmt.Sprintf("Level: %d%%", it.Level),
		"Category: " + string(it.Category),
		"Click to view GitHub repos",
	}
}

// Mount starts the frame loop on win. When gfx can provide a surface the
// spiral is also drawn every frame; otherwise only the state animates.
func (v *Visualizer) Mount(win *host.Window, gfx render.Provider) {
	if v.mounted || win == nil {
		return
	}
	v.win = win
	v.gfx = gfx

	if gfx != nil {
		s, err := gfx.NewSurface(int(v.width), int(v.height))
		if err != nil {
			v.logger.Debug("skill spiral drawing unavailable", "error", err)
		} else {
			v.surface = s
			win.Document().AppendChild(s)
		}
	}
	if v.tooltip != nil {
		win.Document().AppendChild(v.tooltip)
	}

	v.frame = win.RequestAnimationFrame(v.animate)
	v.mounted = true
}

// Unmount cancels the frame loop and removes the tooltip and surface.
func (v *Visualizer) Unmount() {
	if !v.mounted {
		return
	}
	v.win.CancelAnimationFrame(v.frame)
	v.removeTooltip()
	v.hovered = -1
	if v.surface != nil {
		v.win.Document().RemoveChild(v.surface)
		v.surface.Release()
		v.surface = nil
	}
	v.mounted = false
	v.win = nil
}

func (v *Visualizer) Surface() *render.Surface { return v.surface }

func (v *Visualizer) animate(now time.Duration) {
	v.frame = v.win.RequestAnimationFrame(v.animate)
	v.Advance()
	if v.surface != nil {
		v.surface.Draw(v.Draw)
	}
	if v.onDraw != nil {
		v.onDraw(now)
	}
}
