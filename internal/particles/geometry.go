package particles

import "math"

// Vec3 is a point or direction in scene units.
type Vec3 struct {
	X, Y, Z float64
}

func (a Vec3) Add(b Vec3) Vec3      { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3      { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3) Scale(s float64) Vec3 { return Vec3{a.X * s, a.Y * s, a.Z * s} }
func (a Vec3) Dot(b Vec3) float64   { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }
func (a Vec3) Len() float64         { return math.Sqrt(a.Dot(a)) }

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (a Vec3) Normalize() Vec3 {
	l := a.Len()
	if l == 0 {
		return a
	}
	return a.Scale(1 / l)
}

// rotateXY applies an XYZ Euler rotation with no z component: Y first, then X.
func (a Vec3) rotateXY(rx, ry float64) Vec3 {
	sy, cy := math.Sincos(ry)
	v := Vec3{a.X*cy + a.Z*sy, a.Y, -a.X*sy + a.Z*cy}
	sx, cx := math.Sincos(rx)
	return Vec3{v.X, v.Y*cx - v.Z*sx, v.Y*sx + v.Z*cx}
}

// Shape is the kind of primitive.
type Shape int

const (
	Box Shape = iota
	Sphere
	Cone
	Cylinder
)

// Shapes lists every primitive kind in palette order.
var Shapes = []Shape{Box, Sphere, Cone, Cylinder}

func (s Shape) String() string {
	switch s {
	case Box:
		return "box"
	case Sphere:
		return "sphere"
	case Cone:
		return "cone"
	case Cylinder:
		return "cylinder"
	default:
		return "unknown"
	}
}

// Geometry is a wireframe: vertices in model space and the edges joining them.
type Geometry struct {
	Vertices []Vec3
	Edges    [][2]int
}

// NewGeometry builds the wireframe for s.
func NewGeometry(s Shape) *Geometry {
	switch s {
	case Box:
		return boxGeometry(0.5)
	case Sphere:
		return sphereGeometry(0.3, 16, 6)
	case Cone:
		return coneGeometry(0.3, 0.8, 8)
	case Cylinder:
		return cylinderGeometry(0.2, 0.6, 8)
	default:
		return &Geometry{}
	}
}

func boxGeometry(size float64) *Geometry {
	h := size / 2
	g := &Geometry{}
	for i := 0; i < 8; i++ {
		g.Vertices = append(g.Vertices, Vec3{
			X: sign(i&1 != 0) * h,
			Y: sign(i&2 != 0) * h,
			Z: sign(i&4 != 0) * h,
		})
	}
	for i := 0; i < 8; i++ {
		for _, bit := range []int{1, 2, 4} {
			if i&bit == 0 {
				g.Edges = append(g.Edges, [2]int{i, i | bit})
			}
		}
	}
	return g
}

func sign(pos bool) float64 {
	if pos {
		return 1
	}
	return -1
}

// ring appends a closed circle of n vertices at height y and returns the index
// of its first vertex.
func (g *Geometry) ring(r, y float64, n int) int {
	first := len(g.Vertices)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		g.Vertices = append(g.Vertices, Vec3{X: r * math.Cos(a), Y: y, Z: r * math.Sin(a)})
	}
	for i := 0; i < n; i++ {
		g.Edges = append(g.Edges, [2]int{first + i, first + (i+1)%n})
	}
	return first
}

func sphereGeometry(r float64, segments, rings int) *Geometry {
	g := &Geometry{}
	top := len(g.Vertices)
	g.Vertices = append(g.Vertices, Vec3{Y: r})
	bottom := len(g.Vertices)
	g.Vertices = append(g.Vertices, Vec3{Y: -r})

	starts := make([]int, 0, rings-1)
	for j := 1; j < rings; j++ {
		phi := math.Pi * float64(j) / float64(rings)
		starts = append(starts, g.ring(r*math.Sin(phi), r*math.Cos(phi), segments))
	}
	// Meridians every other segment keep the wireframe legible at small sizes.
	for i := 0; i < segments; i += 2 {
		prev := top
		for _, s := range starts {
			g.Edges = append(g.Edges, [2]int{prev, s + i})
			prev = s + i
		}
		g.Edges = append(g.Edges, [2]int{prev, bottom})
	}
	return g
}

func coneGeometry(r, height float64, segments int) *Geometry {
	g := &Geometry{}
	base := g.ring(r, -height/2, segments)
	apex := len(g.Vertices)
	g.Vertices = append(g.Vertices, Vec3{Y: height / 2})
	for i := 0; i < segments; i++ {
		g.Edges = append(g.Edges, [2]int{base + i, apex})
	}
	return g
}

func cylinderGeometry(r, height float64, segments int) *Geometry {
	g := &Geometry{}
	bottom := g.ring(r, -height/2, segments)
	top := g.ring(r, height/2, segments)
	for i := 0; i < segments; i++ {
		g.Edges = append(g.Edges, [2]int{bottom + i, top + i})
	}
	return g
}
