package particles

import (
	"math"
	"math/rand"
)

// Material is how a primitive's wireframe is stroked.
type Material struct {
	Color       string
	Opacity     float64
	Wireframe   bool
	Transparent bool
}

// Materials is the palette primitives draw from.
var Materials = []Material{
	{Color: "#3b82f6", Opacity: 0.6, Wireframe: true, Transparent: true},
	{Color: "#8b5cf6", Opacity: 0.5, Wireframe: true, Transparent: true},
	{Color: "#06b6d4", Opacity: 0.7, Wireframe: true, Transparent: true},
}

// Rotation is an Euler rotation in radians; primitives only spin on x and y.
type Rotation struct {
	X, Y float64
}

// Primitive is one floating wireframe shape.
type Primitive struct {
	Shape    Shape
	Material Material
	Position Vec3
	Rotation Rotation
}

const (
	// PrimitiveCount is how many primitives a field spawns.
	PrimitiveCount = 20
	// Extent is the half width of the cube primitives spawn in.
	Extent = 10.0

	baseSpin  = 0.005
	indexSpin = 0.0001
)

// Spawn creates n primitives uniformly inside [-Extent, Extent]³ with random
// initial rotation in [0, π) on x and y. All randomness comes from rng.
func Spawn(rng *rand.Rand, n int) []Primitive {
	out := make([]Primitive, n)
	for i := range out {
		p := &out[i]
		p.Shape = Shapes[rng.Intn(len(Shapes))]
		p.Material = Materials[rng.Intn(len(Materials))]
		p.Position = Vec3{
			X: (rng.Float64() - 0.5) * 2 * Extent,
			Y: (rng.Float64() - 0.5) * 2 * Extent,
			Z: (rng.Float64() - 0.5) * 2 * Extent,
		}
		p.Rotation = Rotation{
			X: rng.Float64() * math.Pi,
			Y: rng.Float64() * math.Pi,
		}
	}
	return out
}

// Scene owns the primitives and the wireframes they share.
type Scene struct {
	Primitives []Primitive
	geometries map[Shape]*Geometry
}

func NewScene(rng *rand.Rand, n int) *Scene {
	s := &Scene{
		Primitives: Spawn(rng, n),
		geometries: make(map[Shape]*Geometry, len(Shapes)),
	}
	for _, sh := range Shapes {
		s.geometries[sh] = NewGeometry(sh)
	}
	return s
}

// Geometry returns the shared wireframe for sh, or nil after Dispose.
func (s *Scene) Geometry(sh Shape) *Geometry {
	return s.geometries[sh]
}

// Step advances every primitive by one frame at t seconds: each spins a little
// faster than the one before it and bobs on its own phase.
func (s *Scene) Step(t float64) {
	for i := range s.Primitives {
		p := &s.Primitives[i]
		fi := float64(i)
		spin := baseSpin + fi*indexSpin
		p.Rotation.X += spin
		p.Rotation.Y += spin
		p.Position.Y += math.Sin(t+fi) * 0.002
		p.Position.X += math.Cos(t*0.8+fi) * 0.001
	}
}

// Dispose drops the shared geometry.
func (s *Scene) Dispose() {
	s.geometries = nil
}

// Orbit moves the camera along its slow figure around the origin at t seconds.
func Orbit(c *Camera, t float64) {
	c.Position.X = math.Sin(t*0.5) * 2
	c.Position.Y = math.Cos(t*0.3) * 1
	c.LookAt(Vec3{})
}
