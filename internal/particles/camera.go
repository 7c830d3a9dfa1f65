package particles

import (
	"math"

	"github.com/Sunil5411/portfolio/internal/render"
)

// Camera is a perspective camera with a vertical field of view.
type Camera struct {
	FOV      float64 // degrees
	Aspect   float64
	Near     float64
	Far      float64
	Position Vec3
	Target   Vec3
	Up       Vec3
}

// NewCamera returns the scene camera: 75° fov, backed off ten units along z.
func NewCamera(aspect float64) *Camera {
	return &Camera{
		FOV:      75,
		Aspect:   aspect,
		Near:     0.1,
		Far:      1000,
		Position: Vec3{Z: 10},
		Up:       Vec3{Y: 1},
	}
}

// LookAt points the camera at target.
func (c *Camera) LookAt(target Vec3) {
	c.Target = target
}

// basis returns right, up and forward unit vectors.
func (c *Camera) basis() (Vec3, Vec3, Vec3) {
	f := c.Target.Sub(c.Position).Normalize()
	r := f.Cross(c.Up).Normalize()
	u := r.Cross(f)
	return r, u, f
}

// toView converts a world point to camera space where z is depth in front of
// the camera.
func (c *Camera) toView(p Vec3, r, u, f Vec3) Vec3 {
	d := p.Sub(c.Position)
	return Vec3{X: d.Dot(r), Y: d.Dot(u), Z: d.Dot(f)}
}

func (c *Camera) toScreen(v Vec3, width, height float64) render.Point {
	t := math.Tan(c.FOV * math.Pi / 360)
	nx := v.X / (v.Z * t * c.Aspect)
	ny := v.Y / (v.Z * t)
	return render.Point{
		X: (nx + 1) / 2 * width,
		Y: (1 - ny) / 2 * height,
	}
}

// Project maps a world point to surface pixels. ok is false when the point is
// outside the near/far range.
func (c *Camera) Project(p Vec3, width, height float64) (render.Point, bool) {
	r, u, f := c.basis()
	v := c.toView(p, r, u, f)
	if v.Z < c.Near || v.Z > c.Far {
		return render.Point{}, false
	}
	return c.toScreen(v, width, height), true
}

// projectSegment clips a world-space segment against the near and far planes
// and maps it to surface pixels.
func (c *Camera) projectSegment(a, b Vec3, basis [3]Vec3, width, height float64) (render.Point, render.Point, bool) {
	va := c.toView(a, basis[0], basis[1], basis[2])
	vb := c.toView(b, basis[0], basis[1], basis[2])

	var ok bool
	if va, vb, ok = clipDepth(va, vb, c.Near, true); !ok {
		return render.Point{}, render.Point{}, false
	}
	if va, vb, ok = clipDepth(va, vb, c.Far, false); !ok {
		return render.Point{}, render.Point{}, false
	}
	return c.toScreen(va, width, height), c.toScreen(vb, width, height), true
}

// clipDepth keeps the part of a..b with z >= plane (near) or z <= plane (far).
func clipDepth(a, b Vec3, plane float64, keepAbove bool) (Vec3, Vec3, bool) {
	inside := func(v Vec3) bool {
		if keepAbove {
			return v.Z >= plane
		}
		return v.Z <= plane
	}
	ia, ib := inside(a), inside(b)
	switch {
	case ia && ib:
		return a, b, true
	case !ia && !ib:
		return a, b, false
	}
	t := (plane - a.Z) / (b.Z - a.Z)
	p := a.Add(b.Sub(a).Scale(t))
	if ia {
		return a, p, true
	}
	return p, b, true
}
