package particles

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/Sunil5411/portfolio/internal/host"
	"github.com/Sunil5411/portfolio/internal/render"
)

func TestSpawnIsBoundedAndSeeded(t *testing.T) {
	a := Spawn(rand.New(rand.NewSource(7)), PrimitiveCount)
	b := Spawn(rand.New(rand.NewSource(7)), PrimitiveCount)
	require.Len(t, a, PrimitiveCount)
	assert.Equal(t, a, b)

	for _, p := range a {
		for _, v := range []float64{p.Position.X, p.Position.Y, p.Position.Z} {
			assert.GreaterOrEqual(t, v, -Extent)
			assert.Less(t, v, Extent)
		}
		assert.GreaterOrEqual(t, p.Rotation.X, 0.0)
		assert.Less(t, p.Rotation.X, math.Pi)
		assert.GreaterOrEqual(t, p.Rotation.Y, 0.0)
		assert.Less(t, p.Rotation.Y, math.Pi)
		assert.Contains(t, Materials, p.Material)
		assert.True(t, p.Material.Wireframe)
	}

	c := Spawn(rand.New(rand.NewSource(8)), PrimitiveCount)
	assert.NotEqual(t, a, c)
}

func TestStepSpinsByIndex(t *testing.T) {
	s := NewScene(rand.New(rand.NewSource(1)), 3)
	before := make([]Primitive, len(s.Primitives))
	copy(before, s.Primitives)

	s.Step(2)
	for i, p := range s.Primitives {
		want := baseSpin + float64(i)*indexSpin
		assert.InDelta(t, want, p.Rotation.X-before[i].Rotation.X, 1e-12)
		assert.InDelta(t, want, p.Rotation.Y-before[i].Rotation.Y, 1e-12)
		assert.InDelta(t, math.Sin(2+float64(i))*0.002, p.Position.Y-before[i].Position.Y, 1e-12)
		assert.InDelta(t, math.Cos(1.6+float64(i))*0.001, p.Position.X-before[i].Position.X, 1e-12)
		assert.Equal(t, before[i].Position.Z, p.Position.Z)
	}
}

func TestOrbitLooksAtOrigin(t *testing.T) {
	c := NewCamera(1)
	Orbit(c, math.Pi)
	assert.InDelta(t, 2*math.Sin(math.Pi/2), c.Position.X, 1e-9)
	assert.InDelta(t, math.Cos(0.3*math.Pi), c.Position.Y, 1e-9)
	assert.Equal(t, 10.0, c.Position.Z)
	assert.Equal(t, Vec3{}, c.Target)
}

func TestProjectOriginToCentre(t *testing.T) {
	c := NewCamera(800.0 / 600.0)
	p, ok := c.Project(Vec3{}, 800, 600)
	require.True(t, ok)
	assert.InDelta(t, 400, p.X, 1e-9)
	assert.InDelta(t, 300, p.Y, 1e-9)

	_, ok = c.Project(Vec3{Z: 20}, 800, 600)
	assert.False(t, ok, "points behind the camera are not projected")

	right, ok := c.Project(Vec3{X: 1}, 800, 600)
	require.True(t, ok)
	assert.Greater(t, right.X, 400.0)
	up, ok := c.Project(Vec3{Y: 1}, 800, 600)
	require.True(t, ok)
	assert.Less(t, up.Y, 300.0)
}

func TestClipDepth(t *testing.T) {
	a, b, ok := clipDepth(Vec3{Z: -1}, Vec3{Z: 3}, 1, true)
	require.True(t, ok)
	assert.InDelta(t, 1, a.Z, 1e-12)
	assert.InDelta(t, 3, b.Z, 1e-12)

	_, _, ok = clipDepth(Vec3{Z: -1}, Vec3{Z: -3}, 1, true)
	assert.False(t, ok)
}

func TestGeometries(t *testing.T) {
	box := NewGeometry(Box)
	assert.Len(t, box.Vertices, 8)
	assert.Len(t, box.Edges, 12)

	for _, sh := range Shapes {
		g := NewGeometry(sh)
		require.NotEmpty(t, g.Edges, sh.String())
		for _, e := range g.Edges {
			assert.Less(t, e[0], len(g.Vertices))
			assert.Less(t, e[1], len(g.Vertices))
		}
	}
}

type FieldSuite struct {
	suite.Suite
	win *host.Window
}

func TestFieldSuite(t *testing.T) {
	suite.Run(t, new(FieldSuite))
}

func (s *FieldSuite) SetupTest() {
	s.win = host.NewWindow(400, 300)
}

func (s *FieldSuite) newField(opts ...Option) *Field {
	return New(s.win, render.Software{}, rand.New(rand.NewSource(42)), opts...)
}

func (s *FieldSuite) TestMountCreatesTwentyPrimitives() {
	f := s.newField()
	f.Mount()
	defer f.Unmount()

	s.Len(f.Scene().Primitives, PrimitiveCount)
	s.Equal(1, s.win.Document().Len())
	s.InDelta(400.0/300.0, f.Camera().Aspect, 1e-12)
	s.Equal(10.0, f.Camera().Position.Z)
}

func (s *FieldSuite) TestMountThenUnmountLeavesNoResidue() {
	f := s.newField()
	f.Mount()
	f.Unmount()

	s.Zero(s.win.PendingFrames())
	s.Zero(s.win.Document().Len())
	s.Zero(s.win.ResizeListeners())
	s.Nil(f.Scene())
}

func (s *FieldSuite) TestRepeatedCyclesNeverDuplicateSurfaces() {
	f := s.newField()
	for i := 0; i < 4; i++ {
		f.Mount()
		f.Mount()
		s.Equal(1, s.win.Document().Len())
		s.Equal(1, s.win.ResizeListeners())
		s.win.Tick(time.Duration(i) * time.Second)
		f.Unmount()
	}
	s.Zero(s.win.Document().Len())
	s.Zero(s.win.PendingFrames())
}

func (s *FieldSuite) TestSurfaceReleasedOnUnmount() {
	f := s.newField()
	f.Mount()
	surface := f.Surface()
	f.Unmount()
	s.True(surface.Released())
}

func (s *FieldSuite) TestFramesAdvanceScene() {
	frames := 0
	f := s.newField(WithFrameHook(func(time.Duration) { frames++ }))
	f.Mount()
	defer f.Unmount()

	start := f.Scene().Primitives[0].Rotation
	s.win.Tick(16 * time.Millisecond)
	s.win.Tick(32 * time.Millisecond)

	s.Equal(2, frames)
	s.InDelta(start.X+2*baseSpin, f.Scene().Primitives[0].Rotation.X, 1e-12)
	s.Equal(1, s.win.PendingFrames())
}

func (s *FieldSuite) TestResizeUpdatesCameraAndSurface() {
	f := s.newField()
	f.Mount()
	defer f.Unmount()

	s.win.Resize(1000, 500)
	s.InDelta(2.0, f.Camera().Aspect, 1e-12)
	w, h := f.Surface().Size()
	s.Equal(1000, w)
	s.Equal(500, h)
}

func (s *FieldSuite) TestSameSeedSameLayout() {
	a := s.newField()
	a.Mount()
	defer a.Unmount()

	other := host.NewWindow(400, 300)
	b := New(other, render.Software{}, rand.New(rand.NewSource(42)))
	b.Mount()
	defer b.Unmount()

	s.Equal(a.Scene().Primitives, b.Scene().Primitives)
}

func (s *FieldSuite) TestNoGraphicsSkipsSetup() {
	f := New(s.win, render.Unavailable{}, rand.New(rand.NewSource(1)))
	f.Mount()
	s.Nil(f.Scene())
	s.Zero(s.win.PendingFrames())
	f.Unmount()
}
