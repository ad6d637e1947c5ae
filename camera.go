package glkit

import "github.com/go-gl/mathgl/mgl32"

// ProjectionKind selects how a Camera builds its projection matrix.
type ProjectionKind int

const (
	Orthographic ProjectionKind = iota
	Perspective
)

func (k ProjectionKind) String() string {
	if k == Perspective {
		return "perspective"
	}
	return "orthographic"
}

const (
	orthoNear       = -1
	orthoFar        = 1
	perspectiveNear = 0.1
	perspectiveFar  = 100.0

	// DefaultFov is the vertical field of view, in degrees, of a perspective
	// camera created with a non-positive fov.
	DefaultFov = 90
)

// up is the fixed up vector used by LookAt.
var up = mgl32.Vec3{0, 1, 0}

// Camera holds a position and a rotation about Z and derives the matrices
// needed to draw from them.
//
// Every mutator recomputes the derived matrices before it returns, so
// ProjectionView always equals Projection * inverse(View).
type Camera struct {
	kind ProjectionKind

	// orthographic bounds
	left, right, bottom, top float32

	// perspective
	fov      float32 // degrees
	viewport Viewport

	position mgl32.Vec3
	rotation float32 // radians

	projection     mgl32.Mat4
	view           mgl32.Mat4
	inverseView    mgl32.Mat4
	projectionView mgl32.Mat4
}

// NewOrthographicCamera creates a camera with the given view volume bounds
// and a depth range of -1..1.
func NewOrthographicCamera(left, right, bottom, top float32) *Camera {
	c := &Camera{kind: Orthographic, left: left, right: right, bottom: bottom, top: top}
	c.init()
	return c
}

// NewPerspectiveCamera creates a camera with the given vertical field of
// view in degrees. The aspect ratio is read from viewport.
func NewPerspectiveCamera(viewport Viewport, fovDegrees float32) *Camera {
	if fovDegrees <= 0 {
		fovDegrees = DefaultFov
	}
	c := &Camera{kind: Perspective, fov: fovDegrees, viewport: viewport}
	c.init()
	return c
}

func (c *Camera) init() {
	c.projection = mgl32.Ident4()
	c.view = mgl32.Ident4()
	c.inverseView = mgl32.Ident4()
	c.projectionView = mgl32.Ident4()
	c.updateProjection()
	c.recalculate()
}

func (c *Camera) updateProjection() {
	switch c.kind {
	case Orthographic:
		c.projection = mgl32.Ortho(c.left, c.right, c.bottom, c.top, orthoNear, orthoFar)
	case Perspective:
		c.projection = mgl32.Perspective(mgl32.DegToRad(c.fov), c.aspect(), perspectiveNear, perspectiveFar)
	}
}

func (c *Camera) aspect() float32 {
	if c.viewport == nil {
		return 1
	}
	w, h := c.viewport.Size()
	if w <= 0 || h <= 0 {
		return 1
	}
	return float32(w) / float32(h)
}

// recalculate rebuilds view, inverse view and projection-view from the
// current position and rotation.
func (c *Camera) recalculate() {
	c.view = mgl32.Translate3D(c.position.X(), c.position.Y(), c.position.Z()).
		Mul4(mgl32.HomogRotate3DZ(c.rotation))
	c.inverseView = c.view.Inv()
	c.projectionView = c.projection.Mul4(c.inverseView)
}

// Kind returns the projection kind.
func (c *Camera) Kind() ProjectionKind { return c.kind }

// Translate moves the camera by delta.
func (c *Camera) Translate(delta mgl32.Vec3) *Camera {
	c.position = c.position.Add(delta)
	c.recalculate()
	return c
}

// SetPosition moves the camera to pos.
func (c *Camera) SetPosition(pos mgl32.Vec3) *Camera {
	c.position = pos
	c.recalculate()
	return c
}

// SetRotation sets the rotation about Z, in degrees.
func (c *Camera) SetRotation(degrees float32) *Camera {
	c.rotation = mgl32.DegToRad(degrees)
	c.recalculate()
	return c
}

// LookAt points the camera at the translation of target, keeping +Y up.
func (c *Camera) LookAt(target mgl32.Mat4) *Camera {
	center := target.Col(3).Vec3()
	lookAt := mgl32.LookAtV(c.position, center, up)
	c.inverseView = lookAt
	c.view = lookAt.Inv()
	c.projectionView = c.projection.Mul4(c.inverseView)
	return c
}

// SetFov changes the vertical field of view of a perspective camera, in
// degrees. It has no effect on orthographic cameras.
func (c *Camera) SetFov(degrees float32) *Camera {
	if c.kind != Perspective {
		return c
	}
	c.fov = degrees
	c.updateProjection()
	c.recalculate()
	return c
}

// Fov returns the vertical field of view in degrees (0 for orthographic).
func (c *Camera) Fov() float32 { return c.fov }

// UpdateProjection re-reads the viewport size, e.g. after a window resize.
func (c *Camera) UpdateProjection() {
	c.updateProjection()
	c.projectionView = c.projection.Mul4(c.inverseView)
}

// Position returns the camera position.
func (c *Camera) Position() mgl32.Vec3 { return c.position }

// Rotation returns the rotation about Z in radians.
func (c *Camera) Rotation() float32 { return c.rotation }

// Projection returns the projection matrix.
func (c *Camera) Projection() mgl32.Mat4 { return c.projection }

// View returns the camera transform (camera space to world space).
func (c *Camera) View() mgl32.Mat4 { return c.view }

// InverseView returns the inverse of View (world space to camera space).
func (c *Camera) InverseView() mgl32.Mat4 { return c.inverseView }

// ProjectionView returns Projection * InverseView.
func (c *Camera) ProjectionView() mgl32.Mat4 { return c.projectionView }
