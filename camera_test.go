package glkit

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const matrixTolerance = 1e-5

func assertMatrix(t *testing.T, want, got mgl32.Mat4, msgAndArgs ...any) bool {
	t.Helper()
	if want.ApproxEqualThreshold(got, matrixTolerance) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("matrices differ\nwant\n%v\ngot\n%v", want, got), msgAndArgs...)
}

// assertProjectionView checks that the cached projection-view matrix agrees
// with the other three.
func assertProjectionView(t *testing.T, c *Camera) {
	t.Helper()
	assertMatrix(t, c.Projection().Mul4(c.InverseView()), c.ProjectionView(), "PV != P * inverse(V)")
	assertMatrix(t, c.View().Inv(), c.InverseView(), "inverse view out of date")
}

func fixedViewport(w, h int) Viewport {
	return ViewportFunc(func() (int, int) { return w, h })
}

func TestOrthographicCamera_Initial(t *testing.T) {
	c := NewOrthographicCamera(-2, 2, -1, 1)

	assert.Equal(t, Orthographic, c.Kind())
	assertMatrix(t, mgl32.Ortho(-2, 2, -1, 1, -1, 1), c.Projection())
	assertMatrix(t, mgl32.Ident4(), c.View())
	assertMatrix(t, c.Projection(), c.ProjectionView())
}

func TestCamera_RotateThenTranslate(t *testing.T) {
	c := NewOrthographicCamera(-1, 1, -1, 1)

	c.SetRotation(90)
	assertProjectionView(t, c)

	c.Translate(mgl32.Vec3{1, 0, 0})
	assertProjectionView(t, c)

	assert.Equal(t, mgl32.Vec3{1, 0, 0}, c.Position())
	assert.InDelta(t, mgl32.DegToRad(90), c.Rotation(), matrixTolerance)

	want := mgl32.Translate3D(1, 0, 0).Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(90)))
	assertMatrix(t, want, c.View())

	// the world point at the camera position lands in the view centre
	centre := c.ProjectionView().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 0, centre.X(), matrixTolerance)
	assert.InDelta(t, 0, centre.Y(), matrixTolerance)
}

func TestCamera_SetPosition(t *testing.T) {
	c := NewOrthographicCamera(-1, 1, -1, 1)
	c.Translate(mgl32.Vec3{5, 5, 0}).SetPosition(mgl32.Vec3{0, 2, 0})

	assert.Equal(t, mgl32.Vec3{0, 2, 0}, c.Position())
	assertMatrix(t, mgl32.Translate3D(0, 2, 0), c.View())
	assertProjectionView(t, c)
}

func TestPerspectiveCamera_DefaultFov(t *testing.T) {
	c := NewPerspectiveCamera(fixedViewport(800, 600), 0)

	assert.Equal(t, Perspective, c.Kind())
	assert.Equal(t, float32(DefaultFov), c.Fov())
	assertMatrix(t, mgl32.Perspective(mgl32.DegToRad(90), 800.0/600.0, 0.1, 100), c.Projection())
}

func TestPerspectiveCamera_SetFov(t *testing.T) {
	c := NewPerspectiveCamera(fixedViewport(800, 600), 90)
	c.SetPosition(mgl32.Vec3{0, 0, 10})

	c.SetFov(45)

	assert.Equal(t, float32(45), c.Fov())
	assertMatrix(t, mgl32.Perspective(mgl32.DegToRad(45), 800.0/600.0, 0.1, 100), c.Projection())
	assertProjectionView(t, c)
}

func TestOrthographicCamera_SetFovIgnored(t *testing.T) {
	c := NewOrthographicCamera(-1, 1, -1, 1)
	before := c.Projection()

	c.SetFov(45)

	assert.Zero(t, c.Fov())
	assertMatrix(t, before, c.Projection())
}

func TestPerspectiveCamera_UpdateProjection(t *testing.T) {
	w, h := 800, 600
	c := NewPerspectiveCamera(ViewportFunc(func() (int, int) { return w, h }), 60)
	c.Translate(mgl32.Vec3{0, 0, 5})

	w, h = 600, 600
	c.UpdateProjection()

	assertMatrix(t, mgl32.Perspective(mgl32.DegToRad(60), 1, 0.1, 100), c.Projection())
	assertProjectionView(t, c)
}

func TestPerspectiveCamera_ZeroSizeViewport(t *testing.T) {
	c := NewPerspectiveCamera(fixedViewport(0, 0), 90)
	assertMatrix(t, mgl32.Perspective(mgl32.DegToRad(90), 1, 0.1, 100), c.Projection())
}

func TestCamera_LookAt(t *testing.T) {
	c := NewPerspectiveCamera(fixedViewport(640, 480), 60)
	c.SetPosition(mgl32.Vec3{3, 2, 5})

	c.LookAt(mgl32.Translate3D(0, 0, 0))

	assertMatrix(t, mgl32.LookAtV(mgl32.Vec3{3, 2, 5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}), c.InverseView())
	assertMatrix(t, mgl32.Ident4(), c.View().Mul4(c.InverseView()))
	assertProjectionView(t, c)

	// the target sits on the view axis
	target := c.InverseView().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0, target.X(), matrixTolerance)
	assert.InDelta(t, 0, target.Y(), matrixTolerance)
	assert.Less(t, target.Z(), float32(0))
}
