package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/glkit"
)

// WindowViewport reports a GLFW window's framebuffer size.
type WindowViewport struct {
	window *glfw.Window
}

var _ glkit.Viewport = (*WindowViewport)(nil)

// NewWindowViewport creates a viewport for window.
func NewWindowViewport(window *glfw.Window) *WindowViewport {
	return &WindowViewport{window: window}
}

// Size returns the framebuffer size in pixels.
func (v *WindowViewport) Size() (width, height int) {
	return v.window.GetFramebufferSize()
}

// DefaultDragSpeed is the world distance a camera moves per dragged pixel.
const DefaultDragSpeed = 0.01

// DragController pans a camera while the left mouse button is held and
// keeps its projection and the GL viewport in step with the framebuffer.
type DragController struct {
	window   *glfw.Window
	camera   *glkit.Camera
	renderer *glkit.Renderer
	speed    float32

	dragging   bool
	lastX      float64
	lastY      float64
	havePrevXY bool
}

// NewDragController installs mouse and resize callbacks on window.
// It replaces any callbacks of the same kind already set.
func NewDragController(window *glfw.Window, camera *glkit.Camera, renderer *glkit.Renderer) *DragController {
	d := &DragController{
		window:   window,
		camera:   camera,
		renderer: renderer,
		speed:    DefaultDragSpeed,
	}

	window.SetMouseButtonCallback(d.mouseButtonCallback)
	window.SetCursorPosCallback(d.cursorPosCallback)
	window.SetFramebufferSizeCallback(d.framebufferSizeCallback)

	return d
}

// SetSpeed sets the world distance moved per dragged pixel.
func (d *DragController) SetSpeed(speed float32) {
	d.speed = speed
}

// Dragging reports whether a drag is in progress.
func (d *DragController) Dragging() bool {
	return d.dragging
}

func (d *DragController) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}

	switch action {
	case glfw.Press:
		d.dragging = true
		d.havePrevXY = false
	case glfw.Release:
		d.dragging = false
	}
}

func (d *DragController) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	if !d.dragging {
		return
	}
	if d.havePrevXY {
		dx := float32(xpos - d.lastX)
		dy := float32(ypos - d.lastY)
		d.camera.Translate(mgl32.Vec3{dx * d.speed, dy * d.speed, 0})
	}
	d.lastX, d.lastY = xpos, ypos
	d.havePrevXY = true
}

func (d *DragController) framebufferSizeCallback(w *glfw.Window, width, height int) {
	d.renderer.Resize(width, height)
	d.camera.UpdateProjection()
}
