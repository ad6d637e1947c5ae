package glkit

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Default uniform names uploaded by Renderer.Submit.
const (
	DefaultCameraUniform    = "uMVP"
	DefaultTransformUniform = "uTransform"
)

// Renderer issues one frame's draw calls against a camera.
//
// A frame is BeginScene, Clear, any number of Submit calls, then EndScene.
// Every Submit rebinds program, vertex array and index buffer; nothing is
// batched or cached between calls.
type Renderer struct {
	gl         GL
	camera     *Camera
	clearColor mgl32.Vec4

	cameraUniform    string
	transformUniform string
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithClearColor sets the color Clear fills the frame with.
func WithClearColor(c mgl32.Vec4) RendererOption {
	return func(r *Renderer) { r.clearColor = c }
}

// WithCameraUniform sets the mat4 uniform that receives the camera's
// projection-view matrix.
func WithCameraUniform(name string) RendererOption {
	return func(r *Renderer) { r.cameraUniform = name }
}

// WithTransformUniform sets the mat4 uniform that receives the model transform.
func WithTransformUniform(name string) RendererOption {
	return func(r *Renderer) { r.transformUniform = name }
}

// NewRenderer creates a renderer and enables depth testing and back-face
// culling on gl.
func NewRenderer(gl GL, opts ...RendererOption) *Renderer {
	r := &Renderer{
		gl:               gl,
		clearColor:       mgl32.Vec4{0, 0, 0, 1},
		cameraUniform:    DefaultCameraUniform,
		transformUniform: DefaultTransformUniform,
	}
	for _, opt := range opts {
		opt(r)
	}

	gl.Enable(DepthTest)
	gl.DepthFunc(Lequal)
	gl.Enable(CullFace)
	gl.CullFace(Back)
	return r
}

// SetClearColor sets the color Clear fills the frame with.
func (r *Renderer) SetClearColor(c mgl32.Vec4) { r.clearColor = c }

// ClearColor returns the current clear color.
func (r *Renderer) ClearColor() mgl32.Vec4 { return r.clearColor }

// BeginScene starts a frame drawn from camera. The camera is referenced,
// not copied, so moving it mid-frame affects later submits.
func (r *Renderer) BeginScene(camera *Camera) { r.camera = camera }

// EndScene finishes the frame.
func (r *Renderer) EndScene() {}

// Camera returns the camera of the current scene, or nil.
func (r *Renderer) Camera() *Camera { return r.camera }

// Resize sets the GL viewport to the given size.
func (r *Renderer) Resize(width, height int) {
	r.gl.Viewport(0, 0, int32(width), int32(height))
}

// Clear resets the color and depth buffers.
func (r *Renderer) Clear() {
	c := r.clearColor
	r.gl.ClearColor(c[0], c[1], c[2], c[3])
	r.gl.ClearDepth(1.0)
	r.gl.Clear(ColorBufferBit | DepthBufferBit)
}

// Submit draws instanceCount instances of va with program. The camera's
// projection-view matrix and transform are uploaded first.
func (r *Renderer) Submit(program *Program, va *VertexArray, transform mgl32.Mat4, instanceCount int) error {
	if r.camera == nil {
		return ErrNoScene
	}
	ib, err := bindForDraw(program, va)
	if err != nil {
		return err
	}

	program.SetMatrix4(r.cameraUniform, r.camera.ProjectionView())
	program.SetMatrix4(r.transformUniform, transform)

	r.gl.DrawElementsInstanced(Triangles, int32(ib.Count()), ib.ElementType(), 0, int32(instanceCount))
	return nil
}

// Draw draws va once with program, uploading no uniforms.
func (r *Renderer) Draw(program *Program, va *VertexArray) error {
	ib, err := bindForDraw(program, va)
	if err != nil {
		return err
	}
	r.gl.DrawElements(Triangles, int32(ib.Count()), ib.ElementType(), 0)
	return nil
}

// DrawInstanced draws instanceCount instances of va with program,
// uploading no uniforms.
func (r *Renderer) DrawInstanced(program *Program, va *VertexArray, instanceCount int) error {
	ib, err := bindForDraw(program, va)
	if err != nil {
		return err
	}
	r.gl.DrawElementsInstanced(Triangles, int32(ib.Count()), ib.ElementType(), 0, int32(instanceCount))
	return nil
}

func bindForDraw(program *Program, va *VertexArray) (*IndexBuffer, error) {
	ib := va.IndexBuffer()
	if ib == nil {
		return nil, fmt.Errorf("vertex array %d: %w", va.ID(), ErrNoIndexBuffer)
	}
	program.Bind()
	va.Bind()
	ib.Bind()
	return ib, nil
}
