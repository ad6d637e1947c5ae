package scenes

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/glkit"
)

const cubeVertexShader = `
in vec3 aPosition;
in vec4 aColor;

uniform mat4 uMVP;
uniform mat4 uTransform;

out vec4 vColor;

void main() {
	gl_Position = uMVP * uTransform * vec4(aPosition, 1.0);
	vColor = aColor;
}
`

const cubeFragmentShader = `
precision mediump float;

in vec4 vColor;
out vec4 fragColor;

void main() {
	fragColor = vColor;
}
`

// Faces are wound counter-clockwise when seen from outside.
var cubePositions = []float32{
	// front
	-1, -1, 1, 1, -1, 1, 1, 1, 1, -1, 1, 1,
	// back
	-1, -1, -1, -1, 1, -1, 1, 1, -1, 1, -1, -1,
	// top
	-1, 1, -1, -1, 1, 1, 1, 1, 1, 1, 1, -1,
	// bottom
	-1, -1, -1, 1, -1, -1, 1, -1, 1, -1, -1, 1,
	// right
	1, -1, -1, 1, 1, -1, 1, 1, 1, 1, -1, 1,
	// left
	-1, -1, -1, -1, -1, 1, -1, 1, 1, -1, 1, -1,
}

var cubeFaceColors = [][4]float32{
	{1, 1, 1, 1},
	{1, 0, 0, 1},
	{0, 1, 0, 1},
	{0, 0, 1, 1},
	{1, 1, 0, 1},
	{1, 0, 1, 1},
}

var cubeIndices = []int{
	0, 1, 2, 0, 2, 3,
	4, 5, 6, 4, 6, 7,
	8, 9, 10, 8, 10, 11,
	12, 13, 14, 12, 14, 15,
	16, 17, 18, 16, 18, 19,
	20, 21, 22, 20, 22, 23,
}

const cubeScale = 5

// Cube is a cube with one solid color per face, spinning about a diagonal
// axis.
type Cube struct {
	program *glkit.Program
	va      *glkit.VertexArray
	buffers []*glkit.VertexBuffer
	indices *glkit.IndexBuffer
}

var _ Scene = (*Cube)(nil)

// NewCube uploads the cube mesh and links its program.
func NewCube(gl glkit.GL) (*Cube, error) {
	program, err := glkit.NewProgram(gl, cubeVertexShader, cubeFragmentShader)
	if err != nil {
		return nil, err
	}
	s := &Cube{program: program}

	s.va, err = glkit.NewVertexArray(gl, program)
	if err != nil {
		s.Delete()
		return nil, err
	}

	colors := make([]float32, 0, 24*4)
	for _, c := range cubeFaceColors {
		for range 4 {
			colors = append(colors, c[:]...)
		}
	}

	for _, attr := range []struct {
		data   []float32
		layout *glkit.VertexLayout
	}{
		{cubePositions, glkit.NewVertexLayout(glkit.Vec3("aPosition"))},
		{colors, glkit.NewVertexLayout(glkit.Vec4("aColor"))},
	} {
		vb, err := glkit.NewStaticVertexBuffer(gl)
		if err != nil {
			s.Delete()
			return nil, err
		}
		s.buffers = append(s.buffers, vb)
		vb.SetData(attr.data)
		vb.Upload()
		if err := vb.SetLayout(attr.layout); err != nil {
			s.Delete()
			return nil, err
		}
		if err := s.va.AddVertexBuffer(vb); err != nil {
			s.Delete()
			return nil, err
		}
	}

	s.indices, err = glkit.NewIndexBuffer(gl)
	if err != nil {
		s.Delete()
		return nil, err
	}
	if err := s.indices.SetData(cubeIndices); err != nil {
		s.Delete()
		return nil, err
	}
	s.indices.Upload()
	s.va.SetIndexBuffer(s.indices)

	return s, nil
}

func (s *Cube) Frame(r *glkit.Renderer, t float32) error {
	transform := mgl32.HomogRotate3D(t, mgl32.Vec3{1, 1, 0}.Normalize()).
		Mul4(mgl32.Scale3D(cubeScale, cubeScale, cubeScale))
	return r.Submit(s.program, s.va, transform, 1)
}

func (s *Cube) Delete() {
	if s.indices != nil {
		s.indices.Delete()
	}
	for _, vb := range s.buffers {
		vb.Delete()
	}
	if s.va != nil {
		s.va.Delete()
	}
	s.program.Delete()
}
