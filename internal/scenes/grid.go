package scenes

import (
	"context"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/glkit"
)

const gridVertexShader = `
in vec2 aPosition;
in vec2 aTexCoord;
in vec2 aOffset;

uniform mat4 uMVP;
uniform mat4 uTransform;

out vec2 vTexCoord;

void main() {
	gl_Position = uMVP * uTransform * vec4(aPosition + aOffset, 0.0, 1.0);
	vTexCoord = aTexCoord;
}
`

const gridFragmentShader = `
precision mediump float;

uniform sampler2D uTexture;
uniform vec4 uTint;

in vec2 vTexCoord;
out vec4 fragColor;

void main() {
	fragColor = texture(uTexture, vTexCoord) * uTint;
}
`

// One unit quad, interleaved position and texture coordinate.
var gridQuad = []float32{
	-0.5, -0.5, 0, 0,
	0.5, -0.5, 1, 0,
	0.5, 0.5, 1, 1,
	-0.5, 0.5, 0, 1,
}

var gridQuadIndices = []int{0, 1, 2, 0, 2, 3}

// GridConfig sizes a Grid.
type GridConfig struct {
	Columns int     `yaml:"columns"`
	Rows    int     `yaml:"rows"`
	Spacing float32 `yaml:"spacing"`
	// Texture is the image shown on every tile. Empty keeps the
	// placeholder pixel.
	Texture string `yaml:"texture"`
}

// Validate reports whether the grid has at least one tile.
func (c GridConfig) Validate() error {
	if c.Columns < 1 || c.Rows < 1 {
		return fmt.Errorf("grid: need at least one column and row, got %dx%d", c.Columns, c.Rows)
	}
	return nil
}

// Grid draws Columns x Rows textured tiles with one instanced draw call.
type Grid struct {
	program   *glkit.Program
	va        *glkit.VertexArray
	quad      *glkit.VertexBuffer
	offsets   *glkit.VertexBuffer
	indices   *glkit.IndexBuffer
	texture   *glkit.Texture2D
	instances int
	cancel    context.CancelFunc
}

var _ Scene = (*Grid)(nil)

// NewGrid builds the tile mesh and starts loading cfg.Texture with loader.
func NewGrid(gl glkit.GL, cfg GridConfig, loader glkit.ImageLoader) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	program, err := glkit.NewProgram(gl, gridVertexShader, gridFragmentShader)
	if err != nil {
		return nil, err
	}
	s := &Grid{program: program, instances: cfg.Columns * cfg.Rows}

	if err := s.build(gl, cfg, loader); err != nil {
		s.Delete()
		return nil, err
	}
	return s, nil
}

func (s *Grid) build(gl glkit.GL, cfg GridConfig, loader glkit.ImageLoader) error {
	var err error
	if s.va, err = glkit.NewVertexArray(gl, s.program); err != nil {
		return err
	}

	if s.quad, err = glkit.NewStaticVertexBuffer(gl); err != nil {
		return err
	}
	s.quad.SetData(gridQuad)
	s.quad.Upload()
	if err := s.quad.SetLayout(glkit.NewVertexLayout(
		glkit.Vec2("aPosition"),
		glkit.Vec2("aTexCoord"),
	)); err != nil {
		return err
	}
	if err := s.va.AddVertexBuffer(s.quad); err != nil {
		return err
	}

	if s.offsets, err = glkit.NewStaticVertexBuffer(gl); err != nil {
		return err
	}
	s.offsets.SetData(GridOffsets(cfg))
	s.offsets.Upload()
	if err := s.offsets.SetLayout(glkit.NewVertexLayout(
		glkit.Vec2("aOffset").WithDivisor(1),
	)); err != nil {
		return err
	}
	if err := s.va.AddVertexBuffer(s.offsets); err != nil {
		return err
	}

	if s.indices, err = glkit.NewIndexBuffer(gl); err != nil {
		return err
	}
	if err := s.indices.SetData(gridQuadIndices); err != nil {
		return err
	}
	s.indices.Upload()
	s.va.SetIndexBuffer(s.indices)

	if s.texture, err = glkit.NewTexture2D(gl, cfg.Texture); err != nil {
		return err
	}
	if cfg.Texture != "" {
		ctx, cancel := context.WithCancel(context.Background())
		s.cancel = cancel
		s.texture.Load(ctx, loader)
	}
	return nil
}

// GridOffsets returns the per-instance tile centres of a Columns x Rows
// grid centred on the origin, row by row. It is empty for a grid with no
// tiles.
func GridOffsets(cfg GridConfig) []float32 {
	if cfg.Validate() != nil {
		return nil
	}
	offsets := make([]float32, 0, cfg.Columns*cfg.Rows*2)
	x0 := -float32(cfg.Columns-1) * cfg.Spacing / 2
	y0 := -float32(cfg.Rows-1) * cfg.Spacing / 2
	for row := range cfg.Rows {
		for col := range cfg.Columns {
			offsets = append(offsets,
				x0+float32(col)*cfg.Spacing,
				y0+float32(row)*cfg.Spacing,
			)
		}
	}
	return offsets
}

// Texture returns the tile texture.
func (s *Grid) Texture() *glkit.Texture2D { return s.texture }

func (s *Grid) Frame(r *glkit.Renderer, t float32) error {
	s.texture.Update()
	s.texture.Bind(0)

	s.program.Bind()
	s.program.SetFloat4("uTint", 1, 1, 1, 1)

	return r.Submit(s.program, s.va, mgl32.Ident4(), s.instances)
}

func (s *Grid) Delete() {
	if s.cancel != nil {
		s.cancel()
	}
	if s.texture != nil {
		s.texture.Delete()
	}
	if s.indices != nil {
		s.indices.Delete()
	}
	if s.offsets != nil {
		s.offsets.Delete()
	}
	if s.quad != nil {
		s.quad.Delete()
	}
	if s.va != nil {
		s.va.Delete()
	}
	s.program.Delete()
}
