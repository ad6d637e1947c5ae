package glkit

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// ShaderStage identifies one programmable stage.
type ShaderStage int

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

// GLEnum returns the shader type passed to CreateShader.
func (s ShaderStage) GLEnum() Enum {
	if s == FragmentStage {
		return FragmentShader
	}
	return VertexShader
}

func (s ShaderStage) String() string {
	if s == FragmentStage {
		return "fragment"
	}
	return "vertex"
}

// Program is a linked vertex + fragment shader pair with its uniform
// locations resolved once at link time.
//
// Uniform setters look the name up in that cache and silently do nothing
// when it is absent; compilers routinely strip unused uniforms. Setters
// upload to whichever program is current, so Bind first.
type Program struct {
	gl       GL
	id       ProgramID
	vertex   string
	fragment string

	declarations []UniformDeclaration
	uniforms     map[string]UniformLocation
}

// NewProgram compiles both stages, links them and resolves the uniform
// cache. A failure in any step leaves no native objects behind and returns
// an error; compile and link failures are *CompileError.
func NewProgram(gl GL, vertexSource, fragmentSource string) (*Program, error) {
	p := &Program{
		gl:       gl,
		vertex:   withVersion(gl.ShadingLanguageHeader(), vertexSource),
		fragment: withVersion(gl.ShadingLanguageHeader(), fragmentSource),
		uniforms: make(map[string]UniformLocation),
	}

	p.id = gl.CreateProgram()
	if p.id == 0 {
		return nil, ErrCreateProgram
	}

	vs, err := p.compileStage(VertexStage, p.vertex)
	if err != nil {
		gl.DeleteProgram(p.id)
		return nil, err
	}
	fs, err := p.compileStage(FragmentStage, p.fragment)
	if err != nil {
		gl.DeleteShader(vs)
		gl.DeleteProgram(p.id)
		return nil, err
	}

	if err := p.link(vs, fs); err != nil {
		return nil, err
	}

	p.resolveUniforms()
	logger.Debug("program linked", "program", p.id, "uniforms", len(p.uniforms))
	return p, nil
}

func (p *Program) compileStage(stage ShaderStage, source string) (ShaderID, error) {
	shader := p.gl.CreateShader(stage.GLEnum())
	if shader == 0 {
		return 0, fmt.Errorf("%s shader: %w", stage, ErrCreateShader)
	}
	p.gl.ShaderSource(shader, source)
	p.gl.CompileShader(shader)

	if p.gl.GetShaderParameter(shader, CompileStatus) == False {
		log := p.gl.GetShaderInfoLog(shader)
		p.gl.DeleteShader(shader)
		return 0, &CompileError{Stage: stage.String(), Log: log}
	}
	return shader, nil
}

func (p *Program) link(vs, fs ShaderID) error {
	p.gl.AttachShader(p.id, vs)
	p.gl.AttachShader(p.id, fs)
	p.gl.LinkProgram(p.id)
	p.gl.ValidateProgram(p.id)

	// The stages live on inside the linked program.
	p.gl.DetachShader(p.id, vs)
	p.gl.DeleteShader(vs)
	p.gl.DetachShader(p.id, fs)
	p.gl.DeleteShader(fs)

	if p.gl.GetProgramParameter(p.id, LinkStatus) == False {
		log := p.gl.GetProgramInfoLog(p.id)
		p.gl.DeleteProgram(p.id)
		p.id = 0
		return &CompileError{Stage: "link", Log: log}
	}
	return nil
}

// resolveUniforms scans each stage's source and caches the locations the
// linked program reports. Names the program does not know are skipped.
func (p *Program) resolveUniforms() {
	for _, src := range [...]string{p.vertex, p.fragment} {
		for _, d := range ScanUniforms(src) {
			p.declarations = append(p.declarations, d)
			loc := p.gl.GetUniformLocation(p.id, d.Name)
			if loc < 0 {
				continue
			}
			p.uniforms[d.Name] = loc
		}
	}
}

// withVersion prepends header unless source already starts with a
// #version directive.
func withVersion(header, source string) string {
	if header == "" || strings.HasPrefix(strings.TrimLeft(source, " \t\r\n"), "#version") {
		return source
	}
	return header + "\n" + source
}

// ID returns the native program name.
func (p *Program) ID() ProgramID { return p.id }

// VertexSource returns the vertex stage source as compiled.
func (p *Program) VertexSource() string { return p.vertex }

// FragmentSource returns the fragment stage source as compiled.
func (p *Program) FragmentSource() string { return p.fragment }

// Bind makes this the current program.
func (p *Program) Bind() { p.gl.UseProgram(p.id) }

// Unbind clears the current program.
func (p *Program) Unbind() { p.gl.UseProgram(0) }

// Delete releases the native program. The program must not be used afterwards.
func (p *Program) Delete() {
	if p.id != 0 {
		p.gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// Declarations returns every uniform declaration scanned from both stages,
// whether or not it resolved to a location.
func (p *Program) Declarations() []UniformDeclaration {
	out := make([]UniformDeclaration, len(p.declarations))
	copy(out, p.declarations)
	return out
}

// UniformLocation returns the cached location of name.
func (p *Program) UniformLocation(name string) (UniformLocation, bool) {
	loc, ok := p.uniforms[name]
	return loc, ok
}

// AttribLocation resolves a vertex input by name.
func (p *Program) AttribLocation(name string) (uint32, bool) {
	loc := p.gl.GetAttribLocation(p.id, name)
	if loc < 0 {
		return 0, false
	}
	return uint32(loc), true
}

// SetFloat1 uploads a float.
func (p *Program) SetFloat1(name string, x float32) {
	if loc, ok := p.uniforms[name]; ok {
		p.gl.Uniform1f(loc, x)
	}
}

// SetFloat2 uploads a vec2.
func (p *Program) SetFloat2(name string, x, y float32) {
	if loc, ok := p.uniforms[name]; ok {
		p.gl.Uniform2f(loc, x, y)
	}
}

// SetFloat3 uploads a vec3.
func (p *Program) SetFloat3(name string, x, y, z float32) {
	if loc, ok := p.uniforms[name]; ok {
		p.gl.Uniform3f(loc, x, y, z)
	}
}

// SetFloat4 uploads a vec4.
func (p *Program) SetFloat4(name string, x, y, z, w float32) {
	if loc, ok := p.uniforms[name]; ok {
		p.gl.Uniform4f(loc, x, y, z, w)
	}
}

// SetFloatVec1 uploads an array of floats.
func (p *Program) SetFloatVec1(name string, v []float32) {
	if loc, ok := p.uniforms[name]; ok {
		p.gl.Uniform1fv(loc, v)
	}
}

// SetFloatVec2 uploads an array of vec2, packed.
func (p *Program) SetFloatVec2(name string, v []float32) {
	if loc, ok := p.uniforms[name]; ok {
		p.gl.Uniform2fv(loc, v)
	}
}

// SetFloatVec3 uploads an array of vec3, packed.
func (p *Program) SetFloatVec3(name string, v []float32) {
	if loc, ok := p.uniforms[name]; ok {
		p.gl.Uniform3fv(loc, v)
	}
}

// SetFloatVec4 uploads an array of vec4, packed.
func (p *Program) SetFloatVec4(name string, v []float32) {
	if loc, ok := p.uniforms[name]; ok {
		p.gl.Uniform4fv(loc, v)
	}
}

// SetInt1 uploads an int. Sampler units are set this way.
func (p *Program) SetInt1(name string, x int32) {
	if loc, ok := p.uniforms[name]; ok {
		p.gl.Uniform1i(loc, x)
	}
}

// SetInt2 uploads an ivec2.
func (p *Program) SetInt2(name string, x, y int32) {
	if loc, ok := p.uniforms[name]; ok {
		p.gl.Uniform2i(loc, x, y)
	}
}

// SetInt3 uploads an ivec3.
func (p *Program) SetInt3(name string, x, y, z int32) {
	if loc, ok := p.uniforms[name]; ok {
		p.gl.Uniform3i(loc, x, y, z)
	}
}

// SetInt4 uploads an ivec4.
func (p *Program) SetInt4(name string, x, y, z, w int32) {
	if loc, ok := p.uniforms[name]; ok {
		p.gl.Uniform4i(loc, x, y, z, w)
	}
}

// SetIntVec1 uploads an array of ints.
func (p *Program) SetIntVec1(name string, v []int32) {
	if loc, ok := p.uniforms[name]; ok {
		p.gl.Uniform1iv(loc, v)
	}
}

// SetIntVec2 uploads an array of ivec2, packed.
func (p *Program) SetIntVec2(name string, v []int32) {
	if loc, ok := p.uniforms[name]; ok {
		p.gl.Uniform2iv(loc, v)
	}
}

// SetIntVec3 uploads an array of ivec3, packed.
func (p *Program) SetIntVec3(name string, v []int32) {
	if loc, ok := p.uniforms[name]; ok {
		p.gl.Uniform3iv(loc, v)
	}
}

// SetIntVec4 uploads an array of ivec4, packed.
func (p *Program) SetIntVec4(name string, v []int32) {
	if loc, ok := p.uniforms[name]; ok {
		p.gl.Uniform4iv(loc, v)
	}
}

// SetUint1 uploads a uint.
func (p *Program) SetUint1(name string, x uint32) {
	if loc, ok := p.uniforms[name]; ok {
		p.gl.Uniform1ui(loc, x)
	}
}

// SetUint2 uploads a uvec2.
func (p *Program) SetUint2(name string, x, y uint32) {
	if loc, ok := p.uniforms[name]; ok {
		p.gl.Uniform2ui(loc, x, y)
	}
}

// SetUint3 uploads a uvec3.
func (p *Program) SetUint3(name string, x, y, z uint32) {
	if loc, ok := p.uniforms[name]; ok {
		p.gl.Uniform3ui(loc, x, y, z)
	}
}

// SetUint4 uploads a uvec4.
func (p *Program) SetUint4(name string, x, y, z, w uint32) {
	if loc, ok := p.uniforms[name]; ok {
		p.gl.Uniform4ui(loc, x, y, z, w)
	}
}

// SetMatrix2 uploads a column-major 2x2 matrix.
func (p *Program) SetMatrix2(name string, m mgl32.Mat2) {
	if loc, ok := p.uniforms[name]; ok {
		p.gl.UniformMatrix2fv(loc, false, m[:])
	}
}

// SetMatrix3 uploads a column-major 3x3 matrix.
func (p *Program) SetMatrix3(name string, m mgl32.Mat3) {
	if loc, ok := p.uniforms[name]; ok {
		p.gl.UniformMatrix3fv(loc, false, m[:])
	}
}

// SetMatrix4 uploads a column-major 4x4 matrix.
func (p *Program) SetMatrix4(name string, m mgl32.Mat4) {
	if loc, ok := p.uniforms[name]; ok {
		p.gl.UniformMatrix4fv(loc, false, m[:])
	}
}
