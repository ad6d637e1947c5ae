package glkit

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testVertexShader = `
in vec2 aPosition;
uniform mat4 uMVP;
uniform mat4 uTransform;
void main() {
	gl_Position = uMVP * uTransform * vec4(aPosition, 0.0, 1.0);
}
`

const testFragmentShader = `
precision mediump float;
uniform sampler2D uImage;
uniform vec4 uTint;
out vec4 fragColor;
void main() {
	fragColor = uTint;
}
`

func TestNewProgram_ResolvesUniforms(t *testing.T) {
	gl := newFakeGL()
	gl.uniforms["uMVP"] = 3
	gl.uniforms["uTint"] = 7

	p, err := NewProgram(gl, testVertexShader, testFragmentShader)
	require.NoError(t, err)

	loc, ok := p.UniformLocation("uMVP")
	assert.True(t, ok)
	assert.Equal(t, UniformLocation(3), loc)

	loc, ok = p.UniformLocation("uTint")
	assert.True(t, ok)
	assert.Equal(t, UniformLocation(7), loc)

	// declared but optimized out
	_, ok = p.UniformLocation("uTransform")
	assert.False(t, ok)

	// never declared in a recognized shape
	_, ok = p.UniformLocation("uImage")
	assert.False(t, ok)

	assert.Equal(t, []UniformDeclaration{
		{Name: "uMVP", Type: "mat4"},
		{Name: "uTransform", Type: "mat4"},
		{Name: "uTint", Type: "vec4"},
	}, p.Declarations())
}

func TestNewProgram_LinkSequence(t *testing.T) {
	gl := newFakeGL()

	p, err := NewProgram(gl, testVertexShader, testFragmentShader)
	require.NoError(t, err)
	require.Equal(t, ProgramID(1), p.ID())

	assert.Equal(t, []string{
		"AttachShader 1 2",
		"AttachShader 1 3",
		"LinkProgram 1",
		"ValidateProgram 1",
		"DetachShader 1 2",
		"DeleteShader 2",
		"DetachShader 1 3",
		"DeleteShader 3",
	}, gl.only("AttachShader", "LinkProgram", "ValidateProgram", "DetachShader", "DeleteShader"))
}

func TestNewProgram_VersionHeader(t *testing.T) {
	gl := newFakeGL()

	p, err := NewProgram(gl, testVertexShader, "#version 410 core\nvoid main() {}")
	require.NoError(t, err)

	assert.Equal(t, "#version 300 es\n"+testVertexShader, p.VertexSource())
	assert.Equal(t, "#version 410 core\nvoid main() {}", p.FragmentSource())
	assert.Equal(t, p.VertexSource(), gl.sources[2])
}

func TestNewProgram_CompileFailure(t *testing.T) {
	gl := newFakeGL()
	gl.compileLog[FragmentShader] = "0:3: syntax error"

	p, err := NewProgram(gl, testVertexShader, testFragmentShader)
	require.Nil(t, p)

	var compileErr *CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, "fragment", compileErr.Stage)
	assert.Equal(t, "0:3: syntax error", compileErr.Log)
	assert.EqualError(t, err, "fragment shader compilation failed: 0:3: syntax error")

	// both stages and the program are released
	assert.ElementsMatch(t, []string{"DeleteShader 2", "DeleteShader 3"}, gl.with("DeleteShader"))
	assert.Equal(t, []string{"DeleteProgram 1"}, gl.with("DeleteProgram"))
	assert.Empty(t, gl.with("LinkProgram"))
}

func TestNewProgram_VertexCompileFailure(t *testing.T) {
	gl := newFakeGL()
	gl.compileLog[VertexShader] = "bad vertex"

	_, err := NewProgram(gl, testVertexShader, testFragmentShader)

	var compileErr *CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, "vertex", compileErr.Stage)
	assert.Equal(t, []string{"DeleteShader 2"}, gl.with("DeleteShader"))
	assert.Empty(t, gl.with("CreateShader 0x8b30"), "fragment stage never created")
}

func TestNewProgram_LinkFailure(t *testing.T) {
	gl := newFakeGL()
	gl.linkLog = "varying mismatch"

	p, err := NewProgram(gl, testVertexShader, testFragmentShader)
	require.Nil(t, p)
	assert.EqualError(t, err, "shader program linking failed: varying mismatch")
	assert.Equal(t, []string{"DeleteProgram 1"}, gl.with("DeleteProgram"))
	assert.Empty(t, gl.with("GetUniformLocation"))
}

func TestNewProgram_CreateFailure(t *testing.T) {
	gl := newFakeGL()
	gl.failCreate = true

	_, err := NewProgram(gl, testVertexShader, testFragmentShader)
	assert.ErrorIs(t, err, ErrCreateProgram)
}

func TestProgram_SetterMissIsSilent(t *testing.T) {
	gl := newFakeGL()
	gl.uniforms["uMVP"] = 0

	p, err := NewProgram(gl, testVertexShader, testFragmentShader)
	require.NoError(t, err)
	gl.reset()

	p.SetFloat1("uMissing", 1)
	p.SetFloat4("uTint", 1, 1, 1, 1)
	p.SetInt1("uMissing", 1)
	p.SetUint2("uMissing", 1, 2)
	p.SetMatrix4("uTransform", mgl32.Ident4())

	assert.Empty(t, gl.calls)
}

func TestProgram_SettersUseCache(t *testing.T) {
	gl := newFakeGL()
	gl.uniforms["uMVP"] = 2
	gl.uniforms["uTint"] = 5

	p, err := NewProgram(gl, testVertexShader, testFragmentShader)
	require.NoError(t, err)
	gl.reset()

	m := mgl32.Translate3D(1, 2, 3)
	p.SetMatrix4("uMVP", m)
	p.SetMatrix4("uMVP", m)
	p.SetFloat4("uTint", 1, 0.5, 0, 1)
	p.SetFloatVec4("uTint", []float32{0, 0, 0, 1})

	assert.Empty(t, gl.with("GetUniformLocation"), "no lookups after link")
	assert.Len(t, gl.with("UniformMatrix4fv 2 false"), 2)
	assert.Equal(t, []string{
		"Uniform4f 5 1 0.5 0 1",
		"Uniform4fv 5 [0 0 0 1]",
	}, gl.with("Uniform4"))
}

func TestProgram_AttribLocation(t *testing.T) {
	gl := newFakeGL()
	gl.attribs["aPosition"] = 2

	p, err := NewProgram(gl, testVertexShader, testFragmentShader)
	require.NoError(t, err)

	loc, ok := p.AttribLocation("aPosition")
	assert.True(t, ok)
	assert.Equal(t, uint32(2), loc)

	_, ok = p.AttribLocation("aNormal")
	assert.False(t, ok)
}

func TestProgram_BindAndDelete(t *testing.T) {
	gl := newFakeGL()
	p, err := NewProgram(gl, testVertexShader, testFragmentShader)
	require.NoError(t, err)
	gl.reset()

	p.Bind()
	p.Unbind()
	p.Delete()
	p.Delete()

	assert.Equal(t, []string{"UseProgram 1", "UseProgram 0", "DeleteProgram 1"}, gl.calls)
}
