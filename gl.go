package glkit

// Native object names. Zero is never a valid object and is what a host
// returns when it could not create one.
type (
	BufferID      uint32
	VertexArrayID uint32
	ShaderID      uint32
	ProgramID     uint32
	TextureID     uint32
)

// UniformLocation is a resolved uniform slot in a linked program.
// NoUniform (-1) means the program has no active uniform of that name.
type UniformLocation int32

// NoUniform is returned by GL.GetUniformLocation for unknown names.
const NoUniform UniformLocation = -1

// GL is the host rendering context every wrapper in this package talks to.
//
// All binding state behind a GL is process-wide and mutable: the last bind
// wins. Wrappers therefore bind what they need right before they use it and
// never assume a previous bind is still in effect. Implementations are not
// safe for concurrent use and must only be called from the thread that owns
// the native context.
type GL interface {
	// ShadingLanguageHeader returns the "#version ..." line the host compiles.
	ShadingLanguageHeader() string

	CreateBuffer() BufferID
	BindBuffer(target Enum, buffer BufferID)
	BufferData(target Enum, data []byte, usage Enum)
	DeleteBuffer(buffer BufferID)

	CreateVertexArray() VertexArrayID
	BindVertexArray(vao VertexArrayID)
	DeleteVertexArray(vao VertexArrayID)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, xtype Enum, normalized bool, stride int32, offset int)
	VertexAttribDivisor(index, divisor uint32)

	CreateShader(stage Enum) ShaderID
	ShaderSource(shader ShaderID, source string)
	CompileShader(shader ShaderID)
	GetShaderParameter(shader ShaderID, pname Enum) int32
	GetShaderInfoLog(shader ShaderID) string
	DeleteShader(shader ShaderID)

	CreateProgram() ProgramID
	AttachShader(program ProgramID, shader ShaderID)
	DetachShader(program ProgramID, shader ShaderID)
	LinkProgram(program ProgramID)
	ValidateProgram(program ProgramID)
	GetProgramParameter(program ProgramID, pname Enum) int32
	GetProgramInfoLog(program ProgramID) string
	UseProgram(program ProgramID)
	DeleteProgram(program ProgramID)
	GetAttribLocation(program ProgramID, name string) int32
	GetUniformLocation(program ProgramID, name string) UniformLocation

	Uniform1f(loc UniformLocation, v0 float32)
	Uniform2f(loc UniformLocation, v0, v1 float32)
	Uniform3f(loc UniformLocation, v0, v1, v2 float32)
	Uniform4f(loc UniformLocation, v0, v1, v2, v3 float32)
	Uniform1fv(loc UniformLocation, v []float32)
	Uniform2fv(loc UniformLocation, v []float32)
	Uniform3fv(loc UniformLocation, v []float32)
	Uniform4fv(loc UniformLocation, v []float32)
	Uniform1i(loc UniformLocation, v0 int32)
	Uniform2i(loc UniformLocation, v0, v1 int32)
	Uniform3i(loc UniformLocation, v0, v1, v2 int32)
	Uniform4i(loc UniformLocation, v0, v1, v2, v3 int32)
	Uniform1iv(loc UniformLocation, v []int32)
	Uniform2iv(loc UniformLocation, v []int32)
	Uniform3iv(loc UniformLocation, v []int32)
	Uniform4iv(loc UniformLocation, v []int32)
	Uniform1ui(loc UniformLocation, v0 uint32)
	Uniform2ui(loc UniformLocation, v0, v1 uint32)
	Uniform3ui(loc UniformLocation, v0, v1, v2 uint32)
	Uniform4ui(loc UniformLocation, v0, v1, v2, v3 uint32)
	UniformMatrix2fv(loc UniformLocation, transpose bool, v []float32)
	UniformMatrix3fv(loc UniformLocation, transpose bool, v []float32)
	UniformMatrix4fv(loc UniformLocation, transpose bool, v []float32)

	CreateTexture() TextureID
	ActiveTexture(unit Enum)
	BindTexture(target Enum, texture TextureID)
	TexParameteri(target, pname Enum, param int32)
	TexImage2D(target Enum, level, internalFormat, width, height, border int32, format, xtype Enum, pixels []byte)
	DeleteTexture(texture TextureID)

	Enable(capability Enum)
	Disable(capability Enum)
	DepthFunc(fn Enum)
	CullFace(mode Enum)
	ClearColor(r, g, b, a float32)
	ClearDepth(depth float32)
	Clear(mask Enum)
	Viewport(x, y, width, height int32)

	DrawElements(mode Enum, count int32, xtype Enum, offset int)
	DrawElementsInstanced(mode Enum, count int32, xtype Enum, offset int, instances int32)
}

// Viewport reports the current drawable size in pixels.
type Viewport interface {
	Size() (width, height int)
}

// ViewportFunc adapts a plain function to Viewport.
type ViewportFunc func() (width, height int)

// Size calls f.
func (f ViewportFunc) Size() (int, int) { return f() }
