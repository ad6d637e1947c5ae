package glkit

import (
	"fmt"
	"slices"
	"strings"
)

// fakeGL records every call as a short string and serves attribute and
// uniform locations from maps. Object names are handed out from 1 upwards
// unless failCreate is set.
type fakeGL struct {
	calls []string

	attribs  map[string]int32
	uniforms map[string]UniformLocation

	compileLog map[Enum]string // stage -> info log of a failing compile
	linkLog    string          // non-empty fails the link
	failCreate bool

	next       uint32
	shaderType map[ShaderID]Enum
	sources    map[ShaderID]string
	buffers    map[BufferID][]byte
	boundBuf   map[Enum]BufferID
	textures   map[TextureID]texImage
	bound      TextureID
}

type texImage struct {
	width, height int32
	pixels        []byte
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		attribs:    make(map[string]int32),
		uniforms:   make(map[string]UniformLocation),
		compileLog: make(map[Enum]string),
		shaderType: make(map[ShaderID]Enum),
		sources:    make(map[ShaderID]string),
		buffers:    make(map[BufferID][]byte),
		boundBuf:   make(map[Enum]BufferID),
		textures:   make(map[TextureID]texImage),
	}
}

func (f *fakeGL) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeGL) reset() { f.calls = nil }

// with returns the recorded calls starting with prefix.
func (f *fakeGL) with(prefix string) []string {
	var out []string
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

// only returns the recorded calls matching any of prefixes, in call order.
func (f *fakeGL) only(prefixes ...string) []string {
	var out []string
	for _, c := range f.calls {
		for _, p := range prefixes {
			if strings.HasPrefix(c, p) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

func (f *fakeGL) called(call string) bool { return slices.Contains(f.calls, call) }

func (f *fakeGL) name() uint32 {
	if f.failCreate {
		return 0
	}
	f.next++
	return f.next
}

func (f *fakeGL) ShadingLanguageHeader() string { return "#version 300 es" }

func (f *fakeGL) CreateBuffer() BufferID {
	id := BufferID(f.name())
	f.record("CreateBuffer %d", id)
	return id
}

func (f *fakeGL) BindBuffer(target Enum, buffer BufferID) {
	f.boundBuf[target] = buffer
	f.record("BindBuffer 0x%x %d", uint32(target), buffer)
}

func (f *fakeGL) BufferData(target Enum, data []byte, usage Enum) {
	f.record("BufferData 0x%x %d", uint32(target), len(data))
	f.buffers[f.boundBuf[target]] = slices.Clone(data)
}

func (f *fakeGL) DeleteBuffer(buffer BufferID) { f.record("DeleteBuffer %d", buffer) }

func (f *fakeGL) CreateVertexArray() VertexArrayID {
	id := VertexArrayID(f.name())
	f.record("CreateVertexArray %d", id)
	return id
}

func (f *fakeGL) BindVertexArray(vao VertexArrayID)   { f.record("BindVertexArray %d", vao) }
func (f *fakeGL) DeleteVertexArray(vao VertexArrayID) { f.record("DeleteVertexArray %d", vao) }
func (f *fakeGL) EnableVertexAttribArray(index uint32) {
	f.record("EnableVertexAttribArray %d", index)
}

func (f *fakeGL) VertexAttribPointer(index uint32, size int32, xtype Enum, normalized bool, stride int32, offset int) {
	f.record("VertexAttribPointer %d %d 0x%x %t %d %d", index, size, uint32(xtype), normalized, stride, offset)
}

func (f *fakeGL) VertexAttribDivisor(index, divisor uint32) {
	f.record("VertexAttribDivisor %d %d", index, divisor)
}

func (f *fakeGL) CreateShader(stage Enum) ShaderID {
	id := ShaderID(f.name())
	f.shaderType[id] = stage
	f.record("CreateShader 0x%x %d", uint32(stage), id)
	return id
}

func (f *fakeGL) ShaderSource(shader ShaderID, source string) {
	f.sources[shader] = source
	f.record("ShaderSource %d", shader)
}

func (f *fakeGL) CompileShader(shader ShaderID) { f.record("CompileShader %d", shader) }

func (f *fakeGL) GetShaderParameter(shader ShaderID, pname Enum) int32 {
	if _, fail := f.compileLog[f.shaderType[shader]]; fail && pname == CompileStatus {
		return int32(False)
	}
	return int32(True)
}

func (f *fakeGL) GetShaderInfoLog(shader ShaderID) string { return f.compileLog[f.shaderType[shader]] }
func (f *fakeGL) DeleteShader(shader ShaderID)            { f.record("DeleteShader %d", shader) }

func (f *fakeGL) CreateProgram() ProgramID {
	id := ProgramID(f.name())
	f.record("CreateProgram %d", id)
	return id
}

func (f *fakeGL) AttachShader(program ProgramID, shader ShaderID) {
	f.record("AttachShader %d %d", program, shader)
}

func (f *fakeGL) DetachShader(program ProgramID, shader ShaderID) {
	f.record("DetachShader %d %d", program, shader)
}

func (f *fakeGL) LinkProgram(program ProgramID)     { f.record("LinkProgram %d", program) }
func (f *fakeGL) ValidateProgram(program ProgramID) { f.record("ValidateProgram %d", program) }

func (f *fakeGL) GetProgramParameter(program ProgramID, pname Enum) int32 {
	if f.linkLog != "" && pname == LinkStatus {
		return int32(False)
	}
	return int32(True)
}

func (f *fakeGL) GetProgramInfoLog(program ProgramID) string { return f.linkLog }
func (f *fakeGL) UseProgram(program ProgramID)               { f.record("UseProgram %d", program) }
func (f *fakeGL) DeleteProgram(program ProgramID)            { f.record("DeleteProgram %d", program) }

func (f *fakeGL) GetAttribLocation(program ProgramID, name string) int32 {
	if loc, ok := f.attribs[name]; ok {
		return loc
	}
	return -1
}

func (f *fakeGL) GetUniformLocation(program ProgramID, name string) UniformLocation {
	f.record("GetUniformLocation %s", name)
	if loc, ok := f.uniforms[name]; ok {
		return loc
	}
	return NoUniform
}

func (f *fakeGL) Uniform1f(loc UniformLocation, v0 float32) { f.record("Uniform1f %d %v", loc, v0) }
func (f *fakeGL) Uniform2f(loc UniformLocation, v0, v1 float32) {
	f.record("Uniform2f %d %v %v", loc, v0, v1)
}
func (f *fakeGL) Uniform3f(loc UniformLocation, v0, v1, v2 float32) {
	f.record("Uniform3f %d %v %v %v", loc, v0, v1, v2)
}
func (f *fakeGL) Uniform4f(loc UniformLocation, v0, v1, v2, v3 float32) {
	f.record("Uniform4f %d %v %v %v %v", loc, v0, v1, v2, v3)
}
func (f *fakeGL) Uniform1fv(loc UniformLocation, v []float32) { f.record("Uniform1fv %d %v", loc, v) }
func (f *fakeGL) Uniform2fv(loc UniformLocation, v []float32) { f.record("Uniform2fv %d %v", loc, v) }
func (f *fakeGL) Uniform3fv(loc UniformLocation, v []float32) { f.record("Uniform3fv %d %v", loc, v) }
func (f *fakeGL) Uniform4fv(loc UniformLocation, v []float32) { f.record("Uniform4fv %d %v", loc, v) }
func (f *fakeGL) Uniform1i(loc UniformLocation, v0 int32)     { f.record("Uniform1i %d %v", loc, v0) }
func (f *fakeGL) Uniform2i(loc UniformLocation, v0, v1 int32) {
	f.record("Uniform2i %d %v %v", loc, v0, v1)
}
func (f *fakeGL) Uniform3i(loc UniformLocation, v0, v1, v2 int32) {
	f.record("Uniform3i %d %v %v %v", loc, v0, v1, v2)
}
func (f *fakeGL) Uniform4i(loc UniformLocation, v0, v1, v2, v3 int32) {
	f.record("Uniform4i %d %v %v %v %v", loc, v0, v1, v2, v3)
}
func (f *fakeGL) Uniform1iv(loc UniformLocation, v []int32) { f.record("Uniform1iv %d %v", loc, v) }
func (f *fakeGL) Uniform2iv(loc UniformLocation, v []int32) { f.record("Uniform2iv %d %v", loc, v) }
func (f *fakeGL) Uniform3iv(loc UniformLocation, v []int32) { f.record("Uniform3iv %d %v", loc, v) }
func (f *fakeGL) Uniform4iv(loc UniformLocation, v []int32) { f.record("Uniform4iv %d %v", loc, v) }
func (f *fakeGL) Uniform1ui(loc UniformLocation, v0 uint32) { f.record("Uniform1ui %d %v", loc, v0) }
func (f *fakeGL) Uniform2ui(loc UniformLocation, v0, v1 uint32) {
	f.record("Uniform2ui %d %v %v", loc, v0, v1)
}
func (f *fakeGL) Uniform3ui(loc UniformLocation, v0, v1, v2 uint32) {
	f.record("Uniform3ui %d %v %v %v", loc, v0, v1, v2)
}
func (f *fakeGL) Uniform4ui(loc UniformLocation, v0, v1, v2, v3 uint32) {
	f.record("Uniform4ui %d %v %v %v %v", loc, v0, v1, v2, v3)
}
func (f *fakeGL) UniformMatrix2fv(loc UniformLocation, transpose bool, v []float32) {
	f.record("UniformMatrix2fv %d %t %v", loc, transpose, v)
}
func (f *fakeGL) UniformMatrix3fv(loc UniformLocation, transpose bool, v []float32) {
	f.record("UniformMatrix3fv %d %t %v", loc, transpose, v)
}
func (f *fakeGL) UniformMatrix4fv(loc UniformLocation, transpose bool, v []float32) {
	f.record("UniformMatrix4fv %d %t %v", loc, transpose, v)
}

func (f *fakeGL) CreateTexture() TextureID {
	id := TextureID(f.name())
	f.record("CreateTexture %d", id)
	return id
}

func (f *fakeGL) ActiveTexture(unit Enum) { f.record("ActiveTexture 0x%x", uint32(unit)) }

func (f *fakeGL) BindTexture(target Enum, texture TextureID) {
	f.bound = texture
	f.record("BindTexture 0x%x %d", uint32(target), texture)
}

func (f *fakeGL) TexParameteri(target, pname Enum, param int32) {
	f.record("TexParameteri 0x%x 0x%x 0x%x", uint32(target), uint32(pname), param)
}

func (f *fakeGL) TexImage2D(target Enum, level, internalFormat, width, height, border int32, format, xtype Enum, pixels []byte) {
	f.textures[f.bound] = texImage{width: width, height: height, pixels: slices.Clone(pixels)}
	f.record("TexImage2D %d %dx%d", f.bound, width, height)
}

func (f *fakeGL) DeleteTexture(texture TextureID) { f.record("DeleteTexture %d", texture) }

func (f *fakeGL) Enable(capability Enum)  { f.record("Enable 0x%x", uint32(capability)) }
func (f *fakeGL) Disable(capability Enum) { f.record("Disable 0x%x", uint32(capability)) }
func (f *fakeGL) DepthFunc(fn Enum)       { f.record("DepthFunc 0x%x", uint32(fn)) }
func (f *fakeGL) CullFace(mode Enum)      { f.record("CullFace 0x%x", uint32(mode)) }
func (f *fakeGL) ClearColor(r, g, b, a float32) {
	f.record("ClearColor %v %v %v %v", r, g, b, a)
}
func (f *fakeGL) ClearDepth(depth float32) { f.record("ClearDepth %v", depth) }
func (f *fakeGL) Clear(mask Enum)          { f.record("Clear 0x%x", uint32(mask)) }
func (f *fakeGL) Viewport(x, y, width, height int32) {
	f.record("Viewport %d %d %d %d", x, y, width, height)
}

func (f *fakeGL) DrawElements(mode Enum, count int32, xtype Enum, offset int) {
	f.record("DrawElements 0x%x %d 0x%x %d", uint32(mode), count, uint32(xtype), offset)
}

func (f *fakeGL) DrawElementsInstanced(mode Enum, count int32, xtype Enum, offset int, instances int32) {
	f.record("DrawElementsInstanced 0x%x %d 0x%x %d %d", uint32(mode), count, uint32(xtype), offset, instances)
}

var _ GL = (*fakeGL)(nil)
