// Package opengl provides an OpenGL 4.1 core implementation of glkit.GL.
package opengl

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/glkit"
)

// Context implements glkit.GL on the OpenGL context current on the calling
// thread. gl.Init must have succeeded before any method is called.
type Context struct{}

var _ glkit.GL = (*Context)(nil)

// NewContext returns a GL bound to the current OpenGL context.
func NewContext() *Context {
	return &Context{}
}

// ShadingLanguageHeader returns the GLSL version line for OpenGL 4.1 core.
func (c *Context) ShadingLanguageHeader() string { return "#version 410 core" }

func (c *Context) CreateBuffer() glkit.BufferID {
	var id uint32
	gl.GenBuffers(1, &id)
	return glkit.BufferID(id)
}

func (c *Context) BindBuffer(target glkit.Enum, buffer glkit.BufferID) {
	gl.BindBuffer(uint32(target), uint32(buffer))
}

func (c *Context) BufferData(target glkit.Enum, data []byte, usage glkit.Enum) {
	if len(data) == 0 {
		gl.BufferData(uint32(target), 0, nil, uint32(usage))
		return
	}
	gl.BufferData(uint32(target), len(data), gl.Ptr(data), uint32(usage))
}

func (c *Context) DeleteBuffer(buffer glkit.BufferID) {
	id := uint32(buffer)
	gl.DeleteBuffers(1, &id)
}

func (c *Context) CreateVertexArray() glkit.VertexArrayID {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return glkit.VertexArrayID(id)
}

func (c *Context) BindVertexArray(vao glkit.VertexArrayID) {
	gl.BindVertexArray(uint32(vao))
}

func (c *Context) DeleteVertexArray(vao glkit.VertexArrayID) {
	id := uint32(vao)
	gl.DeleteVertexArrays(1, &id)
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (c *Context) VertexAttribPointer(index uint32, size int32, xtype glkit.Enum, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(index, size, uint32(xtype), normalized, stride, uintptr(offset))
}

func (c *Context) VertexAttribDivisor(index, divisor uint32) {
	gl.VertexAttribDivisor(index, divisor)
}

func (c *Context) CreateShader(stage glkit.Enum) glkit.ShaderID {
	return glkit.ShaderID(gl.CreateShader(uint32(stage)))
}

func (c *Context) ShaderSource(shader glkit.ShaderID, source string) {
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(uint32(shader), 1, csource, nil)
	free()
}

func (c *Context) CompileShader(shader glkit.ShaderID) {
	gl.CompileShader(uint32(shader))
}

func (c *Context) GetShaderParameter(shader glkit.ShaderID, pname glkit.Enum) int32 {
	var v int32
	gl.GetShaderiv(uint32(shader), uint32(pname), &v)
	return v
}

func (c *Context) GetShaderInfoLog(shader glkit.ShaderID) string {
	var logLength int32
	gl.GetShaderiv(uint32(shader), gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(uint32(shader), logLength, nil, &log[0])
	return trimLog(log)
}

func (c *Context) DeleteShader(shader glkit.ShaderID) {
	gl.DeleteShader(uint32(shader))
}

func (c *Context) CreateProgram() glkit.ProgramID {
	return glkit.ProgramID(gl.CreateProgram())
}

func (c *Context) AttachShader(program glkit.ProgramID, shader glkit.ShaderID) {
	gl.AttachShader(uint32(program), uint32(shader))
}

func (c *Context) DetachShader(program glkit.ProgramID, shader glkit.ShaderID) {
	gl.DetachShader(uint32(program), uint32(shader))
}

func (c *Context) LinkProgram(program glkit.ProgramID) {
	gl.LinkProgram(uint32(program))
}

func (c *Context) ValidateProgram(program glkit.ProgramID) {
	gl.ValidateProgram(uint32(program))
}

func (c *Context) GetProgramParameter(program glkit.ProgramID, pname glkit.Enum) int32 {
	var v int32
	gl.GetProgramiv(uint32(program), uint32(pname), &v)
	return v
}

func (c *Context) GetProgramInfoLog(program glkit.ProgramID) string {
	var logLength int32
	gl.GetProgramiv(uint32(program), gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetProgramInfoLog(uint32(program), logLength, nil, &log[0])
	return trimLog(log)
}

func (c *Context) UseProgram(program glkit.ProgramID) {
	gl.UseProgram(uint32(program))
}

func (c *Context) DeleteProgram(program glkit.ProgramID) {
	gl.DeleteProgram(uint32(program))
}

func (c *Context) GetAttribLocation(program glkit.ProgramID, name string) int32 {
	return gl.GetAttribLocation(uint32(program), gl.Str(name+"\x00"))
}

func (c *Context) GetUniformLocation(program glkit.ProgramID, name string) glkit.UniformLocation {
	return glkit.UniformLocation(gl.GetUniformLocation(uint32(program), gl.Str(name+"\x00")))
}

func (c *Context) Uniform1f(loc glkit.UniformLocation, v0 float32) {
	gl.Uniform1f(int32(loc), v0)
}

func (c *Context) Uniform2f(loc glkit.UniformLocation, v0, v1 float32) {
	gl.Uniform2f(int32(loc), v0, v1)
}

func (c *Context) Uniform3f(loc glkit.UniformLocation, v0, v1, v2 float32) {
	gl.Uniform3f(int32(loc), v0, v1, v2)
}

func (c *Context) Uniform4f(loc glkit.UniformLocation, v0, v1, v2, v3 float32) {
	gl.Uniform4f(int32(loc), v0, v1, v2, v3)
}

func (c *Context) Uniform1fv(loc glkit.UniformLocation, v []float32) {
	if n := int32(len(v)); n > 0 {
		gl.Uniform1fv(int32(loc), n, &v[0])
	}
}

func (c *Context) Uniform2fv(loc glkit.UniformLocation, v []float32) {
	if n := int32(len(v) / 2); n > 0 {
		gl.Uniform2fv(int32(loc), n, &v[0])
	}
}

func (c *Context) Uniform3fv(loc glkit.UniformLocation, v []float32) {
	if n := int32(len(v) / 3); n > 0 {
		gl.Uniform3fv(int32(loc), n, &v[0])
	}
}

func (c *Context) Uniform4fv(loc glkit.UniformLocation, v []float32) {
	if n := int32(len(v) / 4); n > 0 {
		gl.Uniform4fv(int32(loc), n, &v[0])
	}
}

func (c *Context) Uniform1i(loc glkit.UniformLocation, v0 int32) {
	gl.Uniform1i(int32(loc), v0)
}

func (c *Context) Uniform2i(loc glkit.UniformLocation, v0, v1 int32) {
	gl.Uniform2i(int32(loc), v0, v1)
}

func (c *Context) Uniform3i(loc glkit.UniformLocation, v0, v1, v2 int32) {
	gl.Uniform3i(int32(loc), v0, v1, v2)
}

func (c *Context) Uniform4i(loc glkit.UniformLocation, v0, v1, v2, v3 int32) {
	gl.Uniform4i(int32(loc), v0, v1, v2, v3)
}

func (c *Context) Uniform1iv(loc glkit.UniformLocation, v []int32) {
	if n := int32(len(v)); n > 0 {
		gl.Uniform1iv(int32(loc), n, &v[0])
	}
}

func (c *Context) Uniform2iv(loc glkit.UniformLocation, v []int32) {
	if n := int32(len(v) / 2); n > 0 {
		gl.Uniform2iv(int32(loc), n, &v[0])
	}
}

func (c *Context) Uniform3iv(loc glkit.UniformLocation, v []int32) {
	if n := int32(len(v) / 3); n > 0 {
		gl.Uniform3iv(int32(loc), n, &v[0])
	}
}

func (c *Context) Uniform4iv(loc glkit.UniformLocation, v []int32) {
	if n := int32(len(v) / 4); n > 0 {
		gl.Uniform4iv(int32(loc), n, &v[0])
	}
}

func (c *Context) Uniform1ui(loc glkit.UniformLocation, v0 uint32) {
	gl.Uniform1ui(int32(loc), v0)
}

func (c *Context) Uniform2ui(loc glkit.UniformLocation, v0, v1 uint32) {
	gl.Uniform2ui(int32(loc), v0, v1)
}

func (c *Context) Uniform3ui(loc glkit.UniformLocation, v0, v1, v2 uint32) {
	gl.Uniform3ui(int32(loc), v0, v1, v2)
}

func (c *Context) Uniform4ui(loc glkit.UniformLocation, v0, v1, v2, v3 uint32) {
	gl.Uniform4ui(int32(loc), v0, v1, v2, v3)
}

func (c *Context) UniformMatrix2fv(loc glkit.UniformLocation, transpose bool, v []float32) {
	if n := int32(len(v) / 4); n > 0 {
		gl.UniformMatrix2fv(int32(loc), n, transpose, &v[0])
	}
}

func (c *Context) UniformMatrix3fv(loc glkit.UniformLocation, transpose bool, v []float32) {
	if n := int32(len(v) / 9); n > 0 {
		gl.UniformMatrix3fv(int32(loc), n, transpose, &v[0])
	}
}

func (c *Context) UniformMatrix4fv(loc glkit.UniformLocation, transpose bool, v []float32) {
	if n := int32(len(v) / 16); n > 0 {
		gl.UniformMatrix4fv(int32(loc), n, transpose, &v[0])
	}
}

func (c *Context) CreateTexture() glkit.TextureID {
	var id uint32
	gl.GenTextures(1, &id)
	return glkit.TextureID(id)
}

func (c *Context) ActiveTexture(unit glkit.Enum) {
	gl.ActiveTexture(uint32(unit))
}

func (c *Context) BindTexture(target glkit.Enum, texture glkit.TextureID) {
	gl.BindTexture(uint32(target), uint32(texture))
}

func (c *Context) TexParameteri(target, pname glkit.Enum, param int32) {
	gl.TexParameteri(uint32(target), uint32(pname), param)
}

func (c *Context) TexImage2D(target glkit.Enum, level, internalFormat, width, height, border int32, format, xtype glkit.Enum, pixels []byte) {
	var ptr unsafe.Pointer
	if len(pixels) > 0 {
		ptr = gl.Ptr(pixels)
	}
	gl.TexImage2D(uint32(target), level, internalFormat, width, height, border, uint32(format), uint32(xtype), ptr)
}

func (c *Context) DeleteTexture(texture glkit.TextureID) {
	id := uint32(texture)
	gl.DeleteTextures(1, &id)
}

func (c *Context) Enable(capability glkit.Enum)  { gl.Enable(uint32(capability)) }
func (c *Context) Disable(capability glkit.Enum) { gl.Disable(uint32(capability)) }
func (c *Context) DepthFunc(fn glkit.Enum)       { gl.DepthFunc(uint32(fn)) }
func (c *Context) CullFace(mode glkit.Enum)      { gl.CullFace(uint32(mode)) }

func (c *Context) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (c *Context) ClearDepth(depth float32) {
	gl.ClearDepth(float64(depth))
}

func (c *Context) Clear(mask glkit.Enum) {
	gl.Clear(uint32(mask))
}

func (c *Context) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (c *Context) DrawElements(mode glkit.Enum, count int32, xtype glkit.Enum, offset int) {
	gl.DrawElements(uint32(mode), count, uint32(xtype), gl.PtrOffset(offset))
}

func (c *Context) DrawElementsInstanced(mode glkit.Enum, count int32, xtype glkit.Enum, offset int, instances int32) {
	gl.DrawElementsInstanced(uint32(mode), count, uint32(xtype), gl.PtrOffset(offset), instances)
}

// trimLog drops the trailing NULs GL writes after an info log.
func trimLog(log []byte) string {
	return strings.TrimRight(string(log), "\x00")
}
