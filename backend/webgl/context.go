//go:build js && wasm

// Package webgl implements glkit.GL on a browser WebGL2 rendering context.
package webgl

import (
	"errors"
	"syscall/js"
	"unsafe"

	"github.com/go-theft-auto/glkit"
)

// ErrNoWebGL2 is returned when the canvas cannot provide a WebGL2 context.
var ErrNoWebGL2 = errors.New("webgl: could not get a webgl2 context")

// Context implements glkit.GL on a WebGL2RenderingContext.
//
// WebGL hands out JavaScript objects rather than integer names; Context keeps
// them in a table and gives glkit the table index. Index 0 is never used so
// that a zero name still means "no object".
type Context struct {
	gl      js.Value
	objects []js.Value
	free    []uint32

	// uniform locations are objects too; they live until the program is deleted
	uniforms        []js.Value
	programUniforms map[uint32][]int32
}

var _ glkit.GL = (*Context)(nil)

// NewContext gets a WebGL2 context from canvas.
func NewContext(canvas js.Value) (*Context, error) {
	gl := canvas.Call("getContext", "webgl2")
	if gl.IsNull() || gl.IsUndefined() {
		return nil, ErrNoWebGL2
	}
	return &Context{
		gl:              gl,
		objects:         []js.Value{js.Null()},
		programUniforms: make(map[uint32][]int32),
	}, nil
}

func (c *Context) put(v js.Value) uint32 {
	if v.IsNull() || v.IsUndefined() {
		return 0
	}
	if n := len(c.free); n > 0 {
		id := c.free[n-1]
		c.free = c.free[:n-1]
		c.objects[id] = v
		return id
	}
	c.objects = append(c.objects, v)
	return uint32(len(c.objects) - 1)
}

func (c *Context) get(id uint32) js.Value {
	if id == 0 || int(id) >= len(c.objects) {
		return js.Null()
	}
	return c.objects[id]
}

func (c *Context) release(id uint32) js.Value {
	v := c.get(id)
	if id != 0 && int(id) < len(c.objects) {
		c.objects[id] = js.Null()
		c.free = append(c.free, id)
	}
	return v
}

func (c *Context) uniform(loc glkit.UniformLocation) js.Value {
	if loc < 0 || int(loc) >= len(c.uniforms) {
		return js.Null()
	}
	return c.uniforms[loc]
}

// ShadingLanguageHeader returns the GLSL ES 3.00 version line.
func (c *Context) ShadingLanguageHeader() string { return "#version 300 es" }

func (c *Context) CreateBuffer() glkit.BufferID {
	return glkit.BufferID(c.put(c.gl.Call("createBuffer")))
}

func (c *Context) BindBuffer(target glkit.Enum, buffer glkit.BufferID) {
	c.gl.Call("bindBuffer", int(target), c.get(uint32(buffer)))
}

func (c *Context) BufferData(target glkit.Enum, data []byte, usage glkit.Enum) {
	c.gl.Call("bufferData", int(target), bytesToJS(data), int(usage))
}

func (c *Context) DeleteBuffer(buffer glkit.BufferID) {
	c.gl.Call("deleteBuffer", c.release(uint32(buffer)))
}

func (c *Context) CreateVertexArray() glkit.VertexArrayID {
	return glkit.VertexArrayID(c.put(c.gl.Call("createVertexArray")))
}

func (c *Context) BindVertexArray(vao glkit.VertexArrayID) {
	c.gl.Call("bindVertexArray", c.get(uint32(vao)))
}

func (c *Context) DeleteVertexArray(vao glkit.VertexArrayID) {
	c.gl.Call("deleteVertexArray", c.release(uint32(vao)))
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	c.gl.Call("enableVertexAttribArray", index)
}

func (c *Context) VertexAttribPointer(index uint32, size int32, xtype glkit.Enum, normalized bool, stride int32, offset int) {
	c.gl.Call("vertexAttribPointer", index, size, int(xtype), normalized, stride, offset)
}

func (c *Context) VertexAttribDivisor(index, divisor uint32) {
	c.gl.Call("vertexAttribDivisor", index, divisor)
}

func (c *Context) CreateShader(stage glkit.Enum) glkit.ShaderID {
	return glkit.ShaderID(c.put(c.gl.Call("createShader", int(stage))))
}

func (c *Context) ShaderSource(shader glkit.ShaderID, source string) {
	c.gl.Call("shaderSource", c.get(uint32(shader)), source)
}

func (c *Context) CompileShader(shader glkit.ShaderID) {
	c.gl.Call("compileShader", c.get(uint32(shader)))
}

func (c *Context) GetShaderParameter(shader glkit.ShaderID, pname glkit.Enum) int32 {
	return paramToInt(c.gl.Call("getShaderParameter", c.get(uint32(shader)), int(pname)))
}

func (c *Context) GetShaderInfoLog(shader glkit.ShaderID) string {
	return c.gl.Call("getShaderInfoLog", c.get(uint32(shader))).String()
}

func (c *Context) DeleteShader(shader glkit.ShaderID) {
	c.gl.Call("deleteShader", c.release(uint32(shader)))
}

func (c *Context) CreateProgram() glkit.ProgramID {
	return glkit.ProgramID(c.put(c.gl.Call("createProgram")))
}

func (c *Context) AttachShader(program glkit.ProgramID, shader glkit.ShaderID) {
	c.gl.Call("attachShader", c.get(uint32(program)), c.get(uint32(shader)))
}

func (c *Context) DetachShader(program glkit.ProgramID, shader glkit.ShaderID) {
	c.gl.Call("detachShader", c.get(uint32(program)), c.get(uint32(shader)))
}

func (c *Context) LinkProgram(program glkit.ProgramID) {
	c.gl.Call("linkProgram", c.get(uint32(program)))
}

func (c *Context) ValidateProgram(program glkit.ProgramID) {
	c.gl.Call("validateProgram", c.get(uint32(program)))
}

func (c *Context) GetProgramParameter(program glkit.ProgramID, pname glkit.Enum) int32 {
	return paramToInt(c.gl.Call("getProgramParameter", c.get(uint32(program)), int(pname)))
}

func (c *Context) GetProgramInfoLog(program glkit.ProgramID) string {
	return c.gl.Call("getProgramInfoLog", c.get(uint32(program))).String()
}

func (c *Context) UseProgram(program glkit.ProgramID) {
	c.gl.Call("useProgram", c.get(uint32(program)))
}

func (c *Context) DeleteProgram(program glkit.ProgramID) {
	for _, loc := range c.programUniforms[uint32(program)] {
		c.uniforms[loc] = js.Null()
	}
	delete(c.programUniforms, uint32(program))
	c.gl.Call("deleteProgram", c.release(uint32(program)))
}

func (c *Context) GetAttribLocation(program glkit.ProgramID, name string) int32 {
	return int32(c.gl.Call("getAttribLocation", c.get(uint32(program)), name).Int())
}

func (c *Context) GetUniformLocation(program glkit.ProgramID, name string) glkit.UniformLocation {
	v := c.gl.Call("getUniformLocation", c.get(uint32(program)), name)
	if v.IsNull() || v.IsUndefined() {
		return glkit.NoUniform
	}
	loc := int32(len(c.uniforms))
	c.uniforms = append(c.uniforms, v)
	c.programUniforms[uint32(program)] = append(c.programUniforms[uint32(program)], loc)
	return glkit.UniformLocation(loc)
}

func (c *Context) Uniform1f(loc glkit.UniformLocation, v0 float32) {
	c.gl.Call("uniform1f", c.uniform(loc), v0)
}

func (c *Context) Uniform2f(loc glkit.UniformLocation, v0, v1 float32) {
	c.gl.Call("uniform2f", c.uniform(loc), v0, v1)
}

func (c *Context) Uniform3f(loc glkit.UniformLocation, v0, v1, v2 float32) {
	c.gl.Call("uniform3f", c.uniform(loc), v0, v1, v2)
}

func (c *Context) Uniform4f(loc glkit.UniformLocation, v0, v1, v2, v3 float32) {
	c.gl.Call("uniform4f", c.uniform(loc), v0, v1, v2, v3)
}

func (c *Context) Uniform1fv(loc glkit.UniformLocation, v []float32) {
	c.gl.Call("uniform1fv", c.uniform(loc), float32sToJS(v))
}

func (c *Context) Uniform2fv(loc glkit.UniformLocation, v []float32) {
	c.gl.Call("uniform2fv", c.uniform(loc), float32sToJS(v))
}

func (c *Context) Uniform3fv(loc glkit.UniformLocation, v []float32) {
	c.gl.Call("uniform3fv", c.uniform(loc), float32sToJS(v))
}

func (c *Context) Uniform4fv(loc glkit.UniformLocation, v []float32) {
	c.gl.Call("uniform4fv", c.uniform(loc), float32sToJS(v))
}

func (c *Context) Uniform1i(loc glkit.UniformLocation, v0 int32) {
	c.gl.Call("uniform1i", c.uniform(loc), v0)
}

func (c *Context) Uniform2i(loc glkit.UniformLocation, v0, v1 int32) {
	c.gl.Call("uniform2i", c.uniform(loc), v0, v1)
}

func (c *Context) Uniform3i(loc glkit.UniformLocation, v0, v1, v2 int32) {
	c.gl.Call("uniform3i", c.uniform(loc), v0, v1, v2)
}

func (c *Context) Uniform4i(loc glkit.UniformLocation, v0, v1, v2, v3 int32) {
	c.gl.Call("uniform4i", c.uniform(loc), v0, v1, v2, v3)
}

func (c *Context) Uniform1iv(loc glkit.UniformLocation, v []int32) {
	c.gl.Call("uniform1iv", c.uniform(loc), int32sToJS(v))
}

func (c *Context) Uniform2iv(loc glkit.UniformLocation, v []int32) {
	c.gl.Call("uniform2iv", c.uniform(loc), int32sToJS(v))
}

func (c *Context) Uniform3iv(loc glkit.UniformLocation, v []int32) {
	c.gl.Call("uniform3iv", c.uniform(loc), int32sToJS(v))
}

func (c *Context) Uniform4iv(loc glkit.UniformLocation, v []int32) {
	c.gl.Call("uniform4iv", c.uniform(loc), int32sToJS(v))
}

func (c *Context) Uniform1ui(loc glkit.UniformLocation, v0 uint32) {
	c.gl.Call("uniform1ui", c.uniform(loc), v0)
}

func (c *Context) Uniform2ui(loc glkit.UniformLocation, v0, v1 uint32) {
	c.gl.Call("uniform2ui", c.uniform(loc), v0, v1)
}

func (c *Context) Uniform3ui(loc glkit.UniformLocation, v0, v1, v2 uint32) {
	c.gl.Call("uniform3ui", c.uniform(loc), v0, v1, v2)
}

func (c *Context) Uniform4ui(loc glkit.UniformLocation, v0, v1, v2, v3 uint32) {
	c.gl.Call("uniform4ui", c.uniform(loc), v0, v1, v2, v3)
}

func (c *Context) UniformMatrix2fv(loc glkit.UniformLocation, transpose bool, v []float32) {
	c.gl.Call("uniformMatrix2fv", c.uniform(loc), transpose, float32sToJS(v))
}

func (c *Context) UniformMatrix3fv(loc glkit.UniformLocation, transpose bool, v []float32) {
	c.gl.Call("uniformMatrix3fv", c.uniform(loc), transpose, float32sToJS(v))
}

func (c *Context) UniformMatrix4fv(loc glkit.UniformLocation, transpose bool, v []float32) {
	c.gl.Call("uniformMatrix4fv", c.uniform(loc), transpose, float32sToJS(v))
}

func (c *Context) CreateTexture() glkit.TextureID {
	return glkit.TextureID(c.put(c.gl.Call("createTexture")))
}

func (c *Context) ActiveTexture(unit glkit.Enum) {
	c.gl.Call("activeTexture", int(unit))
}

func (c *Context) BindTexture(target glkit.Enum, texture glkit.TextureID) {
	c.gl.Call("bindTexture", int(target), c.get(uint32(texture)))
}

func (c *Context) TexParameteri(target, pname glkit.Enum, param int32) {
	c.gl.Call("texParameteri", int(target), int(pname), param)
}

func (c *Context) TexImage2D(target glkit.Enum, level, internalFormat, width, height, border int32, format, xtype glkit.Enum, pixels []byte) {
	c.gl.Call("texImage2D", int(target), level, internalFormat, width, height, border,
		int(format), int(xtype), bytesToJS(pixels))
}

func (c *Context) DeleteTexture(texture glkit.TextureID) {
	c.gl.Call("deleteTexture", c.release(uint32(texture)))
}

func (c *Context) Enable(capability glkit.Enum)  { c.gl.Call("enable", int(capability)) }
func (c *Context) Disable(capability glkit.Enum) { c.gl.Call("disable", int(capability)) }
func (c *Context) DepthFunc(fn glkit.Enum)       { c.gl.Call("depthFunc", int(fn)) }
func (c *Context) CullFace(mode glkit.Enum)      { c.gl.Call("cullFace", int(mode)) }

func (c *Context) ClearColor(r, g, b, a float32) {
	c.gl.Call("clearColor", r, g, b, a)
}

func (c *Context) ClearDepth(depth float32) {
	c.gl.Call("clearDepth", depth)
}

func (c *Context) Clear(mask glkit.Enum) {
	c.gl.Call("clear", int(mask))
}

func (c *Context) Viewport(x, y, width, height int32) {
	c.gl.Call("viewport", x, y, width, height)
}

func (c *Context) DrawElements(mode glkit.Enum, count int32, xtype glkit.Enum, offset int) {
	c.gl.Call("drawElements", int(mode), count, int(xtype), offset)
}

func (c *Context) DrawElementsInstanced(mode glkit.Enum, count int32, xtype glkit.Enum, offset int, instances int32) {
	c.gl.Call("drawElementsInstanced", int(mode), count, int(xtype), offset, instances)
}

// paramToInt converts a getXParameter result (boolean or number) to an int.
func paramToInt(v js.Value) int32 {
	switch v.Type() {
	case js.TypeBoolean:
		if v.Bool() {
			return glkit.True
		}
		return glkit.False
	case js.TypeNumber:
		return int32(v.Int())
	}
	return glkit.False
}

func bytesToJS(b []byte) js.Value {
	arr := js.Global().Get("Uint8Array").New(len(b))
	if len(b) > 0 {
		js.CopyBytesToJS(arr, b)
	}
	return arr
}

func float32sToJS(v []float32) js.Value {
	var b []byte
	if len(v) > 0 {
		b = unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*4)
	}
	return js.Global().Get("Float32Array").New(bytesToJS(b).Get("buffer"))
}

func int32sToJS(v []int32) js.Value {
	var b []byte
	if len(v) > 0 {
		b = unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*4)
	}
	return js.Global().Get("Int32Array").New(bytesToJS(b).Get("buffer"))
}
