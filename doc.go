/*
Package glkit is a thin object layer over an OpenGL / WebGL2 style context:
vertex and index buffers, vertex arrays, shader programs, textures, cameras
and a minimal renderer.

# Host context

Every wrapper takes a GL, the host rendering context. The backend/opengl
package implements it on desktop OpenGL 4.1 and backend/webgl on a browser
WebGL2 context. Binding state behind a GL is global and the last bind wins,
so each wrapper binds what it needs right before using it.

# Quick Start

	gl := opengl.NewContext()
	renderer := glkit.NewRenderer(gl)
	camera := glkit.NewPerspectiveCamera(viewport, 90)

	program, err := glkit.NewProgram(gl, vertexSource, fragmentSource)
	if err != nil {
	    return err
	}

	vb, _ := glkit.NewStaticVertexBuffer(gl)
	vb.SetData(positions)
	vb.Upload()
	vb.SetLayout(glkit.NewVertexLayout(glkit.Vec3("aPosition")))

	ib, _ := glkit.NewIndexBuffer(gl)
	ib.SetData(indices)
	ib.Upload()

	va, _ := glkit.NewVertexArray(gl, program)
	va.AddVertexBuffer(vb)
	va.SetIndexBuffer(ib)

	for !window.ShouldClose() {
	    renderer.BeginScene(camera)
	    renderer.Clear()
	    renderer.Submit(program, va, mgl32.Ident4(), 1)
	    renderer.EndScene()
	    window.SwapBuffers()
	}

# Uniforms

NewProgram scans both shader sources for declarations of the form

	uniform mat4 uMVP;

and caches the location of every one the linked program reports. Only type
names ending in a digit are recognized (vec2..vec4, mat2..mat4, ...); use
GL.GetUniformLocation directly for float or sampler2D uniforms. Setters for
names that are not cached do nothing.

# Errors

Object creation, shader compilation and program linking fail with an error
and leave nothing allocated; compile and link failures are *CompileError and
carry the driver log. Lookups of unknown uniform or attribute names are not
errors.
*/
package glkit
