// Example renders one of two demo scenes with glkit on desktop OpenGL:
// a rotating, mouse-draggable cube or an instanced grid of textured tiles.
//
//	go run ./example/                            # rotating cube
//	go run ./example/ -scene example/grid.yaml   # textured grid
//
// The scene file is YAML; see example/grid.yaml for every field.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/glkit"
	"github.com/go-theft-auto/glkit/backend/opengl"
	"github.com/go-theft-auto/glkit/internal/scenes"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	scenePath := flag.String("scene", "", "YAML scene file")
	flag.Parse()

	if err := run(*scenePath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(scenePath string) error {
	cfg, err := loadConfig(scenePath)
	if err != nil {
		return err
	}
	glkit.SetVerbose(cfg.Verbose)

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	ctx := opengl.NewContext()
	viewport := opengl.NewWindowViewport(window)

	renderer := glkit.NewRenderer(ctx, glkit.WithClearColor(cfg.clearColor()))
	renderer.Resize(viewport.Size())

	camera := newCamera(cfg.Camera, viewport)
	opengl.NewDragController(window, camera, renderer)

	var sc scenes.Scene
	switch cfg.Scene {
	case "grid":
		sc, err = scenes.NewGrid(ctx, cfg.Grid, glkit.FSImageLoader{FS: os.DirFS(".")})
	default:
		sc, err = scenes.NewCube(ctx)
	}
	if err != nil {
		return fmt.Errorf("build %s scene: %w", cfg.Scene, err)
	}
	defer sc.Delete()

	start := glfw.GetTime()
	for !window.ShouldClose() {
		glfw.PollEvents()

		renderer.BeginScene(camera)
		renderer.Clear()
		if err := sc.Frame(renderer, float32(glfw.GetTime()-start)); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		renderer.EndScene()

		window.SwapBuffers()
	}

	return nil
}

func newCamera(cfg CameraConfig, viewport glkit.Viewport) *glkit.Camera {
	var camera *glkit.Camera
	if cfg.Projection == "orthographic" {
		b := cfg.Bounds
		camera = glkit.NewOrthographicCamera(b[0], b[1], b[2], b[3])
	} else {
		camera = glkit.NewPerspectiveCamera(viewport, cfg.Fov)
	}
	camera.SetRotation(cfg.Rotation)
	camera.SetPosition(cfg.position())
	return camera
}
