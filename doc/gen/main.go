// Command gen renders every demo scene offscreen, captures framebuffer
// pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/glkit"
	"github.com/go-theft-auto/glkit/backend/opengl"
	"github.com/go-theft-auto/glkit/internal/scenes"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// textureTimeout bounds how long a scene waits for its textures.
const textureTimeout = 5 * time.Second

// screenshot defines a single scene screenshot to capture.
type screenshot struct {
	name   string  // filename without extension
	width  int     // viewport width
	height int     // viewport height
	time   float32 // scene time passed to Frame
	camera func(viewport glkit.Viewport) *glkit.Camera
	build  func(gl glkit.GL) (scenes.Scene, error)
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	ctx := opengl.NewContext()
	renderer := glkit.NewRenderer(ctx, glkit.WithClearColor(mgl32.Vec4{0.12, 0.12, 0.14, 1}))

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(ctx, renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(ctx glkit.GL, renderer *glkit.Renderer, s screenshot, outDir string) error {
	sc, err := s.build(ctx)
	if err != nil {
		return err
	}
	defer sc.Delete()

	if grid, ok := sc.(*scenes.Grid); ok && grid.Texture().Source() != "" {
		if err := waitTexture(grid.Texture()); err != nil {
			return err
		}
	}

	viewport := glkit.ViewportFunc(func() (int, int) { return s.width, s.height })
	camera := s.camera(viewport)

	renderer.Resize(s.width, s.height)
	renderer.BeginScene(camera)
	renderer.Clear()
	if err := sc.Frame(renderer, s.time); err != nil {
		return err
	}
	renderer.EndScene()

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// GL rows start at the bottom.
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// waitTexture polls tex until its load finishes. Texture uploads have to
// happen on this thread, so this cannot just block on Done.
func waitTexture(tex *glkit.Texture2D) error {
	deadline := time.Now().Add(textureTimeout)
	for !tex.Update() {
		if time.Now().After(deadline) {
			return fmt.Errorf("texture %s: timed out", tex.Source())
		}
		time.Sleep(10 * time.Millisecond)
	}
	return tex.Err()
}

func buildScreenshots() []screenshot {
	assets := glkit.FSImageLoader{FS: os.DirFS(".")}

	return []screenshot{
		{
			name: "cube", width: 400, height: 400, time: 0.8,
			camera: func(viewport glkit.Viewport) *glkit.Camera {
				return glkit.NewPerspectiveCamera(viewport, 60).SetPosition(mgl32.Vec3{0, 0, 15})
			},
			build: func(gl glkit.GL) (scenes.Scene, error) {
				return scenes.NewCube(gl)
			},
		},
		{
			name: "cube_look_at", width: 400, height: 300, time: 0.8,
			camera: func(viewport glkit.Viewport) *glkit.Camera {
				return glkit.NewPerspectiveCamera(viewport, 60).
					SetPosition(mgl32.Vec3{10, 8, 12}).
					LookAt(mgl32.Ident4())
			},
			build: func(gl glkit.GL) (scenes.Scene, error) {
				return scenes.NewCube(gl)
			},
		},
		{
			name: "grid", width: 400, height: 400,
			camera: func(glkit.Viewport) *glkit.Camera {
				return glkit.NewOrthographicCamera(-5, 5, -5, 5).SetRotation(15)
			},
			build: func(gl glkit.GL) (scenes.Scene, error) {
				cfg := scenes.GridConfig{Columns: 8, Rows: 8, Spacing: 1.1, Texture: "example/tile.png"}
				return scenes.NewGrid(gl, cfg, assets)
			},
		},
		{
			name: "grid_placeholder", width: 400, height: 400,
			camera: func(glkit.Viewport) *glkit.Camera {
				return glkit.NewOrthographicCamera(-3, 3, -3, 3)
			},
			build: func(gl glkit.GL) (scenes.Scene, error) {
				return scenes.NewGrid(gl, scenes.GridConfig{Columns: 4, Rows: 4, Spacing: 1.2}, assets)
			},
		},
	}
}
