//go:build js && wasm

package webgl

import (
	"syscall/js"

	"github.com/go-theft-auto/glkit"
)

// CanvasViewport sizes a canvas to its page layout box times the device
// pixel ratio and reports the resulting drawing-buffer size.
type CanvasViewport struct {
	canvas js.Value
}

var _ glkit.Viewport = (*CanvasViewport)(nil)

// NewCanvasViewport creates a viewport for canvas and sizes it once.
func NewCanvasViewport(canvas js.Value) *CanvasViewport {
	v := &CanvasViewport{canvas: canvas}
	v.Scale()
	return v
}

// Scale resizes the canvas backing store to its CSS size times
// window.devicePixelRatio.
func (v *CanvasViewport) Scale() {
	ratio := js.Global().Get("devicePixelRatio").Float()
	if ratio <= 0 {
		ratio = 1
	}
	w := v.canvas.Get("clientWidth").Float()
	h := v.canvas.Get("clientHeight").Float()
	v.canvas.Set("width", int(w*ratio))
	v.canvas.Set("height", int(h*ratio))
}

// Size returns the canvas drawing-buffer size in pixels.
func (v *CanvasViewport) Size() (width, height int) {
	return v.canvas.Get("width").Int(), v.canvas.Get("height").Int()
}
