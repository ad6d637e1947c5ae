package glkit

import (
	"context"
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/draw"
)

// placeholderPixel is shown until a texture's image has been uploaded.
var placeholderPixel = []byte{255, 0, 255, 255}

// TextureOption configures a Texture2D.
type TextureOption func(*Texture2D)

// WithFilter sets the minification and magnification filters used for the
// loaded image. The default is Nearest for both.
func WithFilter(minFilter, magFilter Enum) TextureOption {
	return func(t *Texture2D) {
		t.minFilter = minFilter
		t.magFilter = magFilter
	}
}

// WithFlipY controls whether image rows are flipped so that texture
// coordinate v=0 addresses the bottom row. The default is true.
func WithFlipY(flip bool) TextureOption {
	return func(t *Texture2D) { t.flipY = flip }
}

type loadResult struct {
	img image.Image
	err error
}

// Texture2D is a 2D RGBA texture whose image arrives asynchronously.
//
// From creation until the image is uploaded the texture holds a single
// magenta pixel, so it can be bound and sampled at any time. Load starts
// fetching in the background; Update, called from the render thread,
// performs the upload once the fetch has finished.
type Texture2D struct {
	gl  GL
	id  TextureID
	src string

	minFilter Enum
	magFilter Enum
	flipY     bool

	width, height int
	loaded        bool
	err           error

	once    sync.Once
	pending chan loadResult
	done    chan struct{}
}

// NewTexture2D creates a texture for the image at src and uploads the
// placeholder pixel.
func NewTexture2D(gl GL, src string, opts ...TextureOption) (*Texture2D, error) {
	id := gl.CreateTexture()
	if id == 0 {
		return nil, fmt.Errorf("texture %q: %w", src, ErrCreateTexture)
	}
	t := &Texture2D{
		gl:        gl,
		id:        id,
		src:       src,
		minFilter: Nearest,
		magFilter: Nearest,
		flipY:     true,
		width:     1,
		height:    1,
		pending:   make(chan loadResult, 1),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}

	t.Bind(0)
	t.gl.TexImage2D(TextureTarget2D, 0, int32(RGBA), 1, 1, 0, RGBA, UnsignedByte, placeholderPixel)
	// Filters without mipmaps keep the placeholder complete until the image
	// arrives, and after a failed load.
	t.gl.TexParameteri(TextureTarget2D, TextureMinFilter, int32(t.minFilter))
	t.gl.TexParameteri(TextureTarget2D, TextureMagFilter, int32(t.magFilter))
	return t, nil
}

// Load starts fetching the image with loader and returns immediately.
// Only the first call starts a fetch. There is no way to cancel a fetch
// other than through ctx. A nil loader fails the load on the next Update.
func (t *Texture2D) Load(ctx context.Context, loader ImageLoader) {
	t.once.Do(func() {
		if loader == nil {
			t.pending <- loadResult{err: ErrNoLoader}
			return
		}
		go func() {
			img, err := loader.LoadImage(ctx, t.src)
			t.pending <- loadResult{img: img, err: err}
		}()
	})
}

// Update uploads the fetched image if the fetch has finished. It never
// blocks and reports whether the load completed during this call.
// It must be called on the thread that owns the GL context.
func (t *Texture2D) Update() bool {
	select {
	case res := <-t.pending:
		t.finish(res)
		return true
	default:
		return false
	}
}

func (t *Texture2D) finish(res loadResult) {
	defer close(t.done)
	if res.err != nil {
		t.err = fmt.Errorf("texture %q: %w", t.src, res.err)
		logger.Warn("texture load failed", "src", t.src, "err", res.err)
		return
	}
	if t.id == 0 {
		return
	}

	rgba := toRGBA(res.img, t.flipY)
	t.width = rgba.Rect.Dx()
	t.height = rgba.Rect.Dy()

	t.Bind(0)
	t.gl.TexImage2D(TextureTarget2D, 0, int32(RGBA), int32(t.width), int32(t.height), 0, RGBA, UnsignedByte, rgba.Pix)
	t.loaded = true
	logger.Debug("texture uploaded", "src", t.src, "width", t.width, "height", t.height)
}

// Done is closed once a load has completed, successfully or not.
func (t *Texture2D) Done() <-chan struct{} { return t.done }

// Err returns the load error, if the load failed.
func (t *Texture2D) Err() error { return t.err }

// Loaded reports whether the real image has been uploaded.
func (t *Texture2D) Loaded() bool { return t.loaded }

// Size returns the dimensions of the current image (1x1 before loading).
func (t *Texture2D) Size() (width, height int) { return t.width, t.height }

// Source returns the image location the texture was created for.
func (t *Texture2D) Source() string { return t.src }

// ID returns the native texture name.
func (t *Texture2D) ID() TextureID { return t.id }

// Bind activates texture unit slot and binds the texture to it.
func (t *Texture2D) Bind(slot int) {
	t.gl.ActiveTexture(Texture0 + Enum(slot))
	t.gl.BindTexture(TextureTarget2D, t.id)
}

// Unbind clears the 2D binding of the active texture unit.
func (t *Texture2D) Unbind() { t.gl.BindTexture(TextureTarget2D, 0) }

// Delete releases the native texture. A fetch still in flight is discarded.
func (t *Texture2D) Delete() {
	if t.id != 0 {
		t.gl.DeleteTexture(t.id)
		t.id = 0
	}
}

// toRGBA converts img to tightly packed RGBA, optionally bottom row first.
func toRGBA(img image.Image, flipY bool) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)
	if !flipY {
		return dst
	}
	row := make([]byte, dst.Stride)
	for top, bottom := 0, dst.Rect.Dy()-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := dst.Pix[top*dst.Stride : (top+1)*dst.Stride]
		z := dst.Pix[bottom*dst.Stride : (bottom+1)*dst.Stride]
		copy(row, a)
		copy(a, z)
		copy(z, row)
	}
	return dst
}
