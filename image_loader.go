package glkit

import (
	"context"
	"fmt"
	"image"
	"io"
	"io/fs"
	"net/http"

	// Decoders registered with image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageLoader fetches and decodes the image at src.
// Implementations are called from a background goroutine.
type ImageLoader interface {
	LoadImage(ctx context.Context, src string) (image.Image, error)
}

// ImageLoaderFunc adapts a plain function to ImageLoader.
type ImageLoaderFunc func(ctx context.Context, src string) (image.Image, error)

// LoadImage calls f.
func (f ImageLoaderFunc) LoadImage(ctx context.Context, src string) (image.Image, error) {
	return f(ctx, src)
}

// FSImageLoader reads images from a file system, e.g. os.DirFS or an
// embed.FS.
type FSImageLoader struct {
	FS fs.FS
}

// LoadImage opens src in the file system and decodes it.
func (l FSImageLoader) LoadImage(ctx context.Context, src string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := l.FS.Open(src)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeImage(f)
}

// HTTPImageLoader fetches images over HTTP(S).
type HTTPImageLoader struct {
	// Client is used for requests; nil means http.DefaultClient.
	Client *http.Client
}

// LoadImage GETs src and decodes the response body.
func (l HTTPImageLoader) LoadImage(ctx context.Context, src string) (image.Image, error) {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", src, resp.Status)
	}
	return decodeImage(resp.Body)
}

func decodeImage(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	logger.Debug("image decoded", "format", format, "bounds", img.Bounds())
	return img, nil
}
