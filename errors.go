package glkit

import (
	"errors"
	"fmt"
)

var (
	ErrCreateBuffer      = errors.New("glkit: could not create buffer")
	ErrCreateVertexArray = errors.New("glkit: could not create vertex array")
	ErrCreateShader      = errors.New("glkit: could not create shader")
	ErrCreateProgram     = errors.New("glkit: could not create program")
	ErrCreateTexture     = errors.New("glkit: could not create texture")

	// ErrLayoutAttached is returned when a vertex buffer already has a layout.
	ErrLayoutAttached = errors.New("glkit: vertex buffer already has a layout")
	// ErrNoLayout is returned when a vertex buffer without a layout is added to a vertex array.
	ErrNoLayout = errors.New("glkit: vertex buffer has no layout")
	// ErrIndexRange is returned for indices that do not fit the one-byte index type.
	ErrIndexRange = errors.New("glkit: index does not fit in an unsigned byte")

	ErrNoScene       = errors.New("glkit: submit called outside BeginScene")
	ErrNoIndexBuffer = errors.New("glkit: vertex array has no index buffer")

	// ErrNoLoader is reported by a texture whose Load was given a nil loader.
	ErrNoLoader = errors.New("glkit: texture has no image loader")
)

// CompileError reports a failed shader compile or program link together
// with the driver's info log.
type CompileError struct {
	Stage string // "vertex", "fragment" or "link"
	Log   string
}

func (e *CompileError) Error() string {
	if e.Stage == "link" {
		return fmt.Sprintf("shader program linking failed: %s", e.Log)
	}
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
}
