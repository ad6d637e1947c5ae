// Package scenes holds the demo scenes shared by the example viewer and the
// screenshot generator.
package scenes

import "github.com/go-theft-auto/glkit"

// Scene is a set of GL resources drawn once per frame.
type Scene interface {
	// Frame submits the scene's draws. t is the time in seconds since the
	// scene started.
	Frame(r *glkit.Renderer, t float32) error
	Delete()
}
