package main

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/go-theft-auto/glkit/internal/scenes"
)

// SceneConfig is the YAML file the example reads with -scene.
type SceneConfig struct {
	Window     WindowConfig      `yaml:"window"`
	Scene      string            `yaml:"scene"` // "cube" or "grid"
	Camera     CameraConfig      `yaml:"camera"`
	ClearColor [4]float32        `yaml:"clear_color"`
	Grid       scenes.GridConfig `yaml:"grid"`
	Verbose    bool              `yaml:"verbose"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type CameraConfig struct {
	Projection string     `yaml:"projection"` // "perspective" or "orthographic"
	Fov        float32    `yaml:"fov"`
	Position   [3]float32 `yaml:"position"`
	Rotation   float32    `yaml:"rotation"`
	Bounds     [4]float32 `yaml:"bounds"` // left, right, bottom, top
}

func defaultConfig() SceneConfig {
	return SceneConfig{
		Window: WindowConfig{Width: 800, Height: 600, Title: "glkit example"},
		Scene:  "cube",
		Camera: CameraConfig{
			Projection: "perspective",
			Fov:        90,
			Position:   [3]float32{0, 0, 20},
			Bounds:     [4]float32{-1, 1, -1, 1},
		},
		ClearColor: [4]float32{0.12, 0.12, 0.14, 1},
		Grid:       scenes.GridConfig{Columns: 8, Rows: 8, Spacing: 1.1},
	}
}

// loadConfig reads path over the defaults. An empty path keeps the defaults.
func loadConfig(path string) (SceneConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read scene: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse scene %s: %w", path, err)
	}
	switch cfg.Scene {
	case "cube":
	case "grid":
		if err := cfg.Grid.Validate(); err != nil {
			return cfg, fmt.Errorf("parse scene %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("parse scene %s: unknown scene %q", path, cfg.Scene)
	}
	return cfg, nil
}

func (c CameraConfig) position() mgl32.Vec3 {
	return mgl32.Vec3(c.Position)
}

func (c SceneConfig) clearColor() mgl32.Vec4 {
	return mgl32.Vec4(c.ClearColor)
}
