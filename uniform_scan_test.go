package glkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanUniforms(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []UniformDeclaration
	}{
		{
			name:   "matrix",
			source: "uniform mat4 uMVP;",
			want:   []UniformDeclaration{{Name: "uMVP", Type: "mat4"}},
		},
		{
			name: "several lines",
			source: "in vec2 aPosition;\n" +
				"uniform mat4 uMVP;\n" +
				"uniform mat4 uTransform;\n" +
				"uniform vec3 uColor;\n",
			want: []UniformDeclaration{
				{Name: "uMVP", Type: "mat4"},
				{Name: "uTransform", Type: "mat4"},
				{Name: "uColor", Type: "vec3"},
			},
		},
		{
			name:   "adjacent",
			source: "uniform vec2 a;uniform ivec4 b;",
			want: []UniformDeclaration{
				{Name: "a", Type: "vec2"},
				{Name: "b", Type: "ivec4"},
			},
		},
		{
			name:   "tab separator",
			source: "uniform mat3\tuNormal;",
			want:   []UniformDeclaration{{Name: "uNormal", Type: "mat3"}},
		},
		{
			name:   "keyword inside a longer word",
			source: "myuniform vec3 uColor;",
			want:   []UniformDeclaration{{Name: "uColor", Type: "vec3"}},
		},
		{name: "type not ending in a digit", source: "uniform sampler2D uImage;"},
		{name: "scalar type", source: "uniform float uTime;"},
		{name: "two spaces after keyword", source: "uniform  mat4 uMVP;"},
		{name: "two spaces before name", source: "uniform mat4  uMVP;"},
		{name: "space before semicolon", source: "uniform mat4 uMVP ;"},
		{name: "array", source: "uniform vec4 uLights[4];"},
		{name: "qualifier", source: "uniform highp vec4 uTint;"},
		{name: "single digit type", source: "uniform 4 x;"},
		{name: "unterminated", source: "uniform mat4 uMVP"},
		{name: "no uniforms", source: "void main() {}"},
		{
			name:   "failed match does not hide the next one",
			source: "uniform sampler2D uImage;\nuniform vec4 uTint;",
			want:   []UniformDeclaration{{Name: "uTint", Type: "vec4"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScanUniforms(tt.source))
		})
	}
}
