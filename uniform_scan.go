package glkit

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// UniformDeclaration is a uniform found in shader source text. Type is
// informational only; setters are not checked against it.
type UniformDeclaration struct {
	Name string
	Type string
}

const uniformKeyword = "uniform "

// ScanUniforms returns the uniform declarations in source, in order.
//
// A declaration is recognized only in the exact shape
//
//	uniform <type> <name>;
//
// where <type> is a run of word characters ([A-Za-z0-9_]) at least two long
// whose last character is a digit, followed by exactly one whitespace
// character, and <name> is a run of word characters immediately followed by
// ';'. So "uniform mat4 uMVP;" and "uniform vec3 uColor;" are recognized,
// while "uniform float uTime;" and "uniform sampler2D uImage;" are not.
// The keyword is matched anywhere, including inside a longer word.
func ScanUniforms(source string) []UniformDeclaration {
	var decls []UniformDeclaration
	i := 0
	for i < len(source) {
		j := strings.Index(source[i:], uniformKeyword)
		if j < 0 {
			break
		}
		start := i + j
		if d, end, ok := scanDeclaration(source, start+len(uniformKeyword)); ok {
			decls = append(decls, d)
			i = end
			continue
		}
		i = start + 1
	}
	return decls
}

// scanDeclaration parses "<type><space><name>;" starting at pos and returns
// the declaration and the offset just past the semicolon.
func scanDeclaration(src string, pos int) (UniformDeclaration, int, bool) {
	typeEnd := scanWord(src, pos)
	typ := src[pos:typeEnd]
	if len(typ) < 2 || !isDigit(typ[len(typ)-1]) {
		return UniformDeclaration{}, 0, false
	}
	if typeEnd >= len(src) {
		return UniformDeclaration{}, 0, false
	}
	r, size := utf8.DecodeRuneInString(src[typeEnd:])
	if !isSpace(r) {
		return UniformDeclaration{}, 0, false
	}
	nameStart := typeEnd + size
	nameEnd := scanWord(src, nameStart)
	if nameEnd == nameStart || nameEnd >= len(src) || src[nameEnd] != ';' {
		return UniformDeclaration{}, 0, false
	}
	return UniformDeclaration{Name: src[nameStart:nameEnd], Type: typ}, nameEnd + 1, true
}

func scanWord(src string, pos int) int {
	for pos < len(src) && isWord(src[pos]) {
		pos++
	}
	return pos
}

func isWord(c byte) bool {
	return c == '_' || isDigit(c) || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// isSpace matches Unicode white space and the byte order mark.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
