package glkit

import "fmt"

// AttributeKind is the shape of a vertex attribute. Every kind is built
// from 32-bit floats.
type AttributeKind int

const (
	KindFloat AttributeKind = iota
	KindVec2
	KindVec3
	KindVec4
	KindMat2
	KindMat3
	KindMat4
)

// ComponentCount returns the number of floats in one element of the kind.
func (k AttributeKind) ComponentCount() int {
	switch k {
	case KindFloat:
		return 1
	case KindVec2:
		return 2
	case KindVec3:
		return 3
	case KindVec4:
		return 4
	case KindMat2:
		return 2 * 2
	case KindMat3:
		return 3 * 3
	case KindMat4:
		return 4 * 4
	}
	return 0
}

// ByteSize returns the size in bytes of one element of the kind.
func (k AttributeKind) ByteSize() int {
	return k.ComponentCount() * 4
}

// GLType returns the component type passed to VertexAttribPointer.
func (k AttributeKind) GLType() Enum {
	return FloatType
}

// slots returns how many attribute locations one element occupies.
// Matrices take one location per column.
func (k AttributeKind) slots() int {
	switch k {
	case KindMat2:
		return 2
	case KindMat3:
		return 3
	case KindMat4:
		return 4
	}
	return 1
}

func (k AttributeKind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindVec2:
		return "vec2"
	case KindVec3:
		return "vec3"
	case KindVec4:
		return "vec4"
	case KindMat2:
		return "mat2"
	case KindMat3:
		return "mat3"
	case KindMat4:
		return "mat4"
	}
	return fmt.Sprintf("AttributeKind(%d)", int(k))
}

// Attribute describes one named vertex input.
//
// Each of the Count elements takes its own attribute location, so a
// repeated vector must be declared as an array in the shader: Vec2("a").Repeat(2)
// feeds "in vec2 a[2]", not "in vec4 a".
type Attribute struct {
	Name       string
	Kind       AttributeKind
	Count      int    // repeat count, consecutive elements of Kind
	Normalized bool   // integer data is mapped to [0,1] / [-1,1]
	Divisor    uint32 // 0 advances per vertex, N advances every N instances
}

// Float, Vec2 to Vec4 and Mat2 to Mat4 return a single, per-vertex,
// unnormalized attribute of the named kind.
func Float(name string) Attribute { return Attribute{Name: name, Kind: KindFloat, Count: 1} }
func Vec2(name string) Attribute  { return Attribute{Name: name, Kind: KindVec2, Count: 1} }
func Vec3(name string) Attribute  { return Attribute{Name: name, Kind: KindVec3, Count: 1} }
func Vec4(name string) Attribute  { return Attribute{Name: name, Kind: KindVec4, Count: 1} }
func Mat2(name string) Attribute  { return Attribute{Name: name, Kind: KindMat2, Count: 1} }
func Mat3(name string) Attribute  { return Attribute{Name: name, Kind: KindMat3, Count: 1} }
func Mat4(name string) Attribute  { return Attribute{Name: name, Kind: KindMat4, Count: 1} }

// Repeat returns a copy of a with the repeat count set to n. The elements
// take n consecutive locations.
func (a Attribute) Repeat(n int) Attribute {
	a.Count = n
	return a
}

// Normalize returns a copy of a with normalization enabled.
func (a Attribute) Normalize() Attribute {
	a.Normalized = true
	return a
}

// WithDivisor returns a copy of a that advances once every n instances.
func (a Attribute) WithDivisor(n uint32) Attribute {
	a.Divisor = n
	return a
}

// FloatCount returns the number of floats a contributes to one vertex record.
func (a Attribute) FloatCount() int { return a.Kind.ComponentCount() * a.Count }

// ByteSize returns the number of bytes a contributes to one vertex record.
func (a Attribute) ByteSize() int { return a.Kind.ByteSize() * a.Count }

// VertexLayout is an ordered list of attributes describing one vertex record.
// Stride and float count are running sums updated on every Append.
// A layout is frozen once it is attached to a vertex buffer.
type VertexLayout struct {
	attributes []Attribute
	stride     int
	floatCount int
	frozen     bool
}

// NewVertexLayout creates a layout from attrs in order.
func NewVertexLayout(attrs ...Attribute) *VertexLayout {
	l := &VertexLayout{}
	for _, a := range attrs {
		l.Append(a)
	}
	return l
}

// Append adds a to the end of the layout.
// It panics if the layout is already attached to a vertex buffer.
func (l *VertexLayout) Append(a Attribute) *VertexLayout {
	if l.frozen {
		panic("glkit: Append on a vertex layout attached to a buffer")
	}
	l.attributes = append(l.attributes, a)
	l.stride += a.ByteSize()
	l.floatCount += a.FloatCount()
	return l
}

// Stride returns the byte distance between consecutive vertex records.
func (l *VertexLayout) Stride() int { return l.stride }

// FloatCount returns the number of floats in one vertex record.
func (l *VertexLayout) FloatCount() int { return l.floatCount }

// Frozen reports whether the layout is attached to a vertex buffer.
func (l *VertexLayout) Frozen() bool { return l.frozen }

// Len returns the number of attributes.
func (l *VertexLayout) Len() int { return len(l.attributes) }

// Attributes returns a copy of the attribute list.
func (l *VertexLayout) Attributes() []Attribute {
	out := make([]Attribute, len(l.attributes))
	copy(out, l.attributes)
	return out
}
