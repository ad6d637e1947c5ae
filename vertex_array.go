package glkit

import "fmt"

// AttributeBinding records one attribute pointer set up by a VertexArray.
type AttributeBinding struct {
	Name       string
	Location   uint32
	Size       int32 // components per location, 1..4
	Type       Enum
	Normalized bool
	Stride     int32
	Offset     int
	Divisor    uint32
}

// VertexArray captures the attribute pointers of one or more vertex buffers
// against a program's input locations, plus one index buffer.
//
// Pointers are resolved when a buffer is added; later changes to the
// program or layout are not picked up.
type VertexArray struct {
	gl      GL
	id      VertexArrayID
	program *Program

	vertexBuffers []*VertexBuffer
	indexBuffer   *IndexBuffer
	bindings      []AttributeBinding
}

// NewVertexArray creates a vertex array that resolves attributes against program.
func NewVertexArray(gl GL, program *Program) (*VertexArray, error) {
	id := gl.CreateVertexArray()
	if id == 0 {
		return nil, ErrCreateVertexArray
	}
	return &VertexArray{gl: gl, id: id, program: program}, nil
}

// ID returns the native vertex array name.
func (va *VertexArray) ID() VertexArrayID { return va.id }

// Bind makes the vertex array current.
func (va *VertexArray) Bind() { va.gl.BindVertexArray(va.id) }

// Unbind clears the current vertex array.
func (va *VertexArray) Unbind() { va.gl.BindVertexArray(0) }

// AddVertexBuffer wires every attribute of vb's layout that the program
// declares. Attributes the program does not have are skipped; their bytes
// still count towards the offsets of the attributes after them.
func (va *VertexArray) AddVertexBuffer(vb *VertexBuffer) error {
	layout := vb.Layout()
	if layout == nil {
		return fmt.Errorf("vertex buffer %d: %w", vb.ID(), ErrNoLayout)
	}

	va.Bind()
	vb.Bind()

	stride := int32(layout.Stride())
	offset := 0
	for _, attr := range layout.attributes {
		loc, ok := va.program.AttribLocation(attr.Name)
		if !ok {
			offset += attr.ByteSize()
			continue
		}

		slots := attr.Kind.slots()
		size := int32(attr.Kind.ComponentCount() / slots)
		slotBytes := int(size) * 4
		for i := 0; i < slots*attr.Count; i++ {
			b := AttributeBinding{
				Name:       attr.Name,
				Location:   loc + uint32(i),
				Size:       size,
				Type:       attr.Kind.GLType(),
				Normalized: attr.Normalized,
				Stride:     stride,
				Offset:     offset,
				Divisor:    attr.Divisor,
			}
			va.gl.EnableVertexAttribArray(b.Location)
			va.gl.VertexAttribPointer(b.Location, b.Size, b.Type, b.Normalized, b.Stride, b.Offset)
			if b.Divisor > 0 {
				va.gl.VertexAttribDivisor(b.Location, b.Divisor)
			}
			va.bindings = append(va.bindings, b)
			offset += slotBytes
		}
	}

	va.vertexBuffers = append(va.vertexBuffers, vb)
	va.Unbind()
	return nil
}

// SetIndexBuffer records ib as this vertex array's element buffer.
func (va *VertexArray) SetIndexBuffer(ib *IndexBuffer) {
	va.Bind()
	ib.Bind()
	va.indexBuffer = ib
	va.Unbind()
}

// IndexBuffer returns the attached index buffer, or nil.
func (va *VertexArray) IndexBuffer() *IndexBuffer { return va.indexBuffer }

// VertexBuffers returns the buffers added so far.
func (va *VertexArray) VertexBuffers() []*VertexBuffer {
	out := make([]*VertexBuffer, len(va.vertexBuffers))
	copy(out, va.vertexBuffers)
	return out
}

// Bindings returns the attribute pointers issued so far, in order.
func (va *VertexArray) Bindings() []AttributeBinding {
	out := make([]AttributeBinding, len(va.bindings))
	copy(out, va.bindings)
	return out
}

// Delete releases the native vertex array. Attached buffers are not deleted.
func (va *VertexArray) Delete() {
	if va.id != 0 {
		va.gl.DeleteVertexArray(va.id)
		va.id = 0
	}
}
