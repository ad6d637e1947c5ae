package glkit

import (
	"fmt"
	"unsafe"
)

// BufferKind selects the bind target of a buffer object.
type BufferKind int

const (
	VertexBufferKind BufferKind = iota
	IndexBufferKind
)

// Target returns the GL bind target for the kind.
func (k BufferKind) Target() Enum {
	if k == IndexBufferKind {
		return ElementArrayBuffer
	}
	return ArrayBuffer
}

func (k BufferKind) String() string {
	if k == IndexBufferKind {
		return "index"
	}
	return "vertex"
}

// bufferObject owns one native buffer name.
type bufferObject struct {
	gl    GL
	id    BufferID
	kind  BufferKind
	usage Enum
}

func newBufferObject(gl GL, kind BufferKind) (bufferObject, error) {
	id := gl.CreateBuffer()
	if id == 0 {
		return bufferObject{}, fmt.Errorf("%s buffer: %w", kind, ErrCreateBuffer)
	}
	return bufferObject{gl: gl, id: id, kind: kind, usage: StaticDraw}, nil
}

// ID returns the native buffer name.
func (b *bufferObject) ID() BufferID { return b.id }

// Kind returns whether this is a vertex or an index buffer.
func (b *bufferObject) Kind() BufferKind { return b.kind }

// Bind makes the buffer current for its target.
func (b *bufferObject) Bind() { b.gl.BindBuffer(b.kind.Target(), b.id) }

// Unbind clears the buffer's target.
func (b *bufferObject) Unbind() { b.gl.BindBuffer(b.kind.Target(), 0) }

// Delete releases the native buffer. The buffer must not be used afterwards.
func (b *bufferObject) Delete() {
	if b.id != 0 {
		b.gl.DeleteBuffer(b.id)
		b.id = 0
	}
}

func (b *bufferObject) uploadBytes(data []byte) {
	b.Bind()
	b.gl.BufferData(b.kind.Target(), data, b.usage)
}

// VertexBuffer holds float32 vertex data described by a VertexLayout.
// The data is uploaded with a static usage hint.
type VertexBuffer struct {
	bufferObject
	data   []float32
	layout *VertexLayout
}

// NewStaticVertexBuffer creates an empty vertex buffer.
func NewStaticVertexBuffer(gl GL) (*VertexBuffer, error) {
	obj, err := newBufferObject(gl, VertexBufferKind)
	if err != nil {
		return nil, err
	}
	return &VertexBuffer{bufferObject: obj}, nil
}

// SetData replaces the local payload. Call Upload to push it to the GPU.
func (vb *VertexBuffer) SetData(data []float32) {
	vb.data = append(vb.data[:0], data...)
}

// Data returns the local payload.
func (vb *VertexBuffer) Data() []float32 { return vb.data }

// Upload binds the buffer and pushes the payload to the GPU.
func (vb *VertexBuffer) Upload() {
	vb.uploadBytes(float32Bytes(vb.data))
}

// SetLayout attaches layout to the buffer. A buffer takes exactly one
// layout; a second call fails with ErrLayoutAttached and keeps the first.
func (vb *VertexBuffer) SetLayout(layout *VertexLayout) error {
	if vb.layout != nil {
		return ErrLayoutAttached
	}
	if layout == nil {
		return ErrNoLayout
	}
	layout.frozen = true
	vb.layout = layout
	return nil
}

// Layout returns the attached layout, or nil.
func (vb *VertexBuffer) Layout() *VertexLayout { return vb.layout }

// Count returns the number of vertex records in the payload.
func (vb *VertexBuffer) Count() int {
	if vb.layout == nil || vb.layout.FloatCount() == 0 {
		return 0
	}
	return len(vb.data) / vb.layout.FloatCount()
}

// IndexBuffer holds unsigned-byte element indices, so at most 256 distinct
// vertices can be addressed by one mesh.
type IndexBuffer struct {
	bufferObject
	data []uint8
}

// NewIndexBuffer creates an empty index buffer.
func NewIndexBuffer(gl GL) (*IndexBuffer, error) {
	obj, err := newBufferObject(gl, IndexBufferKind)
	if err != nil {
		return nil, err
	}
	return &IndexBuffer{bufferObject: obj}, nil
}

// SetData replaces the local payload. Every index must be in 0..255;
// otherwise ErrIndexRange is returned and the payload is left unchanged.
func (ib *IndexBuffer) SetData(indices []int) error {
	for i, v := range indices {
		if v < 0 || v > 0xFF {
			return fmt.Errorf("index %d = %d: %w", i, v, ErrIndexRange)
		}
	}
	data := make([]uint8, len(indices))
	for i, v := range indices {
		data[i] = uint8(v)
	}
	ib.data = data
	return nil
}

// Data returns the local payload.
func (ib *IndexBuffer) Data() []uint8 { return ib.data }

// Upload binds the buffer and pushes the payload to the GPU.
func (ib *IndexBuffer) Upload() {
	ib.uploadBytes(ib.data)
}

// Count returns the number of indices.
func (ib *IndexBuffer) Count() int { return len(ib.data) }

// ElementType returns the GL type of one index.
func (ib *IndexBuffer) ElementType() Enum { return UnsignedByte }

// float32Bytes reinterprets f as its native-endian byte representation.
func float32Bytes(f []float32) []byte {
	if len(f) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&f[0])), len(f)*4)
}
