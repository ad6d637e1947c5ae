package glkit

// Enum is a GL enumerant. The values below are shared by OpenGL and WebGL2.
type Enum uint32

// Buffer targets and usage hints.
const (
	ArrayBuffer        Enum = 0x8892
	ElementArrayBuffer Enum = 0x8893
	StaticDraw         Enum = 0x88E4
	DynamicDraw        Enum = 0x88E8
)

// Component types.
const (
	Byte          Enum = 0x1400
	UnsignedByte  Enum = 0x1401
	Short         Enum = 0x1402
	UnsignedShort Enum = 0x1403
	Int           Enum = 0x1404
	UnsignedInt   Enum = 0x1405
	FloatType     Enum = 0x1406
)

// Shader stages and status queries.
const (
	FragmentShader Enum = 0x8B30
	VertexShader   Enum = 0x8B31
	CompileStatus  Enum = 0x8B81
	LinkStatus     Enum = 0x8B82
	ValidateStatus Enum = 0x8B83
	InfoLogLength  Enum = 0x8B84
)

// Textures.
const (
	TextureTarget2D  Enum = 0x0DE1
	Texture0         Enum = 0x84C0
	TextureMagFilter Enum = 0x2800
	TextureMinFilter Enum = 0x2801
	TextureWrapS     Enum = 0x2802
	TextureWrapT     Enum = 0x2803
	Nearest          Enum = 0x2600
	Linear           Enum = 0x2601
	Repeat           Enum = 0x2901
	ClampToEdge      Enum = 0x812F
	RGBA             Enum = 0x1908
	RGBA8            Enum = 0x8058
)

// Capabilities, comparison functions and faces.
const (
	DepthTest Enum = 0x0B71
	CullFace  Enum = 0x0B44
	Blend     Enum = 0x0BE2
	Less      Enum = 0x0201
	Lequal    Enum = 0x0203
	Front     Enum = 0x0404
	Back      Enum = 0x0405
)

// Clear masks.
const (
	DepthBufferBit Enum = 0x00000100
	ColorBufferBit Enum = 0x00004000
)

// Primitive topologies.
const (
	Points        Enum = 0x0000
	Lines         Enum = 0x0001
	Triangles     Enum = 0x0004
	TriangleStrip Enum = 0x0005
)

// Boolean results of parameter queries.
const (
	False = 0
	True  = 1
)
