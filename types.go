package swf

// Compression identifies the body compression mode selected by the
// container signature.
type Compression uint8

const (
	CompNone Compression = iota
	CompZlib
	CompLZMA
)

// The three recognized 3-byte container signatures.
var (
	SignatureUncompressed = [3]byte{'F', 'W', 'S'}
	SignatureZlib         = [3]byte{'C', 'W', 'S'}
	SignatureLZMA         = [3]byte{'Z', 'W', 'S'}
)

// Tag codes the extraction layer cares about. The scanner itself is
// code-agnostic and returns every record it finds.
const (
	TagEnd              uint16 = 0
	TagSymbolClass      uint16 = 76
	TagDefineBinaryData uint16 = 87
)

const (
	tagLengthMask  uint16 = 0x3F
	tagLongForm    uint16 = 0x3F
	tagCodeShift          = 6
	signatureSize         = 3
	fixedHeaderLen        = 8 // signature + version + total length
)

// Rect is the bounding rectangle of the movie stage, in twips.
type Rect struct {
	XMin, XMax int32
	YMin, YMax int32
}

// Tag is one record of the container body: a type code and its payload,
// in stream order.
type Tag struct {
	Code uint16
	Body []byte
}

// Movie is the decoded form of one container.
type Movie struct {
	Compression Compression
	Version     uint8
	FileLength  uint32
	FrameSize   Rect
	FrameRate   uint16 // 8.8 fixed point
	FrameCount  uint16
	Tags        []Tag
}

// BinaryAsset is a DefineBinaryData payload paired with the symbol-class
// name that exports it. Assets with no SymbolClass entry carry their
// character ID, in decimal, as the name.
type BinaryAsset struct {
	Name        string
	CharacterID uint16
	Data        []byte
}
