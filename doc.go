// Package swf reads the SWF container format used by Flash game clients.
//
// An SWF file consists of:
//   - A 3-byte signature selecting the body compression (none, zlib, or LZMA)
//   - An uncompressed header with version, total length, bounding rectangle,
//     frame rate and frame count
//   - A body holding an ordered sequence of tagged records
//
// The package normalizes all three compression modes into the same decoded
// form: a [Movie] carrying the header fields and the ordered tag list.
//
// # Basic Usage
//
// To read an SWF file:
//
//	f, _ := os.Open("client.swf")
//	defer f.Close()
//	movie, err := swf.Decode(f)
//
// Game clients embed configuration data in DefineBinaryData tags named by
// SymbolClass entries. [ExtractBinaryData] pairs the two:
//
//	assets, err := swf.ExtractBinaryData(movie)
//	for _, a := range assets {
//		payload, err := swf.UnwrapAsset(a.Data, 64<<20)
//		// payload is typically an AMF3-encoded object; see the amf3 package.
//		_ = payload
//	}
//
// # Security Considerations
//
// The total-length field of a crafted container can demand arbitrarily large
// allocations. Decoding enforces configurable [Limits] before decompressing,
// and caps every decompression with the expected size.
package swf
