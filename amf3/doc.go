// Package amf3 decodes the AMF3 binary object serialization format found in
// the binary-data records of Flash game clients.
//
// The format is self-describing: every value starts with a one-byte type
// marker, integers use a 1-4 byte variable-length encoding, and strings,
// class traits, objects and byte arrays are deduplicated through per-stream
// reference tables. [Decode] consumes one encoded value from a byte slice
// and returns the structured [Value] tree. Each call uses fresh reference
// tables, so independent payloads may be decoded concurrently.
//
// Only decoding is implemented; the consuming project never writes AMF3.
package amf3
