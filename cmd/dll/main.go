// Package main provides C-compatible exports for the go-swf library.
// Build with: go build -buildmode=c-shared -o swf.dll
package main

/*
#include <stdlib.h>
#include <stdint.h>

// Result structure for operations that return data
typedef struct {
    char* data;
    int   data_len;
    char* error;
} SwfResult;
*/
import "C"

import (
	"bytes"
	"encoding/json"
	"unsafe"

	swf "github.com/seerapi/go-swf"
	"github.com/seerapi/go-swf/amf3"
)

func main() {}

// SwfFreeResult frees memory allocated by other Swf functions.
// Must be called to avoid memory leaks.
//
//export SwfFreeResult
func SwfFreeResult(result C.SwfResult) {
	if result.data != nil {
		C.free(unsafe.Pointer(result.data))
	}
	if result.error != nil {
		C.free(unsafe.Pointer(result.error))
	}
}

// makeResult creates a result with data.
func makeResult(data []byte) C.SwfResult {
	var result C.SwfResult
	if len(data) > 0 {
		result.data = (*C.char)(C.CBytes(data))
		result.data_len = C.int(len(data))
	}
	return result
}

// makeError creates a result with an error message.
func makeError(err error) C.SwfResult {
	var result C.SwfResult
	result.error = C.CString(err.Error())
	return result
}

// SwfValidate decodes an SWF container and returns NULL on success, or an
// error message string on failure. Free the result with free().
//
//export SwfValidate
func SwfValidate(data *C.char, dataLen C.int) *C.char {
	goData := C.GoBytes(unsafe.Pointer(data), dataLen)
	if _, err := swf.Decode(bytes.NewReader(goData)); err != nil {
		return C.CString(err.Error())
	}
	return nil
}

// SwfListAssets decodes an SWF container and returns a JSON array of its
// named binary assets: [{"name": ..., "characterId": ..., "dataLen": ...}].
// Call SwfFreeResult when done.
//
//export SwfListAssets
func SwfListAssets(data *C.char, dataLen C.int) C.SwfResult {
	goData := C.GoBytes(unsafe.Pointer(data), dataLen)
	m, err := swf.Decode(bytes.NewReader(goData))
	if err != nil {
		return makeError(err)
	}
	assets, err := swf.ExtractBinaryData(m)
	if err != nil {
		return makeError(err)
	}
	out := make([]map[string]any, len(assets))
	for i, a := range assets {
		out[i] = map[string]any{
			"name":        a.Name,
			"characterId": a.CharacterID,
			"dataLen":     len(a.Data),
		}
	}
	b, err := json.Marshal(out)
	if err != nil {
		return makeError(err)
	}
	return makeResult(b)
}

// SwfDecodeAsset extracts the named binary asset, unwraps a zlib-wrapped
// payload if present, decodes it as AMF3 and returns the JSON form of the
// decoded value. Call SwfFreeResult when done.
//
//export SwfDecodeAsset
func SwfDecodeAsset(data *C.char, dataLen C.int, assetName *C.char) C.SwfResult {
	goData := C.GoBytes(unsafe.Pointer(data), dataLen)
	name := C.GoString(assetName)

	m, err := swf.Decode(bytes.NewReader(goData))
	if err != nil {
		return makeError(err)
	}
	assets, err := swf.ExtractBinaryData(m)
	if err != nil {
		return makeError(err)
	}
	for _, a := range assets {
		if a.Name != name {
			continue
		}
		payload, err := swf.UnwrapAsset(a.Data, 0)
		if err != nil {
			return makeError(err)
		}
		v, err := amf3.Decode(payload)
		if err != nil {
			return makeError(err)
		}
		b, err := json.Marshal(v.Interface())
		if err != nil {
			return makeError(err)
		}
		return makeResult(b)
	}

	var result C.SwfResult
	result.error = C.CString("asset not found: " + name)
	return result
}
