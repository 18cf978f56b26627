// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"io"
	"mime"

	"github.com/ugorji/go/codec"
)

// IsJSON reports whether mediaType is one of the JSON variants this
// package reads and writes.
func IsJSON(mediaType string) bool {
	switch mediaType {
	case "text/json", PlainJSONMediaType, JSONMediaType, V1JSONMediaType:
		return true
	}
	return false
}

// Decode tries to decode a restdata object from a reader, such as an
// HTTP request or response.  out must be a pointer type.  A body that
// is not valid JSON for out produces ErrBadRequest.
func Decode(contentType string, r io.Reader, out interface{}) error {
	if contentType == "" {
		// RFC 7231 section 3.1.1.5
		contentType = "application/octet-stream"
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ErrBadRequest{Err: err}
	}
	if !IsJSON(mediaType) {
		return ErrUnsupportedMediaType{Type: mediaType}
	}

	json := &codec.JsonHandle{}
	decoder := codec.NewDecoder(r, json)
	if err = decoder.Decode(out); err != nil {
		return ErrBadRequest{Err: err}
	}
	return nil
}

// Encode writes v to w as JSON.
func Encode(w io.Writer, v interface{}) error {
	json := &codec.JsonHandle{}
	encoder := codec.NewEncoder(w, json)
	return encoder.Encode(v)
}
