// Copyright 2026 The clientware Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"fmt"
)

// An Encoder serializes Go values into request body bytes and names
// the canonical media type of its encoding. Implementations must be
// safe for concurrent use by multiple goroutines; the built-in JSON
// and Form codecs are shared process-wide.
type Encoder interface {
	// Encode serializes v. A value that cannot be serialized is
	// reported as a *EncodeError.
	Encode(v interface{}) ([]byte, error)
	// ContentType returns the exact Content-Type header value for
	// bodies produced by this encoder, e.g. "application/json".
	ContentType() string
}

// A Decoder deserializes body bytes into the value v points to.
// Implementations must be safe for concurrent use by multiple
// goroutines.
type Decoder interface {
	Decode(data []byte, v interface{}) error
}

// A Codec is the composition of the Encoder and Decoder interfaces.
// The built-in JSON and Form codecs both satisfy it.
type Codec interface {
	Encoder
	Decoder
}

// An EncodeError reports that a value could not be serialized by an
// encoder. It is deliberately distinct from request.BuildError: an
// EncodeError means the body value was bad, not the request shape.
type EncodeError struct {
	// Codec names the encoding that failed, e.g. "json" or "form".
	Codec string
	// Err is the serializer's underlying error.
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("clientware/codec: encode %s: %v", e.Codec, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
