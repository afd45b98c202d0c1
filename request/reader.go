// Copyright 2026 The clientware Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"errors"
	"io"
	"unicode/utf8"

	"github.com/gogama/clientware/codec"
)

// ErrBodyConsumed is returned by a Reader operation invoked after the
// body has already been drained. A Reader is one-shot: exactly one of
// its operations may consume the body, exactly once.
var ErrBodyConsumed = errors.New("clientware/request: body already consumed")

// A ReadError reports that draining the body stream itself failed, for
// example because the connection was reset mid-stream. The underlying
// transport error is available via Unwrap.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return "clientware/request: read body: " + e.Err.Error()
}

func (e *ReadError) Unwrap() error { return e.Err }

// A DecodeError reports that the body was read fully but its bytes
// could not be interpreted by the requested decode operation: invalid
// UTF-8 for Text, malformed or mismatched data for JSON and Form.
//
// ReadError and DecodeError are distinct types so callers can match on
// which stage failed:
//
//	var de *request.DecodeError
//	if errors.As(err, &de) {
//		// bytes arrived intact but did not parse
//	}
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "clientware/request: decode body: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// A Reader consumes a response body stream and decodes it. It is a
// thin, one-shot wrapper: the first of Bytes, Text, JSON, or Form to
// be called drains the body and closes the stream, and every later
// call returns ErrBodyConsumed.
//
// Decoding never consults the Content-Type header. The caller's
// choice of operation is trusted over the declared media type, since
// some endpoints mislabel their content.
type Reader struct {
	body     io.ReadCloser
	consumed bool
}

// NewReader returns a one-shot reader that consumes body. A nil body
// is treated as empty.
func NewReader(body io.ReadCloser) *Reader {
	return &Reader{body: body}
}

// Bytes drains the body into a contiguous byte buffer and closes the
// stream. A failure to read or close is reported as a *ReadError
// wrapping the stream's native error.
func (r *Reader) Bytes() ([]byte, error) {
	if r.consumed {
		return nil, ErrBodyConsumed
	}
	r.consumed = true
	if r.body == nil {
		return nil, nil
	}
	b, err := io.ReadAll(r.body)
	if cerr := r.body.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, &ReadError{Err: err}
	}
	return b, nil
}

// Text drains the body and strictly validates it as UTF-8. A stream
// failure is a *ReadError; invalid UTF-8 is a *DecodeError.
func (r *Reader) Text() (string, error) {
	b, err := r.Bytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", &DecodeError{Err: errors.New("invalid UTF-8 sequence")}
	}
	return string(b), nil
}

// JSON drains the body and deserializes it as JSON into v, which must
// be a non-nil pointer. A stream failure is a *ReadError; malformed
// JSON or a schema mismatch is a *DecodeError.
func (r *Reader) JSON(v interface{}) error {
	return r.Decode(codec.JSON, v)
}

// Form drains the body and deserializes it as URL-encoded form data
// into v, which must be a *url.Values or a non-nil pointer to struct.
// A stream failure is a *ReadError; data that does not parse or fit v
// is a *DecodeError.
func (r *Reader) Form(v interface{}) error {
	return r.Decode(codec.Form, v)
}

// Decode drains the body and deserializes it into v using dec. JSON
// and Form are shorthands for Decode with the built-in codecs.
func (r *Reader) Decode(dec codec.Decoder, v interface{}) error {
	b, err := r.Bytes()
	if err != nil {
		return err
	}
	if err := dec.Decode(b, v); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}
