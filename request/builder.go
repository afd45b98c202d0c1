// Copyright 2026 The clientware Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"errors"
	"fmt"
	"net/http"
	urlpkg "net/url"

	"github.com/gogama/clientware/codec"
)

const consumedMsg = "clientware/request: builder already consumed"

// ErrConsumed is returned by a terminal builder operation (Build,
// Body, JSON, or Form) invoked on a builder that has already produced
// a request. A Builder is single-use.
var ErrConsumed = errors.New(consumedMsg)

// A BuildError describes invalid request state discovered while
// accumulating or finalizing a Builder: a malformed method, URL,
// header name, or header value. It is always reported synchronously,
// before any I/O is attempted.
//
// BuildError is deliberately distinct from codec.EncodeError so that
// callers can tell "my request was malformed" from "my body value did
// not serialize".
type BuildError struct {
	// Field names the offending part of the request, e.g. "method" or
	// "header value".
	Field string
	// Value is the rejected input, rendered as a string.
	Value string
	// Err is the underlying cause, if any. It may be nil when the
	// input simply failed grammar validation.
	Err error
}

func (e *BuildError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("clientware/request: invalid %s %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("clientware/request: invalid %s %q", e.Field, e.Value)
}

func (e *BuildError) Unwrap() error { return e.Err }

// A Builder accumulates the parts of a Request and finally produces an
// immutable Request value. Its zero value is ready to use; NewBuilder
// is equivalent to new(Builder).
//
// A Builder is transient and single-use. The mutating methods (Method,
// URL, Proto, Header, AddHeader, Extension) chain, so a request can be
// described fluently:
//
//	req, err := request.NewBuilder().
//		Method("PUT").
//		URL("http://example.com/hello").
//		Header("Accept", "application/json").
//		Build()
//
// Invalid input makes the builder sticky-erroneous: subsequent
// mutating calls are no-ops and the first error is surfaced by
// whichever terminal operation (Build, Body, JSON, Form) finalizes the
// builder. This mirrors the deferred-error style of the net/http
// request construction helpers while keeping call sites chainable.
//
// Defaults applied at finalization: method GET, URL "/", protocol
// version DefaultProto.
//
// A Builder must not be used from multiple goroutines.
type Builder struct {
	method string
	url    *urlpkg.URL
	proto  string
	header http.Header
	ext    Extensions
	err    error
	done   bool
}

// NewBuilder returns an empty request builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Method sets the HTTP method for the request. The method must
// satisfy the token grammar of RFC 7230; an invalid method poisons the
// builder and surfaces from the terminal operation.
func (b *Builder) Method(method string) *Builder {
	if b.err != nil {
		return b
	}
	if !ValidMethod(method) {
		b.err = &BuildError{Field: "method", Value: method}
		return b
	}
	b.method = method
	return b
}

// URL sets the target URL for the request from its string form. A
// malformed URL poisons the builder and surfaces from the terminal
// operation.
func (b *Builder) URL(rawurl string) *Builder {
	if b.err != nil {
		return b
	}
	u, err := urlpkg.Parse(rawurl)
	if err != nil {
		b.err = &BuildError{Field: "url", Value: rawurl, Err: err}
		return b
	}
	b.url = u
	return b
}

// Proto sets the HTTP protocol version for the request, e.g.
// "HTTP/1.1". The version must parse per the HTTP-version grammar.
func (b *Builder) Proto(proto string) *Builder {
	if b.err != nil {
		return b
	}
	if _, _, ok := http.ParseHTTPVersion(proto); !ok {
		b.err = &BuildError{Field: "protocol version", Value: proto}
		return b
	}
	b.proto = proto
	return b
}

// Header sets the header name to the single value given, replacing
// any values set earlier on this builder. The name and value must
// satisfy the wire-format grammar; a violation poisons the builder
// rather than being silently dropped or truncated.
func (b *Builder) Header(name, value string) *Builder {
	if !b.checkHeader(name, value) {
		return b
	}
	b.header.Set(name, value)
	return b
}

// AddHeader appends value to the header name, preserving any values
// set earlier on this builder. The same grammar rules as Header apply.
func (b *Builder) AddHeader(name, value string) *Builder {
	if !b.checkHeader(name, value) {
		return b
	}
	b.header.Add(name, value)
	return b
}

func (b *Builder) checkHeader(name, value string) bool {
	if b.err != nil {
		return false
	}
	if !ValidHeaderName(name) {
		b.err = &BuildError{Field: "header name", Value: name}
		return false
	}
	if !ValidHeaderValue(value) {
		b.err = &BuildError{Field: "header value", Value: value}
		return false
	}
	if b.header == nil {
		b.header = make(http.Header)
	}
	return true
}

// Extension attaches v to the request's type-keyed extension bag,
// replacing any earlier value of the same dynamic type. A nil v is
// ignored.
func (b *Builder) Extension(v interface{}) *Builder {
	if b.err != nil {
		return b
	}
	b.ext.Set(v)
	return b
}

// Err returns the first error recorded by the builder, or nil. The
// same error is returned by the terminal operation, so checking Err
// mid-chain is optional.
func (b *Builder) Err() error {
	return b.err
}

// Build finalizes the builder and returns a request with an empty
// body, for bodyless requests such as GET, HEAD, or DELETE.
func (b *Builder) Build() (*Request, error) {
	return b.finalize(nil)
}

// Body finalizes the builder with the given body. The body may be
// nil, a string, a []byte, an io.Reader, or an io.ReadCloser; readers
// are drained and buffered per BodyBytes. A body that cannot be
// coerced or read is reported as a construction error.
func (b *Builder) Body(body interface{}) (*Request, error) {
	if b.err != nil || b.done {
		return b.finalize(nil)
	}
	p, err := BodyBytes(body)
	if err != nil {
		b.err = &BuildError{Field: "body", Value: fmt.Sprintf("%T", body), Err: err}
		return b.finalize(nil)
	}
	return b.finalize(p)
}

// JSON serializes v with codec.JSON, sets the Content-Type header to
// "application/json", and finalizes the builder with the serialized
// bytes as the request body.
//
// If v does not serialize, the returned error is a *codec.EncodeError;
// if the accumulated request state was already invalid, it is a
// *BuildError. The two are distinct so callers can tell a bad body
// value from a malformed request.
func (b *Builder) JSON(v interface{}) (*Request, error) {
	return b.encoded(codec.JSON, v)
}

// Form serializes v with codec.Form, sets the Content-Type header to
// "application/x-www-form-urlencoded", and finalizes the builder with
// the serialized bytes as the request body.
//
// The error contract is the same as for JSON.
func (b *Builder) Form(v interface{}) (*Request, error) {
	return b.encoded(codec.Form, v)
}

// Encoded serializes v with enc, sets the Content-Type header to the
// encoder's canonical media type, and finalizes the builder with the
// serialized bytes as the request body. JSON and Form are shorthands
// for Encoded with the built-in codecs.
func (b *Builder) Encoded(enc codec.Encoder, v interface{}) (*Request, error) {
	return b.encoded(enc, v)
}

func (b *Builder) encoded(enc codec.Encoder, v interface{}) (*Request, error) {
	if b.done {
		return nil, ErrConsumed
	}
	// Encode first: a serialization failure is reported even when the
	// builder already holds a construction error, matching the
	// precedence callers observe from the one-step body setters.
	p, err := enc.Encode(v)
	if err != nil {
		b.done = true
		return nil, err
	}
	if b.err == nil {
		if b.header == nil {
			b.header = make(http.Header)
		}
		b.header.Set("Content-Type", enc.ContentType())
	}
	return b.finalize(p)
}

func (b *Builder) finalize(body []byte) (*Request, error) {
	if b.done {
		return nil, ErrConsumed
	}
	b.done = true
	if b.err != nil {
		return nil, b.err
	}
	method := b.method
	if method == "" {
		method = "GET"
	}
	u := b.url
	if u == nil {
		u = &urlpkg.URL{Path: "/"}
	}
	proto := b.proto
	if proto == "" {
		proto = DefaultProto
	}
	header := b.header
	if header == nil {
		header = make(http.Header)
	}
	return &Request{
		Method:     method,
		URL:        u,
		Proto:      proto,
		Header:     header,
		Host:       u.Host,
		Extensions: b.ext,
		Body:       body,
	}, nil
}
