// Copyright 2026 The clientware Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"io"
	"net/http"
	urlpkg "net/url"

	"golang.org/x/net/http/httpguts"
)

// DefaultProto is the protocol version assigned to a request when the
// builder is not given an explicit version.
const DefaultProto = "HTTP/1.1"

// A Request is a logical HTTP request, decoupled from any concrete
// transport's native request type. Requests are produced by a Builder
// and executed by a Transport (see the clientware root package), which
// converts them to whatever its underlying client understands.
//
// The field structure mirrors the client-side fields of http.Request
// (net/http). Server-only fields are omitted, and the body is a
// pre-buffered []byte because this layer hands a complete request to
// the transport in one piece.
//
// A Request is created per call and is not mutated after it has been
// handed to a transport, with one exception: middleware wrapping the
// transport may adjust headers before delegating inward. Each Request
// owns its header map and extension bag outright, so no state is
// shared between requests.
type Request struct {
	// Method specifies the HTTP method (GET, POST, PUT, etc.). It is
	// never empty: the builder substitutes GET when no method was set.
	Method string

	// URL specifies the URL to access. It is never nil: the builder
	// substitutes the root path "/" when no URL was set.
	URL *urlpkg.URL

	// Proto is the HTTP protocol version, e.g. "HTTP/1.1". It is never
	// empty: the builder substitutes DefaultProto when no version was
	// set.
	Proto string

	// Header contains the request header fields. Header names are
	// case-insensitive and each name maps to an ordered list of
	// values, per the http.Header contract.
	Header http.Header

	// Host optionally overrides the Host header to send. If empty, the
	// value of URL.Host is sent.
	Host string

	// Extensions is a type-keyed bag of auxiliary values attached to
	// this request. It holds at most one value per dynamic type.
	Extensions Extensions

	// Body is the pre-buffered request body. A nil or empty body means
	// no request body is sent, as on a typical GET or DELETE.
	Body []byte
}

// A Response is a logical HTTP response, decoupled from any concrete
// transport's native response type.
//
// The Body stream is exclusively owned by whoever holds the Response.
// It is lazily consumed: nothing is read from it until the holder
// drains it, typically through a Reader obtained from the Reader
// method. Once drained it cannot be re-read.
type Response struct {
	// StatusCode is the HTTP status code, e.g. 200.
	StatusCode int

	// Status is the full status line text, e.g. "200 OK". It may be
	// empty if the transport did not report one.
	Status string

	// Proto is the HTTP protocol version of the response.
	Proto string

	// Header contains the response header fields.
	Header http.Header

	// ContentLength records the length of the body as declared by the
	// transport. The value -1 indicates the length is unknown.
	ContentLength int64

	// Body is the response body stream. It is never nil for responses
	// produced by the adapter package; transports constructing
	// responses by hand should use http.NoBody rather than nil for an
	// empty body.
	Body io.ReadCloser
}

// Reader returns a one-shot body reader that consumes the response
// body. See the Reader type for the available decode operations.
func (r *Response) Reader() *Reader {
	return NewReader(r.Body)
}

// ValidMethod reports whether method satisfies the token grammar of
// RFC 7230 section 3.2.6. HTTP methods share the token grammar with
// header field names.
func ValidMethod(method string) bool {
	return method != "" && httpguts.ValidHeaderFieldName(method)
}

// ValidHeaderName reports whether name is a valid header field name
// per the wire-format token grammar.
func ValidHeaderName(name string) bool {
	return name != "" && httpguts.ValidHeaderFieldName(name)
}

// ValidHeaderValue reports whether value is a valid header field value
// per the wire-format grammar: visible ASCII and spaces or horizontal
// tabs, no control characters.
func ValidHeaderValue(value string) bool {
	return httpguts.ValidHeaderFieldValue(value)
}
