// Copyright 2026 The clientware Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package clientware

import (
	"context"
	"errors"

	"github.com/gogama/clientware/codec"
	"github.com/gogama/clientware/request"
)

const (
	nilCtxMsg       = "clientware: nil context"
	nilTransportMsg = "clientware: nil transport"
)

// ErrRequestSent is returned by Send on a RequestBuilder whose request
// has already been dispatched. A RequestBuilder is single-use: it
// stands in for an exclusive claim on its transport for the duration
// of one call, so a second Send through the same builder is refused
// rather than silently issuing a second request.
var ErrRequestSent = errors.New("clientware: request already sent")

// A Client executes logical HTTP requests through a Transport,
// optionally decorated with middleware. It is the thin glue between a
// constructed request and the transport that carries it: Do checks the
// transport's readiness, delegates the call, and propagates the typed
// response or the transport's error unchanged. Client never retries,
// never logs, and holds no per-request state.
//
// A Client is safe for concurrent use by multiple goroutines provided
// its Transport is; the middleware stack is composed once, at
// construction time, and immutable thereafter. Callers who need
// several concurrent request pipelines with exclusive builder
// semantics should clone the transport (transports are required to be
// cheaply cloneable, sharing underlying connection pools) and create
// one Client per clone.
type Client struct {
	transport Transport
}

// NewClient returns a client that sends requests through t decorated
// by mw. The first middleware listed is outermost, per Chain. NewClient
// panics if t is nil; there is no usable default transport at this
// layer, and the adapter package is the usual source of one.
func NewClient(t Transport, mw ...Middleware) *Client {
	if t == nil {
		panic(nilTransportMsg)
	}
	return &Client{transport: Chain(t, mw...)}
}

// Transport returns the client's transport with its middleware stack
// applied.
func (c *Client) Transport() Transport {
	return c.transport
}

// Do executes req and returns the response, or an error if the
// transport was not ready or the call failed. The context, which must
// be non-nil, cancels the in-flight call; cancellation propagates to
// the transport's own cancellation semantics.
func (c *Client) Do(ctx context.Context, req *request.Request) (*request.Response, error) {
	if ctx == nil {
		return nil, errors.New(nilCtxMsg)
	}
	if err := c.transport.Ready(); err != nil {
		return nil, err
	}
	return c.transport.Do(ctx, req)
}

// NewRequest returns a single-use request builder bound to this
// client. The builder starts from the defaults documented on
// request.Builder: method GET, URL "/", protocol version
// request.DefaultProto.
func (c *Client) NewRequest() *RequestBuilder {
	return &RequestBuilder{c: c, b: request.NewBuilder()}
}

// Get returns a request builder for a GET to the specified URL.
func (c *Client) Get(url string) *RequestBuilder {
	return c.NewRequest().Method("GET").URL(url)
}

// Head returns a request builder for a HEAD to the specified URL.
func (c *Client) Head(url string) *RequestBuilder {
	return c.NewRequest().Method("HEAD").URL(url)
}

// Post returns a request builder for a POST to the specified URL.
func (c *Client) Post(url string) *RequestBuilder {
	return c.NewRequest().Method("POST").URL(url)
}

// Put returns a request builder for a PUT to the specified URL.
func (c *Client) Put(url string) *RequestBuilder {
	return c.NewRequest().Method("PUT").URL(url)
}

// Patch returns a request builder for a PATCH to the specified URL.
func (c *Client) Patch(url string) *RequestBuilder {
	return c.NewRequest().Method("PATCH").URL(url)
}

// Delete returns a request builder for a DELETE to the specified URL.
func (c *Client) Delete(url string) *RequestBuilder {
	return c.NewRequest().Method("DELETE").URL(url)
}

type bodyKind int

const (
	bodyNone bodyKind = iota
	bodyRaw
	bodyJSON
	bodyForm
	bodyEncoded
)

// A RequestBuilder accumulates request state fluently and, once a
// body (or the absence of one) is fixed, sends the request through
// the client it is bound to. It mirrors request.Builder and shares its
// sticky-error discipline: invalid input recorded during building
// surfaces from Send, before the transport is ever invoked.
//
// A RequestBuilder is transient and single-use. It represents an
// exclusive claim on one request slot of its client's transport; after
// Send returns, the builder is spent and further Send calls return
// ErrRequestSent. Build a new RequestBuilder per request; for
// concurrent requests, issue one builder per transport clone.
//
// A RequestBuilder must not be used from multiple goroutines.
type RequestBuilder struct {
	c    *Client
	b    *request.Builder
	kind bodyKind
	body interface{}
	enc  codec.Encoder
	sent bool
}

// Method sets the HTTP method for this request. By default this is
// GET.
func (rb *RequestBuilder) Method(method string) *RequestBuilder {
	rb.b.Method(method)
	return rb
}

// URL sets the URL for this request. By default this is the root path
// "/".
func (rb *RequestBuilder) URL(rawurl string) *RequestBuilder {
	rb.b.URL(rawurl)
	return rb
}

// Proto sets the HTTP protocol version for this request. By default
// this is request.DefaultProto.
func (rb *RequestBuilder) Proto(proto string) *RequestBuilder {
	rb.b.Proto(proto)
	return rb
}

// Header sets a header on this request, replacing any values set
// earlier on the builder.
func (rb *RequestBuilder) Header(name, value string) *RequestBuilder {
	rb.b.Header(name, value)
	return rb
}

// AddHeader appends a header value on this request, preserving values
// set earlier on the builder.
func (rb *RequestBuilder) AddHeader(name, value string) *RequestBuilder {
	rb.b.AddHeader(name, value)
	return rb
}

// Extension attaches a type-keyed extension value to this request.
func (rb *RequestBuilder) Extension(v interface{}) *RequestBuilder {
	rb.b.Extension(v)
	return rb
}

// Body fixes the request body. The body may be nil, a string, a
// []byte, an io.Reader, or an io.ReadCloser, per request.BodyBytes.
func (rb *RequestBuilder) Body(body interface{}) *RequestBuilder {
	rb.kind = bodyRaw
	rb.body = body
	return rb
}

// JSON fixes the request body to the JSON serialization of v and sets
// the Content-Type header to "application/json". A value that does not
// serialize surfaces from Send as a *codec.EncodeError.
func (rb *RequestBuilder) JSON(v interface{}) *RequestBuilder {
	rb.kind = bodyJSON
	rb.body = v
	return rb
}

// Form fixes the request body to the URL-encoded serialization of v
// and sets the Content-Type header to
// "application/x-www-form-urlencoded". A value that does not serialize
// surfaces from Send as a *codec.EncodeError.
func (rb *RequestBuilder) Form(v interface{}) *RequestBuilder {
	rb.kind = bodyForm
	rb.body = v
	return rb
}

// Encoded fixes the request body to the serialization of v by enc and
// sets the Content-Type header to the encoder's canonical media type.
func (rb *RequestBuilder) Encoded(enc codec.Encoder, v interface{}) *RequestBuilder {
	rb.kind = bodyEncoded
	rb.enc = enc
	rb.body = v
	return rb
}

// Err returns the first construction error recorded by the builder,
// or nil. The same error is returned by Send, so checking Err
// mid-chain is optional.
func (rb *RequestBuilder) Err() error {
	return rb.b.Err()
}

// Send finalizes the request and executes it through the bound
// client, returning the typed response or an error.
//
// Errors are surfaced in a fixed order: a reused builder returns
// ErrRequestSent; construction errors (*request.BuildError) and body
// serialization errors (*codec.EncodeError) are returned before the
// transport is invoked, with no I/O attempted; only a well-formed
// request reaches the transport, whose errors are propagated
// unchanged.
func (rb *RequestBuilder) Send(ctx context.Context) (*request.Response, error) {
	if rb.sent {
		return nil, ErrRequestSent
	}
	rb.sent = true
	req, err := rb.finalize()
	if err != nil {
		return nil, err
	}
	return rb.c.Do(ctx, req)
}

func (rb *RequestBuilder) finalize() (*request.Request, error) {
	switch rb.kind {
	case bodyRaw:
		return rb.b.Body(rb.body)
	case bodyJSON:
		return rb.b.JSON(rb.body)
	case bodyForm:
		return rb.b.Form(rb.body)
	case bodyEncoded:
		return rb.b.Encoded(rb.enc, rb.body)
	default:
		return rb.b.Build()
	}
}
