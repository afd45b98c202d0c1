// Copyright 2026 The clientware Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package adapter

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gogama/clientware/request"
)

const nilCtxMsg = "clientware/adapter: nil context"

// An HTTPDoer implements a Do method in the same manner as the Go
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	//
	// The Do method must follow the contract documented on the Go
	// standard library http.Client from the net/http package.
	Do(r *http.Request) (*http.Response, error)
}

// A Transport bridges an HTTPDoer to the generic clientware.Transport
// contract. It converts each generic request to an http.Request,
// invokes the doer, and converts the http.Response back, passing the
// response body through as a stream without buffering. The adapter
// adds no flow control, concurrency limits, or policy of its own;
// readiness, redirects, pooling, and timeouts are whatever the doer
// provides.
//
// Conversion failure is surfaced immediately, before the doer is
// invoked, so a request that cannot be expressed in net/http terms
// never triggers I/O.
//
// A Transport is safe for concurrent use if its doer is, and Clone
// provides the cheap-copy semantics the clientware layer expects of
// transports: clones share the doer and its connection pool.
type Transport struct {
	doer HTTPDoer
}

// New returns a transport that sends requests through doer. If doer is
// nil, http.DefaultClient from the standard net/http package is used.
func New(doer HTTPDoer) *Transport {
	return &Transport{doer: doer}
}

// Clone returns a copy of the transport sharing the same underlying
// doer. Callers running concurrent request pipelines issue one
// single-use builder per clone.
func (t *Transport) Clone() *Transport {
	return &Transport{doer: t.doer}
}

// Ready implements clientware.Transport. An HTTPDoer accepts calls at
// any time, so Ready always reports readiness.
func (t *Transport) Ready() error {
	return nil
}

// Do implements clientware.Transport. The context, which must be
// non-nil, is attached to the converted http.Request, so cancelling it
// cancels the in-flight call per the net/http contract.
func (t *Transport) Do(ctx context.Context, req *request.Request) (*request.Response, error) {
	if ctx == nil {
		return nil, errors.New(nilCtxMsg)
	}
	if req == nil {
		return nil, errors.New("clientware/adapter: nil request")
	}
	hr, err := toHTTPRequest(ctx, req)
	if err != nil {
		// Fail fast: no I/O may happen for a request the native
		// client cannot represent.
		return nil, &request.BuildError{Field: "request", Value: describe(req), Err: err}
	}
	resp, err := t.httpDoer().Do(hr)
	if err != nil {
		return nil, err
	}
	return fromHTTPResponse(resp), nil
}

func (t *Transport) httpDoer() HTTPDoer {
	if t.doer == nil {
		return http.DefaultClient
	}
	return t.doer
}

var template, _ = http.NewRequest("GET", "/", nil)

func describe(req *request.Request) string {
	if req.URL == nil {
		return req.Method
	}
	return req.Method + " " + req.URL.String()
}

func toHTTPRequest(ctx context.Context, req *request.Request) (*http.Request, error) {
	if req.URL == nil {
		return nil, errors.New("nil URL")
	}
	if !request.ValidMethod(req.Method) {
		return nil, errors.New("invalid method")
	}
	if !req.URL.IsAbs() {
		return nil, errors.New("relative URL cannot be sent")
	}
	major, minor, ok := http.ParseHTTPVersion(req.Proto)
	if !ok {
		return nil, errors.New("invalid protocol version")
	}
	r := template.Clone(ctx)
	r.Method = req.Method
	r.URL = req.URL
	r.Proto = req.Proto
	r.ProtoMajor = major
	r.ProtoMinor = minor
	r.Header = req.Header
	r.Host = req.Host
	if len(req.Body) > 0 {
		body := req.Body
		r.Body = io.NopCloser(bytes.NewReader(body))
		r.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		}
		r.ContentLength = int64(len(body))
	}
	return r, nil
}

func fromHTTPResponse(resp *http.Response) *request.Response {
	body := resp.Body
	if body == nil {
		body = http.NoBody
	}
	return &request.Response{
		StatusCode:    resp.StatusCode,
		Status:        resp.Status,
		Proto:         resp.Proto,
		Header:        resp.Header,
		ContentLength: resp.ContentLength,
		Body:          body,
	}
}
