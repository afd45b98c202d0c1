// Copyright 2026 The clientware Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package clientware

import (
	"context"

	"github.com/gogama/clientware/request"
)

// Transport is the interface that wraps the basic Do and Ready
// methods.
//
// Do executes a single logical HTTP request and returns the response,
// or an error if the request could not be completed. The context
// controls cancellation of the in-flight call: cancelling it must
// propagate to whatever cancellation semantics the underlying client
// has. Do must not retain req after it returns.
//
// Ready is a non-blocking readiness check consulted before each call.
// A nil return means the transport can accept a request now; a non-nil
// return is reported to the caller in place of the call. Transports
// with no back-pressure of their own simply return nil.
//
// The adapter package provides a Transport over any net/http style
// client. Implementations must be safe for concurrent use by multiple
// goroutines, and should be cheap to clone where callers need several
// independent request pipelines over one connection pool.
type Transport interface {
	Do(ctx context.Context, req *request.Request) (*request.Response, error)
	Ready() error
}

// Middleware decorates a Transport, typically to mutate requests in
// flight without performing any I/O itself. Wrap returns a Transport
// that applies the middleware's behavior and then delegates to next.
//
// Middleware instances are created once, at composition time, and
// must be immutable thereafter: the same instance may decorate
// transports shared by many concurrent requests.
type Middleware interface {
	Wrap(next Transport) Transport
}

// The MiddlewareFunc type is an adapter to allow the use of ordinary
// functions as middleware. If f is a function with the appropriate
// signature, MiddlewareFunc(f) is a Middleware that calls f.
type MiddlewareFunc func(next Transport) Transport

// Wrap calls f(next).
func (f MiddlewareFunc) Wrap(next Transport) Transport {
	return f(next)
}

// Chain composes mw around t and returns the decorated transport. The
// first middleware listed becomes the outermost decorator, so for
// request mutation mw[0] applies first, then mw[1], and so on inward
// until the request reaches t:
//
//	t = clientware.Chain(t, auth, trace) // auth runs before trace
func Chain(t Transport, mw ...Middleware) Transport {
	for i := len(mw) - 1; i >= 0; i-- {
		t = mw[i].Wrap(t)
	}
	return t
}
