// Copyright 2026 The clientware Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package clientware

import (
	"context"

	"github.com/gogama/clientware/request"
)

// A HeaderValue produces an optional header value for an in-flight
// request. It is the unit of configuration for the header injection
// middleware: a fixed value, no value at all, or a value computed from
// the request itself.
//
// Value returns the header value to insert and true, or "" and false
// to leave the request's headers untouched for this call.
//
// Implementations must be safe for concurrent use by multiple
// goroutines: a single middleware instance, and therefore its
// HeaderValue, is shared across every request flowing through the
// transports it decorates. Implementations must not retain per-request
// state between invocations.
type HeaderValue interface {
	Value(req *request.Request) (string, bool)
}

// StaticValue is a HeaderValue that always yields itself.
type StaticValue string

// Value returns string(v), true.
func (v StaticValue) Value(*request.Request) (string, bool) {
	return string(v), true
}

// NoValue is a HeaderValue that never yields a value, leaving every
// request untouched. It is occasionally useful for disabling a header
// injection site without recomposing the middleware stack.
type NoValue struct{}

// Value returns "", false.
func (NoValue) Value(*request.Request) (string, bool) {
	return "", false
}

// The HeaderValueFunc type is an adapter to allow the use of ordinary
// functions as header value producers. If f is a function with the
// appropriate signature, HeaderValueFunc(f) is a HeaderValue that
// calls f. The function must be safe to invoke concurrently from
// multiple goroutines.
type HeaderValueFunc func(req *request.Request) (string, bool)

// Value calls f(req).
func (f HeaderValueFunc) Value(req *request.Request) (string, bool) {
	return f(req)
}

type insertMode int

const (
	modeOverride insertMode = iota
	modeAppend
	modeIfAbsent
)

// SetHeader is middleware that applies a header insertion policy to
// every request passing through the transport it wraps. Construct it
// with SetHeaderOverriding, SetHeaderAppending, or SetHeaderIfAbsent.
//
// The middleware mutates only the request's header multimap; it
// performs no I/O of its own, and its readiness is exactly that of the
// wrapped transport.
type SetHeader struct {
	name      string
	value     HeaderValue
	mode      insertMode
	sensitive bool
}

// SetHeaderOverriding returns middleware that sets the named header
// from value on every request. If the producer yields a value, any
// existing values for the name are removed and replaced with the new
// one; if it yields nothing, the request is left untouched.
//
// The header name must satisfy the wire-format token grammar; an
// invalid name is a construction error.
func SetHeaderOverriding(name string, value HeaderValue) (*SetHeader, error) {
	return newSetHeader(name, value, modeOverride)
}

// SetHeaderAppending returns middleware that appends the named header
// from value on every request. If the producer yields a value, it is
// added as an additional value for the name, preserving existing
// values; if it yields nothing, the request is left untouched.
//
// The header name must satisfy the wire-format token grammar; an
// invalid name is a construction error.
func SetHeaderAppending(name string, value HeaderValue) (*SetHeader, error) {
	return newSetHeader(name, value, modeAppend)
}

// SetHeaderIfAbsent returns middleware that sets the named header from
// value only on requests that do not carry the header at all. The
// presence check happens before the producer is invoked, so a producer
// with observable side effects is never called for a request that
// already has the header.
//
// The header name must satisfy the wire-format token grammar; an
// invalid name is a construction error.
func SetHeaderIfAbsent(name string, value HeaderValue) (*SetHeader, error) {
	return newSetHeader(name, value, modeIfAbsent)
}

func newSetHeader(name string, value HeaderValue, mode insertMode) (*SetHeader, error) {
	if !request.ValidHeaderName(name) {
		return nil, &request.BuildError{Field: "header name", Value: name}
	}
	if value == nil {
		value = NoValue{}
	}
	return &SetHeader{name: name, value: value, mode: mode}, nil
}

// Wrap implements Middleware.
func (m *SetHeader) Wrap(next Transport) Transport {
	return &setHeaderTransport{next: next, m: m}
}

type setHeaderTransport struct {
	next Transport
	m    *SetHeader
}

func (t *setHeaderTransport) Do(ctx context.Context, req *request.Request) (*request.Response, error) {
	if err := t.m.apply(req); err != nil {
		return nil, err
	}
	return t.next.Do(ctx, req)
}

func (t *setHeaderTransport) Ready() error {
	return t.next.Ready()
}

func (m *SetHeader) apply(req *request.Request) error {
	switch m.mode {
	case modeOverride:
		if v, ok := m.value.Value(req); ok {
			return m.insert(req, v, true)
		}
	case modeAppend:
		if v, ok := m.value.Value(req); ok {
			return m.insert(req, v, false)
		}
	case modeIfAbsent:
		// Presence short-circuits before the producer runs; stateful
		// producers must not observe requests that already carry the
		// header.
		if len(req.Header.Values(m.name)) > 0 {
			return nil
		}
		if v, ok := m.value.Value(req); ok {
			return m.insert(req, v, true)
		}
	}
	return nil
}

func (m *SetHeader) insert(req *request.Request, value string, replace bool) error {
	if !request.ValidHeaderValue(value) {
		return &request.BuildError{Field: "header value", Value: value}
	}
	if replace {
		req.Header.Set(m.name, value)
	} else {
		req.Header.Add(m.name, value)
	}
	if m.sensitive {
		req.MarkSensitive(m.name)
	}
	return nil
}
