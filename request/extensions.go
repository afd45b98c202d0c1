// Copyright 2026 The clientware Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"reflect"
)

// Extensions is a type-keyed bag of auxiliary values carried by a
// Request. It holds at most one value per dynamic type, so the type
// itself is the key. Extensions let callers and middleware attach
// out-of-band data (correlation identifiers, policy markers, and the
// like) to a request without this package knowing their shape.
//
// The zero value is an empty bag ready for use. Extensions are not
// safe for concurrent mutation; a Request and its bag belong to a
// single execution path.
type Extensions struct {
	m map[reflect.Type]interface{}
}

// Set stores v in the bag, replacing any existing value of the same
// dynamic type. A nil v is ignored.
func (e *Extensions) Set(v interface{}) {
	if v == nil {
		return
	}
	if e.m == nil {
		e.m = make(map[reflect.Type]interface{})
	}
	e.m[reflect.TypeOf(v)] = v
}

// Get retrieves the bag value whose dynamic type matches the type
// target points to, storing it through target and reporting whether a
// value was found. Get panics if target is not a non-nil pointer.
//
// Usage follows the errors.As convention:
//
//	var marker TraceMarker
//	if req.Extensions.Get(&marker) {
//		...
//	}
func (e *Extensions) Get(target interface{}) bool {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		panic("clientware/request: extension target must be a non-nil pointer")
	}
	v, ok := e.m[rv.Type().Elem()]
	if !ok {
		return false
	}
	rv.Elem().Set(reflect.ValueOf(v))
	return true
}

// Delete removes the bag value, if any, whose dynamic type matches
// the type prototype has. The prototype's value is ignored; only its
// type matters.
func (e *Extensions) Delete(prototype interface{}) {
	if prototype == nil || e.m == nil {
		return
	}
	delete(e.m, reflect.TypeOf(prototype))
}

// Len returns the number of values in the bag.
func (e *Extensions) Len() int {
	return len(e.m)
}

// Clone returns an independent shallow copy of the bag.
func (e *Extensions) Clone() Extensions {
	if e.m == nil {
		return Extensions{}
	}
	m := make(map[reflect.Type]interface{}, len(e.m))
	for k, v := range e.m {
		m[k] = v
	}
	return Extensions{m: m}
}
