// Copyright 2026 The clientware Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"net/http"
)

// Redacted is the placeholder substituted for sensitive header values
// in the RedactedHeader rendering.
const Redacted = "[redacted]"

// SensitiveHeaders is the extension type under which a request records
// header names whose values must not appear in diagnostic or log
// output. It is a metadata marker only; it does not alter what is sent
// on the wire.
//
// Middleware that injects credentials (see the clientware root
// package's authorization middleware) adds the injected header name
// here when configured as sensitive. External logging collaborators
// are expected to render headers through RedactedHeader, or to consult
// IsSensitive, before emitting them.
type SensitiveHeaders []string

// MarkSensitive records name as sensitive on this request.
func (r *Request) MarkSensitive(name string) {
	var names SensitiveHeaders
	r.Extensions.Get(&names)
	for _, n := range names {
		if http.CanonicalHeaderKey(n) == http.CanonicalHeaderKey(name) {
			return
		}
	}
	r.Extensions.Set(append(names, name))
}

// IsSensitive reports whether name has been marked sensitive on this
// request. The comparison is case-insensitive, as header names are.
func (r *Request) IsSensitive(name string) bool {
	var names SensitiveHeaders
	if !r.Extensions.Get(&names) {
		return false
	}
	key := http.CanonicalHeaderKey(name)
	for _, n := range names {
		if http.CanonicalHeaderKey(n) == key {
			return true
		}
	}
	return false
}

// RedactedHeader returns a copy of the request headers with every
// value of a sensitive header name replaced by the Redacted
// placeholder. The request's own header map is left untouched.
func (r *Request) RedactedHeader() http.Header {
	h := make(http.Header, len(r.Header))
	for name, values := range r.Header {
		if r.IsSensitive(name) {
			h[name] = []string{Redacted}
			continue
		}
		h[name] = append([]string(nil), values...)
	}
	return h
}
