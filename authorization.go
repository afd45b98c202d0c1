// Copyright 2026 The clientware Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package clientware

import (
	"encoding/base64"

	"github.com/gogama/clientware/request"
)

// An Authorization is middleware that manages the Authorization header
// on every request passing through the transport it wraps. It is a
// pre-configured header injection: the credential is fixed at
// construction time and unconditionally overrides any Authorization
// header already present on a request.
//
// Construct it with BasicAuth or BearerAuth. Since credentials travel
// in clear text, pairing this middleware with an HTTPS transport is
// strongly recommended, though not enforced here.
type Authorization struct {
	value     string
	sensitive bool
}

// BasicAuth returns authorization middleware using a username and
// password pair. The header value is "Basic " followed by the RFC 4648
// standard base64 encoding of "username:password".
//
// A username or password that yields an invalid header value (for
// example, one containing control characters) is a construction error.
func BasicAuth(username, password string) (*Authorization, error) {
	encoded := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	return newAuthorization("Basic " + encoded)
}

// BearerAuth returns authorization middleware using a bearer token,
// commonly used for OAuth 2. The header value is "Bearer " followed by
// the token.
//
// A token that yields an invalid header value is a construction error.
func BearerAuth(token string) (*Authorization, error) {
	return newAuthorization("Bearer " + token)
}

func newAuthorization(value string) (*Authorization, error) {
	if !request.ValidHeaderValue(value) {
		return nil, &request.BuildError{Field: "header value", Value: value}
	}
	return &Authorization{value: value}, nil
}

// Sensitive marks the injected header value as sensitive and returns
// the middleware for chaining. Requests decorated by a sensitive
// Authorization carry the header name in their request.SensitiveHeaders
// extension, which diagnostic renderers must honor (see
// request.Request.RedactedHeader). This is a metadata flag only; the
// wire value is unchanged.
//
// Call Sensitive at composition time, before the middleware is shared
// between requests.
func (a *Authorization) Sensitive(sensitive bool) *Authorization {
	a.sensitive = sensitive
	return a
}

// HeaderValue returns the exact Authorization header value this
// middleware injects.
func (a *Authorization) HeaderValue() string {
	return a.value
}

// Wrap implements Middleware.
func (a *Authorization) Wrap(next Transport) Transport {
	m := &SetHeader{
		name:      "Authorization",
		value:     StaticValue(a.value),
		mode:      modeOverride,
		sensitive: a.sensitive,
	}
	return m.Wrap(next)
}
