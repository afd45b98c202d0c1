// Copyright 2026 The clientware Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the generic HTTP data model used throughout
clientware: the Request and Response types, the fluent Builder that
constructs requests, and the one-shot body Reader that consumes
responses.

The first core type is Request. For those familiar with the Go
standard HTTP library, net/http, a Request looks like a stripped-down
client-side http.Request with the body replaced by a simple []byte and
a type-keyed Extensions bag added. Fields are named and typed
consistently with http.Request wherever possible. Requests are not
tied to any concrete transport; the adapter package converts them to
and from net/http types.

Construct requests with a Builder:

	req, err := request.NewBuilder().
		Method("POST").
		URL("https://example.com/upload").
		JSON(payload)
	...

The builder validates methods, URLs, and header names and values
against the wire-format grammar at the point of insertion. Bad input
never silently degrades the request: the first violation is recorded
and surfaced as a *BuildError when the builder is finalized, and later
mutating calls become no-ops. Body serialization failures are reported
as *codec.EncodeError, a deliberately distinct type, so a caller can
tell a malformed request from a body value that would not serialize.

The second core type is Reader, which drains a Response body exactly
once and decodes it as raw bytes, UTF-8 text, JSON, or URL-encoded
form data:

	var result map[string]string
	err := resp.Reader().JSON(&result)
	...

Reader failures split into *ReadError (the body stream itself failed)
and *DecodeError (the bytes arrived but did not parse), so callers can
match on the failure origin with errors.As.
*/
package request
