// Copyright 2026 The clientware Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package clientware provides a composable HTTP client layer: requests
are built fluently and sent through an interchangeable Transport that
middleware can decorate, without the caller depending on any one HTTP
client implementation.

Create a Client around a transport to begin making requests. The
adapter package turns any net/http style client into a Transport:

	client := clientware.NewClient(adapter.New(nil))
	resp, err := client.Get("https://www.example.com").Send(ctx)
	...
	resp, err := client.Put("https://www.example.com/upload").
		JSON(payload).
		Send(ctx)

Read response bodies through the one-shot reader in package request:

	var out Payload
	err = resp.Reader().JSON(&out)

Decorate the transport with middleware at construction time. Header
injection supports override, append, and insert-if-absent policies,
with the header value either fixed or computed per request:

	ua, err := clientware.SetHeaderOverriding("User-Agent",
		clientware.StaticValue("my-service/1.0"))
	...
	auth, err := clientware.BearerAuth(token)
	...
	client := clientware.NewClient(adapter.New(doer), ua, auth.Sensitive(true))

Middleware listed first is outermost and mutates requests first.

This layer constructs and composes; it does not transport. TLS,
connection pooling, redirects, retries, and timeouts all belong to the
injected transport or to the caller. Every failure is surfaced to the
immediate caller as a distinguishable error type, never swallowed,
retried, or logged: construction errors (*request.BuildError), body
serialization errors (*codec.EncodeError), body read and decode errors
(*request.ReadError, *request.DecodeError), and transport errors,
which pass through unchanged.
*/
package clientware
