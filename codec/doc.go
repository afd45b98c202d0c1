// Copyright 2026 The clientware Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package codec defines the pluggable body encoding contract used by
// the request builder and body reader: an Encoder serializes a value
// to bytes and names its canonical media type, and a Decoder
// deserializes bytes into a value. Two codecs are built in, JSON and
// Form, each exposing the exact Content-Type string servers expect
// ("application/json" and "application/x-www-form-urlencoded").
// Nothing in clientware depends on a particular encoding library
// beyond these two operations, so callers can substitute their own.
package codec
