// Copyright 2026 The clientware Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package adapter bridges the generic clientware.Transport contract
// onto any net/http style client. Anything with a Do method matching
// http.Client satisfies the HTTPDoer interface and can carry
// clientware requests:
//
//	t := adapter.New(&http.Client{Timeout: 10 * time.Second})
//	client := clientware.NewClient(t)
//
// Passing nil to New uses http.DefaultClient. The adapter converts
// request types in both directions and nothing more: conversion
// failures return before any I/O, response bodies stream through
// unbuffered, and all connection behavior remains the doer's.
package adapter
