// Copyright 2026 The clientware Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type traceMarker struct{ ID string }

type otherMarker struct{ N int }

func TestExtensions(t *testing.T) {
	var ext Extensions
	assert.Equal(t, 0, ext.Len())

	var m traceMarker
	assert.False(t, ext.Get(&m))

	ext.Set(traceMarker{ID: "t-1"})
	ext.Set(otherMarker{N: 7})
	assert.Equal(t, 2, ext.Len())

	require.True(t, ext.Get(&m))
	assert.Equal(t, "t-1", m.ID)

	// One value per type: same-typed Set replaces.
	ext.Set(traceMarker{ID: "t-2"})
	assert.Equal(t, 2, ext.Len())
	require.True(t, ext.Get(&m))
	assert.Equal(t, "t-2", m.ID)

	ext.Delete(traceMarker{})
	assert.Equal(t, 1, ext.Len())
	assert.False(t, ext.Get(&m))

	var o otherMarker
	require.True(t, ext.Get(&o))
	assert.Equal(t, 7, o.N)
}

func TestExtensionsNilIgnored(t *testing.T) {
	var ext Extensions
	ext.Set(nil)
	assert.Equal(t, 0, ext.Len())
}

func TestExtensionsGetBadTarget(t *testing.T) {
	var ext Extensions
	assert.Panics(t, func() { ext.Get(traceMarker{}) })
	assert.Panics(t, func() { ext.Get((*traceMarker)(nil)) })
}

func TestExtensionsClone(t *testing.T) {
	var ext Extensions
	ext.Set(traceMarker{ID: "t-1"})
	clone := ext.Clone()
	clone.Set(traceMarker{ID: "t-2"})

	var m traceMarker
	require.True(t, ext.Get(&m))
	assert.Equal(t, "t-1", m.ID)
	require.True(t, clone.Get(&m))
	assert.Equal(t, "t-2", m.ID)
}

func TestSensitiveHeaders(t *testing.T) {
	req := &Request{Header: make(http.Header)}
	req.Header.Set("Authorization", "Bearer abacaba")
	req.Header.Set("Accept", "application/json")

	assert.False(t, req.IsSensitive("Authorization"))
	req.MarkSensitive("authorization")
	assert.True(t, req.IsSensitive("Authorization"))
	assert.True(t, req.IsSensitive("AUTHORIZATION"))
	assert.False(t, req.IsSensitive("Accept"))

	// Marking twice records one name.
	req.MarkSensitive("Authorization")
	var names SensitiveHeaders
	require.True(t, req.Extensions.Get(&names))
	assert.Len(t, names, 1)

	redacted := req.RedactedHeader()
	assert.Equal(t, []string{Redacted}, redacted.Values("Authorization"))
	assert.Equal(t, "application/json", redacted.Get("Accept"))
	// The request's own headers are untouched.
	assert.Equal(t, "Bearer abacaba", req.Header.Get("Authorization"))
}
