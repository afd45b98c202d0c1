// Copyright 2026 The clientware Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package clientware

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogama/clientware/request"
)

// countingValue counts producer invocations so tests can verify the
// if-absent short-circuit.
type countingValue struct {
	calls int
	value string
	yield bool
}

func (v *countingValue) Value(*request.Request) (string, bool) {
	v.calls++
	return v.value, v.yield
}

func newRequestWithValues(t *testing.T, name string, values ...string) *request.Request {
	t.Helper()
	b := request.NewBuilder().URL("http://host/")
	for _, v := range values {
		b.AddHeader(name, v)
	}
	req, err := b.Build()
	require.NoError(t, err)
	return req
}

func applyHeaderPolicy(t *testing.T, m *SetHeader, req *request.Request) *request.Request {
	t.Helper()
	inner := &recordingTransport{}
	_, err := m.Wrap(inner).Do(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 1, inner.calls)
	return inner.last
}

func TestSetHeaderOverriding(t *testing.T) {
	for _, existing := range [][]string{nil, {"old"}, {"a", "b", "c"}} {
		req := newRequestWithValues(t, "X-Test", existing...)
		m, err := SetHeaderOverriding("X-Test", StaticValue("new"))
		require.NoError(t, err)
		seen := applyHeaderPolicy(t, m, req)
		assert.Equal(t, []string{"new"}, seen.Header.Values("X-Test"))
	}
}

func TestSetHeaderOverridingNoValue(t *testing.T) {
	req := newRequestWithValues(t, "X-Test", "a", "b")
	m, err := SetHeaderOverriding("X-Test", NoValue{})
	require.NoError(t, err)
	seen := applyHeaderPolicy(t, m, req)
	assert.Equal(t, []string{"a", "b"}, seen.Header.Values("X-Test"))
}

func TestSetHeaderAppending(t *testing.T) {
	for _, existing := range [][]string{nil, {"a"}, {"a", "b"}} {
		req := newRequestWithValues(t, "X-Test", existing...)
		m, err := SetHeaderAppending("X-Test", StaticValue("new"))
		require.NoError(t, err)
		seen := applyHeaderPolicy(t, m, req)
		assert.Equal(t, append(append([]string{}, existing...), "new"), seen.Header.Values("X-Test"))
	}
}

func TestSetHeaderAppendingNoValue(t *testing.T) {
	req := newRequestWithValues(t, "X-Test", "a")
	m, err := SetHeaderAppending("X-Test", NoValue{})
	require.NoError(t, err)
	seen := applyHeaderPolicy(t, m, req)
	assert.Equal(t, []string{"a"}, seen.Header.Values("X-Test"))
}

func TestSetHeaderIfAbsent(t *testing.T) {
	t.Run("absent inserts", func(t *testing.T) {
		req := newRequestWithValues(t, "X-Test")
		v := &countingValue{value: "new", yield: true}
		m, err := SetHeaderIfAbsent("X-Test", v)
		require.NoError(t, err)
		seen := applyHeaderPolicy(t, m, req)
		assert.Equal(t, []string{"new"}, seen.Header.Values("X-Test"))
		assert.Equal(t, 1, v.calls)
	})
	t.Run("present leaves untouched without invoking producer", func(t *testing.T) {
		req := newRequestWithValues(t, "X-Test", "a", "b")
		v := &countingValue{value: "new", yield: true}
		m, err := SetHeaderIfAbsent("X-Test", v)
		require.NoError(t, err)
		seen := applyHeaderPolicy(t, m, req)
		assert.Equal(t, []string{"a", "b"}, seen.Header.Values("X-Test"))
		assert.Equal(t, 0, v.calls)
	})
	t.Run("absent with no value leaves untouched", func(t *testing.T) {
		req := newRequestWithValues(t, "X-Test")
		v := &countingValue{yield: false}
		m, err := SetHeaderIfAbsent("X-Test", v)
		require.NoError(t, err)
		seen := applyHeaderPolicy(t, m, req)
		assert.Empty(t, seen.Header.Values("X-Test"))
		assert.Equal(t, 1, v.calls)
	})
}

func TestSetHeaderComputedValue(t *testing.T) {
	req, err := request.NewBuilder().Method("POST").URL("http://host/upload").Build()
	require.NoError(t, err)
	m, merr := SetHeaderOverriding("X-Method-Echo", HeaderValueFunc(
		func(req *request.Request) (string, bool) {
			return req.Method, true
		}))
	require.NoError(t, merr)
	seen := applyHeaderPolicy(t, m, req)
	assert.Equal(t, "POST", seen.Header.Get("X-Method-Echo"))
}

func TestSetHeaderInvalidName(t *testing.T) {
	m, err := SetHeaderOverriding("bad name", StaticValue("v"))
	assert.Nil(t, m)
	var be *request.BuildError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "header name", be.Field)
}

func TestSetHeaderInvalidProducedValue(t *testing.T) {
	req := newRequestWithValues(t, "X-Test")
	m, err := SetHeaderOverriding("X-Test", StaticValue("bad\x00value"))
	require.NoError(t, err)
	inner := &recordingTransport{}
	resp, err := m.Wrap(inner).Do(context.Background(), req)
	assert.Nil(t, resp)
	var be *request.BuildError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "header value", be.Field)
	// The wrapped transport never sees a request with a bad header.
	assert.Equal(t, 0, inner.calls)
}

func TestSetHeaderReadiness(t *testing.T) {
	inner := &recordingTransport{readyErr: assert.AnError}
	m, err := SetHeaderOverriding("X-Test", StaticValue("v"))
	require.NoError(t, err)
	assert.Same(t, assert.AnError, m.Wrap(inner).Ready())
}

func TestChainOrder(t *testing.T) {
	outer, err := SetHeaderAppending("X-Order", StaticValue("outer"))
	require.NoError(t, err)
	innerMW, err := SetHeaderAppending("X-Order", StaticValue("inner"))
	require.NoError(t, err)

	inner := &recordingTransport{}
	chained := Chain(inner, outer, innerMW)

	req := newRequestWithValues(t, "X-Order")
	_, err = chained.Do(context.Background(), req)
	require.NoError(t, err)
	// The first middleware listed is outermost and mutates first.
	assert.Equal(t, []string{"outer", "inner"}, inner.last.Header.Values("X-Order"))
}
