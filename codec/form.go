// Copyright 2026 The clientware Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"errors"
	urlpkg "net/url"

	"github.com/google/go-querystring/query"
	"github.com/gorilla/schema"
)

// Form is the built-in URL-encoded form codec. It stamps bodies with
// the exact media type "application/x-www-form-urlencoded".
//
// Encode accepts a url.Values (also as *url.Values or a plain
// map[string][]string) directly, or any struct
// accepted by github.com/google/go-querystring, which maps exported
// fields to form keys via `url:"..."` tags. Decode fills a *url.Values,
// or any struct pointer accepted by github.com/gorilla/schema; the
// schema decoder is configured to honor the same `url:"..."` tags so a
// struct round-trips through Encode and Decode unchanged.
var Form Codec = formCodec{}

// formDecoder is shared and safe for concurrent use; it caches struct
// metadata across calls.
var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.SetAliasTag("url")
	d.IgnoreUnknownKeys(true)
	return d
}

type formCodec struct{}

func (formCodec) Encode(v interface{}) ([]byte, error) {
	var values urlpkg.Values
	switch x := v.(type) {
	case urlpkg.Values:
		values = x
	case map[string][]string:
		values = urlpkg.Values(x)
	case *urlpkg.Values:
		if x == nil {
			return nil, &EncodeError{Codec: "form", Err: errors.New("nil url.Values")}
		}
		values = *x
	default:
		var err error
		values, err = query.Values(v)
		if err != nil {
			return nil, &EncodeError{Codec: "form", Err: err}
		}
	}
	return []byte(values.Encode()), nil
}

func (formCodec) Decode(data []byte, v interface{}) error {
	values, err := urlpkg.ParseQuery(string(data))
	if err != nil {
		return err
	}
	switch x := v.(type) {
	case *urlpkg.Values:
		if x == nil {
			return errors.New("nil url.Values target")
		}
		*x = values
		return nil
	default:
		return formDecoder.Decode(v, values)
	}
}

func (formCodec) ContentType() string {
	return "application/x-www-form-urlencoded"
}
