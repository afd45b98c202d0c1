// Copyright 2026 The clientware Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/json"
)

// JSON is the built-in JSON codec. It encodes with encoding/json and
// stamps bodies with the exact media type "application/json".
var JSON Codec = jsonCodec{}

type jsonCodec struct{}

func (jsonCodec) Encode(v interface{}) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, &EncodeError{Codec: "json", Err: err}
	}
	return b, nil
}

func (jsonCodec) Decode(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) ContentType() string {
	return "application/json"
}
