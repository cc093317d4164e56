//go:build jsonv2

package jsoncompat

import json "encoding/json/v2"

// Marshal uses encoding/json/v2 when the jsonv2 build tag is set.
func Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal uses encoding/json/v2 when the jsonv2 build tag is set.
func Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
