//go:build !jsonv2

package jsoncompat

import "encoding/json"

// Marshal uses the standard library encoder unless the jsonv2 build tag is set.
func Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal uses the standard library decoder unless the jsonv2 build tag is set.
func Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
