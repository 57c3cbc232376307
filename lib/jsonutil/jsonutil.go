package jsonutil

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalCompact encodes val without any insignificant whitespace and without a trailing newline.
func MarshalCompact(val any) ([]byte, error) {
	return json.Marshal(val)
}

// Unmarshal is used to read back what [MarshalCompact] produced.
func Unmarshal(data []byte, val any) error {
	return json.Unmarshal(data, val)
}
