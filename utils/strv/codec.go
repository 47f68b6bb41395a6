// File: codec.go
// Title: Encoding Interop
// Description: Text, YAML, MessagePack and CBOR encoding of values plus
//              conversion helpers between values and Go strings.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package strv

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/msto63/strv/core/errors"
)

// Decoding always produces an owned value through Copy, so allocator limits
// apply and the previous owner of the target is released.

var cborEncMode = func() cbor.EncMode {
	em, _ := cbor.CanonicalEncOptions().EncMode()
	return em
}()

// MarshalText implements encoding.TextMarshaler
func (v Value) MarshalText() ([]byte, error) {
	return append([]byte(nil), v.read("strv.MarshalText")...), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (v *Value) UnmarshalText(text []byte) error {
	return Copy(v, Ref(text))
}

// MarshalYAML encodes v as a YAML string
func (v Value) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}

// UnmarshalYAML decodes a YAML scalar into an owned value
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return errors.StrvDecodeFailed("strv.UnmarshalYAML", "yaml", err)
	}
	return Copy(v, Lit(s))
}

// EncodeMsgpack encodes v as a MessagePack bin value
func (v Value) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeBytes(v.wire("strv.EncodeMsgpack"))
}

// DecodeMsgpack decodes a MessagePack bin or str value into an owned value
func (v *Value) DecodeMsgpack(dec *msgpack.Decoder) error {
	b, err := dec.DecodeBytes()
	if err != nil {
		return errors.StrvDecodeFailed("strv.DecodeMsgpack", "msgpack", err)
	}
	return Copy(v, Ref(b))
}

// MarshalCBOR encodes v as a canonical CBOR byte string
func (v Value) MarshalCBOR() ([]byte, error) {
	return cborEncMode.Marshal(v.wire("strv.MarshalCBOR"))
}

// UnmarshalCBOR decodes a CBOR byte string into an owned value
func (v *Value) UnmarshalCBOR(data []byte) error {
	var b []byte
	if err := cbor.Unmarshal(data, &b); err != nil {
		return errors.StrvDecodeFailed("strv.UnmarshalCBOR", "cbor", err)
	}
	return Copy(v, Ref(b))
}

// wire returns the bytes of v with Null mapped to an empty, non-nil slice
// so that encoders write an empty string instead of nil.
func (v Value) wire(operation string) []byte {
	d := v.read(operation)
	if d == nil {
		return emptyData
	}
	return d
}

// Values returns references to the given strings
func Values(ss ...string) []Value {
	out := make([]Value, len(ss))
	for i, s := range ss {
		out[i] = Lit(s)
	}
	return out
}

// Strings returns copies of the given values as Go strings
func Strings(vs []Value) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.String()
	}
	return out
}
