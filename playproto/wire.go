// -*- Mode: Go; indent-tabs-mode: t -*-

/*
 * Copyright (C) 2026 Aurora OSS
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License version 3 as
 * published by the Free Software Foundation.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

// Package playproto implements the binary wire messages exchanged with
// the store. The format is standard protobuf wire encoding; the messages
// are maintained by hand against observed traffic, so encoding and
// decoding are written directly on top of the protowire primitives
// instead of generated code.
package playproto

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// fieldFunc handles one field of a message during decoding. It returns
// the number of bytes consumed, or 0 for fields it does not know, which
// are then skipped.
type fieldFunc func(num protowire.Number, typ protowire.Type, b []byte) (int, error)

func unmarshalMessage(name string, b []byte, field fieldFunc) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("cannot decode %s: %v", name, protowire.ParseError(n))
		}
		b = b[n:]

		n, err := field(num, typ, b)
		if err != nil {
			return fmt.Errorf("cannot decode %s: %v", name, err)
		}
		if n == 0 {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return fmt.Errorf("cannot decode %s field %d: %v", name, num, protowire.ParseError(n))
			}
		}
		b = b[n:]
	}
	return nil
}

func errWireType(num protowire.Number) (int, error) {
	return 0, fmt.Errorf("unexpected wire type for field %d", num)
}

func consumeMessage(b []byte, num protowire.Number, typ protowire.Type, fn func(v []byte) error) (int, error) {
	if typ != protowire.BytesType {
		return errWireType(num)
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, fmt.Errorf("cannot decode field %d: %v", num, protowire.ParseError(n))
	}
	if err := fn(v); err != nil {
		return 0, err
	}
	return n, nil
}

func consumeString(b []byte, num protowire.Number, typ protowire.Type, dst *string) (int, error) {
	if typ != protowire.BytesType {
		return errWireType(num)
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, fmt.Errorf("cannot decode field %d: %v", num, protowire.ParseError(n))
	}
	*dst = string(v)
	return n, nil
}

func consumeStrings(b []byte, num protowire.Number, typ protowire.Type, dst *[]string) (int, error) {
	var s string
	n, err := consumeString(b, num, typ, &s)
	if err == nil {
		*dst = append(*dst, s)
	}
	return n, err
}

func consumeVarint(b []byte, num protowire.Number, typ protowire.Type) (uint64, int, error) {
	if typ != protowire.VarintType {
		_, err := errWireType(num)
		return 0, 0, err
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, fmt.Errorf("cannot decode field %d: %v", num, protowire.ParseError(n))
	}
	return v, n, nil
}

func consumeInt64(b []byte, num protowire.Number, typ protowire.Type, dst *int64) (int, error) {
	v, n, err := consumeVarint(b, num, typ)
	if err != nil {
		return 0, err
	}
	*dst = int64(v)
	return n, nil
}

func consumeInt(b []byte, num protowire.Number, typ protowire.Type, dst *int) (int, error) {
	v, n, err := consumeVarint(b, num, typ)
	if err != nil {
		return 0, err
	}
	*dst = int(v)
	return n, nil
}

func consumeBool(b []byte, num protowire.Number, typ protowire.Type, dst *bool) (int, error) {
	v, n, err := consumeVarint(b, num, typ)
	if err != nil {
		return 0, err
	}
	*dst = protowire.DecodeBool(v)
	return n, nil
}

func consumeFixed64(b []byte, num protowire.Number, typ protowire.Type, dst *uint64) (int, error) {
	if typ != protowire.Fixed64Type {
		return errWireType(num)
	}
	v, n := protowire.ConsumeFixed64(b)
	if n < 0 {
		return 0, fmt.Errorf("cannot decode field %d: %v", num, protowire.ParseError(n))
	}
	*dst = v
	return n, nil
}

// encoding helpers; zero values are omitted, as proto3 encoders do

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendStrings(b []byte, num protowire.Number, ss []string) []byte {
	for _, s := range ss {
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendString(b, s)
	}
	return b
}

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendInt64(b []byte, num protowire.Number, v int64) []byte {
	return appendVarint(b, num, uint64(v))
}

func appendInt(b []byte, num protowire.Number, v int) []byte {
	return appendVarint(b, num, uint64(v))
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(v))
}

func appendFixed64(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, v)
}

func appendMessage(b []byte, num protowire.Number, enc func([]byte) []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, enc(nil))
}
