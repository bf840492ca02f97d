package accountingv1

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// Marshaler is implemented by every accounting message.
type Marshaler interface {
	Marshal() ([]byte, error)
}

// Unmarshaler is implemented by pointers to every accounting message.
type Unmarshaler interface {
	Unmarshal(b []byte) error
}

// fieldFunc consumes the value of field num and reports how many bytes it
// read. Returning 0 skips the field as unknown.
type fieldFunc func(num protowire.Number, typ protowire.Type, b []byte) (int, error)

func unmarshalFields(b []byte, field fieldFunc) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		n, err := field(num, typ, b)
		if err != nil {
			return err
		}
		if n == 0 {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return protowire.ParseError(n)
			}
		}
		b = b[n:]
	}
	return nil
}

func consumeVarint(typ protowire.Type, b []byte, dst *uint64) (int, error) {
	if typ != protowire.VarintType {
		return 0, nil
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	*dst = v
	return n, nil
}

func consumeUint32(typ protowire.Type, b []byte, dst *uint32) (int, error) {
	var v uint64
	n, err := consumeVarint(typ, b, &v)
	if n > 0 {
		*dst = uint32(v)
	}
	return n, err
}

func consumeInt64(typ protowire.Type, b []byte, dst *int64) (int, error) {
	var v uint64
	n, err := consumeVarint(typ, b, &v)
	if n > 0 {
		*dst = int64(v)
	}
	return n, err
}

func consumeBytes(typ protowire.Type, b []byte, dst *[]byte) (int, error) {
	if typ != protowire.BytesType {
		return 0, nil
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	*dst = v
	return n, nil
}

func consumeString(typ protowire.Type, b []byte, dst *string) (int, error) {
	var v []byte
	n, err := consumeBytes(typ, b, &v)
	if n > 0 {
		*dst = string(v)
	}
	return n, err
}

// appendVarint omits zero values, as proto3 does for scalar fields.
func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

// appendMessage always writes the field, so empty repeated elements survive.
func appendMessage(b []byte, num protowire.Number, msg []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}
