package accountingv1

import (
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/proto"
)

// Codec is a "proto" codec that marshals accounting messages with their own
// wire methods and everything else (health, reflection) with proto.
type Codec struct{}

var _ encoding.Codec = Codec{}

func (Codec) Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case Marshaler:
		return m.Marshal()
	case proto.Message:
		return proto.Marshal(m)
	}
	return nil, fmt.Errorf("accountingv1: cannot marshal %T", v)
}

func (Codec) Unmarshal(data []byte, v any) error {
	switch m := v.(type) {
	case Unmarshaler:
		return m.Unmarshal(data)
	case proto.Message:
		return proto.Unmarshal(data, m)
	}
	return fmt.Errorf("accountingv1: cannot unmarshal into %T", v)
}

func (Codec) Name() string {
	return "proto"
}
