package accountingv1

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

// File describes accounting.proto. It is registered with
// protoregistry.GlobalFiles so server reflection can describe the service
// and dynamic clients can build requests.
var File protoreflect.FileDescriptor

func init() {
	fd, err := protodesc.NewFile(fileDescriptorProto(), protoregistry.GlobalFiles)
	if err != nil {
		panic(fmt.Sprintf("accountingv1: invalid file descriptor: %v", err))
	}
	if err := protoregistry.GlobalFiles.RegisterFile(fd); err != nil {
		panic(fmt.Sprintf("accountingv1: register file descriptor: %v", err))
	}
	File = fd
}

const (
	typeUint64 = descriptorpb.FieldDescriptorProto_TYPE_UINT64
	typeUint32 = descriptorpb.FieldDescriptorProto_TYPE_UINT32
	typeInt64  = descriptorpb.FieldDescriptorProto_TYPE_INT64
	typeString = descriptorpb.FieldDescriptorProto_TYPE_STRING
	typeMsg    = descriptorpb.FieldDescriptorProto_TYPE_MESSAGE
)

func scalar(name string, num int32, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(num),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:   typ.Enum(),
	}
}

func repeated(name string, num int32, msg string) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(name),
		Number:   proto.Int32(num),
		Label:    descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum(),
		Type:     typeMsg.Enum(),
		TypeName: proto.String(".accounting." + msg),
	}
}

func message(name string, fields ...*descriptorpb.FieldDescriptorProto) *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{Name: proto.String(name), Field: fields}
}

func method(name string) *descriptorpb.MethodDescriptorProto {
	return &descriptorpb.MethodDescriptorProto{
		Name:       proto.String(name),
		InputType:  proto.String(".accounting." + name + "Request"),
		OutputType: proto.String(".accounting." + name + "Response"),
	}
}

// fileDescriptorProto mirrors accounting.proto; keep the two in sync.
func fileDescriptorProto() *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String("accounting.proto"),
		Package: proto.String("accounting"),
		Syntax:  proto.String("proto3"),
		Options: &descriptorpb.FileOptions{
			GoPackage: proto.String("github.com/simaogato/ledger-backend/internal/adapter/grpc/accounting/v1;accountingv1"),
		},
		MessageType: []*descriptorpb.DescriptorProto{
			message("CreateAccountRequest",
				scalar("req_id", 1, typeUint64),
				scalar("account_id", 2, typeUint32),
				scalar("balance", 3, typeInt64),
			),
			message("CreateAccountResponse",
				scalar("req_id", 1, typeUint64),
				scalar("account_id", 2, typeUint32),
			),
			message("GetBalanceRequest",
				scalar("req_id", 1, typeUint64),
				scalar("account_id", 2, typeUint32),
			),
			message("GetBalanceResponse",
				scalar("req_id", 1, typeUint64),
				scalar("account_id", 2, typeUint32),
				scalar("balance", 3, typeInt64),
			),
			message("TransferComponent",
				scalar("account_id", 1, typeUint32),
				scalar("money_delta", 2, typeInt64),
			),
			message("TransferRequest",
				scalar("req_id", 1, typeUint64),
				repeated("components", 2, "TransferComponent"),
			),
			message("TransferResponse",
				scalar("req_id", 1, typeUint64),
			),
			message("ResetRequest"),
			message("ResetResponse"),
			message("ListTransactionsRequest",
				scalar("req_id", 1, typeUint64),
			),
			message("TransactionEntry",
				scalar("id", 1, typeString),
				scalar("index", 2, typeUint32),
				scalar("req_id", 3, typeUint64),
				scalar("account_id", 4, typeUint32),
				scalar("amount", 5, typeInt64),
			),
			message("ListTransactionsResponse",
				repeated("entries", 1, "TransactionEntry"),
			),
			message("GetSummaryRequest"),
			message("GetSummaryResponse",
				scalar("account_count", 1, typeUint64),
				scalar("total_balance", 2, typeString),
			),
		},
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name: proto.String("AccountingService"),
			Method: []*descriptorpb.MethodDescriptorProto{
				method("CreateAccount"),
				method("GetBalance"),
				method("Transfer"),
				method("Reset"),
				method("ListTransactions"),
				method("GetSummary"),
			},
		}},
	}
}
