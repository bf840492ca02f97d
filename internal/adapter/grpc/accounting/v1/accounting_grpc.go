package accountingv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	AccountingService_CreateAccount_FullMethodName    = "/accounting.AccountingService/CreateAccount"
	AccountingService_GetBalance_FullMethodName       = "/accounting.AccountingService/GetBalance"
	AccountingService_Transfer_FullMethodName         = "/accounting.AccountingService/Transfer"
	AccountingService_Reset_FullMethodName            = "/accounting.AccountingService/Reset"
	AccountingService_ListTransactions_FullMethodName = "/accounting.AccountingService/ListTransactions"
	AccountingService_GetSummary_FullMethodName       = "/accounting.AccountingService/GetSummary"
)

// AccountingServiceClient is the client API for AccountingService.
type AccountingServiceClient interface {
	CreateAccount(ctx context.Context, in *CreateAccountRequest, opts ...grpc.CallOption) (*CreateAccountResponse, error)
	GetBalance(ctx context.Context, in *GetBalanceRequest, opts ...grpc.CallOption) (*GetBalanceResponse, error)
	Transfer(ctx context.Context, in *TransferRequest, opts ...grpc.CallOption) (*TransferResponse, error)
	Reset(ctx context.Context, in *ResetRequest, opts ...grpc.CallOption) (*ResetResponse, error)
	ListTransactions(ctx context.Context, in *ListTransactionsRequest, opts ...grpc.CallOption) (*ListTransactionsResponse, error)
	GetSummary(ctx context.Context, in *GetSummaryRequest, opts ...grpc.CallOption) (*GetSummaryResponse, error)
}

type accountingServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewAccountingServiceClient returns a client that encodes with Codec
// regardless of the connection's default codec.
func NewAccountingServiceClient(cc grpc.ClientConnInterface) AccountingServiceClient {
	return &accountingServiceClient{cc}
}

func (c *accountingServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *accountingServiceClient) CreateAccount(ctx context.Context, in *CreateAccountRequest, opts ...grpc.CallOption) (*CreateAccountResponse, error) {
	out := new(CreateAccountResponse)
	if err := c.invoke(ctx, AccountingService_CreateAccount_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *accountingServiceClient) GetBalance(ctx context.Context, in *GetBalanceRequest, opts ...grpc.CallOption) (*GetBalanceResponse, error) {
	out := new(GetBalanceResponse)
	if err := c.invoke(ctx, AccountingService_GetBalance_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *accountingServiceClient) Transfer(ctx context.Context, in *TransferRequest, opts ...grpc.CallOption) (*TransferResponse, error) {
	out := new(TransferResponse)
	if err := c.invoke(ctx, AccountingService_Transfer_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *accountingServiceClient) Reset(ctx context.Context, in *ResetRequest, opts ...grpc.CallOption) (*ResetResponse, error) {
	out := new(ResetResponse)
	if err := c.invoke(ctx, AccountingService_Reset_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *accountingServiceClient) ListTransactions(ctx context.Context, in *ListTransactionsRequest, opts ...grpc.CallOption) (*ListTransactionsResponse, error) {
	out := new(ListTransactionsResponse)
	if err := c.invoke(ctx, AccountingService_ListTransactions_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *accountingServiceClient) GetSummary(ctx context.Context, in *GetSummaryRequest, opts ...grpc.CallOption) (*GetSummaryResponse, error) {
	out := new(GetSummaryResponse)
	if err := c.invoke(ctx, AccountingService_GetSummary_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// AccountingServiceServer is the server API for AccountingService.
// Implementations must embed UnimplementedAccountingServiceServer.
type AccountingServiceServer interface {
	CreateAccount(context.Context, *CreateAccountRequest) (*CreateAccountResponse, error)
	GetBalance(context.Context, *GetBalanceRequest) (*GetBalanceResponse, error)
	Transfer(context.Context, *TransferRequest) (*TransferResponse, error)
	Reset(context.Context, *ResetRequest) (*ResetResponse, error)
	ListTransactions(context.Context, *ListTransactionsRequest) (*ListTransactionsResponse, error)
	GetSummary(context.Context, *GetSummaryRequest) (*GetSummaryResponse, error)
	mustEmbedUnimplementedAccountingServiceServer()
}

// UnimplementedAccountingServiceServer must be embedded to have forward
// compatible implementations.
type UnimplementedAccountingServiceServer struct{}

func (UnimplementedAccountingServiceServer) CreateAccount(context.Context, *CreateAccountRequest) (*CreateAccountResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateAccount not implemented")
}
func (UnimplementedAccountingServiceServer) GetBalance(context.Context, *GetBalanceRequest) (*GetBalanceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetBalance not implemented")
}
func (UnimplementedAccountingServiceServer) Transfer(context.Context, *TransferRequest) (*TransferResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Transfer not implemented")
}
func (UnimplementedAccountingServiceServer) Reset(context.Context, *ResetRequest) (*ResetResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Reset not implemented")
}
func (UnimplementedAccountingServiceServer) ListTransactions(context.Context, *ListTransactionsRequest) (*ListTransactionsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListTransactions not implemented")
}
func (UnimplementedAccountingServiceServer) GetSummary(context.Context, *GetSummaryRequest) (*GetSummaryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSummary not implemented")
}
func (UnimplementedAccountingServiceServer) mustEmbedUnimplementedAccountingServiceServer() {}

// RegisterAccountingServiceServer registers srv on s. The server must be
// created with grpc.ForceServerCodec(Codec{}).
func RegisterAccountingServiceServer(s grpc.ServiceRegistrar, srv AccountingServiceServer) {
	s.RegisterService(&AccountingService_ServiceDesc, srv)
}

func _AccountingService_CreateAccount_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateAccountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AccountingServiceServer).CreateAccount(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: AccountingService_CreateAccount_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AccountingServiceServer).CreateAccount(ctx, req.(*CreateAccountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AccountingService_GetBalance_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetBalanceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AccountingServiceServer).GetBalance(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: AccountingService_GetBalance_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AccountingServiceServer).GetBalance(ctx, req.(*GetBalanceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AccountingService_Transfer_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(TransferRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AccountingServiceServer).Transfer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: AccountingService_Transfer_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AccountingServiceServer).Transfer(ctx, req.(*TransferRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AccountingService_Reset_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ResetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AccountingServiceServer).Reset(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: AccountingService_Reset_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AccountingServiceServer).Reset(ctx, req.(*ResetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AccountingService_ListTransactions_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListTransactionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AccountingServiceServer).ListTransactions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: AccountingService_ListTransactions_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AccountingServiceServer).ListTransactions(ctx, req.(*ListTransactionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AccountingService_GetSummary_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetSummaryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AccountingServiceServer).GetSummary(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: AccountingService_GetSummary_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AccountingServiceServer).GetSummary(ctx, req.(*GetSummaryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AccountingService_ServiceDesc is the grpc.ServiceDesc for AccountingService.
var AccountingService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "accounting.AccountingService",
	HandlerType: (*AccountingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateAccount", Handler: _AccountingService_CreateAccount_Handler},
		{MethodName: "GetBalance", Handler: _AccountingService_GetBalance_Handler},
		{MethodName: "Transfer", Handler: _AccountingService_Transfer_Handler},
		{MethodName: "Reset", Handler: _AccountingService_Reset_Handler},
		{MethodName: "ListTransactions", Handler: _AccountingService_ListTransactions_Handler},
		{MethodName: "GetSummary", Handler: _AccountingService_GetSummary_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "accounting.proto",
}
