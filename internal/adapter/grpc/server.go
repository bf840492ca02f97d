package grpc

import (
	"context"
	"errors"
	"math"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	accountingv1 "github.com/simaogato/ledger-backend/internal/adapter/grpc/accounting/v1"
	"github.com/simaogato/ledger-backend/internal/domain"
	"github.com/simaogato/ledger-backend/internal/usecase/ledger"
)

// Server implements the AccountingService gRPC server
type Server struct {
	accountingv1.UnimplementedAccountingServiceServer

	LedgerService *ledger.LedgerService
}

// NewServer creates a new gRPC server instance
func NewServer(ledgerService *ledger.LedgerService) *Server {
	return &Server{
		LedgerService: ledgerService,
	}
}

// CreateAccount handles the CreateAccount RPC
func (s *Server) CreateAccount(ctx context.Context, req *accountingv1.CreateAccountRequest) (*accountingv1.CreateAccountResponse, error) {
	reqID, err := parseRequestID(req.GetReqId())
	if err != nil {
		return nil, err
	}

	input := ledger.CreateAccountInput{
		RequestID: reqID,
		AccountID: domain.AccountID(req.GetAccountId()),
		Balance:   req.GetBalance(),
	}

	if _, err := s.LedgerService.CreateAccount(ctx, input); err != nil {
		return nil, mapError(err)
	}

	return &accountingv1.CreateAccountResponse{
		ReqId:     req.GetReqId(),
		AccountId: req.GetAccountId(),
	}, nil
}

// GetBalance handles the GetBalance RPC
func (s *Server) GetBalance(ctx context.Context, req *accountingv1.GetBalanceRequest) (*accountingv1.GetBalanceResponse, error) {
	reqID, err := parseRequestID(req.GetReqId())
	if err != nil {
		return nil, err
	}

	balance, err := s.LedgerService.GetBalance(ctx, ledger.GetBalanceInput{
		RequestID: reqID,
		AccountID: domain.AccountID(req.GetAccountId()),
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &accountingv1.GetBalanceResponse{
		ReqId:     req.GetReqId(),
		AccountId: req.GetAccountId(),
		Balance:   balance,
	}, nil
}

// Transfer handles the Transfer RPC
func (s *Server) Transfer(ctx context.Context, req *accountingv1.TransferRequest) (*accountingv1.TransferResponse, error) {
	reqID, err := parseRequestID(req.GetReqId())
	if err != nil {
		return nil, err
	}

	// Components map to legs one to one, in request order
	legs := make([]domain.Leg, 0, len(req.GetComponents()))
	for _, c := range req.GetComponents() {
		legs = append(legs, domain.Leg{
			AccountID: domain.AccountID(c.GetAccountId()),
			Delta:     c.GetMoneyDelta(),
		})
	}

	if err := s.LedgerService.Transfer(ctx, ledger.TransferInput{RequestID: reqID, Legs: legs}); err != nil {
		return nil, mapError(err)
	}

	return &accountingv1.TransferResponse{ReqId: req.GetReqId()}, nil
}

// Reset handles the Reset RPC
func (s *Server) Reset(ctx context.Context, _ *accountingv1.ResetRequest) (*accountingv1.ResetResponse, error) {
	if err := s.LedgerService.Reset(ctx); err != nil {
		return nil, mapError(err)
	}
	return &accountingv1.ResetResponse{}, nil
}

// ListTransactions handles the ListTransactions RPC
func (s *Server) ListTransactions(ctx context.Context, req *accountingv1.ListTransactionsRequest) (*accountingv1.ListTransactionsResponse, error) {
	reqID, err := parseRequestID(req.GetReqId())
	if err != nil {
		return nil, err
	}

	entries, err := s.LedgerService.ListTransactions(ctx, reqID)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &accountingv1.ListTransactionsResponse{
		Entries: make([]*accountingv1.TransactionEntry, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, &accountingv1.TransactionEntry{
			Id:        e.ID.String(),
			Index:     uint32(e.Index),
			ReqId:     uint64(e.RequestID),
			AccountId: uint32(e.AccountID),
			Amount:    e.Amount,
		})
	}

	return resp, nil
}

// GetSummary handles the GetSummary RPC
func (s *Server) GetSummary(ctx context.Context, _ *accountingv1.GetSummaryRequest) (*accountingv1.GetSummaryResponse, error) {
	summary, err := s.LedgerService.GetSummary(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	return &accountingv1.GetSummaryResponse{
		AccountCount: uint64(summary.AccountCount),
		TotalBalance: summary.TotalBalance.String(),
	}, nil
}

// parseRequestID rejects wire request ids the store cannot hold
func parseRequestID(id uint64) (domain.RequestID, error) {
	if id > math.MaxInt64 {
		return 0, status.Errorf(codes.InvalidArgument, "req_id %d out of range", id)
	}
	return domain.RequestID(id), nil
}

// mapError maps domain errors to gRPC status codes
func mapError(err error) error {
	if err == nil {
		return nil
	}

	errorMsg := err.Error()

	switch domain.CategoryOf(err) {
	case domain.CategoryAlreadyExists:
		return status.Error(codes.InvalidArgument, errorMsg)
	case domain.CategoryNotFound:
		return status.Error(codes.NotFound, errorMsg)
	case domain.CategoryValidation:
		return status.Error(codes.FailedPrecondition, errorMsg)
	case domain.CategoryLegFailure, domain.CategoryRetryLimit:
		return status.Error(codes.Aborted, errorMsg)
	case domain.CategoryCanceled:
		if errors.Is(err, context.DeadlineExceeded) {
			return status.Error(codes.DeadlineExceeded, errorMsg)
		}
		return status.Error(codes.Canceled, errorMsg)
	}

	// Default to Unknown for store failures and anything uncategorized
	return status.Error(codes.Unknown, errorMsg)
}
