// Package accountingv1 holds the accounting.AccountingService wire messages,
// codec and service descriptor. See accounting.proto for the schema.
package accountingv1

import (
	"google.golang.org/protobuf/encoding/protowire"
)

type CreateAccountRequest struct {
	ReqId     uint64
	AccountId uint32
	Balance   int64
}

func (m *CreateAccountRequest) GetReqId() uint64 {
	if m != nil {
		return m.ReqId
	}
	return 0
}

func (m *CreateAccountRequest) GetAccountId() uint32 {
	if m != nil {
		return m.AccountId
	}
	return 0
}

func (m *CreateAccountRequest) GetBalance() int64 {
	if m != nil {
		return m.Balance
	}
	return 0
}

func (m *CreateAccountRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendVarint(b, 1, m.ReqId)
	b = appendVarint(b, 2, uint64(m.AccountId))
	b = appendVarint(b, 3, uint64(m.Balance))
	return b, nil
}

func (m *CreateAccountRequest) Unmarshal(b []byte) error {
	*m = CreateAccountRequest{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeVarint(typ, b, &m.ReqId)
		case 2:
			return consumeUint32(typ, b, &m.AccountId)
		case 3:
			return consumeInt64(typ, b, &m.Balance)
		}
		return 0, nil
	})
}

type CreateAccountResponse struct {
	ReqId     uint64
	AccountId uint32
}

func (m *CreateAccountResponse) GetReqId() uint64 {
	if m != nil {
		return m.ReqId
	}
	return 0
}

func (m *CreateAccountResponse) GetAccountId() uint32 {
	if m != nil {
		return m.AccountId
	}
	return 0
}

func (m *CreateAccountResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendVarint(b, 1, m.ReqId)
	b = appendVarint(b, 2, uint64(m.AccountId))
	return b, nil
}

func (m *CreateAccountResponse) Unmarshal(b []byte) error {
	*m = CreateAccountResponse{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeVarint(typ, b, &m.ReqId)
		case 2:
			return consumeUint32(typ, b, &m.AccountId)
		}
		return 0, nil
	})
}

type GetBalanceRequest struct {
	ReqId     uint64
	AccountId uint32
}

func (m *GetBalanceRequest) GetReqId() uint64 {
	if m != nil {
		return m.ReqId
	}
	return 0
}

func (m *GetBalanceRequest) GetAccountId() uint32 {
	if m != nil {
		return m.AccountId
	}
	return 0
}

func (m *GetBalanceRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendVarint(b, 1, m.ReqId)
	b = appendVarint(b, 2, uint64(m.AccountId))
	return b, nil
}

func (m *GetBalanceRequest) Unmarshal(b []byte) error {
	*m = GetBalanceRequest{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeVarint(typ, b, &m.ReqId)
		case 2:
			return consumeUint32(typ, b, &m.AccountId)
		}
		return 0, nil
	})
}

type GetBalanceResponse struct {
	ReqId     uint64
	AccountId uint32
	Balance   int64
}

func (m *GetBalanceResponse) GetReqId() uint64 {
	if m != nil {
		return m.ReqId
	}
	return 0
}

func (m *GetBalanceResponse) GetAccountId() uint32 {
	if m != nil {
		return m.AccountId
	}
	return 0
}

func (m *GetBalanceResponse) GetBalance() int64 {
	if m != nil {
		return m.Balance
	}
	return 0
}

func (m *GetBalanceResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendVarint(b, 1, m.ReqId)
	b = appendVarint(b, 2, uint64(m.AccountId))
	b = appendVarint(b, 3, uint64(m.Balance))
	return b, nil
}

func (m *GetBalanceResponse) Unmarshal(b []byte) error {
	*m = GetBalanceResponse{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeVarint(typ, b, &m.ReqId)
		case 2:
			return consumeUint32(typ, b, &m.AccountId)
		case 3:
			return consumeInt64(typ, b, &m.Balance)
		}
		return 0, nil
	})
}

// TransferComponent is one leg of a transfer.
type TransferComponent struct {
	AccountId  uint32
	MoneyDelta int64
}

func (m *TransferComponent) GetAccountId() uint32 {
	if m != nil {
		return m.AccountId
	}
	return 0
}

func (m *TransferComponent) GetMoneyDelta() int64 {
	if m != nil {
		return m.MoneyDelta
	}
	return 0
}

func (m *TransferComponent) Marshal() ([]byte, error) {
	var b []byte
	b = appendVarint(b, 1, uint64(m.AccountId))
	b = appendVarint(b, 2, uint64(m.MoneyDelta))
	return b, nil
}

func (m *TransferComponent) Unmarshal(b []byte) error {
	*m = TransferComponent{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeUint32(typ, b, &m.AccountId)
		case 2:
			return consumeInt64(typ, b, &m.MoneyDelta)
		}
		return 0, nil
	})
}

type TransferRequest struct {
	ReqId      uint64
	Components []*TransferComponent
}

func (m *TransferRequest) GetReqId() uint64 {
	if m != nil {
		return m.ReqId
	}
	return 0
}

func (m *TransferRequest) GetComponents() []*TransferComponent {
	if m != nil {
		return m.Components
	}
	return nil
}

func (m *TransferRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendVarint(b, 1, m.ReqId)
	for _, c := range m.Components {
		if c == nil {
			c = &TransferComponent{}
		}
		msg, err := c.Marshal()
		if err != nil {
			return nil, err
		}
		b = appendMessage(b, 2, msg)
	}
	return b, nil
}

func (m *TransferRequest) Unmarshal(b []byte) error {
	*m = TransferRequest{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeVarint(typ, b, &m.ReqId)
		case 2:
			var raw []byte
			n, err := consumeBytes(typ, b, &raw)
			if n == 0 || err != nil {
				return n, err
			}
			c := &TransferComponent{}
			if err := c.Unmarshal(raw); err != nil {
				return 0, err
			}
			m.Components = append(m.Components, c)
			return n, nil
		}
		return 0, nil
	})
}

type TransferResponse struct {
	ReqId uint64
}

func (m *TransferResponse) GetReqId() uint64 {
	if m != nil {
		return m.ReqId
	}
	return 0
}

func (m *TransferResponse) Marshal() ([]byte, error) {
	return appendVarint(nil, 1, m.ReqId), nil
}

func (m *TransferResponse) Unmarshal(b []byte) error {
	*m = TransferResponse{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeVarint(typ, b, &m.ReqId)
		}
		return 0, nil
	})
}

type ResetRequest struct{}

func (m *ResetRequest) Marshal() ([]byte, error) { return nil, nil }

func (m *ResetRequest) Unmarshal(b []byte) error {
	return unmarshalFields(b, func(protowire.Number, protowire.Type, []byte) (int, error) { return 0, nil })
}

type ResetResponse struct{}

func (m *ResetResponse) Marshal() ([]byte, error) { return nil, nil }

func (m *ResetResponse) Unmarshal(b []byte) error {
	return unmarshalFields(b, func(protowire.Number, protowire.Type, []byte) (int, error) { return 0, nil })
}

type ListTransactionsRequest struct {
	ReqId uint64
}

func (m *ListTransactionsRequest) GetReqId() uint64 {
	if m != nil {
		return m.ReqId
	}
	return 0
}

func (m *ListTransactionsRequest) Marshal() ([]byte, error) {
	return appendVarint(nil, 1, m.ReqId), nil
}

func (m *ListTransactionsRequest) Unmarshal(b []byte) error {
	*m = ListTransactionsRequest{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeVarint(typ, b, &m.ReqId)
		}
		return 0, nil
	})
}

// TransactionEntry is one applied leg as recorded in the transaction log.
type TransactionEntry struct {
	Id        string
	Index     uint32
	ReqId     uint64
	AccountId uint32
	Amount    int64
}

func (m *TransactionEntry) Marshal() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.Id)
	b = appendVarint(b, 2, uint64(m.Index))
	b = appendVarint(b, 3, m.ReqId)
	b = appendVarint(b, 4, uint64(m.AccountId))
	b = appendVarint(b, 5, uint64(m.Amount))
	return b, nil
}

func (m *TransactionEntry) Unmarshal(b []byte) error {
	*m = TransactionEntry{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &m.Id)
		case 2:
			return consumeUint32(typ, b, &m.Index)
		case 3:
			return consumeVarint(typ, b, &m.ReqId)
		case 4:
			return consumeUint32(typ, b, &m.AccountId)
		case 5:
			return consumeInt64(typ, b, &m.Amount)
		}
		return 0, nil
	})
}

type ListTransactionsResponse struct {
	Entries []*TransactionEntry
}

func (m *ListTransactionsResponse) GetEntries() []*TransactionEntry {
	if m != nil {
		return m.Entries
	}
	return nil
}

func (m *ListTransactionsResponse) Marshal() ([]byte, error) {
	var b []byte
	for _, e := range m.Entries {
		if e == nil {
			e = &TransactionEntry{}
		}
		msg, err := e.Marshal()
		if err != nil {
			return nil, err
		}
		b = appendMessage(b, 1, msg)
	}
	return b, nil
}

func (m *ListTransactionsResponse) Unmarshal(b []byte) error {
	*m = ListTransactionsResponse{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != 1 {
			return 0, nil
		}
		var raw []byte
		n, err := consumeBytes(typ, b, &raw)
		if n == 0 || err != nil {
			return n, err
		}
		e := &TransactionEntry{}
		if err := e.Unmarshal(raw); err != nil {
			return 0, err
		}
		m.Entries = append(m.Entries, e)
		return n, nil
	})
}

type GetSummaryRequest struct{}

func (m *GetSummaryRequest) Marshal() ([]byte, error) { return nil, nil }

func (m *GetSummaryRequest) Unmarshal(b []byte) error {
	return unmarshalFields(b, func(protowire.Number, protowire.Type, []byte) (int, error) { return 0, nil })
}

type GetSummaryResponse struct {
	AccountCount uint64
	// TotalBalance is a base-10 integer; it may exceed int64.
	TotalBalance string
}

func (m *GetSummaryResponse) GetAccountCount() uint64 {
	if m != nil {
		return m.AccountCount
	}
	return 0
}

func (m *GetSummaryResponse) GetTotalBalance() string {
	if m != nil {
		return m.TotalBalance
	}
	return ""
}

func (m *GetSummaryResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendVarint(b, 1, m.AccountCount)
	b = appendString(b, 2, m.TotalBalance)
	return b, nil
}

func (m *GetSummaryResponse) Unmarshal(b []byte) error {
	*m = GetSummaryResponse{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeVarint(typ, b, &m.AccountCount)
		case 2:
			return consumeString(typ, b, &m.TotalBalance)
		}
		return 0, nil
	})
}
