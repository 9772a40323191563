package backend

import (
	"context"
	"net/http"
)

// Transaction is one platform transaction.
type Transaction struct {
	ID          string
	CreatedAt   string
	Type        string
	Status      string
	Amount      float64
	Description string
	WalletID    string
	TripID      string
}

// WalletInfo summarizes the platform wallet.
type WalletInfo struct {
	ID      string
	Balance float64
}

// WalletTransaction is one ledger line of the platform wallet.
type WalletTransaction struct {
	ID           string
	CreatedAt    string
	Type         string
	Amount       float64
	BalanceAfter float64
	TripID       string
}

// WalletHistory is the platform wallet plus one page of its ledger.
type WalletHistory struct {
	Wallet       WalletInfo
	Transactions Page[WalletTransaction]
}

type transactionDTO struct {
	TransactionID flexString `json:"transactionId"`
	CreatedAt     string     `json:"createdAt"`
	Type          string     `json:"type"`
	Status        string     `json:"status"`
	Amount        float64    `json:"amount"`
	Description   string     `json:"description"`
	WalletID      flexString `json:"walletId"`
	TripID        flexString `json:"tripId"`
}

// BalanceAfter is only present on wallet history rows.
type walletTransactionDTO struct {
	transactionDTO
	BalanceAfter float64 `json:"balanceAfter"`
}

// ListTransactions fetches one page of platform transactions.
func (c *Client) ListTransactions(ctx context.Context, page PageRequest) (Page[Transaction], error) {
	resp, err := call[pageDTO[transactionDTO]](ctx, c, request{
		endpoint: "transaction.list",
		method:   http.MethodGet,
		path:     "Transaction",
		query:    page.values(),
	})
	if err != nil {
		return Page[Transaction]{}, err
	}
	return mapPage(resp.Result, page, transactionDTO.toTransaction), nil
}

func (d transactionDTO) toTransaction() Transaction {
	return Transaction{
		ID:          d.TransactionID.String(),
		CreatedAt:   d.CreatedAt,
		Type:        d.Type,
		Status:      d.Status,
		Amount:      d.Amount,
		Description: d.Description,
		WalletID:    d.WalletID.String(),
		TripID:      d.TripID.String(),
	}
}

// PlatformWallet fetches the platform wallet and one page of its ledger.
func (c *Client) PlatformWallet(ctx context.Context, page PageRequest) (WalletHistory, error) {
	type historyDTO struct {
		WalletInfo   walletInfoDTO                 `json:"walletInfo"`
		Transactions pageDTO[walletTransactionDTO] `json:"transactions"`
	}
	resp, err := call[historyDTO](ctx, c, request{
		endpoint: "wallet.history",
		method:   http.MethodGet,
		path:     "Wallets/my-wallet/history",
		query:    page.values(),
	})
	if err != nil {
		return WalletHistory{}, err
	}
	return WalletHistory{
		Wallet: WalletInfo{
			ID:      resp.Result.WalletInfo.WalletID.String(),
			Balance: resp.Result.WalletInfo.Balance,
		},
		Transactions: mapPage(resp.Result.Transactions, page, func(d walletTransactionDTO) WalletTransaction {
			return WalletTransaction{
				ID:           d.TransactionID.String(),
				CreatedAt:    d.CreatedAt,
				Type:         d.Type,
				Amount:       d.Amount,
				BalanceAfter: d.BalanceAfter,
				TripID:       d.TripID.String(),
			}
		}),
	}, nil
}

type walletInfoDTO struct {
	WalletID flexString `json:"walletId"`
	Balance  float64    `json:"balance"`
}
