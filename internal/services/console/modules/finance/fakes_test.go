package finance

import (
	"context"
	"sync"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/backend"
)

type fakeGateway struct {
	mu           sync.Mutex
	transactions backend.Page[backend.Transaction]
	wallet       backend.WalletInfo
	// ledger is the whole wallet history; PlatformWallet pages through it.
	ledger []backend.WalletTransaction
	err    error
	pages  []backend.PageRequest
}

func (f *fakeGateway) ListTransactions(_ context.Context, page backend.PageRequest) (backend.Page[backend.Transaction], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pages = append(f.pages, page)
	return f.transactions, f.err
}

func (f *fakeGateway) PlatformWallet(_ context.Context, page backend.PageRequest) (backend.WalletHistory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pages = append(f.pages, page)
	if f.err != nil {
		return backend.WalletHistory{}, f.err
	}
	start := (page.Number - 1) * page.Size
	end := min(start+page.Size, len(f.ledger))
	var rows []backend.WalletTransaction
	if start < len(f.ledger) {
		rows = f.ledger[start:end]
	}
	totalPages := (len(f.ledger) + page.Size - 1) / page.Size
	return backend.WalletHistory{
		Wallet: f.wallet,
		Transactions: backend.Page[backend.WalletTransaction]{
			Items:           rows,
			Number:          page.Number,
			Size:            page.Size,
			TotalCount:      len(f.ledger),
			TotalPages:      totalPages,
			HasPreviousPage: page.Number > 1,
			HasNextPage:     page.Number < totalPages,
		},
	}, nil
}
