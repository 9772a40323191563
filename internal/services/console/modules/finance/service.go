package finance

import (
	"context"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/backend"
)

const (
	exportPageSize = 100
	// exportMaxPages caps one export at exportPageSize*exportMaxPages rows.
	exportMaxPages = 50
)

type service struct {
	gateway Gateway
}

func newService(gateway Gateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) transactions(ctx context.Context, page int) (backend.Page[backend.Transaction], error) {
	return s.gateway.ListTransactions(ctx, backend.PageRequest{Number: page, Size: backend.DefaultPageSize})
}

func (s service) wallet(ctx context.Context, page int) (backend.WalletHistory, error) {
	return s.gateway.PlatformWallet(ctx, backend.PageRequest{Number: page, Size: backend.DefaultPageSize})
}

// ledger is the full wallet history gathered for export.
type ledger struct {
	Wallet backend.WalletInfo
	Rows   []backend.WalletTransaction
	// Truncated is set when rows were left behind at the page cap.
	Truncated bool
}

// loadLedger walks the wallet history page by page.
func (s service) loadLedger(ctx context.Context) (ledger, error) {
	var out ledger
	for number := 1; number <= exportMaxPages; number++ {
		history, err := s.gateway.PlatformWallet(ctx, backend.PageRequest{Number: number, Size: exportPageSize})
		if err != nil {
			return ledger{}, err
		}
		if number == 1 {
			out.Wallet = history.Wallet
		}
		out.Rows = append(out.Rows, history.Transactions.Items...)
		if !history.Transactions.HasNextPage || len(history.Transactions.Items) == 0 {
			return out, nil
		}
	}
	out.Truncated = true
	return out, nil
}
