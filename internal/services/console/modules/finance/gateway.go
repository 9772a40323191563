package finance

import (
	"context"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/backend"
	apperrors "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/errors"
)

// Gateway reads platform money movements.
type Gateway interface {
	ListTransactions(ctx context.Context, page backend.PageRequest) (backend.Page[backend.Transaction], error)
	PlatformWallet(ctx context.Context, page backend.PageRequest) (backend.WalletHistory, error)
}

type unavailableGateway struct{}

var errGatewayUnavailable = apperrors.E(apperrors.KindUnavailable, "finance service is not configured")

func (unavailableGateway) ListTransactions(context.Context, backend.PageRequest) (backend.Page[backend.Transaction], error) {
	return backend.Page[backend.Transaction]{}, errGatewayUnavailable
}

func (unavailableGateway) PlatformWallet(context.Context, backend.PageRequest) (backend.WalletHistory, error) {
	return backend.WalletHistory{}, errGatewayUnavailable
}
