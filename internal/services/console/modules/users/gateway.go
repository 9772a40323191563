package users

import (
	"context"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/backend"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/docreview"
	apperrors "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/errors"
)

// Gateway lists accounts and their identity documents.
type Gateway interface {
	ListUsers(ctx context.Context, q backend.UserQuery) (backend.Page[backend.User], error)
	UserDocuments(ctx context.Context, userID string) ([]docreview.Document, error)
}

type unavailableGateway struct{}

var errGatewayUnavailable = apperrors.E(apperrors.KindUnavailable, "users service is not configured")

func (unavailableGateway) ListUsers(context.Context, backend.UserQuery) (backend.Page[backend.User], error) {
	return backend.Page[backend.User]{}, errGatewayUnavailable
}

func (unavailableGateway) UserDocuments(context.Context, string) ([]docreview.Document, error) {
	return nil, errGatewayUnavailable
}
