package catalog

import (
	"context"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/backend"
	apperrors "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/errors"
)

// Gateway reads the staff catalog listings.
type Gateway interface {
	ListItems(ctx context.Context, page backend.PageRequest) (backend.Page[backend.Item], error)
	ListPackages(ctx context.Context, page backend.PageRequest) (backend.Page[backend.Package], error)
	ListPostPackages(ctx context.Context, page backend.PageRequest) (backend.Page[backend.PostPackage], error)
	ListContractTemplates(ctx context.Context) ([]backend.ContractTemplate, error)
	ListContractTerms(ctx context.Context, templateID string) ([]backend.ContractTerm, error)
}

type unavailableGateway struct{}

var errGatewayUnavailable = apperrors.E(apperrors.KindUnavailable, "catalog service is not configured")

func (unavailableGateway) ListItems(context.Context, backend.PageRequest) (backend.Page[backend.Item], error) {
	return backend.Page[backend.Item]{}, errGatewayUnavailable
}

func (unavailableGateway) ListPackages(context.Context, backend.PageRequest) (backend.Page[backend.Package], error) {
	return backend.Page[backend.Package]{}, errGatewayUnavailable
}

func (unavailableGateway) ListPostPackages(context.Context, backend.PageRequest) (backend.Page[backend.PostPackage], error) {
	return backend.Page[backend.PostPackage]{}, errGatewayUnavailable
}

func (unavailableGateway) ListContractTemplates(context.Context) ([]backend.ContractTemplate, error) {
	return nil, errGatewayUnavailable
}

func (unavailableGateway) ListContractTerms(context.Context, string) ([]backend.ContractTerm, error) {
	return nil, errGatewayUnavailable
}

func orUnavailable(gateway Gateway) Gateway {
	if gateway == nil {
		return unavailableGateway{}
	}
	return gateway
}
