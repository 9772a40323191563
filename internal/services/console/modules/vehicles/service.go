package vehicles

import (
	"context"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/backend"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/docreview"
	apperrors "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/errors"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/listquery"
)

// Gateway lists vehicles with their embedded documents.
type Gateway interface {
	ListVehicles(ctx context.Context, q backend.VehicleQuery) (backend.Page[backend.Vehicle], error)
}

type unavailableGateway struct{}

func (unavailableGateway) ListVehicles(context.Context, backend.VehicleQuery) (backend.Page[backend.Vehicle], error) {
	return backend.Page[backend.Vehicle]{}, apperrors.E(apperrors.KindUnavailable, "vehicles service is not configured")
}

var querySpec = listquery.Spec{
	SortParam:    "sortBy",
	Sorts:        []string{"", "brand", "model", "year", "payload", "volume", "createdAt"},
	OrderParam:   "sortOrder",
	DefaultOrder: "ASC",
	SelectParam:  "vehicleId",
}

type service struct {
	gateway Gateway
}

func newService(gateway Gateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) list(ctx context.Context, params listquery.Params) (backend.Page[backend.Vehicle], error) {
	return s.gateway.ListVehicles(ctx, backend.VehicleQuery{
		Page:      backend.PageRequest{Number: params.Page, Size: backend.DefaultPageSize},
		Search:    params.Search,
		SortBy:    params.Sort,
		SortOrder: params.Order,
	})
}

// selectVehicle returns the requested vehicle, or the first one on the page
// when none is requested or the requested one is not listed.
func selectVehicle(vehicles []backend.Vehicle, requested string) (backend.Vehicle, bool) {
	if len(vehicles) == 0 {
		return backend.Vehicle{}, false
	}
	for _, vehicle := range vehicles {
		if requested != "" && vehicle.ID == requested {
			return vehicle, true
		}
	}
	return vehicles[0], true
}

// sortedDocuments copies the vehicle's documents newest first.
func sortedDocuments(vehicle backend.Vehicle) []docreview.Document {
	docs := append([]docreview.Document(nil), vehicle.Documents...)
	docreview.SortNewestFirst(docs)
	return docs
}
