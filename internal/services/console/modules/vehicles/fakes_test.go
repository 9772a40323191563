package vehicles

import (
	"context"
	"sync"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/backend"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/docreview"
)

type fakeGateway struct {
	mu      sync.Mutex
	page    backend.Page[backend.Vehicle]
	err     error
	queries []backend.VehicleQuery
}

func (f *fakeGateway) ListVehicles(_ context.Context, q backend.VehicleQuery) (backend.Page[backend.Vehicle], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	return f.page, f.err
}

func fleet() backend.Page[backend.Vehicle] {
	return backend.Page[backend.Vehicle]{
		Number: 1,
		Items: []backend.Vehicle{
			{
				ID: "v1", PlateNumber: "51C-123.45", Brand: "Hino", Model: "300", Year: "2021", Status: "ACTIVE",
				Owner: &backend.VehicleOwner{FullName: "Chi Le"},
				Documents: []docreview.Document{
					{ID: "vd-old", DocumentType: "REGISTRATION", Status: docreview.StatusActive, CreatedAt: "2024-01-01T00:00:00Z"},
					{ID: "vd-new", DocumentType: "INSURANCE", Status: docreview.StatusPendingReview, CreatedAt: "2025-01-01T00:00:00Z"},
				},
			},
			{
				ID: "v2", PlateNumber: "29H-678.90", Status: "INACTIVE",
				Owner: &backend.VehicleOwner{CompanyName: "Logistics Co"},
				Documents: []docreview.Document{
					{ID: "vd-inactive", DocumentType: "INSPECTION", Status: docreview.StatusInactive},
				},
			},
		},
	}
}
