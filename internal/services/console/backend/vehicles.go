package backend

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/docreview"
)

// Vehicle is one vehicle row with its embedded documents.
type Vehicle struct {
	ID          string
	PlateNumber string
	Brand       string
	Model       string
	Year        string
	Status      string
	CreatedAt   string
	Owner       *VehicleOwner
	Documents   []docreview.Document
}

// VehicleOwner is the owner summary embedded in a vehicle.
type VehicleOwner struct {
	ID          string
	FullName    string
	CompanyName string
	Email       string
	PhoneNumber string
}

// VehicleQuery filters and orders the vehicle listing.
type VehicleQuery struct {
	Page      PageRequest
	Search    string
	SortBy    string
	SortOrder string
}

type vehicleOwnerDTO struct {
	UserID      flexString `json:"userId"`
	FullName    string     `json:"fullName"`
	CompanyName string     `json:"companyName"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phoneNumber"`
}

type vehicleDTO struct {
	VehicleID   flexString           `json:"vehicleId"`
	PlateNumber string               `json:"plateNumber"`
	Brand       string               `json:"brand"`
	Model       string               `json:"model"`
	Year        flexString           `json:"year"`
	Status      string               `json:"status"`
	CreatedAt   string               `json:"createdAt"`
	Owner       *vehicleOwnerDTO     `json:"owner"`
	Documents   []vehicleDocumentDTO `json:"documents"`
}

func (v vehicleDTO) toVehicle() Vehicle {
	out := Vehicle{
		ID:          v.VehicleID.String(),
		PlateNumber: v.PlateNumber,
		Brand:       v.Brand,
		Model:       v.Model,
		Year:        v.Year.String(),
		Status:      v.Status,
		CreatedAt:   v.CreatedAt,
		Documents:   make([]docreview.Document, 0, len(v.Documents)),
	}
	if v.Owner != nil {
		out.Owner = &VehicleOwner{
			ID:          v.Owner.UserID.String(),
			FullName:    v.Owner.FullName,
			CompanyName: v.Owner.CompanyName,
			Email:       v.Owner.Email,
			PhoneNumber: v.Owner.PhoneNumber,
		}
	}
	for _, dto := range v.Documents {
		doc := dto.toDomain()
		if doc.OwnerID == "" {
			doc.OwnerID = out.ID
		}
		if strings.TrimSpace(doc.OwnerName) == "" {
			doc.OwnerName = out.PlateNumber
		}
		out.Documents = append(out.Documents, doc)
	}
	return out
}

// ListVehicles fetches one page of vehicles with their documents.
func (c *Client) ListVehicles(ctx context.Context, q VehicleQuery) (Page[Vehicle], error) {
	query := q.Page.values()
	setIf(query, "search", q.Search)
	setIf(query, "sortBy", q.SortBy)
	setIf(query, "sortOrder", q.SortOrder)
	resp, err := call[pageDTO[vehicleDTO]](ctx, c, request{
		endpoint: "vehicle.list",
		method:   http.MethodGet,
		path:     "Vehicle",
		query:    query,
	})
	if err != nil {
		return Page[Vehicle]{}, err
	}
	return mapPage(resp.Result, q.Page, vehicleDTO.toVehicle), nil
}

func setIf(values url.Values, key string, value string) {
	if value = strings.TrimSpace(value); value != "" {
		values.Set(key, value)
	}
}
