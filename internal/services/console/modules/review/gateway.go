package review

import (
	"context"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/docreview"
	apperrors "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/errors"
)

// Gateway loads documents and submits review decisions.
type Gateway interface {
	DocumentDetail(ctx context.Context, kind docreview.Kind, documentID string) (docreview.Document, error)
	SubmitDecision(ctx context.Context, kind docreview.Kind, decision docreview.Decision) (string, error)
}

type unavailableGateway struct{}

func (unavailableGateway) DocumentDetail(context.Context, docreview.Kind, string) (docreview.Document, error) {
	return docreview.Document{}, errGatewayUnavailable
}

func (unavailableGateway) SubmitDecision(context.Context, docreview.Kind, docreview.Decision) (string, error) {
	return "", errGatewayUnavailable
}

var errGatewayUnavailable = apperrors.E(apperrors.KindUnavailable, "review service is not configured")
