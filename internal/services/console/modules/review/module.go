// Package review serves the document review detail page and the one-shot
// approve/reject decision for identity and vehicle documents.
package review

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/docreview"
	module "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/module"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/routepath"
)

// KindConfig binds one document kind to its routes and form field names.
// The field names mirror the backend review payload for the kind.
type KindConfig struct {
	Kind         docreview.Kind
	Prefix       string
	HeadingKey   string
	QueuePath    string
	DetailPath   func(documentID string) string
	DecisionPath func(documentID string) string
	// OwnerPath is where a reviewer lands after a decision.
	OwnerPath   func(ownerID string) string
	IDField     string
	ReasonField string
}

// IdentityDocuments configures review of user identity documents.
func IdentityDocuments() KindConfig {
	return KindConfig{
		Kind:         docreview.KindIdentity,
		Prefix:       routepath.StaffDocumentReviews,
		HeadingKey:   "review.heading.identity",
		QueuePath:    routepath.StaffUsers,
		DetailPath:   routepath.DocumentReview,
		DecisionPath: routepath.DocumentReviewDecision,
		OwnerPath:    routepath.StaffUser,
		IDField:      "userDocumentId",
		ReasonField:  "rejectionReason",
	}
}

// VehicleDocuments configures review of vehicle documents.
func VehicleDocuments() KindConfig {
	return KindConfig{
		Kind:         docreview.KindVehicle,
		Prefix:       routepath.StaffVehicleDocumentReviews,
		HeadingKey:   "review.heading.vehicle",
		QueuePath:    routepath.StaffVehicles,
		DetailPath:   routepath.VehicleDocumentReview,
		DecisionPath: routepath.VehicleDocumentReviewDecision,
		OwnerPath:    routepath.StaffVehicle,
		IDField:      "documentId",
		ReasonField:  "rejectReason",
	}
}

func (c KindConfig) validate() error {
	switch {
	case c.Kind != docreview.KindIdentity && c.Kind != docreview.KindVehicle:
		return fmt.Errorf("review: unknown document kind %q", c.Kind)
	case !strings.HasPrefix(c.Prefix, routepath.StaffPrefix+"/"):
		return fmt.Errorf("review: prefix %q is outside the staff area", c.Prefix)
	case c.DetailPath == nil || c.DecisionPath == nil || c.OwnerPath == nil:
		return fmt.Errorf("review: %s paths are not configured", c.Kind)
	case strings.TrimSpace(c.IDField) == "" || strings.TrimSpace(c.ReasonField) == "":
		return fmt.Errorf("review: %s form fields are not configured", c.Kind)
	}
	return nil
}

// ownerHref returns the owner's management page, or the queue when the
// document names no owner.
func (c KindConfig) ownerHref(ownerID string) string {
	if strings.TrimSpace(ownerID) == "" {
		return c.QueuePath
	}
	return c.OwnerPath(ownerID)
}

// Module provides review routes for one document kind.
type Module struct {
	config  KindConfig
	gateway Gateway
	fence   *docreview.Fence
	deps    module.Dependencies
}

// New returns a review module. Modules sharing fence never submit two
// decisions for the same document at once.
func New(config KindConfig, gateway Gateway, fence *docreview.Fence, deps module.Dependencies) Module {
	return Module{config: config, gateway: gateway, fence: fence, deps: deps}
}

// ID returns a stable module identifier.
func (m Module) ID() string { return "review." + string(m.config.Kind) }

// Healthy reports whether a backend gateway is configured.
func (m Module) Healthy() bool { return m.gateway != nil }

// Mount wires review route handlers.
func (m Module) Mount() (module.Mount, error) {
	if err := m.config.validate(); err != nil {
		return module.Mount{}, err
	}
	mux := http.NewServeMux()
	svc := newService(m.config.Kind, m.gateway, m.fence)
	registerRoutes(mux, m.config.Prefix, newHandlers(m.config, svc, m.deps))
	return module.Mount{Prefix: m.config.Prefix + "/", Handler: mux}, nil
}

var _ module.Module = Module{}

