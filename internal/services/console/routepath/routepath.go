// Package routepath centralizes console URL paths and builders.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root    = "/"
	Login   = "/login"
	Logout  = "/logout"
	Health  = "/healthz"
	Metrics = "/metrics"
	Static  = "/static/"

	StaffPrefix = "/staff"
	AdminPrefix = "/admin"

	StaffUsers             = "/staff/users"
	StaffVehicles          = "/staff/vehicles"
	StaffItems             = "/staff/items"
	StaffPackages          = "/staff/packages"
	StaffPostPackages      = "/staff/post-packages"
	StaffContractTemplates = "/staff/contract-templates"

	StaffDocumentReviews        = "/staff/document-reviews"
	StaffVehicleDocumentReviews = "/staff/vehicle-document-reviews"

	AdminTransactions         = "/admin/transactions"
	AdminPlatformWallet       = "/admin/platform-wallet"
	AdminPlatformWalletExport = "/admin/platform-wallet/export.xlsx"
)

// DocumentReview returns the identity document review page.
func DocumentReview(documentID string) string {
	return StaffDocumentReviews + "/" + escapeSegment(documentID)
}

// DocumentReviewDecision returns the identity document decision endpoint.
func DocumentReviewDecision(documentID string) string {
	return DocumentReview(documentID) + "/decision"
}

// VehicleDocumentReview returns the vehicle document review page.
func VehicleDocumentReview(documentID string) string {
	return StaffVehicleDocumentReviews + "/" + escapeSegment(documentID)
}

// VehicleDocumentReviewDecision returns the vehicle document decision endpoint.
func VehicleDocumentReviewDecision(documentID string) string {
	return VehicleDocumentReview(documentID) + "/decision"
}

// StaffUser selects one user on the users page.
func StaffUser(userID string) string {
	return withQuery(StaffUsers, "userId", userID)
}

// StaffVehicle selects one vehicle on the vehicles page.
func StaffVehicle(vehicleID string) string {
	return withQuery(StaffVehicles, "vehicleId", vehicleID)
}

// ContractTemplateTerms lists the terms of one contract template.
func ContractTemplateTerms(templateID string) string {
	return StaffContractTemplates + "/" + escapeSegment(templateID) + "/terms"
}

func escapeSegment(value string) string {
	return url.PathEscape(strings.TrimSpace(value))
}

func withQuery(path string, key string, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return path
	}
	return path + "?" + url.Values{key: {value}}.Encode()
}
