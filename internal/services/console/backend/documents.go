package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/docreview"
	apperrors "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/errors"
)

type analysisDTO struct {
	OCRName           string   `json:"ocrName"`
	OCRID             string   `json:"ocrId"`
	OCRBirthDay       string   `json:"ocrBirthDay"`
	DocumentType      string   `json:"documentType"`
	IsValidDocument   *bool    `json:"isValidDocument"`
	OverallScore      *float64 `json:"overallScore"`
	Warnings          []string `json:"warnings"`
	HasTampering      bool     `json:"hasTampering"`
	IsExpired         bool     `json:"isExpired"`
	IsCornerCut       bool     `json:"isCornerCut"`
	IsScreenRecapture bool     `json:"isScreenRecapture"`
	DataMismatch      bool     `json:"dataMismatch"`
}

func (a *analysisDTO) toDomain() *docreview.AnalysisResult {
	if a == nil {
		return nil
	}
	return &docreview.AnalysisResult{
		OCRName:           a.OCRName,
		OCRID:             a.OCRID,
		OCRBirthDay:       a.OCRBirthDay,
		DocumentType:      a.DocumentType,
		IsValidDocument:   a.IsValidDocument,
		OverallScore:      a.OverallScore,
		Warnings:          a.Warnings,
		HasTampering:      a.HasTampering,
		IsExpired:         a.IsExpired,
		IsCornerCut:       a.IsCornerCut,
		IsScreenRecapture: a.IsScreenRecapture,
		DataMismatch:      a.DataMismatch,
	}
}

type userDocumentDTO struct {
	UserDocumentID   flexString   `json:"userDocumentId"`
	UserID           flexString   `json:"userId"`
	UserName         string       `json:"userName"`
	FullName         string       `json:"fullName"`
	Email            string       `json:"email"`
	DocumentType     string       `json:"documentType"`
	Status           string       `json:"status"`
	RejectionReason  string       `json:"rejectionReason"`
	FrontImageURL    string       `json:"frontImageUrl"`
	BackImageURL     string       `json:"backImageUrl"`
	PortraitImageURL string       `json:"portraitImageUrl"`
	CreatedAt        string       `json:"createdAt"`
	LastUpdatedAt    string       `json:"lastUpdatedAt"`
	AnalysisResult   *analysisDTO `json:"analysisResult"`
}

func (d userDocumentDTO) toDomain() docreview.Document {
	owner := strings.TrimSpace(d.UserName)
	if owner == "" {
		owner = strings.TrimSpace(d.FullName)
	}
	return docreview.Document{
		ID:               d.UserDocumentID.String(),
		Kind:             docreview.KindIdentity,
		OwnerID:          d.UserID.String(),
		OwnerName:        owner,
		OwnerEmail:       d.Email,
		DocumentType:     d.DocumentType,
		Status:           docreview.ParseStatus(d.Status),
		RejectionReason:  d.RejectionReason,
		FrontImageURL:    d.FrontImageURL,
		BackImageURL:     d.BackImageURL,
		PortraitImageURL: d.PortraitImageURL,
		CreatedAt:        d.CreatedAt,
		LastUpdatedAt:    d.LastUpdatedAt,
		Analysis:         d.AnalysisResult.toDomain(),
	}
}

type vehicleDocumentDTO struct {
	VehicleDocumentID flexString   `json:"vehicleDocumentId"`
	VehicleID         flexString   `json:"vehicleId"`
	PlateNumber       string       `json:"plateNumber"`
	DocumentType      string       `json:"documentType"`
	Status            string       `json:"status"`
	RejectionReason   string       `json:"rejectionReason"`
	RejectReason      string       `json:"rejectReason"`
	AdminNotes        string       `json:"adminNotes"`
	FrontDocumentURL  string       `json:"frontDocumentUrl"`
	BackDocumentURL   string       `json:"backDocumentUrl"`
	CreatedAt         string       `json:"createdAt"`
	LastUpdatedAt     string       `json:"lastUpdatedAt"`
	ExpirationDate    string       `json:"expirationDate"`
	AnalysisResult    *analysisDTO `json:"analysisResult"`
}

func (d vehicleDocumentDTO) toDomain() docreview.Document {
	reason := strings.TrimSpace(d.RejectionReason)
	if reason == "" {
		reason = strings.TrimSpace(d.RejectReason)
	}
	return docreview.Document{
		ID:              d.VehicleDocumentID.String(),
		Kind:            docreview.KindVehicle,
		OwnerID:         d.VehicleID.String(),
		OwnerName:       d.PlateNumber,
		DocumentType:    d.DocumentType,
		Status:          docreview.ParseStatus(d.Status),
		RejectionReason: reason,
		FrontImageURL:   d.FrontDocumentURL,
		BackImageURL:    d.BackDocumentURL,
		CreatedAt:       d.CreatedAt,
		LastUpdatedAt:   d.LastUpdatedAt,
		ExpirationDate:  d.ExpirationDate,
		AdminNotes:      d.AdminNotes,
		Analysis:        d.AnalysisResult.toDomain(),
	}
}

type userDocumentsResult struct {
	Documents []userDocumentDTO `json:"documents"`
}

// UserDocuments lists the identity documents of one user.
func (c *Client) UserDocuments(ctx context.Context, userID string) ([]docreview.Document, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, apperrors.E(apperrors.KindInvalidInput, "user id is required")
	}
	resp, err := call[userDocumentsResult](ctx, c, request{
		endpoint: "user_document.list",
		method:   http.MethodGet,
		path:     "UserDocument/user/" + url.PathEscape(userID),
	})
	if err != nil {
		return nil, err
	}
	docs := make([]docreview.Document, 0, len(resp.Result.Documents))
	for _, dto := range resp.Result.Documents {
		doc := dto.toDomain()
		if doc.OwnerID == "" {
			doc.OwnerID = userID
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// DocumentDetail fetches one document of kind for review.
func (c *Client) DocumentDetail(ctx context.Context, kind docreview.Kind, documentID string) (docreview.Document, error) {
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return docreview.Document{}, docreview.ErrDocumentIDRequired
	}
	switch kind {
	case docreview.KindIdentity:
		resp, err := call[userDocumentDTO](ctx, c, request{
			endpoint: "user_document.detail",
			method:   http.MethodGet,
			path:     "UserDocument/pending-reviews/" + url.PathEscape(documentID),
		})
		if err != nil {
			return docreview.Document{}, err
		}
		doc := resp.Result.toDomain()
		if doc.ID == "" {
			doc.ID = documentID
		}
		return doc, nil
	case docreview.KindVehicle:
		resp, err := call[vehicleDocumentDTO](ctx, c, request{
			endpoint: "vehicle_document.detail",
			method:   http.MethodGet,
			path:     "VehicleDocument/pending-reviews/" + url.PathEscape(documentID),
		})
		if err != nil {
			return docreview.Document{}, err
		}
		doc := resp.Result.toDomain()
		if doc.ID == "" {
			doc.ID = documentID
		}
		return doc, nil
	default:
		return docreview.Document{}, unknownKind(kind)
	}
}

// userDocumentReviewRequest and vehicleDocumentReviewRequest are the two
// review payloads. The backend names the id and reason fields differently
// per kind, so they stay separate types.
type userDocumentReviewRequest struct {
	UserDocumentID  string  `json:"userDocumentId"`
	IsApproved      bool    `json:"isApproved"`
	RejectionReason *string `json:"rejectionReason"`
}

type vehicleDocumentReviewRequest struct {
	DocumentID   string  `json:"documentId"`
	IsApproved   bool    `json:"isApproved"`
	RejectReason *string `json:"rejectReason"`
}

// SubmitDecision posts a review decision and returns the backend's message.
func (c *Client) SubmitDecision(ctx context.Context, kind docreview.Kind, decision docreview.Decision) (string, error) {
	if err := decision.Validate(); err != nil {
		return "", err
	}
	var reason *string
	if !decision.Approved {
		trimmed := strings.TrimSpace(decision.Reason)
		reason = &trimmed
	}

	var req request
	switch kind {
	case docreview.KindIdentity:
		req = request{
			endpoint: "user_document.review",
			method:   http.MethodPost,
			path:     "UserDocument/review",
			body: userDocumentReviewRequest{
				UserDocumentID:  decision.DocumentID,
				IsApproved:      decision.Approved,
				RejectionReason: reason,
			},
		}
	case docreview.KindVehicle:
		req = request{
			endpoint: "vehicle_document.review",
			method:   http.MethodPost,
			path:     "VehicleDocument/review",
			body: vehicleDocumentReviewRequest{
				DocumentID:   decision.DocumentID,
				IsApproved:   decision.Approved,
				RejectReason: reason,
			},
		}
	default:
		return "", unknownKind(kind)
	}
	resp, err := call[json.RawMessage](ctx, c, req)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

func unknownKind(kind docreview.Kind) error {
	return apperrors.E(apperrors.KindInvalidInput, "unknown document kind "+string(kind))
}
