package users

import (
	"context"
	"sync"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/backend"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/docreview"
)

type fakeGateway struct {
	mu      sync.Mutex
	page    backend.Page[backend.User]
	listErr error
	docs    map[string][]docreview.Document
	docErrs map[string]error
	queries []backend.UserQuery
}

func (f *fakeGateway) ListUsers(_ context.Context, q backend.UserQuery) (backend.Page[backend.User], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	if f.listErr != nil {
		return backend.Page[backend.User]{}, f.listErr
	}
	return f.page, nil
}

func (f *fakeGateway) UserDocuments(_ context.Context, userID string) ([]docreview.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.docErrs[userID]; err != nil {
		return nil, err
	}
	docs := f.docs[userID]
	return append([]docreview.Document(nil), docs...), nil
}

// setStatus changes one stored document, as a review decision would.
func (f *fakeGateway) setStatus(userID string, documentID string, status docreview.Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.docs[userID] {
		if f.docs[userID][i].ID == documentID {
			f.docs[userID][i].Status = status
		}
	}
}

func (f *fakeGateway) lastQuery() backend.UserQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.queries) == 0 {
		return backend.UserQuery{}
	}
	return f.queries[len(f.queries)-1]
}

func twoUsers() backend.Page[backend.User] {
	return backend.Page[backend.User]{
		Items: []backend.User{
			{ID: "1", FullName: "An Nguyen", Email: "an@driveshare.vn", RoleName: "Driver", Status: "ACTIVE", CreatedAt: "2025-01-02T00:00:00Z"},
			{ID: "2", FullName: "Binh Tran", Email: "binh@driveshare.vn", RoleName: "Owner", Status: "BANNED"},
		},
		Number:      1,
		Size:        10,
		TotalCount:  12,
		TotalPages:  2,
		HasNextPage: true,
	}
}
