package users

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/backend"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/docreview"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/listquery"
)

const pageSize = backend.DefaultPageSize

// aggregateFanOut bounds concurrent document lookups for one page.
const aggregateFanOut = 8

var querySpec = listquery.Spec{
	SortParam:    "sortField",
	Sorts:        []string{"fullname", "email", "createdat"},
	DefaultSort:  "fullname",
	OrderParam:   "sortDirection",
	DefaultOrder: "ASC",
	SelectParam:  "userId",
}

// pageData is everything the users page renders. Each part fails on its
// own: a failed list does not hide the selected user's documents.
type pageData struct {
	Users   backend.Page[backend.User]
	ListErr error

	// Aggregates maps user id to document status; a missing entry means
	// the lookup failed.
	Aggregates map[string]docreview.Status

	Selected     string
	Documents    []docreview.Document
	DocumentsErr error
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

func (s service) load(ctx context.Context, params listquery.Params) pageData {
	data := pageData{Selected: params.Selected}

	var g errgroup.Group
	g.Go(func() error {
		data.Users, data.ListErr = s.gateway.ListUsers(ctx, backend.UserQuery{
			Page:          backend.PageRequest{Number: params.Page, Size: pageSize},
			Search:        params.Search,
			SortField:     params.Sort,
			SortDirection: params.Order,
		})
		return nil
	})
	if params.Selected != "" {
		g.Go(func() error {
			data.Documents, data.DocumentsErr = s.selectedDocuments(ctx, params.Selected)
			return nil
		})
	}
	_ = g.Wait()

	if data.ListErr == nil {
		data.Aggregates = s.aggregates(ctx, data.Users.Items)
	}
	return data
}

// selectedDocuments returns the user's documents newest first. Documents
// the backend attributes to another user are dropped.
func (s service) selectedDocuments(ctx context.Context, userID string) ([]docreview.Document, error) {
	docs, err := s.gateway.UserDocuments(ctx, userID)
	if err != nil {
		return nil, err
	}
	owned := docs[:0]
	for _, doc := range docs {
		if doc.OwnerID == "" || doc.OwnerID == userID {
			owned = append(owned, doc)
		}
	}
	docreview.SortNewestFirst(owned)
	return owned, nil
}

// aggregates looks up every listed user's document status concurrently.
func (s service) aggregates(ctx context.Context, users []backend.User) map[string]docreview.Status {
	out := make(map[string]docreview.Status, len(users))
	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(aggregateFanOut)
	for _, user := range users {
		if user.ID == "" {
			continue
		}
		g.Go(func() error {
			docs, err := s.gateway.UserDocuments(ctx, user.ID)
			if err != nil {
				return nil
			}
			status := docreview.AggregateDocuments(docs)
			mu.Lock()
			out[user.ID] = status
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// selectedUser finds the selected account on the current page.
func (d pageData) selectedUser() (backend.User, bool) {
	for _, user := range d.Users.Items {
		if user.ID == d.Selected {
			return user, true
		}
	}
	return backend.User{}, false
}
