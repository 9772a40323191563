package users

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/backend"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/docreview"
	apperrors "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/errors"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/listquery"
)

// countingGateway tracks peak concurrent document lookups.
type countingGateway struct {
	users   []backend.User
	active  atomic.Int32
	peak    atomic.Int32
	lookups atomic.Int32
}

func (g *countingGateway) ListUsers(context.Context, backend.UserQuery) (backend.Page[backend.User], error) {
	return backend.Page[backend.User]{Items: g.users, Number: 1}, nil
}

func (g *countingGateway) UserDocuments(context.Context, string) ([]docreview.Document, error) {
	g.lookups.Add(1)
	n := g.active.Add(1)
	defer g.active.Add(-1)
	for {
		peak := g.peak.Load()
		if n <= peak || g.peak.CompareAndSwap(peak, n) {
			break
		}
	}
	return []docreview.Document{{Status: docreview.StatusActive}}, nil
}

func TestAggregatesBoundedFanOut(t *testing.T) {
	t.Parallel()

	gateway := &countingGateway{}
	for i := 0; i < 30; i++ {
		gateway.users = append(gateway.users, backend.User{ID: fmt.Sprint(i)})
	}
	data := newService(gateway).load(context.Background(), querySpec.Parse(nil))

	if got := gateway.lookups.Load(); got != 30 {
		t.Fatalf("lookups = %d, want 30", got)
	}
	if peak := gateway.peak.Load(); peak > aggregateFanOut {
		t.Fatalf("peak concurrency = %d, want <= %d", peak, aggregateFanOut)
	}
	if len(data.Aggregates) != 30 || data.Aggregates["7"] != docreview.StatusActive {
		t.Fatalf("aggregates = %v", data.Aggregates)
	}
}

func TestLoadWithoutSelectionSkipsDocuments(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{page: backend.Page[backend.User]{}}
	data := newService(gateway).load(context.Background(), listquery.Params{Page: 2})
	if data.Documents != nil || data.DocumentsErr != nil {
		t.Fatalf("documents = %v err = %v", data.Documents, data.DocumentsErr)
	}
	if got := gateway.lastQuery().Page; got.Number != 2 || got.Size != pageSize {
		t.Fatalf("page request = %+v", got)
	}
}

func TestUnavailableGateway(t *testing.T) {
	t.Parallel()

	data := newService(nil).load(context.Background(), listquery.Params{Page: 1, Selected: "1"})
	if !apperrors.Is(data.ListErr, apperrors.KindUnavailable) || !apperrors.Is(data.DocumentsErr, apperrors.KindUnavailable) {
		t.Fatalf("errors = %v / %v", data.ListErr, data.DocumentsErr)
	}
}
