package catalog

import (
	"context"
	"net/http"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/backend"
	module "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/module"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/listquery"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/modulehandler"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/weberror"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/routepath"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/templates"
)

var pageSpec = listquery.Spec{}

// listing is a fetch-render-paginate table over one backend page type.
type listing[T any] struct {
	id      string
	path    string
	columns []string
	fetch   func(ctx context.Context, page backend.PageRequest) (backend.Page[T], error)
	row     func(loc templates.Localizer, item T) []templates.Cell
}

func newListingModule[T any](l listing[T], healthy bool, deps module.Dependencies) Module {
	return Module{
		id:      l.id,
		prefix:  l.path,
		healthy: healthy,
		deps:    deps,
		register: func(mux *http.ServeMux, base modulehandler.Base) {
			mux.HandleFunc(http.MethodGet+" "+l.path, func(w http.ResponseWriter, r *http.Request) {
				l.serve(base, w, r)
			})
		},
	}
}

func (l listing[T]) serve(base modulehandler.Base, w http.ResponseWriter, r *http.Request) {
	params := pageSpec.Parse(r.URL.Query())
	page, err := l.fetch(r.Context(), backend.PageRequest{Number: params.Page, Size: backend.DefaultPageSize})
	if err != nil {
		if base.DenyIfUnauthorized(w, r, err) {
			return
		}
		base.Logger().Printf("catalog list failed listing=%s err=%v", l.id, err)
	}

	loc, _ := base.PageLocalizer(r)
	prefix := "catalog." + l.id
	view := templates.ListingView{
		Heading:  templates.T(loc, prefix+".heading"),
		Subtitle: templates.T(loc, prefix+".subtitle"),
		Empty:    templates.T(loc, prefix+".empty"),
	}
	if err != nil {
		view.Error = weberror.FallbackMessage(loc, err, "catalog.error.list")
	} else {
		view.Table = templates.TableView{Columns: localizeAll(loc, l.columns), Rows: make([]templates.Row, 0, len(page.Items))}
		for _, item := range page.Items {
			view.Table.Rows = append(view.Table.Rows, templates.Row{Cells: l.row(loc, item)})
		}
		view.Pager = templates.NewPager(loc, page.Number, page.TotalPages, page.HasPreviousPage, page.HasNextPage, func(n int) string {
			return pageSpec.PageHref(l.path, params, n)
		})
	}
	base.WritePage(w, r, view.Heading, http.StatusOK, templates.ListingPage(view, loc))
}

func localizeAll(loc templates.Localizer, keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		out = append(out, templates.T(loc, key))
	}
	return out
}

// Items lists registered shippable items.
func Items(gateway Gateway, deps module.Dependencies) Module {
	gw := orUnavailable(gateway)
	return newListingModule(listing[backend.Item]{
		id:      "items",
		path:    routepath.StaffItems,
		columns: []string{"catalog.column.id", "catalog.column.name", "catalog.column.weight", "catalog.column.owner"},
		fetch:   gw.ListItems,
		row: func(_ templates.Localizer, item backend.Item) []templates.Cell {
			return []templates.Cell{
				templates.TextCell(item.ID),
				templates.TextCell(item.Name),
				templates.NumberCell(item.Weight),
				templates.LinkCell(item.UserID, ownerHref(item.UserID)),
			}
		},
	}, gateway != nil, deps)
}

// Packages lists item bundles.
func Packages(gateway Gateway, deps module.Dependencies) Module {
	gw := orUnavailable(gateway)
	return newListingModule(listing[backend.Package]{
		id:      "packages",
		path:    routepath.StaffPackages,
		columns: []string{"catalog.column.id", "catalog.column.name", "catalog.column.weight", "catalog.column.owner"},
		fetch:   gw.ListPackages,
		row: func(_ templates.Localizer, pkg backend.Package) []templates.Cell {
			return []templates.Cell{
				templates.TextCell(pkg.ID),
				templates.TextCell(pkg.Name),
				templates.NumberCell(pkg.Weight),
				templates.LinkCell(pkg.UserID, ownerHref(pkg.UserID)),
			}
		},
	}, gateway != nil, deps)
}

// PostPackages lists provider package offers.
func PostPackages(gateway Gateway, deps module.Dependencies) Module {
	gw := orUnavailable(gateway)
	return newListingModule(listing[backend.PostPackage]{
		id:      "post_packages",
		path:    routepath.StaffPostPackages,
		columns: []string{"catalog.column.id", "catalog.column.title", "catalog.column.provider", "catalog.column.status"},
		fetch:   gw.ListPostPackages,
		row: func(_ templates.Localizer, post backend.PostPackage) []templates.Cell {
			return []templates.Cell{
				templates.TextCell(post.ID),
				templates.TextCell(post.Title),
				templates.LinkCell(post.ProviderID, ownerHref(post.ProviderID)),
				templates.BadgeCell(post.Status),
			}
		},
	}, gateway != nil, deps)
}

// ownerHref links an owning account to the users page.
func ownerHref(userID string) string {
	if userID == "" {
		return ""
	}
	return routepath.StaffUser(userID)
}
