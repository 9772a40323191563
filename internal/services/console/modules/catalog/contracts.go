package catalog

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/backend"
	module "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/module"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/modulehandler"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/weberror"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/routepath"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/templates"
)

// ContractTemplates lists contract templates and serves each template's
// terms below it.
func ContractTemplates(gateway Gateway, deps module.Dependencies) Module {
	h := contractHandlers{gateway: orUnavailable(gateway)}
	return Module{
		id:      "contract_templates",
		prefix:  routepath.StaffContractTemplates + "/",
		healthy: gateway != nil,
		deps:    deps,
		register: func(mux *http.ServeMux, base modulehandler.Base) {
			h.Base = base
			mux.HandleFunc(http.MethodGet+" "+routepath.StaffContractTemplates, h.handleTemplates)
			mux.HandleFunc(http.MethodGet+" "+routepath.StaffContractTemplates+"/{$}", h.handleTemplates)
			mux.HandleFunc(http.MethodGet+" "+routepath.StaffContractTemplates+"/{templateID}/terms", h.handleTerms)
			mux.HandleFunc(routepath.StaffContractTemplates+"/{rest...}", h.WriteNotFound)
		},
	}
}

type contractHandlers struct {
	modulehandler.Base
	gateway Gateway
}

// handleTemplates pages the unpaginated template list locally.
func (h contractHandlers) handleTemplates(w http.ResponseWriter, r *http.Request) {
	params := pageSpec.Parse(r.URL.Query())
	all, err := h.gateway.ListContractTemplates(r.Context())
	if err != nil {
		if h.DenyIfUnauthorized(w, r, err) {
			return
		}
		h.Logger().Printf("contract templates failed err=%v", err)
	}

	loc, _ := h.PageLocalizer(r)
	view := templates.ListingView{
		Heading:  templates.T(loc, "catalog.contract_templates.heading"),
		Subtitle: templates.T(loc, "catalog.contract_templates.subtitle"),
		Empty:    templates.T(loc, "catalog.contract_templates.empty"),
	}
	if err != nil {
		view.Error = weberror.FallbackMessage(loc, err, "catalog.error.list")
	} else {
		page := paginate(all, backend.PageRequest{Number: params.Page, Size: backend.DefaultPageSize})
		view.Table = templates.TableView{
			Columns: localizeAll(loc, []string{
				"catalog.column.name",
				"catalog.column.version",
				"catalog.column.type",
				"catalog.column.created",
				"catalog.column.terms",
			}),
			Rows: make([]templates.Row, 0, len(page.Items)),
		}
		for _, tpl := range page.Items {
			terms := templates.TextCell("")
			if tpl.ID != "" {
				terms = templates.LinkCell(templates.T(loc, "catalog.contract_templates.view_terms"), routepath.ContractTemplateTerms(tpl.ID))
			}
			view.Table.Rows = append(view.Table.Rows, templates.Row{Cells: []templates.Cell{
				templates.TextCell(tpl.Name),
				templates.TextCell(tpl.Version),
				templates.TextCell(tpl.Type),
				templates.TextCell(templates.FormatDate(loc, tpl.CreatedAt)),
				terms,
			}})
		}
		view.Pager = templates.NewPager(loc, page.Number, page.TotalPages, page.HasPreviousPage, page.HasNextPage, func(n int) string {
			return pageSpec.PageHref(routepath.StaffContractTemplates, params, n)
		})
	}
	h.WritePage(w, r, view.Heading, http.StatusOK, templates.ListingPage(view, loc))
}

// handleTerms shows a template's ordered terms. The template list is read
// alongside to title the page; its failure only costs the title.
func (h contractHandlers) handleTerms(w http.ResponseWriter, r *http.Request) {
	templateID := strings.TrimSpace(r.PathValue("templateID"))
	var (
		terms    []backend.ContractTerm
		termsErr error
		tpl      backend.ContractTemplate
		found    bool
	)
	var g errgroup.Group
	g.Go(func() error {
		terms, termsErr = h.gateway.ListContractTerms(r.Context(), templateID)
		return nil
	})
	g.Go(func() error {
		tpl, found = h.findTemplate(r.Context(), templateID)
		return nil
	})
	_ = g.Wait()

	if termsErr != nil {
		if h.DenyIfUnauthorized(w, r, termsErr) {
			return
		}
		h.Logger().Printf("contract terms failed template=%s err=%v", templateID, termsErr)
	}

	loc, _ := h.PageLocalizer(r)
	view := templates.ListingView{
		Heading:  templates.T(loc, "catalog.contract_terms.heading", templateID),
		BackHref: routepath.StaffContractTemplates,
		Empty:    templates.T(loc, "catalog.contract_terms.empty"),
	}
	if found {
		view.Heading = templates.T(loc, "catalog.contract_terms.heading", tpl.Name)
		view.Summary = []templates.Fact{
			{Label: templates.T(loc, "catalog.column.version"), Value: templates.OrNA(loc, tpl.Version)},
			{Label: templates.T(loc, "catalog.column.type"), Value: templates.OrNA(loc, tpl.Type)},
		}
	}
	if termsErr != nil {
		view.Error = weberror.FallbackMessage(loc, termsErr, "catalog.error.terms")
	} else {
		view.Table = templates.TableView{
			Columns: localizeAll(loc, []string{"catalog.column.order", "catalog.column.content"}),
			Rows:    make([]templates.Row, 0, len(terms)),
		}
		for _, term := range terms {
			view.Table.Rows = append(view.Table.Rows, templates.Row{Cells: []templates.Cell{
				templates.NumberCell(strconv.Itoa(term.Order)),
				templates.TextCell(term.Content),
			}})
		}
	}
	h.WritePage(w, r, view.Heading, http.StatusOK, templates.ListingPage(view, loc))
}

func (h contractHandlers) findTemplate(ctx context.Context, templateID string) (backend.ContractTemplate, bool) {
	all, err := h.gateway.ListContractTemplates(ctx)
	if err != nil {
		return backend.ContractTemplate{}, false
	}
	for _, tpl := range all {
		if tpl.ID == templateID {
			return tpl, true
		}
	}
	return backend.ContractTemplate{}, false
}

// paginate slices one page out of a fully loaded list.
func paginate[T any](all []T, req backend.PageRequest) backend.Page[T] {
	req = req.Normalize()
	total := len(all)
	totalPages := (total + req.Size - 1) / req.Size
	start := min((req.Number-1)*req.Size, total)
	end := min(start+req.Size, total)
	return backend.Page[T]{
		Items:           all[start:end],
		Number:          req.Number,
		Size:            req.Size,
		TotalCount:      total,
		TotalPages:      totalPages,
		HasNextPage:     req.Number < totalPages,
		HasPreviousPage: req.Number > 1,
	}
}
