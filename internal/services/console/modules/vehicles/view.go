package vehicles

import (
	"strings"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/backend"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/docreview"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/listquery"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/weberror"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/routepath"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/templates"
)

func managementView(loc templates.Localizer, params listquery.Params, page backend.Page[backend.Vehicle], err error) templates.ManagementView {
	view := templates.ManagementView{
		Heading:   templates.T(loc, "vehicles.heading"),
		Subtitle:  templates.T(loc, "vehicles.subtitle"),
		Filter:    filterView(loc, params),
		ListState: docreview.StateOf(len(page.Items), err),
		ListEmpty: templates.T(loc, "vehicles.empty"),
	}
	if err != nil {
		view.ListError = weberror.FallbackMessage(loc, err, "vehicles.error.list")
		return view
	}
	selected, ok := selectVehicle(page.Items, params.Selected)
	view.List = listTable(loc, params, page.Items, selected.ID)
	view.Pager = templates.NewPager(loc, page.Number, page.TotalPages, page.HasPreviousPage, page.HasNextPage, func(n int) string {
		return querySpec.PageHref(routepath.StaffVehicles, params, n)
	})
	if ok {
		queue := documentsQueue(loc, selected)
		view.Selected = &queue
	}
	return view
}

func filterView(loc templates.Localizer, params listquery.Params) templates.FilterView {
	sorts := make([]templates.Option, 0, len(querySpec.Sorts))
	for _, sort := range querySpec.Sorts {
		key := "vehicles.sort.default"
		if sort != "" {
			key = "vehicles.sort." + strings.ToLower(sort)
		}
		sorts = append(sorts, templates.Option{Value: sort, Label: templates.T(loc, key), Selected: sort == params.Sort})
	}
	return templates.FilterView{
		Action:    routepath.StaffVehicles,
		Search:    params.Search,
		SortName:  querySpec.SortParam,
		SortOpts:  sorts,
		OrderName: querySpec.OrderParam,
		OrderOpts: []templates.Option{
			{Value: "ASC", Label: templates.T(loc, "filter.order.asc"), Selected: params.Order == "ASC"},
			{Value: "DESC", Label: templates.T(loc, "filter.order.desc"), Selected: params.Order == "DESC"},
		},
	}
}

func listTable(loc templates.Localizer, params listquery.Params, vehicles []backend.Vehicle, selectedID string) templates.TableView {
	table := templates.TableView{
		Columns: []string{
			templates.T(loc, "vehicles.column.plate"),
			templates.T(loc, "vehicles.column.model"),
			templates.T(loc, "vehicles.column.owner"),
			templates.T(loc, "vehicles.column.status"),
			templates.T(loc, "vehicles.column.documents"),
		},
		Rows: make([]templates.Row, 0, len(vehicles)),
	}
	for _, vehicle := range vehicles {
		href := ""
		if vehicle.ID != "" {
			href = querySpec.SelectHref(routepath.StaffVehicles, params, vehicle.ID)
		}
		table.Rows = append(table.Rows, templates.Row{
			Selected: vehicle.ID == selectedID,
			Cells: []templates.Cell{
				templates.LinkCell(vehicle.PlateNumber, href),
				templates.TextCell(modelLine(vehicle)),
				templates.TextCell(ownerName(vehicle.Owner)),
				templates.BadgeCell(vehicle.Status),
				templates.StatusCell(docreview.AggregateDocuments(vehicle.Documents)),
			},
		})
	}
	return table
}

func modelLine(vehicle backend.Vehicle) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{vehicle.Brand, vehicle.Model, vehicle.Year} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

func ownerName(owner *backend.VehicleOwner) string {
	if owner == nil {
		return ""
	}
	if name := strings.TrimSpace(owner.FullName); name != "" {
		return name
	}
	return strings.TrimSpace(owner.CompanyName)
}

func documentsQueue(loc templates.Localizer, vehicle backend.Vehicle) templates.QueueView {
	docs := sortedDocuments(vehicle)
	queue := templates.QueueView{
		Title:     vehicle.PlateNumber,
		Subtitle:  modelLine(vehicle),
		State:     docreview.StateOf(len(docs), nil),
		Empty:     templates.T(loc, "vehicles.documents.empty"),
		Aggregate: docreview.AggregateDocuments(docs),
	}
	if strings.TrimSpace(queue.Title) == "" {
		queue.Title = vehicle.ID
	}
	queue.Table = templates.TableView{
		Columns: []string{
			templates.T(loc, "documents.column.type"),
			templates.T(loc, "documents.column.status"),
			templates.T(loc, "documents.column.created"),
			templates.T(loc, "documents.column.expiration"),
			templates.T(loc, "documents.column.action"),
		},
		Rows: make([]templates.Row, 0, len(docs)),
	}
	for _, doc := range docs {
		action := templates.TextCell("")
		if docreview.Reviewable(docreview.KindVehicle, doc.Status) && doc.ID != "" {
			action = templates.LinkCell(templates.T(loc, "documents.review"), routepath.VehicleDocumentReview(doc.ID))
		}
		queue.Table.Rows = append(queue.Table.Rows, templates.Row{
			Highlight: doc.Status.IsPending(),
			Cells: []templates.Cell{
				templates.TextCell(doc.DocumentType),
				templates.StatusCell(doc.Status),
				templates.TextCell(templates.FormatDateTime(loc, doc.CreatedAt)),
				templates.TextCell(templates.FormatDate(loc, doc.ExpirationDate)),
				action,
			},
		})
	}
	return queue
}
