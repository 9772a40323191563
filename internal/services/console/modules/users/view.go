package users

import (
	"strings"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/backend"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/docreview"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/listquery"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/weberror"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/routepath"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/templates"
)

func managementView(loc templates.Localizer, params listquery.Params, data pageData) templates.ManagementView {
	view := templates.ManagementView{
		Heading:   templates.T(loc, "users.heading"),
		Subtitle:  templates.T(loc, "users.subtitle"),
		Filter:    filterView(loc, params),
		ListState: docreview.StateOf(len(data.Users.Items), data.ListErr),
		ListEmpty: templates.T(loc, "users.empty"),
	}
	if data.ListErr != nil {
		view.ListError = weberror.FallbackMessage(loc, data.ListErr, "users.error.list")
	} else {
		view.List = listTable(loc, params, data)
		view.Pager = templates.NewPager(loc, data.Users.Number, data.Users.TotalPages, data.Users.HasPreviousPage, data.Users.HasNextPage, func(page int) string {
			return querySpec.PageHref(routepath.StaffUsers, params, page)
		})
	}
	if data.Selected != "" {
		queue := documentsQueue(loc, data)
		view.Selected = &queue
	}
	return view
}

func filterView(loc templates.Localizer, params listquery.Params) templates.FilterView {
	sorts := make([]templates.Option, 0, len(querySpec.Sorts))
	for _, sort := range querySpec.Sorts {
		sorts = append(sorts, templates.Option{
			Value:    sort,
			Label:    templates.T(loc, "users.sort."+sort),
			Selected: sort == params.Sort,
		})
	}
	return templates.FilterView{
		Action:    routepath.StaffUsers,
		Search:    params.Search,
		SortName:  querySpec.SortParam,
		SortOpts:  sorts,
		OrderName: querySpec.OrderParam,
		OrderOpts: orderOptions(loc, params.Order),
	}
}

func orderOptions(loc templates.Localizer, current string) []templates.Option {
	return []templates.Option{
		{Value: "ASC", Label: templates.T(loc, "filter.order.asc"), Selected: current == "ASC"},
		{Value: "DESC", Label: templates.T(loc, "filter.order.desc"), Selected: current == "DESC"},
	}
}

func listTable(loc templates.Localizer, params listquery.Params, data pageData) templates.TableView {
	table := templates.TableView{
		Columns: []string{
			templates.T(loc, "users.column.name"),
			templates.T(loc, "users.column.email"),
			templates.T(loc, "users.column.role"),
			templates.T(loc, "users.column.status"),
			templates.T(loc, "users.column.documents"),
			templates.T(loc, "users.column.created"),
		},
		Rows: make([]templates.Row, 0, len(data.Users.Items)),
	}
	for _, user := range data.Users.Items {
		documents := templates.TextCell("")
		if status, ok := data.Aggregates[user.ID]; ok {
			documents = templates.StatusCell(status)
		}
		table.Rows = append(table.Rows, templates.Row{
			Selected: user.ID != "" && user.ID == data.Selected,
			Cells: []templates.Cell{
				templates.LinkCell(displayName(user), selectHref(params, user.ID)),
				templates.TextCell(user.Email),
				templates.TextCell(user.RoleName),
				templates.BadgeCell(user.Status),
				documents,
				templates.TextCell(templates.FormatDate(loc, user.CreatedAt)),
			},
		})
	}
	return table
}

func selectHref(params listquery.Params, userID string) string {
	if userID == "" {
		return ""
	}
	return querySpec.SelectHref(routepath.StaffUsers, params, userID)
}

func displayName(user backend.User) string {
	if name := strings.TrimSpace(user.FullName); name != "" {
		return name
	}
	if email := strings.TrimSpace(user.Email); email != "" {
		return email
	}
	return user.ID
}

func documentsQueue(loc templates.Localizer, data pageData) templates.QueueView {
	queue := templates.QueueView{
		Title: templates.T(loc, "users.documents.title", data.Selected),
		State: docreview.StateOf(len(data.Documents), data.DocumentsErr),
		Empty: templates.T(loc, "users.documents.empty"),
	}
	if user, ok := data.selectedUser(); ok {
		queue.Title = displayName(user)
		queue.Subtitle = user.Email
	}
	if data.DocumentsErr != nil {
		queue.Error = weberror.FallbackMessage(loc, data.DocumentsErr, "users.error.documents")
		return queue
	}
	queue.Aggregate = docreview.AggregateDocuments(data.Documents)
	queue.Table = documentsTable(loc, data.Documents)
	return queue
}

func documentsTable(loc templates.Localizer, docs []docreview.Document) templates.TableView {
	table := templates.TableView{
		Columns: []string{
			templates.T(loc, "documents.column.type"),
			templates.T(loc, "documents.column.status"),
			templates.T(loc, "documents.column.created"),
			templates.T(loc, "documents.column.action"),
		},
		Rows: make([]templates.Row, 0, len(docs)),
	}
	for _, doc := range docs {
		action := templates.TextCell("")
		if docreview.Reviewable(docreview.KindIdentity, doc.Status) && doc.ID != "" {
			action = templates.LinkCell(templates.T(loc, "documents.review"), routepath.DocumentReview(doc.ID))
		}
		table.Rows = append(table.Rows, templates.Row{
			Highlight: doc.Status.IsPending(),
			Cells: []templates.Cell{
				templates.TextCell(doc.DocumentType),
				templates.StatusCell(doc.Status),
				templates.TextCell(templates.FormatDateTime(loc, doc.CreatedAt)),
				action,
			},
		})
	}
	return table
}
