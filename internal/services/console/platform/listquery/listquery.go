// Package listquery parses and rebuilds the query string shared by the
// console's paged listings: search, sort, order, page and selection.
package listquery

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
)

const (
	// PageParam carries the 1-based page number.
	PageParam = "page"
	// SearchParam carries the free-text search.
	SearchParam = "search"
)

const maxSearchLen = 200

// Spec describes which parameters a listing accepts.
type Spec struct {
	SortParam   string
	Sorts       []string
	DefaultSort string

	OrderParam   string
	DefaultOrder string

	// SelectParam names the query parameter selecting one row.
	SelectParam string
}

// Params is a parsed listing query.
type Params struct {
	Search   string
	Sort     string
	Order    string
	Page     int
	Selected string
}

// Parse reads values against spec. Unknown sorts and orders fall back to
// the defaults.
func (s Spec) Parse(values url.Values) Params {
	p := Params{
		Search: strings.TrimSpace(values.Get(SearchParam)),
		Sort:   s.DefaultSort,
		Order:  s.DefaultOrder,
		Page:   1,
	}
	if len(p.Search) > maxSearchLen {
		p.Search = p.Search[:maxSearchLen]
	}
	if s.SortParam != "" {
		if sort := strings.TrimSpace(values.Get(s.SortParam)); slices.Contains(s.Sorts, sort) {
			p.Sort = sort
		}
	}
	if s.OrderParam != "" {
		switch order := strings.ToUpper(strings.TrimSpace(values.Get(s.OrderParam))); order {
		case "ASC", "DESC":
			p.Order = order
		}
	}
	if n, err := strconv.Atoi(strings.TrimSpace(values.Get(PageParam))); err == nil && n > 0 {
		p.Page = n
	}
	if s.SelectParam != "" {
		p.Selected = strings.TrimSpace(values.Get(s.SelectParam))
	}
	return p
}

// Values encodes p, omitting defaults.
func (s Spec) Values(p Params) url.Values {
	values := url.Values{}
	if p.Search != "" {
		values.Set(SearchParam, p.Search)
	}
	if s.SortParam != "" && p.Sort != "" && p.Sort != s.DefaultSort {
		values.Set(s.SortParam, p.Sort)
	}
	if s.OrderParam != "" && p.Order != "" && p.Order != s.DefaultOrder {
		values.Set(s.OrderParam, p.Order)
	}
	if p.Page > 1 {
		values.Set(PageParam, strconv.Itoa(p.Page))
	}
	if s.SelectParam != "" && p.Selected != "" {
		values.Set(s.SelectParam, p.Selected)
	}
	return values
}

// Href returns path with p encoded as its query.
func (s Spec) Href(path string, p Params) string {
	encoded := s.Values(p).Encode()
	if encoded == "" {
		return path
	}
	return path + "?" + encoded
}

// PageHref links to another page of the same listing. The selection is
// dropped since it may not exist on that page.
func (s Spec) PageHref(path string, p Params, page int) string {
	p.Page = page
	p.Selected = ""
	return s.Href(path, p)
}

// SelectHref links to the same page with id selected.
func (s Spec) SelectHref(path string, p Params, id string) string {
	p.Selected = id
	return s.Href(path, p)
}
