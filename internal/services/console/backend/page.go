package backend

import (
	"net/url"
	"strconv"
)

// DefaultPageSize is used when a request leaves the size unset.
const DefaultPageSize = 10

// PageRequest selects one page of a listing. Numbers start at 1.
type PageRequest struct {
	Number int
	Size   int
}

// Normalize clamps the request to valid values.
func (p PageRequest) Normalize() PageRequest {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	if p.Size > 100 {
		p.Size = 100
	}
	return p
}

func (p PageRequest) values() url.Values {
	p = p.Normalize()
	return url.Values{
		"pageNumber": {strconv.Itoa(p.Number)},
		"pageSize":   {strconv.Itoa(p.Size)},
	}
}

// Page is one page of a listing.
type Page[T any] struct {
	Items           []T
	Number          int
	Size            int
	TotalCount      int
	TotalPages      int
	HasNextPage     bool
	HasPreviousPage bool
}

// pageDTO accepts both paging shapes the backend uses: rows under "data"
// or under "items", with the page number as "pageNumber" or "currentPage".
type pageDTO[T any] struct {
	Data            []T  `json:"data"`
	Items           []T  `json:"items"`
	PageNumber      int  `json:"pageNumber"`
	CurrentPage     int  `json:"currentPage"`
	PageSize        int  `json:"pageSize"`
	TotalCount      int  `json:"totalCount"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

func (p pageDTO[T]) rows() []T {
	if len(p.Data) > 0 {
		return p.Data
	}
	return p.Items
}

func mapPage[In any, Out any](dto pageDTO[In], requested PageRequest, convert func(In) Out) Page[Out] {
	requested = requested.Normalize()
	rows := dto.rows()
	page := Page[Out]{
		Items:           make([]Out, 0, len(rows)),
		Number:          firstPositive(dto.PageNumber, dto.CurrentPage, requested.Number),
		Size:            firstPositive(dto.PageSize, requested.Size),
		TotalCount:      dto.TotalCount,
		TotalPages:      dto.TotalPages,
		HasNextPage:     dto.HasNextPage,
		HasPreviousPage: dto.HasPreviousPage,
	}
	for _, row := range rows {
		page.Items = append(page.Items, convert(row))
	}
	if page.TotalCount == 0 {
		page.TotalCount = len(page.Items)
	}
	if page.TotalPages == 0 && page.Size > 0 && dto.TotalCount > 0 {
		page.TotalPages = (dto.TotalCount + page.Size - 1) / page.Size
	}
	if !page.HasNextPage && page.TotalPages > 0 {
		page.HasNextPage = page.Number < page.TotalPages
	}
	if !page.HasPreviousPage {
		page.HasPreviousPage = page.Number > 1
	}
	return page
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
