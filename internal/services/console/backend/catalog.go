package backend

import (
	"context"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// Item is a shippable item registered by a user.
type Item struct {
	ID     string
	Name   string
	Weight string
	UserID string
}

// Package is a bundle of items awaiting transport.
type Package struct {
	ID     string
	Name   string
	UserID string
	Weight string
}

// PostPackage is a provider's published package offer.
type PostPackage struct {
	ID         string
	Title      string
	ProviderID string
	Status     string
}

// ContractTemplate is a versioned contract skeleton.
type ContractTemplate struct {
	ID        string
	Name      string
	Version   string
	Type      string
	CreatedAt string
}

// ContractTerm is one ordered clause of a template.
type ContractTerm struct {
	ID      string
	Content string
	Order   int
}

type itemDTO struct {
	ItemID flexString `json:"itemId"`
	Name   string     `json:"name"`
	Weight flexString `json:"weight"`
	UserID flexString `json:"userId"`
}

type packageDTO struct {
	PackageID flexString `json:"packageId"`
	Name      string     `json:"name"`
	UserID    flexString `json:"userId"`
	Weight    flexString `json:"weight"`
}

type postPackageDTO struct {
	PostPackageID flexString `json:"postPackageId"`
	Title         string     `json:"title"`
	ProviderID    flexString `json:"providerId"`
	Status        string     `json:"status"`
}

type contractTemplateDTO struct {
	ContractTemplateID   flexString `json:"contractTemplateId"`
	ContractTemplateName string     `json:"contractTemplateName"`
	Version              flexString `json:"version"`
	Type                 string     `json:"type"`
	CreatedAt            string     `json:"createdAt"`
}

type contractTermDTO struct {
	ContractTermID flexString `json:"contractTermId"`
	Content        string     `json:"content"`
	Order          int        `json:"order"`
}

// ListItems fetches one page of items.
func (c *Client) ListItems(ctx context.Context, page PageRequest) (Page[Item], error) {
	resp, err := call[pageDTO[itemDTO]](ctx, c, request{
		endpoint: "item.list",
		method:   http.MethodGet,
		path:     "Item/get-all-items",
		query:    page.values(),
	})
	if err != nil {
		return Page[Item]{}, err
	}
	return mapPage(resp.Result, page, func(d itemDTO) Item {
		return Item{ID: d.ItemID.String(), Name: d.Name, Weight: d.Weight.String(), UserID: d.UserID.String()}
	}), nil
}

// ListPackages fetches one page of packages.
func (c *Client) ListPackages(ctx context.Context, page PageRequest) (Page[Package], error) {
	resp, err := call[pageDTO[packageDTO]](ctx, c, request{
		endpoint: "package.list",
		method:   http.MethodGet,
		path:     "Package/get-all-packages",
		query:    page.values(),
	})
	if err != nil {
		return Page[Package]{}, err
	}
	return mapPage(resp.Result, page, func(d packageDTO) Package {
		return Package{ID: d.PackageID.String(), Name: d.Name, UserID: d.UserID.String(), Weight: d.Weight.String()}
	}), nil
}

// ListPostPackages fetches one page of package offers.
func (c *Client) ListPostPackages(ctx context.Context, page PageRequest) (Page[PostPackage], error) {
	resp, err := call[pageDTO[postPackageDTO]](ctx, c, request{
		endpoint: "post_package.list",
		method:   http.MethodGet,
		path:     "PostPackage/get-all",
		query:    page.values(),
	})
	if err != nil {
		return Page[PostPackage]{}, err
	}
	return mapPage(resp.Result, page, func(d postPackageDTO) PostPackage {
		return PostPackage{ID: d.PostPackageID.String(), Title: d.Title, ProviderID: d.ProviderID.String(), Status: d.Status}
	}), nil
}

// ListContractTemplates fetches every contract template. The endpoint is
// not paginated.
func (c *Client) ListContractTemplates(ctx context.Context) ([]ContractTemplate, error) {
	resp, err := call[[]contractTemplateDTO](ctx, c, request{
		endpoint: "contract_template.list",
		method:   http.MethodGet,
		path:     "ContractTemplate/getAll",
	})
	if err != nil {
		return nil, err
	}
	templates := make([]ContractTemplate, 0, len(resp.Result))
	for _, d := range resp.Result {
		templates = append(templates, ContractTemplate{
			ID:        d.ContractTemplateID.String(),
			Name:      d.ContractTemplateName,
			Version:   d.Version.String(),
			Type:      d.Type,
			CreatedAt: d.CreatedAt,
		})
	}
	return templates, nil
}

// ListContractTerms fetches a template's terms ordered by Order.
func (c *Client) ListContractTerms(ctx context.Context, templateID string) ([]ContractTerm, error) {
	resp, err := call[[]contractTermDTO](ctx, c, request{
		endpoint: "contract_term.list",
		method:   http.MethodGet,
		path:     "ContractTerm/getAll/" + url.PathEscape(strings.TrimSpace(templateID)),
	})
	if err != nil {
		return nil, err
	}
	terms := make([]ContractTerm, 0, len(resp.Result))
	for _, d := range resp.Result {
		terms = append(terms, ContractTerm{ID: d.ContractTermID.String(), Content: d.Content, Order: d.Order})
	}
	sort.SliceStable(terms, func(i, j int) bool { return terms[i].Order < terms[j].Order })
	return terms, nil
}
