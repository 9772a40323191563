package catalog

import (
	"context"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/backend"
)

type fakeGateway struct {
	items        backend.Page[backend.Item]
	packages     backend.Page[backend.Package]
	posts        backend.Page[backend.PostPackage]
	templates    []backend.ContractTemplate
	terms        map[string][]backend.ContractTerm
	err          error
	templatesErr error
	pages        []backend.PageRequest
}

func (f *fakeGateway) ListItems(_ context.Context, page backend.PageRequest) (backend.Page[backend.Item], error) {
	f.pages = append(f.pages, page)
	return f.items, f.err
}

func (f *fakeGateway) ListPackages(_ context.Context, page backend.PageRequest) (backend.Page[backend.Package], error) {
	f.pages = append(f.pages, page)
	return f.packages, f.err
}

func (f *fakeGateway) ListPostPackages(_ context.Context, page backend.PageRequest) (backend.Page[backend.PostPackage], error) {
	f.pages = append(f.pages, page)
	return f.posts, f.err
}

func (f *fakeGateway) ListContractTemplates(context.Context) ([]backend.ContractTemplate, error) {
	if f.templatesErr != nil {
		return nil, f.templatesErr
	}
	return f.templates, nil
}

func (f *fakeGateway) ListContractTerms(_ context.Context, templateID string) ([]backend.ContractTerm, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.terms[templateID], nil
}
