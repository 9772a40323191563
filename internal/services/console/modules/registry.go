// Package modules assembles the console's feature modules into route groups.
package modules

import (
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/docreview"
	module "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/module"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/modules/catalog"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/modules/dashboard"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/modules/finance"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/modules/public"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/modules/review"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/modules/users"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/modules/vehicles"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/templates"
)

// API is the backend surface every staff and admin module reads from.
type API interface {
	users.Gateway
	vehicles.Gateway
	review.Gateway
	catalog.Gateway
	finance.Gateway
}

// PublicModules returns the unauthenticated login surface.
func PublicModules(sessions public.Sessions, deps module.Dependencies) []module.Module {
	return []module.Module{public.New(sessions, deps)}
}

// StaffModules returns the document review and catalog modules. Both review
// kinds share fence so a document cannot be decided twice at once.
func StaffModules(api API, fence *docreview.Fence, deps module.Dependencies) []module.Module {
	if fence == nil {
		fence = docreview.NewFence()
	}
	var (
		usersGW    users.Gateway
		vehiclesGW vehicles.Gateway
		reviewGW   review.Gateway
		catalogGW  catalog.Gateway
	)
	if api != nil {
		usersGW, vehiclesGW, reviewGW, catalogGW = api, api, api, api
	}
	return []module.Module{
		dashboard.New(templates.AreaStaff, deps),
		users.New(usersGW, deps),
		vehicles.New(vehiclesGW, deps),
		review.New(review.IdentityDocuments(), reviewGW, fence, deps),
		review.New(review.VehicleDocuments(), reviewGW, fence, deps),
		catalog.Items(catalogGW, deps),
		catalog.Packages(catalogGW, deps),
		catalog.PostPackages(catalogGW, deps),
		catalog.ContractTemplates(catalogGW, deps),
	}
}

// AdminModules returns the finance modules.
func AdminModules(api API, deps module.Dependencies) []module.Module {
	var gateway finance.Gateway
	if api != nil {
		gateway = api
	}
	return []module.Module{
		dashboard.New(templates.AreaAdmin, deps),
		finance.Transactions(gateway, deps),
		finance.Wallet(gateway, deps),
	}
}
