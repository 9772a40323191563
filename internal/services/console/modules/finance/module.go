// Package finance serves the admin money pages: platform transactions and
// the platform wallet ledger with its spreadsheet export.
package finance

import (
	"net/http"
	"time"

	module "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/module"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/modulehandler"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/routepath"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/templates"
)

// Module is one finance page.
type Module struct {
	id      string
	prefix  string
	gateway Gateway
	deps    module.Dependencies
	now     func() time.Time
}

// Transactions returns the platform transactions module.
func Transactions(gateway Gateway, deps module.Dependencies) Module {
	return Module{id: "transactions", prefix: routepath.AdminTransactions, gateway: gateway, deps: deps}
}

// Wallet returns the platform wallet module, including the ledger export.
func Wallet(gateway Gateway, deps module.Dependencies) Module {
	return Module{id: "platform_wallet", prefix: routepath.AdminPlatformWallet + "/", gateway: gateway, deps: deps}
}

// ID returns a stable module identifier.
func (m Module) ID() string { return "finance." + m.id }

// Healthy reports whether a backend gateway is configured.
func (m Module) Healthy() bool { return m.gateway != nil }

// Mount wires finance route handlers.
func (m Module) Mount() (module.Mount, error) {
	h := handlers{
		Base:    modulehandler.NewBase(templates.AreaAdmin, m.deps),
		service: newService(m.gateway),
		now:     m.now,
	}
	if h.now == nil {
		h.now = time.Now
	}
	mux := http.NewServeMux()
	switch m.id {
	case "transactions":
		mux.HandleFunc(http.MethodGet+" "+routepath.AdminTransactions, h.handleTransactions)
	default:
		mux.HandleFunc(http.MethodGet+" "+routepath.AdminPlatformWallet, h.handleWallet)
		mux.HandleFunc(http.MethodGet+" "+routepath.AdminPlatformWallet+"/{$}", h.handleWallet)
		mux.HandleFunc(http.MethodGet+" "+routepath.AdminPlatformWalletExport, h.handleWalletExport)
		mux.HandleFunc(routepath.AdminPlatformWallet+"/{rest...}", h.WriteNotFound)
	}
	return module.Mount{Prefix: m.prefix, Handler: mux}, nil
}

var _ module.Module = Module{}
