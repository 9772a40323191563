package finance

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/backend"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/listquery"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/modulehandler"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/weberror"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/routepath"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/templates"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var pageSpec = listquery.Spec{}

type handlers struct {
	modulehandler.Base
	service service
	now     func() time.Time
}

func (h handlers) handleTransactions(w http.ResponseWriter, r *http.Request) {
	params := pageSpec.Parse(r.URL.Query())
	page, err := h.service.transactions(r.Context(), params.Page)
	if err != nil {
		if h.DenyIfUnauthorized(w, r, err) {
			return
		}
		h.Logger().Printf("transactions failed err=%v", err)
	}

	loc, _ := h.PageLocalizer(r)
	view := templates.ListingView{
		Heading:  templates.T(loc, "finance.transactions.heading"),
		Subtitle: templates.T(loc, "finance.transactions.subtitle"),
		Empty:    templates.T(loc, "finance.transactions.empty"),
	}
	if err != nil {
		view.Error = weberror.FallbackMessage(loc, err, "finance.error.transactions")
	} else {
		view.Table = transactionsTable(loc, page.Items)
		view.Pager = templates.NewPager(loc, page.Number, page.TotalPages, page.HasPreviousPage, page.HasNextPage, func(n int) string {
			return pageSpec.PageHref(routepath.AdminTransactions, params, n)
		})
	}
	h.WritePage(w, r, view.Heading, http.StatusOK, templates.ListingPage(view, loc))
}

func (h handlers) handleWallet(w http.ResponseWriter, r *http.Request) {
	params := pageSpec.Parse(r.URL.Query())
	history, err := h.service.wallet(r.Context(), params.Page)
	if err != nil {
		if h.DenyIfUnauthorized(w, r, err) {
			return
		}
		h.Logger().Printf("platform wallet failed err=%v", err)
	}

	loc, _ := h.PageLocalizer(r)
	view := templates.ListingView{
		Heading:  templates.T(loc, "finance.wallet.heading"),
		Subtitle: templates.T(loc, "finance.wallet.subtitle"),
		Empty:    templates.T(loc, "finance.wallet.empty"),
	}
	if err != nil {
		view.Error = weberror.FallbackMessage(loc, err, "finance.error.wallet")
	} else {
		view.Summary = []templates.Fact{
			{Label: templates.T(loc, "finance.wallet.id"), Value: templates.OrNA(loc, history.Wallet.ID)},
			{Label: templates.T(loc, "finance.wallet.balance"), Value: templates.FormatMoney(loc, history.Wallet.Balance)},
		}
		view.Actions = []templates.ActionLink{{Label: templates.T(loc, "finance.wallet.export"), Href: routepath.AdminPlatformWalletExport}}
		view.Table = ledgerTable(loc, history.Transactions.Items)
		page := history.Transactions
		view.Pager = templates.NewPager(loc, page.Number, page.TotalPages, page.HasPreviousPage, page.HasNextPage, func(n int) string {
			return pageSpec.PageHref(routepath.AdminPlatformWallet, params, n)
		})
	}
	h.WritePage(w, r, view.Heading, http.StatusOK, templates.ListingPage(view, loc))
}

// handleWalletExport streams the whole ledger as an .xlsx attachment. The
// workbook is built in memory so a failure can still render an error page.
func (h handlers) handleWalletExport(w http.ResponseWriter, r *http.Request) {
	ledger, err := h.service.loadLedger(r.Context())
	if err != nil {
		h.Logger().Printf("wallet export failed err=%v", err)
		h.WriteError(w, r, err)
		return
	}
	if ledger.Truncated {
		h.Logger().Printf("wallet export truncated rows=%d", len(ledger.Rows))
	}

	loc, _ := h.PageLocalizer(r)
	var buf bytes.Buffer
	if err := writeLedgerWorkbook(&buf, loc, ledger); err != nil {
		h.Logger().Printf("wallet export build failed err=%v", err)
		weberror.WriteAppError(w, r, http.StatusInternalServerError, h.Policy())
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "platform-wallet_"+h.now().Format("20060102")+".xlsx"))
	w.Header().Set("Cache-Control", "no-store")
	if _, err := buf.WriteTo(w); err != nil {
		h.Logger().Printf("wallet export write failed err=%v", err)
	}
}

func transactionsTable(loc templates.Localizer, rows []backend.Transaction) templates.TableView {
	table := templates.TableView{
		Columns: []string{
			templates.T(loc, "finance.column.created"),
			templates.T(loc, "finance.column.type"),
			templates.T(loc, "finance.column.status"),
			templates.T(loc, "finance.column.amount"),
			templates.T(loc, "finance.column.description"),
			templates.T(loc, "finance.column.trip"),
		},
		Rows: make([]templates.Row, 0, len(rows)),
	}
	for _, tx := range rows {
		table.Rows = append(table.Rows, templates.Row{Cells: []templates.Cell{
			templates.TextCell(templates.FormatDateTime(loc, tx.CreatedAt)),
			templates.TextCell(tx.Type),
			templates.BadgeCell(tx.Status),
			templates.NumberCell(templates.FormatMoney(loc, tx.Amount)),
			templates.TextCell(tx.Description),
			templates.TextCell(tx.TripID),
		}})
	}
	return table
}

func ledgerTable(loc templates.Localizer, rows []backend.WalletTransaction) templates.TableView {
	table := templates.TableView{
		Columns: []string{
			templates.T(loc, "finance.column.created"),
			templates.T(loc, "finance.column.type"),
			templates.T(loc, "finance.column.amount"),
			templates.T(loc, "finance.column.balance_after"),
			templates.T(loc, "finance.column.trip"),
		},
		Rows: make([]templates.Row, 0, len(rows)),
	}
	for _, tx := range rows {
		table.Rows = append(table.Rows, templates.Row{Cells: []templates.Cell{
			templates.TextCell(templates.FormatDateTime(loc, tx.CreatedAt)),
			templates.TextCell(tx.Type),
			templates.NumberCell(templates.FormatMoney(loc, tx.Amount)),
			templates.NumberCell(templates.FormatMoney(loc, tx.BalanceAfter)),
			templates.TextCell(tx.TripID),
		}})
	}
	return table
}
