package finance

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/docreview"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/templates"
)

const ledgerSheet = "Ledger"

var ledgerColumnWidths = []float64{20, 18, 16, 16, 38}

// writeLedgerWorkbook writes the wallet summary and its ledger rows as one
// sheet. Amounts stay numeric so they can be summed in the spreadsheet.
func writeLedgerWorkbook(w io.Writer, loc templates.Localizer, data ledger) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = closeErr
		}
	}()

	index, err := f.NewSheet(ledgerSheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	set := func(col int, row int, value any) {
		if err != nil {
			return
		}
		var cell string
		cell, err = excelize.CoordinatesToCellName(col, row)
		if err == nil {
			err = f.SetCellValue(ledgerSheet, cell, value)
		}
	}

	set(1, 1, templates.T(loc, "finance.wallet.id"))
	set(2, 1, data.Wallet.ID)
	set(1, 2, templates.T(loc, "finance.wallet.balance"))
	set(2, 2, data.Wallet.Balance)

	const headerRow = 4
	headers := []string{
		templates.T(loc, "finance.column.created"),
		templates.T(loc, "finance.column.type"),
		templates.T(loc, "finance.column.amount"),
		templates.T(loc, "finance.column.balance_after"),
		templates.T(loc, "finance.column.trip"),
	}
	for i, header := range headers {
		set(i+1, headerRow, header)
	}
	for i, tx := range data.Rows {
		row := headerRow + 1 + i
		created := tx.CreatedAt
		if parsed, ok := docreview.ParseTime(tx.CreatedAt); ok {
			created = parsed.Format("2006-01-02 15:04")
		}
		set(1, row, created)
		set(2, row, tx.Type)
		set(3, row, tx.Amount)
		set(4, row, tx.BalanceAfter)
		set(5, row, tx.TripID)
	}
	if err != nil {
		return fmt.Errorf("write cells: %w", err)
	}

	for i, width := range ledgerColumnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(ledgerSheet, col, col, width); err != nil {
			return fmt.Errorf("set width %s: %w", col, err)
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
