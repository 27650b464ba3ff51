package reports

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExportProfitAndLossExcel renders the P&L report as a one-sheet workbook.
func ExportProfitAndLossExcel(ctx context.Context, from, to time.Time) ([]byte, error) {
	report, err := ProfitAndLoss(ctx, from, to)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Profit and Loss"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	rows := [][]interface{}{
		{"Period", fmt.Sprintf("%s to %s", from.Format("2006-01-02"), to.Format("2006-01-02"))},
		{},
		{"Revenue (SYP)", report.Revenue.String()},
		{"Cost of goods (SYP)", report.CostOfGoods.String()},
		{"Gross profit (SYP)", report.GrossProfit.String()},
		{"Expenses (SYP)", report.Expenses.String()},
		{"Net profit (SYP)", report.NetProfit.String()},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	return writeWorkbook(f)
}

// ExportInventoryValuationExcel renders the stock valuation as a workbook.
func ExportInventoryValuationExcel(ctx context.Context) ([]byte, error) {
	report, err := InventoryValuation(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Inventory Valuation"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	header := []interface{}{"Product", "Stock", "Unit cost (SYP)", "Total value (SYP)"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, entry := range report.Entries {
		row := []interface{}{entry.Name, entry.Stock.String(), entry.UnitCost.String(), entry.TotalValue.String()}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}
	totalRow := []interface{}{"Total", "", "", report.TotalValue.String()}
	cell, err := excelize.CoordinatesToCellName(1, len(report.Entries)+3)
	if err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(sheet, cell, &totalRow); err != nil {
		return nil, err
	}

	return writeWorkbook(f)
}

func writeWorkbook(f *excelize.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
