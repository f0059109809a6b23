package sheets

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Spok95/stone-inventory/internal/domain/prices"
	"github.com/Spok95/stone-inventory/internal/errs"
)

// ReadPrices reads the Prices sheet, or the active sheet when the file has none.
// Columns are found by header name; blank rows are skipped.
func ReadPrices(data []byte) ([]prices.ImportRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errs.Invalid("not an xlsx file")
	}
	defer func() { _ = f.Close() }()

	sheet := SheetPrices
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, errs.Invalid("sheet %s has no price rows", sheet)
	}

	col := map[string]int{}
	for i, h := range rows[0] {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, name := range []string{"type", "color", "sqft_price"} {
		if _, ok := col[name]; !ok {
			return nil, errs.Invalid("sheet %s is missing column %s", sheet, name)
		}
	}

	cell := func(row []string, name string) string {
		if i := col[name]; i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	out := []prices.ImportRow{}
	for i, row := range rows[1:] {
		r := prices.ImportRow{
			Line:      i + 2,
			Type:      cell(row, "type"),
			Color:     cell(row, "color"),
			SqftPrice: cell(row, "sqft_price"),
		}
		if r.Type == "" && r.Color == "" && r.SqftPrice == "" {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}
