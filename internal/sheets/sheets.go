// Package sheets reads and writes the xlsx files staff exchange with the bot.
package sheets

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"github.com/Spok95/stone-inventory/internal/domain/prices"
	"github.com/Spok95/stone-inventory/internal/domain/samples"
	"github.com/Spok95/stone-inventory/internal/domain/slabs"
)

const (
	SheetSlabs   = "Slabs"
	SheetSamples = "Samples"
	SheetPrices  = "Prices"
)

var (
	slabHeader   = []any{"id", "type", "color", "status", "location", "supplier", "remnant", "damaged", "length_ft", "width_ft", "thickness_in", "area_sqft", "price_sqft", "estimate", "currency"}
	sampleHeader = []any{"id", "type", "color", "quantity", "supplier"}
	priceHeader  = []any{"type", "color", "sqft_price", "currency"}
)

// Inventory is everything Export writes, one sheet per kind.
type Inventory struct {
	Slabs   []slabs.Slab
	Samples []samples.Sample
	Prices  []prices.Price
}

func key(typ, color string) string {
	return strings.ToLower(typ) + "\x00" + strings.ToLower(color)
}

// priceIndex keeps the first price per (type, color); lists come oldest first.
func priceIndex(ps []prices.Price) map[string]prices.Price {
	idx := make(map[string]prices.Price, len(ps))
	for _, p := range ps {
		k := key(p.Type, p.Color)
		if _, ok := idx[k]; !ok {
			idx[k] = p
		}
	}
	return idx
}

func writeRows(f *excelize.File, sheet string, header []any, rows [][]any) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("%s header: %w", sheet, err)
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}

func Export(inv Inventory) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetSlabs); err != nil {
		return nil, err
	}
	for _, name := range []string{SheetSamples, SheetPrices} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}

	idx := priceIndex(inv.Prices)
	slabRows := lo.Map(inv.Slabs, func(s slabs.Slab, _ int) []any {
		d := s.Dimensions
		area := d.AreaSqFt()
		row := []any{
			s.ID, s.Type, s.Color, string(s.Status), s.Location, s.Supplier, s.IsRemnant, s.IsDamaged,
			d.Length.TotalFeet(), d.Width.TotalFeet(), d.Thickness.TotalInches(), area,
		}
		if p, ok := idx[key(s.Type, s.Color)]; ok {
			return append(row, p.Term.AmountText(), p.Term.For(area).StringFixed(int32(p.Term.Currency().Digits)), p.Term.Currency().Code)
		}
		return append(row, "", "", "")
	})
	sampleRows := lo.Map(inv.Samples, func(s samples.Sample, _ int) []any {
		return []any{s.ID, s.Type, s.Color, s.Quantity, s.Supplier}
	})
	priceRows := lo.Map(inv.Prices, func(p prices.Price, _ int) []any {
		return []any{p.Type, p.Color, p.Term.AmountText(), p.Term.Currency().Code}
	})

	if err := writeRows(f, SheetSlabs, slabHeader, slabRows); err != nil {
		return nil, err
	}
	if err := writeRows(f, SheetSamples, sampleHeader, sampleRows); err != nil {
		return nil, err
	}
	if err := writeRows(f, SheetPrices, priceHeader, priceRows); err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
