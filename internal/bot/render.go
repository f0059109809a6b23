package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/Spok95/stone-inventory/internal/domain/measure"
	"github.com/Spok95/stone-inventory/internal/domain/prices"
	"github.com/Spok95/stone-inventory/internal/domain/samples"
	"github.com/Spok95/stone-inventory/internal/domain/slabs"
	"github.com/Spok95/stone-inventory/internal/errs"
)

const maxListLines = 30

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func formatMeasurement(m measure.Measurement) string {
	f := m.Fields()
	switch m.Unit() {
	case measure.UnitImperial:
		return fmt.Sprintf("%s' %s\"", num(f.Feet), num(f.Inches))
	case measure.UnitMetric:
		return num(f.Centimeters) + " cm"
	default:
		return "-"
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// formatSlab renders one slab; p may be nil when the (type, color) has no price.
func formatSlab(s *slabs.Slab, p *prices.Price) string {
	d := s.Dimensions
	area := d.AreaSqFt()
	var sb strings.Builder
	fmt.Fprintf(&sb, "Slab %s\n%s / %s\nStatus: %s\n", s.ID, s.Type, s.Color, s.Status)
	fmt.Fprintf(&sb, "Location: %s, supplier: %s\n", s.Location, s.Supplier)
	fmt.Fprintf(&sb, "Size: %s x %s x %s (%.2f sq ft)\n",
		formatMeasurement(d.Length), formatMeasurement(d.Width), formatMeasurement(d.Thickness), area)
	fmt.Fprintf(&sb, "Remnant: %s, damaged: %s", yesNo(s.IsRemnant), yesNo(s.IsDamaged))
	if p != nil {
		fmt.Fprintf(&sb, "\nPrice: %s per sq ft, estimate %s %s",
			p.Term, p.Term.For(area).StringFixed(int32(p.Term.Currency().Digits)), p.Term.Currency().Code)
	}
	if s.Description != "" {
		sb.WriteString("\n" + s.Description)
	}
	return sb.String()
}

func formatSample(s *samples.Sample) string {
	return fmt.Sprintf("Sample %s\n%s / %s\nQuantity: %d\nSupplier: %s", s.ID, s.Type, s.Color, s.Quantity, s.Supplier)
}

func formatPrice(p *prices.Price) string {
	return fmt.Sprintf("%s / %s: %s per sq ft", p.Type, p.Color, p.Term)
}

func listLines[T any](items []T, empty string, line func(T) string) string {
	if len(items) == 0 {
		return empty
	}
	shown := items
	if len(shown) > maxListLines {
		shown = shown[:maxListLines]
	}
	out := strings.Join(lo.Map(shown, func(it T, _ int) string { return line(it) }), "\n")
	if rest := len(items) - len(shown); rest > 0 {
		out += fmt.Sprintf("\n... and %d more", rest)
	}
	return out
}

func slabLine(s slabs.Slab) string {
	return fmt.Sprintf("%s  %s %s  %s  %s", s.ID, s.Type, s.Color, s.Status, s.Location)
}

func sampleLine(s samples.Sample) string {
	return fmt.Sprintf("%s  %s %s  qty %d", s.ID, s.Type, s.Color, s.Quantity)
}

// errorReply maps a failure kind to the message staff see.
func errorReply(err error) string {
	switch errs.KindOf(err) {
	case errs.KindInvalidInput, errs.KindUnknownStatus:
		return "Bad request: " + err.Error()
	case errs.KindNotFound:
		return "Not found: " + err.Error()
	case errs.KindAlreadyExists:
		return "Conflict: " + err.Error()
	default:
		return "Something went wrong, try again later."
	}
}

const helpText = `Commands:
/slabs [type=] [color=] [status=] - list slabs
/slab <id> - slab details with price estimate
/reserve <id> - reserve a slab
/samples [type=] [color=] [available=yes] - list samples
/sample <id> - sample details
/inc <id>, /dec <id> - adjust sample quantity
/check slab|sample [type=] [color=] - availability
/price type= color= - price per sq ft
/export - inventory as xlsx
/addslab type= color= image= location= supplier= length= width= thickness= [description=] [remnant=] [damaged=]
/setslab <id> [status=] [location=] [length=10ft6in] ... - update a slab
/addsample type= color= image= supplier= [qty=]
/setsample <id> [qty=] ... - update a sample
/addprice type= color= price=, /setprice <id> [price=] [type=] [color=]
/delslab <id>, /delsample <id>, /delprice <id> - delete
Send an .xlsx with type, color, sqft_price columns to import prices.`
