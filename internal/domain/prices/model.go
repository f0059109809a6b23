package prices

import (
	"strings"
	"time"

	"github.com/Spok95/stone-inventory/internal/domain/filter"
	"github.com/Spok95/stone-inventory/internal/domain/money"
	"github.com/Spok95/stone-inventory/internal/errs"
)

// Price is the per-square-foot price of one (type, color).
type Price struct {
	ID         string
	Color      string
	Type       string
	Term       money.PriceTerm
	CreatedAt  time.Time
	ModifiedAt time.Time
}

func (p Price) FieldValue(f filter.Field) any {
	switch f {
	case filter.FieldType:
		return p.Type
	case filter.FieldColor:
		return p.Color
	default:
		return nil
	}
}

type Request struct {
	Type      string
	Color     string
	SqftPrice string
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

func (r Request) trimmed() Request {
	for _, f := range []*string{&r.Type, &r.Color, &r.SqftPrice} {
		*f = strings.TrimSpace(*f)
	}
	return r
}

func (r Request) validateNew() error {
	switch {
	case blank(r.Color):
		return errs.Invalid("Color is empty")
	case blank(r.Type):
		return errs.Invalid("Type is empty")
	case blank(r.SqftPrice):
		return errs.Invalid("Sqft price is empty")
	}
	return nil
}

func byTypeAndColor(typ, color string) filter.Query {
	return filter.New().Eq(filter.FieldType, typ).Eq(filter.FieldColor, color).Build()
}
