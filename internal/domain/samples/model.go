package samples

import (
	"strings"
	"time"

	"github.com/Spok95/stone-inventory/internal/domain/filter"
	"github.com/Spok95/stone-inventory/internal/errs"
)

// Sample is a bulk swatch tracked by quantity instead of status.
type Sample struct {
	ID         string    `bson:"_id"`
	Image      string    `bson:"image"`
	Color      string    `bson:"color"`
	Type       string    `bson:"type"`
	Quantity   int       `bson:"quantity"`
	Supplier   string    `bson:"supplier"`
	CreatedAt  time.Time `bson:"creationDate"`
	ModifiedAt time.Time `bson:"modificationDate"`
}

func (s Sample) Available() bool { return s.Quantity > 0 }

func (s Sample) FieldValue(f filter.Field) any {
	switch f {
	case filter.FieldType:
		return s.Type
	case filter.FieldColor:
		return s.Color
	case filter.FieldQuantity:
		return s.Quantity
	default:
		return nil
	}
}

type Request struct {
	Image    string
	Color    string
	Type     string
	Supplier string
	Quantity *int
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// trimmed strips surrounding space so stored values match trimmed query terms.
func (r Request) trimmed() Request {
	for _, f := range []*string{&r.Image, &r.Color, &r.Type, &r.Supplier} {
		*f = strings.TrimSpace(*f)
	}
	return r
}

func (r Request) validateNew() error {
	switch {
	case blank(r.Image):
		return errs.Invalid("Image is empty")
	case blank(r.Color):
		return errs.Invalid("Color is empty")
	case blank(r.Type):
		return errs.Invalid("Type is empty")
	case blank(r.Supplier):
		return errs.Invalid("Supplier is empty")
	}
	return nil
}

type Criteria struct {
	Type          string
	Color         string
	OnlyAvailable bool
}

// availableFragment is the quantity counterpart of a slab's status == AVAILABLE.
var availableFragment = filter.Gt(filter.FieldQuantity, 0)

func (c Criteria) Query() filter.Query {
	return filter.New().
		Eq(filter.FieldType, c.Type).
		Eq(filter.FieldColor, c.Color).
		When(c.OnlyAvailable, availableFragment).
		Build()
}
