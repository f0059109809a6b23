package slabs

import (
	"strings"
	"time"

	"github.com/Spok95/stone-inventory/internal/domain/filter"
	"github.com/Spok95/stone-inventory/internal/domain/measure"
	"github.com/Spok95/stone-inventory/internal/errs"
)

// Slab is a unique physical unit on the yard.
type Slab struct {
	ID          string             `bson:"_id"`
	Image       string             `bson:"image"`
	Description string             `bson:"description"`
	Dimensions  measure.Dimensions `bson:"dimensions"`
	IsRemnant   bool               `bson:"isRemnant"`
	IsDamaged   bool               `bson:"isDamaged"`
	Color       string             `bson:"color"`
	Type        string             `bson:"type"`
	Location    string             `bson:"location"`
	Supplier    string             `bson:"supplier"`
	CreatedAt   time.Time          `bson:"creationDate"`
	ModifiedAt  time.Time          `bson:"modificationDate"`
	Status      Status             `bson:"status"`
}

func (s Slab) FieldValue(f filter.Field) any {
	switch f {
	case filter.FieldType:
		return s.Type
	case filter.FieldColor:
		return s.Color
	case filter.FieldStatus:
		return string(s.Status)
	default:
		return nil
	}
}

// Request is the create/update shape. Blank strings and nil pointers mean "not supplied".
type Request struct {
	Image       string
	Description string
	Dimensions  *measure.DimensionsInput
	IsRemnant   *bool
	IsDamaged   *bool
	Color       string
	Type        string
	Location    string
	Supplier    string
	Status      string
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// trimmed strips surrounding space so stored values match trimmed query terms.
func (r Request) trimmed() Request {
	for _, f := range []*string{&r.Image, &r.Description, &r.Color, &r.Type, &r.Location, &r.Supplier, &r.Status} {
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
	case blank(r.Location):
		return errs.Invalid("Location is empty")
	}
	return measure.ValidateDimensions(r.Dimensions)
}

// Criteria are the optional search terms for List.
type Criteria struct {
	Type   string
	Color  string
	Status string
}

// Query resolves the criteria to one composite query; an unknown status fails.
func (c Criteria) Query() (filter.Query, error) {
	b := filter.New().Eq(filter.FieldType, c.Type).Eq(filter.FieldColor, c.Color)
	if !blank(c.Status) {
		st, err := ParseStatus(c.Status)
		if err != nil {
			return filter.Query{}, err
		}
		b.Eq(filter.FieldStatus, string(st))
	}
	return b.Build(), nil
}
