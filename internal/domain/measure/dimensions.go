package measure

import "github.com/Spok95/stone-inventory/internal/errs"

// DimensionsInput is the request-side aggregate; nil members mean "not supplied".
type DimensionsInput struct {
	Length    *Input `json:"length"`
	Width     *Input `json:"width"`
	Thickness *Input `json:"thickness"`
}

type Dimensions struct {
	Length    Measurement `json:"length" bson:"length"`
	Width     Measurement `json:"width" bson:"width"`
	Thickness Measurement `json:"thickness" bson:"thickness"`
}

// ValidateDimensions requires all three measurements. Mixed units are accepted, but the
// encoding New keeps must be non-negative with a positive total.
func ValidateDimensions(d *DimensionsInput) error {
	if d == nil {
		return errs.Invalid("Dimensions is null")
	}
	for _, m := range []*Input{d.Length, d.Width, d.Thickness} {
		if err := validateMeasurement(m); err != nil {
			return err
		}
	}
	return nil
}

func validateMeasurement(m *Input) error {
	if m == nil {
		return errs.Invalid("Dimensions contains an empty measurement")
	}
	kept := m.Measurement()
	f := kept.Fields()
	if f.Feet < 0 || f.Inches < 0 || f.Centimeters < 0 || kept.TotalCentimeters() <= 0 {
		return errs.Invalid("All measurements must contain a value greater than zero")
	}
	return nil
}

// Build assumes ValidateDimensions passed.
func (d DimensionsInput) Build() Dimensions {
	return Dimensions{
		Length:    d.Length.Measurement(),
		Width:     d.Width.Measurement(),
		Thickness: d.Thickness.Measurement(),
	}
}

// AreaSqFt is the face area used for per-square-foot pricing.
func (d Dimensions) AreaSqFt() float64 {
	return d.Length.TotalFeet() * d.Width.TotalFeet()
}
