package measure_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Spok95/stone-inventory/internal/domain/measure"
	"github.com/Spok95/stone-inventory/internal/errs"
)

func validDims() *measure.DimensionsInput {
	return &measure.DimensionsInput{
		Length:    &measure.Input{Feet: 10},
		Width:     &measure.Input{Feet: 5, Inches: 6},
		Thickness: &measure.Input{Centimeters: 3},
	}
}

func TestValidateDimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(d *measure.DimensionsInput) *measure.DimensionsInput
		ok     bool
	}{
		{"valid", func(d *measure.DimensionsInput) *measure.DimensionsInput { return d }, true},
		{"nil aggregate", func(*measure.DimensionsInput) *measure.DimensionsInput { return nil }, false},
		{"missing length", func(d *measure.DimensionsInput) *measure.DimensionsInput { d.Length = nil; return d }, false},
		{"missing width", func(d *measure.DimensionsInput) *measure.DimensionsInput { d.Width = nil; return d }, false},
		{"missing thickness", func(d *measure.DimensionsInput) *measure.DimensionsInput { d.Thickness = nil; return d }, false},
		{"all zero", func(d *measure.DimensionsInput) *measure.DimensionsInput { d.Width = &measure.Input{}; return d }, false},
		{"all negative", func(d *measure.DimensionsInput) *measure.DimensionsInput {
			d.Thickness = &measure.Input{Feet: -1, Inches: -2, Centimeters: -3}
			return d
		}, false},
		{"negative feet beats positive centimeters", func(d *measure.DimensionsInput) *measure.DimensionsInput {
			d.Length = &measure.Input{Feet: -5, Centimeters: 30}
			return d
		}, false},
		{"negative inches inside imperial", func(d *measure.DimensionsInput) *measure.DimensionsInput {
			d.Width = &measure.Input{Feet: 5, Inches: -2}
			return d
		}, false},
		{"ignored negative centimeters", func(d *measure.DimensionsInput) *measure.DimensionsInput {
			d.Length = &measure.Input{Feet: 1, Centimeters: -5}
			return d
		}, true},
		{"metric only", func(d *measure.DimensionsInput) *measure.DimensionsInput {
			d.Width = &measure.Input{Centimeters: 150}
			return d
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := measure.ValidateDimensions(tt.mutate(validDims()))
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, errs.ErrInvalidInput), "got %v", err)
			}
		})
	}
}

func TestBuildAndArea(t *testing.T) {
	t.Parallel()

	dims := validDims().Build()
	assert.Equal(t, measure.UnitImperial, dims.Length.Unit())
	assert.Equal(t, measure.UnitMetric, dims.Thickness.Unit())
	assert.InDelta(t, 55.0, dims.AreaSqFt(), 1e-9)
}

func TestValidatedDimensionsArePositive(t *testing.T) {
	t.Parallel()

	in := &measure.DimensionsInput{
		Length:    &measure.Input{Feet: -5, Centimeters: 30},
		Width:     &measure.Input{Feet: 8},
		Thickness: &measure.Input{Centimeters: 3},
	}
	assert.Error(t, measure.ValidateDimensions(in))

	in.Length = &measure.Input{Centimeters: 30}
	assert.NoError(t, measure.ValidateDimensions(in))
	dims := in.Build()
	assert.Greater(t, dims.Length.TotalCentimeters(), 0.0)
	assert.Greater(t, dims.AreaSqFt(), 0.0)
}
