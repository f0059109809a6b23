package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/Spok95/stone-inventory/internal/domain/filter"
)

type row struct {
	typ, color, status string
	qty                int
}

func (r row) FieldValue(f filter.Field) any {
	switch f {
	case filter.FieldType:
		return r.typ
	case filter.FieldColor:
		return r.color
	case filter.FieldStatus:
		return r.status
	case filter.FieldQuantity:
		return r.qty
	}
	return nil
}

func build(typ, color, status string) filter.Query {
	return filter.New().
		Eq(filter.FieldType, typ).
		Eq(filter.FieldColor, color).
		Eq(filter.FieldStatus, status).
		Build()
}

func TestVariantPerCombination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ, color, status string
		want               string
	}{
		{"Quartz", "White", "AVAILABLE", "type+color+status"},
		{"Quartz", "White", "", "type+color"},
		{"Quartz", "", "AVAILABLE", "type+status"},
		{"", "White", "AVAILABLE", "color+status"},
		{"Quartz", "", "", "type"},
		{"", "White", "", "color"},
		{"", "", "AVAILABLE", "status"},
		{"", "", "", "all"},
		{"  ", "\t", "", "all"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, build(tt.typ, tt.color, tt.status).Variant())
	}
}

func TestBuildOrdersByPrecedence(t *testing.T) {
	t.Parallel()

	q := filter.New().
		When(true, filter.Gt(filter.FieldQuantity, 0)).
		Eq(filter.FieldColor, "White").
		Eq(filter.FieldType, "Quartz").
		Build()
	assert.Equal(t, "type+color+quantity", q.Variant())
}

func TestMatch(t *testing.T) {
	t.Parallel()

	rows := []row{
		{"Quartz", "White", "AVAILABLE", 2},
		{"Quartz", "Black", "RESERVED", 0},
		{"Granite", "White", "AVAILABLE", 0},
	}
	count := func(q filter.Query) int {
		n := 0
		for _, r := range rows {
			if q.Match(r) {
				n++
			}
		}
		return n
	}

	assert.Equal(t, 3, count(build("", "", "")))
	assert.Equal(t, 2, count(build("Quartz", "", "")))
	assert.Equal(t, 1, count(build("Quartz", "White", "AVAILABLE")))
	assert.Equal(t, 0, count(build("Quartz", "White", "RESERVED")))
	assert.Equal(t, 1, count(filter.New().When(true, filter.Gt(filter.FieldQuantity, 0)).Build()))
	assert.Equal(t, 1, count(filter.New().Eq(filter.FieldColor, "White").When(true, filter.Gt(filter.FieldQuantity, 0)).Build()))
}

func TestAvailabilityShortCircuit(t *testing.T) {
	t.Parallel()

	available := filter.Eq(filter.FieldStatus, "AVAILABLE")

	_, ok := filter.Availability("", "", available)
	assert.False(t, ok)
	_, ok = filter.Availability(" ", "", available)
	assert.False(t, ok)

	q, ok := filter.Availability("Quartz", "", available)
	assert.True(t, ok)
	assert.Equal(t, "type+status", q.Variant())

	q, ok = filter.Availability("", "White", filter.Gt(filter.FieldQuantity, 0))
	assert.True(t, ok)
	assert.Equal(t, "color+quantity", q.Variant())

	q, ok = filter.Availability("Quartz", "White", available)
	assert.True(t, ok)
	assert.Equal(t, "type+color+status", q.Variant())
}

func TestSQL(t *testing.T) {
	t.Parallel()

	where, args := build("", "", "").SQL(0)
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = filter.New().
		Eq(filter.FieldType, "Quartz").
		When(true, filter.Gt(filter.FieldQuantity, 0)).
		Build().
		SQL(0)
	assert.Equal(t, "WHERE type = $1 AND quantity > $2", where)
	assert.Equal(t, []any{"Quartz", 0}, args)

	where, _ = build("Quartz", "White", "").SQL(2)
	assert.Equal(t, "WHERE type = $3 AND color = $4", where)
}

func TestBSON(t *testing.T) {
	t.Parallel()

	assert.Equal(t, bson.M{}, build("", "", "").BSON())
	assert.Equal(t,
		bson.M{"color": "White", "quantity": bson.M{"$gt": 0}},
		filter.New().Eq(filter.FieldColor, "White").When(true, filter.Gt(filter.FieldQuantity, 0)).Build().BSON(),
	)
	assert.Equal(t,
		bson.M{"type": "Quartz", "color": "White", "status": "AVAILABLE"},
		build("Quartz", "White", "AVAILABLE").BSON(),
	)
}
