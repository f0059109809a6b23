// Package filter turns optional search criteria into a single composite query.
//
// Each present criterion contributes one predicate fragment; stores render the
// composed fragments (SQL, BSON or in-memory) instead of branching per combination.
package filter

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

type Field string

const (
	FieldType     Field = "type"
	FieldColor    Field = "color"
	FieldStatus   Field = "status"
	FieldQuantity Field = "quantity"
)

// rank is the dispatch precedence: type, then color, then the record kind's own criterion.
var rank = map[Field]int{
	FieldType:     0,
	FieldColor:    1,
	FieldStatus:   2,
	FieldQuantity: 2,
}

type Op int

const (
	OpEq Op = iota
	OpGt
)

type Predicate struct {
	Field Field
	Op    Op
	Value any
}

func Eq(f Field, v string) Predicate { return Predicate{Field: f, Op: OpEq, Value: v} }

func Gt(f Field, n int) Predicate { return Predicate{Field: f, Op: OpGt, Value: n} }

type Query struct {
	preds []Predicate
}

type Builder struct {
	preds []Predicate
}

func New() *Builder { return &Builder{} }

// Eq adds an equality fragment unless v is blank.
func (b *Builder) Eq(f Field, v string) *Builder {
	v = strings.TrimSpace(v)
	if v == "" {
		return b
	}
	b.preds = append(b.preds, Eq(f, v))
	return b
}

func (b *Builder) When(cond bool, p Predicate) *Builder {
	if cond {
		b.preds = append(b.preds, p)
	}
	return b
}

func (b *Builder) Build() Query {
	preds := append([]Predicate(nil), b.preds...)
	sort.SliceStable(preds, func(i, j int) bool { return rank[preds[i].Field] < rank[preds[j].Field] })
	return Query{preds: preds}
}

func (q Query) Empty() bool { return len(q.preds) == 0 }

func (q Query) Predicates() []Predicate { return append([]Predicate(nil), q.preds...) }

// Variant names the selected combination, e.g. "type+color+status" or "all".
func (q Query) Variant() string {
	if q.Empty() {
		return "all"
	}
	return strings.Join(lo.Map(q.preds, func(p Predicate, _ int) string { return string(p.Field) }), "+")
}

// Availability builds the existence query used by availability checks.
// ok is false when neither type nor color is given; callers answer false without asking the store.
func Availability(typ, color string, available Predicate) (Query, bool) {
	b := New().Eq(FieldType, typ).Eq(FieldColor, color)
	if len(b.preds) == 0 {
		return Query{}, false
	}
	return b.When(true, available).Build(), true
}
