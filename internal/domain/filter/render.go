package filter

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

var columns = map[Field]string{
	FieldType:     "type",
	FieldColor:    "color",
	FieldStatus:   "status",
	FieldQuantity: "quantity",
}

func column(f Field) string {
	c, ok := columns[f]
	if !ok {
		panic(fmt.Sprintf("filter: unknown field %q", f))
	}
	return c
}

// SQL renders a WHERE clause with positional args starting at $argOffset+1.
// An empty query renders to "" and no args.
func (q Query) SQL(argOffset int) (string, []any) {
	if q.Empty() {
		return "", nil
	}
	conds := make([]string, 0, len(q.preds))
	args := make([]any, 0, len(q.preds))
	for i, p := range q.preds {
		op := "="
		if p.Op == OpGt {
			op = ">"
		}
		conds = append(conds, fmt.Sprintf("%s %s $%d", column(p.Field), op, argOffset+i+1))
		args = append(args, p.Value)
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func (q Query) BSON() bson.M {
	m := bson.M{}
	for _, p := range q.preds {
		key := column(p.Field)
		if p.Op == OpGt {
			m[key] = bson.M{"$gt": p.Value}
		} else {
			m[key] = p.Value
		}
	}
	return m
}
