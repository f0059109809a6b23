package filter

// Record exposes stored field values for in-process evaluation.
type Record interface {
	FieldValue(f Field) any
}

func (q Query) Match(r Record) bool {
	for _, p := range q.preds {
		if !p.match(r.FieldValue(p.Field)) {
			return false
		}
	}
	return true
}

func (p Predicate) match(v any) bool {
	switch p.Op {
	case OpEq:
		s, ok := v.(string)
		return ok && s == p.Value
	case OpGt:
		n, ok := v.(int)
		want, _ := p.Value.(int)
		return ok && n > want
	default:
		return false
	}
}
