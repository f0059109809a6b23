package prices

import (
	"context"
	"fmt"

	"github.com/Spok95/stone-inventory/internal/domain/money"
	"github.com/Spok95/stone-inventory/internal/errs"
)

// ImportRow is one line of a price sheet.
type ImportRow struct {
	Line      int
	Type      string
	Color     string
	SqftPrice string
}

type ImportResult struct {
	Created int
	Updated int
}

// Import upserts by (type, color). Every row is validated before the first write.
func (s *Service) Import(ctx context.Context, rows []ImportRow) (ImportResult, error) {
	const op = "price.import"
	s.obs.BeforeValidate(ctx, op, "rows", len(rows))

	reqs := make([]Request, len(rows))
	terms := make([]money.PriceTerm, len(rows))
	for i, r := range rows {
		req := Request{Type: r.Type, Color: r.Color, SqftPrice: r.SqftPrice}.trimmed()
		if err := req.validateNew(); err != nil {
			return ImportResult{}, s.fail(ctx, op, errs.Invalid("line %d: %s", r.Line, err))
		}
		term, err := s.term(req.SqftPrice)
		if err != nil {
			return ImportResult{}, s.fail(ctx, op, errs.Invalid("line %d: %s", r.Line, err))
		}
		reqs[i], terms[i] = req, term
	}

	var res ImportResult
	for i, r := range reqs {
		p, err := s.findOne(ctx, r.Type, r.Color)
		if err != nil {
			return res, s.fail(ctx, op, err)
		}
		now := s.now()
		if p == nil {
			p = &Price{ID: s.newID(), Type: r.Type, Color: r.Color, CreatedAt: now}
			res.Created++
		} else {
			res.Updated++
		}
		p.Term = terms[i]
		p.ModifiedAt = now
		if err := s.store.Save(ctx, p); err != nil {
			return res, s.fail(ctx, op, fmt.Errorf("save price %s/%s: %w", r.Type, r.Color, err))
		}
		s.obs.AfterMutation(ctx, op, p.ID, "price", p.Term.String())
	}
	return res, nil
}
