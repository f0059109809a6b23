package prices

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Spok95/stone-inventory/internal/domain/filter"
	"github.com/Spok95/stone-inventory/internal/domain/money"
	"github.com/Spok95/stone-inventory/internal/errs"
	"github.com/Spok95/stone-inventory/internal/observe"
)

type Store interface {
	Save(ctx context.Context, p *Price) error
	FindByID(ctx context.Context, id string) (*Price, error)
	Delete(ctx context.Context, id string) error
	Find(ctx context.Context, q filter.Query) ([]Price, error)
}

type Service struct {
	store    Store
	obs      observe.Observer
	currency money.Currency
	now      func() time.Time
	newID    func() string
}

type Option func(*Service)

func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

func WithIDs(newID func() string) Option { return func(s *Service) { s.newID = newID } }

// NewService prices everything in cur.
func NewService(store Store, obs observe.Observer, cur money.Currency, opts ...Option) *Service {
	s := &Service{store: store, obs: obs, currency: cur, now: time.Now, newID: uuid.NewString}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) fail(ctx context.Context, op string, err error) error {
	s.obs.OnError(ctx, op, err)
	return err
}

func (s *Service) term(sqft string) (money.PriceTerm, error) {
	amount, err := money.ParseAmount(sqft)
	if err != nil {
		return money.PriceTerm{}, err
	}
	return money.NewPriceTerm(amount, s.currency)
}

// Add does not check for an existing price with the same type and color.
func (s *Service) Add(ctx context.Context, req Request) (*Price, error) {
	const op = "price.add"
	s.obs.BeforeValidate(ctx, op, "type", req.Type, "color", req.Color, "sqft_price", req.SqftPrice)
	req = req.trimmed()
	if err := req.validateNew(); err != nil {
		return nil, s.fail(ctx, op, err)
	}
	term, err := s.term(req.SqftPrice)
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}

	now := s.now()
	p := &Price{
		ID:         s.newID(),
		Type:       req.Type,
		Color:      req.Color,
		Term:       term,
		CreatedAt:  now,
		ModifiedAt: now,
	}
	if err := s.store.Save(ctx, p); err != nil {
		return nil, s.fail(ctx, op, fmt.Errorf("save price: %w", err))
	}
	s.obs.AfterMutation(ctx, op, p.ID, "price", p.Term.String())
	return p, nil
}

func (s *Service) Update(ctx context.Context, id string, req Request) (*Price, error) {
	const op = "price.update"
	s.obs.BeforeValidate(ctx, op, "id", id)
	req = req.trimmed()

	var amount *money.PriceTerm
	if !blank(req.SqftPrice) {
		term, err := s.term(req.SqftPrice)
		if err != nil {
			return nil, s.fail(ctx, op, err)
		}
		amount = &term
	}

	p, err := s.get(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}
	if !blank(req.Color) {
		p.Color = req.Color
	}
	if !blank(req.Type) {
		p.Type = req.Type
	}
	if amount != nil {
		if err := p.Term.Update(amount.Amount(), amount.Currency()); err != nil {
			return nil, s.fail(ctx, op, err)
		}
	}
	p.ModifiedAt = s.now()

	if err := s.store.Save(ctx, p); err != nil {
		return nil, s.fail(ctx, op, fmt.Errorf("save price %s: %w", id, err))
	}
	s.obs.AfterMutation(ctx, op, id, "price", p.Term.String())
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	const op = "price.delete"
	s.obs.BeforeValidate(ctx, op, "id", id)
	if _, err := s.get(ctx, id); err != nil {
		return s.fail(ctx, op, err)
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return s.fail(ctx, op, fmt.Errorf("delete price %s: %w", id, err))
	}
	s.obs.AfterMutation(ctx, op, id)
	return nil
}

func (s *Service) Get(ctx context.Context, id string) (*Price, error) {
	p, err := s.get(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "price.get", err)
	}
	return p, nil
}

func (s *Service) get(ctx context.Context, id string) (*Price, error) {
	p, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find price %s: %w", id, err)
	}
	if p == nil {
		return nil, errs.NotFound("SlabPrice", id)
	}
	return p, nil
}

// Search needs both type and color. With duplicates the oldest price wins.
func (s *Service) Search(ctx context.Context, typ, color string) (*Price, error) {
	const op = "price.search"
	s.obs.BeforeValidate(ctx, op, "type", typ, "color", color)
	if blank(typ) || blank(color) {
		return nil, s.fail(ctx, op, errs.Invalid("Type and color must not be null or empty"))
	}
	p, err := s.findOne(ctx, typ, color)
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}
	if p == nil {
		return nil, s.fail(ctx, op, errs.NotFoundBy("SlabPrice", "type and color", typ+"/"+color))
	}
	return p, nil
}

func (s *Service) findOne(ctx context.Context, typ, color string) (*Price, error) {
	found, err := s.store.Find(ctx, byTypeAndColor(typ, color))
	if err != nil {
		return nil, fmt.Errorf("find price %s/%s: %w", typ, color, err)
	}
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

func (s *Service) List(ctx context.Context) ([]Price, error) {
	out, err := s.store.Find(ctx, filter.Query{})
	if err != nil {
		return nil, s.fail(ctx, "price.list", fmt.Errorf("list prices: %w", err))
	}
	return out, nil
}
