package samples

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Spok95/stone-inventory/internal/domain/filter"
	"github.com/Spok95/stone-inventory/internal/errs"
	"github.com/Spok95/stone-inventory/internal/observe"
)

type Store interface {
	Save(ctx context.Context, s *Sample) error
	FindByID(ctx context.Context, id string) (*Sample, error)
	Delete(ctx context.Context, id string) error
	Find(ctx context.Context, q filter.Query) ([]Sample, error)
	Exists(ctx context.Context, q filter.Query) (bool, error)
}

type Service struct {
	store     Store
	obs       observe.Observer
	underflow UnderflowPolicy
	now       func() time.Time
	newID     func() string
}

type Option func(*Service)

func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

func WithIDs(newID func() string) Option { return func(s *Service) { s.newID = newID } }

func WithUnderflow(p UnderflowPolicy) Option { return func(s *Service) { s.underflow = p } }

func NewService(store Store, obs observe.Observer, opts ...Option) *Service {
	s := &Service{store: store, obs: obs, underflow: UnderflowAllow, now: time.Now, newID: uuid.NewString}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) fail(ctx context.Context, op string, err error) error {
	s.obs.OnError(ctx, op, err)
	return err
}

func (s *Service) existsByTypeAndColor(ctx context.Context, typ, color string) (bool, error) {
	return s.store.Exists(ctx, filter.New().Eq(filter.FieldType, typ).Eq(filter.FieldColor, color).Build())
}

// Add rejects a second sample with the same type and color. A negative quantity is stored as 0.
func (s *Service) Add(ctx context.Context, req Request) (*Sample, error) {
	const op = "sample.add"
	s.obs.BeforeValidate(ctx, op, "type", req.Type, "color", req.Color)
	req = req.trimmed()
	if err := req.validateNew(); err != nil {
		return nil, s.fail(ctx, op, err)
	}

	dup, err := s.existsByTypeAndColor(ctx, req.Type, req.Color)
	if err != nil {
		return nil, s.fail(ctx, op, fmt.Errorf("check duplicate sample: %w", err))
	}
	if dup {
		return nil, s.fail(ctx, op, errs.AlreadyExists("Sample Slab", "type & color", req.Type+","+req.Color))
	}

	now := s.now()
	sample := &Sample{
		ID:         s.newID(),
		Image:      req.Image,
		Color:      req.Color,
		Type:       req.Type,
		Supplier:   req.Supplier,
		CreatedAt:  now,
		ModifiedAt: now,
	}
	if req.Quantity != nil {
		sample.Quantity = max(*req.Quantity, 0)
	}

	if err := s.store.Save(ctx, sample); err != nil {
		return nil, s.fail(ctx, op, fmt.Errorf("save sample: %w", err))
	}
	s.obs.AfterMutation(ctx, op, sample.ID, "quantity", sample.Quantity)
	return sample, nil
}

// Update applies only the supplied fields; a negative quantity is rejected.
func (s *Service) Update(ctx context.Context, id string, req Request) (*Sample, error) {
	const op = "sample.update"
	s.obs.BeforeValidate(ctx, op, "id", id)
	req = req.trimmed()
	if req.Quantity != nil && *req.Quantity < 0 {
		return nil, s.fail(ctx, op, errs.Invalid("Quantity must not be negative"))
	}

	sample, err := s.get(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}
	setIf(&sample.Image, req.Image)
	setIf(&sample.Color, req.Color)
	setIf(&sample.Type, req.Type)
	setIf(&sample.Supplier, req.Supplier)
	if req.Quantity != nil {
		sample.Quantity = *req.Quantity
	}
	sample.ModifiedAt = s.now()

	if err := s.store.Save(ctx, sample); err != nil {
		return nil, s.fail(ctx, op, fmt.Errorf("save sample %s: %w", id, err))
	}
	s.obs.AfterMutation(ctx, op, id, "quantity", sample.Quantity)
	return sample, nil
}

func setIf(dst *string, v string) {
	if !blank(v) {
		*dst = v
	}
}

func (s *Service) Delete(ctx context.Context, id string) error {
	const op = "sample.delete"
	s.obs.BeforeValidate(ctx, op, "id", id)
	if _, err := s.get(ctx, id); err != nil {
		return s.fail(ctx, op, err)
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return s.fail(ctx, op, fmt.Errorf("delete sample %s: %w", id, err))
	}
	s.obs.AfterMutation(ctx, op, id)
	return nil
}

func (s *Service) Get(ctx context.Context, id string) (*Sample, error) {
	sample, err := s.get(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "sample.get", err)
	}
	return sample, nil
}

func (s *Service) get(ctx context.Context, id string) (*Sample, error) {
	sample, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find sample %s: %w", id, err)
	}
	if sample == nil {
		return nil, errs.NotFound("Sample Slab", id)
	}
	return sample, nil
}

func (s *Service) List(ctx context.Context, c Criteria) ([]Sample, error) {
	const op = "sample.list"
	s.obs.BeforeValidate(ctx, op, "type", c.Type, "color", c.Color, "only_available", c.OnlyAvailable)
	q := c.Query()
	out, err := s.store.Find(ctx, q)
	if err != nil {
		return nil, s.fail(ctx, op, fmt.Errorf("list samples (%s): %w", q.Variant(), err))
	}
	return out, nil
}

// Increment and Decrement are read-modify-write with no concurrency control; concurrent
// calls on one sample can lose updates.
func (s *Service) Increment(ctx context.Context, id string) (int, error) {
	return s.adjust(ctx, "sample.increment", id, func(q int) (int, error) { return increment(q), nil })
}

// Decrement follows the configured UnderflowPolicy once the quantity reaches zero.
func (s *Service) Decrement(ctx context.Context, id string) (int, error) {
	return s.adjust(ctx, "sample.decrement", id, s.underflow.decrement)
}

func (s *Service) adjust(ctx context.Context, op, id string, next func(int) (int, error)) (int, error) {
	s.obs.BeforeValidate(ctx, op, "id", id)
	sample, err := s.get(ctx, id)
	if err != nil {
		return 0, s.fail(ctx, op, err)
	}
	qty, err := next(sample.Quantity)
	if err != nil {
		return sample.Quantity, s.fail(ctx, op, err)
	}
	prev := sample.Quantity
	sample.Quantity = qty
	sample.ModifiedAt = s.now()
	if err := s.store.Save(ctx, sample); err != nil {
		return prev, s.fail(ctx, op, fmt.Errorf("save sample %s: %w", id, err))
	}
	s.obs.AfterMutation(ctx, op, id, "from", prev, "to", qty)
	return qty, nil
}

// CheckAvailability reports whether any sample with quantity > 0 matches type and/or color.
// Without either it answers false and never queries the store.
func (s *Service) CheckAvailability(ctx context.Context, typ, color string) (bool, error) {
	const op = "sample.check"
	s.obs.BeforeValidate(ctx, op, "type", typ, "color", color)
	q, ok := filter.Availability(typ, color, availableFragment)
	if !ok {
		return false, nil
	}
	found, err := s.store.Exists(ctx, q)
	if err != nil {
		return false, s.fail(ctx, op, fmt.Errorf("check sample availability (%s): %w", q.Variant(), err))
	}
	return found, nil
}

