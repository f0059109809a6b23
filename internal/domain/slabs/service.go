package slabs

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Spok95/stone-inventory/internal/domain/filter"
	"github.com/Spok95/stone-inventory/internal/domain/measure"
	"github.com/Spok95/stone-inventory/internal/errs"
	"github.com/Spok95/stone-inventory/internal/observe"
)

// Store is the persistence collaborator. FindByID returns (nil, nil) on a miss;
// an empty query in Find lists everything.
type Store interface {
	Save(ctx context.Context, s *Slab) error
	FindByID(ctx context.Context, id string) (*Slab, error)
	Delete(ctx context.Context, id string) error
	Find(ctx context.Context, q filter.Query) ([]Slab, error)
	Exists(ctx context.Context, q filter.Query) (bool, error)
}

type Service struct {
	store Store
	obs   observe.Observer
	now   func() time.Time
	newID func() string
}

type Option func(*Service)

func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

func WithIDs(newID func() string) Option { return func(s *Service) { s.newID = newID } }

func NewService(store Store, obs observe.Observer, opts ...Option) *Service {
	s := &Service{store: store, obs: obs, now: time.Now, newID: uuid.NewString}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) fail(ctx context.Context, op string, err error) error {
	s.obs.OnError(ctx, op, err)
	return err
}

// Add stores a new slab. The status is always AVAILABLE, whatever the request says.
func (s *Service) Add(ctx context.Context, req Request) (*Slab, error) {
	const op = "slab.add"
	s.obs.BeforeValidate(ctx, op, "type", req.Type, "color", req.Color)
	req = req.trimmed()
	if err := req.validateNew(); err != nil {
		return nil, s.fail(ctx, op, err)
	}

	now := s.now()
	slab := &Slab{
		ID:          s.newID(),
		Image:       req.Image,
		Description: req.Description,
		Dimensions:  req.Dimensions.Build(),
		Color:       req.Color,
		Type:        req.Type,
		Location:    req.Location,
		Supplier:    req.Supplier,
		Status:      StatusAvailable,
		CreatedAt:   now,
		ModifiedAt:  now,
	}
	if req.IsRemnant != nil {
		slab.IsRemnant = *req.IsRemnant
	}
	if req.IsDamaged != nil {
		slab.IsDamaged = *req.IsDamaged
	}

	if err := s.store.Save(ctx, slab); err != nil {
		return nil, s.fail(ctx, op, fmt.Errorf("save slab: %w", err))
	}
	s.obs.AfterMutation(ctx, op, slab.ID, "status", slab.Status)
	return slab, nil
}

// Update applies only the supplied fields. Supplied dimensions and status are validated
// before the stored slab is touched.
func (s *Service) Update(ctx context.Context, id string, req Request) (*Slab, error) {
	const op = "slab.update"
	s.obs.BeforeValidate(ctx, op, "id", id)
	req = req.trimmed()

	if req.Dimensions != nil {
		if err := measure.ValidateDimensions(req.Dimensions); err != nil {
			return nil, s.fail(ctx, op, err)
		}
	}
	var status Status
	if !blank(req.Status) {
		st, err := ParseStatus(req.Status)
		if err != nil {
			return nil, s.fail(ctx, op, err)
		}
		status = st
	}

	slab, err := s.get(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}

	setIf(&slab.Image, req.Image)
	setIf(&slab.Description, req.Description)
	setIf(&slab.Color, req.Color)
	setIf(&slab.Type, req.Type)
	setIf(&slab.Location, req.Location)
	setIf(&slab.Supplier, req.Supplier)
	if req.Dimensions != nil {
		slab.Dimensions = req.Dimensions.Build()
	}
	if req.IsRemnant != nil {
		slab.IsRemnant = *req.IsRemnant
	}
	if req.IsDamaged != nil {
		slab.IsDamaged = *req.IsDamaged
	}
	if status != "" {
		next, err := Transition(slab.Status, status)
		if err != nil {
			return nil, s.fail(ctx, op, err)
		}
		slab.Status = next
	}
	slab.ModifiedAt = s.now()

	if err := s.store.Save(ctx, slab); err != nil {
		return nil, s.fail(ctx, op, fmt.Errorf("save slab %s: %w", id, err))
	}
	s.obs.AfterMutation(ctx, op, slab.ID, "status", slab.Status)
	return slab, nil
}

func setIf(dst *string, v string) {
	if !blank(v) {
		*dst = v
	}
}

func (s *Service) Delete(ctx context.Context, id string) error {
	const op = "slab.delete"
	s.obs.BeforeValidate(ctx, op, "id", id)
	if _, err := s.get(ctx, id); err != nil {
		return s.fail(ctx, op, err)
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return s.fail(ctx, op, fmt.Errorf("delete slab %s: %w", id, err))
	}
	s.obs.AfterMutation(ctx, op, id)
	return nil
}

func (s *Service) Get(ctx context.Context, id string) (*Slab, error) {
	slab, err := s.get(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "slab.get", err)
	}
	return slab, nil
}

func (s *Service) get(ctx context.Context, id string) (*Slab, error) {
	slab, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find slab %s: %w", id, err)
	}
	if slab == nil {
		return nil, errs.NotFound("Slab", id)
	}
	return slab, nil
}

func (s *Service) List(ctx context.Context, c Criteria) ([]Slab, error) {
	const op = "slab.list"
	s.obs.BeforeValidate(ctx, op, "type", c.Type, "color", c.Color, "status", c.Status)
	q, err := c.Query()
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}
	out, err := s.store.Find(ctx, q)
	if err != nil {
		return nil, s.fail(ctx, op, fmt.Errorf("list slabs (%s): %w", q.Variant(), err))
	}
	return out, nil
}

// Reserve moves the slab to RESERVED from any state.
func (s *Service) Reserve(ctx context.Context, id string) error {
	const op = "slab.reserve"
	s.obs.BeforeValidate(ctx, op, "id", id)
	slab, err := s.get(ctx, id)
	if err != nil {
		return s.fail(ctx, op, err)
	}
	prev := slab.Status
	if slab.Status, err = Transition(slab.Status, StatusReserved); err != nil {
		return s.fail(ctx, op, err)
	}
	slab.ModifiedAt = s.now()
	if err := s.store.Save(ctx, slab); err != nil {
		return s.fail(ctx, op, fmt.Errorf("save slab %s: %w", id, err))
	}
	s.obs.AfterMutation(ctx, op, id, "from", prev, "to", slab.Status)
	return nil
}

// CheckAvailability reports whether any AVAILABLE slab matches type and/or color.
// Without either it answers false and never queries the store.
func (s *Service) CheckAvailability(ctx context.Context, typ, color string) (bool, error) {
	const op = "slab.check"
	s.obs.BeforeValidate(ctx, op, "type", typ, "color", color)
	q, ok := filter.Availability(typ, color, filter.Eq(filter.FieldStatus, string(StatusAvailable)))
	if !ok {
		return false, nil
	}
	found, err := s.store.Exists(ctx, q)
	if err != nil {
		return false, s.fail(ctx, op, fmt.Errorf("check slab availability (%s): %w", q.Variant(), err))
	}
	return found, nil
}
