package slabs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Spok95/stone-inventory/internal/domain/filter"
)

// Repo is the Postgres store.
type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

const selectSlab = `
	SELECT id, image, description, dimensions, is_remnant, is_damaged,
	       color, type, location, supplier, status, created_at, modified_at
	FROM slabs
`

func scanSlab(row pgx.Row) (*Slab, error) {
	var s Slab
	var dims []byte
	if err := row.Scan(
		&s.ID,
		&s.Image,
		&s.Description,
		&dims,
		&s.IsRemnant,
		&s.IsDamaged,
		&s.Color,
		&s.Type,
		&s.Location,
		&s.Supplier,
		&s.Status,
		&s.CreatedAt,
		&s.ModifiedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(dims, &s.Dimensions); err != nil {
		return nil, fmt.Errorf("decode dimensions of slab %s: %w", s.ID, err)
	}
	return &s, nil
}

func (r *Repo) Save(ctx context.Context, s *Slab) error {
	dims, err := json.Marshal(s.Dimensions)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO slabs (id, image, description, dimensions, is_remnant, is_damaged,
		                   color, type, location, supplier, status, created_at, modified_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		ON CONFLICT (id) DO UPDATE SET
			image=EXCLUDED.image, description=EXCLUDED.description, dimensions=EXCLUDED.dimensions,
			is_remnant=EXCLUDED.is_remnant, is_damaged=EXCLUDED.is_damaged,
			color=EXCLUDED.color, type=EXCLUDED.type, location=EXCLUDED.location,
			supplier=EXCLUDED.supplier, status=EXCLUDED.status, modified_at=EXCLUDED.modified_at
	`, s.ID, s.Image, s.Description, dims, s.IsRemnant, s.IsDamaged,
		s.Color, s.Type, s.Location, s.Supplier, string(s.Status), s.CreatedAt, s.ModifiedAt)
	return err
}

func (r *Repo) FindByID(ctx context.Context, id string) (*Slab, error) {
	s, err := scanSlab(r.pool.QueryRow(ctx, selectSlab+` WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return s, err
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM slabs WHERE id = $1`, id)
	return err
}

func (r *Repo) Find(ctx context.Context, q filter.Query) ([]Slab, error) {
	where, args := q.SQL(0)
	rows, err := r.pool.Query(ctx, selectSlab+where+` ORDER BY created_at`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Slab{}
	for rows.Next() {
		s, err := scanSlab(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

func (r *Repo) Exists(ctx context.Context, q filter.Query) (bool, error) {
	where, args := q.SQL(0)
	var ok bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM slabs `+where+`)`, args...).Scan(&ok)
	return ok, err
}
