package samples

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Spok95/stone-inventory/internal/domain/filter"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

const selectSample = `
	SELECT id, image, color, type, quantity, supplier, created_at, modified_at
	FROM sample_slabs
`

func scanSample(row pgx.Row) (*Sample, error) {
	var s Sample
	if err := row.Scan(
		&s.ID,
		&s.Image,
		&s.Color,
		&s.Type,
		&s.Quantity,
		&s.Supplier,
		&s.CreatedAt,
		&s.ModifiedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

// Save writes the whole row; the quantity is whatever the caller computed (may be negative).
func (r *Repo) Save(ctx context.Context, s *Sample) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO sample_slabs (id, image, color, type, quantity, supplier, created_at, modified_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET
			image=EXCLUDED.image, color=EXCLUDED.color, type=EXCLUDED.type,
			quantity=EXCLUDED.quantity, supplier=EXCLUDED.supplier, modified_at=EXCLUDED.modified_at
	`, s.ID, s.Image, s.Color, s.Type, s.Quantity, s.Supplier, s.CreatedAt, s.ModifiedAt)
	return err
}

func (r *Repo) FindByID(ctx context.Context, id string) (*Sample, error) {
	s, err := scanSample(r.pool.QueryRow(ctx, selectSample+` WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return s, err
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM sample_slabs WHERE id = $1`, id)
	return err
}

func (r *Repo) Find(ctx context.Context, q filter.Query) ([]Sample, error) {
	where, args := q.SQL(0)
	rows, err := r.pool.Query(ctx, selectSample+where+` ORDER BY type, color`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Sample{}
	for rows.Next() {
		s, err := scanSample(rows)
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
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM sample_slabs `+where+`)`, args...).Scan(&ok)
	return ok, err
}
