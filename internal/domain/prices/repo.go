package prices

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Spok95/stone-inventory/internal/domain/filter"
	"github.com/Spok95/stone-inventory/internal/domain/money"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

const selectPrice = `
	SELECT id, color, type, amount_per_sqft::text, currency, created_at, modified_at
	FROM slab_prices
`

// toTerm rebuilds a stored term. A stored amount always fits its currency.
func toTerm(amount, code string) (money.PriceTerm, error) {
	cur, err := money.ParseCurrency(code)
	if err != nil {
		return money.PriceTerm{}, err
	}
	d, err := money.ParseAmount(amount)
	if err != nil {
		return money.PriceTerm{}, err
	}
	return money.NewPriceTerm(d, cur)
}

func scanPrice(row pgx.Row) (*Price, error) {
	var p Price
	var amount, code string
	if err := row.Scan(&p.ID, &p.Color, &p.Type, &amount, &code, &p.CreatedAt, &p.ModifiedAt); err != nil {
		return nil, err
	}
	term, err := toTerm(amount, code)
	if err != nil {
		return nil, fmt.Errorf("decode price %s: %w", p.ID, err)
	}
	p.Term = term
	return &p, nil
}

func (r *Repo) Save(ctx context.Context, p *Price) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO slab_prices (id, color, type, amount_per_sqft, currency, created_at, modified_at)
		VALUES ($1,$2,$3,$4::text::numeric,$5,$6,$7)
		ON CONFLICT (id) DO UPDATE SET
			color=EXCLUDED.color, type=EXCLUDED.type,
			amount_per_sqft=EXCLUDED.amount_per_sqft, currency=EXCLUDED.currency,
			modified_at=EXCLUDED.modified_at
	`, p.ID, p.Color, p.Type, p.Term.AmountText(), p.Term.Currency().Code, p.CreatedAt, p.ModifiedAt)
	return err
}

func (r *Repo) FindByID(ctx context.Context, id string) (*Price, error) {
	p, err := scanPrice(r.pool.QueryRow(ctx, selectPrice+` WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM slab_prices WHERE id = $1`, id)
	return err
}

func (r *Repo) Find(ctx context.Context, q filter.Query) ([]Price, error) {
	where, args := q.SQL(0)
	rows, err := r.pool.Query(ctx, selectPrice+where+` ORDER BY created_at, id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Price{}
	for rows.Next() {
		p, err := scanPrice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}
