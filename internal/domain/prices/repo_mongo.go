package prices

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Spok95/stone-inventory/internal/domain/filter"
)

const Collection = "slab_prices"

type priceDoc struct {
	ID         string    `bson:"_id"`
	Color      string    `bson:"color"`
	Type       string    `bson:"type"`
	Amount     string    `bson:"amount"`
	Currency   string    `bson:"currency"`
	CreatedAt  time.Time `bson:"creationDate"`
	ModifiedAt time.Time `bson:"modificationDate"`
}

func toDoc(p *Price) priceDoc {
	return priceDoc{
		ID:         p.ID,
		Color:      p.Color,
		Type:       p.Type,
		Amount:     p.Term.AmountText(),
		Currency:   p.Term.Currency().Code,
		CreatedAt:  p.CreatedAt,
		ModifiedAt: p.ModifiedAt,
	}
}

func (d priceDoc) price() (*Price, error) {
	term, err := toTerm(d.Amount, d.Currency)
	if err != nil {
		return nil, err
	}
	return &Price{
		ID:         d.ID,
		Color:      d.Color,
		Type:       d.Type,
		Term:       term,
		CreatedAt:  d.CreatedAt,
		ModifiedAt: d.ModifiedAt,
	}, nil
}

type MongoRepo struct {
	coll *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{coll: db.Collection(Collection)}
}

func (r *MongoRepo) Save(ctx context.Context, p *Price) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, toDoc(p), options.Replace().SetUpsert(true))
	return err
}

func (r *MongoRepo) FindByID(ctx context.Context, id string) (*Price, error) {
	var d priceDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d.price()
}

func (r *MongoRepo) Delete(ctx context.Context, id string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *MongoRepo) Find(ctx context.Context, q filter.Query) ([]Price, error) {
	sort := bson.D{{Key: "creationDate", Value: 1}, {Key: "_id", Value: 1}}
	cur, err := r.coll.Find(ctx, q.BSON(), options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	var docs []priceDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]Price, 0, len(docs))
	for _, d := range docs {
		p, err := d.price()
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

// EnsureIndexes is not unique on (type, color); duplicates are accepted on creation.
func (r *MongoRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "type", Value: 1}, {Key: "color", Value: 1}},
	})
	return err
}
