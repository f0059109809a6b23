package samples

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Spok95/stone-inventory/internal/domain/filter"
)

const Collection = "sample_slabs"

type MongoRepo struct {
	coll *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{coll: db.Collection(Collection)}
}

func (r *MongoRepo) Save(ctx context.Context, s *Sample) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": s.ID}, s, options.Replace().SetUpsert(true))
	return err
}

func (r *MongoRepo) FindByID(ctx context.Context, id string) (*Sample, error) {
	var s Sample
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *MongoRepo) Delete(ctx context.Context, id string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *MongoRepo) Find(ctx context.Context, q filter.Query) ([]Sample, error) {
	sort := bson.D{{Key: "type", Value: 1}, {Key: "color", Value: 1}}
	cur, err := r.coll.Find(ctx, q.BSON(), options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	out := []Sample{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoRepo) Exists(ctx context.Context, q filter.Query) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, q.BSON(), options.Count().SetLimit(1))
	return n > 0, err
}

func (r *MongoRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "type", Value: 1}, {Key: "color", Value: 1}},
	})
	return err
}
