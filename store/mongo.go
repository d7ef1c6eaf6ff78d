package store

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo implements Store on a MongoDB database.
type Mongo struct {
	db *mongo.Database
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

func (s *Mongo) Insert(ctx context.Context, collection string, doc any) error {
	_, err := s.db.Collection(collection).InsertOne(ctx, doc)
	return err
}

func (s *Mongo) FindAll(ctx context.Context, collection string, filter map[string]any, limit int64, out any) error {
	if filter == nil {
		filter = map[string]any{}
	}
	opts := options.Find().
		SetLimit(limit).
		SetProjection(bson.M{"_id": 0})

	cur, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	defer cur.Close(ctx)
	return cur.All(ctx, out)
}

func (s *Mongo) UpdateOne(ctx context.Context, collection string, filter, patch map[string]any, upsert bool) (int64, error) {
	update := bson.M{"$set": patch}
	if upsert {
		update["$setOnInsert"] = bson.M{"id": uuid.NewString()}
	}
	res, err := s.db.Collection(collection).UpdateOne(ctx, filter, update, options.Update().SetUpsert(upsert))
	if err != nil {
		return 0, err
	}
	return res.MatchedCount + res.UpsertedCount, nil
}

func (s *Mongo) DeleteOne(ctx context.Context, collection string, filter map[string]any) (int64, error) {
	res, err := s.db.Collection(collection).DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
