package trip

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("trip not found")

// Store is the persistence surface the trip service depends on. Every
// lookup and mutation carries the owner uid alongside the record id.
type Store interface {
	Insert(ctx context.Context, t Trip) error
	ListByOwner(ctx context.Context, uid string) ([]Trip, error)
	FindOne(ctx context.Context, id, uid string) (Trip, error)
	Replace(ctx context.Context, t Trip) error
	Delete(ctx context.Context, id, uid string) error
}

type mongoStore struct {
	col *mongo.Collection
}

func NewStore(database *mongo.Database) Store {
	return &mongoStore{col: database.Collection("trips")}
}

func (s *mongoStore) Insert(ctx context.Context, t Trip) error {
	_, err := s.col.InsertOne(ctx, t)
	return err
}

func (s *mongoStore) ListByOwner(ctx context.Context, uid string) ([]Trip, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.col.Find(ctx, bson.M{"userId": uid}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	trips := []Trip{}
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

func (s *mongoStore) FindOne(ctx context.Context, id, uid string) (Trip, error) {
	var t Trip
	err := s.col.FindOne(ctx, bson.M{"_id": id, "userId": uid}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Trip{}, ErrNotFound
	}
	if err != nil {
		return Trip{}, err
	}
	return t, nil
}

func (s *mongoStore) Replace(ctx context.Context, t Trip) error {
	res, err := s.col.ReplaceOne(ctx, bson.M{"_id": t.ID, "userId": t.UserID}, t)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoStore) Delete(ctx context.Context, id, uid string) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id, "userId": uid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
