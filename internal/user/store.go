package user

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("user not found")

// Store is the persistence surface the user service depends on.
type Store interface {
	FindByUID(ctx context.Context, uid string) (User, error)
	Insert(ctx context.Context, u User) error
	Apply(ctx context.Context, uid string, update Update) (User, error)
	AdjustTripsPlanned(ctx context.Context, uid string, delta int) error
}

type mongoStore struct {
	col *mongo.Collection
}

func NewStore(database *mongo.Database) Store {
	return &mongoStore{col: database.Collection("users")}
}

func (s *mongoStore) FindByUID(ctx context.Context, uid string) (User, error) {
	var u User
	err := s.col.FindOne(ctx, bson.M{"firebaseUid": uid}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *mongoStore) Insert(ctx context.Context, u User) error {
	_, err := s.col.InsertOne(ctx, u)
	return err
}

func (s *mongoStore) Apply(ctx context.Context, uid string, update Update) (User, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.DisplayName != nil {
		set["displayName"] = *update.DisplayName
	}
	if update.PhotoURL != nil {
		set["photoURL"] = *update.PhotoURL
	}
	if update.Bio != nil {
		set["bio"] = *update.Bio
	}
	if update.Location != nil {
		set["location"] = *update.Location
	}
	if update.TravelPreferences != nil {
		set["travelPreferences"] = *update.TravelPreferences
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var u User
	err := s.col.FindOneAndUpdate(ctx, bson.M{"firebaseUid": uid}, bson.M{"$set": set}, opts).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *mongoStore) AdjustTripsPlanned(ctx context.Context, uid string, delta int) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"firebaseUid": uid},
		bson.M{"$inc": bson.M{"stats.tripsPlanned": delta}},
	)
	return err
}
