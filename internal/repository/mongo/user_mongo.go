package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"plantmon/internal/model"
	"plantmon/internal/repository"
)

type userDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Password string             `bson:"password"`
	Roles    []string           `bson:"role"`
	Token    string             `bson:"token"`
}

func (d userDoc) toModel() model.User {
	return model.User{
		ID:       d.ID.Hex(),
		Username: d.Username,
		Password: d.Password,
		Roles:    d.Roles,
		Token:    d.Token,
	}
}

// UserMongo is a MongoDB implementation of repository.UserRepository.
type UserMongo struct {
	coll *mongo.Collection
}

// NewUserMongo creates a new UserMongo repository.
func NewUserMongo(db *mongo.Database) *UserMongo {
	return &UserMongo{coll: db.Collection(userCollection)}
}

var _ repository.UserRepository = (*UserMongo)(nil)

// FindByUsername fetches an API user by username.
func (r *UserMongo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&doc); err != nil {
		return nil, translateErr(err)
	}
	u := doc.toModel()
	return &u, nil
}

// UpdateToken stores the latest issued token on the user document.
func (r *UserMongo) UpdateToken(ctx context.Context, username, token string) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"username": username}, bson.M{"$set": bson.M{"token": token}})
	return err
}
