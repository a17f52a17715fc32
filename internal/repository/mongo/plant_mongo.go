package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"plantmon/internal/model"
	"plantmon/internal/repository"
)

// plantDoc is the stored shape of a plant. Field names match the documents
// written by earlier versions of the system.
type plantDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Type        string             `bson:"type"`
	Location    string             `bson:"location"`
	Description string             `bson:"description"`
	ImageURL    string             `bson:"imageUrl"`
}

func (d plantDoc) toModel() model.Plant {
	return model.Plant{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Type:        d.Type,
		Location:    d.Location,
		Description: d.Description,
		ImageURL:    d.ImageURL,
	}
}

// PlantMongo is a MongoDB implementation of repository.PlantRepository.
type PlantMongo struct {
	coll *mongo.Collection
}

// NewPlantMongo creates a new PlantMongo repository.
func NewPlantMongo(db *mongo.Database) *PlantMongo {
	return &PlantMongo{coll: db.Collection(plantCollection)}
}

var _ repository.PlantRepository = (*PlantMongo)(nil)

// List returns all plants.
func (r *PlantMongo) List(ctx context.Context) ([]model.Plant, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var docs []plantDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	plants := make([]model.Plant, 0, len(docs))
	for _, d := range docs {
		plants = append(plants, d.toModel())
	}
	return plants, nil
}

// FindByID fetches a single plant by its ID.
func (r *PlantMongo) FindByID(ctx context.Context, id string) (*model.Plant, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var doc plantDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, translateErr(err)
	}
	p := doc.toModel()
	return &p, nil
}

// Create inserts a new plant document and returns the assigned ID.
// The image URL starts empty and is only set through SetImageURL.
func (r *PlantMongo) Create(ctx context.Context, p *model.Plant) (string, error) {
	doc := plantDoc{
		Name:        p.Name,
		Type:        p.Type,
		Location:    p.Location,
		Description: p.Description,
		ImageURL:    p.ImageURL,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	return insertedIDHex(res.InsertedID)
}

// Update replaces the mutable fields of a plant.
func (r *PlantMongo) Update(ctx context.Context, id string, p *model.Plant) (*repository.UpdateResult, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{
		"name":        p.Name,
		"type":        p.Type,
		"location":    p.Location,
		"description": p.Description,
		"imageUrl":    p.ImageURL,
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	return &repository.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedID:    upsertedIDHex(res.UpsertedID),
		Acknowledged:  true,
	}, nil
}

// SetImageURL updates only the image URL of a plant.
func (r *PlantMongo) SetImageURL(ctx context.Context, id, imageURL string) (*repository.UpdateResult, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"imageUrl": imageURL}})
	if err != nil {
		return nil, err
	}
	return &repository.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedID:    upsertedIDHex(res.UpsertedID),
		Acknowledged:  true,
	}, nil
}

// Delete removes a plant by ID.
func (r *PlantMongo) Delete(ctx context.Context, id string) (*repository.DeleteResult, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, err
	}
	if res.DeletedCount == 0 {
		return nil, repository.ErrNotFound
	}
	return &repository.DeleteResult{DeletedCount: res.DeletedCount, Acknowledged: true}, nil
}
