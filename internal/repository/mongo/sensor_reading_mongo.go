package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"plantmon/internal/model"
	"plantmon/internal/repository"
)

type sensorReadingDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	PlantID      primitive.ObjectID `bson:"plant_id"`
	Timestamp    time.Time          `bson:"timestamp"`
	Temperature  float64            `bson:"temperature"`
	SoilMoisture float64            `bson:"soil_moisture"`
	LightLevel   float64            `bson:"light_level"`
	Humidity     float64            `bson:"humidity"`
}

func (d sensorReadingDoc) toModel() model.SensorReading {
	return model.SensorReading{
		ID:           d.ID.Hex(),
		PlantID:      d.PlantID.Hex(),
		Timestamp:    d.Timestamp,
		Temperature:  d.Temperature,
		SoilMoisture: d.SoilMoisture,
		LightLevel:   d.LightLevel,
		Humidity:     d.Humidity,
	}
}

// SensorReadingMongo is a MongoDB implementation of repository.SensorReadingRepository.
type SensorReadingMongo struct {
	coll *mongo.Collection
}

// NewSensorReadingMongo creates a new SensorReadingMongo repository.
func NewSensorReadingMongo(db *mongo.Database) *SensorReadingMongo {
	return &SensorReadingMongo{coll: db.Collection(sensorReadingCollection)}
}

var _ repository.SensorReadingRepository = (*SensorReadingMongo)(nil)

// ListByPlant returns all readings recorded for the given plant ID.
func (r *SensorReadingMongo) ListByPlant(ctx context.Context, plantID string) ([]model.SensorReading, error) {
	oid, err := objectIDFromHex(plantID)
	if err != nil {
		return nil, err
	}

	cur, err := r.coll.Find(ctx, bson.M{"plant_id": oid})
	if err != nil {
		return nil, err
	}
	var docs []sensorReadingDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	readings := make([]model.SensorReading, 0, len(docs))
	for _, d := range docs {
		readings = append(readings, d.toModel())
	}
	return readings, nil
}

// Create inserts a new reading and returns the assigned ID. The plant
// reference is stored as given; it is not checked against the plants
// collection.
func (r *SensorReadingMongo) Create(ctx context.Context, reading *model.SensorReading) (string, error) {
	oid, err := objectIDFromHex(reading.PlantID)
	if err != nil {
		return "", err
	}

	doc := sensorReadingDoc{
		PlantID:      oid,
		Timestamp:    reading.Timestamp,
		Temperature:  reading.Temperature,
		SoilMoisture: reading.SoilMoisture,
		LightLevel:   reading.LightLevel,
		Humidity:     reading.Humidity,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	return insertedIDHex(res.InsertedID)
}
