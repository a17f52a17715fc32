package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"plantmon/internal/model"
	"plantmon/internal/repository"
)

// deviceDoc stores the plant link as a nullable ObjectID. A device that is
// not assigned to any plant has plant_id null.
type deviceDoc struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty"`
	DeviceName string              `bson:"device_name"`
	PlantID    *primitive.ObjectID `bson:"plant_id"`
}

func (d deviceDoc) toModel() model.Device {
	dev := model.Device{
		ID:         d.ID.Hex(),
		DeviceName: d.DeviceName,
	}
	if d.PlantID != nil {
		hex := d.PlantID.Hex()
		dev.PlantID = &hex
	}
	return dev
}

// DeviceMongo is a MongoDB implementation of repository.DeviceRepository.
type DeviceMongo struct {
	coll *mongo.Collection
}

// NewDeviceMongo creates a new DeviceMongo repository.
func NewDeviceMongo(db *mongo.Database) *DeviceMongo {
	return &DeviceMongo{coll: db.Collection(deviceCollection)}
}

var _ repository.DeviceRepository = (*DeviceMongo)(nil)

// List returns all registered devices.
func (r *DeviceMongo) List(ctx context.Context) ([]model.Device, error) {
	return r.find(ctx, bson.M{})
}

// ListAvailable returns devices that are not assigned to any plant. The
// filter matches both a stored null and a missing plant_id field.
func (r *DeviceMongo) ListAvailable(ctx context.Context) ([]model.Device, error) {
	return r.find(ctx, bson.M{"plant_id": nil})
}

func (r *DeviceMongo) find(ctx context.Context, filter bson.M) ([]model.Device, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var docs []deviceDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	devices := make([]model.Device, 0, len(docs))
	for _, d := range docs {
		devices = append(devices, d.toModel())
	}
	return devices, nil
}

// FindByID fetches a single device by its ID.
func (r *DeviceMongo) FindByID(ctx context.Context, id string) (*model.Device, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var doc deviceDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, translateErr(err)
	}
	dev := doc.toModel()
	return &dev, nil
}

// FindByPlantID fetches the device assigned to the given plant.
func (r *DeviceMongo) FindByPlantID(ctx context.Context, plantID string) (*model.Device, error) {
	oid, err := objectIDFromHex(plantID)
	if err != nil {
		return nil, err
	}

	var doc deviceDoc
	if err := r.coll.FindOne(ctx, bson.M{"plant_id": oid}).Decode(&doc); err != nil {
		return nil, translateErr(err)
	}
	dev := doc.toModel()
	return &dev, nil
}

// Create inserts a new device and returns the assigned ID. A nil PlantID
// is stored as null so the device shows up as available.
func (r *DeviceMongo) Create(ctx context.Context, d *model.Device) (string, error) {
	doc := deviceDoc{DeviceName: d.DeviceName}
	if d.PlantID != nil {
		oid, err := objectIDFromHex(*d.PlantID)
		if err != nil {
			return "", err
		}
		doc.PlantID = &oid
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	return insertedIDHex(res.InsertedID)
}

// Update applies the non-nil fields of upd to a device. An empty PlantID
// string clears the plant link.
func (r *DeviceMongo) Update(ctx context.Context, id string, upd repository.DeviceUpdate) (*repository.UpdateResult, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if upd.DeviceName != nil {
		set["device_name"] = *upd.DeviceName
	}
	if upd.PlantID != nil {
		if *upd.PlantID == "" {
			set["plant_id"] = nil
		} else {
			plantOID, err := objectIDFromHex(*upd.PlantID)
			if err != nil {
				return nil, err
			}
			set["plant_id"] = plantOID
		}
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, repository.ErrNotFound
	}
	return &repository.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedID:    upsertedIDHex(res.UpsertedID),
		Acknowledged:  true,
	}, nil
}

// Delete removes a device by ID.
func (r *DeviceMongo) Delete(ctx context.Context, id string) (*repository.DeleteResult, error) {
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
