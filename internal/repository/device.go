package repository

import (
	"context"

	"plantmon/internal/model"
)

// DeviceUpdate carries the fields of a partial device update.
// A nil field is left untouched. A non-nil PlantID pointing at the empty
// string unlinks the device from its plant; any other value links it.
type DeviceUpdate struct {
	DeviceName *string
	PlantID    *string
}

// IsEmpty reports whether the update would touch nothing.
func (u DeviceUpdate) IsEmpty() bool {
	return u.DeviceName == nil && u.PlantID == nil
}

// DeviceRepository defines data access for devices.
type DeviceRepository interface {
	// List returns all devices.
	List(ctx context.Context) ([]model.Device, error)

	// ListAvailable returns devices that are not linked to any plant.
	ListAvailable(ctx context.Context) ([]model.Device, error)

	// FindByID returns a device by its ID.
	FindByID(ctx context.Context, id string) (*model.Device, error)

	// FindByPlantID returns the device linked to the given plant.
	FindByPlantID(ctx context.Context, plantID string) (*model.Device, error)

	// Create inserts a new device and returns the store-assigned ID.
	Create(ctx context.Context, d *model.Device) (string, error)

	// Update applies a partial update. It returns ErrNotFound when no
	// device matched the ID.
	Update(ctx context.Context, id string, upd DeviceUpdate) (*UpdateResult, error)

	// Delete removes a device by ID. It returns ErrNotFound when no device
	// matched.
	Delete(ctx context.Context, id string) (*DeleteResult, error)
}
