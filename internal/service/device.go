package service

import (
	"context"

	"plantmon/internal/model"
	"plantmon/internal/repository"
)

// DeviceUpdateInput carries a partial device update. Nil fields are left
// untouched; an empty PlantID string clears the plant link.
type DeviceUpdateInput struct {
	DeviceID   string
	DeviceName *string
	PlantID    *string
}

// DeviceService defines the use cases for managing monitoring devices.
type DeviceService interface {
	// List returns all registered devices.
	List(ctx context.Context) ([]model.Device, error)

	// ListAvailable returns devices without a plant assignment.
	ListAvailable(ctx context.Context) ([]model.Device, error)

	// Get looks a device up by device ID or, when deviceID is empty, by the
	// plant it is assigned to. At least one of the two must be given.
	Get(ctx context.Context, deviceID, plantID string) (*model.Device, error)

	// Create registers a new device. An empty plantID stores a null link so
	// the device is immediately available for assignment.
	Create(ctx context.Context, deviceName, plantID string) (*model.Device, error)

	// Update applies a partial update to the device named by in.DeviceID.
	Update(ctx context.Context, in DeviceUpdateInput) error

	// Delete removes a device by ID.
	Delete(ctx context.Context, id string) error
}

type deviceService struct {
	repo repository.DeviceRepository
}

// NewDeviceService constructs a new DeviceService.
func NewDeviceService(repo repository.DeviceRepository) DeviceService {
	return &deviceService{repo: repo}
}

func (s *deviceService) List(ctx context.Context) ([]model.Device, error) {
	return s.repo.List(ctx)
}

func (s *deviceService) ListAvailable(ctx context.Context) ([]model.Device, error) {
	return s.repo.ListAvailable(ctx)
}

func (s *deviceService) Get(ctx context.Context, deviceID, plantID string) (*model.Device, error) {
	var (
		dev *model.Device
		err error
	)
	switch {
	case deviceID != "":
		dev, err = s.repo.FindByID(ctx, deviceID)
	case plantID != "":
		dev, err = s.repo.FindByPlantID(ctx, plantID)
	default:
		return nil, ErrIDRequired
	}
	if err != nil {
		return nil, translateRepoErr(err)
	}
	return dev, nil
}

func (s *deviceService) Create(ctx context.Context, deviceName, plantID string) (*model.Device, error) {
	dev := &model.Device{DeviceName: deviceName}
	if plantID != "" {
		dev.PlantID = &plantID
	}

	id, err := s.repo.Create(ctx, dev)
	if err != nil {
		return nil, translateRepoErr(err)
	}
	dev.ID = id
	return dev, nil
}

func (s *deviceService) Update(ctx context.Context, in DeviceUpdateInput) error {
	if in.DeviceID == "" {
		return ErrIDRequired
	}
	upd := repository.DeviceUpdate{DeviceName: in.DeviceName, PlantID: in.PlantID}
	if upd.IsEmpty() {
		return ErrNoUpdateFields
	}

	if _, err := s.repo.Update(ctx, in.DeviceID, upd); err != nil {
		return translateRepoErr(err)
	}
	return nil
}

func (s *deviceService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if _, err := s.repo.Delete(ctx, id); err != nil {
		return translateRepoErr(err)
	}
	return nil
}
