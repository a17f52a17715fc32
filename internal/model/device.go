package model

// Device is a sensor device that may be attached to at most one plant.
// PlantID is nil while the device is unassigned. The `_id` JSON key is kept
// for compatibility with the existing mobile client.
type Device struct {
	ID         string  `json:"_id"`
	DeviceName string  `json:"device_name"`
	PlantID    *string `json:"plant_id"`
}
