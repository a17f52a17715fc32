package model

import "time"

// SensorReading is one measurement sample reported for a plant.
// Readings are immutable once created; the timestamp is assigned by the
// server at creation time. PlantID is a plain reference, nothing checks
// that the plant still exists.
type SensorReading struct {
	ID           string    `json:"id"`
	PlantID      string    `json:"plant_id"`
	Timestamp    time.Time `json:"timestamp"`
	Temperature  float64   `json:"temperature"`
	SoilMoisture float64   `json:"soil_moisture"`
	LightLevel   float64   `json:"light_level"`
	Humidity     float64   `json:"humidity"`
}
