package model

// Plant represents a monitored plant.
// This is a pure domain model with no database-specific dependencies or tags;
// the ID is the opaque string form of the store identifier and can be used
// across layers (HTTP, service, storage) without coupling to persistence.
type Plant struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Location    string `json:"location"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}
