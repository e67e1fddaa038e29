package models

import "encoding/json"

// LocationListResponse represents the outer wrapper of GET /devices/v1/locations
type LocationListResponse struct {
	UserLocations []Location `json:"user_locations"`
}

// DeviceListResponse represents the wrapper of GET /clients_api/ring_devices.
// Cameras are spread over several arrays depending on device kind.
type DeviceListResponse struct {
	Doorbots           []Camera `json:"doorbots"`
	AuthorizedDoorbots []Camera `json:"authorized_doorbots"`
	StickupCams        []Camera `json:"stickup_cams"`
}

// RecordingResponse captures the resolved clip URL returned when
// disable_redirect is set on the recording endpoint.
type RecordingResponse struct {
	URL string `json:"url"`
}

// Location is one account location with its cameras attached, in the
// order the service returned them.
type Location struct {
	ID      string   `json:"location_id"`
	Name    string   `json:"name"`
	Cameras []Camera `json:"cameras"`
}

// Camera is a single camera device (doorbell or stickup cam).
type Camera struct {
	ID          int64       `json:"id"`
	Description string      `json:"description"`
	Kind        string      `json:"kind"`
	LocationID  string      `json:"location_id"`
	BatteryLife json.Number `json:"battery_life"` // served as string or number depending on model
}
