package client

import (
	"fmt"

	"github.com/mkureth/ring-video-downloader/pkg/models"
)

// GetLocations fetches the account's locations with their cameras
// attached. The service serves locations and devices from separate
// endpoints, so the camera lists are grouped here by location id.
// Ordering is preserved exactly as served on both levels.
func (c *RingClient) GetLocations() ([]models.Location, error) {
	var locData models.LocationListResponse

	resp, err := c.HTTP.R().
		SetResult(&locData).
		Get("/devices/v1/locations")

	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, fmt.Errorf("failed to get locations: %s", resp.String())
	}

	var devData models.DeviceListResponse

	resp, err = c.HTTP.R().
		SetResult(&devData).
		Get("/clients_api/ring_devices")

	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, fmt.Errorf("failed to get devices: %s", resp.String())
	}

	var cameras []models.Camera
	cameras = append(cameras, devData.Doorbots...)
	cameras = append(cameras, devData.AuthorizedDoorbots...)
	cameras = append(cameras, devData.StickupCams...)

	locations := locData.UserLocations
	for i := range locations {
		for _, cam := range cameras {
			if cam.LocationID == locations[i].ID {
				locations[i].Cameras = append(locations[i].Cameras, cam)
			}
		}
	}

	return locations, nil
}
