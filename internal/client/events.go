package client

import (
	"fmt"

	"github.com/mkureth/ring-video-downloader/pkg/models"
)

// GetCameraEvents fetches one page of the event history for a location.
// The cursor is the opaque pagination_key from a previous page and must
// be passed through unchanged; "" requests the first page. The returned
// page's meta carries the next cursor, "" when the history is exhausted.
func (c *RingClient) GetCameraEvents(locationID string, cursor string) (models.EventPage, error) {
	var page models.EventPage

	req := c.HTTP.R().SetResult(&page)

	if cursor != "" {
		req.SetQueryParam("pagination_key", cursor)
	}

	resp, err := req.Get(fmt.Sprintf("/clients_api/locations/%s/events", locationID))

	if err != nil {
		return models.EventPage{}, err
	}

	if resp.IsError() {
		return models.EventPage{}, fmt.Errorf("failed to get events for location %s: %s", locationID, resp.String())
	}

	return page, nil
}
