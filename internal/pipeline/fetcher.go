package pipeline

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mkureth/ring-video-downloader/pkg/models"
)

// FetchAllEvents walks the paginated event history of a location and
// accumulates every page, in served order, into one sequence. The
// cursor from each page's meta is threaded unchanged into the next
// request until the service stops returning one. A page with zero
// events is fine; only a missing cursor ends the loop. Any error aborts
// the whole fetch, nothing partial is returned.
func FetchAllEvents(svc CameraService, locationID string) ([]models.Event, error) {
	var all []models.Event
	seen := make(map[string]bool)

	cursor := ""
	for {
		page, err := svc.GetCameraEvents(locationID, cursor)
		if err != nil {
			return nil, fmt.Errorf("fetching events for location %s: %w", locationID, err)
		}

		for _, ev := range page.Events {
			// Overlapping pages would otherwise duplicate events in the
			// output file; keep the first occurrence of each ding id.
			// Events without an id cannot be keyed and are always kept.
			if ev.DingIDStr != "" {
				if seen[ev.DingIDStr] {
					continue
				}
				seen[ev.DingIDStr] = true
			}
			all = append(all, ev)
		}

		logrus.WithFields(logrus.Fields{
			"location": locationID,
			"events":   len(page.Events),
		}).Debug("fetched events page")

		cursor = page.Meta.PaginationKey
		if cursor == "" {
			return all, nil
		}
	}
}
