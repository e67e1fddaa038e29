package pipeline

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mkureth/ring-video-downloader/pkg/models"
)

// CameraService is the capability surface the pipeline consumes from
// the ring client. Tests inject a fake.
type CameraService interface {
	GetLocations() ([]models.Location, error)
	GetCameraEvents(locationID string, cursor string) (models.EventPage, error)
	GetRecordingURL(dingID string, transcoded bool) (string, error)
	OpenRecording(url string) (io.ReadCloser, error)
}

// EventsFileName is the fixed name of the events document inside DataDir.
const EventsFileName = "events.json"

// Config wires a Driver. Everything is passed in explicitly, nothing is
// read from process-wide state, so tests can swap in a fake service and
// temp directories.
type Config struct {
	Service       CameraService
	DataDir       string // events.json lives here
	VideoDir      string // exported clips land here
	LocationIndex int
	Date          time.Time // zero disables date filtering
}

// Driver runs one events-mode or videos-mode pass. It keeps no state
// between runs beyond the files it reads and writes.
type Driver struct {
	cfg Config
}

func NewDriver(cfg Config) *Driver {
	return &Driver{cfg: cfg}
}

// EventsFilePath is where RunEvents persists and RunVideos loads the
// event sequence.
func (d *Driver) EventsFilePath() string {
	return filepath.Join(d.cfg.DataDir, EventsFileName)
}

// RunEvents fetches the selected location's full event history, applies
// the date filter, and replaces the events file with the result. The
// count of persisted events is returned.
func (d *Driver) RunEvents() (int, error) {
	loc, err := d.selectLocation()
	if err != nil {
		return 0, err
	}

	events, err := FetchAllEvents(d.cfg.Service, loc.ID)
	if err != nil {
		return 0, err
	}
	logrus.WithField("total", len(events)).Info("event history fetched")

	filtered := FilterByDate(events, d.cfg.Date)

	if err := SaveEvents(d.EventsFilePath(), filtered); err != nil {
		return 0, err
	}
	return len(filtered), nil
}

// RunVideos loads the events file written by a previous events run,
// applies the date filter, and exports one clip per event. A missing or
// unparsable events file is fatal; per-event failures are not.
func (d *Driver) RunVideos() (ExportReport, error) {
	if _, err := d.selectLocation(); err != nil {
		return ExportReport{}, err
	}

	events, err := LoadEvents(d.EventsFilePath())
	if err != nil {
		return ExportReport{}, err
	}
	logrus.WithField("total", len(events)).Info("events loaded")

	filtered := FilterByDate(events, d.cfg.Date)

	return ExportVideos(d.cfg.Service, filtered, d.cfg.VideoDir)
}

func (d *Driver) selectLocation() (models.Location, error) {
	locations, err := d.cfg.Service.GetLocations()
	if err != nil {
		return models.Location{}, fmt.Errorf("fetching locations: %w", err)
	}

	if len(locations) == 0 {
		return models.Location{}, &ConfigError{Msg: "no locations found; check the account configuration"}
	}

	idx := d.cfg.LocationIndex
	if idx < 0 || idx >= len(locations) {
		return models.Location{}, configErrorf("invalid location index %d: available locations are 0 to %d", idx, len(locations)-1)
	}

	loc := locations[idx]
	if len(loc.Cameras) == 0 {
		return models.Location{}, configErrorf("no cameras found for location %s", loc.Name)
	}

	logrus.WithFields(logrus.Fields{
		"location": loc.Name,
		"cameras":  len(loc.Cameras),
	}).Info("using location")

	return loc, nil
}
