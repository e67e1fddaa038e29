package pipeline

import (
	"errors"
	"io"
	"strings"

	"github.com/mkureth/ring-video-downloader/pkg/models"
)

// fakeService scripts the pipeline's view of the camera service.
type fakeService struct {
	locations []models.Location
	locErr    error

	pages   []models.EventPage
	pageErr map[int]error // error injected at the nth page call
	cursors []string      // cursor received on each page call

	recordingURLs map[string]string // ding id -> url, missing id errors
	recordings    map[string]string // url -> body
	streamErr     bool              // make every stream fail mid-read
}

func (f *fakeService) GetLocations() ([]models.Location, error) {
	return f.locations, f.locErr
}

func (f *fakeService) GetCameraEvents(locationID string, cursor string) (models.EventPage, error) {
	call := len(f.cursors)
	f.cursors = append(f.cursors, cursor)

	if err, ok := f.pageErr[call]; ok {
		return models.EventPage{}, err
	}
	if call >= len(f.pages) {
		return models.EventPage{}, errors.New("no more scripted pages")
	}
	return f.pages[call], nil
}

func (f *fakeService) GetRecordingURL(dingID string, transcoded bool) (string, error) {
	url, ok := f.recordingURLs[dingID]
	if !ok {
		return "", errors.New("recording not available for ding " + dingID)
	}
	return url, nil
}

func (f *fakeService) OpenRecording(url string) (io.ReadCloser, error) {
	body, ok := f.recordings[url]
	if !ok {
		return nil, errors.New("unknown recording url " + url)
	}
	if f.streamErr {
		return io.NopCloser(&brokenReader{}), nil
	}
	return io.NopCloser(strings.NewReader(body)), nil
}

// brokenReader fails after the first byte, like a dropped connection.
type brokenReader struct {
	sent bool
}

func (r *brokenReader) Read(p []byte) (int, error) {
	if !r.sent && len(p) > 0 {
		p[0] = 'x'
		r.sent = true
		return 1, nil
	}
	return 0, errors.New("connection reset")
}

func testEvent(id, createdAt, camera string, person bool) models.Event {
	e := models.Event{
		DingIDStr: id,
		CreatedAt: createdAt,
		Kind:      "motion",
	}
	if camera != "" {
		e.Doorbot = &models.Doorbot{ID: 1, Description: camera}
	}
	if person {
		e.CVProperties = &models.CVProperties{PersonDetected: true}
	}
	return e
}

func page(next string, events ...models.Event) models.EventPage {
	return models.EventPage{
		Events: events,
		Meta:   models.PageMeta{PaginationKey: next},
	}
}
