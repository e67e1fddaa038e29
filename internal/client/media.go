package client

import (
	"errors"
	"fmt"
	"io"

	"github.com/mkureth/ring-video-downloader/pkg/models"
)

// GetRecordingURL resolves the short-lived download URL for an event's
// recording. With transcoded set, the service returns the processed
// variant (with timestamp overlay) instead of the raw upload.
func (c *RingClient) GetRecordingURL(dingID string, transcoded bool) (string, error) {
	var respData models.RecordingResponse

	req := c.HTTP.R().
		SetQueryParam("disable_redirect", "true").
		SetResult(&respData)

	if transcoded {
		req.SetQueryParam("transcoded", "true")
	}

	resp, err := req.Get(fmt.Sprintf("/clients_api/dings/%s/recording", dingID))

	if err != nil {
		return "", err
	}

	if resp.IsError() {
		return "", fmt.Errorf("failed to resolve recording for ding %s: %s", dingID, resp.String())
	}

	if respData.URL == "" {
		return "", fmt.Errorf("no recording url returned for ding %s", dingID)
	}

	return respData.URL, nil
}

// OpenRecording starts a streaming download of a resolved recording
// URL. The caller owns the returned body and must close it.
func (c *RingClient) OpenRecording(url string) (io.ReadCloser, error) {
	resp, err := c.HTTP.R().
		SetDoNotParseResponse(true).
		Get(url)

	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		body := resp.RawBody()
		if body != nil {
			body.Close()
		}
		return nil, fmt.Errorf("failed to download recording: %s", resp.Status())
	}

	body := resp.RawBody()
	if body == nil {
		return nil, errors.New("download response has no body")
	}

	return body, nil
}
