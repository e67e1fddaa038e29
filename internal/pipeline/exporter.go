package pipeline

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/mkureth/ring-video-downloader/pkg/models"
)

// ExportReport summarizes one videos-mode run.
type ExportReport struct {
	Saved   int // clips written to disk
	Skipped int // events without a recording id
	Failed  int // per-event resolution or download failures
}

// ExportVideos resolves and downloads the recording of each event into
// dir, in sequence order, one at a time. Per-event failures are logged
// and counted, never fatal to the batch; only an unusable target
// directory aborts the run.
func ExportVideos(svc CameraService, events []models.Event, dir string) (ExportReport, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return ExportReport{}, &WriteError{Path: dir, Err: err}
	}

	var report ExportReport
	for _, ev := range events {
		if !ev.HasRecording() {
			report.Skipped++
			logrus.WithField("created_at", ev.CreatedAt).Warn("event has no ding id, skipping")
			continue
		}

		url, err := svc.GetRecordingURL(ev.DingIDStr, true)
		if err != nil {
			report.Failed++
			logrus.WithError(err).WithField("ding_id", ev.DingIDStr).Error("could not resolve recording url")
			continue
		}

		path := filepath.Join(dir, VideoFileName(ev))
		if err := downloadTo(svc, url, path); err != nil {
			report.Failed++
			logrus.WithError(err).WithFields(logrus.Fields{
				"ding_id": ev.DingIDStr,
				"path":    path,
			}).Error("could not download recording")
			continue
		}

		report.Saved++
		logrus.WithFields(logrus.Fields{
			"ding_id": ev.DingIDStr,
			"path":    path,
		}).Info("video saved")
	}

	return report, nil
}

func downloadTo(svc CameraService, url, path string) error {
	body, err := svc.OpenRecording(url)
	if err != nil {
		return err
	}
	defer body.Close()

	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		os.Remove(path) // don't leave a truncated clip behind
		return err
	}
	return f.Close()
}
