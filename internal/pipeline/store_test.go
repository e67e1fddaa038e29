package pipeline

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mkureth/ring-video-downloader/pkg/models"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	events := []models.Event{
		testEvent("1", "2024-05-01T10:00:00Z", "Front Door", true),
		testEvent("", "2024-05-01T11:00:00Z", "Back Yard", false),
	}
	// Passthrough field the struct does not model.
	events[0].Extra = map[string]json.RawMessage{
		"answered": json.RawMessage(`false`),
	}

	path := filepath.Join(t.TempDir(), "data", "events.json")

	if err := SaveEvents(path, events); err != nil {
		t.Fatalf("SaveEvents failed: %v", err)
	}

	got, err := LoadEvents(path)
	if err != nil {
		t.Fatalf("LoadEvents failed: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(got))
	}
	if got[0].DingIDStr != "1" || got[1].DingIDStr != "" {
		t.Errorf("Ding ids did not survive the round trip")
	}
	if got[0].CameraDescription() != "Front Door" {
		t.Errorf("Expected camera 'Front Door', got %q", got[0].CameraDescription())
	}
	if !got[0].PersonDetected() || got[1].PersonDetected() {
		t.Errorf("Person flags did not survive the round trip")
	}
	if string(got[0].Extra["answered"]) != "false" {
		t.Errorf("Passthrough field lost: %v", got[0].Extra)
	}
}

func TestSaveEventsPrettyPrints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")

	if err := SaveEvents(path, []models.Event{testEvent("1", "2024-05-01T10:00:00Z", "Front", false)}); err != nil {
		t.Fatalf("SaveEvents failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved file: %v", err)
	}
	if !strings.Contains(string(data), "\n  ") {
		t.Error("Expected indented JSON output")
	}
}

func TestLoadEventsMissingFile(t *testing.T) {
	_, err := LoadEvents(filepath.Join(t.TempDir(), "events.json"))

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
}

func TestLoadEventsMalformedContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	_, err := LoadEvents(path)

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Expected ParseError, got %v", err)
	}
}

func TestSaveEventsUnwritableDestination(t *testing.T) {
	// A file where a directory component should be.
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "data")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	err := SaveEvents(filepath.Join(blocker, "events.json"), nil)

	var writeErr *WriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("Expected WriteError, got %v", err)
	}
}
