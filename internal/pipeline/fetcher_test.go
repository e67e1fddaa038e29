package pipeline

import (
	"errors"
	"testing"

	"github.com/mkureth/ring-video-downloader/pkg/models"
)

func TestFetchAllEventsAccumulatesPages(t *testing.T) {
	svc := &fakeService{
		pages: []models.EventPage{
			page("p2", testEvent("1", "2024-05-01T10:00:00Z", "Front", false), testEvent("2", "2024-05-01T11:00:00Z", "Front", false)),
			page("p3", testEvent("3", "2024-05-01T12:00:00Z", "Front", false), testEvent("4", "2024-05-01T13:00:00Z", "Front", false)),
			page("", testEvent("5", "2024-05-01T14:00:00Z", "Front", false), testEvent("6", "2024-05-01T15:00:00Z", "Front", false)),
		},
	}

	events, err := FetchAllEvents(svc, "loc1")
	if err != nil {
		t.Fatalf("FetchAllEvents failed: %v", err)
	}

	if len(events) != 6 {
		t.Fatalf("Expected 6 events, got %d", len(events))
	}
	for i, want := range []string{"1", "2", "3", "4", "5", "6"} {
		if events[i].DingIDStr != want {
			t.Errorf("Event %d: expected ding id %s, got %s", i, want, events[i].DingIDStr)
		}
	}

	wantCursors := []string{"", "p2", "p3"}
	if len(svc.cursors) != len(wantCursors) {
		t.Fatalf("Expected %d page calls, got %d", len(wantCursors), len(svc.cursors))
	}
	for i, want := range wantCursors {
		if svc.cursors[i] != want {
			t.Errorf("Call %d: expected cursor %q, got %q", i, want, svc.cursors[i])
		}
	}
}

func TestFetchAllEventsEmptyPageContinues(t *testing.T) {
	svc := &fakeService{
		pages: []models.EventPage{
			page("p2", testEvent("1", "2024-05-01T10:00:00Z", "Front", false)),
			page("p3"), // zero events but more pages
			page("", testEvent("2", "2024-05-01T12:00:00Z", "Front", false)),
		},
	}

	events, err := FetchAllEvents(svc, "loc1")
	if err != nil {
		t.Fatalf("FetchAllEvents failed: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("Expected 2 events, got %d", len(events))
	}
	if len(svc.cursors) != 3 {
		t.Errorf("Expected 3 page calls, got %d", len(svc.cursors))
	}
}

func TestFetchAllEventsDeduplicatesByDingID(t *testing.T) {
	svc := &fakeService{
		pages: []models.EventPage{
			page("p2", testEvent("1", "2024-05-01T10:00:00Z", "Front", false), testEvent("2", "2024-05-01T11:00:00Z", "Front", false)),
			// page overlap: "2" again, plus two id-less events that must both survive
			page("", testEvent("2", "2024-05-01T11:00:00Z", "Front", false), testEvent("", "2024-05-01T12:00:00Z", "Front", false), testEvent("", "2024-05-01T13:00:00Z", "Front", false)),
		},
	}

	events, err := FetchAllEvents(svc, "loc1")
	if err != nil {
		t.Fatalf("FetchAllEvents failed: %v", err)
	}

	if len(events) != 4 {
		t.Fatalf("Expected 4 events after de-dup, got %d", len(events))
	}
	if events[0].DingIDStr != "1" || events[1].DingIDStr != "2" {
		t.Errorf("De-dup changed ordering: got %s, %s", events[0].DingIDStr, events[1].DingIDStr)
	}
	if events[2].DingIDStr != "" || events[3].DingIDStr != "" {
		t.Errorf("Id-less events were dropped by de-dup")
	}
}

func TestFetchAllEventsAbortsOnError(t *testing.T) {
	svc := &fakeService{
		pages: []models.EventPage{
			page("p2", testEvent("1", "2024-05-01T10:00:00Z", "Front", false)),
		},
		pageErr: map[int]error{1: errors.New("service unavailable")},
	}

	events, err := FetchAllEvents(svc, "loc1")
	if err == nil {
		t.Fatal("Expected error when a page fetch fails")
	}
	if events != nil {
		t.Errorf("Expected no partial result, got %d events", len(events))
	}
}
