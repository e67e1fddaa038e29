package pipeline

import (
	"strings"
	"time"

	"github.com/mkureth/ring-video-downloader/pkg/models"
)

// stampLayout is the file-system-safe rendering of an event's creation
// time: colons become hyphens, the zone marker is dropped. Always UTC,
// so names do not depend on where the tool runs.
const stampLayout = "2006-01-02_15-04-05"

// VideoFileName derives the deterministic clip name for an event:
// UTC timestamp, slugified camera label, and a -person suffix when the
// event's person-detection flag is set. Two events reducing to the same
// stamp and label collide and the later download overwrites; callers
// needing uniqueness must extend the key themselves.
func VideoFileName(e models.Event) string {
	name := timeStamp(e.CreatedAt)

	if slug := Slugify(e.CameraDescription()); slug != "" {
		name += "-" + slug
	}
	if e.PersonDetected() {
		name += "-person"
	}
	return name + ".mp4"
}

func timeStamp(createdAt string) string {
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		// Unparsable timestamp: sanitize the raw string the same way so
		// the name is still deterministic and file-system safe.
		s := strings.ReplaceAll(createdAt, ":", "-")
		s = strings.ReplaceAll(s, "T", "_")
		return strings.TrimSuffix(s, "Z")
	}
	return t.UTC().Format(stampLayout)
}

// Slugify lowercases a label and collapses every run of
// non-alphanumeric characters into a single hyphen, trimming hyphens at
// both ends. "Front Door!" becomes "front-door".
func Slugify(s string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(s) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pending = true
			continue
		}
		if pending && b.Len() > 0 {
			b.WriteByte('-')
		}
		pending = false
		b.WriteRune(r)
	}
	return b.String()
}
