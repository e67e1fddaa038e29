package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mkureth/ring-video-downloader/pkg/models"
)

// SaveEvents writes the ordered sequence as a pretty-printed JSON array
// at path, creating missing parent directories. The file is replaced
// wholesale; there is no merging with a previous run.
func SaveEvents(path string, events []models.Event) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &WriteError{Path: dir, Err: err}
		}
	}

	if events == nil {
		// an empty run writes [], not null
		events = []models.Event{}
	}

	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// LoadEvents reads the sequence back. A missing file is a
// NotFoundError, unparsable content a ParseError.
func LoadEvents(path string) ([]models.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("reading events file %s: %w", path, err)
	}

	var events []models.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return events, nil
}
