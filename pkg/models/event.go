package models

import "encoding/json"

// EventPage is one page of a location's camera event history.
type EventPage struct {
	Events []Event  `json:"events"`
	Meta   PageMeta `json:"meta"`
}

// PageMeta carries the opaque continuation token. An empty
// pagination_key means the history is exhausted.
type PageMeta struct {
	PaginationKey string `json:"pagination_key"`
}

// Doorbot identifies the camera that reported an event.
type Doorbot struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

// CVProperties holds the computer-vision attributes attached to an event.
type CVProperties struct {
	PersonDetected bool `json:"person_detected"`
}

// Event is a single motion/doorbell occurrence as served by the API.
// Fields the struct does not model are kept verbatim in Extra so that
// saving and reloading an event reproduces the service's document.
type Event struct {
	DingIDStr    string        `json:"ding_id_str"`
	CreatedAt    string        `json:"created_at"` // ISO 8601, service-assigned
	Kind         string        `json:"kind"`
	Doorbot      *Doorbot      `json:"doorbot"`
	CVProperties *CVProperties `json:"cv_properties"`

	Extra map[string]json.RawMessage `json:"-"`
}

// HasRecording reports whether the event carries the identifier needed
// to resolve a recording URL.
func (e Event) HasRecording() bool {
	return e.DingIDStr != ""
}

// CameraDescription returns the label of the originating camera, or ""
// when the event has no doorbot block.
func (e Event) CameraDescription() string {
	if e.Doorbot == nil {
		return ""
	}
	return e.Doorbot.Description
}

// PersonDetected reports the person-detection flag, false when the
// event has no cv_properties block.
func (e Event) PersonDetected() bool {
	return e.CVProperties != nil && e.CVProperties.PersonDetected
}

func (e *Event) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*e = Event{}
	for key, val := range raw {
		var err error
		switch key {
		case "ding_id_str":
			err = json.Unmarshal(val, &e.DingIDStr)
		case "created_at":
			err = json.Unmarshal(val, &e.CreatedAt)
		case "kind":
			err = json.Unmarshal(val, &e.Kind)
		case "doorbot":
			err = json.Unmarshal(val, &e.Doorbot)
		case "cv_properties":
			err = json.Unmarshal(val, &e.CVProperties)
		default:
			if e.Extra == nil {
				e.Extra = make(map[string]json.RawMessage)
			}
			e.Extra[key] = val
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (e Event) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(e.Extra)+5)
	for key, val := range e.Extra {
		out[key] = val
	}

	set := func(key string, v interface{}) error {
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		out[key] = raw
		return nil
	}

	// created_at is always emitted; the optional fields only when set,
	// so an event missing them round-trips without inventing blocks.
	if err := set("created_at", e.CreatedAt); err != nil {
		return nil, err
	}
	if e.DingIDStr != "" {
		if err := set("ding_id_str", e.DingIDStr); err != nil {
			return nil, err
		}
	}
	if e.Kind != "" {
		if err := set("kind", e.Kind); err != nil {
			return nil, err
		}
	}
	if e.Doorbot != nil {
		if err := set("doorbot", e.Doorbot); err != nil {
			return nil, err
		}
	}
	if e.CVProperties != nil {
		if err := set("cv_properties", e.CVProperties); err != nil {
			return nil, err
		}
	}

	return json.Marshal(out)
}
