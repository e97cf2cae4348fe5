package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StatusHistory maps a status label to the RFC3339 instant the order
// first entered that status. It is stored as a JSON column; older rows
// may hold the object double-encoded as a JSON string, so Scan
// normalizes every stored shape to a plain map.
type StatusHistory map[string]string

func (h *StatusHistory) Scan(value interface{}) error {
	if value == nil {
		*h = StatusHistory{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("status history: unsupported column type %T", value)
	}

	m := map[string]string{}
	if err := json.Unmarshal(raw, &m); err == nil {
		*h = m
		return nil
	}

	// Legacy rows store the map JSON-encoded inside a JSON string.
	var inner string
	if err := json.Unmarshal(raw, &inner); err == nil {
		if err := json.Unmarshal([]byte(inner), &m); err == nil {
			*h = m
			return nil
		}
	}

	// Unparsable history starts over rather than failing the row read.
	*h = StatusHistory{}
	return nil
}

func (h StatusHistory) Value() (driver.Value, error) {
	if h == nil {
		h = StatusHistory{}
	}
	data, err := json.Marshal(h)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Touch records when a status was first entered. Revisiting a status
// keeps the original timestamp.
func (h StatusHistory) Touch(status string, at time.Time) {
	if status == "" {
		return
	}
	if _, ok := h[status]; !ok {
		h[status] = at.UTC().Format(time.RFC3339)
	}
}

// Backfill seeds an empty history with the order's initial status at
// its creation time, so orders written before history tracking still
// render a complete timeline.
func (h StatusHistory) Backfill(initialStatus string, createdAt time.Time) {
	if len(h) > 0 {
		return
	}
	if initialStatus == "" {
		initialStatus = DefaultOrderStatus
	}
	h[initialStatus] = createdAt.UTC().Format(time.RFC3339)
}
