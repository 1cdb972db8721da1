package entity

import (
	"encoding/json"
	"fmt"
)

// HistoryEntry is a (city, region) pair recorded after a successful lookup.
// It is serialized as a two element array: ["Boise", "Idaho"].
type HistoryEntry struct {
	City   string
	Region string
}

func (h HistoryEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{h.City, h.Region})
}

func (h *HistoryEntry) UnmarshalJSON(data []byte) error {
	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("history entry must have 2 elements, got %d", len(pair))
	}
	h.City, h.Region = pair[0], pair[1]
	return nil
}
