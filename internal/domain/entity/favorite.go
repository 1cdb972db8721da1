package entity

import (
	"bytes"
	"encoding/json"
	"strings"
)

// UndefinedMarker is the literal clients send for a field they never filled in
const UndefinedMarker = "undefined"

// Favorite is a saved (city, state) pair
type Favorite struct {
	City  string `json:"city"`
	State string `json:"state"`
}

// Valid reports whether both fields are present and not the undefined marker
func (f Favorite) Valid() bool {
	return IsPresent(f.City) && IsPresent(f.State)
}

// Normalized returns the favorite with its state converted to an index key
func (f Favorite) Normalized() Favorite {
	return Favorite{City: f.City, State: NormalizeStateKey(f.State)}
}

// IsPresent reports whether a user supplied field carries a value
func IsPresent(value string) bool {
	return value != "" && value != UndefinedMarker
}

// NormalizeStateKey replaces the first space of a state name with an underscore ("New York" -> "New_York")
func NormalizeStateKey(state string) string {
	return strings.Replace(state, " ", "_", 1)
}

// FavoritesIndex groups favorite cities under their normalized state key.
// States keep first-seen order and cities keep insertion order; duplicate cities are allowed.
type FavoritesIndex struct {
	states []string
	cities map[string][]string
}

func NewFavoritesIndex() *FavoritesIndex {
	return &FavoritesIndex{cities: make(map[string][]string)}
}

// BuildFavoritesIndex groups the valid entries, in order, skipping the invalid ones
func BuildFavoritesIndex(entries []Favorite) *FavoritesIndex {
	index := NewFavoritesIndex()
	for _, entry := range entries {
		index.Add(entry)
	}
	return index
}

// Add appends the city under the normalized state key. Invalid favorites are ignored and reported as false.
func (idx *FavoritesIndex) Add(favorite Favorite) bool {
	if !favorite.Valid() {
		return false
	}

	key := NormalizeStateKey(favorite.State)
	if _, ok := idx.cities[key]; !ok {
		idx.states = append(idx.states, key)
	}
	idx.cities[key] = append(idx.cities[key], favorite.City)
	return true
}

// Remove deletes every exact (city, state) match and returns how many were removed.
// A state left without cities is dropped from the index.
func (idx *FavoritesIndex) Remove(favorite Favorite) int {
	key := NormalizeStateKey(favorite.State)
	cities, ok := idx.cities[key]
	if !ok {
		return 0
	}

	kept := make([]string, 0, len(cities))
	for _, city := range cities {
		if city != favorite.City {
			kept = append(kept, city)
		}
	}
	removed := len(cities) - len(kept)

	if len(kept) == 0 {
		delete(idx.cities, key)
		for i, state := range idx.states {
			if state == key {
				idx.states = append(idx.states[:i:i], idx.states[i+1:]...)
				break
			}
		}
		return removed
	}

	idx.cities[key] = kept
	return removed
}

// Contains reports whether the (city, state) pair is present
func (idx *FavoritesIndex) Contains(favorite Favorite) bool {
	for _, city := range idx.cities[NormalizeStateKey(favorite.State)] {
		if city == favorite.City {
			return true
		}
	}
	return false
}

// States returns the state keys in first-seen order
func (idx *FavoritesIndex) States() []string {
	return append([]string(nil), idx.states...)
}

// Cities returns a copy of the cities stored under a state key
func (idx *FavoritesIndex) Cities(state string) []string {
	return append([]string(nil), idx.cities[state]...)
}

// Len returns the number of (city, state) pairs
func (idx *FavoritesIndex) Len() int {
	total := 0
	for _, cities := range idx.cities {
		total += len(cities)
	}
	return total
}

// Entries flattens the index into favorites, state by state, keeping per-state city order
func (idx *FavoritesIndex) Entries() []Favorite {
	entries := make([]Favorite, 0, idx.Len())
	for _, state := range idx.states {
		for _, city := range idx.cities[state] {
			entries = append(entries, Favorite{City: city, State: state})
		}
	}
	return entries
}

// Clone returns a deep copy
func (idx *FavoritesIndex) Clone() *FavoritesIndex {
	clone := &FavoritesIndex{
		states: idx.States(),
		cities: make(map[string][]string, len(idx.cities)),
	}
	for state, cities := range idx.cities {
		clone.cities[state] = append([]string(nil), cities...)
	}
	return clone
}

// MarshalJSON writes the index as an object of state -> cities, keys in first-seen order
func (idx *FavoritesIndex) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, state := range idx.states {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(state)
		if err != nil {
			return nil, err
		}
		cities, err := json.Marshal(idx.cities[state])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(cities)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
