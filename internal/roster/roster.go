// Package roster holds the league's fixed player table.
package roster

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

//go:embed roster.json
var defaultRoster []byte

type Player struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Roster is an ordered list of league players. Statistics are reported in
// this order.
type Roster []Player

// Default returns the built-in league roster.
func Default() Roster {
	r, err := Parse(defaultRoster)
	if err != nil {
		panic(fmt.Sprintf("embedded roster is invalid: %v", err))
	}
	return r
}

// Load reads a roster from a JSON file shaped like [{"id":1,"name":"Matt"}].
func Load(path string) (Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster %s: %w", path, err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("roster %s: %w", path, err)
	}
	return r, nil
}

func Parse(data []byte) (Roster, error) {
	var r Roster
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decoding roster: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks the roster is non-empty with unique ids and non-blank names.
func (r Roster) Validate() error {
	if len(r) == 0 {
		return fmt.Errorf("roster is empty")
	}
	seen := make(map[int]bool, len(r))
	for i, p := range r {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("roster entry %d (id %d) has no name", i, p.ID)
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate roster id %d", p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}
