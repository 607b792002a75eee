package seed

import (
	"fmt"
	"strconv"
	"strings"
)

// Entry is one roster line: an externally assigned id plus a display name.
type Entry struct {
	ID   int
	Name string
}

// Parse reads a comma-separated "id:name" roster, e.g.
// "1:John Doe,2:Jane Smith". An empty value yields no entries.
func Parse(value string) ([]Entry, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	var entries []Entry
	seen := map[int]bool{}
	for _, raw := range strings.Split(value, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, name, ok := strings.Cut(raw, ":")
		if !ok {
			return nil, fmt.Errorf("invalid roster entry %q: expected id:name", raw)
		}
		parsed, err := strconv.Atoi(strings.TrimSpace(id))
		if err != nil {
			return nil, fmt.Errorf("invalid roster id %q", id)
		}
		if seen[parsed] {
			return nil, fmt.Errorf("duplicate roster id %d", parsed)
		}
		seen[parsed] = true
		entries = append(entries, Entry{ID: parsed, Name: strings.TrimSpace(name)})
	}
	return entries, nil
}

// DefaultEmployees matches the reference roster.
func DefaultEmployees() []Entry {
	return []Entry{
		{ID: 1, Name: "John Doe"},
		{ID: 2, Name: "Jane Smith"},
	}
}

func DefaultManagers() []Entry {
	return []Entry{
		{ID: 1, Name: "Manager 1"},
		{ID: 2, Name: "Manager 2"},
	}
}
