package view

import (
	"fmt"
	"slices"
	"strings"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Sort is an explicit ordering request. A zero Sort keeps source order.
type Sort struct {
	Key       string `json:"key,omitempty"`
	Direction string `json:"direction,omitempty"`
}

func (s Sort) IsZero() bool {
	return s.Key == ""
}

// NormalizeSort validates key against the schema and defaults the direction.
func NormalizeSort[T any](schema Schema[T], key, direction string) (Sort, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return Sort{}, nil
	}
	if _, ok := schema.SortKey(key); !ok {
		return Sort{}, fmt.Errorf("unknown sort key %q", key)
	}

	direction = strings.ToLower(strings.TrimSpace(direction))
	switch direction {
	case "":
		direction = SortAsc
	case SortAsc, SortDesc:
	default:
		return Sort{}, fmt.Errorf("unknown sort direction %q", direction)
	}
	return Sort{Key: key, Direction: direction}, nil
}

// Ordered returns a stably sorted copy of items. Items the sort key ranks
// equal keep their source order in both directions.
func Ordered[T any](items []T, schema Schema[T], s Sort) []T {
	out := slices.Clone(items)
	if s.IsZero() {
		return out
	}
	key, ok := schema.SortKey(s.Key)
	if !ok {
		return out
	}

	desc := s.Direction == SortDesc
	slices.SortStableFunc(out, func(a, b T) int {
		switch {
		case key.Less(a, b):
			if desc {
				return 1
			}
			return -1
		case key.Less(b, a):
			if desc {
				return -1
			}
			return 1
		default:
			return 0
		}
	})
	return out
}
