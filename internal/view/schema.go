package view

import (
	"strings"

	"churchconnect/internal/models"
)

type FieldKind int

const (
	ExactField FieldKind = iota
	RangeField
)

// Field declares one filter key of a screen. Exact fields read Text, range
// fields read Number.
type Field[T any] struct {
	Key      string
	Kind     FieldKind
	Text     func(T) string
	Number   func(T) float64
	FoldCase bool
}

// SortKey declares an explicit ordering a caller may request.
type SortKey[T any] struct {
	Key  string
	Less func(a, b T) bool
}

// Schema describes how one entity type is searched, filtered and sorted.
type Schema[T any] struct {
	Search []func(T) string
	Fields []Field[T]
	Sorts  []SortKey[T]
}

// Predicate reports whether an entity survives the compiled criteria.
type Predicate[T any] func(T) bool

func (s Schema[T]) Field(key string) (Field[T], bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field[T]{}, false
}

func (s Schema[T]) SortKey(key string) (SortKey[T], bool) {
	for _, k := range s.Sorts {
		if k.Key == key {
			return k, true
		}
	}
	return SortKey[T]{}, false
}

// FilterKeys lists the keys in declaration order.
func (s Schema[T]) FilterKeys() []string {
	keys := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		keys = append(keys, f.Key)
	}
	return keys
}

// MsgUnknownFilter is the field message for a key the schema does not filter on.
const MsgUnknownFilter = "is not a filter on this screen"

// ValidateFilter rejects unknown keys and malformed range values.
func (s Schema[T]) ValidateFilter(key, value string) error {
	field, ok := s.Field(key)
	if !ok {
		return models.NewFieldError(key, MsgUnknownFilter)
	}
	if field.Kind == RangeField && !Unconstrained(value) {
		if _, err := ParseRange(value); err != nil {
			return models.NewFieldError(key, "must look like min-max or min+")
		}
	}
	return nil
}

type exactCheck[T any] struct {
	value string
	field Field[T]
}

type rangeCheck[T any] struct {
	bucket Range
	field  Field[T]
}

// Compile turns criteria into a predicate. Checks run in a fixed order:
// search text first, then exact fields, then ranges.
func (s Schema[T]) Compile(c Criteria) (Predicate[T], error) {
	needle := strings.ToLower(strings.TrimSpace(c.Search))

	var exact []exactCheck[T]
	var ranges []rangeCheck[T]
	for _, field := range s.Fields {
		value, ok := c.Active(field.Key)
		if !ok {
			continue
		}
		switch field.Kind {
		case RangeField:
			bucket, err := ParseRange(value)
			if err != nil {
				return nil, models.NewFieldError(field.Key, "must look like min-max or min+")
			}
			ranges = append(ranges, rangeCheck[T]{bucket: bucket, field: field})
		default:
			exact = append(exact, exactCheck[T]{value: value, field: field})
		}
	}
	for key, value := range c.Filters {
		if _, known := s.Field(key); !known && !Unconstrained(value) {
			return nil, models.NewFieldError(key, "is not a filter on this screen")
		}
	}

	return func(item T) bool {
		if needle != "" && !s.matchesSearch(item, needle) {
			return false
		}
		for _, check := range exact {
			got := check.field.Text(item)
			if check.field.FoldCase {
				if !strings.EqualFold(got, check.value) {
					return false
				}
			} else if got != check.value {
				return false
			}
		}
		for _, check := range ranges {
			if !check.bucket.Contains(check.field.Number(item)) {
				return false
			}
		}
		return true
	}, nil
}

func (s Schema[T]) matchesSearch(item T, needle string) bool {
	for _, text := range s.Search {
		if strings.Contains(strings.ToLower(text(item)), needle) {
			return true
		}
	}
	return false
}

// Filter keeps the items match accepts, preserving source order.
func Filter[T any](items []T, match Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if match(item) {
			out = append(out, item)
		}
	}
	return out
}

// Apply compiles c and filters items in one step.
func Apply[T any](items []T, schema Schema[T], c Criteria) ([]T, error) {
	match, err := schema.Compile(c)
	if err != nil {
		return nil, err
	}
	return Filter(items, match), nil
}
