package view

import (
	"maps"
	"strings"
)

// AllValue is the select option that lifts a constraint.
const AllValue = "all"

// Criteria is the active search text plus one value per filter key.
type Criteria struct {
	Search  string            `json:"search"`
	Filters map[string]string `json:"filters"`
}

func NewCriteria() Criteria {
	return Criteria{Filters: make(map[string]string)}
}

// Clone returns a copy that shares nothing with c.
func (c Criteria) Clone() Criteria {
	out := Criteria{Search: c.Search, Filters: make(map[string]string, len(c.Filters))}
	maps.Copy(out.Filters, c.Filters)
	return out
}

// With returns a copy with key set to value. Unconstrained values remove the key.
func (c Criteria) With(key, value string) Criteria {
	out := c.Clone()
	if Unconstrained(value) {
		delete(out.Filters, key)
		return out
	}
	out.Filters[key] = strings.TrimSpace(value)
	return out
}

// Active returns the value for key if it constrains the view.
func (c Criteria) Active(key string) (string, bool) {
	value, ok := c.Filters[key]
	if !ok || Unconstrained(value) {
		return "", false
	}
	return value, true
}

// IsEmpty reports whether no search text and no filter is active.
func (c Criteria) IsEmpty() bool {
	if strings.TrimSpace(c.Search) != "" {
		return false
	}
	for _, value := range c.Filters {
		if !Unconstrained(value) {
			return false
		}
	}
	return true
}

// Equal compares the effective constraints of two criteria.
func (c Criteria) Equal(other Criteria) bool {
	if strings.TrimSpace(c.Search) != strings.TrimSpace(other.Search) {
		return false
	}
	for key := range c.Filters {
		a, _ := c.Active(key)
		b, _ := other.Active(key)
		if a != b {
			return false
		}
	}
	for key := range other.Filters {
		a, _ := c.Active(key)
		b, _ := other.Active(key)
		if a != b {
			return false
		}
	}
	return true
}

// Unconstrained reports whether a criterion value imposes no constraint.
func Unconstrained(value string) bool {
	value = strings.TrimSpace(value)
	return value == "" || strings.EqualFold(value, AllValue)
}
