package view

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Range is an inclusive numeric bucket. Without a max it is open-ended.
type Range struct {
	Min    float64
	Max    float64
	HasMax bool
}

// ParseRange accepts "min-max", "min+" and a bare "min", which means at least min.
func ParseRange(raw string) (Range, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Range{}, errors.New("empty range")
	}

	if strings.HasSuffix(value, "+") {
		lo, err := parseBound(strings.TrimSuffix(value, "+"))
		if err != nil {
			return Range{}, err
		}
		return Range{Min: lo}, nil
	}

	lower, upper, found := strings.Cut(value, "-")
	if !found {
		lo, err := parseBound(value)
		if err != nil {
			return Range{}, err
		}
		return Range{Min: lo}, nil
	}

	lo, err := parseBound(lower)
	if err != nil {
		return Range{}, err
	}
	hi, err := parseBound(upper)
	if err != nil {
		return Range{}, err
	}
	if hi < lo {
		return Range{}, fmt.Errorf("range %q has max below min", raw)
	}

	return Range{Min: lo, Max: hi, HasMax: true}, nil
}

func parseBound(raw string) (float64, error) {
	bound, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid range bound %q", raw)
	}
	if bound < 0 {
		return 0, fmt.Errorf("range bound %q must not be negative", raw)
	}
	return bound, nil
}

func (r Range) Contains(value float64) bool {
	if value < r.Min {
		return false
	}
	return !r.HasMax || value <= r.Max
}

func (r Range) String() string {
	lo := strconv.FormatFloat(r.Min, 'f', -1, 64)
	if !r.HasMax {
		return lo + "+"
	}
	return lo + "-" + strconv.FormatFloat(r.Max, 'f', -1, 64)
}
