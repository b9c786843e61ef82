package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseFloatPtr converts an optional query value to a float. An empty value
// yields nil without error.
func ParseFloatPtr(value string) (*float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return nil, fmt.Errorf("not a finite number: %q", value)
	}

	return &result, nil
}
