package utils

import "strings"

func If[T any](condition bool, trueValue, falseValue T) T {
	if condition {
		return trueValue
	}
	return falseValue
}

// FirstValue returns the first value that is not blank, or the last
// value when all of them are.
func FirstValue(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return values[len(values)-1]
}

func StringOrDefault(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
