package id

import (
	"reflect"
	"strconv"

	"github.com/google/uuid"
)

// Normalize canonicalizes an id value. Numeric-looking strings and integral
// JSON numbers become int; every other value passes through unchanged, and
// nil stays nil. Normalize never fails.
func Normalize(v any) any {
	switch i := v.(type) {
	case nil:
		return nil
	case string:
		if n, err := strconv.Atoi(i); err == nil {
			return n
		}
		return i
	case int:
		return i
	case int32:
		return int(i)
	case int64:
		return int(i)
	case float64:
		// encoding/json decodes all numbers to float64
		if i == float64(int(i)) {
			return int(i)
		}
		return i
	default:
		return v
	}
}

// Equal reports whether two id values address the same record. Values of
// non-comparable dynamic types, such as decoded JSON arrays, never match
// anything.
func Equal(a, b any) bool {
	na, nb := Normalize(a), Normalize(b)
	if na == nil || nb == nil {
		return na == nil && nb == nil
	}
	ta := reflect.TypeOf(na)
	if ta != reflect.TypeOf(nb) || !ta.Comparable() {
		return false
	}
	return na == nb
}

// Next returns a fresh numeric id: one greater than the largest numeric id
// in the given set, starting at 1. Non-numeric ids are skipped for
// generation purposes, so a set holding only string ids also yields 1.
func Next(ids []any) int {
	max := 0
	for _, v := range ids {
		if n, ok := Normalize(v).(int); ok && n > max {
			max = n
		}
	}
	return max + 1
}

// UUID generates a random UUID v4 string. Used for request correlation ids
// and available as an alternative record id strategy.
func UUID() string {
	return uuid.NewString()
}
