package theme

import (
	"encoding/json"
	"fmt"
)

// Canonical serialises a value as compact JSON with every object's keys
// sorted. Two semantically equal documents canonicalise to identical bytes,
// which is what the drift check compares.
func Canonical(v any) ([]byte, error) {
	// Round-trip through the generic form so struct field order stops
	// mattering: encoding/json always sorts map keys.
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal value: %w", err)
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("failed to normalise value: %w", err)
	}

	out, err := json.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal canonical form: %w", err)
	}
	return out, nil
}

// FirstDiff returns the offset of the first differing byte between a and b,
// or -1 if they are identical. When one input is a prefix of the other the
// offset is the shorter length.
func FirstDiff(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}

	if len(a) != len(b) {
		return n
	}
	return -1
}
