package types

import (
	"fmt"
)

// CheckForDuplicatesAndEmptyStrings returns an error on the first empty or
// repeated entry of the input.
func CheckForDuplicatesAndEmptyStrings(input []string) error {
	encountered := make(map[string]bool, len(input))
	for i, str := range input {
		if len(str) == 0 {
			return fmt.Errorf("empty string at index %d", i)
		}
		if encountered[str] {
			return fmt.Errorf("duplicate '%s' at index %d", str, i)
		}
		encountered[str] = true
	}
	return nil
}

// ValidateUnique validates every genesis entry and rejects two entries
// sharing the same store key.
func ValidateUnique[T interface{ Validate() error }, K comparable](entries []T, key func(T) K) error {
	seen := make(map[K]struct{}, len(entries))
	for i, entry := range entries {
		if err := entry.Validate(); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		k := key(entry)
		if _, ok := seen[k]; ok {
			return fmt.Errorf("duplicate entry %v", k)
		}
		seen[k] = struct{}{}
	}
	return nil
}
