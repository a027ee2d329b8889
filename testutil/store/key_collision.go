package store

import (
	"bytes"
	"sort"
	"testing"

	"cosmossdk.io/collections"
)

// CheckKeyCollisions fails the test if two store prefixes are equal or one
// is a prefix of another.
func CheckKeyCollisions(t *testing.T, keys map[string]collections.Prefix) {
	t.Helper()

	names := make([]string, 0, len(keys))
	for name, key := range keys {
		if len(key.Bytes()) == 0 {
			t.Fatalf("key %s has empty prefix", name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	hasCollision := false
	for i, name1 := range names {
		for _, name2 := range names[i+1:] {
			key1, key2 := keys[name1].Bytes(), keys[name2].Bytes()
			switch {
			case bytes.Equal(key1, key2):
				hasCollision = true
				t.Errorf("KEY COLLISION: Key 0x%x is used by %s and %s", key1, name1, name2)
			case bytes.HasPrefix(key1, key2):
				hasCollision = true
				t.Errorf("PREFIX COLLISION: Key %s (0x%x) is a prefix of key %s (0x%x)", name2, key2, name1, key1)
			case bytes.HasPrefix(key2, key1):
				hasCollision = true
				t.Errorf("PREFIX COLLISION: Key %s (0x%x) is a prefix of key %s (0x%x)", name1, key1, name2, key2)
			}
		}
	}

	if hasCollision {
		t.Fatal("Found key collisions")
	}
}
