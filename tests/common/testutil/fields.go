//go:build unit || e2e

package testutil

// Field builds a DtoMap mutation: nil deletes the key (a missing required
// field), anything else replaces the value.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}
