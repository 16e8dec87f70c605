//go:build unit || e2e

package testutil

// Field mutates (or removes, when value is nil) one key of a request
// payload map.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}
