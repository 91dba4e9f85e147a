//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"
)

// DtoMap marshals v through JSON into a map and applies the given mutations.
// Used by validation-table tests to knock out or corrupt single fields.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()

	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal dto: %v", err)
	}
	m := map[string]any{}
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal dto: %v", err)
	}
	for _, mut := range muts {
		mut(m)
	}
	return m
}
