package blueprint_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeObject(t *testing.T, raw string) map[string]any {
	t.Helper()
	var obj map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &obj))
	return obj
}

func encodeObject(t *testing.T, obj map[string]any) string {
	t.Helper()
	out, err := json.Marshal(obj)
	require.NoError(t, err)
	return string(out)
}
