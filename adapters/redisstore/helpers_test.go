package redisstore_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func extractField(t *testing.T, data json.RawMessage, field string) string {
	t.Helper()

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &fields))
	require.Contains(t, fields, field)

	return string(fields[field])
}
